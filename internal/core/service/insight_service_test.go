package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/adelphi-health/companion-api/internal/core/domain"
	"github.com/adelphi-health/companion-api/internal/core/ports"
)

func seedSymptoms(logs *memLogRepo, counts map[string]int, order []string) {
	loggedAt := time.Now().UTC().Add(-time.Hour)
	for _, name := range order {
		for i := 0; i < counts[name]; i++ {
			_, _ = logs.InsertSymptomLog(context.Background(), &domain.SymptomLog{
				UserID:      "primary-1",
				SymptomName: name,
				LoggedAt:    loggedAt,
			})
		}
	}
}

func insightByType(insights []ports.Insight, kind string) *ports.Insight {
	for i := range insights {
		if insights[i].Type == kind {
			return &insights[i]
		}
	}
	return nil
}

func TestInsightService_TopSymptoms(t *testing.T) {
	logs := newMemLogRepo()
	seedSymptoms(logs, map[string]int{
		"Hot flashes":  5,
		"Brain fog":    5,
		"Night sweats": 3,
		"Fatigue":      1,
	}, []string{"Hot flashes", "Brain fog", "Night sweats", "Fatigue"})

	svc := NewInsightService(logs, zerolog.Nop())
	insights, err := svc.Insights(context.Background(), "primary-1")
	if err != nil {
		t.Fatalf("Insights returned error: %v", err)
	}

	entry := insightByType(insights, "symptoms")
	if entry == nil {
		t.Fatalf("expected a symptoms insight")
	}
	top, ok := entry.Data.([]ports.SymptomCount)
	if !ok {
		t.Fatalf("unexpected data type %T", entry.Data)
	}
	if len(top) != 3 {
		t.Fatalf("expected top 3 symptoms, got %d", len(top))
	}
	// Ties keep first-seen order: Hot flashes before Brain fog, both at 5.
	want := []ports.SymptomCount{
		{Name: "Hot flashes", Count: 5},
		{Name: "Brain fog", Count: 5},
		{Name: "Night sweats", Count: 3},
	}
	for i, w := range want {
		if top[i] != w {
			t.Errorf("position %d: expected %+v, got %+v", i, w, top[i])
		}
	}
}

func TestInsightService_AverageMood(t *testing.T) {
	logs := newMemLogRepo()
	loggedAt := time.Now().UTC().Add(-time.Hour)
	for _, score := range []int{4, 5, 7} {
		_, _ = logs.InsertMoodLog(context.Background(), &domain.MoodLog{
			UserID:    "primary-1",
			MoodScore: score,
			LoggedAt:  loggedAt,
		})
	}

	svc := NewInsightService(logs, zerolog.Nop())
	insights, err := svc.Insights(context.Background(), "primary-1")
	if err != nil {
		t.Fatalf("Insights returned error: %v", err)
	}

	entry := insightByType(insights, "mood")
	if entry == nil {
		t.Fatalf("expected a mood insight")
	}
	data, ok := entry.Data.(map[string]any)
	if !ok {
		t.Fatalf("unexpected data type %T", entry.Data)
	}
	// 16/3 = 5.333..., rounded to one decimal.
	if data["average"] != 5.3 {
		t.Errorf("expected average 5.3, got %v", data["average"])
	}
	if data["total_logs"] != 3 {
		t.Errorf("expected 3 total logs, got %v", data["total_logs"])
	}
}

func TestInsightService_SleepPattern(t *testing.T) {
	logs := newMemLogRepo()
	loggedAt := time.Now().UTC().Add(-time.Hour)

	_, _ = logs.InsertMoodLog(context.Background(), &domain.MoodLog{
		UserID: "primary-1", MoodScore: 6, LoggedAt: loggedAt,
	})
	for _, quality := range []domain.SleepQuality{domain.SleepGood, domain.SleepExcellent, domain.SleepPoor} {
		_, _ = logs.InsertLifestyleLog(context.Background(), &domain.LifestyleLog{
			UserID:       "primary-1",
			SleepQuality: quality,
			LoggedAt:     loggedAt,
		})
	}

	svc := NewInsightService(logs, zerolog.Nop())
	insights, err := svc.Insights(context.Background(), "primary-1")
	if err != nil {
		t.Fatalf("Insights returned error: %v", err)
	}

	entry := insightByType(insights, "pattern")
	if entry == nil {
		t.Fatalf("expected a pattern insight")
	}
	data := entry.Data.(map[string]any)
	want := "You had 2 good sleep days this month. Quality sleep often helps with mood."
	if data["message"] != want {
		t.Errorf("expected %q, got %v", want, data["message"])
	}
}

func TestInsightService_NoData(t *testing.T) {
	svc := NewInsightService(newMemLogRepo(), zerolog.Nop())
	insights, err := svc.Insights(context.Background(), "primary-1")
	if err != nil {
		t.Fatalf("Insights returned error: %v", err)
	}
	if len(insights) != 0 {
		t.Fatalf("expected no insights without data, got %d", len(insights))
	}
}

func TestInsightService_OldLogsExcluded(t *testing.T) {
	logs := newMemLogRepo()
	_, _ = logs.InsertMoodLog(context.Background(), &domain.MoodLog{
		UserID:    "primary-1",
		MoodScore: 2,
		LoggedAt:  time.Now().UTC().AddDate(0, 0, -45),
	})

	svc := NewInsightService(logs, zerolog.Nop())
	insights, err := svc.Insights(context.Background(), "primary-1")
	if err != nil {
		t.Fatalf("Insights returned error: %v", err)
	}
	if insightByType(insights, "mood") != nil {
		t.Fatalf("logs outside the 30-day window must not produce insights")
	}
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/adelphi-health/companion-api/internal/core/domain"
)

func seedActiveLink(repo *memPartnerRepo, flags domain.SharingFlags) {
	repo.links = append(repo.links, &domain.PartnerLink{
		ID:              "link-1",
		PrimaryUserID:   "primary-1",
		PrimaryUserName: "Jane",
		PartnerUserID:   "partner-1",
		Flags:           flags,
		IsActive:        true,
		CreatedAt:       time.Now().UTC(),
	})
}

func seedMood(logs *memLogRepo, score int, loggedAt time.Time) {
	_, _ = logs.InsertMoodLog(context.Background(), &domain.MoodLog{
		UserID:    "primary-1",
		MoodScore: score,
		LoggedAt:  loggedAt,
	})
}

func TestDashboardService_PartnerDashboard(t *testing.T) {
	links := newMemPartnerRepo()
	seedActiveLink(links, domain.SharingFlags{ShareMood: true})

	logs := newMemLogRepo()
	now := time.Now().UTC()
	// Rising trend over the window, today's entry challenging.
	seedMood(logs, 2, now.Add(-5*24*time.Hour))
	seedMood(logs, 2, now.Add(-4*24*time.Hour))
	seedMood(logs, 3, now.Add(-3*24*time.Hour))
	seedMood(logs, 7, now.Add(-2*24*time.Hour))
	seedMood(logs, 8, now.Add(-24*time.Hour))
	seedMood(logs, 2, now.Add(-time.Minute))

	svc := NewDashboardService(links, logs, zerolog.Nop())
	dash, err := svc.PartnerDashboard(context.Background(), "partner-1")
	if err != nil {
		t.Fatalf("PartnerDashboard returned error: %v", err)
	}

	if dash.PrimaryUserName != "Jane" {
		t.Fatalf("expected primary user name, got %q", dash.PrimaryUserName)
	}
	if dash.TodayStatus != domain.TodayChallenging {
		t.Fatalf("expected challenging status, got %s", dash.TodayStatus)
	}
	if dash.RecentMoodTrend != domain.TrendImproving {
		t.Fatalf("expected improving trend, got %s", dash.RecentMoodTrend)
	}
	if len(dash.SuggestedActions) != 3 {
		t.Fatalf("expected 3 suggested actions, got %d", len(dash.SuggestedActions))
	}
}

func TestDashboardService_PartnerDashboard_MoodNotShared(t *testing.T) {
	links := newMemPartnerRepo()
	seedActiveLink(links, domain.SharingFlags{ShareMood: false})

	logs := newMemLogRepo()
	seedMood(logs, 1, time.Now().UTC().Add(-time.Minute))

	svc := NewDashboardService(links, logs, zerolog.Nop())
	dash, err := svc.PartnerDashboard(context.Background(), "partner-1")
	if err != nil {
		t.Fatalf("PartnerDashboard returned error: %v", err)
	}

	// With mood sharing off the partner only ever sees neutral.
	if dash.TodayStatus != domain.TodayNeutral {
		t.Fatalf("expected neutral status with sharing off, got %s", dash.TodayStatus)
	}
}

func TestDashboardService_PartnerDashboard_NoMoodToday(t *testing.T) {
	links := newMemPartnerRepo()
	seedActiveLink(links, domain.SharingFlags{ShareMood: true})

	svc := NewDashboardService(links, newMemLogRepo(), zerolog.Nop())
	dash, err := svc.PartnerDashboard(context.Background(), "partner-1")
	if err != nil {
		t.Fatalf("PartnerDashboard returned error: %v", err)
	}
	if dash.TodayStatus != domain.TodayNeutral {
		t.Fatalf("expected neutral status without a mood log, got %s", dash.TodayStatus)
	}
	if dash.RecentMoodTrend != domain.TrendStable {
		t.Fatalf("expected stable trend without logs, got %s", dash.RecentMoodTrend)
	}
}

func TestDashboardService_PartnerDashboard_NoLink(t *testing.T) {
	svc := NewDashboardService(newMemPartnerRepo(), newMemLogRepo(), zerolog.Nop())
	if _, err := svc.PartnerDashboard(context.Background(), "partner-1"); !errors.Is(err, domain.ErrNoActiveLink) {
		t.Fatalf("expected ErrNoActiveLink, got %v", err)
	}
}

func TestDashboardService_CheckinSummary_NothingLogged(t *testing.T) {
	svc := NewDashboardService(newMemPartnerRepo(), newMemLogRepo(), zerolog.Nop())

	summary, err := svc.CheckinSummary(context.Background(), "primary-1")
	if err != nil {
		t.Fatalf("CheckinSummary returned error: %v", err)
	}
	if summary.HasLoggedSymptomsToday || summary.HasLoggedMoodToday || summary.HasLoggedLifestyleToday {
		t.Fatalf("expected nothing logged: %+v", summary)
	}
	if summary.TodayMoodScore != nil {
		t.Fatalf("expected nil mood score")
	}
	if len(summary.Suggestions) != 3 {
		t.Fatalf("expected 3 suggestions, got %d", len(summary.Suggestions))
	}
	if summary.Suggestions[0].Type != "checkin" || summary.Suggestions[1].Type != "mood" {
		t.Fatalf("unexpected suggestion order: %+v", summary.Suggestions)
	}
}

func TestDashboardService_CheckinSummary_EverythingLogged(t *testing.T) {
	logs := newMemLogRepo()
	now := time.Now().UTC()

	_, _ = logs.InsertSymptomLog(context.Background(), &domain.SymptomLog{
		UserID:      "primary-1",
		SymptomName: "Hot flashes",
		LoggedAt:    now,
	})
	seedMood(logs, 6, now)
	_, _ = logs.InsertLifestyleLog(context.Background(), &domain.LifestyleLog{
		UserID:            "primary-1",
		WaterIntake:       6,
		ExerciseIntensity: domain.ExerciseLight,
		StressLevel:       domain.StressLow,
		LoggedAt:          now,
	})

	svc := NewDashboardService(newMemPartnerRepo(), logs, zerolog.Nop())
	summary, err := svc.CheckinSummary(context.Background(), "primary-1")
	if err != nil {
		t.Fatalf("CheckinSummary returned error: %v", err)
	}

	if !summary.HasLoggedSymptomsToday || !summary.HasLoggedMoodToday || !summary.HasLoggedLifestyleToday {
		t.Fatalf("expected everything logged: %+v", summary)
	}
	if summary.TodayMoodScore == nil || *summary.TodayMoodScore != 6 {
		t.Fatalf("expected mood score 6, got %v", summary.TodayMoodScore)
	}
	if summary.TodaySymptomCount != 1 {
		t.Fatalf("expected 1 symptom, got %d", summary.TodaySymptomCount)
	}
	if len(summary.Suggestions) != 0 {
		t.Fatalf("expected no suggestions when all is logged, got %+v", summary.Suggestions)
	}
}

func TestDashboardService_CheckinSummary_StressAndHydrationNudges(t *testing.T) {
	logs := newMemLogRepo()
	now := time.Now().UTC()
	seedMood(logs, 5, now)
	_, _ = logs.InsertLifestyleLog(context.Background(), &domain.LifestyleLog{
		UserID:      "primary-1",
		WaterIntake: 2,
		StressLevel: domain.StressHigh,
		LoggedAt:    now,
	})

	svc := NewDashboardService(newMemPartnerRepo(), logs, zerolog.Nop())
	summary, err := svc.CheckinSummary(context.Background(), "primary-1")
	if err != nil {
		t.Fatalf("CheckinSummary returned error: %v", err)
	}

	// No symptoms yet, low water, high stress, no exercise: capped at three.
	if len(summary.Suggestions) != 3 {
		t.Fatalf("expected suggestions capped at 3, got %d", len(summary.Suggestions))
	}
	titles := make(map[string]bool)
	for _, s := range summary.Suggestions {
		titles[s.Title] = true
	}
	if !titles["Drink some water"] || !titles["Try a breathing exercise"] {
		t.Fatalf("expected hydration and stress nudges, got %+v", summary.Suggestions)
	}
}

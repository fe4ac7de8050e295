package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/adelphi-health/companion-api/internal/core/domain"
	"github.com/adelphi-health/companion-api/internal/core/ports"
)

const (
	insightWindow = 30 * 24 * time.Hour
	topSymptoms   = 3
)

// InsightService computes the caller's personal 30-day summary. Each insight
// is independent; missing underlying data omits the entry rather than failing.
type InsightService struct {
	logs   ports.LogRepository
	logger zerolog.Logger
}

func NewInsightService(logs ports.LogRepository, logger zerolog.Logger) *InsightService {
	return &InsightService{logs: logs, logger: logger}
}

func (s *InsightService) Insights(ctx context.Context, userID string) ([]ports.Insight, error) {
	since := time.Now().UTC().Add(-insightWindow)
	filter := ports.LogFilter{UserID: userID, Since: since}

	symptoms, err := s.logs.ListSymptomLogs(ctx, filter)
	if err != nil {
		return nil, err
	}
	moods, err := s.logs.ListMoodLogs(ctx, filter)
	if err != nil {
		return nil, err
	}
	lifestyle, err := s.logs.ListLifestyleLogs(ctx, filter)
	if err != nil {
		return nil, err
	}

	insights := make([]ports.Insight, 0, 3)

	if top := topSymptomCounts(symptoms); len(top) > 0 {
		insights = append(insights, ports.Insight{
			Type:  "symptoms",
			Title: "Your most tracked symptoms",
			Data:  top,
		})
	}

	if len(moods) > 0 {
		var sum int
		for _, m := range moods {
			sum += m.MoodScore
		}
		avg := math.Round(float64(sum)/float64(len(moods))*10) / 10
		insights = append(insights, ports.Insight{
			Type:  "mood",
			Title: "Your average mood this month",
			Data: map[string]any{
				"average":    avg,
				"total_logs": len(moods),
			},
		})
	}

	if len(lifestyle) > 0 && len(moods) > 0 {
		goodSleepDays := 0
		for _, l := range lifestyle {
			if l.SleepQuality.Restful() {
				goodSleepDays++
			}
		}
		if goodSleepDays > 0 {
			insights = append(insights, ports.Insight{
				Type:  "pattern",
				Title: "Sleep & Mood Connection",
				Data: map[string]any{
					"message": fmt.Sprintf("You had %d good sleep days this month. Quality sleep often helps with mood.", goodSleepDays),
				},
			})
		}
	}

	return insights, nil
}

// topSymptomCounts tallies symptom names and returns the top entries by
// count. Ties keep first-seen input order (stable sort over first-seen rank).
func topSymptomCounts(logs []*domain.SymptomLog) []ports.SymptomCount {
	counts := make(map[string]int)
	var order []string
	for _, l := range logs {
		if _, seen := counts[l.SymptomName]; !seen {
			order = append(order, l.SymptomName)
		}
		counts[l.SymptomName]++
	}
	if len(order) == 0 {
		return nil
	}

	out := make([]ports.SymptomCount, 0, len(order))
	for _, name := range order {
		out = append(out, ports.SymptomCount{Name: name, Count: counts[name]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })

	if len(out) > topSymptoms {
		out = out[:topSymptoms]
	}
	return out
}

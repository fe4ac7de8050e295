package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/adelphi-health/companion-api/internal/core/domain"
	"github.com/adelphi-health/companion-api/internal/core/ports"
)

const trendWindow = 7 * 24 * time.Hour

// DashboardService derives the partner-facing and self-facing daily views.
// Everything is recomputed per call; no derived state is persisted.
type DashboardService struct {
	links  ports.PartnerRepository
	logs   ports.LogRepository
	logger zerolog.Logger
}

func NewDashboardService(links ports.PartnerRepository, logs ports.LogRepository, logger zerolog.Logger) *DashboardService {
	return &DashboardService{links: links, logs: logs, logger: logger}
}

// PartnerDashboard builds the shared view for a linked partner: a same-day
// status classification (gated by the link's share_mood flag), a 7-day mood
// trend, and the fixed suggestion set for the status.
func (s *DashboardService) PartnerDashboard(ctx context.Context, partnerUserID string) (*ports.PartnerDashboard, error) {
	link, err := s.links.FindActiveLinkByPartner(ctx, partnerUserID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	status := domain.TodayNeutral

	if link.Flags.ShareMood {
		mood, err := s.logs.FindLatestMoodSince(ctx, link.PrimaryUserID, startOfDayUTC(now))
		switch {
		case err == nil:
			status = domain.ClassifyTodayStatus(mood.MoodScore)
		case !errors.Is(err, domain.ErrNotFound):
			return nil, err
		}
	}

	recent, err := s.logs.ListMoodLogs(ctx, ports.LogFilter{
		UserID:    link.PrimaryUserID,
		Since:     now.Add(-trendWindow),
		Ascending: true,
	})
	if err != nil {
		return nil, err
	}

	scores := make([]int, len(recent))
	for i, m := range recent {
		scores[i] = m.MoodScore
	}

	return &ports.PartnerDashboard{
		PrimaryUserName:  link.PrimaryUserName,
		TodayStatus:      status,
		RecentMoodTrend:  domain.ClassifyMoodTrend(scores),
		SuggestedActions: domain.SuggestedActions(status),
		LastUpdated:      now,
	}, nil
}

// CheckinSummary builds the caller's own daily overview with up to three
// nudges based on what is still unlogged today.
func (s *DashboardService) CheckinSummary(ctx context.Context, userID string) (*ports.CheckinSummary, error) {
	now := time.Now().UTC()
	today := startOfDayUTC(now)

	symptoms, err := s.logs.ListSymptomLogs(ctx, ports.LogFilter{UserID: userID, Since: today})
	if err != nil {
		return nil, err
	}

	var moodScore *int
	mood, err := s.logs.FindLatestMoodSince(ctx, userID, today)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if mood != nil {
		moodScore = &mood.MoodScore
	}

	lifestyle, err := s.logs.FindLatestLifestyleSince(ctx, userID, today)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	summary := &ports.CheckinSummary{
		HasLoggedSymptomsToday:  len(symptoms) > 0,
		HasLoggedMoodToday:      mood != nil,
		HasLoggedLifestyleToday: lifestyle != nil,
		TodayMoodScore:          moodScore,
		TodaySymptomCount:       len(symptoms),
	}
	summary.Suggestions = buildSuggestions(summary, lifestyle)
	return summary, nil
}

func buildSuggestions(summary *ports.CheckinSummary, lifestyle *domain.LifestyleLog) []ports.CheckinSuggestion {
	var out []ports.CheckinSuggestion

	if !summary.HasLoggedSymptomsToday {
		out = append(out, ports.CheckinSuggestion{
			Type:        "checkin",
			Title:       "Log your symptoms",
			Description: "Track how you're feeling today",
		})
	}
	if !summary.HasLoggedMoodToday {
		out = append(out, ports.CheckinSuggestion{
			Type:        "mood",
			Title:       "How are you feeling?",
			Description: "Quick mood check-in",
		})
	}
	if lifestyle != nil {
		if lifestyle.WaterIntake < 4 {
			out = append(out, ports.CheckinSuggestion{
				Type:        "reminder",
				Title:       "Drink some water",
				Description: "Stay hydrated throughout the day",
			})
		}
		if lifestyle.StressLevel == domain.StressHigh {
			out = append(out, ports.CheckinSuggestion{
				Type:        "activity",
				Title:       "Try a breathing exercise",
				Description: "2-minute calm breathing can help reduce stress",
			})
		}
	}
	if lifestyle == nil || lifestyle.ExerciseIntensity == "" {
		out = append(out, ports.CheckinSuggestion{
			Type:        "activity",
			Title:       "Take a short walk",
			Description: "10 minutes of movement can boost your energy",
		})
	}

	if len(out) > 3 {
		out = out[:3]
	}
	return out
}

// startOfDayUTC returns the UTC midnight preceding t.
func startOfDayUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

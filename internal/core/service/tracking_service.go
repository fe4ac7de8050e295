package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/adelphi-health/companion-api/internal/core/domain"
	"github.com/adelphi-health/companion-api/internal/core/ports"
)

const (
	defaultListDays = 30
	maxListDays     = 365

	// carePingScoreCeiling: mood logs at or below this score enqueue a care
	// ping for the linked partner.
	carePingScoreCeiling = 3
)

// TrackingService owns symptom/mood/lifestyle log writes and self-scoped
// reads. Mood logs recording a hard day are handed to the care-ping
// dispatcher; delivery is asynchronous and best-effort.
type TrackingService struct {
	logs       ports.LogRepository
	dispatcher ports.CarePingDispatcher
	logger     zerolog.Logger
}

func NewTrackingService(logs ports.LogRepository, dispatcher ports.CarePingDispatcher, logger zerolog.Logger) *TrackingService {
	return &TrackingService{logs: logs, dispatcher: dispatcher, logger: logger}
}

func (s *TrackingService) LogSymptom(ctx context.Context, user *domain.User, input ports.SymptomLogInput) (*domain.SymptomLog, error) {
	log := &domain.SymptomLog{
		UserID:        user.ID,
		SymptomID:     input.SymptomID,
		SymptomName:   input.SymptomName,
		Severity:      input.Severity,
		SeverityScore: input.SeverityScore,
		Frequency:     input.Frequency,
		Notes:         input.Notes,
		LoggedAt:      time.Now().UTC(),
	}
	return s.logs.InsertSymptomLog(ctx, log)
}

func (s *TrackingService) LogMood(ctx context.Context, user *domain.User, input ports.MoodLogInput) (*domain.MoodLog, error) {
	log := &domain.MoodLog{
		UserID:      user.ID,
		MoodScore:   input.MoodScore,
		Emotions:    input.Emotions,
		Description: input.Description,
		LoggedAt:    time.Now().UTC(),
	}

	created, err := s.logs.InsertMoodLog(ctx, log)
	if err != nil {
		return nil, err
	}

	if s.dispatcher != nil && created.MoodScore <= carePingScoreCeiling {
		s.dispatcher.Enqueue(ports.CarePingInput{
			PrimaryUserID:   user.ID,
			PrimaryUserName: user.Name,
			MoodScore:       created.MoodScore,
			LoggedAt:        created.LoggedAt,
		})
	}

	return created, nil
}

func (s *TrackingService) LogLifestyle(ctx context.Context, user *domain.User, input ports.LifestyleLogInput) (*domain.LifestyleLog, error) {
	log := &domain.LifestyleLog{
		UserID:            user.ID,
		SleepHours:        input.SleepHours,
		SleepQuality:      input.SleepQuality,
		FoodTags:          input.FoodTags,
		WaterIntake:       input.WaterIntake,
		ExerciseIntensity: input.ExerciseIntensity,
		ExerciseType:      input.ExerciseType,
		ExerciseMinutes:   input.ExerciseMinutes,
		StressLevel:       input.StressLevel,
		StressSource:      input.StressSource,
		WorkDay:           input.WorkDay,
		RelationshipNotes: input.RelationshipNotes,
		LoggedAt:          time.Now().UTC(),
	}
	return s.logs.InsertLifestyleLog(ctx, log)
}

func (s *TrackingService) ListSymptomLogs(ctx context.Context, userID string, days int) ([]*domain.SymptomLog, error) {
	return s.logs.ListSymptomLogs(ctx, rangeFilter(userID, days))
}

func (s *TrackingService) ListMoodLogs(ctx context.Context, userID string, days int) ([]*domain.MoodLog, error) {
	return s.logs.ListMoodLogs(ctx, rangeFilter(userID, days))
}

func (s *TrackingService) ListLifestyleLogs(ctx context.Context, userID string, days int) ([]*domain.LifestyleLog, error) {
	return s.logs.ListLifestyleLogs(ctx, rangeFilter(userID, days))
}

func (s *TrackingService) TodaySymptomLogs(ctx context.Context, userID string) ([]*domain.SymptomLog, error) {
	return s.logs.ListSymptomLogs(ctx, ports.LogFilter{
		UserID: userID,
		Since:  startOfDayUTC(time.Now()),
	})
}

func (s *TrackingService) TodayMood(ctx context.Context, userID string) (*domain.MoodLog, error) {
	return s.logs.FindLatestMoodSince(ctx, userID, startOfDayUTC(time.Now()))
}

func (s *TrackingService) TodayLifestyle(ctx context.Context, userID string) (*domain.LifestyleLog, error) {
	return s.logs.FindLatestLifestyleSince(ctx, userID, startOfDayUTC(time.Now()))
}

// rangeFilter clamps the caller-supplied day window and returns the newest
// entries first.
func rangeFilter(userID string, days int) ports.LogFilter {
	if days <= 0 {
		days = defaultListDays
	}
	if days > maxListDays {
		days = maxListDays
	}
	return ports.LogFilter{
		UserID: userID,
		Since:  time.Now().UTC().AddDate(0, 0, -days),
	}
}

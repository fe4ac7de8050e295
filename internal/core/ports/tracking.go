package ports

import (
	"context"
	"time"

	"github.com/adelphi-health/companion-api/internal/core/domain"
)

// LogFilter carries the common query shape for log reads: owner, time range,
// ordering and cap. A zero Until means "no upper bound".
type LogFilter struct {
	UserID    string
	Since     time.Time
	Until     time.Time
	Ascending bool
	Limit     int64
}

// LogRepository persists the three tracked log kinds.
type LogRepository interface {
	InsertSymptomLog(ctx context.Context, log *domain.SymptomLog) (*domain.SymptomLog, error)
	InsertMoodLog(ctx context.Context, log *domain.MoodLog) (*domain.MoodLog, error)
	InsertLifestyleLog(ctx context.Context, log *domain.LifestyleLog) (*domain.LifestyleLog, error)

	ListSymptomLogs(ctx context.Context, filter LogFilter) ([]*domain.SymptomLog, error)
	ListMoodLogs(ctx context.Context, filter LogFilter) ([]*domain.MoodLog, error)
	ListLifestyleLogs(ctx context.Context, filter LogFilter) ([]*domain.LifestyleLog, error)

	// FindLatestMoodSince returns the newest mood log at or after since, or
	// domain.ErrNotFound when the user has none in that window.
	FindLatestMoodSince(ctx context.Context, userID string, since time.Time) (*domain.MoodLog, error)
	FindLatestLifestyleSince(ctx context.Context, userID string, since time.Time) (*domain.LifestyleLog, error)
}

// SymptomLogInput is the DTO for logging a symptom occurrence.
type SymptomLogInput struct {
	SymptomID     string
	SymptomName   string
	Severity      domain.Severity
	SeverityScore int
	Frequency     domain.Frequency
	Notes         string
}

// MoodLogInput is the DTO for a mood check-in.
type MoodLogInput struct {
	MoodScore   int
	Emotions    []string
	Description string
}

// LifestyleLogInput is the DTO for a daily lifestyle entry.
type LifestyleLogInput struct {
	SleepHours        float64
	SleepQuality      domain.SleepQuality
	FoodTags          []string
	WaterIntake       int
	ExerciseIntensity domain.ExerciseIntensity
	ExerciseType      string
	ExerciseMinutes   int
	StressLevel       domain.StressLevel
	StressSource      string
	WorkDay           string
	RelationshipNotes string
}

// TrackingService owns log writes and self-scoped reads.
type TrackingService interface {
	LogSymptom(ctx context.Context, user *domain.User, input SymptomLogInput) (*domain.SymptomLog, error)
	LogMood(ctx context.Context, user *domain.User, input MoodLogInput) (*domain.MoodLog, error)
	LogLifestyle(ctx context.Context, user *domain.User, input LifestyleLogInput) (*domain.LifestyleLog, error)

	ListSymptomLogs(ctx context.Context, userID string, days int) ([]*domain.SymptomLog, error)
	ListMoodLogs(ctx context.Context, userID string, days int) ([]*domain.MoodLog, error)
	ListLifestyleLogs(ctx context.Context, userID string, days int) ([]*domain.LifestyleLog, error)

	TodaySymptomLogs(ctx context.Context, userID string) ([]*domain.SymptomLog, error)
	TodayMood(ctx context.Context, userID string) (*domain.MoodLog, error)
	TodayLifestyle(ctx context.Context, userID string) (*domain.LifestyleLog, error)
}

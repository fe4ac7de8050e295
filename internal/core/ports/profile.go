package ports

import (
	"context"

	"github.com/adelphi-health/companion-api/internal/core/domain"
)

// ProfileRepository persists profiles, reminders and push tokens.
type ProfileRepository interface {
	FindProfile(ctx context.Context, userID string) (*domain.Profile, error)
	UpsertProfile(ctx context.Context, profile *domain.Profile) error

	InsertReminder(ctx context.Context, r *domain.Reminder) (*domain.Reminder, error)
	ListReminders(ctx context.Context, userID string) ([]*domain.Reminder, error)
	// UpdateReminder and DeleteReminder are scoped by userID; a non-matching
	// id returns domain.ErrNotFound.
	UpdateReminder(ctx context.Context, userID, reminderID string, update ReminderUpdate) error
	DeleteReminder(ctx context.Context, userID, reminderID string) error

	UpsertPushToken(ctx context.Context, token *domain.PushToken) error
}

// OnboardingInput carries the one-time onboarding payload.
type OnboardingInput struct {
	AgeRange             string
	Ethnicity            string
	Country              string
	MenopauseStage       domain.MenopauseStage
	MedicalConditions    []string
	MedicalNotes         string
	ConsentDataStorage   bool
	ConsentResearch      bool
	ConsentPartnerInvite bool
}

// ProfileUpdate carries a partial profile edit; nil fields are untouched.
type ProfileUpdate struct {
	Name              *string
	AgeRange          *string
	Ethnicity         *string
	Country           *string
	MenopauseStage    *domain.MenopauseStage
	MedicalConditions []string
	MedicalNotes      *string
}

// ReminderInput creates a reminder.
type ReminderInput struct {
	Type          string
	Title         string
	Time          string
	Days          []string
	Enabled       bool
	CustomMessage string
}

// ReminderUpdate carries a partial reminder edit; nil fields are untouched.
type ReminderUpdate struct {
	Enabled       *bool
	Time          *string
	Days          []string
	CustomMessage *string
}

type ProfileService interface {
	CompleteOnboarding(ctx context.Context, user *domain.User, input OnboardingInput) error
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, user *domain.User, update ProfileUpdate) error

	CreateReminder(ctx context.Context, user *domain.User, input ReminderInput) (*domain.Reminder, error)
	ListReminders(ctx context.Context, userID string) ([]*domain.Reminder, error)
	UpdateReminder(ctx context.Context, userID, reminderID string, update ReminderUpdate) error
	DeleteReminder(ctx context.Context, userID, reminderID string) error

	RegisterPushToken(ctx context.Context, userID, token, deviceType string) error
}

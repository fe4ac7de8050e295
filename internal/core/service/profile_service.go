package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/adelphi-health/companion-api/internal/core/domain"
	"github.com/adelphi-health/companion-api/internal/core/ports"
)

// ProfileService owns the profile document, onboarding completion, reminders
// and push token registration.
type ProfileService struct {
	users    ports.UserRepository
	profiles ports.ProfileRepository
	logger   zerolog.Logger
}

func NewProfileService(users ports.UserRepository, profiles ports.ProfileRepository, logger zerolog.Logger) *ProfileService {
	return &ProfileService{users: users, profiles: profiles, logger: logger}
}

// CompleteOnboarding saves the onboarding answers and flips the user's
// has_completed_onboarding flag. Re-running it overwrites the answers.
func (s *ProfileService) CompleteOnboarding(ctx context.Context, user *domain.User, input ports.OnboardingInput) error {
	now := time.Now().UTC()

	profile, err := s.profiles.FindProfile(ctx, user.ID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		profile = &domain.Profile{UserID: user.ID, CreatedAt: now}
	}

	profile.AgeRange = input.AgeRange
	profile.Ethnicity = input.Ethnicity
	profile.Country = input.Country
	profile.MenopauseStage = input.MenopauseStage
	profile.MedicalConditions = input.MedicalConditions
	profile.MedicalNotes = input.MedicalNotes
	profile.ConsentDataStorage = input.ConsentDataStorage
	profile.ConsentResearch = input.ConsentResearch
	profile.ConsentPartnerInvite = input.ConsentPartnerInvite
	profile.UpdatedAt = now

	if err := s.profiles.UpsertProfile(ctx, profile); err != nil {
		return err
	}

	if err := s.users.SetOnboardingComplete(ctx, user.ID); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("onboarding completed")
	return nil
}

func (s *ProfileService) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	return s.profiles.FindProfile(ctx, userID)
}

// UpdateProfile applies a partial edit. A name change also updates the user
// record, which is where the display name lives.
func (s *ProfileService) UpdateProfile(ctx context.Context, user *domain.User, update ports.ProfileUpdate) error {
	if update.Name != nil {
		if err := s.users.SetName(ctx, user.ID, *update.Name); err != nil {
			return err
		}
	}

	now := time.Now().UTC()
	profile, err := s.profiles.FindProfile(ctx, user.ID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		profile = &domain.Profile{UserID: user.ID, CreatedAt: now}
	}

	if update.AgeRange != nil {
		profile.AgeRange = *update.AgeRange
	}
	if update.Ethnicity != nil {
		profile.Ethnicity = *update.Ethnicity
	}
	if update.Country != nil {
		profile.Country = *update.Country
	}
	if update.MenopauseStage != nil {
		profile.MenopauseStage = *update.MenopauseStage
	}
	if update.MedicalConditions != nil {
		profile.MedicalConditions = update.MedicalConditions
	}
	if update.MedicalNotes != nil {
		profile.MedicalNotes = *update.MedicalNotes
	}
	profile.UpdatedAt = now

	return s.profiles.UpsertProfile(ctx, profile)
}

func (s *ProfileService) CreateReminder(ctx context.Context, user *domain.User, input ports.ReminderInput) (*domain.Reminder, error) {
	reminder := &domain.Reminder{
		UserID:        user.ID,
		Type:          input.Type,
		Title:         input.Title,
		Time:          input.Time,
		Days:          input.Days,
		Enabled:       input.Enabled,
		CustomMessage: input.CustomMessage,
		CreatedAt:     time.Now().UTC(),
	}
	return s.profiles.InsertReminder(ctx, reminder)
}

func (s *ProfileService) ListReminders(ctx context.Context, userID string) ([]*domain.Reminder, error) {
	return s.profiles.ListReminders(ctx, userID)
}

func (s *ProfileService) UpdateReminder(ctx context.Context, userID, reminderID string, update ports.ReminderUpdate) error {
	return s.profiles.UpdateReminder(ctx, userID, reminderID, update)
}

func (s *ProfileService) DeleteReminder(ctx context.Context, userID, reminderID string) error {
	return s.profiles.DeleteReminder(ctx, userID, reminderID)
}

func (s *ProfileService) RegisterPushToken(ctx context.Context, userID, token, deviceType string) error {
	return s.profiles.UpsertPushToken(ctx, &domain.PushToken{
		UserID:     userID,
		Token:      token,
		DeviceType: deviceType,
		UpdatedAt:  time.Now().UTC(),
	})
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/adelphi-health/companion-api/internal/core/domain"
	"github.com/adelphi-health/companion-api/internal/core/ports"
)

// ErrCarePingSkipped marks the benign skip outcomes (no active link, flag
// disabled, already pinged today). Workers treat it as a non-error.
var ErrCarePingSkipped = errors.New("care ping skipped")

// CarePingService processes a single care ping on the worker side: it gates
// on the active link's enable_notifications flag, dedups to one ping per
// primary user per calendar day, and stores an in-app notification for the
// partner. No push delivery happens here or anywhere else.
type CarePingService struct {
	links         ports.PartnerRepository
	notifications ports.NotificationRepository
	dedup         ports.CarePingDedup
	logger        zerolog.Logger
}

func NewCarePingService(
	links ports.PartnerRepository,
	notifications ports.NotificationRepository,
	dedup ports.CarePingDedup,
	logger zerolog.Logger,
) *CarePingService {
	return &CarePingService{links: links, notifications: notifications, dedup: dedup, logger: logger}
}

const notificationInboxLimit = 50

// PartnerNotifications returns the partner's inbox, newest first.
func (s *CarePingService) PartnerNotifications(ctx context.Context, partnerUserID string, limit int64) ([]*domain.Notification, error) {
	if limit <= 0 || limit > notificationInboxLimit {
		limit = notificationInboxLimit
	}
	return s.notifications.ListByPartner(ctx, partnerUserID, limit)
}

func (s *CarePingService) Process(ctx context.Context, ping ports.CarePingInput) error {
	link, err := s.links.FindActiveLinkByPrimary(ctx, ping.PrimaryUserID)
	if err != nil {
		if errors.Is(err, domain.ErrNoActiveLink) {
			return fmt.Errorf("%w: no active link", ErrCarePingSkipped)
		}
		return fmt.Errorf("care ping: %w", err)
	}

	if !link.Flags.EnableNotifications {
		return fmt.Errorf("%w: notifications disabled", ErrCarePingSkipped)
	}

	day := ping.LoggedAt
	if day.IsZero() {
		day = time.Now().UTC()
	}

	isDup, err := s.dedup.IsDuplicate(ctx, ping.PrimaryUserID, day)
	if err != nil {
		s.logger.Warn().Err(err).Str("primary_user_id", ping.PrimaryUserID).Msg("care ping dedup check failed, processing anyway")
	} else if isDup {
		return fmt.Errorf("%w: already pinged today", ErrCarePingSkipped)
	}

	// Mark before writing so a retried ping cannot double-notify.
	if markErr := s.dedup.Mark(ctx, ping.PrimaryUserID, day); markErr != nil {
		s.logger.Warn().Err(markErr).Str("primary_user_id", ping.PrimaryUserID).Msg("failed to set care ping dedup key")
	}

	notification := &domain.Notification{
		PartnerUserID:   link.PartnerUserID,
		PrimaryUserID:   ping.PrimaryUserID,
		PrimaryUserName: link.PrimaryUserName,
		Kind:            "care_ping",
		Message:         fmt.Sprintf("%s is having a challenging day. A small gesture could mean a lot.", link.PrimaryUserName),
		CreatedAt:       time.Now().UTC(),
	}

	if _, err := s.notifications.Insert(ctx, notification); err != nil {
		return fmt.Errorf("care ping: insert notification: %w", err)
	}

	s.logger.Info().
		Str("primary_user_id", ping.PrimaryUserID).
		Str("partner_user_id", link.PartnerUserID).
		Int("mood_score", ping.MoodScore).
		Msg("care ping delivered")

	return nil
}

package ports

import (
	"context"
	"time"

	"github.com/adelphi-health/companion-api/internal/core/domain"
)

// CarePingInput is the work item produced when a primary user logs a hard
// day and consumed by the care-ping workers.
type CarePingInput struct {
	PrimaryUserID   string
	PrimaryUserName string
	MoodScore       int
	LoggedAt        time.Time
}

// CarePingDispatcher is the interface the tracking service uses to hand off
// care pings for asynchronous processing.
type CarePingDispatcher interface {
	Enqueue(ping CarePingInput)
}

// CarePingProcessor is the worker-side handler for a single care ping.
type CarePingProcessor interface {
	Process(ctx context.Context, ping CarePingInput) error
}

// CarePingDedup guards against more than one care ping per primary user per
// calendar day.
type CarePingDedup interface {
	IsDuplicate(ctx context.Context, primaryUserID string, day time.Time) (bool, error)
	Mark(ctx context.Context, primaryUserID string, day time.Time) error
}

// NotificationRepository persists in-app partner notifications.
type NotificationRepository interface {
	Insert(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	ListByPartner(ctx context.Context, partnerUserID string, limit int64) ([]*domain.Notification, error)
}

// NotificationService reads back stored notifications for the partner's inbox.
type NotificationService interface {
	PartnerNotifications(ctx context.Context, partnerUserID string, limit int64) ([]*domain.Notification, error)
}

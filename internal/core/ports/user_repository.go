package ports

import (
	"context"

	"github.com/adelphi-health/companion-api/internal/core/domain"
)

// UserRepository defines persistence for user credential records.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	SetName(ctx context.Context, id, name string) error
	SetOnboardingComplete(ctx context.Context, id string) error
}

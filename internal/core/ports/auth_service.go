package ports

import (
	"context"

	"github.com/adelphi-health/companion-api/internal/core/domain"
)

// RegisterInput carries a new account request. Role defaults to primary at
// the transport layer.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Role     domain.Role
}

// AuthResult pairs a freshly issued token with the authenticated user.
type AuthResult struct {
	Token string
	User  *domain.User
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}

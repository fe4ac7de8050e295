package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/adelphi-health/companion-api/internal/core/domain"
	"github.com/adelphi-health/companion-api/internal/core/ports"
)

func newAuthService(users *memUserRepo, profiles *memProfileRepo) *AuthService {
	return NewAuthService(users, profiles, NewTokenIssuer("test-secret", time.Hour), zerolog.Nop())
}

func TestAuthService_Register(t *testing.T) {
	users := newMemUserRepo()
	profiles := newMemProfileRepo()
	svc := newAuthService(users, profiles)

	result, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:    "Jane@Example.COM",
		Password: "s3cret-pass",
		Name:     "Jane",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected token in result")
	}
	if result.User.Email != "jane@example.com" {
		t.Fatalf("expected lowercased email, got %q", result.User.Email)
	}
	if result.User.Role != domain.RolePrimary {
		t.Fatalf("expected default role primary, got %s", result.User.Role)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(result.User.PasswordHash), []byte("s3cret-pass")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
	if _, ok := profiles.profiles[result.User.ID]; !ok {
		t.Fatalf("expected bootstrap profile for new user")
	}
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	svc := newAuthService(newMemUserRepo(), newMemProfileRepo())

	cases := []ports.RegisterInput{
		{Password: "pass", Name: "Jane"},
		{Email: "jane@example.com", Name: "Jane"},
		{Email: "jane@example.com", Password: "pass"},
	}
	for i, input := range cases {
		if _, err := svc.Register(context.Background(), input); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Errorf("case %d: expected ErrInvalidCredentials, got %v", i, err)
		}
	}
}

func TestAuthService_Register_UnknownRole(t *testing.T) {
	svc := newAuthService(newMemUserRepo(), newMemProfileRepo())

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:    "jane@example.com",
		Password: "pass",
		Name:     "Jane",
		Role:     domain.Role("superuser"),
	})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc := newAuthService(newMemUserRepo(), newMemProfileRepo())

	input := ports.RegisterInput{Email: "jane@example.com", Password: "pass", Name: "Jane"}
	if _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	// Same address with different casing still collides.
	input.Email = "JANE@example.com"
	if _, err := svc.Register(context.Background(), input); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login(t *testing.T) {
	svc := newAuthService(newMemUserRepo(), newMemProfileRepo())

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:    "jane@example.com",
		Password: "s3cret-pass",
		Name:     "Jane",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	result, err := svc.Login(context.Background(), "Jane@Example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected token in result")
	}
	if result.User.Email != "jane@example.com" {
		t.Fatalf("expected user in result, got %q", result.User.Email)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := newAuthService(newMemUserRepo(), newMemProfileRepo())

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:    "jane@example.com",
		Password: "s3cret-pass",
		Name:     "Jane",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := svc.Login(context.Background(), "jane@example.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc := newAuthService(newMemUserRepo(), newMemProfileRepo())

	// Missing account and wrong password must be indistinguishable.
	if _, err := svc.Login(context.Background(), "nobody@example.com", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

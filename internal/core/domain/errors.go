package domain

import "errors"

var (
	// ErrInvalidCredentials covers bad login input and wrong passwords alike,
	// so the response never reveals which part was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")

	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("token malformed")

	ErrForbidden = errors.New("access forbidden")

	// ErrInviteNotFound covers missing, already-used and expired invites.
	// Collapsing the three keeps invite state from leaking to the caller.
	ErrInviteNotFound = errors.New("invite not found")
	// ErrLinkExists is returned when either side of an invite already holds
	// an active partner link.
	ErrLinkExists   = errors.New("active partner link already exists")
	ErrNoActiveLink = errors.New("no active partner link")

	ErrNotFound = errors.New("resource not found")
)

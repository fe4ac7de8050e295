package domain

import "time"

// Role is the closed set of actor roles in the system.
type Role string

const (
	// RolePrimary is the person tracking their own menopause journey.
	RolePrimary Role = "primary"
	// RolePartner is a linked supporter with read access gated by sharing flags.
	RolePartner Role = "partner"
	// RoleAdmin is the content team.
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RolePrimary, RolePartner, RoleAdmin:
		return true
	}
	return false
}

// User models an authenticated actor. Email is stored lowercased and is
// unique. Role is mutable: accepting a partner invite flips a user to
// RolePartner.
type User struct {
	ID                     string    `json:"id" bson:"_id,omitempty"`
	Email                  string    `json:"email" bson:"email"`
	PasswordHash           string    `json:"-" bson:"password_hash"`
	Name                   string    `json:"name" bson:"name"`
	Role                   Role      `json:"role" bson:"role"`
	HasCompletedOnboarding bool      `json:"has_completed_onboarding" bson:"has_completed_onboarding"`
	CreatedAt              time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt              time.Time `json:"updated_at" bson:"updated_at"`
}

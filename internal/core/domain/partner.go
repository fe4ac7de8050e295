package domain

import "time"

// InviteTTL is how long a partner invite stays redeemable.
const InviteTTL = 7 * 24 * time.Hour

// InviteCodeLength is the length of the uppercase alphanumeric invite code.
const InviteCodeLength = 8

// SharingFlags controls which data categories a linked partner may view.
// The flags are copied from the invite onto the link at acceptance and are
// independently editable afterwards.
type SharingFlags struct {
	ShareSymptoms       bool `json:"share_symptoms" bson:"share_symptoms"`
	ShareMood           bool `json:"share_mood" bson:"share_mood"`
	ShareDailyStatus    bool `json:"share_daily_status" bson:"share_daily_status"`
	EnableNotifications bool `json:"enable_notifications" bson:"enable_notifications"`
}

// PartnerInvite is a single-use, time-limited code a primary user hands to
// their partner out-of-band.
type PartnerInvite struct {
	ID              string       `json:"id" bson:"_id,omitempty"`
	Code            string       `json:"invite_code" bson:"invite_code"`
	PrimaryUserID   string       `json:"primary_user_id" bson:"primary_user_id"`
	PrimaryUserName string       `json:"primary_user_name" bson:"primary_user_name"`
	Flags           SharingFlags `json:"flags" bson:"flags"`
	ExpiresAt       time.Time    `json:"expires_at" bson:"expires_at"`
	IsUsed          bool         `json:"is_used" bson:"is_used"`
	CreatedAt       time.Time    `json:"created_at" bson:"created_at"`
}

// Redeemable reports whether the invite can still be accepted at now.
// Redemption is terminal: once used the invite never becomes redeemable again.
func (i *PartnerInvite) Redeemable(now time.Time) bool {
	return !i.IsUsed && now.Before(i.ExpiresAt)
}

// PartnerLink is the durable relation between exactly one primary user and
// one partner user. Revocation deactivates the link but keeps the record.
type PartnerLink struct {
	ID              string       `json:"id" bson:"_id,omitempty"`
	PrimaryUserID   string       `json:"primary_user_id" bson:"primary_user_id"`
	PrimaryUserName string       `json:"primary_user_name" bson:"primary_user_name"`
	PartnerUserID   string       `json:"partner_user_id" bson:"partner_user_id"`
	Flags           SharingFlags `json:"flags" bson:"flags"`
	IsActive        bool         `json:"is_active" bson:"is_active"`
	CreatedAt       time.Time    `json:"created_at" bson:"created_at"`
	RevokedAt       *time.Time   `json:"revoked_at,omitempty" bson:"revoked_at,omitempty"`
}

package domain

import "time"

// Profile holds the onboarding and demographic data of a user, kept apart
// from the credential record.
type Profile struct {
	ID                   string         `json:"id" bson:"_id,omitempty"`
	UserID               string         `json:"user_id" bson:"user_id"`
	AgeRange             string         `json:"age_range,omitempty" bson:"age_range,omitempty"`
	Ethnicity            string         `json:"ethnicity,omitempty" bson:"ethnicity,omitempty"`
	Country              string         `json:"country,omitempty" bson:"country,omitempty"`
	MenopauseStage       MenopauseStage `json:"menopause_stage,omitempty" bson:"menopause_stage,omitempty"`
	MedicalConditions    []string       `json:"medical_conditions,omitempty" bson:"medical_conditions,omitempty"`
	MedicalNotes         string         `json:"medical_notes,omitempty" bson:"medical_notes,omitempty"`
	ConsentDataStorage   bool           `json:"consent_data_storage" bson:"consent_data_storage"`
	ConsentResearch      bool           `json:"consent_research" bson:"consent_research"`
	ConsentPartnerInvite bool           `json:"consent_partner_invites" bson:"consent_partner_invites"`
	CreatedAt            time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at" bson:"updated_at"`
}

// Reminder is a self-scoped recurring prompt (water, walk, bedtime, ...).
// Days holds lowercase weekday abbreviations; empty means daily.
type Reminder struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	UserID        string    `json:"user_id" bson:"user_id"`
	Type          string    `json:"type" bson:"type"`
	Title         string    `json:"title" bson:"title"`
	Time          string    `json:"time" bson:"time"`
	Days          []string  `json:"days" bson:"days"`
	Enabled       bool      `json:"enabled" bson:"enabled"`
	CustomMessage string    `json:"custom_message,omitempty" bson:"custom_message,omitempty"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}

// PushToken is a registered device token. Tokens are stored but never
// dispatched to by this service.
type PushToken struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	UserID     string    `json:"user_id" bson:"user_id"`
	Token      string    `json:"token" bson:"token"`
	DeviceType string    `json:"device_type" bson:"device_type"`
	UpdatedAt  time.Time `json:"updated_at" bson:"updated_at"`
}

// Notification is an in-app care ping delivered to a partner when their
// linked primary user logs a hard day.
type Notification struct {
	ID              string    `json:"id" bson:"_id,omitempty"`
	PartnerUserID   string    `json:"partner_user_id" bson:"partner_user_id"`
	PrimaryUserID   string    `json:"primary_user_id" bson:"primary_user_id"`
	PrimaryUserName string    `json:"primary_user_name" bson:"primary_user_name"`
	Kind            string    `json:"kind" bson:"kind"`
	Message         string    `json:"message" bson:"message"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`
}

package domain

import "time"

// Symptom is a catalog entry users pick from when logging. User-defined
// symptoms enter unreviewed and stay hidden from the catalog until an admin
// reviews them.
type Symptom struct {
	ID            string           `json:"id" bson:"_id,omitempty"`
	Name          string           `json:"name" bson:"name"`
	Description   string           `json:"description,omitempty" bson:"description,omitempty"`
	Category      SymptomCategory  `json:"category" bson:"category"`
	Stages        []MenopauseStage `json:"stages" bson:"stages"`
	IsUserDefined bool             `json:"is_user_defined" bson:"is_user_defined"`
	CreatedBy     string           `json:"created_by,omitempty" bson:"created_by,omitempty"`
	Reviewed      bool             `json:"reviewed" bson:"reviewed"`
	CreatedAt     time.Time        `json:"created_at" bson:"created_at"`
}

// Article is a curated library entry, authored by admins only.
type Article struct {
	ID            string           `json:"id" bson:"_id,omitempty"`
	Title         string           `json:"title" bson:"title"`
	Summary       string           `json:"summary" bson:"summary"`
	Content       string           `json:"content" bson:"content"`
	Category      string           `json:"category" bson:"category"`
	Tags          []string         `json:"tags" bson:"tags"`
	Stages        []MenopauseStage `json:"stages" bson:"stages"`
	SymptomTags   []string         `json:"symptom_tags" bson:"symptom_tags"`
	EthnicityTags []string         `json:"ethnicity_tags" bson:"ethnicity_tags"`
	Audience      string           `json:"audience" bson:"audience"`
	CreatedBy     string           `json:"-" bson:"created_by,omitempty"`
	CreatedAt     time.Time        `json:"created_at" bson:"created_at"`
}

// Event is a workshop, walk, exercise session or webinar.
type Event struct {
	ID               string     `json:"id" bson:"_id,omitempty"`
	Title            string     `json:"title" bson:"title"`
	Description      string     `json:"description" bson:"description"`
	EventType        string     `json:"event_type" bson:"event_type"`
	IsOnline         bool       `json:"is_online" bson:"is_online"`
	Location         string     `json:"location,omitempty" bson:"location,omitempty"`
	Link             string     `json:"link,omitempty" bson:"link,omitempty"`
	StartTime        time.Time  `json:"start_time" bson:"start_time"`
	EndTime          *time.Time `json:"end_time,omitempty" bson:"end_time,omitempty"`
	RegistrationLink string     `json:"registration_link,omitempty" bson:"registration_link,omitempty"`
	CreatedBy        string     `json:"-" bson:"created_by,omitempty"`
	CreatedAt        time.Time  `json:"created_at" bson:"created_at"`
}

// Specialist is a directory entry for a menopause professional.
type Specialist struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Credentials string    `json:"credentials" bson:"credentials"`
	Bio         string    `json:"bio" bson:"bio"`
	Specialties []string  `json:"specialties" bson:"specialties"`
	Services    []string  `json:"services" bson:"services"`
	IsOnline    bool      `json:"is_online" bson:"is_online"`
	Location    string    `json:"location,omitempty" bson:"location,omitempty"`
	Website     string    `json:"website,omitempty" bson:"website,omitempty"`
	Phone       string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Email       string    `json:"email,omitempty" bson:"email,omitempty"`
	BookingLink string    `json:"booking_link,omitempty" bson:"booking_link,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

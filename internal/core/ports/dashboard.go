package ports

import (
	"context"
	"time"

	"github.com/adelphi-health/companion-api/internal/core/domain"
)

// PartnerDashboard is the derived view a linked partner sees. It is
// recomputed on every call; nothing here is persisted.
type PartnerDashboard struct {
	PrimaryUserName  string
	TodayStatus      domain.TodayStatus
	RecentMoodTrend  domain.MoodTrend
	SuggestedActions []string
	LastUpdated      time.Time
}

// CheckinSuggestion is one nudge on the primary user's own dashboard.
type CheckinSuggestion struct {
	Type        string
	Title       string
	Description string
}

// CheckinSummary is the primary user's own daily overview.
type CheckinSummary struct {
	HasLoggedSymptomsToday  bool
	HasLoggedMoodToday      bool
	HasLoggedLifestyleToday bool
	TodayMoodScore          *int
	TodaySymptomCount       int
	Suggestions             []CheckinSuggestion
}

type DashboardService interface {
	// PartnerDashboard derives the shared view for a partner. Fails with
	// domain.ErrNoActiveLink when the partner holds no active link.
	PartnerDashboard(ctx context.Context, partnerUserID string) (*PartnerDashboard, error)
	// CheckinSummary derives the caller's own daily overview.
	CheckinSummary(ctx context.Context, userID string) (*CheckinSummary, error)
}

// Insight is one independent entry in the insights sequence. Data carries
// the entry-specific payload shape.
type Insight struct {
	Type  string
	Title string
	Data  any
}

// SymptomCount pairs a symptom name with its occurrence tally.
type SymptomCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type InsightService interface {
	// Insights computes the caller's 30-day summary. Absent underlying data
	// silently omits the corresponding entry.
	Insights(ctx context.Context, userID string) ([]Insight, error)
}

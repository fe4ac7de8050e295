package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/adelphi-health/companion-api/internal/core/ports"
)

type DashboardHandler struct {
	dashboardService ports.DashboardService
}

func NewDashboardHandler(dashboardService ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

type partnerDashboardResponse struct {
	PrimaryUserName  string    `json:"primary_user_name"`
	TodayStatus      string    `json:"today_status"`
	RecentMoodTrend  string    `json:"recent_mood_trend"`
	SuggestedActions []string  `json:"suggested_actions"`
	LastUpdated      time.Time `json:"last_updated"`
}

type checkinSuggestionResponse struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type checkinSummaryResponse struct {
	HasLoggedSymptomsToday  bool                        `json:"has_logged_symptoms_today"`
	HasLoggedMoodToday      bool                        `json:"has_logged_mood_today"`
	HasLoggedLifestyleToday bool                        `json:"has_logged_lifestyle_today"`
	TodayMoodScore          *int                        `json:"today_mood_score"`
	TodaySymptomCount       int                         `json:"today_symptom_count"`
	Suggestions             []checkinSuggestionResponse `json:"suggestions"`
}

// PartnerDashboard returns the derived view for a linked partner. The shape
// never exposes raw log entries, only the coarse status and trend.
//
// @Summary      Partner dashboard
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  partnerDashboardResponse
// @Failure      404  {object}  map[string]string
// @Router       /v1/partner/dashboard [get]
func (h *DashboardHandler) PartnerDashboard(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	dashboard, err := h.dashboardService.PartnerDashboard(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, partnerDashboardResponse{
		PrimaryUserName:  dashboard.PrimaryUserName,
		TodayStatus:      string(dashboard.TodayStatus),
		RecentMoodTrend:  string(dashboard.RecentMoodTrend),
		SuggestedActions: dashboard.SuggestedActions,
		LastUpdated:      dashboard.LastUpdated,
	})
}

// CheckinSummary returns the caller's own daily overview with nudges for
// anything not yet logged today.
//
// @Summary      Daily check-in summary
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  checkinSummaryResponse
// @Router       /v1/checkin [get]
func (h *DashboardHandler) CheckinSummary(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	summary, err := h.dashboardService.CheckinSummary(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	suggestions := make([]checkinSuggestionResponse, 0, len(summary.Suggestions))
	for _, s := range summary.Suggestions {
		suggestions = append(suggestions, checkinSuggestionResponse{
			Type:        s.Type,
			Title:       s.Title,
			Description: s.Description,
		})
	}

	return c.JSON(http.StatusOK, checkinSummaryResponse{
		HasLoggedSymptomsToday:  summary.HasLoggedSymptomsToday,
		HasLoggedMoodToday:      summary.HasLoggedMoodToday,
		HasLoggedLifestyleToday: summary.HasLoggedLifestyleToday,
		TodayMoodScore:          summary.TodayMoodScore,
		TodaySymptomCount:       summary.TodaySymptomCount,
		Suggestions:             suggestions,
	})
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adelphi-health/companion-api/internal/core/domain"
	"github.com/adelphi-health/companion-api/internal/core/ports"
)

type ProfileHandler struct {
	profileService ports.ProfileService
}

func NewProfileHandler(profileService ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

type onboardingRequest struct {
	AgeRange             string   `json:"age_range" validate:"required"`
	Ethnicity            string   `json:"ethnicity"`
	Country              string   `json:"country"`
	MenopauseStage       string   `json:"menopause_stage" validate:"required,oneof=pre-menopause peri-menopause menopause post-menopause not-sure-yet"`
	MedicalConditions    []string `json:"medical_conditions"`
	MedicalNotes         string   `json:"medical_notes"`
	ConsentDataStorage   bool     `json:"consent_data_storage" validate:"required"`
	ConsentResearch      bool     `json:"consent_research"`
	ConsentPartnerInvite bool     `json:"consent_partner_invites"`
}

type profileUpdateRequest struct {
	Name              *string  `json:"name"`
	AgeRange          *string  `json:"age_range"`
	Ethnicity         *string  `json:"ethnicity"`
	Country           *string  `json:"country"`
	MenopauseStage    *string  `json:"menopause_stage" validate:"omitempty,oneof=pre-menopause peri-menopause menopause post-menopause not-sure-yet"`
	MedicalConditions []string `json:"medical_conditions"`
	MedicalNotes      *string  `json:"medical_notes"`
}

type reminderRequest struct {
	Type          string   `json:"type" validate:"required"`
	Title         string   `json:"title" validate:"required"`
	Time          string   `json:"time" validate:"required"`
	Days          []string `json:"days"`
	Enabled       bool     `json:"enabled"`
	CustomMessage string   `json:"custom_message"`
}

type reminderUpdateRequest struct {
	Enabled       *bool    `json:"enabled"`
	Time          *string  `json:"time"`
	Days          []string `json:"days"`
	CustomMessage *string  `json:"custom_message"`
}

type pushTokenRequest struct {
	Token      string `json:"token" validate:"required"`
	DeviceType string `json:"device_type" validate:"required,oneof=ios android web"`
}

type statusResponse struct {
	Status string `json:"status"`
}

// CompleteOnboarding stores the onboarding answers and marks the account as
// onboarded. Re-submitting overwrites the previous answers.
//
// @Summary      Complete onboarding
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      onboardingRequest  true  "Onboarding answers"
// @Success      200   {object}  statusResponse
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/onboarding [post]
func (h *ProfileHandler) CompleteOnboarding(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req onboardingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	err = h.profileService.CompleteOnboarding(c.Request().Context(), user, ports.OnboardingInput{
		AgeRange:             req.AgeRange,
		Ethnicity:            req.Ethnicity,
		Country:              req.Country,
		MenopauseStage:       domain.MenopauseStage(req.MenopauseStage),
		MedicalConditions:    req.MedicalConditions,
		MedicalNotes:         req.MedicalNotes,
		ConsentDataStorage:   req.ConsentDataStorage,
		ConsentResearch:      req.ConsentResearch,
		ConsentPartnerInvite: req.ConsentPartnerInvite,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, statusResponse{Status: "ok"})
}

// GetProfile returns the caller's profile document.
//
// @Summary      Get profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Profile
// @Failure      404  {object}  map[string]string
// @Router       /v1/profile [get]
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	profile, err := h.profileService.GetProfile(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// UpdateProfile applies a partial profile edit.
//
// @Summary      Update profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      profileUpdateRequest  true  "Fields to update"
// @Success      200   {object}  statusResponse
// @Failure      400   {object}  map[string]string
// @Router       /v1/profile [put]
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req profileUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	update := ports.ProfileUpdate{
		Name:              req.Name,
		AgeRange:          req.AgeRange,
		Ethnicity:         req.Ethnicity,
		Country:           req.Country,
		MedicalConditions: req.MedicalConditions,
		MedicalNotes:      req.MedicalNotes,
	}
	if req.MenopauseStage != nil {
		stage := domain.MenopauseStage(*req.MenopauseStage)
		update.MenopauseStage = &stage
	}

	if err := h.profileService.UpdateProfile(c.Request().Context(), user, update); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Status: "ok"})
}

// CreateReminder registers a recurring prompt.
//
// @Summary      Create a reminder
// @Tags         reminders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      reminderRequest  true  "Reminder details"
// @Success      201   {object}  domain.Reminder
// @Failure      400   {object}  map[string]string
// @Router       /v1/reminders [post]
func (h *ProfileHandler) CreateReminder(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req reminderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	reminder, err := h.profileService.CreateReminder(c.Request().Context(), user, ports.ReminderInput{
		Type:          req.Type,
		Title:         req.Title,
		Time:          req.Time,
		Days:          req.Days,
		Enabled:       req.Enabled,
		CustomMessage: req.CustomMessage,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, reminder)
}

// ListReminders returns the caller's reminders.
//
// @Summary      List reminders
// @Tags         reminders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Reminder
// @Router       /v1/reminders [get]
func (h *ProfileHandler) ListReminders(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	reminders, err := h.profileService.ListReminders(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reminders)
}

// UpdateReminder applies a partial edit to one of the caller's reminders.
//
// @Summary      Update a reminder
// @Tags         reminders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Reminder id"
// @Param        body  body      reminderUpdateRequest  true  "Fields to update"
// @Success      200   {object}  statusResponse
// @Failure      404   {object}  map[string]string
// @Router       /v1/reminders/{id} [put]
func (h *ProfileHandler) UpdateReminder(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req reminderUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	err = h.profileService.UpdateReminder(c.Request().Context(), user.ID, c.Param("id"), ports.ReminderUpdate{
		Enabled:       req.Enabled,
		Time:          req.Time,
		Days:          req.Days,
		CustomMessage: req.CustomMessage,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Status: "ok"})
}

// DeleteReminder removes one of the caller's reminders.
//
// @Summary      Delete a reminder
// @Tags         reminders
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Reminder id"
// @Success      200  {object}  statusResponse
// @Failure      404  {object}  map[string]string
// @Router       /v1/reminders/{id} [delete]
func (h *ProfileHandler) DeleteReminder(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.profileService.DeleteReminder(c.Request().Context(), user.ID, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Status: "ok"})
}

// RegisterPushToken stores a device token. Tokens are retained for a future
// delivery channel; nothing is pushed to them.
//
// @Summary      Register a push token
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      pushTokenRequest  true  "Device token"
// @Success      200   {object}  statusResponse
// @Failure      400   {object}  map[string]string
// @Router       /v1/push-token [post]
func (h *ProfileHandler) RegisterPushToken(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req pushTokenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.profileService.RegisterPushToken(c.Request().Context(), user.ID, req.Token, req.DeviceType); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Status: "ok"})
}

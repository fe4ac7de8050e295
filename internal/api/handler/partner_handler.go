package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/adelphi-health/companion-api/internal/api/metrics"
	"github.com/adelphi-health/companion-api/internal/core/domain"
	"github.com/adelphi-health/companion-api/internal/core/ports"
)

type PartnerHandler struct {
	partnerService      ports.PartnerService
	notificationService ports.NotificationService
}

func NewPartnerHandler(partnerService ports.PartnerService, notificationService ports.NotificationService) *PartnerHandler {
	return &PartnerHandler{partnerService: partnerService, notificationService: notificationService}
}

type sharingFlagsRequest struct {
	ShareSymptoms       bool `json:"share_symptoms"`
	ShareMood           bool `json:"share_mood"`
	ShareDailyStatus    bool `json:"share_daily_status"`
	EnableNotifications bool `json:"enable_notifications"`
}

type acceptInviteResponse struct {
	Link            *domain.PartnerLink `json:"link"`
	PrimaryUserName string              `json:"primary_user_name"`
}

func (r sharingFlagsRequest) toFlags() domain.SharingFlags {
	return domain.SharingFlags{
		ShareSymptoms:       r.ShareSymptoms,
		ShareMood:           r.ShareMood,
		ShareDailyStatus:    r.ShareDailyStatus,
		EnableNotifications: r.EnableNotifications,
	}
}

// CreateInvite issues a single-use invite code. The code travels to the
// partner out-of-band; it expires after seven days.
//
// @Summary      Create a partner invite
// @Tags         partner
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      sharingFlagsRequest  true  "Sharing settings for the future link"
// @Success      201   {object}  domain.PartnerInvite
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /v1/partner/invite [post]
func (h *PartnerHandler) CreateInvite(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req sharingFlagsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	invite, err := h.partnerService.CreateInvite(c.Request().Context(), user, req.toFlags())
	if err != nil {
		return err
	}

	metrics.InvitesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, invite)
}

// AcceptInvite redeems the invite code from the URL and creates the active
// link. The caller becomes a partner account regardless of their previous role.
//
// @Summary      Accept a partner invite
// @Tags         partner
// @Produce      json
// @Security     BearerAuth
// @Param        code  path      string  true  "Invite code"
// @Success      200   {object}  acceptInviteResponse
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/partner/accept/{code} [post]
func (h *PartnerHandler) AcceptInvite(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	code := c.Param("code")
	if code == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing invite code")
	}

	result, err := h.partnerService.AcceptInvite(c.Request().Context(), code, user)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInviteNotFound):
			metrics.InviteFailuresTotal.WithLabelValues("not_found").Inc()
		case errors.Is(err, domain.ErrLinkExists):
			metrics.InviteFailuresTotal.WithLabelValues("conflict").Inc()
		}
		return err
	}

	metrics.InvitesAcceptedTotal.Inc()
	return c.JSON(http.StatusOK, acceptInviteResponse{
		Link:            result.Link,
		PrimaryUserName: result.PrimaryUserName,
	})
}

// GetLink returns the caller's active link from either side.
//
// @Summary      Get the active partner link
// @Tags         partner
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.PartnerLink
// @Failure      404  {object}  map[string]string
// @Router       /v1/partner/link [get]
func (h *PartnerHandler) GetLink(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	link, err := h.partnerService.GetLink(c.Request().Context(), user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, link)
}

// RevokeLink deactivates the caller's active link. Only the primary side can
// revoke; the link record is retained.
//
// @Summary      Revoke the active partner link
// @Tags         partner
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  statusResponse
// @Failure      404  {object}  map[string]string
// @Router       /v1/partner/link [delete]
func (h *PartnerHandler) RevokeLink(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.partnerService.RevokeLink(c.Request().Context(), user); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Status: "ok"})
}

// UpdateLinkSettings replaces the sharing flags on the caller's active link.
//
// @Summary      Update sharing settings
// @Tags         partner
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      sharingFlagsRequest  true  "New sharing settings"
// @Success      200   {object}  statusResponse
// @Failure      404   {object}  map[string]string
// @Router       /v1/partner/link/settings [put]
func (h *PartnerHandler) UpdateLinkSettings(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req sharingFlagsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.partnerService.UpdateLinkSettings(c.Request().Context(), user, req.toFlags()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Status: "ok"})
}

// Notifications returns the caller's care ping inbox, newest first.
//
// @Summary      List partner notifications
// @Tags         partner
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query    int  false  "Maximum entries (default 50)"
// @Success      200    {array}  domain.Notification
// @Router       /v1/partner/notifications [get]
func (h *PartnerHandler) Notifications(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	limit, _ := strconv.ParseInt(c.QueryParam("limit"), 10, 64)
	notifications, err := h.notificationService.PartnerNotifications(c.Request().Context(), user.ID, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notifications)
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adelphi-health/companion-api/internal/api/middleware"
	"github.com/adelphi-health/companion-api/internal/core/domain"
)

// currentUser extracts the authenticated user injected by the Auth middleware.
// Its presence proves the middleware ran; absence on a protected route is a
// wiring bug and fails closed with 401.
func currentUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.UserContextKey).(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}

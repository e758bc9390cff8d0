package handler

import (
	"log/slog"
	"net/http"

	"campustrace/internal/delivery/http/response"
	"campustrace/internal/domain/constants"
	"campustrace/internal/domain/entity"
	"campustrace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionHandler exposes the session bootstrapper over HTTP.
type SessionHandler struct {
	uc     usecase.BootstrapUsecase
	logger *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(uc usecase.BootstrapUsecase, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{uc: uc, logger: logger}
}

type bootstrapRequest struct {
	RefreshToken string `json:"refresh_token"`
	AuthCode     string `json:"auth_code"`
}

// Bootstrap runs the startup sequence with whatever credentials the client
// still holds and returns the settled snapshot. Failures settle anonymous,
// so this endpoint never errors on bad credentials.
func (h *SessionHandler) Bootstrap(c echo.Context) error {
	var req bootstrapRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid bootstrap input")
	}

	snapshot := h.uc.Bootstrap(c.Request().Context(), usecase.BootstrapInput{
		RefreshToken: req.RefreshToken,
		AuthCode:     req.AuthCode,
	})

	return response.Success(c, http.StatusOK, snapshot, "Session bootstrapped")
}

// Snapshot returns the current point-in-time auth state.
func (h *SessionHandler) Snapshot(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.Snapshot(), "Session state")
}

// Refresh silently renews the session.
func (h *SessionHandler) Refresh(c echo.Context) error {
	snapshot, err := h.uc.Refresh(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, snapshot, "Session refreshed")
}

// SignOut ends the current session.
func (h *SessionHandler) SignOut(c echo.Context) error {
	if err := h.uc.SignOut(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.uc.Snapshot(), "Signed out")
}

// MagicLinkCallback lands a magic link click. The one-time code is exchanged
// through the bootstrapper so the ordering and settle-once rules hold, then
// the browser is sent to the right page for the outcome.
func (h *SessionHandler) MagicLinkCallback(c echo.Context) error {
	code := c.QueryParam("code")
	if code == "" {
		return c.Redirect(http.StatusFound, constants.RouteSignIn)
	}

	snapshot := h.uc.Bootstrap(c.Request().Context(), usecase.BootstrapInput{AuthCode: code})
	if !snapshot.Authenticated() {
		return c.Redirect(http.StatusFound, constants.RouteSignIn)
	}

	if snapshot.Profile != nil && snapshot.Profile.Role.Matches(entity.RoleAdmin) {
		return c.Redirect(http.StatusFound, constants.RouteAdminDashboard)
	}

	return c.Redirect(http.StatusFound, constants.RouteMemberDashboard)
}

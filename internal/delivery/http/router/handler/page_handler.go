package handler

import (
	"net/http"

	"campustrace/internal/delivery/http/response"
	"campustrace/internal/usecase"

	"github.com/labstack/echo/v4"
)

// PageHandler serves the app shell entry points the route guards sit in
// front of. The pages themselves are rendered client-side; these endpoints
// hand the client its settled auth state.
type PageHandler struct {
	bootstrap usecase.BootstrapUsecase
}

// NewPageHandler is the constructor for PageHandler, injected by Fx.
func NewPageHandler(bootstrap usecase.BootstrapUsecase) *PageHandler {
	return &PageHandler{bootstrap: bootstrap}
}

// SignInPage serves the sign-in entry point.
func (h *PageHandler) SignInPage(c echo.Context) error {
	return h.page(c, "signin")
}

// MemberDashboard serves the member dashboard entry point.
func (h *PageHandler) MemberDashboard(c echo.Context) error {
	return h.page(c, "dashboard")
}

// AdminDashboard serves the admin dashboard entry point.
func (h *PageHandler) AdminDashboard(c echo.Context) error {
	return h.page(c, "admin")
}

func (h *PageHandler) page(c echo.Context, name string) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"page":     name,
		"snapshot": h.bootstrap.Snapshot(),
	}, "Page ready")
}

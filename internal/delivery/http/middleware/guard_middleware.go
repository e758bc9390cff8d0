package middleware

import (
	"net/http"

	"campustrace/internal/domain/entity"
	"campustrace/internal/usecase"

	"github.com/labstack/echo/v4"
)

// GuardMiddleware applies route guards backed by the bootstrap snapshot.
// While the snapshot is still loading, guarded routes answer 503 with a
// Retry-After hint instead of bouncing the requester to the sign-in page.
type GuardMiddleware struct {
	bootstrap usecase.BootstrapUsecase
}

// NewGuardMiddleware is the constructor for GuardMiddleware.
func NewGuardMiddleware(bootstrap usecase.BootstrapUsecase) *GuardMiddleware {
	return &GuardMiddleware{bootstrap: bootstrap}
}

// Protected guards routes that require any signed-in user.
func (m *GuardMiddleware) Protected(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		return m.apply(c, next, usecase.EvaluateProtected(m.bootstrap.Snapshot()))
	}
}

// RoleGated guards routes that require a specific role.
func (m *GuardMiddleware) RoleGated(required entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			return m.apply(c, next, usecase.EvaluateRoleGated(m.bootstrap.Snapshot(), required))
		}
	}
}

// PublicOnly guards routes that only make sense signed out.
func (m *GuardMiddleware) PublicOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		return m.apply(c, next, usecase.EvaluatePublicOnly(m.bootstrap.Snapshot()))
	}
}

func (m *GuardMiddleware) apply(c echo.Context, next echo.HandlerFunc, decision usecase.GuardDecision) error {
	switch decision.Action {
	case usecase.GuardPlaceholder:
		c.Response().Header().Set("Retry-After", "1")
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "initializing"})
	case usecase.GuardRedirect:
		return c.Redirect(http.StatusFound, decision.RedirectTo)
	default:
		return next(c)
	}
}

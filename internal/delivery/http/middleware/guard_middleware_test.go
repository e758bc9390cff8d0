package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"campustrace/internal/domain/constants"
	"campustrace/internal/domain/entity"
	"campustrace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticBootstrap serves a fixed snapshot, standing in for a bootstrapper in
// a known state.
type staticBootstrap struct {
	snapshot entity.BootstrapSnapshot
}

func (b *staticBootstrap) Bootstrap(context.Context, usecase.BootstrapInput) entity.BootstrapSnapshot {
	return b.snapshot
}

func (b *staticBootstrap) Snapshot() entity.BootstrapSnapshot { return b.snapshot }

func (b *staticBootstrap) Refresh(context.Context) (entity.BootstrapSnapshot, error) {
	return b.snapshot, nil
}

func (b *staticBootstrap) SignOut(context.Context) error { return nil }

func (b *staticBootstrap) Close() {}

func authenticatedSnapshot(role entity.Role) entity.BootstrapSnapshot {
	userID := uuid.New()

	return entity.BootstrapSnapshot{
		Phase:   entity.PhaseReadyAuthenticated,
		Session: &entity.Session{UserID: userID, Email: "casey@uni.edu"},
		Profile: &entity.Profile{UserID: userID, Role: role},
	}
}

// serveGuarded runs one request through a guard and records the response.
func serveGuarded(t *testing.T, guard echo.MiddlewareFunc) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := guard(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))

	return rec
}

func TestGuardMiddleware_Protected_LoadingAnswersPlaceholder(t *testing.T) {
	m := NewGuardMiddleware(&staticBootstrap{
		snapshot: entity.BootstrapSnapshot{Phase: entity.PhaseInitializing},
	})

	rec := serveGuarded(t, m.Protected)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "initializing")
}

func TestGuardMiddleware_Protected_AnonymousRedirectsToSignIn(t *testing.T) {
	m := NewGuardMiddleware(&staticBootstrap{
		snapshot: entity.BootstrapSnapshot{Phase: entity.PhaseReadyAnonymous},
	})

	rec := serveGuarded(t, m.Protected)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, constants.RouteSignIn, rec.Header().Get("Location"))
}

func TestGuardMiddleware_Protected_AuthenticatedPassesThrough(t *testing.T) {
	m := NewGuardMiddleware(&staticBootstrap{snapshot: authenticatedSnapshot(entity.RoleMember)})

	rec := serveGuarded(t, m.Protected)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGuardMiddleware_RoleGated_MemberRedirectedFromAdminRoute(t *testing.T) {
	m := NewGuardMiddleware(&staticBootstrap{snapshot: authenticatedSnapshot(entity.RoleMember)})

	rec := serveGuarded(t, m.RoleGated(entity.RoleAdmin))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, constants.RouteMemberDashboard, rec.Header().Get("Location"))
}

func TestGuardMiddleware_RoleGated_AdminPassesThrough(t *testing.T) {
	m := NewGuardMiddleware(&staticBootstrap{snapshot: authenticatedSnapshot(entity.RoleAdmin)})

	rec := serveGuarded(t, m.RoleGated(entity.RoleAdmin))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGuardMiddleware_PublicOnly_LoadingAnswersPlaceholder(t *testing.T) {
	m := NewGuardMiddleware(&staticBootstrap{
		snapshot: entity.BootstrapSnapshot{Phase: entity.PhaseInitializing},
	})

	rec := serveGuarded(t, m.PublicOnly)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
}

func TestGuardMiddleware_PublicOnly_SignedInUserSentToDashboard(t *testing.T) {
	tests := []struct {
		name string
		role entity.Role
		want string
	}{
		{name: "member lands on the member dashboard", role: entity.RoleMember, want: constants.RouteMemberDashboard},
		{name: "admin lands on the admin dashboard", role: entity.RoleAdmin, want: constants.RouteAdminDashboard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewGuardMiddleware(&staticBootstrap{snapshot: authenticatedSnapshot(tt.role)})

			rec := serveGuarded(t, m.PublicOnly)

			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, tt.want, rec.Header().Get("Location"))
		})
	}
}

func TestGuardMiddleware_PublicOnly_AnonymousPassesThrough(t *testing.T) {
	m := NewGuardMiddleware(&staticBootstrap{
		snapshot: entity.BootstrapSnapshot{Phase: entity.PhaseReadyAnonymous},
	})

	rec := serveGuarded(t, m.PublicOnly)

	assert.Equal(t, http.StatusOK, rec.Code)
}

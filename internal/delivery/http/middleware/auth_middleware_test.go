package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"campustrace/config"
	"campustrace/internal/domain/entity"
	"campustrace/internal/domain/service"
	"campustrace/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestTokenService(t *testing.T) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return tokenSvc
}

// serveAuthenticated runs one request through Authenticate plus an optional
// role gate and records the response.
func serveAuthenticated(t *testing.T, m *AuthMiddleware, required entity.Role, authorization string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}
	if required != "" {
		handler = m.RequireRole(required)(handler)
	}
	require.NoError(t, m.Authenticate(handler)(c))

	return rec
}

func TestAuthMiddleware_AdminTokenAuthorizesAdminRoute(t *testing.T) {
	tokenSvc := createTestTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	// The token pair issued at sign-in carries the profile's role; a fresh
	// admin token must clear the admin gate without any further lookup.
	accessToken, _, err := tokenSvc.GenerateTokens(uuid.New(), "dean@uni.edu", "admin")
	require.NoError(t, err)

	rec := serveAuthenticated(t, m, entity.RoleAdmin, "Bearer "+accessToken)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_RolelessTokenRejectedByRoleGate(t *testing.T) {
	tokenSvc := createTestTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	accessToken, _, err := tokenSvc.GenerateTokens(uuid.New(), "casey@uni.edu", "")
	require.NoError(t, err)

	rec := serveAuthenticated(t, m, entity.RoleAdmin, "Bearer "+accessToken)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthMiddleware_MemberTokenRejectedOnAdminRoute(t *testing.T) {
	tokenSvc := createTestTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	accessToken, _, err := tokenSvc.GenerateTokens(uuid.New(), "casey@uni.edu", "member")
	require.NoError(t, err)

	rec := serveAuthenticated(t, m, entity.RoleAdmin, "Bearer "+accessToken)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthMiddleware_AdminTokenClearsModeratorGate(t *testing.T) {
	tokenSvc := createTestTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	accessToken, _, err := tokenSvc.GenerateTokens(uuid.New(), "dean@uni.edu", "admin")
	require.NoError(t, err)

	rec := serveAuthenticated(t, m, entity.RoleModerator, "Bearer "+accessToken)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_MissingHeaderRejected(t *testing.T) {
	m := NewAuthMiddleware(createTestTokenService(t))

	rec := serveAuthenticated(t, m, "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RefreshTokenRejectedOnAPIRoute(t *testing.T) {
	tokenSvc := createTestTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	_, refreshToken, err := tokenSvc.GenerateTokens(uuid.New(), "casey@uni.edu", "member")
	require.NoError(t, err)

	rec := serveAuthenticated(t, m, "", "Bearer "+refreshToken)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_UserIDFallsBackToNil(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Equal(t, uuid.Nil, UserID(c))
}

// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"campustrace/internal/delivery/http/middleware"
	"campustrace/internal/delivery/http/response"
	"campustrace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, logger: logger}
}

type signUpRequest struct {
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8"`
	FullName     string `json:"full_name" validate:"required"`
	CaptchaToken string `json:"captcha_token" validate:"required"`
}

// SignUp handles password-based registration.
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-up input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	session, err := h.uc.SignUp(c.Request().Context(), usecase.SignUpInput{
		Email:        req.Email,
		Password:     req.Password,
		FullName:     req.FullName,
		CaptchaToken: req.CaptchaToken,
		RemoteIP:     c.RealIP(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, session, "Account created")
}

type signInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignIn handles the password sign-in request.
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-in input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	session, err := h.uc.SignInWithPassword(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, session, "Signed in")
}

type magicLinkRequest struct {
	Email        string `json:"email" validate:"required,email"`
	CaptchaToken string `json:"captcha_token" validate:"required"`
}

// RequestMagicLink emails a one-time sign-in link. The response does not
// reveal whether the email already had an account.
func (h *AuthHandler) RequestMagicLink(c echo.Context) error {
	var req magicLinkRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid magic link input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.RequestMagicLink(c.Request().Context(), usecase.MagicLinkInput{
		Email:        req.Email,
		CaptchaToken: req.CaptchaToken,
		RemoteIP:     c.RealIP(),
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusAccepted, map[string]string{"email": req.Email}, "Sign-in link sent")
}

// SignOutAll revokes every active session of the authenticated user.
func (h *AuthHandler) SignOutAll(c echo.Context) error {
	userID := middleware.UserID(c)

	if err := h.uc.SignOutAll(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "All sessions revoked"}, "Signed out everywhere")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

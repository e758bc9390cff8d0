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

// ProfileHandler holds dependencies for profile handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{uc: uc, logger: logger}
}

// GetProfile retrieves the requester's own profile.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	profile, err := h.uc.GetProfile(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile retrieved")
}

type updateProfileRequest struct {
	FullName  string `json:"full_name" validate:"required,max=120"`
	AvatarURL string `json:"avatar_url" validate:"omitempty,url"`
}

// UpdateProfile updates the requester's own profile.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	profile, err := h.uc.UpdateProfile(c.Request().Context(), middleware.UserID(c), usecase.UpdateProfileInput{
		FullName:  req.FullName,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile updated")
}

// GetUniversity retrieves a university's public settings.
func (h *ProfileHandler) GetUniversity(c echo.Context) error {
	universityID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	university, err := h.uc.GetUniversity(c.Request().Context(), universityID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, university, "University retrieved")
}

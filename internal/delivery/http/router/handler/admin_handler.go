package handler

import (
	"log/slog"
	"net/http"

	"campustrace/internal/delivery/http/middleware"
	"campustrace/internal/delivery/http/response"
	"campustrace/internal/domain/entity"
	"campustrace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for moderation and tenant administration.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{uc: uc, logger: logger}
}

type reviewItemRequest struct {
	Approve bool `json:"approve"`
}

// ReviewItem approves or rejects a pending item post.
func (h *AdminHandler) ReviewItem(c echo.Context) error {
	itemID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var req reviewItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	item, err := h.uc.ReviewItem(c.Request().Context(), middleware.UserID(c), itemID, req.Approve)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item, "Item reviewed")
}

// ListPendingItems retrieves a university's review queue.
func (h *AdminHandler) ListPendingItems(c echo.Context) error {
	universityID, err := queryUUID(c, "university_id")
	if err != nil {
		return errors.WithStack(err)
	}

	limit, offset := pagination(c)

	items, err := h.uc.ListPendingItems(c.Request().Context(), universityID, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "Pending items retrieved")
}

type banRequest struct {
	Banned bool `json:"banned"`
}

// SetUserBanned bans or unbans a member of the admin's university.
func (h *AdminHandler) SetUserBanned(c echo.Context) error {
	userID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var req banRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid ban input")
	}

	if err := h.uc.SetUserBanned(c.Request().Context(), middleware.UserID(c), userID, req.Banned); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"banned": req.Banned}, "Member updated")
}

type roleRequest struct {
	Role string `json:"role" validate:"required"`
}

// SetUserRole changes a member's role within the admin's university.
func (h *AdminHandler) SetUserRole(c echo.Context) error {
	userID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var req roleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid role input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.SetUserRole(c.Request().Context(), middleware.UserID(c), userID, entity.Role(req.Role)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"role": req.Role}, "Member updated")
}

// ListMembers retrieves the profiles of a university.
func (h *AdminHandler) ListMembers(c echo.Context) error {
	universityID, err := queryUUID(c, "university_id")
	if err != nil {
		return errors.WithStack(err)
	}

	limit, offset := pagination(c)

	members, err := h.uc.ListMembers(c.Request().Context(), universityID, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, members, "Members retrieved")
}

type updateUniversityRequest struct {
	Name             string `json:"name" validate:"required,max=200"`
	EmailDomain      string `json:"email_domain" validate:"omitempty,fqdn"`
	AutoApprovePosts bool   `json:"auto_approve_posts"`
	NoticeBanner     string `json:"notice_banner" validate:"max=500"`
}

// UpdateUniversity changes the settings of the admin's university.
func (h *AdminHandler) UpdateUniversity(c echo.Context) error {
	var req updateUniversityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid university input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	university, err := h.uc.UpdateUniversity(c.Request().Context(), middleware.UserID(c), usecase.UpdateUniversityInput{
		Name:             req.Name,
		EmailDomain:      req.EmailDomain,
		AutoApprovePosts: req.AutoApprovePosts,
		NoticeBanner:     req.NoticeBanner,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, university, "University updated")
}

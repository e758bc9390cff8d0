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

// ClaimHandler holds dependencies for ownership claim handlers.
type ClaimHandler struct {
	uc     usecase.ClaimUsecase
	logger *slog.Logger
}

// NewClaimHandler is the constructor for ClaimHandler, injected by Fx.
func NewClaimHandler(uc usecase.ClaimUsecase, logger *slog.Logger) *ClaimHandler {
	return &ClaimHandler{uc: uc, logger: logger}
}

type fileClaimRequest struct {
	Evidence string `json:"evidence" validate:"required,max=2000"`
}

// FileClaim files an ownership claim on a found item.
func (h *ClaimHandler) FileClaim(c echo.Context) error {
	itemID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var req fileClaimRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid claim input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	claim, err := h.uc.FileClaim(c.Request().Context(), middleware.UserID(c), itemID, req.Evidence)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, claim, "Claim filed")
}

// ListClaimsForItem retrieves the claims on one of the requester's posts.
func (h *ClaimHandler) ListClaimsForItem(c echo.Context) error {
	itemID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	claims, err := h.uc.ListClaimsForItem(c.Request().Context(), middleware.UserID(c), itemID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, claims, "Claims retrieved")
}

// ListMyClaims retrieves claims the requester has filed.
func (h *ClaimHandler) ListMyClaims(c echo.Context) error {
	limit, offset := pagination(c)

	claims, err := h.uc.ListMyClaims(c.Request().Context(), middleware.UserID(c), limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, claims, "Claims retrieved")
}

type decideClaimRequest struct {
	Approve bool `json:"approve"`
}

// DecideClaim approves or rejects a pending claim on the requester's post.
func (h *ClaimHandler) DecideClaim(c echo.Context) error {
	claimID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var req decideClaimRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid decision input")
	}

	claim, err := h.uc.DecideClaim(c.Request().Context(), middleware.UserID(c), claimID, req.Approve)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, claim, "Claim decided")
}

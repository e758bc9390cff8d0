package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"campustrace/internal/delivery/http/middleware"
	"campustrace/internal/delivery/http/response"
	"campustrace/internal/domain/entity"
	domainerrors "campustrace/internal/domain/errors"
	"campustrace/internal/domain/repository"
	"campustrace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ItemHandler holds dependencies for item post handlers.
type ItemHandler struct {
	uc     usecase.ItemUsecase
	logger *slog.Logger
}

// NewItemHandler is the constructor for ItemHandler, injected by Fx.
func NewItemHandler(uc usecase.ItemUsecase, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{uc: uc, logger: logger}
}

type itemRequest struct {
	Kind         string    `json:"kind" validate:"required,oneof=lost found"`
	Title        string    `json:"title" validate:"required,max=200"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	LocationName string    `json:"location_name"`
	Latitude     *float64  `json:"latitude" validate:"omitempty,latitude"`
	Longitude    *float64  `json:"longitude" validate:"omitempty,longitude"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// updateItemRequest is itemRequest minus the kind, which is fixed at creation.
type updateItemRequest struct {
	Title        string    `json:"title" validate:"required,max=200"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	LocationName string    `json:"location_name"`
	Latitude     *float64  `json:"latitude" validate:"omitempty,latitude"`
	Longitude    *float64  `json:"longitude" validate:"omitempty,longitude"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// CreateItem handles posting a lost or found item.
func (h *ItemHandler) CreateItem(c echo.Context) error {
	var req itemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	item, err := h.uc.CreateItem(c.Request().Context(), usecase.CreateItemInput{
		PosterID:     middleware.UserID(c),
		Kind:         entity.ItemKind(req.Kind),
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		LocationName: req.LocationName,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		OccurredAt:   req.OccurredAt,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, item, "Item posted")
}

// GetItem retrieves a single item post.
func (h *ItemHandler) GetItem(c echo.Context) error {
	itemID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	item, err := h.uc.GetItem(c.Request().Context(), itemID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item, "Item retrieved")
}

// ListItems retrieves a university's items matching the query filters.
func (h *ItemHandler) ListItems(c echo.Context) error {
	universityID, err := queryUUID(c, "university_id")
	if err != nil {
		return errors.WithStack(err)
	}

	filter := repository.ItemFilter{
		Kind:     entity.ItemKind(c.QueryParam("kind")),
		Status:   entity.ItemStatus(c.QueryParam("status")),
		Category: c.QueryParam("category"),
		Query:    c.QueryParam("q"),
	}
	limit, offset := pagination(c)

	items, err := h.uc.ListItems(c.Request().Context(), universityID, filter, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "Items retrieved")
}

// ListMyItems retrieves the requester's own posts.
func (h *ItemHandler) ListMyItems(c echo.Context) error {
	limit, offset := pagination(c)

	items, err := h.uc.ListMyItems(c.Request().Context(), middleware.UserID(c), limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "Items retrieved")
}

// UpdateItem updates one of the requester's posts.
func (h *ItemHandler) UpdateItem(c echo.Context) error {
	itemID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var req updateItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	item, err := h.uc.UpdateItem(c.Request().Context(), middleware.UserID(c), itemID, usecase.UpdateItemInput{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		LocationName: req.LocationName,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		OccurredAt:   req.OccurredAt,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item, "Item updated")
}

// DeleteItem removes one of the requester's posts.
func (h *ItemHandler) DeleteItem(c echo.Context) error {
	itemID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteItem(c.Request().Context(), middleware.UserID(c), itemID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Item deleted"}, "Item deleted")
}

// AttachImage uploads a photo for one of the requester's posts.
func (h *ItemHandler) AttachImage(c echo.Context) error {
	itemID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Missing image file")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WrapMessage("unreadable image file"))
	}
	defer src.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	item, err := h.uc.AttachImage(c.Request().Context(), middleware.UserID(c), itemID, contentType, fileHeader.Size, src)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, item, "Image attached")
}

// PosterQR renders a printable QR code PNG pointing at the item's public page.
func (h *ItemHandler) PosterQR(c echo.Context) error {
	itemID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	png, err := h.uc.ItemPosterQR(c.Request().Context(), itemID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// NearbyItems returns approved items around a point, closest first.
func (h *ItemHandler) NearbyItems(c echo.Context) error {
	universityID, err := queryUUID(c, "university_id")
	if err != nil {
		return errors.WithStack(err)
	}

	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WrapMessage("invalid lat"))
	}
	lon, err := strconv.ParseFloat(c.QueryParam("lon"), 64)
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WrapMessage("invalid lon"))
	}
	radius, _ := strconv.ParseFloat(c.QueryParam("radius"), 64)

	items, err := h.uc.NearbyItems(c.Request().Context(), universityID, lat, lon, radius)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "Nearby items retrieved")
}

// MarkRecovered marks one of the requester's posts as returned to its owner.
func (h *ItemHandler) MarkRecovered(c echo.Context) error {
	itemID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	item, err := h.uc.MarkRecovered(c.Request().Context(), middleware.UserID(c), itemID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item, "Item marked recovered")
}

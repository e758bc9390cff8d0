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

// NotificationHandler holds dependencies for notification handlers.
type NotificationHandler struct {
	uc     usecase.NotificationUsecase
	logger *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler, injected by Fx.
func NewNotificationHandler(uc usecase.NotificationUsecase, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{uc: uc, logger: logger}
}

// ListNotifications retrieves the requester's notifications, newest first.
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	limit, offset := pagination(c)

	notifications, err := h.uc.ListNotifications(c.Request().Context(), middleware.UserID(c), limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, notifications, "Notifications retrieved")
}

// UnreadCount returns the requester's number of unread notifications.
func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	count, err := h.uc.UnreadCount(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"unread": count}, "Unread count retrieved")
}

// MarkRead marks one of the requester's notifications as read.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	notificationID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.MarkRead(c.Request().Context(), middleware.UserID(c), notificationID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Notification read"}, "Notification read")
}

// MarkAllRead marks all of the requester's notifications as read.
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	affected, err := h.uc.MarkAllRead(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"marked": affected}, "Notifications read")
}

type registerDeviceRequest struct {
	FCMToken string `json:"fcm_token" validate:"required"`
	Platform string `json:"platform" validate:"required,oneof=ios android web"`
}

// RegisterDevice stores a push token so the requester gets badge pushes.
func (h *NotificationHandler) RegisterDevice(c echo.Context) error {
	var req registerDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	device, err := h.uc.RegisterDevice(c.Request().Context(), middleware.UserID(c), req.FCMToken, req.Platform)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, device, "Device registered")
}

package handler

import (
	"log/slog"
	"net/http"

	"forno/internal/delivery/http/response"
	"forno/internal/usecase"

	"github.com/labstack/echo/v4"
)

// NotificationHandler holds dependencies for in-app notification handlers
type NotificationHandler struct {
	uc     usecase.NotificationUsecase
	logger *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(uc usecase.NotificationUsecase, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListUnread returns the caller's unread notifications, newest first
func (h *NotificationHandler) ListUnread(c echo.Context) error {
	uid, err := currentUserID(c)
	if err != nil {
		return err
	}

	notifications, err := h.uc.ListUnread(c.Request().Context(), uid)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, notifications, "Notifications retrieved successfully")
}

// MarkRead flips one of the caller's notifications read
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	uid, err := currentUserID(c)
	if err != nil {
		return err
	}

	if err := h.uc.MarkRead(c.Request().Context(), uid, c.Param("id")); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Notification marked read")
}

// MarkAllRead flips every unread notification of the caller
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	uid, err := currentUserID(c)
	if err != nil {
		return err
	}

	if err := h.uc.MarkAllRead(c.Request().Context(), uid); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "All notifications marked read")
}

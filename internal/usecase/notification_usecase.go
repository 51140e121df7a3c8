package usecase

import (
	"context"

	"forno/internal/domain/entity"
)

// NotificationUsecase owns the caller-facing side of in-app notifications.
type NotificationUsecase interface {
	// ListUnread returns the caller's unread notifications, newest first.
	ListUnread(ctx context.Context, userID string) ([]*entity.Notification, error)

	// MarkRead flips one notification read. Rejected with Forbidden when the
	// notification belongs to someone else.
	MarkRead(ctx context.Context, userID, notificationID string) error

	// MarkAllRead flips every unread notification of the caller in one batch.
	MarkAllRead(ctx context.Context, userID string) error
}

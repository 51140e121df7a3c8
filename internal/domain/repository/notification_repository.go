package repository

import (
	"context"
	"errors"

	"forno/internal/domain/entity"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the interface for in-app notification store
// operations. Notifications are written by the fan-out engine and only ever
// mutated to flip their read flag.
type NotificationRepository interface {
	// Create persists a new notification and fills in its generated ID.
	Create(ctx context.Context, notification *entity.Notification) error

	// FindByID retrieves a notification by its unique ID.
	FindByID(ctx context.Context, id string) (*entity.Notification, error)

	// FindUnreadByUser retrieves all unread notifications for a recipient,
	// newest first.
	FindUnreadByUser(ctx context.Context, userID string) ([]*entity.Notification, error)

	// MarkRead flips the read flag on one notification.
	MarkRead(ctx context.Context, id string) error

	// MarkAllReadForUser flips the read flag on every unread notification of
	// the recipient in one atomic batch write.
	MarkAllReadForUser(ctx context.Context, userID string) error
}

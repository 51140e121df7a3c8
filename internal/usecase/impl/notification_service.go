package impl

import (
	"context"
	"log/slog"

	"forno/internal/domain/entity"
	domainerrors "forno/internal/domain/errors"
	"forno/internal/domain/repository"
	"forno/internal/usecase"

	"github.com/pkg/errors"
)

type notificationService struct {
	logger           *slog.Logger
	notificationRepo repository.NotificationRepository
}

// NewNotificationService creates the caller-facing notification service.
func NewNotificationService(
	logger *slog.Logger,
	notificationRepo repository.NotificationRepository,
) usecase.NotificationUsecase {
	return &notificationService{
		logger:           logger,
		notificationRepo: notificationRepo,
	}
}

// ListUnread returns the caller's unread notifications, newest first.
func (s *notificationService) ListUnread(ctx context.Context, userID string) ([]*entity.Notification, error) {
	notifications, err := s.notificationRepo.FindUnreadByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list unread notifications")
	}

	return notifications, nil
}

// MarkRead flips one notification read after checking ownership.
func (s *notificationService) MarkRead(ctx context.Context, userID, notificationID string) error {
	notification, err := s.notificationRepo.FindByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound
		}

		return errors.Wrap(err, "failed to load notification")
	}

	if notification.UserID != userID {
		return domainerrors.ErrForbidden.WithDetails("notification belongs to another user")
	}

	if err := s.notificationRepo.MarkRead(ctx, notificationID); err != nil {
		return errors.Wrap(err, "failed to mark notification read")
	}

	return nil
}

// MarkAllRead flips every unread notification of the caller in one batch.
func (s *notificationService) MarkAllRead(ctx context.Context, userID string) error {
	if err := s.notificationRepo.MarkAllReadForUser(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to mark notifications read")
	}

	return nil
}

package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"forno/internal/domain/entity"
	domainerrors "forno/internal/domain/errors"
	"forno/internal/domain/repository"
	mockRepo "forno/internal/mocks/repository"
	"forno/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestNotificationService(t *testing.T) (
	usecase.NotificationUsecase,
	*mockRepo.MockNotificationRepository,
) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewNotificationService(logger, notificationRepo)

	return service, notificationRepo
}

func TestNotificationService_ListUnread(t *testing.T) {
	service, notificationRepo := createTestNotificationService(t)

	ctx := context.Background()
	unread := []*entity.Notification{{ID: "n-2"}, {ID: "n-1"}}
	notificationRepo.EXPECT().FindUnreadByUser(ctx, "uid-1").Return(unread, nil)

	got, err := service.ListUnread(ctx, "uid-1")

	require.NoError(t, err)
	assert.Equal(t, unread, got)
}

func TestNotificationService_MarkRead(t *testing.T) {
	service, notificationRepo := createTestNotificationService(t)

	ctx := context.Background()
	notificationRepo.EXPECT().FindByID(ctx, "n-1").
		Return(&entity.Notification{ID: "n-1", UserID: "uid-1"}, nil)
	notificationRepo.EXPECT().MarkRead(ctx, "n-1").Return(nil)

	require.NoError(t, service.MarkRead(ctx, "uid-1", "n-1"))
}

func TestNotificationService_MarkRead_ForeignNotification(t *testing.T) {
	service, notificationRepo := createTestNotificationService(t)

	ctx := context.Background()
	notificationRepo.EXPECT().FindByID(ctx, "n-1").
		Return(&entity.Notification{ID: "n-1", UserID: "someone-else"}, nil)

	err := service.MarkRead(ctx, "uid-1", "n-1")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "FORBIDDEN", appErr.ErrorCode())
}

func TestNotificationService_MarkRead_NotFound(t *testing.T) {
	service, notificationRepo := createTestNotificationService(t)

	ctx := context.Background()
	notificationRepo.EXPECT().FindByID(ctx, "ghost").Return(nil, repository.ErrNotificationNotFound)

	err := service.MarkRead(ctx, "uid-1", "ghost")

	assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	service, notificationRepo := createTestNotificationService(t)

	ctx := context.Background()
	notificationRepo.EXPECT().MarkAllReadForUser(ctx, "uid-1").Return(nil)

	require.NoError(t, service.MarkAllRead(ctx, "uid-1"))
}

package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"forno/internal/domain/entity"
	mockRepo "forno/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestReportService(t *testing.T, now time.Time) (*reportService, *mockRepo.MockOrderRepository) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := &reportService{
		logger:    logger,
		orderRepo: orderRepo,
		now:       func() time.Time { return now },
	}

	return service, orderRepo
}

func TestReportService_WeeklyRevenue(t *testing.T) {
	now := time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC)
	service, orderRepo := createTestReportService(t, now)

	ctx := context.Background()
	from := time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)

	orderRepo.EXPECT().FindCreatedBetween(ctx, from, now).Return([]*entity.Order{
		{Total: 40, Status: entity.StatusDelivered, Timestamp: time.Date(2026, 8, 26, 19, 0, 0, 0, time.UTC)},
		{Total: 25, Status: entity.StatusArchived, Timestamp: time.Date(2026, 8, 26, 21, 0, 0, 0, time.UTC)},
		{Total: 99, Status: entity.StatusCancelled, Timestamp: time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)},
		{Total: 10, Status: entity.StatusReady, Timestamp: time.Date(2026, 9, 1, 13, 0, 0, 0, time.UTC)},
	}, nil)

	days, err := service.WeeklyRevenue(ctx)

	require.NoError(t, err)
	require.Len(t, days, 7)

	// Oldest first, archived orders count, the cancelled one never does.
	assert.Equal(t, from, days[0].Date)
	assert.Equal(t, 65.0, days[0].Revenue)
	assert.Equal(t, 2, days[0].OrderCount)
	assert.Equal(t, 0.0, days[2].Revenue)
	assert.Equal(t, 0, days[2].OrderCount)
	assert.Equal(t, 10.0, days[6].Revenue)
	assert.Equal(t, 1, days[6].OrderCount)
}

func TestReportService_RevenueStats(t *testing.T) {
	now := time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC)
	service, orderRepo := createTestReportService(t, now)

	ctx := context.Background()
	yesterday := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	orderRepo.EXPECT().FindCreatedBetween(ctx, yesterday, now).Return([]*entity.Order{
		// Today: one live order counts, the archived and cancelled ones do not.
		{Total: 30, Status: entity.StatusDelivered, Timestamp: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)},
		{Total: 10, Status: entity.StatusArchived, Timestamp: time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC)},
		{Total: 5, Status: entity.StatusCancelled, Timestamp: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)},
		// Yesterday: archived orders still count since the nightly archive ran.
		{Total: 20, Status: entity.StatusDelivered, Timestamp: time.Date(2026, 8, 31, 20, 0, 0, 0, time.UTC)},
		{Total: 15, Status: entity.StatusArchived, Timestamp: time.Date(2026, 8, 31, 18, 0, 0, 0, time.UTC)},
		{Total: 7, Status: entity.StatusCancelled, Timestamp: time.Date(2026, 8, 31, 19, 0, 0, 0, time.UTC)},
	}, nil)

	stats, err := service.RevenueStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, 30.0, stats.TodayRevenue)
	assert.Equal(t, 1, stats.TodayOrderCount)
	assert.Equal(t, 35.0, stats.YesterdayRevenue)
}

func TestReportService_RevenueStats_EmptyWindow(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	service, orderRepo := createTestReportService(t, now)

	ctx := context.Background()
	orderRepo.EXPECT().FindCreatedBetween(ctx, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), now).
		Return(nil, nil)

	stats, err := service.RevenueStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, 0.0, stats.TodayRevenue)
	assert.Equal(t, 0, stats.TodayOrderCount)
	assert.Equal(t, 0.0, stats.YesterdayRevenue)
}

package impl

import (
	"context"
	"log/slog"
	"time"

	"forno/internal/domain/entity"
	"forno/internal/domain/repository"
	"forno/internal/usecase"

	"github.com/pkg/errors"
)

type reportService struct {
	logger    *slog.Logger
	orderRepo repository.OrderRepository
	now       func() time.Time
}

// NewReportService creates the revenue reporting service.
func NewReportService(logger *slog.Logger, orderRepo repository.OrderRepository) usecase.ReportUsecase {
	return &reportService{
		logger:    logger,
		orderRepo: orderRepo,
		now:       time.Now,
	}
}

// WeeklyRevenue returns per-day totals for the last seven days, oldest first.
// Archived orders stay in the historical buckets; cancelled orders never
// count towards revenue.
func (s *reportService) WeeklyRevenue(ctx context.Context) ([]usecase.DailyRevenue, error) {
	now := s.now()
	today := startOfDay(now)
	from := today.AddDate(0, 0, -6)

	orders, err := s.orderRepo.FindCreatedBetween(ctx, from, now)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load weekly orders")
	}

	days := make([]usecase.DailyRevenue, 7)
	for i := range days {
		days[i].Date = from.AddDate(0, 0, i)
	}

	for _, order := range orders {
		if order.Status == entity.StatusCancelled {
			continue
		}
		idx := int(startOfDay(order.Timestamp.In(now.Location())).Sub(from).Hours() / 24)
		if idx < 0 || idx >= len(days) {
			continue
		}
		days[idx].Revenue += order.Total
		days[idx].OrderCount++
	}

	return days, nil
}

// RevenueStats returns today's revenue and order count (active orders only:
// cancelled and archived both excluded) and yesterday's revenue (cancelled
// excluded, archived included since the nightly archive may already have run).
func (s *reportService) RevenueStats(ctx context.Context) (*usecase.RevenueStats, error) {
	now := s.now()
	today := startOfDay(now)
	yesterday := today.AddDate(0, 0, -1)

	orders, err := s.orderRepo.FindCreatedBetween(ctx, yesterday, now)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load recent orders")
	}

	stats := &usecase.RevenueStats{}
	for _, order := range orders {
		if order.Status == entity.StatusCancelled {
			continue
		}

		ts := order.Timestamp.In(now.Location())
		if !ts.Before(today) {
			if order.Status == entity.StatusArchived {
				continue
			}
			stats.TodayRevenue += order.Total
			stats.TodayOrderCount++

			continue
		}

		stats.YesterdayRevenue += order.Total
	}

	return stats, nil
}

// startOfDay truncates a time to local midnight.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

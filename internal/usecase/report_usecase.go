package usecase

import (
	"context"
	"time"
)

// DailyRevenue is one day's revenue bucket in the weekly report.
type DailyRevenue struct {
	Date       time.Time `json:"date"`
	Revenue    float64   `json:"revenue"`
	OrderCount int       `json:"order_count"`
}

// RevenueStats is the dashboard's short-window revenue summary.
type RevenueStats struct {
	TodayRevenue     float64 `json:"today_revenue"`
	TodayOrderCount  int     `json:"today_order_count"`
	YesterdayRevenue float64 `json:"yesterday_revenue"`
}

// ReportUsecase computes read-only revenue aggregates. Cancelled orders never
// count towards revenue; archived orders count in historical windows only.
type ReportUsecase interface {
	// WeeklyRevenue returns per-day totals for the last seven days, oldest
	// first. Includes archived orders, excludes cancelled ones.
	WeeklyRevenue(ctx context.Context) ([]DailyRevenue, error)

	// RevenueStats returns today's revenue and order count (excluding both
	// cancelled and archived orders) and yesterday's revenue (excluding only
	// cancelled orders).
	RevenueStats(ctx context.Context) (*RevenueStats, error)
}

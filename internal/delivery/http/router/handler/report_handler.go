package handler

import (
	"log/slog"
	"net/http"

	"forno/internal/delivery/http/response"
	"forno/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ReportHandler holds dependencies for revenue reporting handlers
type ReportHandler struct {
	uc     usecase.ReportUsecase
	logger *slog.Logger
}

// NewReportHandler is the constructor for ReportHandler
func NewReportHandler(uc usecase.ReportUsecase, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		uc:     uc,
		logger: logger,
	}
}

// WeeklyRevenue returns per-day revenue for the last seven days, oldest first
func (h *ReportHandler) WeeklyRevenue(c echo.Context) error {
	report, err := h.uc.WeeklyRevenue(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, report, "Weekly revenue retrieved successfully")
}

// RevenueStats returns the dashboard's today/yesterday revenue summary
func (h *ReportHandler) RevenueStats(c echo.Context) error {
	stats, err := h.uc.RevenueStats(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, stats, "Revenue stats retrieved successfully")
}

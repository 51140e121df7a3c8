package handler

import (
	"log/slog"
	"net/http"

	"forno/internal/delivery/http/response"
	"forno/internal/usecase"

	"github.com/labstack/echo/v4"
)

// OrderHandler holds dependencies for order-related handlers
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns all non-archived orders, newest first
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.uc.ListActive(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// Create places a new order
func (h *OrderHandler) Create(c echo.Context) error {
	actor, err := currentProfile(c)
	if err != nil {
		return err
	}

	var req usecase.CreateOrderInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order, err := h.uc.Create(c.Request().Context(), actor, req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, order, "Order created successfully")
}

// Update applies a partial order update, including lifecycle transitions
func (h *OrderHandler) Update(c echo.Context) error {
	var req usecase.UpdateOrderInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order, err := h.uc.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, order, "Order updated successfully")
}

// Delete hard-deletes one order
func (h *OrderHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Order deleted successfully")
}

// ArchiveAll archives every active order and resets the order numbering
func (h *OrderHandler) ArchiveAll(c echo.Context) error {
	archived, err := h.uc.ArchiveAllAndReset(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]int{"archived": archived}, "Orders archived successfully")
}

package handler

import (
	"log/slog"
	"net/http"

	"forno/internal/delivery/http/response"
	"forno/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CustomerHandler holds dependencies for customer directory handlers
type CustomerHandler struct {
	uc     usecase.CustomerUsecase
	logger *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler
func NewCustomerHandler(uc usecase.CustomerUsecase, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns all customers with derived aggregates
func (h *CustomerHandler) List(c echo.Context) error {
	customers, err := h.uc.List(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, customers, "Customers retrieved successfully")
}

// Get returns one customer with derived aggregates
func (h *CustomerHandler) Get(c echo.Context) error {
	customer, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, customer, "Customer retrieved successfully")
}

// Create adds a customer
func (h *CustomerHandler) Create(c echo.Context) error {
	var req usecase.CustomerInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid customer input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	customer, err := h.uc.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, customer, "Customer created successfully")
}

// Update replaces a customer's fields
func (h *CustomerHandler) Update(c echo.Context) error {
	var req usecase.CustomerInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid customer input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	customer, err := h.uc.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, customer, "Customer updated successfully")
}

// Delete removes a customer, retaining their orders
func (h *CustomerHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Customer deleted successfully")
}

// History returns the customer's orders, newest first
func (h *CustomerHandler) History(c echo.Context) error {
	orders, err := h.uc.History(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, orders, "Order history retrieved successfully")
}

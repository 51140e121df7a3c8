package handler

import (
	"log/slog"
	"net/http"

	"forno/internal/delivery/http/response"
	"forno/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ProductHandler holds dependencies for catalog handlers
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns the whole catalog
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.uc.List(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}

// Get returns one product
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, product, "Product retrieved successfully")
}

// Create adds a catalog entry
func (h *ProductHandler) Create(c echo.Context) error {
	var req usecase.ProductInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.uc.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// Update replaces a catalog entry
func (h *ProductHandler) Update(c echo.Context) error {
	var req usecase.ProductInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.uc.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}

// Delete removes a catalog entry
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}

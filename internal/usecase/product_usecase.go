package usecase

import (
	"context"

	"forno/internal/domain/entity"
)

// ProductInput is the payload for creating or replacing a catalog entry.
type ProductInput struct {
	Name        string                 `json:"name" validate:"required"`
	Category    entity.ProductCategory `json:"category" validate:"required,oneof=Pizza Drink Extra"`
	Sizes       map[string]float64     `json:"sizes,omitempty"`
	Price       float64                `json:"price,omitempty"`
	IsAvailable bool                   `json:"is_available"`
	Description string                 `json:"description,omitempty"`
}

// ProductUsecase owns the product catalog.
type ProductUsecase interface {
	// List returns the whole catalog.
	List(ctx context.Context) ([]*entity.Product, error)

	// Get returns one product.
	Get(ctx context.Context, id string) (*entity.Product, error)

	// Create validates pricing shape per category and persists the product.
	Create(ctx context.Context, input ProductInput) (*entity.Product, error)

	// Update replaces a product's fields.
	Update(ctx context.Context, id string, input ProductInput) (*entity.Product, error)

	// Delete removes a product from the catalog.
	Delete(ctx context.Context, id string) error
}

package repository

import (
	"context"
	"errors"

	"forno/internal/domain/entity"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for catalog store operations.
type ProductRepository interface {
	// Create persists a new product and fills in its generated document ID.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product by its unique ID.
	FindByID(ctx context.Context, id string) (*entity.Product, error)

	// FindByIDs retrieves the given products keyed by ID. Missing IDs are
	// simply absent from the result map.
	FindByIDs(ctx context.Context, ids []string) (map[string]*entity.Product, error)

	// FindAll retrieves the whole catalog.
	FindAll(ctx context.Context) ([]*entity.Product, error)

	// Update rewrites an existing product document.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product document.
	Delete(ctx context.Context, id string) error
}

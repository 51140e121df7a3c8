package usecase

import (
	"context"

	"forno/internal/domain/entity"
)

// CustomerInput is the payload for creating or updating a customer.
type CustomerInput struct {
	Name         string `json:"name" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	Address      string `json:"address,omitempty"`
	LocationLink string `json:"location_link,omitempty"`
}

// CustomerUsecase owns the customer directory and its derived aggregates.
// Order count, total spent and last order date are recomputed on every read
// by folding the order collection against the customer's phone.
type CustomerUsecase interface {
	// List returns all customers with aggregates filled in.
	List(ctx context.Context) ([]*entity.Customer, error)

	// Get returns one customer with aggregates filled in.
	Get(ctx context.Context, id string) (*entity.Customer, error)

	// Create persists a new customer. The phone is normalized to digits only
	// and must be unique.
	Create(ctx context.Context, input CustomerInput) (*entity.Customer, error)

	// Update replaces a customer's fields.
	Update(ctx context.Context, id string, input CustomerInput) (*entity.Customer, error)

	// Delete removes a customer. Their orders are retained.
	Delete(ctx context.Context, id string) error

	// History returns the customer's orders, newest first.
	History(ctx context.Context, id string) ([]*entity.Order, error)
}

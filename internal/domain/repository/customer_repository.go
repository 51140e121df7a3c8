package repository

import (
	"context"
	"errors"

	"forno/internal/domain/entity"
)

// ErrCustomerNotFound is returned when a customer is not found.
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerRepository defines the interface for customer store operations.
type CustomerRepository interface {
	// Create persists a new customer and fills in its generated document ID.
	Create(ctx context.Context, customer *entity.Customer) error

	// FindByID retrieves a customer by its unique ID.
	FindByID(ctx context.Context, id string) (*entity.Customer, error)

	// FindByPhone retrieves a customer by normalized phone number.
	FindByPhone(ctx context.Context, phone string) (*entity.Customer, error)

	// FindAll retrieves all customers.
	FindAll(ctx context.Context) ([]*entity.Customer, error)

	// Update rewrites an existing customer document.
	Update(ctx context.Context, customer *entity.Customer) error

	// Delete removes a customer document.
	Delete(ctx context.Context, id string) error
}

// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"forno/internal/domain/entity"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrStatusMismatch is returned by UpdateStatusIf when the stored status
	// no longer equals the status the caller observed.
	ErrStatusMismatch = errors.New("order status mismatch")
)

// OrderRepository defines the interface for order-related store operations.
type OrderRepository interface {
	// Create persists a new order and fills in its generated document ID.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order by its unique ID.
	FindByID(ctx context.Context, id string) (*entity.Order, error)

	// FindActive retrieves all non-Archived orders, newest first.
	FindActive(ctx context.Context) ([]*entity.Order, error)

	// FindByCustomerPhone retrieves all orders whose customer phone matches
	// the given normalized phone, newest first.
	FindByCustomerPhone(ctx context.Context, phone string) ([]*entity.Order, error)

	// FindCreatedBetween retrieves orders created in [from, to), newest first.
	FindCreatedBetween(ctx context.Context, from, to time.Time) ([]*entity.Order, error)

	// Update rewrites an existing order document.
	Update(ctx context.Context, order *entity.Order) error

	// UpdateStatusIf transitions the order status from expected to next as one
	// atomic compare-and-swap. Returns ErrStatusMismatch when the stored
	// status differs from expected.
	UpdateStatusIf(ctx context.Context, id string, expected, next entity.OrderStatus) error

	// Delete hard-deletes an order document.
	Delete(ctx context.Context, id string) error

	// ArchiveAllAndReset marks every non-Archived order Archived and resets
	// the order counter to zero within atomic batch writes. It returns the
	// number of orders archived.
	ArchiveAllAndReset(ctx context.Context) (int, error)
}

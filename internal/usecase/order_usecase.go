// Package usecase defines the application's use case interfaces and their
// input shapes.
package usecase

import (
	"context"

	"forno/internal/domain/entity"
)

// OrderItemInput is one requested line item.
type OrderItemInput struct {
	ProductID  string `json:"product_id" validate:"required"`
	Product2ID string `json:"product2_id,omitempty"`
	IsHalfHalf bool   `json:"is_half_half"`
	Quantity   int    `json:"quantity" validate:"required,gt=0"`
	Size       string `json:"size,omitempty"`
}

// CreateOrderInput is the payload for creating an order.
type CreateOrderInput struct {
	CustomerName  string           `json:"customer_name" validate:"required"`
	CustomerPhone string           `json:"customer_phone,omitempty"`
	OrderType     entity.OrderType `json:"order_type" validate:"required,oneof=delivery pickup"`
	Items         []OrderItemInput `json:"items" validate:"required,min=1,dive"`
	Address       string           `json:"address,omitempty"`
	LocationLink  string           `json:"location_link,omitempty"`
	Notes         string           `json:"notes,omitempty"`
}

// UpdateOrderInput is the payload for a partial order update. Nil fields are
// left untouched. Status carries the target lifecycle state; the transition
// is applied as a compare-and-swap against its expected predecessor.
type UpdateOrderInput struct {
	Status       *entity.OrderStatus `json:"status,omitempty"`
	Items        []OrderItemInput    `json:"items,omitempty" validate:"omitempty,min=1,dive"`
	Address      *string             `json:"address,omitempty"`
	LocationLink *string             `json:"location_link,omitempty"`
	Notes        *string             `json:"notes,omitempty"`
}

// OrderUsecase owns the order lifecycle.
type OrderUsecase interface {
	// ListActive returns all non-Archived orders, newest first.
	ListActive(ctx context.Context) ([]*entity.Order, error)

	// Create validates and prices the order, allocates the next order number
	// through the atomic counter, resolves the customer by phone
	// (create-if-missing) and persists the order with status Received.
	Create(ctx context.Context, actor *entity.StaffProfile, input CreateOrderInput) (*entity.Order, error)

	// Update applies a partial update. Item changes reprice the order and
	// raise OrderEdited; a status change advances or cancels the lifecycle
	// and raises the matching event. Terminal orders reject all changes.
	Update(ctx context.Context, id string, input UpdateOrderInput) (*entity.Order, error)

	// Delete hard-deletes one order. Administrative/debug use only.
	Delete(ctx context.Context, id string) error

	// ArchiveAllAndReset archives every active order and resets the order
	// counter to zero, so the next order starts numbering at 1 again.
	ArchiveAllAndReset(ctx context.Context) (int, error)
}

// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// OrderType distinguishes how an order leaves the shop.
type OrderType string

const (
	OrderTypeDelivery OrderType = "delivery"
	OrderTypePickup   OrderType = "pickup"
)

// Valid reports whether the order type is one of the known values.
func (t OrderType) Valid() bool {
	return t == OrderTypeDelivery || t == OrderTypePickup
}

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusReceived       OrderStatus = "Received"
	StatusPreparing      OrderStatus = "Preparing"
	StatusReady          OrderStatus = "Ready"
	StatusOutForDelivery OrderStatus = "OutForDelivery"
	StatusDelivered      OrderStatus = "Delivered"
	StatusCancelled      OrderStatus = "Cancelled"
	StatusArchived       OrderStatus = "Archived"
)

// IsTerminal reports whether no further lifecycle transition is permitted.
// Archived is a housekeeping state reached only through the bulk archive.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled || s == StatusArchived
}

// Next returns the single next status for the given order type.
// Pickup orders skip OutForDelivery and go straight from Ready to Delivered.
// ok is false when the status is terminal or unknown.
func (s OrderStatus) Next(orderType OrderType) (next OrderStatus, ok bool) {
	switch s {
	case StatusReceived:
		return StatusPreparing, true
	case StatusPreparing:
		return StatusReady, true
	case StatusReady:
		if orderType == OrderTypeDelivery {
			return StatusOutForDelivery, true
		}

		return StatusDelivered, true
	case StatusOutForDelivery:
		return StatusDelivered, true
	default:
		return "", false
	}
}

// Order represents one customer order moving through the lifecycle.
type Order struct {
	ID            string      `json:"id"`             // Firestore document ID.
	OrderNumber   int         `json:"order_number"`   // Sequential number, unique within a counter epoch.
	CustomerID    string      `json:"customer_id"`    // Back-reference to the customer document, may be empty.
	CustomerName  string      `json:"customer_name"`  // Display name captured at order time.
	CustomerPhone string      `json:"customer_phone"` // Normalized digits-only phone, may be empty.
	Items         []OrderItem `json:"items"`          // Ordered line items.
	Total         float64     `json:"total"`          // Sum of unit price times quantity over all items.
	Status        OrderStatus `json:"status"`         // Current lifecycle state.
	Timestamp     time.Time   `json:"timestamp"`      // Creation instant.
	OrderType     OrderType   `json:"order_type"`     // delivery or pickup.
	Address       string      `json:"address"`        // Delivery address, delivery orders only.
	LocationLink  string      `json:"location_link"`  // Map deep link, delivery orders only.
	Notes         string      `json:"notes"`          // Free-text kitchen notes.
}

// OrderItem is a single line of an order. A half-and-half pizza carries two
// product references sharing one physical unit.
type OrderItem struct {
	ProductID   string `json:"product_id"`
	Product2ID  string `json:"product2_id,omitempty"` // Second flavor for half-and-half items.
	IsHalfHalf  bool   `json:"is_half_half"`
	ProductName string `json:"product_name"` // Denormalized display name, set at order-write time.
	Quantity    int    `json:"quantity"`
	Size        string `json:"size,omitempty"` // Required when the product defines sized pricing.
}

// Package model holds the Firestore document shapes and their mappings to
// and from domain entities.
package model

import (
	"time"

	"forno/internal/domain/entity"
)

// Order is the Firestore document shape of an order.
type Order struct {
	OrderNumber   int         `firestore:"orderNumber"`
	CustomerID    string      `firestore:"customerId"`
	CustomerName  string      `firestore:"customerName"`
	CustomerPhone string      `firestore:"customerPhone"`
	Items         []OrderItem `firestore:"items"`
	Total         float64     `firestore:"total"`
	Status        string      `firestore:"status"`
	Timestamp     time.Time   `firestore:"timestamp"`
	OrderType     string      `firestore:"orderType"`
	Address       string      `firestore:"address"`
	LocationLink  string      `firestore:"locationLink"`
	Notes         string      `firestore:"notes"`
}

// OrderItem is one embedded line item of an order document.
type OrderItem struct {
	ProductID   string `firestore:"productId"`
	Product2ID  string `firestore:"product2Id,omitempty"`
	IsHalfHalf  bool   `firestore:"isHalfHalf"`
	ProductName string `firestore:"productName"`
	Quantity    int    `firestore:"quantity"`
	Size        string `firestore:"size,omitempty"`
}

// FromOrderEntity converts a domain order to its document shape.
func FromOrderEntity(order *entity.Order) *Order {
	items := make([]OrderItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItem{
			ProductID:   item.ProductID,
			Product2ID:  item.Product2ID,
			IsHalfHalf:  item.IsHalfHalf,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Size:        item.Size,
		})
	}

	return &Order{
		OrderNumber:   order.OrderNumber,
		CustomerID:    order.CustomerID,
		CustomerName:  order.CustomerName,
		CustomerPhone: order.CustomerPhone,
		Items:         items,
		Total:         order.Total,
		Status:        string(order.Status),
		Timestamp:     order.Timestamp,
		OrderType:     string(order.OrderType),
		Address:       order.Address,
		LocationLink:  order.LocationLink,
		Notes:         order.Notes,
	}
}

// ToEntity converts the document back to a domain order. The document ID is
// stored outside the document body, so the caller supplies it.
func (m *Order) ToEntity(id string) *entity.Order {
	items := make([]entity.OrderItem, 0, len(m.Items))
	for _, item := range m.Items {
		items = append(items, entity.OrderItem{
			ProductID:   item.ProductID,
			Product2ID:  item.Product2ID,
			IsHalfHalf:  item.IsHalfHalf,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Size:        item.Size,
		})
	}

	return &entity.Order{
		ID:            id,
		OrderNumber:   m.OrderNumber,
		CustomerID:    m.CustomerID,
		CustomerName:  m.CustomerName,
		CustomerPhone: m.CustomerPhone,
		Items:         items,
		Total:         m.Total,
		Status:        entity.OrderStatus(m.Status),
		Timestamp:     m.Timestamp,
		OrderType:     entity.OrderType(m.OrderType),
		Address:       m.Address,
		LocationLink:  m.LocationLink,
		Notes:         m.Notes,
	}
}

package model

import "forno/internal/domain/entity"

// Customer is the Firestore document shape of a customer. The order-derived
// aggregates are computed on read and never stored.
type Customer struct {
	Name         string `firestore:"name"`
	Phone        string `firestore:"phone"`
	Address      string `firestore:"address,omitempty"`
	LocationLink string `firestore:"locationLink,omitempty"`
}

// FromCustomerEntity converts a domain customer to its document shape.
func FromCustomerEntity(customer *entity.Customer) *Customer {
	return &Customer{
		Name:         customer.Name,
		Phone:        customer.Phone,
		Address:      customer.Address,
		LocationLink: customer.LocationLink,
	}
}

// ToEntity converts the document back to a domain customer.
func (m *Customer) ToEntity(id string) *entity.Customer {
	return &entity.Customer{
		ID:           id,
		Name:         m.Name,
		Phone:        m.Phone,
		Address:      m.Address,
		LocationLink: m.LocationLink,
	}
}

package model

import "forno/internal/domain/entity"

// Product is the Firestore document shape of a catalog entry.
type Product struct {
	Name        string             `firestore:"name"`
	Category    string             `firestore:"category"`
	Sizes       map[string]float64 `firestore:"sizes,omitempty"`
	Price       float64            `firestore:"price"`
	IsAvailable bool               `firestore:"isAvailable"`
	Description string             `firestore:"description,omitempty"`
}

// FromProductEntity converts a domain product to its document shape.
func FromProductEntity(product *entity.Product) *Product {
	return &Product{
		Name:        product.Name,
		Category:    string(product.Category),
		Sizes:       product.Sizes,
		Price:       product.Price,
		IsAvailable: product.IsAvailable,
		Description: product.Description,
	}
}

// ToEntity converts the document back to a domain product.
func (m *Product) ToEntity(id string) *entity.Product {
	return &entity.Product{
		ID:          id,
		Name:        m.Name,
		Category:    entity.ProductCategory(m.Category),
		Sizes:       m.Sizes,
		Price:       m.Price,
		IsAvailable: m.IsAvailable,
		Description: m.Description,
	}
}

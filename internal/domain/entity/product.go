package entity

// ProductCategory groups products by pricing shape: Pizza and Drink use the
// sizes map, Extra uses the flat price.
type ProductCategory string

const (
	CategoryPizza ProductCategory = "Pizza"
	CategoryDrink ProductCategory = "Drink"
	CategoryExtra ProductCategory = "Extra"
)

// Valid reports whether the category is one of the known values.
func (c ProductCategory) Valid() bool {
	return c == CategoryPizza || c == CategoryDrink || c == CategoryExtra
}

// UsesSizedPricing reports whether products of this category price per size.
func (c ProductCategory) UsesSizedPricing() bool {
	return c == CategoryPizza || c == CategoryDrink
}

// Product is a catalog entry.
type Product struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Category    ProductCategory    `json:"category"`
	Sizes       map[string]float64 `json:"sizes,omitempty"` // Size label to price, sized categories only.
	Price       float64            `json:"price,omitempty"` // Flat price, Extra category only.
	IsAvailable bool               `json:"is_available"`
	Description string             `json:"description,omitempty"`
}

// UnitPrice resolves the price of one unit for the given size label.
// ok is false when the product requires a size and none (or an unknown one)
// was given.
func (p *Product) UnitPrice(size string) (price float64, ok bool) {
	if p.Category.UsesSizedPricing() {
		price, ok = p.Sizes[size]

		return price, ok
	}

	return p.Price, true
}

package entity

import (
	"strings"
	"time"
	"unicode"
)

// Customer is a known buyer, keyed by normalized phone number.
// OrderCount, TotalSpent and LastOrderDate are derived on read by folding the
// order collection; they are never stored.
type Customer struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"` // Digits-only, unique matching key.
	Address      string `json:"address,omitempty"`
	LocationLink string `json:"location_link,omitempty"`

	OrderCount    int       `json:"order_count"`
	TotalSpent    float64   `json:"total_spent"`     // Sum of non-cancelled order totals.
	LastOrderDate time.Time `json:"last_order_date"` // Zero value means the customer never ordered.
}

// NormalizePhone strips everything but digits so that "+994 (50) 123-45-67"
// and "0501234567"-style inputs compare under one canonical key.
func NormalizePhone(phone string) string {
	var digits strings.Builder
	digits.Grow(len(phone))

	for _, r := range phone {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}

	return digits.String()
}

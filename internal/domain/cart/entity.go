// internal/domain/cart/entity.go
package cart

import (
	"errors"
	"time"
)

// ErrNotFound is returned by Repository.Fetch when the user has no cart
// document yet. Callers treat it as an empty cart.
var ErrNotFound = errors.New("cart not found")

// Line is one cart entry. Name, Price and Image are a snapshot of the
// catalog entry taken when the line was created and are never refreshed.
type Line struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

// Cart is the per-user cart document. Items is stored as a single JSON
// array and always written as a whole.
type Cart struct {
	UserID    string    `gorm:"primaryKey;size:64" json:"user"`
	Items     []Line    `gorm:"serializer:json;type:jsonb;not null" json:"items"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName overrides the table name
func (Cart) TableName() string {
	return "carts"
}

// Totals represents calculated cart totals
type Totals struct {
	ItemCount     int     `json:"itemCount"`     // Number of unique lines
	TotalQuantity int     `json:"totalQuantity"` // Sum of all quantities
	Subtotal      float64 `json:"subtotal"`
}

// CalculateTotals sums the given lines
func CalculateTotals(lines []Line) Totals {
	totals := Totals{ItemCount: len(lines)}
	for _, line := range lines {
		totals.TotalQuantity += line.Quantity
		totals.Subtotal += line.Price * float64(line.Quantity)
	}
	return totals
}

package wishlist

import (
	"errors"
	"time"
)

// ErrNotFound is returned by Repository.Fetch when the user has no wishlist
// document yet. Callers treat it as an empty wishlist.
var ErrNotFound = errors.New("wishlist not found")

// Messages returned when adding a single product
const (
	MessageAdded        = "Product added to wishlist"
	MessageAlreadySaved = "Product already in wishlist"
	MessageRemoved      = "Product removed from wishlist"
)

// Line is one wishlist entry. AddedAt is set once when the product is first
// saved and never changes afterwards.
type Line struct {
	ProductID string    `json:"productId"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Image     string    `json:"image"`
	AddedAt   time.Time `json:"addedAt"`
}

// Wishlist is the per-user wishlist document
type Wishlist struct {
	UserID    string    `gorm:"primaryKey;size:64" json:"user"`
	Items     []Line    `gorm:"serializer:json;type:jsonb;not null" json:"items"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName overrides the table name
func (Wishlist) TableName() string {
	return "wishlists"
}

// Contains reports whether productID is saved in the wishlist
func (w *Wishlist) Contains(productID string) bool {
	for _, line := range w.Items {
		if line.ProductID == productID {
			return true
		}
	}
	return false
}

package memory

import (
	"context"
	"sync"

	"github.com/your-org/storefront/internal/domain/cart"
)

// CartRepository keeps one cart document per user in memory
type CartRepository struct {
	mu   sync.RWMutex
	docs map[string]cart.Cart
	now  clock
}

// NewCartRepository creates an empty cart store
func NewCartRepository() *CartRepository {
	return &CartRepository{docs: make(map[string]cart.Cart), now: utcNow}
}

// Fetch returns a copy of the user's cart document
func (r *CartRepository) Fetch(_ context.Context, userID string) (*cart.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, ok := r.docs[userID]
	if !ok {
		return nil, cart.ErrNotFound
	}
	return copyCart(doc), nil
}

// Replace overwrites the user's item list
func (r *CartRepository) Replace(_ context.Context, userID string, lines []cart.Line) (*cart.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	doc, ok := r.docs[userID]
	if !ok {
		doc = cart.Cart{UserID: userID, CreatedAt: now}
	}
	doc.Items = append([]cart.Line{}, lines...)
	doc.UpdatedAt = now
	r.docs[userID] = doc

	return copyCart(doc), nil
}

// Clear empties the user's item list if a document exists
func (r *CartRepository) Clear(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, ok := r.docs[userID]
	if !ok {
		return nil
	}
	doc.Items = []cart.Line{}
	doc.UpdatedAt = r.now()
	r.docs[userID] = doc
	return nil
}

func copyCart(doc cart.Cart) *cart.Cart {
	doc.Items = append([]cart.Line{}, doc.Items...)
	return &doc
}

package memory

import (
	"context"
	"sync"

	"github.com/your-org/storefront/internal/domain/wishlist"
)

// WishlistRepository keeps one wishlist document per user in memory
type WishlistRepository struct {
	mu   sync.RWMutex
	docs map[string]wishlist.Wishlist
	now  clock
}

// NewWishlistRepository creates an empty wishlist store
func NewWishlistRepository() *WishlistRepository {
	return &WishlistRepository{docs: make(map[string]wishlist.Wishlist), now: utcNow}
}

// Fetch returns a copy of the user's wishlist document
func (r *WishlistRepository) Fetch(_ context.Context, userID string) (*wishlist.Wishlist, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, ok := r.docs[userID]
	if !ok {
		return nil, wishlist.ErrNotFound
	}
	return copyWishlist(doc), nil
}

// Replace overwrites the user's wishlist entries
func (r *WishlistRepository) Replace(_ context.Context, userID string, lines []wishlist.Line) (*wishlist.Wishlist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	doc, ok := r.docs[userID]
	if !ok {
		doc = wishlist.Wishlist{UserID: userID, CreatedAt: now}
	}
	doc.Items = append([]wishlist.Line{}, lines...)
	doc.UpdatedAt = now
	r.docs[userID] = doc

	return copyWishlist(doc), nil
}

// Clear empties the user's wishlist if a document exists
func (r *WishlistRepository) Clear(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, ok := r.docs[userID]
	if !ok {
		return nil
	}
	doc.Items = []wishlist.Line{}
	doc.UpdatedAt = r.now()
	r.docs[userID] = doc
	return nil
}

func copyWishlist(doc wishlist.Wishlist) *wishlist.Wishlist {
	doc.Items = append([]wishlist.Line{}, doc.Items...)
	return &doc
}

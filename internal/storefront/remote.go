package storefront

import (
	"context"

	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/wishlist"
)

// RemoteStore is the server-side cart and wishlist seen from the device.
// Every call carries the session's bearer token. A user without a stored
// collection gets an empty one, never an error.
type RemoteStore interface {
	FetchCart(ctx context.Context, token string) ([]cart.Line, error)
	ReplaceCart(ctx context.Context, token string, lines []cart.Line) ([]cart.Line, error)
	ClearCart(ctx context.Context, token string) error

	FetchWishlist(ctx context.Context, token string) ([]wishlist.Line, error)
	AddWishlistItem(ctx context.Context, token string, item Item) (lines []wishlist.Line, added bool, err error)
	RemoveWishlistItem(ctx context.Context, token string, productID string) ([]wishlist.Line, error)
}

// Authenticator exchanges credentials for a session
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*Session, error)
	Register(ctx context.Context, name, email, password string) (*Session, error)
}

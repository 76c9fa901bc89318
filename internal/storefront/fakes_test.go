package storefront_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/user"
	"github.com/your-org/storefront/internal/domain/wishlist"
	"github.com/your-org/storefront/internal/pkg/auth"
	"github.com/your-org/storefront/internal/storefront"
)

var errUnavailable = errors.New("service unavailable")

// fakeRemote is an in-memory remote store for one user
type fakeRemote struct {
	mu         sync.Mutex
	cart       []cart.Line
	wishlist   []wishlist.Line
	fetchErr   error
	replaceErr error
	replaces   int
	clears     int
	tokens     []string
}

func (f *fakeRemote) FetchCart(_ context.Context, token string) ([]cart.Line, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens = append(f.tokens, token)
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return append([]cart.Line{}, f.cart...), nil
}

func (f *fakeRemote) ReplaceCart(_ context.Context, token string, lines []cart.Line) ([]cart.Line, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens = append(f.tokens, token)
	if f.replaceErr != nil {
		return nil, f.replaceErr
	}
	f.replaces++
	f.cart = append([]cart.Line{}, lines...)
	return append([]cart.Line{}, f.cart...), nil
}

func (f *fakeRemote) ClearCart(_ context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.replaceErr != nil {
		return f.replaceErr
	}
	f.clears++
	f.cart = []cart.Line{}
	return nil
}

func (f *fakeRemote) FetchWishlist(context.Context, string) ([]wishlist.Line, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return append([]wishlist.Line{}, f.wishlist...), nil
}

func (f *fakeRemote) AddWishlistItem(_ context.Context, _ string, item storefront.Item) ([]wishlist.Line, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, line := range f.wishlist {
		if line.ProductID == item.ID {
			return append([]wishlist.Line{}, f.wishlist...), false, nil
		}
	}
	f.wishlist = append(f.wishlist, wishlist.Line{
		ProductID: item.ID, Name: item.Name, Price: item.Price, Image: item.Image, AddedAt: time.Now(),
	})
	return append([]wishlist.Line{}, f.wishlist...), true, nil
}

func (f *fakeRemote) RemoveWishlistItem(_ context.Context, _ string, productID string) ([]wishlist.Line, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := []wishlist.Line{}
	for _, line := range f.wishlist {
		if line.ProductID != productID {
			kept = append(kept, line)
		}
	}
	f.wishlist = kept
	return append([]wishlist.Line{}, kept...), nil
}

func (f *fakeRemote) cartLines() []cart.Line {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]cart.Line{}, f.cart...)
}

func (f *fakeRemote) setReplaceErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.replaceErr = err
}

// fakeAuth issues real signed tokens for a fixed set of accounts
type fakeAuth struct {
	jwt      *auth.JWTManager
	accounts map[string]string // email -> password
	logins   int
}

func newFakeAuth(expiry time.Duration) *fakeAuth {
	cfg := &config.Config{JWT: config.JWTConfig{
		Secret:      "client-test-secret-with-enough-length",
		TokenExpiry: expiry,
		Issuer:      "storefront-test",
	}}
	return &fakeAuth{
		jwt:      auth.NewJWTManager(cfg),
		accounts: map[string]string{"ada@example.com": "secret1"},
	}
}

func (a *fakeAuth) session(email string) (*storefront.Session, error) {
	token, err := a.jwt.GenerateToken("user-" + email)
	if err != nil {
		return nil, err
	}
	return storefront.SessionFromToken(token, user.Profile{ID: "user-" + email, Name: "Ada", Email: email})
}

func (a *fakeAuth) Login(_ context.Context, email, password string) (*storefront.Session, error) {
	a.logins++
	if want, ok := a.accounts[email]; !ok || want != password {
		return nil, user.ErrInvalidCredentials
	}
	return a.session(email)
}

func (a *fakeAuth) Register(_ context.Context, _ string, email, password string) (*storefront.Session, error) {
	if _, ok := a.accounts[email]; ok {
		return nil, user.ErrDuplicateAccount
	}
	a.accounts[email] = password
	return a.session(email)
}

func (f *fakeRemote) setFetchErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetchErr = err
}

// failingReads is a device store whose reads fail
type failingReads struct {
	storefront.KV
	err error
}

func (f failingReads) Get(string) ([]byte, error) {
	return nil, f.err
}

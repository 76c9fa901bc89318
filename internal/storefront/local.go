package storefront

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/your-org/storefront/internal/domain/user"
)

// Keys used in the device-local store
const (
	CartKey  = "cart"
	TokenKey = "auth_token"
	UserKey  = "user"
)

var (
	// ErrKeyNotFound is returned by KV.Get for a key that was never set or
	// has been deleted.
	ErrKeyNotFound = errors.New("key not found")

	// ErrMalformedPayload means a stored value could not be decoded. The
	// typed wrappers return it together with an empty value.
	ErrMalformedPayload = errors.New("malformed local payload")
)

// KV is the device-local key-value medium. It has one writer, the device
// itself, so the last write wins and no versioning is kept.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// LocalCart is the guest cart kept on the device
type LocalCart struct {
	kv KV
}

// NewLocalCart wraps kv
func NewLocalCart(kv KV) *LocalCart {
	return &LocalCart{kv: kv}
}

// Get returns the stored items. A missing cart is empty. An undecodable cart
// yields an empty slice and ErrMalformedPayload.
func (l *LocalCart) Get() ([]Item, error) {
	raw, err := l.kv.Get(CartKey)
	if errors.Is(err, ErrKeyNotFound) {
		return []Item{}, nil
	}
	if err != nil {
		return []Item{}, fmt.Errorf("failed to read local cart: %w", err)
	}

	var items []Item
	if err := json.Unmarshal(raw, &items); err != nil {
		return []Item{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if items == nil {
		items = []Item{}
	}
	return items, nil
}

// Set overwrites the stored items
func (l *LocalCart) Set(items []Item) error {
	if items == nil {
		items = []Item{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode local cart: %w", err)
	}
	if err := l.kv.Set(CartKey, raw); err != nil {
		return fmt.Errorf("failed to write local cart: %w", err)
	}
	return nil
}

// Clear removes the stored cart
func (l *LocalCart) Clear() error {
	if err := l.kv.Delete(CartKey); err != nil && !errors.Is(err, ErrKeyNotFound) {
		return fmt.Errorf("failed to clear local cart: %w", err)
	}
	return nil
}

// LocalSession persists the signed-in session on the device so it survives
// restarts, as the token and the user under separate keys.
type LocalSession struct {
	kv KV
}

// NewLocalSession wraps kv
func NewLocalSession(kv KV) *LocalSession {
	return &LocalSession{kv: kv}
}

// Save stores the session token and profile
func (l *LocalSession) Save(s *Session) error {
	profile, err := json.Marshal(s.User)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}
	if err := l.kv.Set(TokenKey, []byte(s.Token)); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}
	if err := l.kv.Set(UserKey, profile); err != nil {
		return fmt.Errorf("failed to store user: %w", err)
	}
	return nil
}

// Load rebuilds the stored session. It returns ErrKeyNotFound when no
// session is stored and ErrMalformedPayload when what is stored is unusable.
func (l *LocalSession) Load() (*Session, error) {
	token, err := l.kv.Get(TokenKey)
	if err != nil {
		return nil, err
	}

	var profile user.Profile
	raw, err := l.kv.Get(UserKey)
	switch {
	case err == nil:
		if err := json.Unmarshal(raw, &profile); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
		}
	case !errors.Is(err, ErrKeyNotFound):
		return nil, err
	}

	session, err := SessionFromToken(string(token), profile)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return session, nil
}

// Clear removes the stored session
func (l *LocalSession) Clear() error {
	for _, key := range []string{TokenKey, UserKey} {
		if err := l.kv.Delete(key); err != nil && !errors.Is(err, ErrKeyNotFound) {
			return fmt.Errorf("failed to clear %s: %w", key, err)
		}
	}
	return nil
}

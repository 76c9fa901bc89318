package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/your-org/storefront/internal/domain/user"
)

// UserRepository keeps accounts in memory
type UserRepository struct {
	mu      sync.RWMutex
	byID    map[string]user.User
	byEmail map[string]string
	now     clock
}

// NewUserRepository creates an empty account store
func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:    make(map[string]user.User),
		byEmail: make(map[string]string),
		now:     utcNow,
	}
}

// FindByEmail looks an account up by exact email
func (r *UserRepository) FindByEmail(_ context.Context, email string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, user.ErrNotFound
	}
	u := r.byID[id]
	return &u, nil
}

// FindByID looks an account up by id
func (r *UserRepository) FindByID(_ context.Context, id string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	return &u, nil
}

// Create inserts u, assigning its id and timestamps
func (r *UserRepository) Create(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byEmail[u.Email]; taken {
		return user.ErrDuplicateAccount
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	now := r.now()
	u.CreatedAt, u.UpdatedAt = now, now

	r.byID[u.ID] = *u
	r.byEmail[u.Email] = u.ID
	return nil
}

package user

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Repository is the account store
type Repository interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	// Create returns ErrDuplicateAccount when the email is taken
	Create(ctx context.Context, u *User) error
}

// GormRepository stores accounts through gorm
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a gorm-backed account repository
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// FindByEmail looks an account up by exact email
func (r *GormRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	return r.first(ctx, "email = ?", email)
}

// FindByID looks an account up by id
func (r *GormRepository) FindByID(ctx context.Context, id string) (*User, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *GormRepository) first(ctx context.Context, query string, arg interface{}) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).Where(query, arg).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}
	return &u, nil
}

// Create inserts a new account
func (r *GormRepository) Create(ctx context.Context, u *User) error {
	err := r.db.WithContext(ctx).Create(u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateAccount
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

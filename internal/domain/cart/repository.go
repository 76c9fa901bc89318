package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository is the server-side persisted cart store: one document per user.
type Repository interface {
	// Fetch returns ErrNotFound when the user has no cart document.
	Fetch(ctx context.Context, userID string) (*Cart, error)
	// Replace overwrites the whole item list, creating the document if needed.
	// Concurrent writers are not coordinated; the last write wins.
	Replace(ctx context.Context, userID string, lines []Line) (*Cart, error)
	// Clear empties the item list. Clearing a missing cart is not an error.
	Clear(ctx context.Context, userID string) error
}

// GormRepository stores carts in a relational database through gorm
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a gorm-backed cart repository
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// Fetch loads the user's cart document
func (r *GormRepository) Fetch(ctx context.Context, userID string) (*Cart, error) {
	var doc Cart
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&doc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to retrieve cart: %w", err)
	}
	if doc.Items == nil {
		doc.Items = []Line{}
	}
	return &doc, nil
}

// Replace upserts the user's cart document with lines
func (r *GormRepository) Replace(ctx context.Context, userID string, lines []Line) (*Cart, error) {
	if lines == nil {
		lines = []Line{}
	}

	var stored Cart
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		doc := Cart{UserID: userID, Items: lines}
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"items", "updated_at"}),
		}).Create(&doc).Error
		if err != nil {
			return err
		}
		return tx.Where("user_id = ?", userID).First(&stored).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update cart: %w", err)
	}
	return &stored, nil
}

// Clear empties the user's cart document if it exists
func (r *GormRepository) Clear(ctx context.Context, userID string) error {
	err := r.db.WithContext(ctx).Model(&Cart{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"items":      gorm.Expr("'[]'::jsonb"),
			"updated_at": time.Now().UTC(),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

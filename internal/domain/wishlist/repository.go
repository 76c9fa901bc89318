package wishlist

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository is the server-side persisted wishlist store
type Repository interface {
	Fetch(ctx context.Context, userID string) (*Wishlist, error)
	Replace(ctx context.Context, userID string, lines []Line) (*Wishlist, error)
	Clear(ctx context.Context, userID string) error
}

// GormRepository stores wishlists through gorm
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a gorm-backed wishlist repository
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// Fetch loads the user's wishlist document
func (r *GormRepository) Fetch(ctx context.Context, userID string) (*Wishlist, error) {
	var doc Wishlist
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&doc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to retrieve wishlist: %w", err)
	}
	if doc.Items == nil {
		doc.Items = []Line{}
	}
	return &doc, nil
}

// Replace upserts the user's wishlist document with lines
func (r *GormRepository) Replace(ctx context.Context, userID string, lines []Line) (*Wishlist, error) {
	if lines == nil {
		lines = []Line{}
	}

	var stored Wishlist
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		doc := Wishlist{UserID: userID, Items: lines}
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
		return nil, fmt.Errorf("failed to update wishlist: %w", err)
	}
	return &stored, nil
}

// Clear empties the user's wishlist if it exists
func (r *GormRepository) Clear(ctx context.Context, userID string) error {
	err := r.db.WithContext(ctx).Model(&Wishlist{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"items":      gorm.Expr("'[]'::jsonb"),
			"updated_at": time.Now().UTC(),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to clear wishlist: %w", err)
	}
	return nil
}

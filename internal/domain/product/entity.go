// internal/domain/product/entity.go
package product

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a product id does not exist
	ErrNotFound = errors.New("Product not found")
	// ErrCategoryNotFound is returned when a category slug does not exist
	ErrCategoryNotFound = errors.New("Category not found")
)

// Product represents the product entity
type Product struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Name         string    `gorm:"not null;size:100" json:"name"`
	Price        float64   `gorm:"not null;default:0" json:"price"`
	Category     string    `gorm:"not null;size:100" json:"category"`
	CategorySlug string    `gorm:"not null;size:100;index" json:"categorySlug"`
	SubCategory  string    `gorm:"size:100" json:"subCategory"`
	Rating       float64   `gorm:"default:0" json:"rating"`
	Image        string    `gorm:"size:500" json:"image"`
	Description  string    `gorm:"type:text" json:"description"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Category represents product categories
type Category struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	Name          string    `gorm:"not null;size:50" json:"name"`
	Slug          string    `gorm:"uniqueIndex;not null;size:100" json:"slug"`
	Image         string    `gorm:"size:500" json:"image"`
	Description   string    `gorm:"size:500" json:"description"`
	Featured      bool      `gorm:"default:false" json:"featured"`
	SubCategories []string  `gorm:"serializer:json;type:jsonb" json:"subCategories"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// TableName overrides
func (Product) TableName() string  { return "products" }
func (Category) TableName() string { return "categories" }

// BeforeCreate assigns an id when the caller did not
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// BeforeCreate assigns an id when the caller did not
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

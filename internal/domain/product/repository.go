package product

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Sort keys accepted by List
const (
	SortNewest    = "newest"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortRating    = "rating"
	SortName      = "name"
)

// Filter narrows a product listing
type Filter struct {
	Search       string
	CategorySlug string
	MinPrice     float64
	MaxPrice     float64
	Sort         string
	Offset       int
	Limit        int
}

// Matches reports whether p passes the filter's predicates. Search is a
// case-insensitive substring match on name, description and category.
func (f Filter) Matches(p Product) bool {
	if f.CategorySlug != "" && p.CategorySlug != f.CategorySlug {
		return false
	}
	if f.MinPrice > 0 && p.Price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && p.Price > f.MaxPrice {
		return false
	}
	if f.Search == "" {
		return true
	}
	needle := strings.ToLower(f.Search)
	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle) ||
		strings.Contains(strings.ToLower(p.Category), needle)
}

// SortProducts orders products in place by the given sort key
func SortProducts(products []Product, key string) {
	sort.SliceStable(products, func(i, j int) bool {
		a, b := products[i], products[j]
		switch key {
		case SortPriceAsc:
			return a.Price < b.Price
		case SortPriceDesc:
			return a.Price > b.Price
		case SortRating:
			return a.Rating > b.Rating
		case SortName:
			return a.Name < b.Name
		default:
			return a.CreatedAt.After(b.CreatedAt)
		}
	})
}

// SortCategories orders featured categories first, then by name
func SortCategories(categories []Category) {
	sort.SliceStable(categories, func(i, j int) bool {
		if categories[i].Featured != categories[j].Featured {
			return categories[i].Featured
		}
		return categories[i].Name < categories[j].Name
	})
}

// Repository is the read side of the catalog
type Repository interface {
	ListProducts(ctx context.Context, filter Filter) ([]Product, int64, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
	ProductsByCategory(ctx context.Context, slug string) ([]Product, error)
	ListCategories(ctx context.Context) ([]Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*Category, error)
}

// GormRepository reads the catalog through gorm
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a gorm-backed catalog repository
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// ListProducts retrieves products with filtering and pagination
func (r *GormRepository) ListProducts(ctx context.Context, filter Filter) ([]Product, int64, error) {
	var products []Product
	var total int64

	query := r.db.WithContext(ctx).Model(&Product{})

	if filter.CategorySlug != "" {
		query = query.Where("category_slug = ?", filter.CategorySlug)
	}

	if filter.Search != "" {
		search := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(category) LIKE ?", search, search, search)
	}

	if filter.MinPrice > 0 {
		query = query.Where("price >= ?", filter.MinPrice)
	}

	if filter.MaxPrice > 0 {
		query = query.Where("price <= ?", filter.MaxPrice)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	err := query.Order(orderClause(filter.Sort)).
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&products).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to retrieve products: %w", err)
	}

	return products, total, nil
}

// GetProduct retrieves a single product by ID
func (r *GormRepository) GetProduct(ctx context.Context, id string) (*Product, error) {
	var p Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to retrieve product: %w", err)
	}
	return &p, nil
}

// ProductsByCategory returns every product filed under slug
func (r *GormRepository) ProductsByCategory(ctx context.Context, slug string) ([]Product, error) {
	var products []Product
	err := r.db.WithContext(ctx).
		Where("category_slug = ?", slug).
		Order("name ASC").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}
	return products, nil
}

// ListCategories returns all categories, featured first
func (r *GormRepository) ListCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	err := r.db.WithContext(ctx).
		Order("featured DESC, name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve categories: %w", err)
	}
	return categories, nil
}

// GetCategoryBySlug retrieves a category by slug
func (r *GormRepository) GetCategoryBySlug(ctx context.Context, slug string) (*Category, error) {
	var c Category
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to retrieve category: %w", err)
	}
	return &c, nil
}

// Seed inserts categories and products, skipping rows whose key already
// exists.
func (r *GormRepository) Seed(ctx context.Context, categories []Category, products []Product) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(categories) > 0 {
			err := tx.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "slug"}}, DoNothing: true}).
				Create(&categories).Error
			if err != nil {
				return fmt.Errorf("failed to seed categories: %w", err)
			}
		}
		if len(products) > 0 {
			err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&products).Error
			if err != nil {
				return fmt.Errorf("failed to seed products: %w", err)
			}
		}
		return nil
	})
}

func orderClause(key string) string {
	switch key {
	case SortPriceAsc:
		return "price ASC, id ASC"
	case SortPriceDesc:
		return "price DESC, id ASC"
	case SortRating:
		return "rating DESC, id ASC"
	case SortName:
		return "name ASC, id ASC"
	default:
		return "created_at DESC, id ASC"
	}
}

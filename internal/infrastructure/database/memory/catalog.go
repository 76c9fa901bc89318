package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/your-org/storefront/internal/domain/product"
)

// CatalogRepository keeps products and categories in memory
type CatalogRepository struct {
	mu         sync.RWMutex
	products   []product.Product
	categories []product.Category
}

// NewCatalogRepository creates an empty catalog
func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{}
}

// Seed adds categories and products, skipping any whose slug or id is
// already present.
func (r *CatalogRepository) Seed(_ context.Context, categories []product.Category, products []product.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	slugs := make(map[string]bool, len(r.categories))
	for _, c := range r.categories {
		slugs[c.Slug] = true
	}
	for _, c := range categories {
		if slugs[c.Slug] {
			continue
		}
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		slugs[c.Slug] = true
		r.categories = append(r.categories, c)
	}

	ids := make(map[string]bool, len(r.products))
	for _, p := range r.products {
		ids[p.ID] = true
	}
	for _, p := range products {
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		if ids[p.ID] {
			continue
		}
		ids[p.ID] = true
		r.products = append(r.products, p)
	}
	return nil
}

// ListProducts filters, sorts and pages the catalog
func (r *CatalogRepository) ListProducts(_ context.Context, filter product.Filter) ([]product.Product, int64, error) {
	r.mu.RLock()
	matched := make([]product.Product, 0, len(r.products))
	for _, p := range r.products {
		if filter.Matches(p) {
			matched = append(matched, p)
		}
	}
	r.mu.RUnlock()

	product.SortProducts(matched, filter.Sort)

	total := int64(len(matched))
	start := filter.Offset
	if start > len(matched) {
		start = len(matched)
	}
	end := len(matched)
	if filter.Limit > 0 && start+filter.Limit < end {
		end = start + filter.Limit
	}
	return matched[start:end], total, nil
}

// GetProduct retrieves a single product by ID
func (r *CatalogRepository) GetProduct(_ context.Context, id string) (*product.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, product.ErrNotFound
}

// ProductsByCategory returns every product filed under slug, by name
func (r *CatalogRepository) ProductsByCategory(ctx context.Context, slug string) ([]product.Product, error) {
	products, _, err := r.ListProducts(ctx, product.Filter{CategorySlug: slug, Sort: product.SortName})
	return products, err
}

// ListCategories returns all categories, featured first
func (r *CatalogRepository) ListCategories(_ context.Context) ([]product.Category, error) {
	r.mu.RLock()
	categories := append([]product.Category{}, r.categories...)
	r.mu.RUnlock()

	product.SortCategories(categories)
	return categories, nil
}

// GetCategoryBySlug retrieves a category by slug
func (r *CatalogRepository) GetCategoryBySlug(_ context.Context, slug string) (*product.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.categories {
		if c.Slug == slug {
			return &c, nil
		}
	}
	return nil, product.ErrCategoryNotFound
}

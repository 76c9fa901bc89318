// internal/domain/product/category_service.go
package product

import (
	"context"
)

// CategoryDetail is a category together with the products filed under it
type CategoryDetail struct {
	Category *Category       `json:"category"`
	Products CategoryProducts `json:"products"`
}

// CategoryProducts is the product block of a category detail
type CategoryProducts struct {
	Count int       `json:"count"`
	Items []Product `json:"items"`
}

// Categories lists every category, featured first, then by name
func (s *Service) Categories(ctx context.Context) ([]Category, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []Category{}
	}
	return categories, nil
}

// CategoryBySlug returns the category and its products
func (s *Service) CategoryBySlug(ctx context.Context, slug string) (*CategoryDetail, error) {
	category, err := s.repo.GetCategoryBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	products, err := s.repo.ProductsByCategory(ctx, slug)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []Product{}
	}

	return &CategoryDetail{
		Category: category,
		Products: CategoryProducts{Count: len(products), Items: products},
	}, nil
}

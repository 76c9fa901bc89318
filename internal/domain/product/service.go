// internal/domain/product/service.go
package product

import (
	"context"
)

const (
	defaultLimit = 50
	maxLimit     = 100
)

// Service answers catalog queries. The catalog is read-only here; it is
// populated by seeding.
type Service struct {
	repo Repository
}

// NewService creates a new catalog service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListRequest represents product list query parameters
type ListRequest struct {
	Search   string  `form:"search"`
	Category string  `form:"category"`
	MinPrice float64 `form:"min_price"`
	MaxPrice float64 `form:"max_price"`
	Sort     string  `form:"sort"`
	Page     int     `form:"page,default=1"`
	Limit    int     `form:"limit,default=50"`
}

// ListResponse represents product response with pagination
type ListResponse struct {
	Products   []Product  `json:"products"`
	Count      int        `json:"count"`
	Pagination Pagination `json:"pagination"`
}

// Pagination represents pagination information
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// List retrieves products with filtering and pagination
func (s *Service) List(ctx context.Context, req *ListRequest) (*ListResponse, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	products, total, err := s.repo.ListProducts(ctx, Filter{
		Search:       req.Search,
		CategorySlug: req.Category,
		MinPrice:     req.MinPrice,
		MaxPrice:     req.MaxPrice,
		Sort:         req.Sort,
		Offset:       (page - 1) * limit,
		Limit:        limit,
	})
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []Product{}
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &ListResponse{
		Products: products,
		Count:    len(products),
		Pagination: Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
			HasPrev:    page > 1,
		},
	}, nil
}

// Get retrieves a single product by ID
func (s *Service) Get(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetProduct(ctx, id)
}

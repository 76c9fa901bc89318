package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/your-org/storefront/internal/domain/product"
)

// Products lists catalog products
func (c *Client) Products(ctx context.Context, req product.ListRequest) (*product.ListResponse, error) {
	query := url.Values{}
	if req.Search != "" {
		query.Set("search", req.Search)
	}
	if req.Category != "" {
		query.Set("category", req.Category)
	}
	if req.Sort != "" {
		query.Set("sort", req.Sort)
	}
	if req.Page > 0 {
		query.Set("page", strconv.Itoa(req.Page))
	}
	if req.Limit > 0 {
		query.Set("limit", strconv.Itoa(req.Limit))
	}

	var resp product.ListResponse
	if err := c.do(ctx, http.MethodGet, "/products", query, "", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Product fetches one product by id
func (c *Client) Product(ctx context.Context, id string) (*product.Product, error) {
	var resp struct {
		Data product.Product `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(id), nil, "", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

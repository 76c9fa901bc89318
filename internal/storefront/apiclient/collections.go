package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/wishlist"
	"github.com/your-org/storefront/internal/storefront"
)

type cartDocument struct {
	Items []cart.Line `json:"items"`
}

type wishlistDocument struct {
	Items []wishlist.Line `json:"items"`
}

// FetchCart returns the user's cart lines
func (c *Client) FetchCart(ctx context.Context, token string) ([]cart.Line, error) {
	var doc cartDocument
	if err := c.do(ctx, http.MethodGet, "/cart", nil, token, nil, &doc); err != nil {
		return nil, err
	}
	return nonNilLines(doc.Items), nil
}

// ReplaceCart overwrites the user's cart and returns what was stored
func (c *Client) ReplaceCart(ctx context.Context, token string, lines []cart.Line) ([]cart.Line, error) {
	var doc cartDocument
	body := cartDocument{Items: nonNilLines(lines)}
	if err := c.do(ctx, http.MethodPost, "/cart", nil, token, body, &doc); err != nil {
		return nil, err
	}
	return nonNilLines(doc.Items), nil
}

// ClearCart empties the user's cart
func (c *Client) ClearCart(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodDelete, "/cart", nil, token, nil, nil)
}

// FetchWishlist returns the user's wishlist lines
func (c *Client) FetchWishlist(ctx context.Context, token string) ([]wishlist.Line, error) {
	var doc wishlistDocument
	if err := c.do(ctx, http.MethodGet, "/wishlist", nil, token, nil, &doc); err != nil {
		return nil, err
	}
	return nonNilWishlist(doc.Items), nil
}

// AddWishlistItem saves one product. added is false when it was already saved.
func (c *Client) AddWishlistItem(ctx context.Context, token string, item storefront.Item) ([]wishlist.Line, bool, error) {
	var resp struct {
		Message  string           `json:"message"`
		Wishlist wishlistDocument `json:"wishlist"`
	}
	body := wishlist.AddRequest{ID: item.ID, Name: item.Name, Price: item.Price, Image: item.Image}
	if err := c.do(ctx, http.MethodPost, "/wishlist/items", nil, token, body, &resp); err != nil {
		return nil, false, err
	}
	return nonNilWishlist(resp.Wishlist.Items), resp.Message == wishlist.MessageAdded, nil
}

// RemoveWishlistItem drops one product from the wishlist
func (c *Client) RemoveWishlistItem(ctx context.Context, token string, productID string) ([]wishlist.Line, error) {
	var resp struct {
		Wishlist wishlistDocument `json:"wishlist"`
	}
	query := url.Values{"productId": {productID}}
	if err := c.do(ctx, http.MethodDelete, "/wishlist", query, token, nil, &resp); err != nil {
		return nil, err
	}
	return nonNilWishlist(resp.Wishlist.Items), nil
}

func nonNilLines(lines []cart.Line) []cart.Line {
	if lines == nil {
		return []cart.Line{}
	}
	return lines
}

func nonNilWishlist(lines []wishlist.Line) []wishlist.Line {
	if lines == nil {
		return []wishlist.Line{}
	}
	return lines
}

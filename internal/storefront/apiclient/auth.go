package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/your-org/storefront/internal/domain/user"
	"github.com/your-org/storefront/internal/storefront"
)

// Login exchanges credentials for a session
func (c *Client) Login(ctx context.Context, email, password string) (*storefront.Session, error) {
	return c.authenticate(ctx, "/auth/login", user.LoginRequest{Email: email, Password: password})
}

// Register creates an account and returns its session
func (c *Client) Register(ctx context.Context, name, email, password string) (*storefront.Session, error) {
	return c.authenticate(ctx, "/auth/register", user.RegisterRequest{Name: name, Email: email, Password: password})
}

// Me returns the profile the token belongs to
func (c *Client) Me(ctx context.Context, token string) (*user.Profile, error) {
	var resp struct {
		User user.Profile `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, token, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (c *Client) authenticate(ctx context.Context, path string, body interface{}) (*storefront.Session, error) {
	var resp user.AuthResponse
	if err := c.do(ctx, http.MethodPost, path, nil, "", body, &resp); err != nil {
		return nil, err
	}

	session, err := storefront.SessionFromToken(resp.Token, resp.User)
	if err != nil {
		return nil, fmt.Errorf("server issued an unusable token: %w", err)
	}
	return session, nil
}

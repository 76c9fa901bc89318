package storefront

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/your-org/storefront/internal/domain/user"
	"github.com/your-org/storefront/internal/pkg/auth"
)

// Session is a signed-in client session. UserID, IssuedAt and Expiry are read
// from the token payload; the client cannot verify the signature, so they
// only drive local decisions and the server remains the judge.
type Session struct {
	UserID   string
	Token    string
	IssuedAt time.Time
	Expiry   time.Time
	User     user.Profile
}

// SessionFromToken builds a session from a bearer token
func SessionFromToken(token string, profile user.Profile) (*Session, error) {
	if token == "" {
		return nil, errors.New("empty token")
	}

	var claims auth.Claims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return nil, fmt.Errorf("failed to read token: %w", err)
	}
	if claims.ID == "" {
		return nil, errors.New("token does not carry a user id")
	}

	s := &Session{
		UserID: claims.ID,
		Token:  token,
		User:   profile,
	}
	if claims.IssuedAt != nil {
		s.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		s.Expiry = claims.ExpiresAt.Time
	}
	if s.User.ID == "" {
		s.User.ID = claims.ID
	}
	return s, nil
}

// Expired reports whether the session is past its expiry at now. Tokens
// cannot be refreshed; an expired session must log in again.
func (s *Session) Expired(now time.Time) bool {
	return !s.Expiry.IsZero() && !now.Before(s.Expiry)
}

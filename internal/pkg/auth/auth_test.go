package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront/internal/config"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:      "0123456789abcdef0123456789abcdef",
			TokenExpiry: 7 * 24 * time.Hour,
			Issuer:      "storefront-test",
		},
		Security: config.SecurityConfig{BcryptCost: bcrypt.MinCost},
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	m := NewJWTManager(testConfig())

	token, err := m.GenerateToken("user-1")
	require.NoError(t, err)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.ID)
	assert.Equal(t, "storefront-test", claims.Issuer)
	assert.Equal(t, 7*24*time.Hour, m.Expiry())
	assert.WithinDuration(t, claims.IssuedAt.Add(m.Expiry()), claims.ExpiresAt.Time, time.Second)
}

func TestValidateTokenRejects(t *testing.T) {
	m := NewJWTManager(testConfig())

	other := testConfig()
	other.JWT.Secret = "ffffffffffffffffffffffffffffffff"
	foreign, err := NewJWTManager(other).GenerateToken("user-1")
	require.NoError(t, err)

	expiredManager := NewJWTManager(testConfig())
	expiredManager.now = func() time.Time { return time.Now().Add(-8 * 24 * time.Hour) }
	expired, err := expiredManager.GenerateToken("user-1")
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{ID: "user-1"})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"empty":         "",
		"garbage":       "not-a-token",
		"wrong secret":  foreign,
		"expired":       expired,
		"alg none":      unsigned,
		"truncated":     foreign[:len(foreign)/2],
		"extra segment": foreign + ".x",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := m.ValidateToken(token)
			assert.Error(t, err)
		})
	}
}

func TestGenerateTokenRequiresUser(t *testing.T) {
	_, err := NewJWTManager(testConfig()).GenerateToken("")
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	assert.Equal(t, "abc", ExtractTokenFromHeader("Bearer abc"))
	assert.Equal(t, "", ExtractTokenFromHeader("Bearer "))
	assert.Equal(t, "", ExtractTokenFromHeader("Basic abc"))
	assert.Equal(t, "", ExtractTokenFromHeader(""))
}

func TestPasswordManager(t *testing.T) {
	p := NewPasswordManager(testConfig())

	hash, err := p.HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)
	assert.NoError(t, p.VerifyPassword("secret1", hash))
	assert.Error(t, p.VerifyPassword("secret2", hash))

	_, err = p.HashPassword("abc")
	assert.Error(t, err)

	_, err = p.HashPassword(strings.Repeat("a", 73))
	assert.Error(t, err)
}

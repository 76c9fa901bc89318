package apiclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/product"
	"github.com/your-org/storefront/internal/domain/user"
	"github.com/your-org/storefront/internal/domain/wishlist"
	"github.com/your-org/storefront/internal/infrastructure/database/memory"
	httpapi "github.com/your-org/storefront/internal/interfaces/http"
	"github.com/your-org/storefront/internal/interfaces/http/routes"
	"github.com/your-org/storefront/internal/storefront"
	"github.com/your-org/storefront/internal/storefront/apiclient"
	"github.com/your-org/storefront/internal/storefront/localstore"
)

type testAPI struct {
	server *httptest.Server
	client *apiclient.Client
	carts  *memory.CartRepository
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	cfg := &config.Config{
		App:    config.AppConfig{Name: "storefront", Environment: "test"},
		Server: config.ServerConfig{RequestTimeout: 5 * time.Second, MaxBodyBytes: 1 << 20},
		JWT: config.JWTConfig{
			Secret:      "apiclient-test-secret-with-enough-length",
			TokenExpiry: 7 * 24 * time.Hour,
			Issuer:      "storefront-test",
		},
		Security: config.SecurityConfig{BcryptCost: bcrypt.MinCost},
	}
	log, _ := test.NewNullLogger()

	catalog := memory.NewCatalogRepository()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, catalog.Seed(context.Background(), product.SeedCategories(), product.SeedProducts(base)))

	carts := memory.NewCartRepository()
	deps := routes.Dependencies{
		Users:     user.NewService(memory.NewUserRepository(), cfg, log),
		Carts:     cart.NewService(carts, log),
		Wishlists: wishlist.NewService(memory.NewWishlistRepository(), log),
		Catalog:   product.NewService(catalog),
	}

	server := httptest.NewServer(httpapi.NewServer(cfg, deps, nil, log).Handler())
	t.Cleanup(server.Close)

	return &testAPI{
		server: server,
		client: apiclient.New(server.URL+"/api", server.Client(), log),
		carts:  carts,
	}
}

func TestAuthErrors(t *testing.T) {
	api := newTestAPI(t)
	ctx := context.Background()

	_, err := api.client.Register(ctx, "Ada", "ada@example.com", "secret1")
	require.NoError(t, err)

	_, err = api.client.Register(ctx, "Ada", "ada@example.com", "secret1")
	assert.True(t, apiclient.IsConflict(err))

	_, unknown := api.client.Login(ctx, "unknown@x.com", "any")
	_, wrong := api.client.Login(ctx, "ada@example.com", "wrongpass")
	require.Error(t, unknown)
	require.Error(t, wrong)
	assert.True(t, apiclient.IsUnauthorized(unknown))
	assert.Equal(t, unknown.Error(), wrong.Error(), "unknown email and wrong password look the same")

	_, err = api.client.FetchCart(ctx, "garbage")
	assert.True(t, apiclient.IsUnauthorized(err))
	assert.EqualError(t, err, "api error 401: Unauthorized")
}

func TestSessionFromLogin(t *testing.T) {
	api := newTestAPI(t)
	ctx := context.Background()

	registered, err := api.client.Register(ctx, "Ada", "ada@example.com", "secret1")
	require.NoError(t, err)
	session, err := api.client.Login(ctx, "ada@example.com", "secret1")
	require.NoError(t, err)

	assert.Equal(t, registered.UserID, session.UserID)
	assert.Equal(t, "ada@example.com", session.User.Email)
	assert.InDelta(t, (7 * 24 * time.Hour).Seconds(), session.Expiry.Sub(session.IssuedAt).Seconds(), 1)

	me, err := api.client.Me(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.UserID, me.ID)
}

func TestCartAndWishlistRoundTrip(t *testing.T) {
	api := newTestAPI(t)
	ctx := context.Background()

	session, err := api.client.Register(ctx, "Ada", "ada@example.com", "secret1")
	require.NoError(t, err)
	token := session.Token

	lines, err := api.client.FetchCart(ctx, token)
	require.NoError(t, err)
	assert.NotNil(t, lines)
	assert.Empty(t, lines)

	want := []cart.Line{{ProductID: "1", Name: "Headphones", Price: 249.99, Image: "h.jpg", Quantity: 2}}
	stored, err := api.client.ReplaceCart(ctx, token, want)
	require.NoError(t, err)
	assert.Equal(t, want, stored)

	require.NoError(t, api.client.ClearCart(ctx, token))
	lines, err = api.client.FetchCart(ctx, token)
	require.NoError(t, err)
	assert.Empty(t, lines)

	item := storefront.Item{ID: "5", Name: "Sunglasses", Price: 179.99, Image: "s.jpg"}
	saved, added, err := api.client.AddWishlistItem(ctx, token, item)
	require.NoError(t, err)
	assert.True(t, added)
	require.Len(t, saved, 1)

	_, added, err = api.client.AddWishlistItem(ctx, token, item)
	require.NoError(t, err)
	assert.False(t, added)

	saved, err = api.client.RemoveWishlistItem(ctx, token, "5")
	require.NoError(t, err)
	assert.Empty(t, saved)
}

func TestCatalog(t *testing.T) {
	api := newTestAPI(t)
	ctx := context.Background()

	list, err := api.client.Products(ctx, product.ListRequest{Search: "electronics", Limit: 2})
	require.NoError(t, err)
	assert.Len(t, list.Products, 2)
	assert.True(t, list.Pagination.HasNext)

	p, err := api.client.Product(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Premium Wireless Headphones", p.Name)

	_, err = api.client.Product(ctx, "nope")
	assert.True(t, apiclient.IsNotFound(err))
	assert.EqualError(t, err, "api error 404: Product not found")
}

func TestErrorWithoutJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	log, _ := test.NewNullLogger()
	client := apiclient.New(server.URL, server.Client(), log)

	_, err := client.FetchCart(context.Background(), "tok")
	var apiErr *apiclient.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, "Bad Gateway", apiErr.Message)
}

// A guest fills a cart, registers, and finds the same cart on the server
// while the device copy is gone.
func TestGuestCartSurvivesRegistration(t *testing.T) {
	api := newTestAPI(t)
	ctx := context.Background()
	log, _ := test.NewNullLogger()

	kv := localstore.NewMemory()
	controller := storefront.NewController(kv, api.client, api.client, log)
	require.NoError(t, controller.Restore(ctx))

	controller.Add(storefront.Item{ID: "A", Name: "Item A", Price: 10}, 1)
	controller.Add(storefront.Item{ID: "B", Name: "Item B", Price: 20}, 2)

	require.NoError(t, controller.Register(ctx, "Ada", "ada@example.com", "secret1"))
	controller.Wait()

	session, ok := controller.Session()
	require.True(t, ok)

	lines, err := api.client.FetchCart(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, []cart.Line{
		{ProductID: "A", Name: "Item A", Price: 10, Quantity: 1},
		{ProductID: "B", Name: "Item B", Price: 20, Quantity: 2},
	}, lines)

	local, err := storefront.NewLocalCart(kv).Get()
	require.NoError(t, err)
	assert.Empty(t, local)

	assert.Equal(t, lines, controller.Items())
}

package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
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
	"github.com/your-org/storefront/internal/interfaces/cli"
	httpapi "github.com/your-org/storefront/internal/interfaces/http"
	"github.com/your-org/storefront/internal/interfaces/http/routes"
	"github.com/your-org/storefront/internal/storefront"
	"github.com/your-org/storefront/internal/storefront/apiclient"
	"github.com/your-org/storefront/internal/storefront/localstore"
)

// device is one terminal: its local store survives between commands
type device struct {
	t      *testing.T
	kv     storefront.KV
	client *apiclient.Client
}

func newDevice(t *testing.T) *device {
	t.Helper()

	cfg := &config.Config{
		App:    config.AppConfig{Name: "storefront", Environment: "test"},
		Server: config.ServerConfig{RequestTimeout: 5 * time.Second, MaxBodyBytes: 1 << 20},
		JWT: config.JWTConfig{
			Secret:      "cli-test-secret-with-enough-length-1234",
			TokenExpiry: 7 * 24 * time.Hour,
			Issuer:      "storefront-test",
		},
		Security: config.SecurityConfig{BcryptCost: bcrypt.MinCost},
	}
	log, _ := test.NewNullLogger()

	catalog := memory.NewCatalogRepository()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, catalog.Seed(context.Background(), product.SeedCategories(), product.SeedProducts(base)))

	deps := routes.Dependencies{
		Users:     user.NewService(memory.NewUserRepository(), cfg, log),
		Carts:     cart.NewService(memory.NewCartRepository(), log),
		Wishlists: wishlist.NewService(memory.NewWishlistRepository(), log),
		Catalog:   product.NewService(catalog),
	}
	server := httptest.NewServer(httpapi.NewServer(cfg, deps, nil, log).Handler())
	t.Cleanup(server.Close)

	return &device{
		t:      t,
		kv:     localstore.NewMemory(),
		client: apiclient.New(server.URL+"/api", server.Client(), log),
	}
}

func (d *device) factory(ctx context.Context, opts *cli.RootOptions) (*cli.App, error) {
	log, _ := test.NewNullLogger()
	app := &cli.App{
		Controller: storefront.NewController(d.kv, d.client, d.client, log),
		Catalog:    d.client,
	}
	if err := app.Controller.Restore(ctx); err != nil {
		return nil, err
	}
	return app, nil
}

func (d *device) run(args ...string) (string, error) {
	cmd := cli.NewRootCommand(d.factory)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func (d *device) mustRun(args ...string) string {
	d.t.Helper()
	out, err := d.run(args...)
	require.NoError(d.t, err, "storefront %v", args)
	return out
}

type cartOutput struct {
	State      string      `json:"state"`
	Items      []cart.Line `json:"items"`
	TotalItems int         `json:"totalItems"`
	Subtotal   float64     `json:"subtotal"`
}

func (d *device) cart() cartOutput {
	d.t.Helper()
	var view cartOutput
	require.NoError(d.t, json.Unmarshal([]byte(d.mustRun("cart", "--format", "json")), &view))
	return view
}

func TestRootCommandSubcommands(t *testing.T) {
	cmd := cli.NewRootCommand(newDevice(t).factory)

	for _, name := range []string{"login", "register", "logout", "whoami", "products", "cart", "wishlist"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, sub.Name())
	}

	for _, args := range [][]string{{"cart", "add"}, {"cart", "update"}, {"wishlist", "remove"}} {
		sub, _, err := cmd.Find(args)
		require.NoError(t, err)
		assert.Equal(t, args[1], sub.Name())
	}
}

func TestInvalidFormat(t *testing.T) {
	_, err := newDevice(t).run("whoami", "--format", "yaml")
	assert.ErrorContains(t, err, "invalid format")
}

func TestGuestCartPersistsOnDevice(t *testing.T) {
	d := newDevice(t)

	d.mustRun("cart", "add", "1", "--quantity", "2")
	d.mustRun("cart", "add", "4")

	view := d.cart()
	assert.Equal(t, "GUEST", view.State)
	require.Len(t, view.Items, 2)
	assert.Equal(t, 3, view.TotalItems)
	assert.InDelta(t, 2*249.99+89.99, view.Subtotal, 0.001)
	assert.Equal(t, "Premium Wireless Headphones", view.Items[0].Name)

	d.mustRun("cart", "update", "1", "0")
	view = d.cart()
	require.Len(t, view.Items, 1)
	assert.Equal(t, "4", view.Items[0].ProductID)

	d.mustRun("cart", "clear")
	assert.Empty(t, d.cart().Items)

	out := d.mustRun("cart")
	assert.Contains(t, out, "Your cart is empty.")
}

func TestLoginMergesGuestCart(t *testing.T) {
	d := newDevice(t)

	d.mustRun("register", "--name", "Ada", "--email", "ada@example.com", "--password", "secret1")
	d.mustRun("cart", "add", "1", "--quantity", "1")
	d.mustRun("cart", "add", "2", "--quantity", "1")
	d.mustRun("logout")

	assert.Empty(t, d.cart().Items, "logout shows the empty guest cart")

	d.mustRun("cart", "add", "1", "--quantity", "3")
	d.mustRun("cart", "add", "3")

	out := d.mustRun("login", "--email", "ada@example.com", "--password", "secret1")
	assert.Contains(t, out, "Signed in as Ada <ada@example.com>")

	view := d.cart()
	assert.Equal(t, "AUTHENTICATED", view.State)
	quantities := map[string]int{}
	for _, line := range view.Items {
		quantities[line.ProductID] = line.Quantity
	}
	assert.Equal(t, map[string]int{"1": 3, "2": 1, "3": 1}, quantities)

	raw, err := d.kv.Get(storefront.CartKey)
	if err == nil {
		assert.JSONEq(t, "[]", string(raw))
	} else {
		assert.ErrorIs(t, err, storefront.ErrKeyNotFound)
	}
}

func TestLoginFailure(t *testing.T) {
	d := newDevice(t)

	_, err := d.run("login", "--email", "nobody@example.com", "--password", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "login failed")

	out := d.mustRun("whoami")
	assert.Contains(t, out, "Signed out")
}

func TestWhoamiJSON(t *testing.T) {
	d := newDevice(t)
	d.mustRun("register", "--name", "Ada", "--email", "ada@example.com", "--password", "secret1")

	var view struct {
		State  string `json:"state"`
		UserID string `json:"userId"`
		Email  string `json:"email"`
	}
	require.NoError(t, json.Unmarshal([]byte(d.mustRun("whoami", "--format", "json")), &view))
	assert.Equal(t, "AUTHENTICATED", view.State)
	assert.NotEmpty(t, view.UserID)
	assert.Equal(t, "ada@example.com", view.Email)
}

func TestWishlistRequiresSignIn(t *testing.T) {
	d := newDevice(t)

	_, err := d.run("wishlist", "add", "1")
	assert.ErrorIs(t, err, storefront.ErrAuthRequired)

	_, err = d.run("wishlist")
	assert.ErrorIs(t, err, storefront.ErrAuthRequired)
}

func TestWishlistLifecycle(t *testing.T) {
	d := newDevice(t)
	d.mustRun("register", "--name", "Ada", "--email", "ada@example.com", "--password", "secret1")

	d.mustRun("wishlist", "add", "2")
	out := d.mustRun("wishlist", "add", "2")
	assert.Contains(t, out, "Already in your wishlist.")

	var view struct {
		Items []wishlist.Line `json:"items"`
	}
	require.NoError(t, json.Unmarshal([]byte(d.mustRun("wishlist", "show", "--format", "json")), &view))
	require.Len(t, view.Items, 1)
	assert.Equal(t, "2", view.Items[0].ProductID)
	assert.False(t, view.Items[0].AddedAt.IsZero())

	out = d.mustRun("wishlist", "remove", "2")
	assert.Contains(t, out, "Your wishlist is empty.")
}

func TestProducts(t *testing.T) {
	d := newDevice(t)

	out := d.mustRun("products", "--limit", "2")
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "page 1 of")

	var resp product.ListResponse
	require.NoError(t, json.Unmarshal([]byte(d.mustRun("products", "electronics", "--format", "json")), &resp))
	assert.GreaterOrEqual(t, resp.Count, 3)
	assert.Len(t, resp.Products, resp.Count)

	_, err := d.run("cart", "add", "does-not-exist")
	assert.Error(t, err)
}

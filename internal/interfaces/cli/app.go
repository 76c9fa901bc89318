package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/product"
	"github.com/your-org/storefront/internal/infrastructure/database/redis"
	"github.com/your-org/storefront/internal/pkg/logger"
	"github.com/your-org/storefront/internal/storefront"
	"github.com/your-org/storefront/internal/storefront/apiclient"
	"github.com/your-org/storefront/internal/storefront/localstore"
)

// Catalog is the product lookup the cart and wishlist commands use to
// snapshot a product by id
type Catalog interface {
	Products(ctx context.Context, req product.ListRequest) (*product.ListResponse, error)
	Product(ctx context.Context, id string) (*product.Product, error)
}

// App is what the commands operate on
type App struct {
	Controller *storefront.Controller
	Catalog    Catalog
	closers    []io.Closer
}

// Close waits for background cart saves and releases connections
func (a *App) Close() error {
	a.Controller.Wait()
	var first error
	for _, c := range a.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// AppFactory builds the App once flags are parsed
type AppFactory func(ctx context.Context, opts *RootOptions) (*App, error)

// DefaultApp wires the controller from environment configuration: the API
// client for the remote store and the configured device-local store.
func DefaultApp(ctx context.Context, opts *RootOptions) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	cfg.Logging.Format = "text"
	if !opts.Verbose {
		cfg.Logging.Level = "error"
	}
	log := logger.NewWithOutput(cfg.Logging, opts.errOut)

	app := &App{}

	var kv storefront.KV
	if cfg.Storefront.LocalDriver == "redis" {
		conn, err := redis.NewConnection(cfg, log)
		if err != nil {
			return nil, fmt.Errorf("local store: %w", err)
		}
		app.closers = append(app.closers, conn)
		kv, err = localstore.Open(cfg, conn.GetClient())
		if err != nil {
			return nil, err
		}
	} else {
		kv, err = localstore.Open(cfg, nil)
		if err != nil {
			return nil, err
		}
	}

	client := apiclient.NewFromConfig(cfg, log)
	app.Controller = storefront.NewController(kv, client, client, log)
	app.Catalog = client

	if err := app.Controller.Restore(ctx); err != nil {
		return nil, err
	}
	return app, nil
}

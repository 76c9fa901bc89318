// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/product"
	"github.com/your-org/storefront/internal/domain/user"
	"github.com/your-org/storefront/internal/domain/wishlist"
	"github.com/your-org/storefront/internal/infrastructure/database/memory"
	"github.com/your-org/storefront/internal/infrastructure/database/postgres"
	"github.com/your-org/storefront/internal/infrastructure/database/redis"
	"github.com/your-org/storefront/internal/interfaces/http"
	"github.com/your-org/storefront/internal/interfaces/http/routes"
	"github.com/your-org/storefront/internal/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	log := logger.New(cfg.Logging)
	log.WithFields(logrus.Fields{
		"version":     cfg.App.Version,
		"environment": cfg.App.Environment,
		"db_driver":   cfg.Database.Driver,
	}).Infof("🚀 Starting %s", cfg.App.Name)

	ctx := context.Background()

	// Repositories
	var (
		users     user.Repository
		carts     cart.Repository
		wishlists wishlist.Repository
		catalog   product.Repository
		checks    = map[string]http.HealthChecker{}
	)

	switch cfg.Database.Driver {
	case "memory":
		memCatalog := memory.NewCatalogRepository()
		if err := memCatalog.Seed(ctx, product.SeedCategories(), product.SeedProducts(time.Now().UTC())); err != nil {
			log.Fatalf("Failed to seed catalog: %v", err)
		}
		users = memory.NewUserRepository()
		carts = memory.NewCartRepository()
		wishlists = memory.NewWishlistRepository()
		catalog = memCatalog
		log.Warn("Using in-memory storage; all data is lost on exit")

	default:
		db, err := postgres.NewConnection(cfg, log)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		if err := db.Health(ctx); err != nil {
			log.Fatalf("Database health check failed: %v", err)
		}

		migration := postgres.NewMigration(db.GetDB(), log)
		if err := migration.RunAutoMigrations(); err != nil {
			log.Fatalf("Database migration failed: %v", err)
		}
		if err := migration.CreateIndexes(); err != nil {
			log.WithError(err).Warn("Index creation failed")
		}
		if cfg.Database.Seed {
			if err := migration.SeedInitialData(ctx); err != nil {
				log.WithError(err).Warn("Data seeding failed")
			}
			if err := migration.GetTableInfo(); err != nil {
				log.WithError(err).Warn("Failed to read table info")
			}
		}

		gdb := db.GetDB()
		users = user.NewGormRepository(gdb)
		carts = cart.NewGormRepository(gdb)
		wishlists = wishlist.NewGormRepository(gdb)
		catalog = product.NewGormRepository(gdb)
		checks["database"] = db
	}

	// Redis only backs rate limiting; without it each instance limits alone
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = redis.NewConnection(cfg, log)
		if err != nil {
			log.WithError(err).Warn("Redis unavailable, rate limiting per instance")
		} else {
			defer redisClient.Close()
			checks["redis"] = redisClient
		}
	}

	deps := routes.Dependencies{
		Users:     user.NewService(users, cfg, log),
		Carts:     cart.NewService(carts, log),
		Wishlists: wishlist.NewService(wishlists, log),
		Catalog:   product.NewService(catalog),
		Log:       log,
	}

	if cfg.Database.Driver == "memory" && cfg.Database.Seed {
		seedDemoAccount(ctx, deps.Users, log)
	}

	var server *http.Server
	if redisClient != nil {
		server = http.NewServer(cfg, deps, redisClient.GetClient(), log)
	} else {
		server = http.NewServer(cfg, deps, nil, log)
	}
	for name, check := range checks {
		server.AddHealthCheck(name, check)
	}

	log.Info("✅ All systems operational!")

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("👋 Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(shutdownCtx); err != nil {
		log.WithError(err).Error("Failed to shutdown HTTP server gracefully")
	}

	log.Info("✅ Server shutdown completed")
}

func seedDemoAccount(ctx context.Context, users *user.Service, log logrus.FieldLogger) {
	_, err := users.Register(ctx, &user.RegisterRequest{
		Name:     "Demo Shopper",
		Email:    postgres.DemoEmail,
		Password: postgres.DemoPassword,
	})
	if err != nil && !errors.Is(err, user.ErrDuplicateAccount) {
		log.WithError(err).Warn("Failed to seed demo user")
		return
	}
	log.WithField("email", postgres.DemoEmail).Info("✅ Created demo user")
}

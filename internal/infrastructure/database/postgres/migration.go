// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/product"
	"github.com/your-org/storefront/internal/domain/user"
	"github.com/your-org/storefront/internal/domain/wishlist"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Demo account created by SeedInitialData
const (
	DemoEmail    = "demo@example.com"
	DemoPassword = "demo123"
)

// Migration handles database migrations
type Migration struct {
	db  *gorm.DB
	log logrus.FieldLogger
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB, log logrus.FieldLogger) *Migration {
	return &Migration{
		db:  db,
		log: log,
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	m.log.Info("🔄 Running database auto-migrations...")

	models := []interface{}{
		&user.User{},
		&product.Category{},
		&product.Product{},
		&cart.Cart{},
		&wishlist.Wishlist{},
	}

	for _, model := range models {
		m.log.Debugf("Migrating model: %T", model)
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	m.log.Info("✅ Database auto-migrations completed successfully")
	return nil
}

// CreateIndexes creates additional indexes for better performance
func (m *Migration) CreateIndexes() error {
	indexes := []string{
		// Product indexes
		"CREATE INDEX IF NOT EXISTS idx_products_price ON products(price)",
		"CREATE INDEX IF NOT EXISTS idx_products_rating ON products(rating DESC)",
		"CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at DESC)",

		// Category indexes
		"CREATE INDEX IF NOT EXISTS idx_categories_featured_name ON categories(featured DESC, name)",

		// Collection documents
		"CREATE INDEX IF NOT EXISTS idx_carts_updated_at ON carts(updated_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_carts_items ON carts USING GIN (items jsonb_path_ops)",
		"CREATE INDEX IF NOT EXISTS idx_wishlists_items ON wishlists USING GIN (items jsonb_path_ops)",
	}

	failCount := 0
	for _, indexSQL := range indexes {
		if err := m.db.Exec(indexSQL).Error; err != nil {
			m.log.WithError(err).Warn("⚠️ Failed to create index")
			failCount++
		}
	}

	m.log.Infof("✅ Created %d indexes successfully (%d failed)", len(indexes)-failCount, failCount)
	return nil
}

// SeedInitialData inserts the starter catalog and a demo account
func (m *Migration) SeedInitialData(ctx context.Context) error {
	m.log.Info("🌱 Seeding initial data...")

	catalog := product.NewGormRepository(m.db)
	if err := catalog.Seed(ctx, product.SeedCategories(), product.SeedProducts(time.Now().UTC())); err != nil {
		return err
	}

	if err := m.seedDemoUser(ctx); err != nil {
		return fmt.Errorf("failed to seed demo user: %w", err)
	}

	m.log.Info("✅ Initial data seeded successfully")
	return nil
}

func (m *Migration) seedDemoUser(ctx context.Context) error {
	users := user.NewGormRepository(m.db)

	_, err := users.FindByEmail(ctx, DemoEmail)
	if err == nil {
		m.log.Debug("⏭️ Demo user already exists")
		return nil
	}
	if !errors.Is(err, user.ErrNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	demo := &user.User{Name: "Demo Shopper", Email: DemoEmail, Password: string(hashed)}
	if err := users.Create(ctx, demo); err != nil && !errors.Is(err, user.ErrDuplicateAccount) {
		return err
	}

	m.log.WithField("email", DemoEmail).Info("✅ Created demo user")
	return nil
}

// GetTableInfo logs row counts for the application's tables
func (m *Migration) GetTableInfo() error {
	var tables []string
	if err := m.db.Raw("SELECT tablename FROM pg_tables WHERE schemaname = 'public' ORDER BY tablename").Scan(&tables).Error; err != nil {
		return err
	}

	totalRecords := int64(0)
	for _, table := range tables {
		var count int64
		m.db.Table(table).Count(&count)
		totalRecords += count
		m.log.WithFields(logrus.Fields{"table": table, "records": count}).Debug("📊 table")
	}

	m.log.WithFields(logrus.Fields{
		"tables":  len(tables),
		"records": totalRecords,
	}).Info("📈 Database tables information")

	return nil
}

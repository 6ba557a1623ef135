// Package store implements the per-session tenant state container: catalog,
// orders, coupons and customers in a session-scoped in-memory database, plus
// cart, customer session and white-label settings held directly on the
// session object. Nothing survives the session.
package store

import (
	"context"
	"fmt"
	"sync"

	"nexshop/internal/model"
	"nexshop/internal/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store owns all tenant state for the lifetime of one session. Every mutation
// happens under one mutex; consumers receive copies or snapshot rows, never
// interior references.
type Store struct {
	tenant string
	db     *gorm.DB

	mu  sync.Mutex
	seq int

	cart           []model.CartItem
	cartDiscount   int // percentage
	cartCouponCode string

	customerSession   model.CustomerSession
	pendingOAuthState string

	branding     model.TenantBranding
	themeTokens  model.TenantTheme
	productCard  model.ProductCardStyle
	copyText     model.TenantCopy
	domains      model.TenantDomains
	settings     model.StoreSettings
	subscription model.Subscription

	categories repository.CategoryRepository
	products   repository.ProductRepository
	orders     repository.OrderRepository
	coupons    repository.CouponRepository
	customers  repository.CustomerRepository
}

// New opens a fresh in-memory database for one tenant session, migrates the
// schema and loads the seed data.
func New(tenant string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("session db handle: %w", err)
	}
	// An in-memory SQLite database exists per connection; a second pooled
	// connection would see an empty database.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&model.Category{},
		&model.Product{},
		&model.ProductVariant{},
		&model.Order{},
		&model.OrderItem{},
		&model.Coupon{},
		&model.Customer{},
	); err != nil {
		return nil, fmt.Errorf("migrate session db: %w", err)
	}

	s := &Store{
		tenant:       tenant,
		db:           db,
		seq:          seedIDCounter,
		branding:     defaultBranding,
		themeTokens:  defaultTheme,
		productCard:  defaultProductCard,
		copyText:     defaultCopy,
		domains:      model.TenantDomains{Subdomain: tenant},
		settings:     defaultSettings,
		subscription: seedSubscription(),

		categories: repository.NewCategoryRepository(db),
		products:   repository.NewProductRepository(db),
		orders:     repository.NewOrderRepository(db),
		coupons:    repository.NewCouponRepository(db),
		customers:  repository.NewCustomerRepository(db),
	}

	if err := s.seed(context.Background()); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("seed session db: %w", err)
	}

	return s, nil
}

func (s *Store) Tenant() string {
	return s.tenant
}

// Close releases the session's database. The in-memory state is gone after
// this returns.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// nextIDLocked hands out ids from the single session counter shared across
// categories, products, variants and orders.
func (s *Store) nextIDLocked(prefix string) string {
	s.seq++
	return fmt.Sprintf("%s-%d", prefix, s.seq)
}

func (s *Store) nextOrderIDLocked() string {
	s.seq++
	return fmt.Sprintf("ORD-%03d", s.seq)
}

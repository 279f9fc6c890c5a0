package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/moriwell/storefront/internal/domain/model"
	"github.com/moriwell/storefront/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool the storage relies on. Declared as an
// interface so tests can substitute a pgxmock pool.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type orderRepository struct {
	storage *Storage
}

type catalogRepository struct {
	storage *Storage
}

type storeRepository struct {
	storage *Storage
}

type wishlistRepository struct {
	storage *Storage
}

type userRepository struct {
	storage *Storage
}

type reviewRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Catalog() repository.CatalogRepository {
	return &catalogRepository{storage: s}
}

func (s *Storage) Store() repository.StoreRepository {
	return &storeRepository{storage: s}
}

func (s *Storage) Wishlists() repository.WishlistRepository {
	return &wishlistRepository{storage: s}
}

func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Reviews() repository.ReviewRepository {
	return &reviewRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id BIGSERIAL PRIMARY KEY,
            email TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL DEFAULT '',
            phone TEXT,
            image TEXT,
            first_name TEXT,
            last_name TEXT,
            gender TEXT,
            address TEXT,
            country TEXT,
            city TEXT,
            zip_code TEXT,
            status SMALLINT NOT NULL DEFAULT 1,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS products (
            id BIGSERIAL PRIMARY KEY,
            sku TEXT UNIQUE NOT NULL,
            name TEXT NOT NULL,
            image TEXT,
            price NUMERIC(18,4) NOT NULL DEFAULT 0,
            total_order INTEGER NOT NULL DEFAULT 0,
            total_rating INTEGER NOT NULL DEFAULT 0,
            details TEXT NOT NULL DEFAULT '',
            description TEXT NOT NULL DEFAULT '',
            status SMALLINT NOT NULL DEFAULT 1,
            published_date TIMESTAMPTZ,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS product_images (
            id BIGSERIAL PRIMARY KEY,
            product_id BIGINT NOT NULL REFERENCES products(id),
            path TEXT NOT NULL,
            sort INTEGER NOT NULL DEFAULT 0
        )`,
		`CREATE TABLE IF NOT EXISTS sizes (
            id BIGSERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            status SMALLINT NOT NULL DEFAULT 1
        )`,
		`CREATE TABLE IF NOT EXISTS colours (
            id BIGSERIAL PRIMARY KEY,
            code TEXT NOT NULL,
            name TEXT NOT NULL,
            status SMALLINT NOT NULL DEFAULT 1
        )`,
		`CREATE TABLE IF NOT EXISTS product_inventories (
            id BIGSERIAL PRIMARY KEY,
            product_id BIGINT NOT NULL REFERENCES products(id),
            size_id BIGINT NOT NULL REFERENCES sizes(id),
            colour_id BIGINT NOT NULL REFERENCES colours(id),
            stock INTEGER NOT NULL DEFAULT 0,
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            UNIQUE (product_id, size_id, colour_id)
        )`,
		`CREATE TABLE IF NOT EXISTS payments (
            id BIGSERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            description TEXT,
            status SMALLINT NOT NULL DEFAULT 1
        )`,
		`CREATE TABLE IF NOT EXISTS settings (
            id BIGSERIAL PRIMARY KEY,
            key_name TEXT UNIQUE NOT NULL,
            key_value TEXT NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id BIGSERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            payment_id BIGINT REFERENCES payments(id),
            invoice_number TEXT NOT NULL,
            total_item INTEGER NOT NULL DEFAULT 0,
            subtotal NUMERIC(18,4) NOT NULL DEFAULT 0,
            total_discount NUMERIC(18,4) NOT NULL DEFAULT 0,
            total_taxes NUMERIC(18,4) NOT NULL DEFAULT 0,
            total_shipment NUMERIC(18,4) NOT NULL DEFAULT 0,
            total_paid NUMERIC(18,4) NOT NULL DEFAULT 0,
            status SMALLINT NOT NULL DEFAULT 0,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS order_details (
            id BIGSERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL REFERENCES orders(id),
            inventory_id BIGINT NOT NULL REFERENCES product_inventories(id),
            price NUMERIC(18,4) NOT NULL DEFAULT 0,
            qty INTEGER NOT NULL DEFAULT 0,
            total NUMERIC(18,4) NOT NULL DEFAULT 0,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            UNIQUE (order_id, inventory_id)
        )`,
		`CREATE TABLE IF NOT EXISTS order_billings (
            id BIGSERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL REFERENCES orders(id),
            name TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT ''
        )`,
		`CREATE TABLE IF NOT EXISTS wishlists (
            user_id BIGINT NOT NULL REFERENCES users(id),
            product_id BIGINT NOT NULL REFERENCES products(id),
            PRIMARY KEY (user_id, product_id)
        )`,
		`CREATE TABLE IF NOT EXISTS product_reviews (
            id BIGSERIAL PRIMARY KEY,
            product_id BIGINT NOT NULL REFERENCES products(id),
            user_id BIGINT NOT NULL REFERENCES users(id),
            rating INTEGER NOT NULL DEFAULT 0,
            review TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS activities (
            id BIGSERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            subject TEXT NOT NULL,
            event TEXT NOT NULL,
            description TEXT,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_orders_user_draft ON orders(user_id) WHERE status = 0`,
		`CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id, id DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_order_details_order ON order_details(order_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}

func (s *Storage) recordActivityTx(ctx context.Context, tx pgx.Tx, act model.Activity) error {
	const query = `INSERT INTO activities (user_id, subject, event, description) VALUES ($1, $2, $3, $4)`
	if _, err := tx.Exec(ctx, query, act.UserID, act.Subject, act.Event, act.Description); err != nil {
		return fmt.Errorf("record activity: %w", err)
	}
	return nil
}

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func parseDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Decimal{}, nil
	}
	return decimal.NewFromString(s)
}

package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate creates the schema on startup. Every statement is idempotent, so
// running it against an already-migrated database is a no-op.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS orders (
			id TEXT PRIMARY KEY,
			customer_id TEXT NOT NULL,
			customer_name TEXT NOT NULL,
			mobile_number TEXT NOT NULL,
			address TEXT NOT NULL,
			delivery_mode TEXT NOT NULL,
			payment_mode TEXT NOT NULL,
			items JSONB NOT NULL,
			total_amount INT NOT NULL,
			order_date TIMESTAMPTZ NOT NULL,
			status TEXT NOT NULL,
			payment_received BOOLEAN NOT NULL DEFAULT FALSE,
			order_prepared BOOLEAN NOT NULL DEFAULT FALSE,
			dispatched BOOLEAN NOT NULL DEFAULT FALSE,
			delivered BOOLEAN NOT NULL DEFAULT FALSE
		);`,
		`CREATE INDEX IF NOT EXISTS idx_orders_order_date ON orders (order_date DESC);`,
		`CREATE TABLE IF NOT EXISTS order_sequences (
			day_key TEXT PRIMARY KEY,
			seq INT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS customers (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			mobile_number TEXT NOT NULL,
			address TEXT NOT NULL,
			region TEXT NOT NULL,
			first_order_date TIMESTAMPTZ NOT NULL,
			total_orders INT NOT NULL DEFAULT 0,
			last_order_date TIMESTAMPTZ NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS menu_items (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			price_250g INT NOT NULL,
			price_500g INT NOT NULL,
			price_1000g INT NOT NULL,
			is_available BOOLEAN NOT NULL DEFAULT TRUE
		);`,
		`CREATE TABLE IF NOT EXISTS daily_analytics (
			id TEXT PRIMARY KEY,
			date TIMESTAMPTZ NOT NULL,
			total_orders INT NOT NULL,
			total_revenue INT NOT NULL,
			average_order_value INT NOT NULL,
			top_selling_item TEXT NOT NULL,
			top_selling_item_quantity INT NOT NULL,
			pending_orders INT NOT NULL,
			completed_orders INT NOT NULL,
			cancelled_orders INT NOT NULL,
			new_customers INT NOT NULL,
			returning_customers INT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_daily_analytics_date ON daily_analytics (date);`,
	}

	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

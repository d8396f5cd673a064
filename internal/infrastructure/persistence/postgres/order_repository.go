package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/houseoffoodsin/HOFBusiness/internal/domain/order"
)

const orderColumns = `id, customer_id, customer_name, mobile_number, address,
	delivery_mode, payment_mode, items, total_amount, order_date, status,
	payment_received, order_prepared, dispatched, delivered`

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

func (r *OrderRepository) Save(ctx context.Context, order *domain.Order) error {
	if order == nil {
		return fmt.Errorf("order is nil")
	}

	// pgx encodes []byte as bytea, so the JSONB payload travels as text.
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}
	itemsJSON := string(items)

	const query = `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (id) DO UPDATE
		SET customer_id = EXCLUDED.customer_id,
			customer_name = EXCLUDED.customer_name,
			mobile_number = EXCLUDED.mobile_number,
			address = EXCLUDED.address,
			delivery_mode = EXCLUDED.delivery_mode,
			payment_mode = EXCLUDED.payment_mode,
			items = EXCLUDED.items,
			total_amount = EXCLUDED.total_amount,
			order_date = EXCLUDED.order_date,
			status = EXCLUDED.status,
			payment_received = EXCLUDED.payment_received,
			order_prepared = EXCLUDED.order_prepared,
			dispatched = EXCLUDED.dispatched,
			delivered = EXCLUDED.delivered;
	`

	_, err = r.pool.Exec(ctx, query,
		order.ID,
		order.CustomerID,
		order.CustomerName,
		order.MobileNumber,
		order.Address,
		string(order.DeliveryMode),
		string(order.PaymentMode),
		itemsJSON,
		order.TotalAmount,
		order.OrderDate,
		string(order.Status),
		order.PaymentReceived,
		order.OrderPrepared,
		order.Dispatched,
		order.Delivered,
	)
	return err
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE id = $1;`

	o, err := scanOrder(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *OrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders ORDER BY order_date DESC;`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectOrders(rows)
}

func (r *OrderRepository) ListRange(ctx context.Context, start, end time.Time) ([]domain.Order, error) {
	const query = `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE order_date >= $1 AND order_date < $2
		ORDER BY order_date DESC;
	`

	rows, err := r.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectOrders(rows)
}

func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM orders WHERE id = $1;`, id)
	return err
}

// NextDailySequence bumps the per-day counter in a single statement. The
// upsert makes the read-modify-write atomic, so two concurrent submissions on
// the same day can never observe the same sequence number.
func (r *OrderRepository) NextDailySequence(ctx context.Context, dayKey string) (int, error) {
	const query = `
		INSERT INTO order_sequences (day_key, seq)
		VALUES ($1, 1)
		ON CONFLICT (day_key) DO UPDATE
		SET seq = order_sequences.seq + 1
		RETURNING seq;
	`

	var seq int
	if err := r.pool.QueryRow(ctx, query, dayKey).Scan(&seq); err != nil {
		return 0, err
	}
	return seq, nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var (
		o     domain.Order
		items []byte
	)
	err := row.Scan(
		&o.ID,
		&o.CustomerID,
		&o.CustomerName,
		&o.MobileNumber,
		&o.Address,
		&o.DeliveryMode,
		&o.PaymentMode,
		&items,
		&o.TotalAmount,
		&o.OrderDate,
		&o.Status,
		&o.PaymentReceived,
		&o.OrderPrepared,
		&o.Dispatched,
		&o.Delivered,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, fmt.Errorf("unmarshal items for order %s: %w", o.ID, err)
	}
	return &o, nil
}

func collectOrders(rows pgx.Rows) ([]domain.Order, error) {
	orders := make([]domain.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	return orders, rows.Err()
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/houseoffoodsin/HOFBusiness/internal/domain/analytics"
)

const dailyColumns = `id, date, total_orders, total_revenue, average_order_value,
	top_selling_item, top_selling_item_quantity, pending_orders,
	completed_orders, cancelled_orders, new_customers, returning_customers`

type AnalyticsRepository struct {
	pool *pgxpool.Pool
}

func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepository {
	return &AnalyticsRepository{pool: pool}
}

func (r *AnalyticsRepository) SaveDaily(ctx context.Context, d *domain.DailyAnalytics) error {
	if d == nil {
		return fmt.Errorf("daily analytics is nil")
	}

	const query = `
		INSERT INTO daily_analytics (` + dailyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE
		SET date = EXCLUDED.date,
			total_orders = EXCLUDED.total_orders,
			total_revenue = EXCLUDED.total_revenue,
			average_order_value = EXCLUDED.average_order_value,
			top_selling_item = EXCLUDED.top_selling_item,
			top_selling_item_quantity = EXCLUDED.top_selling_item_quantity,
			pending_orders = EXCLUDED.pending_orders,
			completed_orders = EXCLUDED.completed_orders,
			cancelled_orders = EXCLUDED.cancelled_orders,
			new_customers = EXCLUDED.new_customers,
			returning_customers = EXCLUDED.returning_customers;
	`

	_, err := r.pool.Exec(ctx, query,
		d.ID,
		d.Date,
		d.TotalOrders,
		d.TotalRevenue,
		d.AverageOrderValue,
		d.TopSellingItem,
		d.TopSellingItemQuantity,
		d.PendingOrders,
		d.CompletedOrders,
		d.CancelledOrders,
		d.NewCustomers,
		d.ReturningCustomers,
	)
	return err
}

func (r *AnalyticsRepository) FindDaily(ctx context.Context, id string) (*domain.DailyAnalytics, error) {
	const query = `SELECT ` + dailyColumns + ` FROM daily_analytics WHERE id = $1;`

	d, err := scanDaily(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *AnalyticsRepository) ListDailyRange(ctx context.Context, start, end time.Time) ([]domain.DailyAnalytics, error) {
	const query = `
		SELECT ` + dailyColumns + `
		FROM daily_analytics
		WHERE date >= $1 AND date < $2
		ORDER BY date;
	`

	rows, err := r.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]domain.DailyAnalytics, 0)
	for rows.Next() {
		d, err := scanDaily(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *d)
	}
	return records, rows.Err()
}

func scanDaily(row pgx.Row) (*domain.DailyAnalytics, error) {
	var d domain.DailyAnalytics
	err := row.Scan(
		&d.ID,
		&d.Date,
		&d.TotalOrders,
		&d.TotalRevenue,
		&d.AverageOrderValue,
		&d.TopSellingItem,
		&d.TopSellingItemQuantity,
		&d.PendingOrders,
		&d.CompletedOrders,
		&d.CancelledOrders,
		&d.NewCustomers,
		&d.ReturningCustomers,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

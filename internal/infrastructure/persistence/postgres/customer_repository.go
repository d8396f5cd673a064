package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/houseoffoodsin/HOFBusiness/internal/domain/customer"
)

type CustomerRepository struct {
	pool *pgxpool.Pool
}

func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{pool: pool}
}

func (r *CustomerRepository) Upsert(ctx context.Context, c *domain.Customer) error {
	if c == nil {
		return fmt.Errorf("customer is nil")
	}

	const query = `
		INSERT INTO customers (id, name, mobile_number, address, region,
			first_order_date, total_orders, last_order_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
			mobile_number = EXCLUDED.mobile_number,
			address = EXCLUDED.address,
			region = EXCLUDED.region,
			last_order_date = EXCLUDED.last_order_date;
	`

	_, err := r.pool.Exec(ctx, query,
		c.ID,
		c.Name,
		c.MobileNumber,
		c.Address,
		c.Region,
		c.FirstOrderDate,
		c.TotalOrders,
		c.LastOrderDate,
	)
	return err
}

func (r *CustomerRepository) FindByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	const query = `
		SELECT id, name, mobile_number, address, region,
			first_order_date, total_orders, last_order_date
		FROM customers
		WHERE mobile_number = $1;
	`

	var c domain.Customer
	err := r.pool.QueryRow(ctx, query, phone).Scan(
		&c.ID,
		&c.Name,
		&c.MobileNumber,
		&c.Address,
		&c.Region,
		&c.FirstOrderDate,
		&c.TotalOrders,
		&c.LastOrderDate,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	const query = `
		SELECT id, name, mobile_number, address, region,
			first_order_date, total_orders, last_order_date
		FROM customers
		ORDER BY last_order_date DESC;
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]domain.Customer, 0)
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(
			&c.ID, &c.Name, &c.MobileNumber, &c.Address, &c.Region,
			&c.FirstOrderDate, &c.TotalOrders, &c.LastOrderDate,
		); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *CustomerRepository) RecordOrder(ctx context.Context, phone string, at time.Time) error {
	const query = `
		UPDATE customers
		SET total_orders = total_orders + 1,
			last_order_date = $2
		WHERE mobile_number = $1;
	`

	tag, err := r.pool.Exec(ctx, query, phone, at)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("customer %s not found", phone)
	}
	return nil
}

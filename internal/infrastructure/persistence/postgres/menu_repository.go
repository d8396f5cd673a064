package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/houseoffoodsin/HOFBusiness/internal/domain/menu"
)

type MenuRepository struct {
	pool *pgxpool.Pool
}

func NewMenuRepository(pool *pgxpool.Pool) *MenuRepository {
	return &MenuRepository{pool: pool}
}

func (r *MenuRepository) List(ctx context.Context) ([]domain.MenuItem, error) {
	const query = `
		SELECT id, name, price_250g, price_500g, price_1000g, is_available
		FROM menu_items
		ORDER BY id::int;
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.MenuItem, 0)
	for rows.Next() {
		var m domain.MenuItem
		if err := rows.Scan(&m.ID, &m.Name, &m.Price250g, &m.Price500g, &m.Price1000g, &m.IsAvailable); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

func (r *MenuRepository) FindByID(ctx context.Context, id string) (*domain.MenuItem, error) {
	const query = `
		SELECT id, name, price_250g, price_500g, price_1000g, is_available
		FROM menu_items
		WHERE id = $1;
	`

	var m domain.MenuItem
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.Name, &m.Price250g, &m.Price500g, &m.Price1000g, &m.IsAvailable,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Seed inserts catalog entries that are not present yet. Prices of existing
// rows are never overwritten; edits made through the database survive
// restarts.
func (r *MenuRepository) Seed(ctx context.Context, items []domain.MenuItem) error {
	const query = `
		INSERT INTO menu_items (id, name, price_250g, price_500g, price_1000g, is_available)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING;
	`

	for _, m := range items {
		if _, err := r.pool.Exec(ctx, query,
			m.ID, m.Name, m.Price250g, m.Price500g, m.Price1000g, m.IsAvailable,
		); err != nil {
			return err
		}
	}
	return nil
}

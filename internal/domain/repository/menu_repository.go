package repository

import (
	"context"

	"github.com/houseoffoodsin/HOFBusiness/internal/domain/menu"
)

type MenuRepository interface {
	List(ctx context.Context) ([]menu.MenuItem, error)
	FindByID(ctx context.Context, id string) (*menu.MenuItem, error)
	// Seed inserts catalog entries that do not exist yet; existing rows are
	// left untouched.
	Seed(ctx context.Context, items []menu.MenuItem) error
}

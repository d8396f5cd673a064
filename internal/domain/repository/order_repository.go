package repository

import (
	"context"
	"time"

	"github.com/houseoffoodsin/HOFBusiness/internal/domain/order"
)

type OrderRepository interface {
	Save(ctx context.Context, o *order.Order) error
	FindByID(ctx context.Context, id string) (*order.Order, error)
	// List returns every order, newest first.
	List(ctx context.Context) ([]order.Order, error)
	// ListRange returns orders with orderDate in [start, end), newest first.
	// A zero start means "from the beginning".
	ListRange(ctx context.Context, start, end time.Time) ([]order.Order, error)
	Delete(ctx context.Context, id string) error
	// NextDailySequence atomically increments and returns the per-day order
	// counter for the given calendar-day key. Any failure must propagate: a
	// duplicate order code is worse than a failed submission.
	NextDailySequence(ctx context.Context, dayKey string) (int, error)
}

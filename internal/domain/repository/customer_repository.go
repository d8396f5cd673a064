package repository

import (
	"context"
	"time"

	"github.com/houseoffoodsin/HOFBusiness/internal/domain/customer"
)

type CustomerRepository interface {
	Upsert(ctx context.Context, c *customer.Customer) error
	FindByPhone(ctx context.Context, phone string) (*customer.Customer, error)
	List(ctx context.Context) ([]customer.Customer, error)
	// RecordOrder transactionally bumps totalOrders and lastOrderDate for the
	// customer keyed by phone.
	RecordOrder(ctx context.Context, phone string, at time.Time) error
}

package order

import (
	"strings"
	"time"
)

// Filter is a predicate conjunction over an order list. Every predicate whose
// parameter is absent matches all orders.
type Filter struct {
	// Query matches as a case-insensitive substring of the order id, the
	// customer name, or the mobile number.
	Query string
	// Status matches by exact equality.
	Status *Status
	// StartDate and EndDate bound orderDate inclusively.
	StartDate *time.Time
	EndDate   *time.Time
}

// Apply returns the orders matching the filter, preserving the input's
// relative order. The input slice is never mutated.
func (f Filter) Apply(orders []Order) []Order {
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		if f.matches(o) {
			out = append(out, o)
		}
	}
	return out
}

func (f Filter) matches(o Order) bool {
	if q := strings.TrimSpace(f.Query); q != "" {
		lower := strings.ToLower(q)
		if !strings.Contains(strings.ToLower(o.ID), lower) &&
			!strings.Contains(strings.ToLower(o.CustomerName), lower) &&
			!strings.Contains(strings.ToLower(o.MobileNumber), lower) {
			return false
		}
	}

	if f.StartDate != nil && o.OrderDate.Before(*f.StartDate) {
		return false
	}
	if f.EndDate != nil && o.OrderDate.After(*f.EndDate) {
		return false
	}

	if f.Status != nil && o.Status != *f.Status {
		return false
	}

	return true
}

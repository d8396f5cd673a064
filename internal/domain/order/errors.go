package order

import "errors"

var (
	ErrMissingCustomerName = errors.New("customer name is required")
	ErrMissingMobileNumber = errors.New("mobile number is required")
	ErrMissingAddress      = errors.New("address is required")
	ErrNoItems             = errors.New("order must have at least one item")
	ErrInvalidQuantity     = errors.New("quantity must be greater than zero")
	ErrInvalidPrice        = errors.New("unit price must be greater than zero")
	ErrTotalMismatch       = errors.New("total amount does not match the sum of item totals")
	ErrUnknownMilestone    = errors.New("unknown milestone field")
	ErrOrderClosed         = errors.New("order is cancelled or completed")
	ErrNotFound            = errors.New("order not found")
)

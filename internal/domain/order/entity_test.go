package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderItem(t *testing.T) {
	item, err := NewOrderItem("3", "Nuvvu Laddu", "500g", 2, 300)

	require.NoError(t, err)
	assert.Equal(t, 600, item.TotalPrice)
}

func TestNewOrderItem_Invalid(t *testing.T) {
	_, err := NewOrderItem("3", "Nuvvu Laddu", "500g", 0, 300)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = NewOrderItem("6", "Bobbatlu", "250g", 1, 0)
	assert.ErrorIs(t, err, ErrInvalidPrice)
}

func TestOrderValidate(t *testing.T) {
	valid := Order{
		CustomerName: "Lakshmi",
		MobileNumber: "9876543210",
		Address:      "12 MG Road, Madhapur, Hyderabad",
		Items: []OrderItem{
			{MenuItemName: "Mixture", Size: "500g", Quantity: 1, UnitPrice: 300, TotalPrice: 300},
		},
		TotalAmount: 300,
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name    string
		mutate  func(o *Order)
		wantErr error
	}{
		{"missing name", func(o *Order) { o.CustomerName = "" }, ErrMissingCustomerName},
		{"missing mobile", func(o *Order) { o.MobileNumber = "" }, ErrMissingMobileNumber},
		{"missing address", func(o *Order) { o.Address = "" }, ErrMissingAddress},
		{"no items", func(o *Order) { o.Items = nil }, ErrNoItems},
		{"total mismatch", func(o *Order) { o.TotalAmount = 299 }, ErrTotalMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := valid
			o.Items = append([]OrderItem(nil), valid.Items...)
			tt.mutate(&o)
			assert.ErrorIs(t, o.Validate(), tt.wantErr)
		})
	}
}

func TestRecomputeTotal(t *testing.T) {
	o := Order{
		Items: []OrderItem{
			{TotalPrice: 200},
			{TotalPrice: 150},
		},
	}

	o.RecomputeTotal()

	assert.Equal(t, 350, o.TotalAmount)
}

package order

import "time"

type DeliveryMode string

const (
	DeliveryPickup       DeliveryMode = "PICKUP"
	DeliveryDelivery     DeliveryMode = "DELIVERY"
	DeliveryBikeTaxi     DeliveryMode = "BIKE_TAXI"
	DeliverySelfDelivery DeliveryMode = "SELF_DELIVERY"
)

type PaymentMode string

const (
	PaymentCash  PaymentMode = "CASH"
	PaymentUPI   PaymentMode = "UPI"
	PaymentOther PaymentMode = "OTHER"
)

// OrderItem is a line item. Unit price is snapshotted from the menu catalog
// when the item is added, never re-resolved later.
type OrderItem struct {
	MenuItemID   string `json:"menu_item_id"`
	MenuItemName string `json:"menu_item_name"`
	Size         string `json:"size"`
	Quantity     int    `json:"quantity"`
	UnitPrice    int    `json:"unit_price"`
	TotalPrice   int    `json:"total_price"`
}

// Order is a customer purchase record. Customer fields are a denormalized
// snapshot taken at order time, not a join against the customers collection.
// Amounts are whole rupees.
type Order struct {
	ID              string       `json:"id"`
	CustomerID      string       `json:"customer_id"`
	CustomerName    string       `json:"customer_name"`
	MobileNumber    string       `json:"mobile_number"`
	Address         string       `json:"address"`
	DeliveryMode    DeliveryMode `json:"delivery_mode"`
	PaymentMode     PaymentMode  `json:"payment_mode"`
	Items           []OrderItem  `json:"items"`
	TotalAmount     int          `json:"total_amount"`
	OrderDate       time.Time    `json:"order_date"`
	Status          Status       `json:"status"`
	PaymentReceived bool         `json:"payment_received"`
	OrderPrepared   bool         `json:"order_prepared"`
	Dispatched      bool         `json:"dispatched"`
	Delivered       bool         `json:"delivered"`
}

// NewOrderItem builds a line item with the total derived from the snapshot
// price.
func NewOrderItem(menuItemID, menuItemName, size string, quantity, unitPrice int) (OrderItem, error) {
	if quantity <= 0 {
		return OrderItem{}, ErrInvalidQuantity
	}
	if unitPrice <= 0 {
		return OrderItem{}, ErrInvalidPrice
	}
	return OrderItem{
		MenuItemID:   menuItemID,
		MenuItemName: menuItemName,
		Size:         size,
		Quantity:     quantity,
		UnitPrice:    unitPrice,
		TotalPrice:   unitPrice * quantity,
	}, nil
}

// Validate checks the submission preconditions: required customer fields, at
// least one valid line item, and the total-amount invariant.
func (o *Order) Validate() error {
	if o.CustomerName == "" {
		return ErrMissingCustomerName
	}
	if o.MobileNumber == "" {
		return ErrMissingMobileNumber
	}
	if o.Address == "" {
		return ErrMissingAddress
	}
	if len(o.Items) == 0 {
		return ErrNoItems
	}

	sum := 0
	for _, item := range o.Items {
		if item.Quantity <= 0 {
			return ErrInvalidQuantity
		}
		if item.UnitPrice <= 0 {
			return ErrInvalidPrice
		}
		sum += item.TotalPrice
	}
	if sum != o.TotalAmount {
		return ErrTotalMismatch
	}
	return nil
}

// RecomputeTotal restores the totalAmount invariant after line items change.
func (o *Order) RecomputeTotal() {
	total := 0
	for _, item := range o.Items {
		total += item.TotalPrice
	}
	o.TotalAmount = total
}

package order

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusConfirmed  Status = "CONFIRMED"
	StatusPreparing  Status = "PREPARING"
	StatusReady      Status = "READY"
	StatusDispatched Status = "DISPATCHED"
	StatusDelivered  Status = "DELIVERED"
	StatusCancelled  Status = "CANCELLED"
	StatusCompleted  Status = "COMPLETED"
)

// MilestoneField names one of the four fulfillment flags an operator can set
// independently.
type MilestoneField string

const (
	MilestonePaymentReceived MilestoneField = "PAYMENT_RECEIVED"
	MilestoneOrderPrepared   MilestoneField = "ORDER_PREPARED"
	MilestoneDispatched      MilestoneField = "DISPATCHED"
	MilestoneDelivered       MilestoneField = "DELIVERED"
)

// ParseStatus validates a status string from the wire.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusReady,
		StatusDispatched, StatusDelivered, StatusCancelled, StatusCompleted:
		return Status(s), true
	}
	return "", false
}

// StatusFromMilestones projects the four milestone booleans onto a status.
// The priority order governs: a higher-priority flag wins regardless of the
// state of the lower ones, and clearing a lower flag never demotes an order
// whose higher flag is still set.
func StatusFromMilestones(paymentReceived, orderPrepared, dispatched, delivered bool) Status {
	switch {
	case delivered:
		return StatusDelivered
	case dispatched:
		return StatusDispatched
	case orderPrepared:
		return StatusReady
	case paymentReceived:
		return StatusConfirmed
	default:
		return StatusPending
	}
}

// Closed reports whether the order is in an administrative terminal state.
// Milestone updates are rejected for closed orders.
func (o *Order) Closed() bool {
	return o.Status == StatusCancelled || o.Status == StatusCompleted
}

// SetMilestone sets a single fulfillment flag and reprojects the status.
func (o *Order) SetMilestone(field MilestoneField, value bool) error {
	if o.Closed() {
		return ErrOrderClosed
	}

	switch field {
	case MilestonePaymentReceived:
		o.PaymentReceived = value
	case MilestoneOrderPrepared:
		o.OrderPrepared = value
	case MilestoneDispatched:
		o.Dispatched = value
	case MilestoneDelivered:
		o.Delivered = value
	default:
		return ErrUnknownMilestone
	}

	o.Status = StatusFromMilestones(o.PaymentReceived, o.OrderPrepared, o.Dispatched, o.Delivered)
	return nil
}

// Cancel moves the order into the CANCELLED state. This is an administrative
// transition outside the milestone projection; milestone flags keep their
// values for the record.
func (o *Order) Cancel() error {
	if o.Status == StatusCompleted {
		return ErrOrderClosed
	}
	o.Status = StatusCancelled
	return nil
}

// Complete moves the order into the COMPLETED state. Like Cancel, this is an
// explicit administrative transition.
func (o *Order) Complete() error {
	if o.Status == StatusCancelled {
		return ErrOrderClosed
	}
	o.Status = StatusCompleted
	return nil
}

package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusFromMilestones(t *testing.T) {
	tests := []struct {
		name            string
		paymentReceived bool
		orderPrepared   bool
		dispatched      bool
		delivered       bool
		want            Status
	}{
		{
			name: "no flags set",
			want: StatusPending,
		},
		{
			name:            "payment received only",
			paymentReceived: true,
			want:            StatusConfirmed,
		},
		{
			name:            "prepared wins over payment",
			paymentReceived: true,
			orderPrepared:   true,
			want:            StatusReady,
		},
		{
			name:            "dispatched wins over prepared and payment",
			paymentReceived: true,
			orderPrepared:   true,
			dispatched:      true,
			want:            StatusDispatched,
		},
		{
			name:      "delivered alone is still delivered",
			delivered: true,
			want:      StatusDelivered,
		},
		{
			name:          "dispatched without payment",
			orderPrepared: true,
			dispatched:    true,
			want:          StatusDispatched,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StatusFromMilestones(tt.paymentReceived, tt.orderPrepared, tt.dispatched, tt.delivered)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetMilestone_Reprojects(t *testing.T) {
	o := &Order{Status: StatusPending}

	err := o.SetMilestone(MilestonePaymentReceived, true)
	assert.NoError(t, err)
	assert.Equal(t, StatusConfirmed, o.Status)

	err = o.SetMilestone(MilestoneDelivered, true)
	assert.NoError(t, err)
	assert.Equal(t, StatusDelivered, o.Status)

	// Clearing a lower-priority flag does not demote the order.
	err = o.SetMilestone(MilestonePaymentReceived, false)
	assert.NoError(t, err)
	assert.Equal(t, StatusDelivered, o.Status)
}

func TestSetMilestone_UnknownField(t *testing.T) {
	o := &Order{Status: StatusPending}

	err := o.SetMilestone(MilestoneField("SHIPPED"), true)
	assert.ErrorIs(t, err, ErrUnknownMilestone)
}

func TestSetMilestone_RejectedWhenClosed(t *testing.T) {
	o := &Order{Status: StatusPending}
	assert.NoError(t, o.Cancel())

	err := o.SetMilestone(MilestonePaymentReceived, true)
	assert.ErrorIs(t, err, ErrOrderClosed)
}

func TestCancelAndComplete(t *testing.T) {
	o := &Order{Status: StatusConfirmed}
	assert.NoError(t, o.Cancel())
	assert.Equal(t, StatusCancelled, o.Status)

	// A cancelled order cannot be completed.
	assert.ErrorIs(t, o.Complete(), ErrOrderClosed)

	o2 := &Order{Status: StatusDelivered}
	assert.NoError(t, o2.Complete())
	assert.Equal(t, StatusCompleted, o2.Status)
	assert.ErrorIs(t, o2.Cancel(), ErrOrderClosed)
}

func TestParseStatus(t *testing.T) {
	s, ok := ParseStatus("DISPATCHED")
	assert.True(t, ok)
	assert.Equal(t, StatusDispatched, s)

	_, ok = ParseStatus("SHIPPED")
	assert.False(t, ok)
}

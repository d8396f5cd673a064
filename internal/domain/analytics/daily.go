package analytics

import (
	"fmt"
	"time"

	"github.com/houseoffoodsin/HOFBusiness/internal/domain/order"
)

// DailyAnalytics is a derived, recomputable per-date rollup. It is never
// edited by hand: recomputing it for the same day and orders overwrites the
// same document id with identical content.
type DailyAnalytics struct {
	ID                     string    `json:"id"`
	Date                   time.Time `json:"date"`
	TotalOrders            int       `json:"total_orders"`
	TotalRevenue           int       `json:"total_revenue"`
	AverageOrderValue      int       `json:"average_order_value"`
	TopSellingItem         string    `json:"top_selling_item"`
	TopSellingItemQuantity int       `json:"top_selling_item_quantity"`
	PendingOrders          int       `json:"pending_orders"`
	CompletedOrders        int       `json:"completed_orders"`
	CancelledOrders        int       `json:"cancelled_orders"`
	NewCustomers           int       `json:"new_customers"`
	ReturningCustomers     int       `json:"returning_customers"`
}

// DailyID derives the analytics document id for a calendar day.
func DailyID(date time.Time, loc *time.Location) string {
	return "daily-" + order.DayKey(date, loc)
}

// DateFromDailyID recovers the calendar day encoded in an analytics document
// id. A malformed id falls back to now, a deliberately lossy last resort, so
// a corrupt document still renders somewhere rather than nowhere.
func DateFromDailyID(id string, loc *time.Location, now time.Time) time.Time {
	const prefix = "daily-"
	if len(id) > len(prefix) && id[:len(prefix)] == prefix {
		if d, err := time.ParseInLocation(order.DayKeyLayout, id[len(prefix):], loc); err == nil {
			return d
		}
	}
	return now
}

// BuildDaily folds the orders of one calendar day into a DailyAnalytics
// record. The input may contain history from earlier days; orders are
// assigned to the target day by formatted calendar-day equality in loc, and
// the earlier orders feed the new-vs-returning customer split. Pure function:
// same input, byte-identical output.
func BuildDaily(orders []order.Order, date time.Time, loc *time.Location) DailyAnalytics {
	dayKey := order.DayKey(date, loc)
	// The stored date is the day start, never the triggering timestamp, so
	// recomputes fired at different times of day persist identical rows.
	dayStart, _ := order.DayBounds(date, loc)
	out := DailyAnalytics{
		ID:   "daily-" + dayKey,
		Date: dayStart,
	}

	var dayOrders []order.Order
	priorCustomers := make(map[string]bool)
	for _, o := range orders {
		key := order.DayKey(o.OrderDate, loc)
		switch {
		case key == dayKey:
			dayOrders = append(dayOrders, o)
		case key < dayKey:
			priorCustomers[o.CustomerID] = true
		}
	}

	if len(dayOrders) == 0 {
		return out
	}

	itemCounts := make(map[string]int)
	// First-encounter order so the top-item tie-break is deterministic.
	var itemNames []string
	dayCustomers := make(map[string]bool)

	for _, o := range dayOrders {
		out.TotalOrders++
		out.TotalRevenue += o.TotalAmount

		switch o.Status {
		case order.StatusPending:
			out.PendingOrders++
		case order.StatusCompleted:
			out.CompletedOrders++
		case order.StatusCancelled:
			out.CancelledOrders++
		}

		dayCustomers[o.CustomerID] = true

		for _, item := range o.Items {
			if _, seen := itemCounts[item.MenuItemName]; !seen {
				itemNames = append(itemNames, item.MenuItemName)
			}
			itemCounts[item.MenuItemName] += item.Quantity
		}
	}

	out.AverageOrderValue = out.TotalRevenue / out.TotalOrders

	for _, name := range itemNames {
		if itemCounts[name] > out.TopSellingItemQuantity {
			out.TopSellingItem = name
			out.TopSellingItemQuantity = itemCounts[name]
		}
	}

	for id := range dayCustomers {
		if priorCustomers[id] {
			out.ReturningCustomers++
		}
	}
	out.NewCustomers = len(dayCustomers) - out.ReturningCustomers

	return out
}

// String implements a compact debug representation.
func (d DailyAnalytics) String() string {
	return fmt.Sprintf("%s: %d orders, revenue %d", d.ID, d.TotalOrders, d.TotalRevenue)
}

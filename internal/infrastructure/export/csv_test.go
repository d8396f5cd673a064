package export

import (
	"encoding/csv"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/houseoffoodsin/HOFBusiness/internal/domain/analytics"
	"github.com/houseoffoodsin/HOFBusiness/internal/domain/customer"
	"github.com/houseoffoodsin/HOFBusiness/internal/domain/menu"
	"github.com/houseoffoodsin/HOFBusiness/internal/domain/order"
)

func TestWriteOrders(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	w := NewWriter(t.TempDir(), loc)
	now := time.Date(2025, 9, 1, 18, 30, 0, 0, loc)

	orders := []order.Order{
		{
			ID: "HOF010925001", CustomerName: "Lakshmi", MobileNumber: "9876543210",
			Address: "Plot 4, Jubilee Hills, Hyderabad",
			DeliveryMode: order.DeliveryDelivery, PaymentMode: order.PaymentUPI,
			Items: []order.OrderItem{
				{MenuItemName: "Ragi Laddu", Size: "500g", Quantity: 2, UnitPrice: 370, TotalPrice: 740},
			},
			TotalAmount: 740,
			OrderDate:   time.Date(2025, 9, 1, 11, 0, 0, 0, loc),
			Status:      order.StatusConfirmed,
		},
	}

	path, err := w.WriteOrders(orders, now)
	require.NoError(t, err)

	rows := readCSV(t, path)
	require.Len(t, rows, 2)
	assert.Equal(t, "order_id", rows[0][0])
	assert.Equal(t, "HOF010925001", rows[1][0])
	assert.Equal(t, "2x Ragi Laddu (500g)", rows[1][7])
	assert.Equal(t, "740", rows[1][8])
}

func TestWriteDailyAnalytics(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	w := NewWriter(t.TempDir(), loc)
	now := time.Date(2025, 9, 1, 18, 30, 0, 0, loc)

	records := []analytics.DailyAnalytics{
		{
			ID: "daily-2025-09-01", Date: time.Date(2025, 9, 1, 0, 0, 0, 0, loc),
			TotalOrders: 3, TotalRevenue: 400, AverageOrderValue: 133,
			TopSellingItem: "Ragi Laddu", TopSellingItemQuantity: 3,
		},
	}

	path, err := w.WriteDailyAnalytics(records, now)
	require.NoError(t, err)

	rows := readCSV(t, path)
	require.Len(t, rows, 2)
	assert.Equal(t, "2025-09-01", rows[1][0])
	assert.Equal(t, "400", rows[1][2])
	assert.Equal(t, "Ragi Laddu", rows[1][4])
}

func TestWriteCustomers(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	w := NewWriter(t.TempDir(), loc)
	now := time.Date(2025, 9, 1, 18, 30, 0, 0, loc)

	customers := []customer.Customer{
		{
			ID: "9876543210", Name: "Lakshmi", MobileNumber: "9876543210",
			Address: "Plot 4, Jubilee Hills, Hyderabad", Region: "Jubilee Hills",
			FirstOrderDate: time.Date(2025, 8, 1, 10, 0, 0, 0, loc),
			TotalOrders:    5,
			LastOrderDate:  time.Date(2025, 9, 1, 11, 0, 0, 0, loc),
		},
	}

	path, err := w.WriteCustomers(customers, now)
	require.NoError(t, err)

	rows := readCSV(t, path)
	require.Len(t, rows, 2)
	assert.Equal(t, "name", rows[0][0])
	assert.Equal(t, "Lakshmi", rows[1][0])
	assert.Equal(t, "Jubilee Hills", rows[1][3])
	assert.Equal(t, "2025-08-01", rows[1][4])
	assert.Equal(t, "5", rows[1][5])
}

func TestWriteMenu(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	w := NewWriter(t.TempDir(), loc)
	now := time.Date(2025, 9, 1, 18, 30, 0, 0, loc)

	items := []menu.MenuItem{
		{ID: "6", Name: "Bobbatlu", Price250g: 0, Price500g: 300, Price1000g: 500, IsAvailable: true},
	}

	path, err := w.WriteMenu(items, now)
	require.NoError(t, err)

	rows := readCSV(t, path)
	require.Len(t, rows, 2)
	assert.Equal(t, "Bobbatlu", rows[1][1])
	// Zero price marks the unsold 250g pack.
	assert.Equal(t, "0", rows[1][2])
	assert.Equal(t, "true", rows[1][5])
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

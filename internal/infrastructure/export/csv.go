package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/houseoffoodsin/HOFBusiness/internal/domain/analytics"
	"github.com/houseoffoodsin/HOFBusiness/internal/domain/customer"
	"github.com/houseoffoodsin/HOFBusiness/internal/domain/menu"
	"github.com/houseoffoodsin/HOFBusiness/internal/domain/order"
)

// Writer dumps already-computed data to CSV files under dir. File names carry
// a timestamp so repeated exports never clobber each other.
type Writer struct {
	dir string
	loc *time.Location
}

func NewWriter(dir string, loc *time.Location) *Writer {
	return &Writer{dir: dir, loc: loc}
}

// WriteOrders writes one row per order and returns the file path. Line items
// are flattened into a single "2x Ragi Laddu (500g)" style column.
func (w *Writer) WriteOrders(orders []order.Order, now time.Time) (string, error) {
	path := w.filePath("orders", now)

	f, cw, err := w.create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	header := []string{
		"order_id", "order_date", "customer_name", "mobile_number", "address",
		"delivery_mode", "payment_mode", "items", "total_amount", "status",
	}
	if err := cw.Write(header); err != nil {
		return "", fmt.Errorf("write header: %w", err)
	}

	for _, o := range orders {
		row := []string{
			o.ID,
			o.OrderDate.In(w.loc).Format("2006-01-02 15:04"),
			o.CustomerName,
			o.MobileNumber,
			o.Address,
			string(o.DeliveryMode),
			string(o.PaymentMode),
			flattenItems(o.Items),
			strconv.Itoa(o.TotalAmount),
			string(o.Status),
		}
		if err := cw.Write(row); err != nil {
			return "", fmt.Errorf("write order %s: %w", o.ID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}
	return path, nil
}

// WriteDailyAnalytics writes one row per daily record and returns the file
// path.
func (w *Writer) WriteDailyAnalytics(records []analytics.DailyAnalytics, now time.Time) (string, error) {
	path := w.filePath("analytics", now)

	f, cw, err := w.create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	header := []string{
		"date", "total_orders", "total_revenue", "average_order_value",
		"top_selling_item", "top_selling_item_quantity",
		"pending_orders", "completed_orders", "cancelled_orders",
		"new_customers", "returning_customers",
	}
	if err := cw.Write(header); err != nil {
		return "", fmt.Errorf("write header: %w", err)
	}

	for _, d := range records {
		row := []string{
			d.Date.In(w.loc).Format(order.DayKeyLayout),
			strconv.Itoa(d.TotalOrders),
			strconv.Itoa(d.TotalRevenue),
			strconv.Itoa(d.AverageOrderValue),
			d.TopSellingItem,
			strconv.Itoa(d.TopSellingItemQuantity),
			strconv.Itoa(d.PendingOrders),
			strconv.Itoa(d.CompletedOrders),
			strconv.Itoa(d.CancelledOrders),
			strconv.Itoa(d.NewCustomers),
			strconv.Itoa(d.ReturningCustomers),
		}
		if err := cw.Write(row); err != nil {
			return "", fmt.Errorf("write analytics %s: %w", d.ID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}
	return path, nil
}

// WriteCustomers writes one row per customer and returns the file path.
func (w *Writer) WriteCustomers(customers []customer.Customer, now time.Time) (string, error) {
	path := w.filePath("customers", now)

	f, cw, err := w.create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	header := []string{
		"name", "mobile_number", "address", "region",
		"first_order_date", "total_orders", "last_order_date",
	}
	if err := cw.Write(header); err != nil {
		return "", fmt.Errorf("write header: %w", err)
	}

	for _, c := range customers {
		row := []string{
			c.Name,
			c.MobileNumber,
			c.Address,
			c.Region,
			c.FirstOrderDate.In(w.loc).Format(order.DayKeyLayout),
			strconv.Itoa(c.TotalOrders),
			c.LastOrderDate.In(w.loc).Format(order.DayKeyLayout),
		}
		if err := cw.Write(row); err != nil {
			return "", fmt.Errorf("write customer %s: %w", c.ID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}
	return path, nil
}

// WriteMenu writes the catalog with its per-size prices and returns the file
// path. A zero price marks a size the item is not sold in.
func (w *Writer) WriteMenu(items []menu.MenuItem, now time.Time) (string, error) {
	path := w.filePath("menu", now)

	f, cw, err := w.create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	header := []string{"id", "name", "price_250g", "price_500g", "price_1000g", "available"}
	if err := cw.Write(header); err != nil {
		return "", fmt.Errorf("write header: %w", err)
	}

	for _, m := range items {
		row := []string{
			m.ID,
			m.Name,
			strconv.Itoa(m.Price250g),
			strconv.Itoa(m.Price500g),
			strconv.Itoa(m.Price1000g),
			strconv.FormatBool(m.IsAvailable),
		}
		if err := cw.Write(row); err != nil {
			return "", fmt.Errorf("write menu item %s: %w", m.ID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}
	return path, nil
}

func (w *Writer) filePath(kind string, now time.Time) string {
	name := fmt.Sprintf("%s_%s.csv", kind, now.In(w.loc).Format("20060102_150405"))
	return filepath.Join(w.dir, name)
}

func (w *Writer) create(path string) (*os.File, *csv.Writer, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create export dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create export file: %w", err)
	}
	return f, csv.NewWriter(f), nil
}

func flattenItems(items []order.OrderItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%dx %s (%s)", item.Quantity, item.MenuItemName, item.Size))
	}
	return strings.Join(parts, "; ")
}

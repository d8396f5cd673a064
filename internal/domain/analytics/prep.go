package analytics

import (
	"sort"

	"github.com/houseoffoodsin/HOFBusiness/internal/domain/order"
)

// PrepItem is a kitchen work unit: one (item, size) bucket aggregated across
// a day's unprepared, non-cancelled orders. IsPrepared is merged in from the
// prep-state side table after aggregation; the fold itself never sets it.
type PrepItem struct {
	MenuItemName  string   `json:"menu_item_name"`
	Size          string   `json:"size"`
	TotalQuantity int      `json:"total_quantity"`
	UnitPrice     int      `json:"unit_price"`
	OrderIDs      []string `json:"order_ids"`
	IsPrepared    bool     `json:"is_prepared"`
}

// TotalValue is always TotalQuantity x UnitPrice; the unit price is the one
// observed on the first contribution (prices are stable within a day).
func (p PrepItem) TotalValue() int {
	return p.TotalQuantity * p.UnitPrice
}

// PrepKey is the side-table field key for a prep bucket.
func PrepKey(menuItemName, size string) string {
	return menuItemName + "|" + size
}

// BuildPrepSheet folds orders into prep items grouped by (item name, size).
// Cancelled orders and orders already marked prepared are excluded; every
// item of the remaining orders contributes its full quantity to exactly one
// bucket. Contributing order ids are deduplicated per bucket. Output is
// sorted by item name, then size.
func BuildPrepSheet(orders []order.Order) []PrepItem {
	buckets := make(map[string]*PrepItem)
	seenOrder := make(map[string]map[string]bool)

	for _, o := range orders {
		if o.Status == order.StatusCancelled || o.OrderPrepared {
			continue
		}
		for _, item := range o.Items {
			key := PrepKey(item.MenuItemName, item.Size)

			bucket, ok := buckets[key]
			if !ok {
				bucket = &PrepItem{
					MenuItemName: item.MenuItemName,
					Size:         item.Size,
					UnitPrice:    item.UnitPrice,
				}
				buckets[key] = bucket
				seenOrder[key] = make(map[string]bool)
			}

			bucket.TotalQuantity += item.Quantity
			if !seenOrder[key][o.ID] {
				seenOrder[key][o.ID] = true
				bucket.OrderIDs = append(bucket.OrderIDs, o.ID)
			}
		}
	}

	out := make([]PrepItem, 0, len(buckets))
	for _, bucket := range buckets {
		out = append(out, *bucket)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].MenuItemName != out[j].MenuItemName {
			return out[i].MenuItemName < out[j].MenuItemName
		}
		return out[i].Size < out[j].Size
	})

	return out
}

// MergePrepFlags applies the persisted prepared flags onto a freshly
// aggregated sheet.
func MergePrepFlags(items []PrepItem, flags map[string]bool) []PrepItem {
	out := make([]PrepItem, len(items))
	for i, item := range items {
		item.IsPrepared = flags[PrepKey(item.MenuItemName, item.Size)]
		out[i] = item
	}
	return out
}

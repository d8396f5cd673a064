package analytics

import (
	"fmt"
	"math"
	"sort"

	"github.com/houseoffoodsin/HOFBusiness/internal/domain/customer"
	"github.com/houseoffoodsin/HOFBusiness/internal/domain/order"
)

const frequentPairLimit = 5

// ItemDistribution is one item's share of all quantities sold in the window.
// The full set covers every distinct item and sums to 100 percent; trimming
// to a top-N happens at the presentation boundary, not here.
type ItemDistribution struct {
	MenuItemName string  `json:"menu_item_name"`
	Quantity     int     `json:"quantity"`
	Percentage   float64 `json:"percentage"`
}

// DashboardMetrics is a derived, non-persisted KPI record computed per
// request from a period-filtered order window.
type DashboardMetrics struct {
	TotalRevenue             int                `json:"total_revenue"`
	NumberOfOrders           int                `json:"number_of_orders"`
	AverageOrderValue        int                `json:"average_order_value"`
	RetentionRate            int                `json:"retention_rate"`
	ItemDistribution         []ItemDistribution `json:"item_distribution"`
	MostBoughtItem           string             `json:"most_bought_item"`
	LeastBoughtItem          string             `json:"least_bought_item"`
	MostBoughtRegion         string             `json:"most_bought_region"`
	FrequentlyBoughtTogether []string           `json:"frequently_bought_together"`
}

// BuildDashboard folds a period-filtered order window into business metrics.
// An empty window is a normal state, not an error: it yields zeros and "N/A"
// placeholders.
func BuildDashboard(orders []order.Order) DashboardMetrics {
	out := DashboardMetrics{
		MostBoughtItem:   "N/A",
		LeastBoughtItem:  "N/A",
		MostBoughtRegion: "N/A",
	}
	if len(orders) == 0 {
		return out
	}

	out.NumberOfOrders = len(orders)

	itemCounts := make(map[string]int)
	var itemNames []string
	customerOrders := make(map[string]int)
	regionCounts := make(map[string]int)
	var regionNames []string
	pairCounts := make(map[string]int)
	var pairKeys []string

	for _, o := range orders {
		out.TotalRevenue += o.TotalAmount
		customerOrders[o.CustomerID]++

		region := customer.ExtractRegion(o.Address)
		if _, seen := regionCounts[region]; !seen {
			regionNames = append(regionNames, region)
		}
		regionCounts[region]++

		// Distinct item names of this order, in first-encounter order.
		var names []string
		seen := make(map[string]bool)
		for _, item := range o.Items {
			if _, known := itemCounts[item.MenuItemName]; !known {
				itemNames = append(itemNames, item.MenuItemName)
			}
			itemCounts[item.MenuItemName] += item.Quantity

			if !seen[item.MenuItemName] {
				seen[item.MenuItemName] = true
				names = append(names, item.MenuItemName)
			}
		}

		// Every unordered pair of distinct names counts once per order.
		// Quadratic in names, which is bounded by the menu size.
		sort.Strings(names)
		for i := 0; i < len(names); i++ {
			for j := i + 1; j < len(names); j++ {
				key := names[i] + " + " + names[j]
				if _, known := pairCounts[key]; !known {
					pairKeys = append(pairKeys, key)
				}
				pairCounts[key]++
			}
		}
	}

	out.AverageOrderValue = out.TotalRevenue / out.NumberOfOrders

	repeat := 0
	for _, n := range customerOrders {
		if n > 1 {
			repeat++
		}
	}
	out.RetentionRate = int(math.Round(float64(repeat) / float64(len(customerOrders)) * 100))

	out.ItemDistribution = buildDistribution(itemNames, itemCounts)
	out.MostBoughtItem, out.LeastBoughtItem = extremeItems(itemNames, itemCounts)
	out.MostBoughtRegion = modeRegion(regionNames, regionCounts)
	out.FrequentlyBoughtTogether = topPairs(pairKeys, pairCounts)

	return out
}

func buildDistribution(names []string, counts map[string]int) []ItemDistribution {
	totalQty := 0
	for _, name := range names {
		totalQty += counts[name]
	}
	if totalQty == 0 {
		return nil
	}

	out := make([]ItemDistribution, 0, len(names))
	for _, name := range names {
		out = append(out, ItemDistribution{
			MenuItemName: name,
			Quantity:     counts[name],
			Percentage:   float64(counts[name]) / float64(totalQty) * 100,
		})
	}

	// Largest share first; name breaks ties so the output is stable.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Quantity != out[j].Quantity {
			return out[i].Quantity > out[j].Quantity
		}
		return out[i].MenuItemName < out[j].MenuItemName
	})

	return out
}

func extremeItems(names []string, counts map[string]int) (most, least string) {
	most, least = "N/A", "N/A"
	for _, name := range names {
		if most == "N/A" || counts[name] > counts[most] {
			most = name
		}
		if least == "N/A" || counts[name] < counts[least] {
			least = name
		}
	}
	return most, least
}

func modeRegion(names []string, counts map[string]int) string {
	best := "N/A"
	for _, name := range names {
		if best == "N/A" || counts[name] > counts[best] {
			best = name
		}
	}
	return best
}

func topPairs(keys []string, counts map[string]int) []string {
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})

	limit := frequentPairLimit
	if len(keys) < limit {
		limit = len(keys)
	}

	out := make([]string, 0, limit)
	for _, key := range keys[:limit] {
		out = append(out, fmt.Sprintf("%s (%d times)", key, counts[key]))
	}
	return out
}

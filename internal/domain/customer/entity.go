package customer

import (
	"strings"
	"time"
)

// Customer is keyed by phone number: ID always equals MobileNumber when the
// record is created through the standard order flow.
type Customer struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	MobileNumber   string    `json:"mobile_number"`
	Address        string    `json:"address"`
	Region         string    `json:"region"`
	FirstOrderDate time.Time `json:"first_order_date"`
	TotalOrders    int       `json:"total_orders"`
	LastOrderDate  time.Time `json:"last_order_date"`
}

// ExtractRegion pulls a best-effort region token out of a free-text address:
// split on commas and take the second-to-last segment (typically the locality
// before the city). The address field is unvalidated free text, so this is a
// display heuristic only, never an input to billing or logistics.
func ExtractRegion(address string) string {
	parts := strings.Split(address, ",")
	if len(parts) >= 2 {
		if region := strings.TrimSpace(parts[len(parts)-2]); region != "" {
			return region
		}
	}
	if len(parts) == 1 {
		if region := strings.TrimSpace(parts[0]); region != "" {
			return region
		}
	}
	return "Unknown"
}

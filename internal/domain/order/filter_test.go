package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func filterFixtures() []Order {
	base := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)
	return []Order{
		{ID: "HOF010925001", CustomerName: "Lakshmi", MobileNumber: "9876543210", Status: StatusPending, OrderDate: base},
		{ID: "HOF010925002", CustomerName: "Ravi Kumar", MobileNumber: "9123456789", Status: StatusConfirmed, OrderDate: base.Add(2 * time.Hour)},
		{ID: "HOF020925001", CustomerName: "Anita", MobileNumber: "9000000000", Status: StatusCancelled, OrderDate: base.AddDate(0, 0, 1)},
	}
}

func TestFilter_AbsentFiltersReturnInputUnchanged(t *testing.T) {
	orders := filterFixtures()

	got := Filter{}.Apply(orders)

	assert.Equal(t, orders, got)
}

func TestFilter_SearchIsCaseInsensitive(t *testing.T) {
	orders := filterFixtures()

	got := Filter{Query: "ravi"}.Apply(orders)

	assert.Len(t, got, 1)
	assert.Equal(t, "HOF010925002", got[0].ID)
}

func TestFilter_SearchMatchesIDAndMobile(t *testing.T) {
	orders := filterFixtures()

	byID := Filter{Query: "hof020925"}.Apply(orders)
	assert.Len(t, byID, 1)
	assert.Equal(t, "Anita", byID[0].CustomerName)

	byMobile := Filter{Query: "9123"}.Apply(orders)
	assert.Len(t, byMobile, 1)
	assert.Equal(t, "Ravi Kumar", byMobile[0].CustomerName)
}

func TestFilter_MobileSearchIgnoresCase(t *testing.T) {
	// The mobile field is unvalidated free text; "+91 98765-ext" style
	// entries exist, so the substring match folds case like id and name.
	orders := []Order{
		{ID: "HOF010925001", CustomerName: "Lakshmi", MobileNumber: "9876543210 EXT2"},
	}

	got := Filter{Query: "ext2"}.Apply(orders)

	assert.Len(t, got, 1)
	assert.Equal(t, "HOF010925001", got[0].ID)
}

func TestFilter_DateRangeIsInclusive(t *testing.T) {
	orders := filterFixtures()
	start := orders[0].OrderDate
	end := orders[1].OrderDate

	got := Filter{StartDate: &start, EndDate: &end}.Apply(orders)

	assert.Len(t, got, 2)
}

func TestFilter_StatusExactMatch(t *testing.T) {
	orders := filterFixtures()
	status := StatusCancelled

	got := Filter{Status: &status}.Apply(orders)

	assert.Len(t, got, 1)
	assert.Equal(t, "HOF020925001", got[0].ID)
}

func TestFilter_Conjunction(t *testing.T) {
	orders := filterFixtures()
	status := StatusPending

	got := Filter{Query: "lakshmi", Status: &status}.Apply(orders)
	assert.Len(t, got, 1)

	other := StatusDelivered
	got = Filter{Query: "lakshmi", Status: &other}.Apply(orders)
	assert.Empty(t, got)
}

func TestFilter_PreservesRelativeOrder(t *testing.T) {
	orders := filterFixtures()

	got := Filter{Query: "HOF01"}.Apply(orders)

	assert.Len(t, got, 2)
	assert.Equal(t, "HOF010925001", got[0].ID)
	assert.Equal(t, "HOF010925002", got[1].ID)
}

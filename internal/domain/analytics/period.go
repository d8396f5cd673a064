package analytics

import (
	"fmt"
	"time"

	"github.com/houseoffoodsin/HOFBusiness/internal/domain/order"
)

// Period names a dashboard/export time window.
type Period string

const (
	PeriodToday      Period = "today"
	PeriodLast7Days  Period = "last_7_days"
	PeriodLast30Days Period = "last_30_days"
	PeriodThisMonth  Period = "this_month"
	PeriodLastMonth  Period = "last_month"
)

// ParsePeriod validates a period tag from the wire.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodToday, PeriodLast7Days, PeriodLast30Days, PeriodThisMonth, PeriodLastMonth:
		return Period(s), nil
	case "":
		return PeriodToday, nil
	}
	return "", fmt.Errorf("unknown period %q", s)
}

// Window returns the [start, end) bounds of the period in the business
// timezone, anchored at now.
func (p Period) Window(now time.Time, loc *time.Location) (time.Time, time.Time) {
	local := now.In(loc)
	dayStart, dayEnd := order.DayBounds(local, loc)

	switch p {
	case PeriodLast7Days:
		return dayEnd.AddDate(0, 0, -7), dayEnd
	case PeriodLast30Days:
		return dayEnd.AddDate(0, 0, -30), dayEnd
	case PeriodThisMonth:
		monthStart := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
		return monthStart, dayEnd
	case PeriodLastMonth:
		monthStart := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
		return monthStart.AddDate(0, -1, 0), monthStart
	default: // PeriodToday
		return dayStart, dayEnd
	}
}

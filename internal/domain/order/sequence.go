package order

import (
	"fmt"
	"time"
)

// idDateLayout is the DDMMYY fragment embedded in order codes.
const idDateLayout = "020106"

// DayKeyLayout is the canonical calendar-day format used everywhere a day
// boundary matters: order sequencing, prep sheets, daily analytics ids.
const DayKeyLayout = "2006-01-02"

// DayKey formats a timestamp as its calendar day in the business timezone.
// Day membership is always decided on this string, never on raw timestamp
// arithmetic, so boundary orders land on a single unambiguous day.
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DayKeyLayout)
}

// DayBounds returns the [start, end) window of the calendar day containing t.
func DayBounds(t time.Time, loc *time.Location) (time.Time, time.Time) {
	local := t.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}

// FormatID builds the human-readable order code: PREFIX + DDMMYY + a
// zero-padded 3-digit daily sequence, e.g. HOF010925003. The sequence must
// come from an atomic per-day counter; the code must never be cached across a
// day boundary.
func FormatID(prefix string, day time.Time, loc *time.Location, seq int) string {
	return fmt.Sprintf("%s%s%03d", prefix, day.In(loc).Format(idDateLayout), seq)
}

// Package statistics contains the statistics aggregation use cases.
package statistics

import (
	"time"

	"github.com/ledgerbook/backend/internal/application/adapter"
)

// dateLayout is the wire format for all calendar dates.
const dateLayout = "2006-01-02"

// rollingWindowDays is the size of the trailing default window.
const rollingWindowDays = 30

// DateRangeResolver turns optional explicit dates plus a period keyword into
// a concrete inclusive date range. "Today" comes from the injected clock,
// evaluated in UTC.
type DateRangeResolver struct {
	clock adapter.Clock
}

// NewDateRangeResolver creates a new DateRangeResolver instance.
func NewDateRangeResolver(clock adapter.Clock) *DateRangeResolver {
	return &DateRangeResolver{clock: clock}
}

// Resolve computes the inclusive (start, end) range to aggregate over.
//
// When both explicit dates are supplied, each is parsed independently: a
// malformed start falls back to today-30d and a malformed end to today. This
// masking of bad input into a default window is deliberate, not an error.
// Otherwise the period keyword decides the range. The result is not
// re-ordered: an inverted explicit range aggregates to an empty result
// downstream.
func (r *DateRangeResolver) Resolve(startStr, endStr string, period Period) (start, end time.Time) {
	today := DateOf(r.clock.Now().UTC())

	if startStr != "" && endStr != "" {
		start = today.AddDate(0, 0, -rollingWindowDays)
		if parsed, err := time.Parse(dateLayout, startStr); err == nil {
			start = parsed
		}
		end = today
		if parsed, err := time.Parse(dateLayout, endStr); err == nil {
			end = parsed
		}
		return start, end
	}

	switch period {
	case PeriodDay:
		return today, today
	case PeriodWeek:
		monday := today.AddDate(0, 0, -(isoWeekday(today) - 1))
		return monday, monday.AddDate(0, 0, 6)
	case PeriodMonth:
		first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		// Last day of month via first-of-next-month minus one day; AddDate
		// handles the December to January rollover.
		return first, first.AddDate(0, 1, -1)
	case PeriodYear:
		return time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, time.UTC),
			time.Date(today.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
	default: // PeriodRolling
		return today.AddDate(0, 0, -rollingWindowDays), today
	}
}

// DateOf truncates a time to its calendar date at UTC midnight.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// isoWeekday returns the ISO weekday number: Monday = 1 .. Sunday = 7.
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	return wd
}

// Package statistics contains the statistics aggregation use cases.
package statistics

import "github.com/ledgerbook/backend/internal/domain/entity"

// Period is the requested reporting window keyword.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"

	// PeriodRolling is the explicit fallback for unrecognized period
	// keywords: a trailing 30-day window ending today.
	PeriodRolling Period = "rolling"
)

// ParsePeriod maps a wire string onto a Period. An absent period means the
// current calendar month; only unrecognized non-empty values resolve to
// PeriodRolling.
func ParsePeriod(s string) Period {
	switch s {
	case "day":
		return PeriodDay
	case "week":
		return PeriodWeek
	case "month", "":
		return PeriodMonth
	case "year":
		return PeriodYear
	default:
		return PeriodRolling
	}
}

// Granularity is the time-bucket width of a trend series.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
	GranularityYear  Granularity = "year"
)

// ParseGranularity maps a wire string onto a Granularity. Unrecognized values
// resolve to the documented default, GranularityMonth.
func ParseGranularity(s string) Granularity {
	switch s {
	case "day":
		return GranularityDay
	case "week":
		return GranularityWeek
	case "month":
		return GranularityMonth
	case "year":
		return GranularityYear
	default:
		return GranularityMonth
	}
}

// TrendGranularityForPeriod translates a reporting period into the trend
// granularity used by the combined statistics endpoint. Week and month views
// deliberately keep daily trend resolution; only year views group monthly.
func TrendGranularityForPeriod(period Period) Granularity {
	switch period {
	case PeriodDay, PeriodWeek, PeriodMonth:
		return GranularityDay
	case PeriodYear:
		return GranularityMonth
	default:
		return GranularityDay
	}
}

// ParseBillType maps a wire string onto a bill type. Unrecognized or empty
// values return nil, meaning "no type filter requested".
func ParseBillType(s string) *entity.BillType {
	switch s {
	case "income":
		t := entity.BillTypeIncome
		return &t
	case "expense":
		t := entity.BillTypeExpense
		return &t
	default:
		return nil
	}
}

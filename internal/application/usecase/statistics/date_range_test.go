package statistics

import (
	"testing"
	"time"
)

// fixedClock returns a constant instant, making range resolution a pure
// function of its inputs.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDateRangeResolver_ExplicitDates(t *testing.T) {
	resolver := NewDateRangeResolver(fixedClock{now: date("2025-03-05")})

	t.Run("both valid dates are used verbatim", func(t *testing.T) {
		start, end := resolver.Resolve("2025-01-10", "2025-02-20", PeriodMonth)
		if !start.Equal(date("2025-01-10")) || !end.Equal(date("2025-02-20")) {
			t.Errorf("got (%s, %s), want (2025-01-10, 2025-02-20)", start, end)
		}
	})

	t.Run("malformed start falls back to trailing 30 days", func(t *testing.T) {
		start, end := resolver.Resolve("not-a-date", "2025-03-01", PeriodMonth)
		if !start.Equal(date("2025-02-03")) {
			t.Errorf("start = %s, want 2025-02-03", start)
		}
		if !end.Equal(date("2025-03-01")) {
			t.Errorf("end = %s, want 2025-03-01", end)
		}
	})

	t.Run("malformed end falls back to today", func(t *testing.T) {
		start, end := resolver.Resolve("2025-01-01", "garbage", PeriodYear)
		if !start.Equal(date("2025-01-01")) {
			t.Errorf("start = %s, want 2025-01-01", start)
		}
		if !end.Equal(date("2025-03-05")) {
			t.Errorf("end = %s, want 2025-03-05", end)
		}
	})

	t.Run("inverted explicit range is not reordered", func(t *testing.T) {
		start, end := resolver.Resolve("2025-03-01", "2025-01-01", PeriodMonth)
		if !start.After(end) {
			t.Errorf("expected inverted range to be preserved, got (%s, %s)", start, end)
		}
	})

	t.Run("single explicit date is ignored in favor of the period", func(t *testing.T) {
		start, end := resolver.Resolve("2025-01-01", "", PeriodDay)
		if !start.Equal(date("2025-03-05")) || !end.Equal(date("2025-03-05")) {
			t.Errorf("got (%s, %s), want (2025-03-05, 2025-03-05)", start, end)
		}
	})
}

// A request without any period parameter aggregates over the current
// calendar month; the trailing 30-day window is reserved for unrecognized
// keywords.
func TestDateRangeResolver_AbsentPeriodMeansCalendarMonth(t *testing.T) {
	resolver := NewDateRangeResolver(fixedClock{now: date("2025-03-15")})

	start, end := resolver.Resolve("", "", ParsePeriod(""))
	if !start.Equal(date("2025-03-01")) {
		t.Errorf("start = %s, want 2025-03-01", start.Format("2006-01-02"))
	}
	if !end.Equal(date("2025-03-31")) {
		t.Errorf("end = %s, want 2025-03-31", end.Format("2006-01-02"))
	}
}

func TestDateRangeResolver_Periods(t *testing.T) {
	tests := []struct {
		name      string
		today     string
		period    Period
		wantStart string
		wantEnd   string
	}{
		{
			name:      "day resolves to today",
			today:     "2025-03-05",
			period:    PeriodDay,
			wantStart: "2025-03-05",
			wantEnd:   "2025-03-05",
		},
		{
			name:      "week resolves to Monday through Sunday from a Wednesday",
			today:     "2025-03-05",
			period:    PeriodWeek,
			wantStart: "2025-03-03",
			wantEnd:   "2025-03-09",
		},
		{
			name:      "week from a Monday starts on that Monday",
			today:     "2025-03-03",
			period:    PeriodWeek,
			wantStart: "2025-03-03",
			wantEnd:   "2025-03-09",
		},
		{
			name:      "week from a Sunday still starts on the preceding Monday",
			today:     "2025-03-09",
			period:    PeriodWeek,
			wantStart: "2025-03-03",
			wantEnd:   "2025-03-09",
		},
		{
			name:      "month resolves to first and last day",
			today:     "2025-03-15",
			period:    PeriodMonth,
			wantStart: "2025-03-01",
			wantEnd:   "2025-03-31",
		},
		{
			name:      "month in December rolls over the year boundary",
			today:     "2024-12-15",
			period:    PeriodMonth,
			wantStart: "2024-12-01",
			wantEnd:   "2024-12-31",
		},
		{
			name:      "month in a leap February ends on the 29th",
			today:     "2024-02-10",
			period:    PeriodMonth,
			wantStart: "2024-02-01",
			wantEnd:   "2024-02-29",
		},
		{
			name:      "year resolves to Jan 1 through Dec 31",
			today:     "2025-07-04",
			period:    PeriodYear,
			wantStart: "2025-01-01",
			wantEnd:   "2025-12-31",
		},
		{
			name:      "rolling resolves to the trailing 30 days",
			today:     "2025-03-05",
			period:    PeriodRolling,
			wantStart: "2025-02-03",
			wantEnd:   "2025-03-05",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := NewDateRangeResolver(fixedClock{now: date(tt.today)})
			start, end := resolver.Resolve("", "", tt.period)
			if !start.Equal(date(tt.wantStart)) {
				t.Errorf("start = %s, want %s", start.Format("2006-01-02"), tt.wantStart)
			}
			if !end.Equal(date(tt.wantEnd)) {
				t.Errorf("end = %s, want %s", end.Format("2006-01-02"), tt.wantEnd)
			}
		})
	}
}

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		in   string
		want Period
	}{
		{"day", PeriodDay},
		{"week", PeriodWeek},
		{"month", PeriodMonth},
		{"year", PeriodYear},
		{"", PeriodMonth},
		{"fortnight", PeriodRolling},
	}
	for _, tt := range tests {
		if got := ParsePeriod(tt.in); got != tt.want {
			t.Errorf("ParsePeriod(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseGranularity(t *testing.T) {
	tests := []struct {
		in   string
		want Granularity
	}{
		{"day", GranularityDay},
		{"week", GranularityWeek},
		{"month", GranularityMonth},
		{"year", GranularityYear},
		{"", GranularityMonth},
		{"decade", GranularityMonth},
	}
	for _, tt := range tests {
		if got := ParseGranularity(tt.in); got != tt.want {
			t.Errorf("ParseGranularity(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTrendGranularityForPeriod(t *testing.T) {
	tests := []struct {
		period Period
		want   Granularity
	}{
		{PeriodDay, GranularityDay},
		{PeriodWeek, GranularityDay},
		{PeriodMonth, GranularityDay},
		{PeriodYear, GranularityMonth},
		{PeriodRolling, GranularityDay},
	}
	for _, tt := range tests {
		if got := TrendGranularityForPeriod(tt.period); got != tt.want {
			t.Errorf("TrendGranularityForPeriod(%q) = %q, want %q", tt.period, got, tt.want)
		}
	}
}

package statistics

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerbook/backend/internal/domain/entity"
)

func bill(billType entity.BillType, amount string, day string, categoryID uuid.UUID) *entity.Bill {
	return &entity.Bill{
		ID:         uuid.New(),
		CategoryID: categoryID,
		Type:       billType,
		Amount:     decimal.RequireFromString(amount),
		BillDate:   date(day),
	}
}

func TestSummarize(t *testing.T) {
	t.Run("empty input yields zero totals", func(t *testing.T) {
		s := summarize(nil)
		if !s.TotalIncome.IsZero() || !s.TotalExpense.IsZero() || !s.Balance.IsZero() {
			t.Errorf("got %+v, want all-zero summary", s)
		}
	})

	t.Run("mixed bills split by type with balance as the difference", func(t *testing.T) {
		cat := uuid.New()
		s := summarize([]*entity.Bill{
			bill(entity.BillTypeIncome, "1000", "2025-03-01", cat),
			bill(entity.BillTypeExpense, "350.50", "2025-03-02", cat),
			bill(entity.BillTypeExpense, "49.50", "2025-03-03", cat),
			bill(entity.BillTypeIncome, "200", "2025-03-04", cat),
		})
		if !s.TotalIncome.Equal(decimal.RequireFromString("1200")) {
			t.Errorf("TotalIncome = %s, want 1200", s.TotalIncome)
		}
		if !s.TotalExpense.Equal(decimal.RequireFromString("400")) {
			t.Errorf("TotalExpense = %s, want 400", s.TotalExpense)
		}
		if !s.Balance.Equal(decimal.RequireFromString("800")) {
			t.Errorf("Balance = %s, want 800", s.Balance)
		}
	})
}

func TestGroupByCategory(t *testing.T) {
	food := uuid.New()
	transport := uuid.New()
	salary := uuid.New()

	bills := []*entity.Bill{
		bill(entity.BillTypeExpense, "30", "2025-03-01", food),
		bill(entity.BillTypeExpense, "70", "2025-03-02", food),
		bill(entity.BillTypeExpense, "300", "2025-03-02", transport),
		bill(entity.BillTypeIncome, "5000", "2025-03-05", salary),
	}

	t.Run("sums, counts and percentages per category of one type", func(t *testing.T) {
		stats := groupByCategory(bills, entity.BillTypeExpense)
		if len(stats) != 2 {
			t.Fatalf("got %d rows, want 2", len(stats))
		}
		if stats[0].CategoryID != transport {
			t.Errorf("first row = %s, want the largest category first", stats[0].CategoryID)
		}
		if !stats[0].Amount.Equal(decimal.RequireFromString("300")) || stats[0].Count != 1 {
			t.Errorf("transport row = %+v, want amount 300 count 1", stats[0])
		}
		if !stats[1].Amount.Equal(decimal.RequireFromString("100")) || stats[1].Count != 2 {
			t.Errorf("food row = %+v, want amount 100 count 2", stats[1])
		}
		if math.Abs(stats[0].Percentage-75) > 1e-9 {
			t.Errorf("transport percentage = %f, want 75", stats[0].Percentage)
		}
		if math.Abs(stats[1].Percentage-25) > 1e-9 {
			t.Errorf("food percentage = %f, want 25", stats[1].Percentage)
		}
	})

	t.Run("income breakdown ignores expense bills", func(t *testing.T) {
		stats := groupByCategory(bills, entity.BillTypeIncome)
		if len(stats) != 1 {
			t.Fatalf("got %d rows, want 1", len(stats))
		}
		if stats[0].CategoryID != salary {
			t.Errorf("row category = %s, want salary", stats[0].CategoryID)
		}
		if math.Abs(stats[0].Percentage-100) > 1e-9 {
			t.Errorf("percentage = %f, want 100", stats[0].Percentage)
		}
	})

	t.Run("zero total leaves every percentage at zero", func(t *testing.T) {
		stats := groupByCategory([]*entity.Bill{
			bill(entity.BillTypeExpense, "0", "2025-03-01", food),
			bill(entity.BillTypeExpense, "0", "2025-03-02", transport),
		}, entity.BillTypeExpense)
		for _, stat := range stats {
			if stat.Percentage != 0 {
				t.Errorf("category %s percentage = %f, want 0", stat.CategoryID, stat.Percentage)
			}
		}
	})

	t.Run("ties keep first-encounter order", func(t *testing.T) {
		stats := groupByCategory([]*entity.Bill{
			bill(entity.BillTypeExpense, "50", "2025-03-01", food),
			bill(entity.BillTypeExpense, "50", "2025-03-01", transport),
		}, entity.BillTypeExpense)
		if stats[0].CategoryID != food || stats[1].CategoryID != transport {
			t.Errorf("tie order = [%s, %s], want [food, transport]", stats[0].CategoryID, stats[1].CategoryID)
		}
	})

	t.Run("no matching bills yields an empty slice", func(t *testing.T) {
		stats := groupByCategory(nil, entity.BillTypeExpense)
		if len(stats) != 0 {
			t.Errorf("got %d rows, want 0", len(stats))
		}
	})
}

func TestDailySeries(t *testing.T) {
	cat := uuid.New()

	t.Run("every date in the range appears once, zero-filled", func(t *testing.T) {
		bills := []*entity.Bill{
			bill(entity.BillTypeExpense, "10", "2025-03-02", cat),
			bill(entity.BillTypeIncome, "100", "2025-03-02", cat),
			bill(entity.BillTypeExpense, "5", "2025-03-04", cat),
		}
		series := dailySeries(bills, date("2025-03-01"), date("2025-03-04"))
		if len(series) != 4 {
			t.Fatalf("got %d days, want 4", len(series))
		}
		for i, day := range []string{"2025-03-01", "2025-03-02", "2025-03-03", "2025-03-04"} {
			if !series[i].Date.Equal(date(day)) {
				t.Errorf("series[%d].Date = %s, want %s", i, series[i].Date, day)
			}
		}
		if !series[0].Income.IsZero() || !series[0].Expense.IsZero() {
			t.Errorf("empty day = %+v, want zeros", series[0])
		}
		if !series[1].Income.Equal(decimal.RequireFromString("100")) {
			t.Errorf("day 2 income = %s, want 100", series[1].Income)
		}
		if !series[1].Expense.Equal(decimal.RequireFromString("10")) {
			t.Errorf("day 2 expense = %s, want 10", series[1].Expense)
		}
		if !series[3].Expense.Equal(decimal.RequireFromString("5")) {
			t.Errorf("day 4 expense = %s, want 5", series[3].Expense)
		}
	})

	t.Run("bills outside the range are skipped", func(t *testing.T) {
		bills := []*entity.Bill{
			bill(entity.BillTypeExpense, "99", "2025-02-28", cat),
			bill(entity.BillTypeExpense, "1", "2025-03-01", cat),
		}
		series := dailySeries(bills, date("2025-03-01"), date("2025-03-01"))
		if len(series) != 1 {
			t.Fatalf("got %d days, want 1", len(series))
		}
		if !series[0].Expense.Equal(decimal.RequireFromString("1")) {
			t.Errorf("expense = %s, want 1", series[0].Expense)
		}
	})

	t.Run("inverted range yields an empty series", func(t *testing.T) {
		series := dailySeries(nil, date("2025-03-05"), date("2025-03-01"))
		if len(series) != 0 {
			t.Errorf("got %d days, want 0", len(series))
		}
	})

	t.Run("bill timestamps with a time component land on their date", func(t *testing.T) {
		b := bill(entity.BillTypeIncome, "42", "2025-03-01", cat)
		b.BillDate = time.Date(2025, 3, 1, 23, 59, 0, 0, time.UTC)
		series := dailySeries([]*entity.Bill{b}, date("2025-03-01"), date("2025-03-01"))
		if !series[0].Income.Equal(decimal.RequireFromString("42")) {
			t.Errorf("income = %s, want 42", series[0].Income)
		}
	})
}

func TestTrendSeries(t *testing.T) {
	cat := uuid.New()

	t.Run("month buckets sum and order chronologically", func(t *testing.T) {
		bills := []*entity.Bill{
			bill(entity.BillTypeExpense, "100", "2025-02-10", cat),
			bill(entity.BillTypeIncome, "500", "2025-01-05", cat),
			bill(entity.BillTypeExpense, "50", "2025-01-20", cat),
		}
		stats := trendSeries(bills, GranularityMonth)
		if len(stats) != 2 {
			t.Fatalf("got %d buckets, want 2", len(stats))
		}
		if stats[0].Period != "2025-01" || stats[1].Period != "2025-02" {
			t.Errorf("order = [%s, %s], want [2025-01, 2025-02]", stats[0].Period, stats[1].Period)
		}
		if !stats[0].Balance.Equal(decimal.RequireFromString("450")) {
			t.Errorf("January balance = %s, want 450", stats[0].Balance)
		}
		if !stats[1].Balance.Equal(decimal.RequireFromString("-100")) {
			t.Errorf("February balance = %s, want -100", stats[1].Balance)
		}
	})

	t.Run("empty buckets are absent", func(t *testing.T) {
		bills := []*entity.Bill{
			bill(entity.BillTypeExpense, "1", "2025-01-01", cat),
			bill(entity.BillTypeExpense, "1", "2025-03-01", cat),
		}
		stats := trendSeries(bills, GranularityMonth)
		if len(stats) != 2 {
			t.Fatalf("got %d buckets, want 2 (no empty February bucket)", len(stats))
		}
	})
}

func TestPeriodLabel(t *testing.T) {
	tests := []struct {
		name        string
		day         string
		granularity Granularity
		want        string
	}{
		{"day label", "2025-03-05", GranularityDay, "2025-03-05"},
		{"week label is zero-padded", "2025-03-05", GranularityWeek, "2025-W10"},
		{"week label uses the ISO week-numbering year", "2024-12-30", GranularityWeek, "2025-W01"},
		{"early January can belong to the prior ISO year", "2027-01-01", GranularityWeek, "2026-W53"},
		{"month label", "2025-03-05", GranularityMonth, "2025-03"},
		{"year label", "2025-03-05", GranularityYear, "2025"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := periodLabel(date(tt.day), tt.granularity); got != tt.want {
				t.Errorf("periodLabel(%s, %s) = %q, want %q", tt.day, tt.granularity, got, tt.want)
			}
		})
	}
}

// Package statistics contains the statistics aggregation use cases.
package statistics

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerbook/backend/internal/domain/entity"
)

// Summary holds ledger-wide income/expense totals.
type Summary struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal
}

// CategoryStat is one row of a per-category breakdown. Name and Icon are
// resolved at read time by the use case, not here.
type CategoryStat struct {
	CategoryID uuid.UUID
	Type       entity.BillType
	Amount     decimal.Decimal
	Count      int
	Percentage float64 // Share of the breakdown's total, 0 when the total is 0
}

// DailyStat holds income and expense sums for a single calendar date.
type DailyStat struct {
	Date    time.Time
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// TrendStat holds income, expense and balance for one time bucket.
type TrendStat struct {
	Period  string // Bucket label, lexicographic order equals chronological
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

// summarize sums bill amounts by type. An empty input yields a zero-valued
// summary, never an error.
func summarize(bills []*entity.Bill) Summary {
	income := decimal.Zero
	expense := decimal.Zero
	for _, bill := range bills {
		switch bill.Type {
		case entity.BillTypeIncome:
			income = income.Add(bill.Amount)
		case entity.BillTypeExpense:
			expense = expense.Add(bill.Amount)
		}
	}
	return Summary{
		TotalIncome:  income,
		TotalExpense: expense,
		Balance:      income.Sub(expense),
	}
}

// groupByCategory sums and counts bills of a single type per category and
// computes each category's percentage of the group total. Rows come back
// ordered by descending amount; ties keep first-encounter order so the
// result is deterministic for a given input.
func groupByCategory(bills []*entity.Bill, billType entity.BillType) []CategoryStat {
	totals := make(map[uuid.UUID]*CategoryStat)
	order := make([]uuid.UUID, 0)

	for _, bill := range bills {
		if bill.Type != billType {
			continue
		}
		stat, ok := totals[bill.CategoryID]
		if !ok {
			stat = &CategoryStat{
				CategoryID: bill.CategoryID,
				Type:       billType,
				Amount:     decimal.Zero,
			}
			totals[bill.CategoryID] = stat
			order = append(order, bill.CategoryID)
		}
		stat.Amount = stat.Amount.Add(bill.Amount)
		stat.Count++
	}

	total := decimal.Zero
	for _, id := range order {
		total = total.Add(totals[id].Amount)
	}

	stats := make([]CategoryStat, 0, len(order))
	for _, id := range order {
		stat := *totals[id]
		if total.IsPositive() {
			stat.Percentage = stat.Amount.Div(total).Mul(decimal.NewFromInt(100)).InexactFloat64()
		}
		stats = append(stats, stat)
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Amount.GreaterThan(stats[j].Amount)
	})
	return stats
}

// dailySeries buckets bills per calendar date over [start, end] inclusive.
// Every date in the range appears exactly once, zero-filled when no bill
// falls on it, ordered ascending. An inverted range yields an empty series.
func dailySeries(bills []*entity.Bill, start, end time.Time) []DailyStat {
	start = DateOf(start)
	end = DateOf(end)

	index := make(map[string]int)
	series := make([]DailyStat, 0)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		index[day.Format(dateLayout)] = len(series)
		series = append(series, DailyStat{
			Date:    day,
			Income:  decimal.Zero,
			Expense: decimal.Zero,
		})
	}

	for _, bill := range bills {
		i, ok := index[DateOf(bill.BillDate).Format(dateLayout)]
		if !ok {
			continue
		}
		switch bill.Type {
		case entity.BillTypeIncome:
			series[i].Income = series[i].Income.Add(bill.Amount)
		case entity.BillTypeExpense:
			series[i].Expense = series[i].Expense.Add(bill.Amount)
		}
	}
	return series
}

// trendSeries buckets bills by the period label of their date and sums
// income, expense, and balance per bucket. Labels are fixed width, so the
// ascending lexicographic order of the result is chronological.
func trendSeries(bills []*entity.Bill, granularity Granularity) []TrendStat {
	buckets := make(map[string]*TrendStat)
	for _, bill := range bills {
		label := periodLabel(bill.BillDate, granularity)
		stat, ok := buckets[label]
		if !ok {
			stat = &TrendStat{
				Period:  label,
				Income:  decimal.Zero,
				Expense: decimal.Zero,
			}
			buckets[label] = stat
		}
		switch bill.Type {
		case entity.BillTypeIncome:
			stat.Income = stat.Income.Add(bill.Amount)
		case entity.BillTypeExpense:
			stat.Expense = stat.Expense.Add(bill.Amount)
		}
	}

	stats := make([]TrendStat, 0, len(buckets))
	for _, stat := range buckets {
		stat.Balance = stat.Income.Sub(stat.Expense)
		stats = append(stats, *stat)
	}
	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Period < stats[j].Period
	})
	return stats
}

// periodLabel formats a date as its bucket label. The week label uses the
// ISO-8601 week-numbering year, which can differ from the calendar year at
// year boundaries.
func periodLabel(date time.Time, granularity Granularity) string {
	switch granularity {
	case GranularityDay:
		return date.Format("2006-01-02")
	case GranularityWeek:
		year, week := date.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	case GranularityYear:
		return date.Format("2006")
	default: // GranularityMonth
		return date.Format("2006-01")
	}
}

package dto

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerbook/backend/internal/application/usecase/statistics"
	"github.com/ledgerbook/backend/internal/domain/entity"
)

// Monetary statistics fields must serialize as JSON numbers, not strings.
func TestStatisticsResponseSerializesAmountsAsNumbers(t *testing.T) {
	day := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	output := &statistics.GetStatisticsOutput{
		StartDate: day,
		EndDate:   day,
		Summary: statistics.Summary{
			TotalIncome:  decimal.NewFromFloat(1234.50),
			TotalExpense: decimal.NewFromFloat(200),
			Balance:      decimal.NewFromFloat(1034.50),
		},
		ByCategory: []statistics.ResolvedCategoryStat{
			{
				CategoryStat: statistics.CategoryStat{
					CategoryID: uuid.New(),
					Type:       entity.BillTypeExpense,
					Amount:     decimal.NewFromFloat(200),
					Count:      1,
					Percentage: 100,
				},
				CategoryName: "Food",
			},
		},
		Daily: []statistics.DailyStat{
			{Date: day, Income: decimal.NewFromFloat(1234.50), Expense: decimal.NewFromFloat(200)},
		},
		Trend: []statistics.TrendStat{
			{Period: "2025-03", Income: decimal.NewFromFloat(1234.50), Expense: decimal.NewFromFloat(200), Balance: decimal.NewFromFloat(1034.50)},
		},
	}

	resp := ToStatisticsResponse(output)
	if resp.Summary.TotalIncome != 1234.5 {
		t.Errorf("TotalIncome = %v, want 1234.5", resp.Summary.TotalIncome)
	}
	if resp.ByCategory[0].Amount != 200 {
		t.Errorf("category Amount = %v, want 200", resp.ByCategory[0].Amount)
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	body := string(raw)
	for _, numeric := range []string{
		`"total_income":1234.5`,
		`"balance":1034.5`,
		`"amount":200`,
		`"income":1234.5`,
	} {
		if !strings.Contains(body, numeric) {
			t.Errorf("expected %s in response body, got %s", numeric, body)
		}
	}
	for _, quoted := range []string{
		`"total_income":"`,
		`"amount":"`,
		`"expense":"`,
	} {
		if strings.Contains(body, quoted) {
			t.Errorf("found string-typed monetary field %s in response body", quoted)
		}
	}
}

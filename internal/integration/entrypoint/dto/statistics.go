// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/ledgerbook/backend/internal/application/usecase/statistics"
)

// StatisticsSummaryResponse holds income/expense totals for the resolved range.
type StatisticsSummaryResponse struct {
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	Balance      float64 `json:"balance"`
}

// CategoryStatResponse is one row of a per-category breakdown.
type CategoryStatResponse struct {
	CategoryID   string  `json:"category_id"`
	CategoryName string  `json:"category_name"`
	CategoryIcon *string `json:"category_icon"`
	Type         string  `json:"type"`
	Amount       float64 `json:"amount"`
	Count        int     `json:"count"`
	Percentage   float64 `json:"percentage"`
}

// DailyStatResponse holds income and expense sums for one calendar date.
type DailyStatResponse struct {
	Date    string  `json:"date"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// TrendStatResponse holds income, expense and balance for one time bucket.
type TrendStatResponse struct {
	Period  string  `json:"period"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

// StatisticsResponse represents the combined statistics view.
type StatisticsResponse struct {
	StartDate  string                    `json:"start_date"`
	EndDate    string                    `json:"end_date"`
	Summary    StatisticsSummaryResponse `json:"summary"`
	ByCategory []CategoryStatResponse    `json:"by_category"`
	Daily      []DailyStatResponse       `json:"daily"`
	Trend      []TrendStatResponse       `json:"trend"`
}

// CategoryStatisticsResponse represents a standalone category breakdown.
type CategoryStatisticsResponse struct {
	Stats []CategoryStatResponse `json:"stats"`
}

// TrendStatisticsResponse represents a standalone trend series.
type TrendStatisticsResponse struct {
	Trend []TrendStatResponse `json:"trend"`
}

// ToStatisticsResponse converts a combined statistics output to its response.
// Amounts are decimal internally and become JSON numbers only here.
func ToStatisticsResponse(output *statistics.GetStatisticsOutput) StatisticsResponse {
	totalIncome, _ := output.Summary.TotalIncome.Float64()
	totalExpense, _ := output.Summary.TotalExpense.Float64()
	balance, _ := output.Summary.Balance.Float64()

	return StatisticsResponse{
		StartDate: output.StartDate.Format("2006-01-02"),
		EndDate:   output.EndDate.Format("2006-01-02"),
		Summary: StatisticsSummaryResponse{
			TotalIncome:  totalIncome,
			TotalExpense: totalExpense,
			Balance:      balance,
		},
		ByCategory: toCategoryStatResponses(output.ByCategory),
		Daily:      toDailyStatResponses(output.Daily),
		Trend:      toTrendStatResponses(output.Trend),
	}
}

// ToCategoryStatisticsResponse converts a category breakdown output to its
// response.
func ToCategoryStatisticsResponse(output *statistics.GetCategoryStatisticsOutput) CategoryStatisticsResponse {
	return CategoryStatisticsResponse{Stats: toCategoryStatResponses(output.Stats)}
}

// ToTrendStatisticsResponse converts a trend series output to its response.
func ToTrendStatisticsResponse(output *statistics.GetTrendStatisticsOutput) TrendStatisticsResponse {
	return TrendStatisticsResponse{Trend: toTrendStatResponses(output.Trend)}
}

func toCategoryStatResponses(stats []statistics.ResolvedCategoryStat) []CategoryStatResponse {
	responses := make([]CategoryStatResponse, 0, len(stats))
	for _, stat := range stats {
		amount, _ := stat.Amount.Float64()
		responses = append(responses, CategoryStatResponse{
			CategoryID:   stat.CategoryID.String(),
			CategoryName: stat.CategoryName,
			CategoryIcon: stat.CategoryIcon,
			Type:         string(stat.Type),
			Amount:       amount,
			Count:        stat.Count,
			Percentage:   stat.Percentage,
		})
	}
	return responses
}

func toDailyStatResponses(stats []statistics.DailyStat) []DailyStatResponse {
	responses := make([]DailyStatResponse, 0, len(stats))
	for _, stat := range stats {
		income, _ := stat.Income.Float64()
		expense, _ := stat.Expense.Float64()
		responses = append(responses, DailyStatResponse{
			Date:    stat.Date.Format("2006-01-02"),
			Income:  income,
			Expense: expense,
		})
	}
	return responses
}

func toTrendStatResponses(stats []statistics.TrendStat) []TrendStatResponse {
	responses := make([]TrendStatResponse, 0, len(stats))
	for _, stat := range stats {
		income, _ := stat.Income.Float64()
		expense, _ := stat.Expense.Float64()
		balance, _ := stat.Balance.Float64()
		responses = append(responses, TrendStatResponse{
			Period:  stat.Period,
			Income:  income,
			Expense: expense,
			Balance: balance,
		})
	}
	return responses
}

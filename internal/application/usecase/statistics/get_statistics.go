// Package statistics contains the statistics aggregation use cases.
package statistics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerbook/backend/internal/application/adapter"
	"github.com/ledgerbook/backend/internal/application/usecase/ledger"
)

// GetStatisticsInput represents the input for the combined statistics view.
// StartDate/EndDate and BillType carry the raw wire strings; parsing and
// fallback behavior belong to this use case.
type GetStatisticsInput struct {
	UserID    uuid.UUID
	LedgerID  uuid.UUID
	StartDate string
	EndDate   string
	Period    Period
	BillType  *string
}

// GetStatisticsOutput represents the combined statistics view: summary with
// category breakdown, daily series, and trend series over one resolved range.
type GetStatisticsOutput struct {
	StartDate  time.Time
	EndDate    time.Time
	Summary    Summary
	ByCategory []ResolvedCategoryStat
	Daily      []DailyStat
	Trend      []TrendStat
}

// GetStatisticsUseCase computes the combined statistics view. Each of the
// four shapes is an independent scan over the bill store; no aggregate state
// is cached between requests.
type GetStatisticsUseCase struct {
	billRepo     adapter.BillRepository
	categoryRepo adapter.CategoryRepository
	access       *ledger.AccessChecker
	resolver     *DateRangeResolver
}

// NewGetStatisticsUseCase creates a new GetStatisticsUseCase instance.
func NewGetStatisticsUseCase(
	billRepo adapter.BillRepository,
	categoryRepo adapter.CategoryRepository,
	access *ledger.AccessChecker,
	resolver *DateRangeResolver,
) *GetStatisticsUseCase {
	return &GetStatisticsUseCase{
		billRepo:     billRepo,
		categoryRepo: categoryRepo,
		access:       access,
		resolver:     resolver,
	}
}

// Execute resolves the date range and computes all four statistic shapes.
// Access is checked before any aggregation runs; afterwards the only failure
// mode is a storage error, which propagates untouched.
func (uc *GetStatisticsUseCase) Execute(ctx context.Context, input GetStatisticsInput) (*GetStatisticsOutput, error) {
	if _, err := uc.access.Authorize(ctx, input.LedgerID, input.UserID); err != nil {
		return nil, err
	}

	start, end := uc.resolver.Resolve(input.StartDate, input.EndDate, input.Period)

	filter := adapter.BillFilter{
		LedgerID:  input.LedgerID,
		StartDate: &start,
		EndDate:   &end,
	}
	bills, err := uc.billRepo.FindAllByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to load bills: %w", err)
	}

	summary := summarize(bills)

	// The breakdown defaults to expense when no type filter is given: the
	// combined view answers "where did my money go" out of the box.
	breakdownType := parseOptionalBillType(input.BillType)
	byCategory, err := resolveCategoryStats(ctx, uc.categoryRepo, groupByCategory(bills, breakdownType))
	if err != nil {
		return nil, err
	}

	return &GetStatisticsOutput{
		StartDate:  start,
		EndDate:    end,
		Summary:    summary,
		ByCategory: byCategory,
		Daily:      dailySeries(bills, start, end),
		Trend:      trendSeries(bills, TrendGranularityForPeriod(input.Period)),
	}, nil
}

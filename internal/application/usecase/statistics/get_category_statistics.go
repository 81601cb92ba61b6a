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

// GetCategoryStatisticsInput represents the input for a category breakdown.
// Dates are optional: a malformed date is silently treated as absent, meaning
// no bound on that side.
type GetCategoryStatisticsInput struct {
	UserID    uuid.UUID
	LedgerID  uuid.UUID
	StartDate string
	EndDate   string
	BillType  *string
}

// GetCategoryStatisticsOutput represents the output of a category breakdown.
type GetCategoryStatisticsOutput struct {
	Stats []ResolvedCategoryStat
}

// GetCategoryStatisticsUseCase computes the per-category breakdown for one
// bill type over an optional date range.
type GetCategoryStatisticsUseCase struct {
	billRepo     adapter.BillRepository
	categoryRepo adapter.CategoryRepository
	access       *ledger.AccessChecker
}

// NewGetCategoryStatisticsUseCase creates a new GetCategoryStatisticsUseCase instance.
func NewGetCategoryStatisticsUseCase(
	billRepo adapter.BillRepository,
	categoryRepo adapter.CategoryRepository,
	access *ledger.AccessChecker,
) *GetCategoryStatisticsUseCase {
	return &GetCategoryStatisticsUseCase{
		billRepo:     billRepo,
		categoryRepo: categoryRepo,
		access:       access,
	}
}

// Execute computes the breakdown. The type filter defaults to expense when
// absent or unrecognized.
func (uc *GetCategoryStatisticsUseCase) Execute(ctx context.Context, input GetCategoryStatisticsInput) (*GetCategoryStatisticsOutput, error) {
	if _, err := uc.access.Authorize(ctx, input.LedgerID, input.UserID); err != nil {
		return nil, err
	}

	billType := parseOptionalBillType(input.BillType)

	filter := adapter.BillFilter{
		LedgerID:  input.LedgerID,
		StartDate: parseLenientDate(input.StartDate),
		EndDate:   parseLenientDate(input.EndDate),
		Type:      &billType,
	}
	bills, err := uc.billRepo.FindAllByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to load bills: %w", err)
	}

	stats, err := resolveCategoryStats(ctx, uc.categoryRepo, groupByCategory(bills, billType))
	if err != nil {
		return nil, err
	}

	return &GetCategoryStatisticsOutput{Stats: stats}, nil
}

// parseLenientDate parses an optional wire date, treating empty or malformed
// input as absent.
func parseLenientDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	parsed, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil
	}
	return &parsed
}

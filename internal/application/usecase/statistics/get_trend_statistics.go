// Package statistics contains the statistics aggregation use cases.
package statistics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerbook/backend/internal/application/adapter"
	"github.com/ledgerbook/backend/internal/application/usecase/ledger"
	domainerror "github.com/ledgerbook/backend/internal/domain/error"
)

// GetTrendStatisticsInput represents the input for a trend series. Unlike the
// summary paths, both dates are mandatory and malformed input is a hard
// validation error.
type GetTrendStatisticsInput struct {
	UserID    uuid.UUID
	LedgerID  uuid.UUID
	StartDate string
	EndDate   string
	GroupBy   Granularity
}

// GetTrendStatisticsOutput represents the output of a trend series.
type GetTrendStatisticsOutput struct {
	Trend []TrendStat
}

// GetTrendStatisticsUseCase computes a period-bucketed trend series.
type GetTrendStatisticsUseCase struct {
	billRepo adapter.BillRepository
	access   *ledger.AccessChecker
}

// NewGetTrendStatisticsUseCase creates a new GetTrendStatisticsUseCase instance.
func NewGetTrendStatisticsUseCase(
	billRepo adapter.BillRepository,
	access *ledger.AccessChecker,
) *GetTrendStatisticsUseCase {
	return &GetTrendStatisticsUseCase{
		billRepo: billRepo,
		access:   access,
	}
}

// Execute validates the range, then buckets bills by the requested
// granularity.
func (uc *GetTrendStatisticsUseCase) Execute(ctx context.Context, input GetTrendStatisticsInput) (*GetTrendStatisticsOutput, error) {
	if _, err := uc.access.Authorize(ctx, input.LedgerID, input.UserID); err != nil {
		return nil, err
	}

	start, end, err := parseRequiredRange(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	filter := adapter.BillFilter{
		LedgerID:  input.LedgerID,
		StartDate: &start,
		EndDate:   &end,
	}
	bills, err := uc.billRepo.FindAllByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to load bills: %w", err)
	}

	return &GetTrendStatisticsOutput{Trend: trendSeries(bills, input.GroupBy)}, nil
}

// parseRequiredRange parses the mandatory start/end pair for the daily and
// trend paths.
func parseRequiredRange(startStr, endStr string) (start, end time.Time, err error) {
	if startStr == "" || endStr == "" {
		return start, end, domainerror.NewStatisticsError(
			domainerror.ErrCodeMissingStatisticsRange,
			"start_date and end_date are required",
			domainerror.ErrMissingStatisticsRange,
		)
	}
	start, err = time.Parse(dateLayout, startStr)
	if err != nil {
		return start, end, domainerror.NewStatisticsError(
			domainerror.ErrCodeInvalidStatisticsDate,
			"invalid start_date format, expected YYYY-MM-DD",
			domainerror.ErrInvalidStatisticsDate,
		)
	}
	end, err = time.Parse(dateLayout, endStr)
	if err != nil {
		return start, end, domainerror.NewStatisticsError(
			domainerror.ErrCodeInvalidStatisticsDate,
			"invalid end_date format, expected YYYY-MM-DD",
			domainerror.ErrInvalidStatisticsDate,
		)
	}
	return start, end, nil
}

// Package bill contains bill-related use cases.
package bill

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerbook/backend/internal/application/adapter"
	"github.com/ledgerbook/backend/internal/application/usecase/ledger"
	"github.com/ledgerbook/backend/internal/domain/entity"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ListBillsInput represents the input for a paginated bill listing. Optional
// filters are nil or empty when absent; malformed dates are treated as
// absent.
type ListBillsInput struct {
	UserID     uuid.UUID
	LedgerID   uuid.UUID
	StartDate  string
	EndDate    string
	Type       *string
	CategoryID *uuid.UUID
	CreatorID  *uuid.UUID
	Page       int
	PageSize   int
}

// ListBillsOutput represents one page of bills.
type ListBillsOutput struct {
	Bills      []*entity.Bill
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

// ListBillsUseCase handles paginated bill listing.
type ListBillsUseCase struct {
	billRepo adapter.BillRepository
	access   *ledger.AccessChecker
}

// NewListBillsUseCase creates a new ListBillsUseCase instance.
func NewListBillsUseCase(billRepo adapter.BillRepository, access *ledger.AccessChecker) *ListBillsUseCase {
	return &ListBillsUseCase{
		billRepo: billRepo,
		access:   access,
	}
}

// Execute lists one page of bills, newest bill date first.
func (uc *ListBillsUseCase) Execute(ctx context.Context, input ListBillsInput) (*ListBillsOutput, error) {
	if _, err := uc.access.Authorize(ctx, input.LedgerID, input.UserID); err != nil {
		return nil, err
	}

	filter := adapter.BillFilter{
		LedgerID:   input.LedgerID,
		StartDate:  parseOptionalDate(input.StartDate),
		EndDate:    parseOptionalDate(input.EndDate),
		CategoryID: input.CategoryID,
		UserID:     input.CreatorID,
	}
	if input.Type != nil {
		billType := entity.BillType(*input.Type)
		if billType == entity.BillTypeIncome || billType == entity.BillTypeExpense {
			filter.Type = &billType
		}
	}

	pagination := adapter.BillPagination{
		Page:     input.Page,
		PageSize: input.PageSize,
	}
	if pagination.Page < 1 {
		pagination.Page = 1
	}
	if pagination.PageSize < 1 {
		pagination.PageSize = defaultPageSize
	}
	if pagination.PageSize > maxPageSize {
		pagination.PageSize = maxPageSize
	}

	result, err := uc.billRepo.FindByFilter(ctx, filter, pagination)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}

	return &ListBillsOutput{
		Bills:      result.Bills,
		Total:      result.Total,
		Page:       result.Page,
		PageSize:   result.PageSize,
		TotalPages: result.TotalPages,
	}, nil
}

// parseOptionalDate parses an optional wire date, treating empty or
// malformed input as absent.
func parseOptionalDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	parsed, err := time.Parse(billDateLayout, s)
	if err != nil {
		return nil
	}
	return &parsed
}

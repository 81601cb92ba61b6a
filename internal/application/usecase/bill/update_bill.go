// Package bill contains bill-related use cases.
package bill

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerbook/backend/internal/application/adapter"
	"github.com/ledgerbook/backend/internal/application/usecase/ledger"
	"github.com/ledgerbook/backend/internal/domain/entity"
	domainerror "github.com/ledgerbook/backend/internal/domain/error"
)

// UpdateBillInput represents the input for a bill update. Nil fields are
// left unchanged.
type UpdateBillInput struct {
	UserID     uuid.UUID
	BillID     uuid.UUID
	CategoryID *uuid.UUID
	Type       *string
	Amount     *string
	Note       *string
	BillDate   *string
}

// UpdateBillOutput represents the output of a bill update.
type UpdateBillOutput struct {
	Bill *entity.Bill
}

// UpdateBillUseCase handles bill updates. Only the creator may modify a
// bill, even in a shared group ledger.
type UpdateBillUseCase struct {
	billRepo     adapter.BillRepository
	categoryRepo adapter.CategoryRepository
	access       *ledger.AccessChecker
}

// NewUpdateBillUseCase creates a new UpdateBillUseCase instance.
func NewUpdateBillUseCase(
	billRepo adapter.BillRepository,
	categoryRepo adapter.CategoryRepository,
	access *ledger.AccessChecker,
) *UpdateBillUseCase {
	return &UpdateBillUseCase{
		billRepo:     billRepo,
		categoryRepo: categoryRepo,
		access:       access,
	}
}

// Execute applies the requested bill changes.
func (uc *UpdateBillUseCase) Execute(ctx context.Context, input UpdateBillInput) (*UpdateBillOutput, error) {
	bill, err := uc.billRepo.FindByID(ctx, input.BillID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBillNotFound) {
			return nil, domainerror.NewBillError(
				domainerror.ErrCodeBillNotFound,
				"bill not found",
				domainerror.ErrBillNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load bill: %w", err)
	}

	if _, err := uc.access.Authorize(ctx, bill.LedgerID, input.UserID); err != nil {
		return nil, err
	}
	if bill.UserID != input.UserID {
		return nil, domainerror.NewBillError(
			domainerror.ErrCodeNotBillCreator,
			"only the bill creator can modify it",
			domainerror.ErrNotBillCreator,
		)
	}

	if input.Type != nil {
		billType := entity.BillType(*input.Type)
		if billType != entity.BillTypeIncome && billType != entity.BillTypeExpense {
			return nil, domainerror.NewBillError(
				domainerror.ErrCodeInvalidBillType,
				"bill type must be income or expense",
				domainerror.ErrInvalidBillType,
			)
		}
		bill.Type = billType
	}

	if input.Amount != nil {
		amount, err := decimal.NewFromString(*input.Amount)
		if err != nil || !amount.IsPositive() {
			return nil, domainerror.NewBillError(
				domainerror.ErrCodeInvalidBillAmount,
				"bill amount must be a positive number",
				domainerror.ErrInvalidBillAmount,
			)
		}
		bill.Amount = amount
	}

	if input.BillDate != nil {
		billDate, err := time.Parse(billDateLayout, *input.BillDate)
		if err != nil {
			return nil, domainerror.NewBillError(
				domainerror.ErrCodeInvalidBillDate,
				"invalid bill date format, expected YYYY-MM-DD",
				domainerror.ErrInvalidBillDate,
			)
		}
		bill.BillDate = billDate
	}

	if input.CategoryID != nil {
		bill.CategoryID = *input.CategoryID
	}
	if input.Note != nil {
		bill.Note = *input.Note
	}

	// Re-check the category against the possibly-changed type
	if input.CategoryID != nil || input.Type != nil {
		category, err := uc.categoryRepo.FindByID(ctx, bill.CategoryID)
		if err != nil {
			if errors.Is(err, domainerror.ErrCategoryNotFound) {
				return nil, domainerror.NewBillError(
					domainerror.ErrCodeBillCategoryNotFound,
					"category not found",
					domainerror.ErrBillCategoryNotFound,
				)
			}
			return nil, fmt.Errorf("failed to load category: %w", err)
		}
		if category.Type != bill.Type {
			return nil, domainerror.NewBillError(
				domainerror.ErrCodeBillCategoryTypeMismatch,
				"category type does not match bill type",
				domainerror.ErrBillCategoryTypeMismatch,
			)
		}
	}

	bill.UpdatedAt = time.Now().UTC()
	if err := uc.billRepo.Update(ctx, bill); err != nil {
		return nil, fmt.Errorf("failed to update bill: %w", err)
	}

	return &UpdateBillOutput{Bill: bill}, nil
}

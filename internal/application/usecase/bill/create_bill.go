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

// billDateLayout is the wire format for bill dates.
const billDateLayout = "2006-01-02"

// CreateBillInput represents the input for bill creation. Amount and
// BillDate carry the raw wire strings; parsing belongs to this use case.
type CreateBillInput struct {
	UserID     uuid.UUID
	LedgerID   uuid.UUID
	CategoryID uuid.UUID
	Type       string
	Amount     string
	Note       string
	BillDate   string
}

// CreateBillOutput represents the output of bill creation.
type CreateBillOutput struct {
	Bill *entity.Bill
}

// CreateBillUseCase handles bill creation logic.
type CreateBillUseCase struct {
	billRepo     adapter.BillRepository
	categoryRepo adapter.CategoryRepository
	access       *ledger.AccessChecker
}

// NewCreateBillUseCase creates a new CreateBillUseCase instance.
func NewCreateBillUseCase(
	billRepo adapter.BillRepository,
	categoryRepo adapter.CategoryRepository,
	access *ledger.AccessChecker,
) *CreateBillUseCase {
	return &CreateBillUseCase{
		billRepo:     billRepo,
		categoryRepo: categoryRepo,
		access:       access,
	}
}

// Execute performs the bill creation.
func (uc *CreateBillUseCase) Execute(ctx context.Context, input CreateBillInput) (*CreateBillOutput, error) {
	if _, err := uc.access.Authorize(ctx, input.LedgerID, input.UserID); err != nil {
		return nil, err
	}

	billType, amount, billDate, err := parseBillFields(input.Type, input.Amount, input.BillDate)
	if err != nil {
		return nil, err
	}

	// The category must exist and carry the same type as the bill
	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
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
	if category.Type != billType {
		return nil, domainerror.NewBillError(
			domainerror.ErrCodeBillCategoryTypeMismatch,
			"category type does not match bill type",
			domainerror.ErrBillCategoryTypeMismatch,
		)
	}

	bill := entity.NewBill(input.LedgerID, input.CategoryID, input.UserID, billType, amount, input.Note, billDate)
	if err := uc.billRepo.Create(ctx, bill); err != nil {
		return nil, fmt.Errorf("failed to create bill: %w", err)
	}

	return &CreateBillOutput{Bill: bill}, nil
}

// parseBillFields validates and parses the wire type, amount, and date.
func parseBillFields(typeStr, amountStr, dateStr string) (entity.BillType, decimal.Decimal, time.Time, error) {
	var zero decimal.Decimal

	billType := entity.BillType(typeStr)
	if billType != entity.BillTypeIncome && billType != entity.BillTypeExpense {
		return "", zero, time.Time{}, domainerror.NewBillError(
			domainerror.ErrCodeInvalidBillType,
			"bill type must be income or expense",
			domainerror.ErrInvalidBillType,
		)
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil || !amount.IsPositive() {
		return "", zero, time.Time{}, domainerror.NewBillError(
			domainerror.ErrCodeInvalidBillAmount,
			"bill amount must be a positive number",
			domainerror.ErrInvalidBillAmount,
		)
	}

	billDate, err := time.Parse(billDateLayout, dateStr)
	if err != nil {
		return "", zero, time.Time{}, domainerror.NewBillError(
			domainerror.ErrCodeInvalidBillDate,
			"invalid bill date format, expected YYYY-MM-DD",
			domainerror.ErrInvalidBillDate,
		)
	}

	return billType, amount, billDate, nil
}

// Package bill contains bill-related use cases.
package bill

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ledgerbook/backend/internal/application/adapter"
	"github.com/ledgerbook/backend/internal/application/usecase/ledger"
	"github.com/ledgerbook/backend/internal/domain/entity"
	domainerror "github.com/ledgerbook/backend/internal/domain/error"
)

// GetBillInput represents the input for fetching one bill.
type GetBillInput struct {
	UserID uuid.UUID
	BillID uuid.UUID
}

// GetBillOutput represents the output of fetching one bill.
type GetBillOutput struct {
	Bill *entity.Bill
}

// GetBillUseCase handles single-bill retrieval. Access follows the ledger:
// any user who can read the ledger can read its bills.
type GetBillUseCase struct {
	billRepo adapter.BillRepository
	access   *ledger.AccessChecker
}

// NewGetBillUseCase creates a new GetBillUseCase instance.
func NewGetBillUseCase(billRepo adapter.BillRepository, access *ledger.AccessChecker) *GetBillUseCase {
	return &GetBillUseCase{
		billRepo: billRepo,
		access:   access,
	}
}

// Execute retrieves the bill when the caller may access its ledger.
func (uc *GetBillUseCase) Execute(ctx context.Context, input GetBillInput) (*GetBillOutput, error) {
	bill, err := uc.loadBill(ctx, input.BillID)
	if err != nil {
		return nil, err
	}

	if _, err := uc.access.Authorize(ctx, bill.LedgerID, input.UserID); err != nil {
		return nil, err
	}

	return &GetBillOutput{Bill: bill}, nil
}

func (uc *GetBillUseCase) loadBill(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	bill, err := uc.billRepo.FindByID(ctx, id)
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
	return bill, nil
}

// Package bill contains bill-related use cases.
package bill

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ledgerbook/backend/internal/application/adapter"
	"github.com/ledgerbook/backend/internal/application/usecase/ledger"
	domainerror "github.com/ledgerbook/backend/internal/domain/error"
)

// DeleteBillInput represents the input for bill deletion.
type DeleteBillInput struct {
	UserID uuid.UUID
	BillID uuid.UUID
}

// DeleteBillOutput represents the output of bill deletion.
type DeleteBillOutput struct {
	Message string
}

// DeleteBillUseCase handles bill deletion. Only the creator may delete a
// bill.
type DeleteBillUseCase struct {
	billRepo adapter.BillRepository
	access   *ledger.AccessChecker
}

// NewDeleteBillUseCase creates a new DeleteBillUseCase instance.
func NewDeleteBillUseCase(billRepo adapter.BillRepository, access *ledger.AccessChecker) *DeleteBillUseCase {
	return &DeleteBillUseCase{
		billRepo: billRepo,
		access:   access,
	}
}

// Execute performs the bill deletion.
func (uc *DeleteBillUseCase) Execute(ctx context.Context, input DeleteBillInput) (*DeleteBillOutput, error) {
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
			"only the bill creator can delete it",
			domainerror.ErrNotBillCreator,
		)
	}

	if err := uc.billRepo.Delete(ctx, input.BillID); err != nil {
		return nil, fmt.Errorf("failed to delete bill: %w", err)
	}

	return &DeleteBillOutput{Message: "Bill deleted successfully"}, nil
}

// Package ledger contains ledger-related use cases.
package ledger

import (
	"context"

	"github.com/google/uuid"

	"github.com/ledgerbook/backend/internal/domain/entity"
)

// GetLedgerInput represents the input for fetching one ledger.
type GetLedgerInput struct {
	UserID   uuid.UUID
	LedgerID uuid.UUID
}

// GetLedgerOutput represents the output of fetching one ledger.
type GetLedgerOutput struct {
	Ledger *entity.Ledger
}

// GetLedgerUseCase handles single-ledger retrieval.
type GetLedgerUseCase struct {
	access *AccessChecker
}

// NewGetLedgerUseCase creates a new GetLedgerUseCase instance.
func NewGetLedgerUseCase(access *AccessChecker) *GetLedgerUseCase {
	return &GetLedgerUseCase{
		access: access,
	}
}

// Execute retrieves the ledger when the caller may access it.
func (uc *GetLedgerUseCase) Execute(ctx context.Context, input GetLedgerInput) (*GetLedgerOutput, error) {
	ledger, err := uc.access.Authorize(ctx, input.LedgerID, input.UserID)
	if err != nil {
		return nil, err
	}
	return &GetLedgerOutput{Ledger: ledger}, nil
}

// Package ledger contains ledger-related use cases.
package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerbook/backend/internal/application/adapter"
	"github.com/ledgerbook/backend/internal/domain/entity"
	domainerror "github.com/ledgerbook/backend/internal/domain/error"
)

// UpdateLedgerInput represents the input for a ledger update. Nil fields are
// left unchanged.
type UpdateLedgerInput struct {
	UserID      uuid.UUID
	LedgerID    uuid.UUID
	Name        *string
	Description *string
	Currency    *string
}

// UpdateLedgerOutput represents the output of a ledger update.
type UpdateLedgerOutput struct {
	Ledger *entity.Ledger
}

// UpdateLedgerUseCase handles ledger updates.
type UpdateLedgerUseCase struct {
	ledgerRepo adapter.LedgerRepository
	access     *AccessChecker
}

// NewUpdateLedgerUseCase creates a new UpdateLedgerUseCase instance.
func NewUpdateLedgerUseCase(ledgerRepo adapter.LedgerRepository, access *AccessChecker) *UpdateLedgerUseCase {
	return &UpdateLedgerUseCase{
		ledgerRepo: ledgerRepo,
		access:     access,
	}
}

// Execute applies the requested ledger changes.
func (uc *UpdateLedgerUseCase) Execute(ctx context.Context, input UpdateLedgerInput) (*UpdateLedgerOutput, error) {
	ledger, err := uc.access.Authorize(ctx, input.LedgerID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeLedgerNameRequired,
				"ledger name is required",
				domainerror.ErrLedgerNameRequired,
			)
		}
		ledger.Name = name
	}
	if input.Description != nil {
		ledger.Description = input.Description
	}
	if input.Currency != nil && *input.Currency != "" {
		ledger.Currency = *input.Currency
	}
	ledger.UpdatedAt = time.Now().UTC()

	if err := uc.ledgerRepo.Update(ctx, ledger); err != nil {
		return nil, fmt.Errorf("failed to update ledger: %w", err)
	}

	return &UpdateLedgerOutput{Ledger: ledger}, nil
}

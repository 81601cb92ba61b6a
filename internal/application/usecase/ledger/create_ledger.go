// Package ledger contains ledger-related use cases.
package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ledgerbook/backend/internal/application/adapter"
	"github.com/ledgerbook/backend/internal/domain/entity"
	domainerror "github.com/ledgerbook/backend/internal/domain/error"
)

// CreateLedgerInput represents the input for ledger creation. GroupID is nil
// for a personal ledger.
type CreateLedgerInput struct {
	UserID      uuid.UUID
	Name        string
	Description *string
	Currency    string
	GroupID     *uuid.UUID
}

// CreateLedgerOutput represents the output of ledger creation.
type CreateLedgerOutput struct {
	Ledger *entity.Ledger
}

// CreateLedgerUseCase handles ledger creation. A group ledger requires the
// caller to be a member of the owning group.
type CreateLedgerUseCase struct {
	ledgerRepo adapter.LedgerRepository
	groupRepo  adapter.GroupRepository
}

// NewCreateLedgerUseCase creates a new CreateLedgerUseCase instance.
func NewCreateLedgerUseCase(ledgerRepo adapter.LedgerRepository, groupRepo adapter.GroupRepository) *CreateLedgerUseCase {
	return &CreateLedgerUseCase{
		ledgerRepo: ledgerRepo,
		groupRepo:  groupRepo,
	}
}

// Execute performs the ledger creation.
func (uc *CreateLedgerUseCase) Execute(ctx context.Context, input CreateLedgerInput) (*CreateLedgerOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeLedgerNameRequired,
			"ledger name is required",
			domainerror.ErrLedgerNameRequired,
		)
	}

	var ledger *entity.Ledger
	if input.GroupID != nil {
		member, err := uc.groupRepo.GetMember(ctx, *input.GroupID, input.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to check group membership: %w", err)
		}
		if member == nil {
			return nil, domainerror.NewGroupError(
				domainerror.ErrCodeNotGroupMember,
				"not a member of this group",
				domainerror.ErrNotGroupMember,
			)
		}
		ledger = entity.NewGroupLedger(name, *input.GroupID, input.Currency)
	} else {
		ledger = entity.NewPersonalLedger(name, input.UserID, input.Currency)
	}
	ledger.Description = input.Description

	if err := uc.ledgerRepo.Create(ctx, ledger); err != nil {
		return nil, fmt.Errorf("failed to create ledger: %w", err)
	}

	return &CreateLedgerOutput{Ledger: ledger}, nil
}

// Package ledger contains ledger-related use cases.
package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ledgerbook/backend/internal/application/adapter"
	"github.com/ledgerbook/backend/internal/domain/entity"
	domainerror "github.com/ledgerbook/backend/internal/domain/error"
)

// DeleteLedgerInput represents the input for ledger deletion.
type DeleteLedgerInput struct {
	UserID   uuid.UUID
	LedgerID uuid.UUID
}

// DeleteLedgerOutput represents the output of ledger deletion.
type DeleteLedgerOutput struct {
	Message string
}

// DeleteLedgerUseCase handles ledger deletion. Deleting a group ledger is
// restricted to the group's owner and admins; plain members can only read
// and write bills.
type DeleteLedgerUseCase struct {
	ledgerRepo adapter.LedgerRepository
	groupRepo  adapter.GroupRepository
	access     *AccessChecker
}

// NewDeleteLedgerUseCase creates a new DeleteLedgerUseCase instance.
func NewDeleteLedgerUseCase(
	ledgerRepo adapter.LedgerRepository,
	groupRepo adapter.GroupRepository,
	access *AccessChecker,
) *DeleteLedgerUseCase {
	return &DeleteLedgerUseCase{
		ledgerRepo: ledgerRepo,
		groupRepo:  groupRepo,
		access:     access,
	}
}

// Execute performs the ledger deletion.
func (uc *DeleteLedgerUseCase) Execute(ctx context.Context, input DeleteLedgerInput) (*DeleteLedgerOutput, error) {
	ledger, err := uc.access.Authorize(ctx, input.LedgerID, input.UserID)
	if err != nil {
		return nil, err
	}

	if ledger.Type == entity.LedgerTypeGroup && ledger.GroupID != nil {
		member, err := uc.groupRepo.GetMember(ctx, *ledger.GroupID, input.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to check group membership: %w", err)
		}
		if member == nil || (member.Role != entity.GroupRoleOwner && member.Role != entity.GroupRoleAdmin) {
			return nil, domainerror.NewGroupError(
				domainerror.ErrCodeGroupPermissionDenied,
				"only the group owner or an admin may delete a group ledger",
				domainerror.ErrGroupPermissionDenied,
			)
		}
	}

	if err := uc.ledgerRepo.Delete(ctx, input.LedgerID); err != nil {
		return nil, fmt.Errorf("failed to delete ledger: %w", err)
	}

	return &DeleteLedgerOutput{Message: "Ledger deleted successfully"}, nil
}

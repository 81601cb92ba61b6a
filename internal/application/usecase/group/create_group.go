// Package group contains group membership use cases.
package group

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ledgerbook/backend/internal/application/adapter"
	"github.com/ledgerbook/backend/internal/domain/entity"
	domainerror "github.com/ledgerbook/backend/internal/domain/error"
)

// defaultGroupLedgerName is the name of the shared ledger created with every
// new group.
const defaultGroupLedgerName = "Shared Ledger"

// CreateGroupInput represents the input for group creation.
type CreateGroupInput struct {
	UserID      uuid.UUID
	Name        string
	Description *string
}

// CreateGroupOutput represents the output of group creation.
type CreateGroupOutput struct {
	Group  *entity.Group
	Ledger *entity.Ledger
}

// CreateGroupUseCase handles group creation. The creator becomes the owner,
// and the group starts with one shared ledger so members can record bills
// immediately.
type CreateGroupUseCase struct {
	groupRepo  adapter.GroupRepository
	ledgerRepo adapter.LedgerRepository
}

// NewCreateGroupUseCase creates a new CreateGroupUseCase instance.
func NewCreateGroupUseCase(groupRepo adapter.GroupRepository, ledgerRepo adapter.LedgerRepository) *CreateGroupUseCase {
	return &CreateGroupUseCase{
		groupRepo:  groupRepo,
		ledgerRepo: ledgerRepo,
	}
}

// Execute performs the group creation.
func (uc *CreateGroupUseCase) Execute(ctx context.Context, input CreateGroupInput) (*CreateGroupOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewGroupError(
			domainerror.ErrCodeGroupNameRequired,
			"group name is required",
			domainerror.ErrGroupNameRequired,
		)
	}

	group := entity.NewGroup(name, input.Description, input.UserID)
	if err := uc.groupRepo.Create(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	owner := entity.NewGroupMember(group.ID, input.UserID, entity.GroupRoleOwner)
	if err := uc.groupRepo.AddMember(ctx, owner); err != nil {
		return nil, fmt.Errorf("failed to add owner membership: %w", err)
	}

	ledger := entity.NewGroupLedger(defaultGroupLedgerName, group.ID, "")
	if err := uc.ledgerRepo.Create(ctx, ledger); err != nil {
		return nil, fmt.Errorf("failed to create group ledger: %w", err)
	}

	return &CreateGroupOutput{Group: group, Ledger: ledger}, nil
}

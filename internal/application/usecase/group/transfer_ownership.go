// Package group contains group membership use cases.
package group

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerbook/backend/internal/application/adapter"
	"github.com/ledgerbook/backend/internal/domain/entity"
	domainerror "github.com/ledgerbook/backend/internal/domain/error"
)

// TransferOwnershipInput represents the input for an ownership transfer.
type TransferOwnershipInput struct {
	UserID       uuid.UUID // Caller, must be the current owner
	GroupID      uuid.UUID
	TargetUserID uuid.UUID // New owner, must already be a member
}

// TransferOwnershipOutput represents the output of an ownership transfer.
type TransferOwnershipOutput struct {
	Group *entity.Group
}

// TransferOwnershipUseCase handles moving group ownership to another member.
// The previous owner stays in the group as an admin.
type TransferOwnershipUseCase struct {
	groupRepo adapter.GroupRepository
}

// NewTransferOwnershipUseCase creates a new TransferOwnershipUseCase instance.
func NewTransferOwnershipUseCase(groupRepo adapter.GroupRepository) *TransferOwnershipUseCase {
	return &TransferOwnershipUseCase{
		groupRepo: groupRepo,
	}
}

// Execute performs the transfer.
func (uc *TransferOwnershipUseCase) Execute(ctx context.Context, input TransferOwnershipInput) (*TransferOwnershipOutput, error) {
	group, err := loadGroup(ctx, uc.groupRepo, input.GroupID)
	if err != nil {
		return nil, err
	}
	if group.OwnerID != input.UserID {
		return nil, domainerror.NewGroupError(
			domainerror.ErrCodeGroupPermissionDenied,
			"only the owner may transfer ownership",
			domainerror.ErrGroupPermissionDenied,
		)
	}

	target, err := uc.groupRepo.GetMember(ctx, input.GroupID, input.TargetUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check group membership: %w", err)
	}
	if target == nil {
		return nil, domainerror.NewGroupError(
			domainerror.ErrCodeTransferTargetNotMember,
			"new owner must be a group member",
			domainerror.ErrTransferTargetNotMember,
		)
	}

	// Promote the target, demote the caller, then move the owner pointer
	if err := uc.groupRepo.UpdateMemberRole(ctx, input.GroupID, input.TargetUserID, entity.GroupRoleOwner); err != nil {
		return nil, fmt.Errorf("failed to promote new owner: %w", err)
	}
	if err := uc.groupRepo.UpdateMemberRole(ctx, input.GroupID, input.UserID, entity.GroupRoleAdmin); err != nil {
		return nil, fmt.Errorf("failed to demote previous owner: %w", err)
	}

	group.OwnerID = input.TargetUserID
	group.UpdatedAt = time.Now().UTC()
	if err := uc.groupRepo.Update(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to update group: %w", err)
	}

	return &TransferOwnershipOutput{Group: group}, nil
}

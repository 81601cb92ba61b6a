// Package group contains group membership use cases.
package group

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ledgerbook/backend/internal/application/adapter"
	"github.com/ledgerbook/backend/internal/domain/entity"
	domainerror "github.com/ledgerbook/backend/internal/domain/error"
)

// RemoveMemberInput represents the input for removing a member from a group.
type RemoveMemberInput struct {
	UserID       uuid.UUID // Caller
	GroupID      uuid.UUID
	TargetUserID uuid.UUID // Member being removed
}

// RemoveMemberOutput represents the output of removing a member.
type RemoveMemberOutput struct {
	Message string
}

// RemoveMemberUseCase handles involuntary member removal. The owner may
// remove anyone but themselves; admins may remove plain members only.
type RemoveMemberUseCase struct {
	groupRepo adapter.GroupRepository
}

// NewRemoveMemberUseCase creates a new RemoveMemberUseCase instance.
func NewRemoveMemberUseCase(groupRepo adapter.GroupRepository) *RemoveMemberUseCase {
	return &RemoveMemberUseCase{
		groupRepo: groupRepo,
	}
}

// Execute performs the removal.
func (uc *RemoveMemberUseCase) Execute(ctx context.Context, input RemoveMemberInput) (*RemoveMemberOutput, error) {
	if _, err := loadGroup(ctx, uc.groupRepo, input.GroupID); err != nil {
		return nil, err
	}

	caller, err := requireManager(ctx, uc.groupRepo, input.GroupID, input.UserID)
	if err != nil {
		return nil, err
	}

	target, err := requireMember(ctx, uc.groupRepo, input.GroupID, input.TargetUserID)
	if err != nil {
		return nil, err
	}

	if target.Role == entity.GroupRoleOwner {
		return nil, domainerror.NewGroupError(
			domainerror.ErrCodeCannotRemoveOwner,
			"the group owner cannot be removed",
			domainerror.ErrCannotRemoveOwner,
		)
	}
	if caller.Role == entity.GroupRoleAdmin && target.Role == entity.GroupRoleAdmin {
		return nil, domainerror.NewGroupError(
			domainerror.ErrCodeGroupPermissionDenied,
			"admins cannot remove other admins",
			domainerror.ErrGroupPermissionDenied,
		)
	}

	if err := uc.groupRepo.RemoveMember(ctx, input.GroupID, input.TargetUserID); err != nil {
		return nil, fmt.Errorf("failed to remove membership: %w", err)
	}

	return &RemoveMemberOutput{Message: "Member removed successfully"}, nil
}

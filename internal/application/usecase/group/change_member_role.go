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

// ChangeMemberRoleInput represents the input for a role change. Only admin
// and member are assignable; ownership moves through the transfer operation.
type ChangeMemberRoleInput struct {
	UserID       uuid.UUID // Caller, must be the owner
	GroupID      uuid.UUID
	TargetUserID uuid.UUID
	Role         string
}

// ChangeMemberRoleOutput represents the output of a role change.
type ChangeMemberRoleOutput struct {
	Member *entity.GroupMember
}

// ChangeMemberRoleUseCase handles promoting and demoting members between
// admin and member.
type ChangeMemberRoleUseCase struct {
	groupRepo adapter.GroupRepository
}

// NewChangeMemberRoleUseCase creates a new ChangeMemberRoleUseCase instance.
func NewChangeMemberRoleUseCase(groupRepo adapter.GroupRepository) *ChangeMemberRoleUseCase {
	return &ChangeMemberRoleUseCase{
		groupRepo: groupRepo,
	}
}

// Execute performs the role change.
func (uc *ChangeMemberRoleUseCase) Execute(ctx context.Context, input ChangeMemberRoleInput) (*ChangeMemberRoleOutput, error) {
	role := entity.GroupRole(input.Role)
	if role != entity.GroupRoleAdmin && role != entity.GroupRoleMember {
		return nil, domainerror.NewGroupError(
			domainerror.ErrCodeInvalidGroupRole,
			"role must be admin or member",
			domainerror.ErrInvalidGroupRole,
		)
	}

	group, err := loadGroup(ctx, uc.groupRepo, input.GroupID)
	if err != nil {
		return nil, err
	}
	if group.OwnerID != input.UserID {
		return nil, domainerror.NewGroupError(
			domainerror.ErrCodeGroupPermissionDenied,
			"only the owner may change member roles",
			domainerror.ErrGroupPermissionDenied,
		)
	}

	target, err := requireMember(ctx, uc.groupRepo, input.GroupID, input.TargetUserID)
	if err != nil {
		return nil, err
	}
	if target.Role == entity.GroupRoleOwner {
		return nil, domainerror.NewGroupError(
			domainerror.ErrCodeGroupPermissionDenied,
			"the owner's role cannot be changed here",
			domainerror.ErrGroupPermissionDenied,
		)
	}

	if err := uc.groupRepo.UpdateMemberRole(ctx, input.GroupID, input.TargetUserID, role); err != nil {
		return nil, fmt.Errorf("failed to update member role: %w", err)
	}
	target.Role = role

	return &ChangeMemberRoleOutput{Member: target}, nil
}

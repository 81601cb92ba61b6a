// Package group contains group membership use cases.
package group

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ledgerbook/backend/internal/application/adapter"
	"github.com/ledgerbook/backend/internal/domain/entity"
	domainerror "github.com/ledgerbook/backend/internal/domain/error"
)

// JoinGroupInput represents the input for joining a group by invite code.
type JoinGroupInput struct {
	UserID     uuid.UUID
	InviteCode string
}

// JoinGroupOutput represents the output of joining a group.
type JoinGroupOutput struct {
	Group  *entity.Group
	Member *entity.GroupMember
}

// JoinGroupUseCase handles joining a group. New members always join with the
// member role.
type JoinGroupUseCase struct {
	groupRepo adapter.GroupRepository
}

// NewJoinGroupUseCase creates a new JoinGroupUseCase instance.
func NewJoinGroupUseCase(groupRepo adapter.GroupRepository) *JoinGroupUseCase {
	return &JoinGroupUseCase{
		groupRepo: groupRepo,
	}
}

// Execute performs the join.
func (uc *JoinGroupUseCase) Execute(ctx context.Context, input JoinGroupInput) (*JoinGroupOutput, error) {
	code := strings.ToUpper(strings.TrimSpace(input.InviteCode))

	group, err := uc.groupRepo.FindByInviteCode(ctx, code)
	if err != nil {
		if errors.Is(err, domainerror.ErrGroupNotFound) {
			return nil, domainerror.NewGroupError(
				domainerror.ErrCodeInvalidInviteCode,
				"invalid invite code",
				domainerror.ErrInvalidInviteCode,
			)
		}
		return nil, fmt.Errorf("failed to look up invite code: %w", err)
	}

	existing, err := uc.groupRepo.GetMember(ctx, group.ID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check group membership: %w", err)
	}
	if existing != nil {
		return nil, domainerror.NewGroupError(
			domainerror.ErrCodeAlreadyGroupMember,
			"already a member of this group",
			domainerror.ErrAlreadyGroupMember,
		)
	}

	member := entity.NewGroupMember(group.ID, input.UserID, entity.GroupRoleMember)
	if err := uc.groupRepo.AddMember(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to add membership: %w", err)
	}

	return &JoinGroupOutput{Group: group, Member: member}, nil
}

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

// LeaveGroupInput represents the input for leaving a group.
type LeaveGroupInput struct {
	UserID  uuid.UUID
	GroupID uuid.UUID
}

// LeaveGroupOutput represents the output of leaving a group.
type LeaveGroupOutput struct {
	Message string
}

// LeaveGroupUseCase handles voluntary departure from a group. The owner must
// transfer ownership before leaving.
type LeaveGroupUseCase struct {
	groupRepo adapter.GroupRepository
}

// NewLeaveGroupUseCase creates a new LeaveGroupUseCase instance.
func NewLeaveGroupUseCase(groupRepo adapter.GroupRepository) *LeaveGroupUseCase {
	return &LeaveGroupUseCase{
		groupRepo: groupRepo,
	}
}

// Execute performs the departure.
func (uc *LeaveGroupUseCase) Execute(ctx context.Context, input LeaveGroupInput) (*LeaveGroupOutput, error) {
	if _, err := loadGroup(ctx, uc.groupRepo, input.GroupID); err != nil {
		return nil, err
	}

	member, err := requireMember(ctx, uc.groupRepo, input.GroupID, input.UserID)
	if err != nil {
		return nil, err
	}
	if member.Role == entity.GroupRoleOwner {
		return nil, domainerror.NewGroupError(
			domainerror.ErrCodeOwnerCannotLeave,
			"owner cannot leave the group; transfer ownership first",
			domainerror.ErrOwnerCannotLeave,
		)
	}

	if err := uc.groupRepo.RemoveMember(ctx, input.GroupID, input.UserID); err != nil {
		return nil, fmt.Errorf("failed to remove membership: %w", err)
	}

	return &LeaveGroupOutput{Message: "Left the group successfully"}, nil
}

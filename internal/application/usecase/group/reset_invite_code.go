// Package group contains group membership use cases.
package group

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerbook/backend/internal/application/adapter"
	"github.com/ledgerbook/backend/internal/domain/entity"
)

// ResetInviteCodeInput represents the input for rotating a group's invite
// code.
type ResetInviteCodeInput struct {
	UserID  uuid.UUID
	GroupID uuid.UUID
}

// ResetInviteCodeOutput represents the output of rotating an invite code.
type ResetInviteCodeOutput struct {
	Group *entity.Group
}

// ResetInviteCodeUseCase handles invite code rotation, restricted to the
// owner and admins. The old code stops working immediately.
type ResetInviteCodeUseCase struct {
	groupRepo adapter.GroupRepository
}

// NewResetInviteCodeUseCase creates a new ResetInviteCodeUseCase instance.
func NewResetInviteCodeUseCase(groupRepo adapter.GroupRepository) *ResetInviteCodeUseCase {
	return &ResetInviteCodeUseCase{
		groupRepo: groupRepo,
	}
}

// Execute rotates the invite code.
func (uc *ResetInviteCodeUseCase) Execute(ctx context.Context, input ResetInviteCodeInput) (*ResetInviteCodeOutput, error) {
	group, err := loadGroup(ctx, uc.groupRepo, input.GroupID)
	if err != nil {
		return nil, err
	}

	if _, err := requireManager(ctx, uc.groupRepo, input.GroupID, input.UserID); err != nil {
		return nil, err
	}

	group.InviteCode = entity.GenerateInviteCode()
	group.UpdatedAt = time.Now().UTC()
	if err := uc.groupRepo.Update(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to update group: %w", err)
	}

	return &ResetInviteCodeOutput{Group: group}, nil
}

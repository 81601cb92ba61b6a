// Package group contains group membership use cases.
package group

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

// UpdateGroupInput represents the input for a group update. Nil fields are
// left unchanged.
type UpdateGroupInput struct {
	UserID      uuid.UUID
	GroupID     uuid.UUID
	Name        *string
	Description *string
}

// UpdateGroupOutput represents the output of a group update.
type UpdateGroupOutput struct {
	Group *entity.Group
}

// UpdateGroupUseCase handles group updates, restricted to the owner and
// admins.
type UpdateGroupUseCase struct {
	groupRepo adapter.GroupRepository
}

// NewUpdateGroupUseCase creates a new UpdateGroupUseCase instance.
func NewUpdateGroupUseCase(groupRepo adapter.GroupRepository) *UpdateGroupUseCase {
	return &UpdateGroupUseCase{
		groupRepo: groupRepo,
	}
}

// Execute applies the requested group changes.
func (uc *UpdateGroupUseCase) Execute(ctx context.Context, input UpdateGroupInput) (*UpdateGroupOutput, error) {
	group, err := loadGroup(ctx, uc.groupRepo, input.GroupID)
	if err != nil {
		return nil, err
	}

	if _, err := requireManager(ctx, uc.groupRepo, input.GroupID, input.UserID); err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewGroupError(
				domainerror.ErrCodeGroupNameRequired,
				"group name is required",
				domainerror.ErrGroupNameRequired,
			)
		}
		group.Name = name
	}
	if input.Description != nil {
		group.Description = input.Description
	}
	group.UpdatedAt = time.Now().UTC()

	if err := uc.groupRepo.Update(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to update group: %w", err)
	}

	return &UpdateGroupOutput{Group: group}, nil
}

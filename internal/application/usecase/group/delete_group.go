// Package group contains group membership use cases.
package group

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ledgerbook/backend/internal/application/adapter"
	domainerror "github.com/ledgerbook/backend/internal/domain/error"
)

// DeleteGroupInput represents the input for group deletion.
type DeleteGroupInput struct {
	UserID  uuid.UUID
	GroupID uuid.UUID
}

// DeleteGroupOutput represents the output of group deletion.
type DeleteGroupOutput struct {
	Message string
}

// DeleteGroupUseCase handles group deletion, restricted to the owner. The
// group's ledgers and memberships go with it.
type DeleteGroupUseCase struct {
	groupRepo adapter.GroupRepository
}

// NewDeleteGroupUseCase creates a new DeleteGroupUseCase instance.
func NewDeleteGroupUseCase(groupRepo adapter.GroupRepository) *DeleteGroupUseCase {
	return &DeleteGroupUseCase{
		groupRepo: groupRepo,
	}
}

// Execute performs the group deletion.
func (uc *DeleteGroupUseCase) Execute(ctx context.Context, input DeleteGroupInput) (*DeleteGroupOutput, error) {
	group, err := loadGroup(ctx, uc.groupRepo, input.GroupID)
	if err != nil {
		return nil, err
	}

	if group.OwnerID != input.UserID {
		return nil, domainerror.NewGroupError(
			domainerror.ErrCodeGroupPermissionDenied,
			"only the owner may delete the group",
			domainerror.ErrGroupPermissionDenied,
		)
	}

	if err := uc.groupRepo.Delete(ctx, input.GroupID); err != nil {
		return nil, fmt.Errorf("failed to delete group: %w", err)
	}

	return &DeleteGroupOutput{Message: "Group deleted successfully"}, nil
}

// Package group contains group membership use cases.
package group

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ledgerbook/backend/internal/application/adapter"
	"github.com/ledgerbook/backend/internal/domain/entity"
	domainerror "github.com/ledgerbook/backend/internal/domain/error"
)

// GetGroupInput represents the input for fetching one group.
type GetGroupInput struct {
	UserID  uuid.UUID
	GroupID uuid.UUID
}

// GetGroupOutput represents the output of fetching one group: its member
// list, its ledgers, and the caller's own role. The invite code is only
// exposed through this member-gated path, and only to owners and admins.
type GetGroupOutput struct {
	Group   *entity.Group
	Members []*entity.GroupMember
	Ledgers []*entity.Ledger
	MyRole  entity.GroupRole
}

// GetGroupUseCase handles single-group retrieval.
type GetGroupUseCase struct {
	groupRepo  adapter.GroupRepository
	ledgerRepo adapter.LedgerRepository
}

// NewGetGroupUseCase creates a new GetGroupUseCase instance.
func NewGetGroupUseCase(groupRepo adapter.GroupRepository, ledgerRepo adapter.LedgerRepository) *GetGroupUseCase {
	return &GetGroupUseCase{
		groupRepo:  groupRepo,
		ledgerRepo: ledgerRepo,
	}
}

// Execute retrieves the group when the caller is a member.
func (uc *GetGroupUseCase) Execute(ctx context.Context, input GetGroupInput) (*GetGroupOutput, error) {
	group, err := loadGroup(ctx, uc.groupRepo, input.GroupID)
	if err != nil {
		return nil, err
	}

	caller, err := requireMember(ctx, uc.groupRepo, input.GroupID, input.UserID)
	if err != nil {
		return nil, err
	}

	members, err := uc.groupRepo.GetMembers(ctx, input.GroupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	ledgers, err := uc.ledgerRepo.FindByGroup(ctx, input.GroupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list group ledgers: %w", err)
	}

	return &GetGroupOutput{
		Group:   group,
		Members: members,
		Ledgers: ledgers,
		MyRole:  caller.Role,
	}, nil
}

// loadGroup fetches a group, mapping the missing case to a coded error.
func loadGroup(ctx context.Context, repo adapter.GroupRepository, groupID uuid.UUID) (*entity.Group, error) {
	group, err := repo.FindByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGroupNotFound) {
			return nil, domainerror.NewGroupError(
				domainerror.ErrCodeGroupNotFound,
				"group not found",
				domainerror.ErrGroupNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load group: %w", err)
	}
	return group, nil
}

// requireMember returns the caller's membership or a coded error.
func requireMember(ctx context.Context, repo adapter.GroupRepository, groupID, userID uuid.UUID) (*entity.GroupMember, error) {
	member, err := repo.GetMember(ctx, groupID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check group membership: %w", err)
	}
	if member == nil {
		return nil, domainerror.NewGroupError(
			domainerror.ErrCodeNotGroupMember,
			"not a member of this group",
			domainerror.ErrNotGroupMember,
		)
	}
	return member, nil
}

// requireManager returns the caller's membership when their role is owner or
// admin.
func requireManager(ctx context.Context, repo adapter.GroupRepository, groupID, userID uuid.UUID) (*entity.GroupMember, error) {
	member, err := requireMember(ctx, repo, groupID, userID)
	if err != nil {
		return nil, err
	}
	if member.Role != entity.GroupRoleOwner && member.Role != entity.GroupRoleAdmin {
		return nil, domainerror.NewGroupError(
			domainerror.ErrCodeGroupPermissionDenied,
			"group role does not permit this operation",
			domainerror.ErrGroupPermissionDenied,
		)
	}
	return member, nil
}

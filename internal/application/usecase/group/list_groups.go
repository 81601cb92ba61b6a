// Package group contains group membership use cases.
package group

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ledgerbook/backend/internal/application/adapter"
	"github.com/ledgerbook/backend/internal/domain/entity"
)

// ListGroupsInput represents the input for listing the caller's groups.
type ListGroupsInput struct {
	UserID uuid.UUID
}

// GroupListItem is one group in a listing, annotated with its size and the
// caller's role in it.
type GroupListItem struct {
	Group       *entity.Group
	MemberCount int
	MyRole      entity.GroupRole
}

// ListGroupsOutput represents the output of listing groups.
type ListGroupsOutput struct {
	Items []*GroupListItem
}

// ListGroupsUseCase handles group listing.
type ListGroupsUseCase struct {
	groupRepo adapter.GroupRepository
}

// NewListGroupsUseCase creates a new ListGroupsUseCase instance.
func NewListGroupsUseCase(groupRepo adapter.GroupRepository) *ListGroupsUseCase {
	return &ListGroupsUseCase{
		groupRepo: groupRepo,
	}
}

// Execute lists every group the user belongs to, with member counts and the
// user's own role per group.
func (uc *ListGroupsUseCase) Execute(ctx context.Context, input ListGroupsInput) (*ListGroupsOutput, error) {
	groups, err := uc.groupRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}

	items := make([]*GroupListItem, 0, len(groups))
	for _, g := range groups {
		members, err := uc.groupRepo.GetMembers(ctx, g.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list members: %w", err)
		}

		item := &GroupListItem{Group: g, MemberCount: len(members)}
		for _, m := range members {
			if m.UserID == input.UserID {
				item.MyRole = m.Role
				break
			}
		}
		items = append(items, item)
	}

	return &ListGroupsOutput{Items: items}, nil
}

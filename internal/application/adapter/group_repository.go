// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/ledgerbook/backend/internal/domain/entity"
)

// GroupRepository defines the interface for group persistence operations.
type GroupRepository interface {
	// Create creates a new group in the database.
	Create(ctx context.Context, group *entity.Group) error

	// FindByID retrieves a group by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Group, error)

	// FindByInviteCode retrieves a group by its invite code.
	FindByInviteCode(ctx context.Context, code string) (*entity.Group, error)

	// FindByUser retrieves all groups the user is a member of.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Group, error)

	// Update updates an existing group in the database.
	Update(ctx context.Context, group *entity.Group) error

	// Delete removes a group and its memberships from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// AddMember adds a membership record.
	AddMember(ctx context.Context, member *entity.GroupMember) error

	// GetMember retrieves the membership of a user in a group, or nil when
	// the user is not a member.
	GetMember(ctx context.Context, groupID, userID uuid.UUID) (*entity.GroupMember, error)

	// GetMembers retrieves all memberships of a group.
	GetMembers(ctx context.Context, groupID uuid.UUID) ([]*entity.GroupMember, error)

	// UpdateMemberRole changes a member's role.
	UpdateMemberRole(ctx context.Context, groupID, userID uuid.UUID, role entity.GroupRole) error

	// RemoveMember deletes a membership record.
	RemoveMember(ctx context.Context, groupID, userID uuid.UUID) error
}

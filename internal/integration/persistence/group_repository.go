// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ledgerbook/backend/internal/application/adapter"
	"github.com/ledgerbook/backend/internal/domain/entity"
	domainerror "github.com/ledgerbook/backend/internal/domain/error"
	"github.com/ledgerbook/backend/internal/integration/persistence/model"
)

// groupRepository implements the adapter.GroupRepository interface.
type groupRepository struct {
	db *gorm.DB
}

// NewGroupRepository creates a new group repository instance.
func NewGroupRepository(db *gorm.DB) adapter.GroupRepository {
	return &groupRepository{
		db: db,
	}
}

// Create creates a new group in the database.
func (r *groupRepository) Create(ctx context.Context, group *entity.Group) error {
	groupModel := model.GroupFromEntity(group)
	result := r.db.WithContext(ctx).Create(groupModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a group by its ID.
func (r *groupRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Group, error) {
	var groupModel model.GroupModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&groupModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGroupNotFound
		}
		return nil, result.Error
	}
	return groupModel.ToEntity(), nil
}

// FindByInviteCode retrieves a group by its invite code.
func (r *groupRepository) FindByInviteCode(ctx context.Context, code string) (*entity.Group, error) {
	var groupModel model.GroupModel
	result := r.db.WithContext(ctx).Where("invite_code = ?", code).First(&groupModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGroupNotFound
		}
		return nil, result.Error
	}
	return groupModel.ToEntity(), nil
}

// FindByUser retrieves all groups the user is a member of.
func (r *groupRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Group, error) {
	var groupModels []model.GroupModel
	result := r.db.WithContext(ctx).
		Joins("JOIN group_members ON group_members.group_id = groups.id").
		Where("group_members.user_id = ?", userID).
		Order("groups.created_at ASC").
		Find(&groupModels)
	if result.Error != nil {
		return nil, result.Error
	}

	groups := make([]*entity.Group, len(groupModels))
	for i, gm := range groupModels {
		groups[i] = gm.ToEntity()
	}
	return groups, nil
}

// Update updates an existing group in the database.
func (r *groupRepository) Update(ctx context.Context, group *entity.Group) error {
	groupModel := model.GroupFromEntity(group)
	result := r.db.WithContext(ctx).Save(groupModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a group and its memberships from the database.
func (r *groupRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("group_id = ?", id).Delete(&model.GroupMemberModel{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.GroupModel{}).Error
	})
}

// AddMember adds a membership record.
func (r *groupRepository) AddMember(ctx context.Context, member *entity.GroupMember) error {
	memberModel := model.GroupMemberFromEntity(member)
	result := r.db.WithContext(ctx).Create(memberModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// GetMember retrieves the membership of a user in a group, or nil when the
// user is not a member.
func (r *groupRepository) GetMember(ctx context.Context, groupID, userID uuid.UUID) (*entity.GroupMember, error) {
	var memberModel model.GroupMemberModel
	result := r.db.WithContext(ctx).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		First(&memberModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return memberModel.ToEntity(), nil
}

// GetMembers retrieves all memberships of a group, owner first, then by join
// time.
func (r *groupRepository) GetMembers(ctx context.Context, groupID uuid.UUID) ([]*entity.GroupMember, error) {
	var memberModels []model.GroupMemberModel
	result := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("joined_at ASC").
		Find(&memberModels)
	if result.Error != nil {
		return nil, result.Error
	}

	members := make([]*entity.GroupMember, len(memberModels))
	for i, mm := range memberModels {
		members[i] = mm.ToEntity()
	}
	return members, nil
}

// UpdateMemberRole changes a member's role.
func (r *groupRepository) UpdateMemberRole(ctx context.Context, groupID, userID uuid.UUID, role entity.GroupRole) error {
	result := r.db.WithContext(ctx).
		Model(&model.GroupMemberModel{}).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Update("role", string(role))
	return result.Error
}

// RemoveMember deletes a membership record.
func (r *groupRepository) RemoveMember(ctx context.Context, groupID, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Delete(&model.GroupMemberModel{})
	return result.Error
}

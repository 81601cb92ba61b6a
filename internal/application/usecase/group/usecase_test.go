package group

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerbook/backend/internal/domain/entity"
	domainerror "github.com/ledgerbook/backend/internal/domain/error"
)

type memberKey struct {
	groupID uuid.UUID
	userID  uuid.UUID
}

// fakeGroupRepo is an in-memory GroupRepository for exercising the
// membership rules without a database.
type fakeGroupRepo struct {
	groups  map[uuid.UUID]*entity.Group
	members map[memberKey]*entity.GroupMember
}

func newFakeGroupRepo() *fakeGroupRepo {
	return &fakeGroupRepo{
		groups:  make(map[uuid.UUID]*entity.Group),
		members: make(map[memberKey]*entity.GroupMember),
	}
}

func (f *fakeGroupRepo) Create(_ context.Context, group *entity.Group) error {
	f.groups[group.ID] = group
	return nil
}

func (f *fakeGroupRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Group, error) {
	group, ok := f.groups[id]
	if !ok {
		return nil, domainerror.ErrGroupNotFound
	}
	return group, nil
}

func (f *fakeGroupRepo) FindByInviteCode(_ context.Context, code string) (*entity.Group, error) {
	for _, group := range f.groups {
		if group.InviteCode == code {
			return group, nil
		}
	}
	return nil, domainerror.ErrGroupNotFound
}

func (f *fakeGroupRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Group, error) {
	var result []*entity.Group
	for key, member := range f.members {
		if member.UserID == userID {
			result = append(result, f.groups[key.groupID])
		}
	}
	return result, nil
}

func (f *fakeGroupRepo) Update(_ context.Context, group *entity.Group) error {
	f.groups[group.ID] = group
	return nil
}

func (f *fakeGroupRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.groups, id)
	for key := range f.members {
		if key.groupID == id {
			delete(f.members, key)
		}
	}
	return nil
}

func (f *fakeGroupRepo) AddMember(_ context.Context, member *entity.GroupMember) error {
	f.members[memberKey{member.GroupID, member.UserID}] = member
	return nil
}

func (f *fakeGroupRepo) GetMember(_ context.Context, groupID, userID uuid.UUID) (*entity.GroupMember, error) {
	member, ok := f.members[memberKey{groupID, userID}]
	if !ok {
		return nil, nil
	}
	return member, nil
}

func (f *fakeGroupRepo) GetMembers(_ context.Context, groupID uuid.UUID) ([]*entity.GroupMember, error) {
	var result []*entity.GroupMember
	for key, member := range f.members {
		if key.groupID == groupID {
			result = append(result, member)
		}
	}
	return result, nil
}

func (f *fakeGroupRepo) UpdateMemberRole(_ context.Context, groupID, userID uuid.UUID, role entity.GroupRole) error {
	member, ok := f.members[memberKey{groupID, userID}]
	if !ok {
		return errors.New("member not found")
	}
	member.Role = role
	return nil
}

func (f *fakeGroupRepo) RemoveMember(_ context.Context, groupID, userID uuid.UUID) error {
	delete(f.members, memberKey{groupID, userID})
	return nil
}

// groupFixture seeds one group with an owner, an admin, and a plain member.
type groupFixture struct {
	repo    *fakeGroupRepo
	groupID uuid.UUID
	owner   uuid.UUID
	admin   uuid.UUID
	member  uuid.UUID
}

func newGroupFixture() *groupFixture {
	repo := newFakeGroupRepo()
	owner := uuid.New()
	admin := uuid.New()
	member := uuid.New()

	group := entity.NewGroup("Flatmates", nil, owner)
	repo.groups[group.ID] = group

	for userID, role := range map[uuid.UUID]entity.GroupRole{
		owner:  entity.GroupRoleOwner,
		admin:  entity.GroupRoleAdmin,
		member: entity.GroupRoleMember,
	} {
		repo.members[memberKey{group.ID, userID}] = &entity.GroupMember{
			ID:       uuid.New(),
			GroupID:  group.ID,
			UserID:   userID,
			Role:     role,
			JoinedAt: time.Now().UTC(),
		}
	}

	return &groupFixture{
		repo:    repo,
		groupID: group.ID,
		owner:   owner,
		admin:   admin,
		member:  member,
	}
}

func TestRemoveMemberPermissions(t *testing.T) {
	tests := []struct {
		name    string
		caller  func(f *groupFixture) uuid.UUID
		target  func(f *groupFixture) uuid.UUID
		wantErr error
	}{
		{
			name:   "owner removes member",
			caller: func(f *groupFixture) uuid.UUID { return f.owner },
			target: func(f *groupFixture) uuid.UUID { return f.member },
		},
		{
			name:   "owner removes admin",
			caller: func(f *groupFixture) uuid.UUID { return f.owner },
			target: func(f *groupFixture) uuid.UUID { return f.admin },
		},
		{
			name:   "admin removes member",
			caller: func(f *groupFixture) uuid.UUID { return f.admin },
			target: func(f *groupFixture) uuid.UUID { return f.member },
		},
		{
			name:    "admin cannot remove admin",
			caller:  func(f *groupFixture) uuid.UUID { return f.admin },
			target:  func(f *groupFixture) uuid.UUID { return f.admin },
			wantErr: domainerror.ErrGroupPermissionDenied,
		},
		{
			name:    "nobody removes the owner",
			caller:  func(f *groupFixture) uuid.UUID { return f.admin },
			target:  func(f *groupFixture) uuid.UUID { return f.owner },
			wantErr: domainerror.ErrCannotRemoveOwner,
		},
		{
			name:    "member cannot remove anyone",
			caller:  func(f *groupFixture) uuid.UUID { return f.member },
			target:  func(f *groupFixture) uuid.UUID { return f.admin },
			wantErr: domainerror.ErrGroupPermissionDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fixture := newGroupFixture()
			uc := NewRemoveMemberUseCase(fixture.repo)

			_, err := uc.Execute(context.Background(), RemoveMemberInput{
				UserID:       tt.caller(fixture),
				GroupID:      fixture.groupID,
				TargetUserID: tt.target(fixture),
			})

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if m, _ := fixture.repo.GetMember(context.Background(), fixture.groupID, tt.target(fixture)); m != nil {
				t.Error("expected membership to be removed")
			}
		})
	}
}

func TestLeaveGroup(t *testing.T) {
	fixture := newGroupFixture()
	uc := NewLeaveGroupUseCase(fixture.repo)

	if _, err := uc.Execute(context.Background(), LeaveGroupInput{
		UserID:  fixture.member,
		GroupID: fixture.groupID,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The owner must transfer ownership before leaving
	_, err := uc.Execute(context.Background(), LeaveGroupInput{
		UserID:  fixture.owner,
		GroupID: fixture.groupID,
	})
	if !errors.Is(err, domainerror.ErrOwnerCannotLeave) {
		t.Fatalf("expected ErrOwnerCannotLeave, got %v", err)
	}
}

func TestChangeMemberRole(t *testing.T) {
	t.Run("owner promotes member to admin", func(t *testing.T) {
		fixture := newGroupFixture()
		uc := NewChangeMemberRoleUseCase(fixture.repo)

		output, err := uc.Execute(context.Background(), ChangeMemberRoleInput{
			UserID:       fixture.owner,
			GroupID:      fixture.groupID,
			TargetUserID: fixture.member,
			Role:         "admin",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Member.Role != entity.GroupRoleAdmin {
			t.Errorf("expected admin role, got %s", output.Member.Role)
		}
	})

	t.Run("admin cannot change roles", func(t *testing.T) {
		fixture := newGroupFixture()
		uc := NewChangeMemberRoleUseCase(fixture.repo)

		_, err := uc.Execute(context.Background(), ChangeMemberRoleInput{
			UserID:       fixture.admin,
			GroupID:      fixture.groupID,
			TargetUserID: fixture.member,
			Role:         "admin",
		})
		if !errors.Is(err, domainerror.ErrGroupPermissionDenied) {
			t.Fatalf("expected ErrGroupPermissionDenied, got %v", err)
		}
	})

	t.Run("owner role is untouchable", func(t *testing.T) {
		fixture := newGroupFixture()
		uc := NewChangeMemberRoleUseCase(fixture.repo)

		_, err := uc.Execute(context.Background(), ChangeMemberRoleInput{
			UserID:       fixture.owner,
			GroupID:      fixture.groupID,
			TargetUserID: fixture.owner,
			Role:         "member",
		})
		if !errors.Is(err, domainerror.ErrGroupPermissionDenied) {
			t.Fatalf("expected ErrGroupPermissionDenied, got %v", err)
		}
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		fixture := newGroupFixture()
		uc := NewChangeMemberRoleUseCase(fixture.repo)

		_, err := uc.Execute(context.Background(), ChangeMemberRoleInput{
			UserID:       fixture.owner,
			GroupID:      fixture.groupID,
			TargetUserID: fixture.member,
			Role:         "superuser",
		})
		if !errors.Is(err, domainerror.ErrInvalidGroupRole) {
			t.Fatalf("expected ErrInvalidGroupRole, got %v", err)
		}
	})
}

func TestTransferOwnership(t *testing.T) {
	t.Run("transfer demotes previous owner to admin", func(t *testing.T) {
		fixture := newGroupFixture()
		uc := NewTransferOwnershipUseCase(fixture.repo)

		output, err := uc.Execute(context.Background(), TransferOwnershipInput{
			UserID:       fixture.owner,
			GroupID:      fixture.groupID,
			TargetUserID: fixture.member,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Group.OwnerID != fixture.member {
			t.Errorf("expected new owner %s, got %s", fixture.member, output.Group.OwnerID)
		}

		ctx := context.Background()
		newOwner, _ := fixture.repo.GetMember(ctx, fixture.groupID, fixture.member)
		if newOwner.Role != entity.GroupRoleOwner {
			t.Errorf("expected target role owner, got %s", newOwner.Role)
		}
		previous, _ := fixture.repo.GetMember(ctx, fixture.groupID, fixture.owner)
		if previous.Role != entity.GroupRoleAdmin {
			t.Errorf("expected previous owner demoted to admin, got %s", previous.Role)
		}
	})

	t.Run("target must already be a member", func(t *testing.T) {
		fixture := newGroupFixture()
		uc := NewTransferOwnershipUseCase(fixture.repo)

		_, err := uc.Execute(context.Background(), TransferOwnershipInput{
			UserID:       fixture.owner,
			GroupID:      fixture.groupID,
			TargetUserID: uuid.New(),
		})
		if !errors.Is(err, domainerror.ErrTransferTargetNotMember) {
			t.Fatalf("expected ErrTransferTargetNotMember, got %v", err)
		}
	})

	t.Run("only the owner may transfer", func(t *testing.T) {
		fixture := newGroupFixture()
		uc := NewTransferOwnershipUseCase(fixture.repo)

		_, err := uc.Execute(context.Background(), TransferOwnershipInput{
			UserID:       fixture.admin,
			GroupID:      fixture.groupID,
			TargetUserID: fixture.member,
		})
		if !errors.Is(err, domainerror.ErrGroupPermissionDenied) {
			t.Fatalf("expected ErrGroupPermissionDenied, got %v", err)
		}
	})
}

func TestJoinGroup(t *testing.T) {
	t.Run("joins by invite code as member", func(t *testing.T) {
		fixture := newGroupFixture()
		uc := NewJoinGroupUseCase(fixture.repo)
		newcomer := uuid.New()

		code := fixture.repo.groups[fixture.groupID].InviteCode
		output, err := uc.Execute(context.Background(), JoinGroupInput{
			UserID:     newcomer,
			InviteCode: "  " + code + "  ", // Whitespace is tolerated
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Member.Role != entity.GroupRoleMember {
			t.Errorf("expected member role, got %s", output.Member.Role)
		}
	})

	t.Run("unknown code rejected", func(t *testing.T) {
		fixture := newGroupFixture()
		uc := NewJoinGroupUseCase(fixture.repo)

		_, err := uc.Execute(context.Background(), JoinGroupInput{
			UserID:     uuid.New(),
			InviteCode: "NOCODE",
		})
		if !errors.Is(err, domainerror.ErrInvalidInviteCode) {
			t.Fatalf("expected ErrInvalidInviteCode, got %v", err)
		}
	})

	t.Run("existing member cannot join twice", func(t *testing.T) {
		fixture := newGroupFixture()
		uc := NewJoinGroupUseCase(fixture.repo)

		_, err := uc.Execute(context.Background(), JoinGroupInput{
			UserID:     fixture.member,
			InviteCode: fixture.repo.groups[fixture.groupID].InviteCode,
		})
		if !errors.Is(err, domainerror.ErrAlreadyGroupMember) {
			t.Fatalf("expected ErrAlreadyGroupMember, got %v", err)
		}
	})
}

// Package entity defines the core business entities for the domain layer.
package entity

import (
	"crypto/rand"
	"math/big"
	"time"

	"github.com/google/uuid"
)

// GroupRole represents a member's role within a group.
type GroupRole string

const (
	GroupRoleOwner  GroupRole = "owner"
	GroupRoleAdmin  GroupRole = "admin"
	GroupRoleMember GroupRole = "member"
)

// inviteCodeLength is the length of generated group invite codes.
const inviteCodeLength = 6

const inviteCodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Group represents a set of users sharing group ledgers.
type Group struct {
	ID          uuid.UUID
	Name        string
	Description *string
	OwnerID     uuid.UUID
	InviteCode  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// GroupMember represents a user's membership in a group.
type GroupMember struct {
	ID       uuid.UUID
	GroupID  uuid.UUID
	UserID   uuid.UUID
	Role     GroupRole
	JoinedAt time.Time
}

// NewGroup creates a new Group entity with a fresh invite code.
func NewGroup(name string, description *string, ownerID uuid.UUID) *Group {
	now := time.Now().UTC()

	return &Group{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		OwnerID:     ownerID,
		InviteCode:  GenerateInviteCode(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// NewGroupMember creates a membership record for a user in a group.
func NewGroupMember(groupID, userID uuid.UUID, role GroupRole) *GroupMember {
	return &GroupMember{
		ID:       uuid.New(),
		GroupID:  groupID,
		UserID:   userID,
		Role:     role,
		JoinedAt: time.Now().UTC(),
	}
}

// GenerateInviteCode returns a random 6-character uppercase alphanumeric code.
func GenerateInviteCode() string {
	code := make([]byte, inviteCodeLength)
	max := big.NewInt(int64(len(inviteCodeCharset)))
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken;
			// fall back to a fixed index rather than panicking.
			n = big.NewInt(0)
		}
		code[i] = inviteCodeCharset[n.Int64()]
	}
	return string(code)
}

// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/ledgerbook/backend/internal/application/usecase/group"
	"github.com/ledgerbook/backend/internal/domain/entity"
)

// CreateGroupRequest represents the request body for group creation.
type CreateGroupRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=500"`
}

// UpdateGroupRequest represents the request body for a group update.
type UpdateGroupRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,max=100"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=500"`
}

// JoinGroupRequest represents the request body for joining a group by invite
// code.
type JoinGroupRequest struct {
	InviteCode string `json:"invite_code" binding:"required"`
}

// ChangeMemberRoleRequest represents the request body for a member role change.
type ChangeMemberRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=admin member"`
}

// TransferOwnershipRequest represents the request body for an ownership
// transfer.
type TransferOwnershipRequest struct {
	NewOwnerID string `json:"new_owner_id" binding:"required"`
}

// GroupResponse represents a group in API responses. InviteCode is omitted
// on paths where the caller's role does not entitle them to see it.
type GroupResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	OwnerID     string    `json:"owner_id"`
	InviteCode  string    `json:"invite_code,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GroupMemberResponse represents a group membership in API responses.
type GroupMemberResponse struct {
	UserID   string    `json:"user_id"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}

// GroupDetailResponse represents a group together with its member list, its
// ledgers, and the caller's role.
type GroupDetailResponse struct {
	GroupResponse
	MyRole  string                `json:"my_role"`
	Members []GroupMemberResponse `json:"members"`
	Ledgers []LedgerResponse      `json:"ledgers"`
}

// GroupSummaryResponse is one row of a group listing.
type GroupSummaryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	OwnerID     string    `json:"owner_id"`
	MemberCount int       `json:"member_count"`
	MyRole      string    `json:"my_role"`
	CreatedAt   time.Time `json:"created_at"`
}

// GroupListResponse represents the response for listing groups.
type GroupListResponse struct {
	Groups []GroupSummaryResponse `json:"groups"`
	Total  int                    `json:"total"`
}

// ToGroupResponse converts a Group entity to a GroupResponse, invite code
// included. Callers on non-privileged paths should blank the code.
func ToGroupResponse(group *entity.Group) GroupResponse {
	return GroupResponse{
		ID:          group.ID.String(),
		Name:        group.Name,
		Description: group.Description,
		OwnerID:     group.OwnerID.String(),
		InviteCode:  group.InviteCode,
		CreatedAt:   group.CreatedAt,
		UpdatedAt:   group.UpdatedAt,
	}
}

// ToGroupDetailResponse converts a group retrieval result to a
// GroupDetailResponse. The invite code is withheld from plain members.
func ToGroupDetailResponse(output *group.GetGroupOutput) GroupDetailResponse {
	resp := GroupDetailResponse{
		GroupResponse: ToGroupResponse(output.Group),
		MyRole:        string(output.MyRole),
		Members:       make([]GroupMemberResponse, 0, len(output.Members)),
		Ledgers:       make([]LedgerResponse, 0, len(output.Ledgers)),
	}
	if output.MyRole != entity.GroupRoleOwner && output.MyRole != entity.GroupRoleAdmin {
		resp.InviteCode = ""
	}

	for _, member := range output.Members {
		resp.Members = append(resp.Members, GroupMemberResponse{
			UserID:   member.UserID.String(),
			Role:     string(member.Role),
			JoinedAt: member.JoinedAt,
		})
	}
	for _, ledger := range output.Ledgers {
		resp.Ledgers = append(resp.Ledgers, ToLedgerResponse(ledger))
	}
	return resp
}

// ToGroupListResponse converts group list items to a GroupListResponse.
func ToGroupListResponse(items []*group.GroupListItem) GroupListResponse {
	responses := make([]GroupSummaryResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, GroupSummaryResponse{
			ID:          item.Group.ID.String(),
			Name:        item.Group.Name,
			Description: item.Group.Description,
			OwnerID:     item.Group.OwnerID.String(),
			MemberCount: item.MemberCount,
			MyRole:      string(item.MyRole),
			CreatedAt:   item.Group.CreatedAt,
		})
	}
	return GroupListResponse{
		Groups: responses,
		Total:  len(responses),
	}
}

// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ledgerbook/backend/internal/application/usecase/group"
	domainerror "github.com/ledgerbook/backend/internal/domain/error"
	"github.com/ledgerbook/backend/internal/integration/entrypoint/dto"
	"github.com/ledgerbook/backend/internal/integration/entrypoint/middleware"
)

// GroupController handles group endpoints.
type GroupController struct {
	createUseCase          *group.CreateGroupUseCase
	listUseCase            *group.ListGroupsUseCase
	getUseCase             *group.GetGroupUseCase
	updateUseCase          *group.UpdateGroupUseCase
	deleteUseCase          *group.DeleteGroupUseCase
	joinUseCase            *group.JoinGroupUseCase
	leaveUseCase           *group.LeaveGroupUseCase
	removeMemberUseCase    *group.RemoveMemberUseCase
	changeRoleUseCase      *group.ChangeMemberRoleUseCase
	transferUseCase        *group.TransferOwnershipUseCase
	resetInviteCodeUseCase *group.ResetInviteCodeUseCase
}

// NewGroupController creates a new group controller instance.
func NewGroupController(
	createUseCase *group.CreateGroupUseCase,
	listUseCase *group.ListGroupsUseCase,
	getUseCase *group.GetGroupUseCase,
	updateUseCase *group.UpdateGroupUseCase,
	deleteUseCase *group.DeleteGroupUseCase,
	joinUseCase *group.JoinGroupUseCase,
	leaveUseCase *group.LeaveGroupUseCase,
	removeMemberUseCase *group.RemoveMemberUseCase,
	changeRoleUseCase *group.ChangeMemberRoleUseCase,
	transferUseCase *group.TransferOwnershipUseCase,
	resetInviteCodeUseCase *group.ResetInviteCodeUseCase,
) *GroupController {
	return &GroupController{
		createUseCase:          createUseCase,
		listUseCase:            listUseCase,
		getUseCase:             getUseCase,
		updateUseCase:          updateUseCase,
		deleteUseCase:          deleteUseCase,
		joinUseCase:            joinUseCase,
		leaveUseCase:           leaveUseCase,
		removeMemberUseCase:    removeMemberUseCase,
		changeRoleUseCase:      changeRoleUseCase,
		transferUseCase:        transferUseCase,
		resetInviteCodeUseCase: resetInviteCodeUseCase,
	}
}

// Create handles POST /groups requests.
func (c *GroupController) Create(ctx *gin.Context) {
	userID, ok := c.requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeGroupNameRequired),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), group.CreateGroupInput{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		c.handleGroupError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGroupResponse(output.Group))
}

// List handles GET /groups requests.
func (c *GroupController) List(ctx *gin.Context) {
	userID, ok := c.requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), group.ListGroupsInput{UserID: userID})
	if err != nil {
		c.handleGroupError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGroupListResponse(output.Items))
}

// Get handles GET /groups/:id requests.
func (c *GroupController) Get(ctx *gin.Context) {
	userID, groupID, ok := c.requireUserAndGroupID(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), group.GetGroupInput{
		UserID:  userID,
		GroupID: groupID,
	})
	if err != nil {
		c.handleGroupError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGroupDetailResponse(output))
}

// Update handles PATCH /groups/:id requests.
func (c *GroupController) Update(ctx *gin.Context) {
	userID, groupID, ok := c.requireUserAndGroupID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), group.UpdateGroupInput{
		UserID:      userID,
		GroupID:     groupID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		c.handleGroupError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGroupResponse(output.Group))
}

// Delete handles DELETE /groups/:id requests.
func (c *GroupController) Delete(ctx *gin.Context) {
	userID, groupID, ok := c.requireUserAndGroupID(ctx)
	if !ok {
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), group.DeleteGroupInput{
		UserID:  userID,
		GroupID: groupID,
	})
	if err != nil {
		c.handleGroupError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: output.Message})
}

// Join handles POST /groups/join requests.
func (c *GroupController) Join(ctx *gin.Context) {
	userID, ok := c.requireUser(ctx)
	if !ok {
		return
	}

	var req dto.JoinGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidInviteCode),
		})
		return
	}

	output, err := c.joinUseCase.Execute(ctx.Request.Context(), group.JoinGroupInput{
		UserID:     userID,
		InviteCode: req.InviteCode,
	})
	if err != nil {
		c.handleGroupError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGroupResponse(output.Group))
}

// Leave handles POST /groups/:id/leave requests.
func (c *GroupController) Leave(ctx *gin.Context) {
	userID, groupID, ok := c.requireUserAndGroupID(ctx)
	if !ok {
		return
	}

	output, err := c.leaveUseCase.Execute(ctx.Request.Context(), group.LeaveGroupInput{
		UserID:  userID,
		GroupID: groupID,
	})
	if err != nil {
		c.handleGroupError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: output.Message})
}

// RemoveMember handles DELETE /groups/:id/members/:userId requests.
func (c *GroupController) RemoveMember(ctx *gin.Context) {
	userID, groupID, ok := c.requireUserAndGroupID(ctx)
	if !ok {
		return
	}

	targetID, ok := c.parseTargetUserID(ctx)
	if !ok {
		return
	}

	output, err := c.removeMemberUseCase.Execute(ctx.Request.Context(), group.RemoveMemberInput{
		UserID:       userID,
		GroupID:      groupID,
		TargetUserID: targetID,
	})
	if err != nil {
		c.handleGroupError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: output.Message})
}

// ChangeMemberRole handles PUT /groups/:id/members/:userId/role requests.
func (c *GroupController) ChangeMemberRole(ctx *gin.Context) {
	userID, groupID, ok := c.requireUserAndGroupID(ctx)
	if !ok {
		return
	}

	targetID, ok := c.parseTargetUserID(ctx)
	if !ok {
		return
	}

	var req dto.ChangeMemberRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidGroupRole),
		})
		return
	}

	output, err := c.changeRoleUseCase.Execute(ctx.Request.Context(), group.ChangeMemberRoleInput{
		UserID:       userID,
		GroupID:      groupID,
		TargetUserID: targetID,
		Role:         req.Role,
	})
	if err != nil {
		c.handleGroupError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.GroupMemberResponse{
		UserID:   output.Member.UserID.String(),
		Role:     string(output.Member.Role),
		JoinedAt: output.Member.JoinedAt,
	})
}

// TransferOwnership handles POST /groups/:id/transfer requests.
func (c *GroupController) TransferOwnership(ctx *gin.Context) {
	userID, groupID, ok := c.requireUserAndGroupID(ctx)
	if !ok {
		return
	}

	var req dto.TransferOwnershipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	targetID, err := uuid.Parse(req.NewOwnerID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user ID format",
		})
		return
	}

	output, err := c.transferUseCase.Execute(ctx.Request.Context(), group.TransferOwnershipInput{
		UserID:       userID,
		GroupID:      groupID,
		TargetUserID: targetID,
	})
	if err != nil {
		c.handleGroupError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGroupResponse(output.Group))
}

// ResetInviteCode handles POST /groups/:id/invite-code requests.
func (c *GroupController) ResetInviteCode(ctx *gin.Context) {
	userID, groupID, ok := c.requireUserAndGroupID(ctx)
	if !ok {
		return
	}

	output, err := c.resetInviteCodeUseCase.Execute(ctx.Request.Context(), group.ResetInviteCodeInput{
		UserID:  userID,
		GroupID: groupID,
	})
	if err != nil {
		c.handleGroupError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGroupResponse(output.Group))
}

func (c *GroupController) requireUser(ctx *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return userID, false
	}
	return userID, true
}

func (c *GroupController) requireUserAndGroupID(ctx *gin.Context) (userID, groupID uuid.UUID, ok bool) {
	userID, ok = c.requireUser(ctx)
	if !ok {
		return userID, groupID, false
	}

	groupID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid group ID format",
			Code:  string(domainerror.ErrCodeInvalidGroupID),
		})
		return userID, groupID, false
	}

	return userID, groupID, true
}

func (c *GroupController) parseTargetUserID(ctx *gin.Context) (uuid.UUID, bool) {
	targetID, err := uuid.Parse(ctx.Param("userId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user ID format",
		})
		return targetID, false
	}
	return targetID, true
}

// handleGroupError handles group errors and returns appropriate HTTP responses.
func (c *GroupController) handleGroupError(ctx *gin.Context, err error) {
	var groupErr *domainerror.GroupError
	if errors.As(err, &groupErr) {
		statusCode := c.getStatusCodeForGroupError(groupErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: groupErr.Message,
			Code:  string(groupErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForGroupError maps group error codes to HTTP status codes.
func (c *GroupController) getStatusCodeForGroupError(code domainerror.GroupErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidGroupID,
		domainerror.ErrCodeInvalidGroupRole,
		domainerror.ErrCodeInvalidInviteCode,
		domainerror.ErrCodeGroupNameRequired:
		return http.StatusBadRequest
	case domainerror.ErrCodeGroupNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotGroupMember,
		domainerror.ErrCodeGroupPermissionDenied,
		domainerror.ErrCodeOwnerCannotLeave,
		domainerror.ErrCodeCannotRemoveOwner:
		return http.StatusForbidden
	case domainerror.ErrCodeAlreadyGroupMember,
		domainerror.ErrCodeTransferTargetNotMember:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

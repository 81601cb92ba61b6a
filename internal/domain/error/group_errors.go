// Package error defines domain-specific errors for the LedgerBook application.
package error

import "errors"

// Group domain errors.
var (
	// ErrGroupNotFound is returned when a group is not found in the system.
	ErrGroupNotFound = errors.New("group not found")

	// ErrInvalidGroupID is returned when a group id is malformed.
	ErrInvalidGroupID = errors.New("invalid group ID")

	// ErrNotGroupMember is returned when the caller is not a member of the group.
	ErrNotGroupMember = errors.New("not a member of this group")

	// ErrGroupPermissionDenied is returned when the caller's role does not
	// allow the operation.
	ErrGroupPermissionDenied = errors.New("group role does not permit this operation")

	// ErrAlreadyGroupMember is returned when joining a group twice.
	ErrAlreadyGroupMember = errors.New("already a member of this group")

	// ErrInvalidInviteCode is returned when no group matches the invite code.
	ErrInvalidInviteCode = errors.New("invalid invite code")

	// ErrOwnerCannotLeave is returned when the owner tries to leave without
	// transferring ownership first.
	ErrOwnerCannotLeave = errors.New("owner cannot leave the group; transfer ownership first")

	// ErrCannotRemoveOwner is returned when trying to remove the group owner.
	ErrCannotRemoveOwner = errors.New("the group owner cannot be removed")

	// ErrInvalidGroupRole is returned when a role string is not admin or member.
	ErrInvalidGroupRole = errors.New("invalid group role")

	// ErrTransferTargetNotMember is returned when transferring ownership to a
	// non-member.
	ErrTransferTargetNotMember = errors.New("new owner must be a group member")

	// ErrGroupNameRequired is returned when a group name is empty.
	ErrGroupNameRequired = errors.New("group name is required")
)

// GroupErrorCode defines error codes for group errors.
type GroupErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidGroupID    GroupErrorCode = "GRP-010001"
	ErrCodeInvalidGroupRole  GroupErrorCode = "GRP-010002"
	ErrCodeInvalidInviteCode GroupErrorCode = "GRP-010003"
	ErrCodeGroupNameRequired GroupErrorCode = "GRP-010004"

	// Access errors (02XXXX)
	ErrCodeGroupNotFound           GroupErrorCode = "GRP-020001"
	ErrCodeNotGroupMember          GroupErrorCode = "GRP-020002"
	ErrCodeGroupPermissionDenied   GroupErrorCode = "GRP-020003"
	ErrCodeAlreadyGroupMember      GroupErrorCode = "GRP-020004"
	ErrCodeOwnerCannotLeave        GroupErrorCode = "GRP-020005"
	ErrCodeCannotRemoveOwner       GroupErrorCode = "GRP-020006"
	ErrCodeTransferTargetNotMember GroupErrorCode = "GRP-020007"
)

// GroupError represents a group error with code and message.
type GroupError struct {
	Code    GroupErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GroupError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GroupError) Unwrap() error {
	return e.Err
}

// NewGroupError creates a new GroupError with the given code and message.
func NewGroupError(code GroupErrorCode, message string, err error) *GroupError {
	return &GroupError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

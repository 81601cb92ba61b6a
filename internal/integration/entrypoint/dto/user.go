// Package dto defines data transfer objects for API requests and responses.
package dto

// UpdateProfileRequest represents the request body for a profile update.
type UpdateProfileRequest struct {
	Nickname *string `json:"nickname,omitempty" binding:"omitempty,min=1,max=100"`
	Avatar   *string `json:"avatar,omitempty" binding:"omitempty,max=500"`
}

// ChangePasswordRequest represents the request body for a password change.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// Package auth contains authentication-related use cases.
package auth

import (
	"context"

	"github.com/ledgerbook/backend/internal/application/adapter"
)

// LogoutUserInput carries the refresh token being revoked.
type LogoutUserInput struct {
	RefreshToken string
}

// LogoutUserOutput confirms the logout to the caller.
type LogoutUserOutput struct {
	Message string
}

// LogoutUserUseCase revokes a session's refresh token. Logout is
// best-effort: an already-revoked or malformed token still logs out.
type LogoutUserUseCase struct {
	tokenService adapter.TokenService
}

// NewLogoutUserUseCase creates a new LogoutUserUseCase instance.
func NewLogoutUserUseCase(tokenService adapter.TokenService) *LogoutUserUseCase {
	return &LogoutUserUseCase{
		tokenService: tokenService,
	}
}

// Execute revokes the refresh token and always succeeds.
func (uc *LogoutUserUseCase) Execute(ctx context.Context, input LogoutUserInput) (*LogoutUserOutput, error) {
	if input.RefreshToken != "" {
		_ = uc.tokenService.InvalidateRefreshToken(ctx, input.RefreshToken)
	}

	return &LogoutUserOutput{Message: "Successfully logged out"}, nil
}

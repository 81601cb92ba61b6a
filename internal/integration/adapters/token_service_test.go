package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ledgerbook/backend/internal/application/adapter"
	"github.com/ledgerbook/backend/internal/integration/persistence"
	"github.com/ledgerbook/backend/internal/integration/persistence/model"
)

func newTestTokenService(t *testing.T) adapter.TokenService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&model.RefreshTokenModel{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return NewTokenService("test-secret", 15*time.Minute, 7*24*time.Hour, persistence.NewTokenRepository(db))
}

func TestTokenServiceGenerateAndValidate(t *testing.T) {
	service := newTestTokenService(t)
	ctx := context.Background()
	userID := uuid.New()

	pair, err := service.GenerateTokenPair(ctx, userID, "test@example.com")
	if err != nil {
		t.Fatalf("failed to generate token pair: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("expected both tokens to be non-empty")
	}

	claims, err := service.ValidateAccessToken(ctx, pair.AccessToken)
	if err != nil {
		t.Fatalf("failed to validate access token: %v", err)
	}
	if claims.UserID != userID || claims.Email != "test@example.com" {
		t.Errorf("unexpected claims: user=%s email=%s", claims.UserID, claims.Email)
	}

	claims, err = service.ValidateRefreshToken(ctx, pair.RefreshToken)
	if err != nil {
		t.Fatalf("failed to validate refresh token: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("unexpected refresh claims user: %s", claims.UserID)
	}
}

func TestTokenServiceRejectsWrongTokenType(t *testing.T) {
	service := newTestTokenService(t)
	ctx := context.Background()

	pair, err := service.GenerateTokenPair(ctx, uuid.New(), "test@example.com")
	if err != nil {
		t.Fatalf("failed to generate token pair: %v", err)
	}

	// A refresh token must not pass as an access token, and vice versa
	if _, err := service.ValidateAccessToken(ctx, pair.RefreshToken); err == nil {
		t.Error("expected refresh token to fail access validation")
	}
	if _, err := service.ValidateRefreshToken(ctx, pair.AccessToken); err == nil {
		t.Error("expected access token to fail refresh validation")
	}
}

func TestTokenServiceRejectsTamperedToken(t *testing.T) {
	service := newTestTokenService(t)
	ctx := context.Background()

	pair, err := service.GenerateTokenPair(ctx, uuid.New(), "test@example.com")
	if err != nil {
		t.Fatalf("failed to generate token pair: %v", err)
	}

	tampered := pair.AccessToken[:len(pair.AccessToken)-2] + "xx"
	if _, err := service.ValidateAccessToken(ctx, tampered); err == nil {
		t.Error("expected tampered token to fail validation")
	}
}

func TestTokenServiceRevocation(t *testing.T) {
	service := newTestTokenService(t)
	ctx := context.Background()

	pair, err := service.GenerateTokenPair(ctx, uuid.New(), "test@example.com")
	if err != nil {
		t.Fatalf("failed to generate token pair: %v", err)
	}

	if err := service.InvalidateRefreshToken(ctx, pair.RefreshToken); err != nil {
		t.Fatalf("failed to invalidate refresh token: %v", err)
	}

	if _, err := service.ValidateRefreshToken(ctx, pair.RefreshToken); err == nil {
		t.Error("expected revoked refresh token to fail validation")
	}
}

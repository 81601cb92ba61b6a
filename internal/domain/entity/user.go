// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account in the LedgerBook system.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Nickname     *string
	Avatar       *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new User entity with a hashed password.
func NewUser(email, passwordHash string, nickname *string) *User {
	now := time.Now().UTC()

	return &User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		Nickname:     nickname,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

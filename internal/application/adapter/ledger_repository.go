// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/ledgerbook/backend/internal/domain/entity"
)

// LedgerRepository defines the interface for ledger persistence operations.
type LedgerRepository interface {
	// Create creates a new ledger in the database.
	Create(ctx context.Context, ledger *entity.Ledger) error

	// FindByID retrieves a ledger by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Ledger, error)

	// FindByUser retrieves all personal ledgers owned by a user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Ledger, error)

	// FindByGroup retrieves all ledgers owned by a group.
	FindByGroup(ctx context.Context, groupID uuid.UUID) ([]*entity.Ledger, error)

	// Update updates an existing ledger in the database.
	Update(ctx context.Context, ledger *entity.Ledger) error

	// Delete removes a ledger from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}

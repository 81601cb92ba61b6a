// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/ledgerbook/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a live (non-deleted) category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindAnyByID retrieves a category by ID including soft-deleted rows.
	// Statistics use this as the last-known-name fallback for bills whose
	// category has since been removed.
	FindAnyByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindVisible retrieves system default categories plus, when ledgerID is
	// set, that ledger's custom categories, optionally restricted to one bill
	// type. Ordered by sort order ascending.
	FindVisible(ctx context.Context, ledgerID *uuid.UUID, billType *entity.BillType) ([]*entity.Category, error)

	// CountSystemDefaults returns the number of system default categories.
	CountSystemDefaults(ctx context.Context) (int64, error)

	// Update updates an existing category in the database.
	Update(ctx context.Context, category *entity.Category) error

	// Delete soft-deletes a category from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}

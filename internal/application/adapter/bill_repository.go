// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerbook/backend/internal/domain/entity"
)

// BillFilter describes which bills of a ledger to select. The same value
// type drives both the paginated listing and the unpaginated scans used by
// the statistics aggregator, so filter semantics are defined exactly once.
type BillFilter struct {
	LedgerID   uuid.UUID
	StartDate  *time.Time // Inclusive lower bound on BillDate
	EndDate    *time.Time // Inclusive upper bound on BillDate
	Type       *entity.BillType
	CategoryID *uuid.UUID
	UserID     *uuid.UUID
}

// BillPagination defines 1-based pagination options.
type BillPagination struct {
	Page     int
	PageSize int
}

// BillListResult represents one page of bills plus the unpaginated total.
type BillListResult struct {
	Bills      []*entity.Bill
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

// BillRepository defines the interface for bill persistence operations.
type BillRepository interface {
	// Create creates a new bill in the database.
	Create(ctx context.Context, bill *entity.Bill) error

	// FindByID retrieves a bill by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error)

	// FindByFilter retrieves one page of bills matching the filter, sorted by
	// bill date descending. An out-of-range page yields an empty page with
	// the true total unaffected.
	FindByFilter(ctx context.Context, filter BillFilter, pagination BillPagination) (*BillListResult, error)

	// FindAllByFilter retrieves every bill matching the filter, unpaginated.
	// This is the scan primitive backing the statistics aggregator.
	FindAllByFilter(ctx context.Context, filter BillFilter) ([]*entity.Bill, error)

	// Update updates an existing bill in the database.
	Update(ctx context.Context, bill *entity.Bill) error

	// Delete removes a bill from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}

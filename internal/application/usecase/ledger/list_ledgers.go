// Package ledger contains ledger-related use cases.
package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ledgerbook/backend/internal/application/adapter"
	"github.com/ledgerbook/backend/internal/domain/entity"
)

// ListLedgersInput represents the input for listing a user's ledgers.
type ListLedgersInput struct {
	UserID uuid.UUID
}

// ListLedgersOutput represents the output of listing ledgers: the user's
// personal ledgers followed by the ledgers of every group they belong to.
type ListLedgersOutput struct {
	Ledgers []*entity.Ledger
}

// ListLedgersUseCase handles ledger listing.
type ListLedgersUseCase struct {
	ledgerRepo adapter.LedgerRepository
	groupRepo  adapter.GroupRepository
}

// NewListLedgersUseCase creates a new ListLedgersUseCase instance.
func NewListLedgersUseCase(ledgerRepo adapter.LedgerRepository, groupRepo adapter.GroupRepository) *ListLedgersUseCase {
	return &ListLedgersUseCase{
		ledgerRepo: ledgerRepo,
		groupRepo:  groupRepo,
	}
}

// Execute lists every ledger the user can access.
func (uc *ListLedgersUseCase) Execute(ctx context.Context, input ListLedgersInput) (*ListLedgersOutput, error) {
	personal, err := uc.ledgerRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list personal ledgers: %w", err)
	}

	groups, err := uc.groupRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}

	ledgers := make([]*entity.Ledger, 0, len(personal))
	ledgers = append(ledgers, personal...)
	for _, group := range groups {
		shared, err := uc.ledgerRepo.FindByGroup(ctx, group.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list group ledgers: %w", err)
		}
		ledgers = append(ledgers, shared...)
	}

	return &ListLedgersOutput{Ledgers: ledgers}, nil
}

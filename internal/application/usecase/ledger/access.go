// Package ledger contains ledger-related use cases.
package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ledgerbook/backend/internal/application/adapter"
	"github.com/ledgerbook/backend/internal/domain/entity"
	domainerror "github.com/ledgerbook/backend/internal/domain/error"
)

// AccessChecker resolves a ledger and verifies the caller may read and write
// it: personal ledgers require ownership, group ledgers require membership of
// the owning group. Bills and statistics both gate on this check before any
// other work runs.
type AccessChecker struct {
	ledgerRepo adapter.LedgerRepository
	groupRepo  adapter.GroupRepository
}

// NewAccessChecker creates a new AccessChecker instance.
func NewAccessChecker(ledgerRepo adapter.LedgerRepository, groupRepo adapter.GroupRepository) *AccessChecker {
	return &AccessChecker{
		ledgerRepo: ledgerRepo,
		groupRepo:  groupRepo,
	}
}

// Authorize returns the ledger when the user may access it. It returns a
// not-found error before a forbidden one, so callers never learn whether an
// inaccessible id exists.
func (c *AccessChecker) Authorize(ctx context.Context, ledgerID, userID uuid.UUID) (*entity.Ledger, error) {
	ledger, err := c.ledgerRepo.FindByID(ctx, ledgerID)
	if err != nil {
		if errors.Is(err, domainerror.ErrLedgerNotFound) {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeLedgerNotFound,
				"ledger not found",
				domainerror.ErrLedgerNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	switch ledger.Type {
	case entity.LedgerTypePersonal:
		if ledger.UserID != nil && *ledger.UserID == userID {
			return ledger, nil
		}
	case entity.LedgerTypeGroup:
		if ledger.GroupID != nil {
			member, err := c.groupRepo.GetMember(ctx, *ledger.GroupID, userID)
			if err != nil {
				return nil, fmt.Errorf("failed to check group membership: %w", err)
			}
			if member != nil {
				return ledger, nil
			}
		}
	}

	return nil, domainerror.NewLedgerError(
		domainerror.ErrCodeLedgerAccessDenied,
		"access to ledger denied",
		domainerror.ErrLedgerAccessDenied,
	)
}

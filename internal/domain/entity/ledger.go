// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// LedgerType represents the ownership kind of a ledger.
type LedgerType string

const (
	LedgerTypePersonal LedgerType = "personal"
	LedgerTypeGroup    LedgerType = "group"
)

// DefaultLedgerCurrency is the currency assigned when none is requested.
const DefaultLedgerCurrency = "CNY"

// Ledger represents a named scope of bills. Exactly one of UserID or GroupID
// is set, matching Type.
type Ledger struct {
	ID          uuid.UUID
	Name        string
	Description *string
	Type        LedgerType
	UserID      *uuid.UUID // Set for personal ledgers
	GroupID     *uuid.UUID // Set for group ledgers
	Currency    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewPersonalLedger creates a ledger owned by a single user.
func NewPersonalLedger(name string, userID uuid.UUID, currency string) *Ledger {
	if currency == "" {
		currency = DefaultLedgerCurrency
	}
	now := time.Now().UTC()

	return &Ledger{
		ID:        uuid.New(),
		Name:      name,
		Type:      LedgerTypePersonal,
		UserID:    &userID,
		Currency:  currency,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewGroupLedger creates a ledger owned by a group.
func NewGroupLedger(name string, groupID uuid.UUID, currency string) *Ledger {
	if currency == "" {
		currency = DefaultLedgerCurrency
	}
	now := time.Now().UTC()

	return &Ledger{
		ID:        uuid.New(),
		Name:      name,
		Type:      LedgerTypeGroup,
		GroupID:   &groupID,
		Currency:  currency,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

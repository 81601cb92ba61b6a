// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BillType represents the type of bill (income or expense).
type BillType string

const (
	BillTypeIncome  BillType = "income"
	BillTypeExpense BillType = "expense"
)

// Bill represents a single dated income or expense record belonging to a
// ledger and a category. The creator is the only user allowed to modify it.
type Bill struct {
	ID         uuid.UUID
	LedgerID   uuid.UUID
	CategoryID uuid.UUID
	UserID     uuid.UUID // Creator of the bill
	Type       BillType
	Amount     decimal.Decimal // Always positive; direction is carried by Type
	Note       string
	BillDate   time.Time // Calendar date only, no time-of-day
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewBill creates a new Bill entity. BillDate has no required relation to
// CreatedAt: bills can be backdated or postdated.
func NewBill(
	ledgerID uuid.UUID,
	categoryID uuid.UUID,
	userID uuid.UUID,
	billType BillType,
	amount decimal.Decimal,
	note string,
	billDate time.Time,
) *Bill {
	now := time.Now().UTC()

	return &Bill{
		ID:         uuid.New(),
		LedgerID:   ledgerID,
		CategoryID: categoryID,
		UserID:     userID,
		Type:       billType,
		Amount:     amount,
		Note:       note,
		BillDate:   billDate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// BillWithDetails represents a bill with its category and creator resolved
// for presentation.
type BillWithDetails struct {
	Bill     *Bill
	Category *Category
	Creator  *User
}

// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category represents a bill category in the LedgerBook system.
// A category with a nil LedgerID is a system-wide default visible to all
// ledgers. Categories nest at most one level deep: children never have
// children of their own.
type Category struct {
	ID        uuid.UUID
	Name      string
	Icon      *string
	Type      BillType // Bills attached to this category must share its type
	ParentID  *uuid.UUID
	LedgerID  *uuid.UUID
	SortOrder int // Ascending display priority
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}

// NewCategory creates a new Category entity.
func NewCategory(name string, icon *string, billType BillType, parentID, ledgerID *uuid.UUID, sortOrder int) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        uuid.New(),
		Name:      name,
		Icon:      icon,
		Type:      billType,
		ParentID:  parentID,
		LedgerID:  ledgerID,
		SortOrder: sortOrder,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func systemCategory(name, icon string, billType BillType, sortOrder int) *Category {
	return NewCategory(name, &icon, billType, nil, nil, sortOrder)
}

// DefaultExpenseCategories returns the system-wide expense categories seeded
// on first startup.
func DefaultExpenseCategories() []*Category {
	return []*Category{
		systemCategory("Food & Dining", "food", BillTypeExpense, 1),
		systemCategory("Transport", "transport", BillTypeExpense, 2),
		systemCategory("Shopping", "shopping", BillTypeExpense, 3),
		systemCategory("Entertainment", "entertainment", BillTypeExpense, 4),
		systemCategory("Housing", "housing", BillTypeExpense, 5),
		systemCategory("Medical", "medical", BillTypeExpense, 6),
		systemCategory("Education", "education", BillTypeExpense, 7),
		systemCategory("Communication", "communication", BillTypeExpense, 8),
		systemCategory("Other", "other", BillTypeExpense, 99),
	}
}

// DefaultIncomeCategories returns the system-wide income categories seeded
// on first startup.
func DefaultIncomeCategories() []*Category {
	return []*Category{
		systemCategory("Salary", "salary", BillTypeIncome, 1),
		systemCategory("Bonus", "bonus", BillTypeIncome, 2),
		systemCategory("Investment", "investment", BillTypeIncome, 3),
		systemCategory("Part-time", "part-time", BillTypeIncome, 4),
		systemCategory("Gift", "red-packet", BillTypeIncome, 5),
		systemCategory("Other", "other", BillTypeIncome, 99),
	}
}

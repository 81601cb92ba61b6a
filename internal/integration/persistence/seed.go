// Package persistence implements the repository interfaces using GORM.
package persistence

import (
	"context"
	"fmt"

	"github.com/ledgerbook/backend/internal/application/adapter"
	"github.com/ledgerbook/backend/internal/domain/entity"
)

type defaultCategory struct {
	name string
	icon string
	typ  entity.BillType
}

// System defaults visible to every ledger. Seeded once on first startup.
var defaultCategories = []defaultCategory{
	{"Food & Dining", "🍜", entity.BillTypeExpense},
	{"Transport", "🚌", entity.BillTypeExpense},
	{"Shopping", "🛍️", entity.BillTypeExpense},
	{"Housing", "🏠", entity.BillTypeExpense},
	{"Utilities", "💡", entity.BillTypeExpense},
	{"Entertainment", "🎬", entity.BillTypeExpense},
	{"Health", "💊", entity.BillTypeExpense},
	{"Education", "📚", entity.BillTypeExpense},
	{"Travel", "✈️", entity.BillTypeExpense},
	{"Other Expense", "📦", entity.BillTypeExpense},
	{"Salary", "💰", entity.BillTypeIncome},
	{"Bonus", "🎁", entity.BillTypeIncome},
	{"Investment", "📈", entity.BillTypeIncome},
	{"Other Income", "💵", entity.BillTypeIncome},
}

// SeedDefaultCategories inserts the system default categories if none exist.
// It is idempotent across restarts: any existing system category skips the
// whole seed.
func SeedDefaultCategories(ctx context.Context, categoryRepo adapter.CategoryRepository) error {
	count, err := categoryRepo.CountSystemDefaults(ctx)
	if err != nil {
		return fmt.Errorf("failed to count system categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	for i, d := range defaultCategories {
		icon := d.icon
		category := entity.NewCategory(d.name, &icon, d.typ, nil, nil, i)
		if err := categoryRepo.Create(ctx, category); err != nil {
			return fmt.Errorf("failed to seed category %q: %w", d.name, err)
		}
	}
	return nil
}

package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/ledgerbook/backend/internal/domain/entity"
	domainerror "github.com/ledgerbook/backend/internal/domain/error"
)

func TestCategoryRepositorySoftDelete(t *testing.T) {
	db := openTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	ledgerID := uuid.New()
	category := entity.NewCategory("Coffee", nil, entity.BillTypeExpense, nil, &ledgerID, 0)
	if err := repo.Create(ctx, category); err != nil {
		t.Fatalf("failed to create category: %v", err)
	}

	if err := repo.Delete(ctx, category.ID); err != nil {
		t.Fatalf("failed to delete category: %v", err)
	}

	// The live lookup no longer sees it
	if _, err := repo.FindByID(ctx, category.ID); !errors.Is(err, domainerror.ErrCategoryNotFound) {
		t.Errorf("expected ErrCategoryNotFound from FindByID, got %v", err)
	}

	// The unscoped lookup still resolves its name for historical bills
	found, err := repo.FindAnyByID(ctx, category.ID)
	if err != nil {
		t.Fatalf("unexpected error from FindAnyByID: %v", err)
	}
	if found.Name != "Coffee" {
		t.Errorf("expected last-known name Coffee, got %q", found.Name)
	}
	if found.DeletedAt == nil {
		t.Error("expected DeletedAt to be set on soft-deleted category")
	}
}

func TestCategoryRepositoryFindVisible(t *testing.T) {
	db := openTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	ledgerID := uuid.New()
	otherLedgerID := uuid.New()

	system := entity.NewCategory("Transport", nil, entity.BillTypeExpense, nil, nil, 1)
	mine := entity.NewCategory("Pets", nil, entity.BillTypeExpense, nil, &ledgerID, 2)
	income := entity.NewCategory("Salary", nil, entity.BillTypeIncome, nil, nil, 3)
	foreign := entity.NewCategory("Hobby", nil, entity.BillTypeExpense, nil, &otherLedgerID, 4)
	for _, c := range []*entity.Category{system, mine, income, foreign} {
		if err := repo.Create(ctx, c); err != nil {
			t.Fatalf("failed to create category: %v", err)
		}
	}

	t.Run("ledger sees system plus own", func(t *testing.T) {
		categories, err := repo.FindVisible(ctx, &ledgerID, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		names := make([]string, len(categories))
		for i, c := range categories {
			names[i] = c.Name
		}
		if len(categories) != 3 {
			t.Fatalf("expected 3 visible categories, got %v", names)
		}
		// sort_order ascending
		if names[0] != "Transport" || names[1] != "Pets" || names[2] != "Salary" {
			t.Errorf("unexpected order: %v", names)
		}
	})

	t.Run("nil ledger sees only system defaults", func(t *testing.T) {
		categories, err := repo.FindVisible(ctx, nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(categories) != 2 {
			t.Fatalf("expected 2 system categories, got %d", len(categories))
		}
	})

	t.Run("type filter restricts rows", func(t *testing.T) {
		incomeType := entity.BillTypeIncome
		categories, err := repo.FindVisible(ctx, &ledgerID, &incomeType)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(categories) != 1 || categories[0].Name != "Salary" {
			t.Fatalf("expected only Salary, got %d rows", len(categories))
		}
	})

	t.Run("counts system defaults", func(t *testing.T) {
		count, err := repo.CountSystemDefaults(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != 2 {
			t.Errorf("expected 2 system defaults, got %d", count)
		}
	})
}

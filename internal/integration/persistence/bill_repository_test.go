package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ledgerbook/backend/internal/application/adapter"
	"github.com/ledgerbook/backend/internal/domain/entity"
	domainerror "github.com/ledgerbook/backend/internal/domain/error"
	"github.com/ledgerbook/backend/internal/integration/persistence/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.LedgerModel{},
		&model.CategoryModel{},
		&model.BillModel{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func newTestBill(ledgerID, categoryID, userID uuid.UUID, billType entity.BillType, amount string, day string) *entity.Bill {
	date, err := time.Parse("2006-01-02", day)
	if err != nil {
		panic(err)
	}
	return entity.NewBill(ledgerID, categoryID, userID, billType, decimal.RequireFromString(amount), "", date)
}

func TestBillRepositoryFindByFilter(t *testing.T) {
	db := openTestDB(t)
	repo := NewBillRepository(db)
	ctx := context.Background()

	ledgerID := uuid.New()
	otherLedgerID := uuid.New()
	categoryID := uuid.New()
	otherCategoryID := uuid.New()
	userID := uuid.New()
	otherUserID := uuid.New()

	seed := []*entity.Bill{
		newTestBill(ledgerID, categoryID, userID, entity.BillTypeExpense, "10.00", "2025-03-01"),
		newTestBill(ledgerID, categoryID, userID, entity.BillTypeExpense, "20.00", "2025-03-05"),
		newTestBill(ledgerID, otherCategoryID, otherUserID, entity.BillTypeIncome, "300.00", "2025-03-10"),
		newTestBill(ledgerID, categoryID, userID, entity.BillTypeExpense, "40.00", "2025-04-01"),
		newTestBill(otherLedgerID, categoryID, userID, entity.BillTypeExpense, "99.00", "2025-03-05"),
	}
	for _, b := range seed {
		if err := repo.Create(ctx, b); err != nil {
			t.Fatalf("failed to seed bill: %v", err)
		}
	}

	page := adapter.BillPagination{Page: 1, PageSize: 20}

	t.Run("scopes to ledger", func(t *testing.T) {
		result, err := repo.FindByFilter(ctx, adapter.BillFilter{LedgerID: ledgerID}, page)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Total != 4 {
			t.Fatalf("expected total 4, got %d", result.Total)
		}
		// Newest bill date first
		if got := result.Bills[0].BillDate.Format("2006-01-02"); got != "2025-04-01" {
			t.Errorf("expected newest bill first, got %s", got)
		}
	})

	t.Run("date range bounds are inclusive", func(t *testing.T) {
		start := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
		result, err := repo.FindByFilter(ctx, adapter.BillFilter{
			LedgerID:  ledgerID,
			StartDate: &start,
			EndDate:   &end,
		}, page)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Total != 2 {
			t.Fatalf("expected total 2, got %d", result.Total)
		}
	})

	t.Run("filters by type category and creator", func(t *testing.T) {
		incomeType := entity.BillTypeIncome
		result, err := repo.FindByFilter(ctx, adapter.BillFilter{
			LedgerID: ledgerID,
			Type:     &incomeType,
		}, page)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Total != 1 || !result.Bills[0].Amount.Equal(decimal.RequireFromString("300.00")) {
			t.Fatalf("expected single income bill of 300.00, got total %d", result.Total)
		}

		result, err = repo.FindByFilter(ctx, adapter.BillFilter{
			LedgerID:   ledgerID,
			CategoryID: &otherCategoryID,
			UserID:     &otherUserID,
		}, page)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Total != 1 {
			t.Fatalf("expected total 1, got %d", result.Total)
		}
	})

	t.Run("out of range page keeps true total", func(t *testing.T) {
		result, err := repo.FindByFilter(ctx, adapter.BillFilter{LedgerID: ledgerID}, adapter.BillPagination{Page: 5, PageSize: 20})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(result.Bills) != 0 {
			t.Errorf("expected empty page, got %d bills", len(result.Bills))
		}
		if result.Total != 4 {
			t.Errorf("expected total 4, got %d", result.Total)
		}
		if result.TotalPages != 1 {
			t.Errorf("expected 1 total page, got %d", result.TotalPages)
		}
	})

	t.Run("pagination splits pages", func(t *testing.T) {
		result, err := repo.FindByFilter(ctx, adapter.BillFilter{LedgerID: ledgerID}, adapter.BillPagination{Page: 2, PageSize: 3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(result.Bills) != 1 {
			t.Errorf("expected 1 bill on second page, got %d", len(result.Bills))
		}
		if result.TotalPages != 2 {
			t.Errorf("expected 2 total pages, got %d", result.TotalPages)
		}
	})

	t.Run("empty ledger yields one empty page", func(t *testing.T) {
		result, err := repo.FindByFilter(ctx, adapter.BillFilter{LedgerID: uuid.New()}, page)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Total != 0 || len(result.Bills) != 0 {
			t.Errorf("expected empty result, got total %d", result.Total)
		}
		if result.TotalPages != 1 {
			t.Errorf("expected 1 total page, got %d", result.TotalPages)
		}
	})
}

func TestBillRepositoryFindAllByFilter(t *testing.T) {
	db := openTestDB(t)
	repo := NewBillRepository(db)
	ctx := context.Background()

	ledgerID := uuid.New()
	categoryID := uuid.New()
	userID := uuid.New()

	for _, day := range []string{"2025-03-10", "2025-03-01", "2025-03-05"} {
		if err := repo.Create(ctx, newTestBill(ledgerID, categoryID, userID, entity.BillTypeExpense, "10.00", day)); err != nil {
			t.Fatalf("failed to seed bill: %v", err)
		}
	}

	bills, err := repo.FindAllByFilter(ctx, adapter.BillFilter{LedgerID: ledgerID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bills) != 3 {
		t.Fatalf("expected 3 bills, got %d", len(bills))
	}
	// Oldest bill date first for aggregation scans
	for i, want := range []string{"2025-03-01", "2025-03-05", "2025-03-10"} {
		if got := bills[i].BillDate.Format("2006-01-02"); got != want {
			t.Errorf("bill %d: expected date %s, got %s", i, want, got)
		}
	}
}

func TestBillRepositoryUpdateAndDelete(t *testing.T) {
	db := openTestDB(t)
	repo := NewBillRepository(db)
	ctx := context.Background()

	bill := newTestBill(uuid.New(), uuid.New(), uuid.New(), entity.BillTypeExpense, "10.00", "2025-03-01")
	if err := repo.Create(ctx, bill); err != nil {
		t.Fatalf("failed to create bill: %v", err)
	}

	bill.Amount = decimal.RequireFromString("25.50")
	bill.Note = "updated"
	if err := repo.Update(ctx, bill); err != nil {
		t.Fatalf("failed to update bill: %v", err)
	}

	found, err := repo.FindByID(ctx, bill.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found.Amount.Equal(decimal.RequireFromString("25.50")) || found.Note != "updated" {
		t.Errorf("update not persisted: amount=%s note=%q", found.Amount, found.Note)
	}

	if err := repo.Delete(ctx, bill.ID); err != nil {
		t.Fatalf("failed to delete bill: %v", err)
	}

	if _, err := repo.FindByID(ctx, bill.ID); !errors.Is(err, domainerror.ErrBillNotFound) {
		t.Errorf("expected ErrBillNotFound after delete, got %v", err)
	}
}

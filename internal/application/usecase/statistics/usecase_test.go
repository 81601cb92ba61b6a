package statistics

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerbook/backend/internal/application/adapter"
	"github.com/ledgerbook/backend/internal/application/usecase/ledger"
	"github.com/ledgerbook/backend/internal/domain/entity"
	domainerror "github.com/ledgerbook/backend/internal/domain/error"
)

// fakeBillRepo serves FindAllByFilter from an in-memory slice, applying the
// same filter semantics the SQL layer does.
type fakeBillRepo struct {
	adapter.BillRepository
	bills      []*entity.Bill
	lastFilter adapter.BillFilter
}

func (r *fakeBillRepo) FindAllByFilter(_ context.Context, filter adapter.BillFilter) ([]*entity.Bill, error) {
	r.lastFilter = filter
	matched := make([]*entity.Bill, 0)
	for _, b := range r.bills {
		if b.LedgerID != filter.LedgerID {
			continue
		}
		if filter.StartDate != nil && DateOf(b.BillDate).Before(DateOf(*filter.StartDate)) {
			continue
		}
		if filter.EndDate != nil && DateOf(b.BillDate).After(DateOf(*filter.EndDate)) {
			continue
		}
		if filter.Type != nil && b.Type != *filter.Type {
			continue
		}
		matched = append(matched, b)
	}
	return matched, nil
}

type fakeCategoryRepo struct {
	adapter.CategoryRepository
	live    map[uuid.UUID]*entity.Category
	deleted map[uuid.UUID]*entity.Category
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	if c, ok := r.live[id]; ok {
		return c, nil
	}
	return nil, domainerror.ErrCategoryNotFound
}

func (r *fakeCategoryRepo) FindAnyByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	if c, ok := r.live[id]; ok {
		return c, nil
	}
	if c, ok := r.deleted[id]; ok {
		return c, nil
	}
	return nil, domainerror.ErrCategoryNotFound
}

type fakeLedgerRepo struct {
	adapter.LedgerRepository
	ledgers map[uuid.UUID]*entity.Ledger
}

func (r *fakeLedgerRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Ledger, error) {
	if l, ok := r.ledgers[id]; ok {
		return l, nil
	}
	return nil, domainerror.ErrLedgerNotFound
}

type fakeGroupRepo struct {
	adapter.GroupRepository
	members map[uuid.UUID]map[uuid.UUID]*entity.GroupMember
}

func (r *fakeGroupRepo) GetMember(_ context.Context, groupID, userID uuid.UUID) (*entity.GroupMember, error) {
	return r.members[groupID][userID], nil
}

type statisticsFixture struct {
	owner     uuid.UUID
	ledgerID  uuid.UUID
	bills     *fakeBillRepo
	categories *fakeCategoryRepo
	access    *ledger.AccessChecker
}

func newStatisticsFixture() *statisticsFixture {
	owner := uuid.New()
	personal := entity.NewPersonalLedger("Daily", owner, "")

	return &statisticsFixture{
		owner:    owner,
		ledgerID: personal.ID,
		bills:    &fakeBillRepo{},
		categories: &fakeCategoryRepo{
			live:    make(map[uuid.UUID]*entity.Category),
			deleted: make(map[uuid.UUID]*entity.Category),
		},
		access: ledger.NewAccessChecker(
			&fakeLedgerRepo{ledgers: map[uuid.UUID]*entity.Ledger{personal.ID: personal}},
			&fakeGroupRepo{members: make(map[uuid.UUID]map[uuid.UUID]*entity.GroupMember)},
		),
	}
}

func (f *statisticsFixture) addBill(billType entity.BillType, amount, day string, categoryID uuid.UUID) {
	b := bill(billType, amount, day, categoryID)
	b.LedgerID = f.ledgerID
	b.UserID = f.owner
	f.bills.bills = append(f.bills.bills, b)
}

func (f *statisticsFixture) addCategory(name string, billType entity.BillType) uuid.UUID {
	icon := "icon"
	c := entity.NewCategory(name, &icon, billType, nil, nil, 1)
	f.categories.live[c.ID] = c
	return c.ID
}

func TestGetStatisticsUseCase_Execute(t *testing.T) {
	clock := fixedClock{now: date("2025-03-15")}

	t.Run("combines summary, breakdown, daily and trend over one range", func(t *testing.T) {
		f := newStatisticsFixture()
		food := f.addCategory("Food", entity.BillTypeExpense)
		salary := f.addCategory("Salary", entity.BillTypeIncome)
		f.addBill(entity.BillTypeExpense, "80", "2025-03-10", food)
		f.addBill(entity.BillTypeExpense, "20", "2025-03-11", food)
		f.addBill(entity.BillTypeIncome, "500", "2025-03-12", salary)
		// Outside the month, must not be counted.
		f.addBill(entity.BillTypeExpense, "999", "2025-02-01", food)

		uc := NewGetStatisticsUseCase(f.bills, f.categories, f.access, NewDateRangeResolver(clock))
		out, err := uc.Execute(context.Background(), GetStatisticsInput{
			UserID:   f.owner,
			LedgerID: f.ledgerID,
			Period:   PeriodMonth,
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		if !out.StartDate.Equal(date("2025-03-01")) || !out.EndDate.Equal(date("2025-03-31")) {
			t.Errorf("range = (%s, %s), want March 2025", out.StartDate, out.EndDate)
		}
		if !out.Summary.TotalExpense.Equal(decimal.RequireFromString("100")) {
			t.Errorf("TotalExpense = %s, want 100", out.Summary.TotalExpense)
		}
		if !out.Summary.Balance.Equal(decimal.RequireFromString("400")) {
			t.Errorf("Balance = %s, want 400", out.Summary.Balance)
		}

		if len(out.ByCategory) != 1 {
			t.Fatalf("ByCategory rows = %d, want 1 (expense default)", len(out.ByCategory))
		}
		if out.ByCategory[0].CategoryName != "Food" {
			t.Errorf("CategoryName = %q, want Food", out.ByCategory[0].CategoryName)
		}
		if out.ByCategory[0].Percentage != 100 {
			t.Errorf("Percentage = %f, want 100", out.ByCategory[0].Percentage)
		}

		if len(out.Daily) != 31 {
			t.Errorf("Daily days = %d, want 31", len(out.Daily))
		}
		if len(out.Trend) != 3 {
			t.Errorf("Trend buckets = %d, want 3 daily buckets", len(out.Trend))
		}
	})

	t.Run("explicit income filter flips the breakdown", func(t *testing.T) {
		f := newStatisticsFixture()
		salary := f.addCategory("Salary", entity.BillTypeIncome)
		f.addBill(entity.BillTypeIncome, "500", "2025-03-12", salary)

		billType := "income"
		uc := NewGetStatisticsUseCase(f.bills, f.categories, f.access, NewDateRangeResolver(clock))
		out, err := uc.Execute(context.Background(), GetStatisticsInput{
			UserID:   f.owner,
			LedgerID: f.ledgerID,
			Period:   PeriodMonth,
			BillType: &billType,
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if len(out.ByCategory) != 1 || out.ByCategory[0].CategoryName != "Salary" {
			t.Errorf("ByCategory = %+v, want one Salary row", out.ByCategory)
		}
	})

	t.Run("year period buckets the trend by month", func(t *testing.T) {
		f := newStatisticsFixture()
		food := f.addCategory("Food", entity.BillTypeExpense)
		f.addBill(entity.BillTypeExpense, "10", "2025-01-05", food)
		f.addBill(entity.BillTypeExpense, "10", "2025-02-05", food)

		uc := NewGetStatisticsUseCase(f.bills, f.categories, f.access, NewDateRangeResolver(clock))
		out, err := uc.Execute(context.Background(), GetStatisticsInput{
			UserID:   f.owner,
			LedgerID: f.ledgerID,
			Period:   PeriodYear,
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if len(out.Trend) != 2 || out.Trend[0].Period != "2025-01" || out.Trend[1].Period != "2025-02" {
			t.Errorf("Trend = %+v, want monthly buckets 2025-01 and 2025-02", out.Trend)
		}
	})

	t.Run("deleted category keeps its last-known name with no icon", func(t *testing.T) {
		f := newStatisticsFixture()
		icon := "coffee"
		gone := entity.NewCategory("Coffee", &icon, entity.BillTypeExpense, nil, nil, 1)
		f.categories.deleted[gone.ID] = gone
		f.addBill(entity.BillTypeExpense, "15", "2025-03-10", gone.ID)

		uc := NewGetStatisticsUseCase(f.bills, f.categories, f.access, NewDateRangeResolver(clock))
		out, err := uc.Execute(context.Background(), GetStatisticsInput{
			UserID:   f.owner,
			LedgerID: f.ledgerID,
			Period:   PeriodMonth,
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if out.ByCategory[0].CategoryName != "Coffee" {
			t.Errorf("CategoryName = %q, want last-known name Coffee", out.ByCategory[0].CategoryName)
		}
		if out.ByCategory[0].CategoryIcon != nil {
			t.Errorf("CategoryIcon = %v, want nil for a deleted category", *out.ByCategory[0].CategoryIcon)
		}
	})

	t.Run("vanished category falls back to a placeholder name", func(t *testing.T) {
		f := newStatisticsFixture()
		f.addBill(entity.BillTypeExpense, "15", "2025-03-10", uuid.New())

		uc := NewGetStatisticsUseCase(f.bills, f.categories, f.access, NewDateRangeResolver(clock))
		out, err := uc.Execute(context.Background(), GetStatisticsInput{
			UserID:   f.owner,
			LedgerID: f.ledgerID,
			Period:   PeriodMonth,
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if out.ByCategory[0].CategoryName != "Unknown" {
			t.Errorf("CategoryName = %q, want Unknown", out.ByCategory[0].CategoryName)
		}
	})

	t.Run("unknown ledger returns not found", func(t *testing.T) {
		f := newStatisticsFixture()
		uc := NewGetStatisticsUseCase(f.bills, f.categories, f.access, NewDateRangeResolver(clock))
		_, err := uc.Execute(context.Background(), GetStatisticsInput{
			UserID:   f.owner,
			LedgerID: uuid.New(),
			Period:   PeriodMonth,
		})
		if !errors.Is(err, domainerror.ErrLedgerNotFound) {
			t.Errorf("error = %v, want ErrLedgerNotFound", err)
		}
	})

	t.Run("foreign user is denied before any aggregation", func(t *testing.T) {
		f := newStatisticsFixture()
		uc := NewGetStatisticsUseCase(f.bills, f.categories, f.access, NewDateRangeResolver(clock))
		_, err := uc.Execute(context.Background(), GetStatisticsInput{
			UserID:   uuid.New(),
			LedgerID: f.ledgerID,
			Period:   PeriodMonth,
		})
		if !errors.Is(err, domainerror.ErrLedgerAccessDenied) {
			t.Errorf("error = %v, want ErrLedgerAccessDenied", err)
		}
	})
}

func TestGetCategoryStatisticsUseCase_Execute(t *testing.T) {
	t.Run("pushes the type filter into the store query", func(t *testing.T) {
		f := newStatisticsFixture()
		food := f.addCategory("Food", entity.BillTypeExpense)
		salary := f.addCategory("Salary", entity.BillTypeIncome)
		f.addBill(entity.BillTypeExpense, "30", "2025-03-01", food)
		f.addBill(entity.BillTypeIncome, "500", "2025-03-02", salary)

		uc := NewGetCategoryStatisticsUseCase(f.bills, f.categories, f.access)
		out, err := uc.Execute(context.Background(), GetCategoryStatisticsInput{
			UserID:   f.owner,
			LedgerID: f.ledgerID,
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if f.bills.lastFilter.Type == nil || *f.bills.lastFilter.Type != entity.BillTypeExpense {
			t.Errorf("filter type = %v, want expense default", f.bills.lastFilter.Type)
		}
		if len(out.Stats) != 1 || out.Stats[0].CategoryName != "Food" {
			t.Errorf("Stats = %+v, want one Food row", out.Stats)
		}
	})

	t.Run("malformed dates are treated as no bound", func(t *testing.T) {
		f := newStatisticsFixture()
		food := f.addCategory("Food", entity.BillTypeExpense)
		f.addBill(entity.BillTypeExpense, "30", "2020-01-01", food)

		uc := NewGetCategoryStatisticsUseCase(f.bills, f.categories, f.access)
		out, err := uc.Execute(context.Background(), GetCategoryStatisticsInput{
			UserID:    f.owner,
			LedgerID:  f.ledgerID,
			StartDate: "not-a-date",
			EndDate:   "also-bad",
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if f.bills.lastFilter.StartDate != nil || f.bills.lastFilter.EndDate != nil {
			t.Errorf("filter bounds = (%v, %v), want both nil", f.bills.lastFilter.StartDate, f.bills.lastFilter.EndDate)
		}
		if len(out.Stats) != 1 {
			t.Errorf("Stats rows = %d, want 1", len(out.Stats))
		}
	})
}

func TestGetTrendStatisticsUseCase_Execute(t *testing.T) {
	t.Run("buckets by the requested granularity", func(t *testing.T) {
		f := newStatisticsFixture()
		food := f.addCategory("Food", entity.BillTypeExpense)
		f.addBill(entity.BillTypeExpense, "10", "2025-03-03", food)
		f.addBill(entity.BillTypeExpense, "20", "2025-03-10", food)

		uc := NewGetTrendStatisticsUseCase(f.bills, f.access)
		out, err := uc.Execute(context.Background(), GetTrendStatisticsInput{
			UserID:    f.owner,
			LedgerID:  f.ledgerID,
			StartDate: "2025-03-01",
			EndDate:   "2025-03-31",
			GroupBy:   GranularityWeek,
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if len(out.Trend) != 2 {
			t.Fatalf("Trend buckets = %d, want 2", len(out.Trend))
		}
		if out.Trend[0].Period != "2025-W10" || out.Trend[1].Period != "2025-W11" {
			t.Errorf("buckets = [%s, %s], want [2025-W10, 2025-W11]", out.Trend[0].Period, out.Trend[1].Period)
		}
	})

	t.Run("missing dates are a hard validation error", func(t *testing.T) {
		f := newStatisticsFixture()
		uc := NewGetTrendStatisticsUseCase(f.bills, f.access)
		_, err := uc.Execute(context.Background(), GetTrendStatisticsInput{
			UserID:   f.owner,
			LedgerID: f.ledgerID,
		})
		if !errors.Is(err, domainerror.ErrMissingStatisticsRange) {
			t.Errorf("error = %v, want ErrMissingStatisticsRange", err)
		}
	})

	t.Run("malformed dates are a hard validation error", func(t *testing.T) {
		f := newStatisticsFixture()
		uc := NewGetTrendStatisticsUseCase(f.bills, f.access)
		_, err := uc.Execute(context.Background(), GetTrendStatisticsInput{
			UserID:    f.owner,
			LedgerID:  f.ledgerID,
			StartDate: "03/01/2025",
			EndDate:   "2025-03-31",
		})
		if !errors.Is(err, domainerror.ErrInvalidStatisticsDate) {
			t.Errorf("error = %v, want ErrInvalidStatisticsDate", err)
		}
	})
}

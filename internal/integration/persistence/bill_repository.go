// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ledgerbook/backend/internal/application/adapter"
	"github.com/ledgerbook/backend/internal/domain/entity"
	domainerror "github.com/ledgerbook/backend/internal/domain/error"
	"github.com/ledgerbook/backend/internal/integration/persistence/model"
)

// billRepository implements the adapter.BillRepository interface.
type billRepository struct {
	db *gorm.DB
}

// NewBillRepository creates a new bill repository instance.
func NewBillRepository(db *gorm.DB) adapter.BillRepository {
	return &billRepository{
		db: db,
	}
}

// Create creates a new bill in the database.
func (r *billRepository) Create(ctx context.Context, bill *entity.Bill) error {
	billModel := model.BillFromEntity(bill)
	result := r.db.WithContext(ctx).Create(billModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a bill by its ID.
func (r *billRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	var billModel model.BillModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&billModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBillNotFound
		}
		return nil, result.Error
	}
	return billModel.ToEntity(), nil
}

// applyFilter translates a BillFilter into WHERE clauses. Both the paginated
// listing and the unpaginated statistics scan go through here, so the filter
// semantics are defined once.
func applyFilter(query *gorm.DB, filter adapter.BillFilter) *gorm.DB {
	query = query.Where("ledger_id = ?", filter.LedgerID)

	if filter.StartDate != nil {
		query = query.Where("bill_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("bill_date <= ?", *filter.EndDate)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	return query
}

// FindByFilter retrieves one page of bills matching the filter, sorted by
// bill date descending.
func (r *billRepository) FindByFilter(ctx context.Context, filter adapter.BillFilter, pagination adapter.BillPagination) (*adapter.BillListResult, error) {
	query := applyFilter(r.db.WithContext(ctx).Model(&model.BillModel{}), filter)

	// Get total count
	var total int64
	countQuery := query.Session(&gorm.Session{})
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, err
	}

	// Calculate pagination
	offset := (pagination.Page - 1) * pagination.PageSize
	totalPages := int((total + int64(pagination.PageSize) - 1) / int64(pagination.PageSize))
	if totalPages == 0 {
		totalPages = 1
	}

	var billModels []model.BillModel
	result := query.
		Order("bill_date DESC, created_at DESC").
		Offset(offset).
		Limit(pagination.PageSize).
		Find(&billModels)
	if result.Error != nil {
		return nil, result.Error
	}

	bills := make([]*entity.Bill, len(billModels))
	for i, bm := range billModels {
		bills[i] = bm.ToEntity()
	}

	return &adapter.BillListResult{
		Bills:      bills,
		Total:      total,
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
		TotalPages: totalPages,
	}, nil
}

// FindAllByFilter retrieves every bill matching the filter, unpaginated.
func (r *billRepository) FindAllByFilter(ctx context.Context, filter adapter.BillFilter) ([]*entity.Bill, error) {
	query := applyFilter(r.db.WithContext(ctx).Model(&model.BillModel{}), filter)

	var billModels []model.BillModel
	result := query.Order("bill_date ASC, created_at ASC").Find(&billModels)
	if result.Error != nil {
		return nil, result.Error
	}

	bills := make([]*entity.Bill, len(billModels))
	for i, bm := range billModels {
		bills[i] = bm.ToEntity()
	}
	return bills, nil
}

// Update updates an existing bill in the database.
func (r *billRepository) Update(ctx context.Context, bill *entity.Bill) error {
	billModel := model.BillFromEntity(bill)
	result := r.db.WithContext(ctx).Save(billModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a bill from the database.
func (r *billRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.BillModel{})
	return result.Error
}

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

// ledgerRepository implements the adapter.LedgerRepository interface.
type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates a new ledger repository instance.
func NewLedgerRepository(db *gorm.DB) adapter.LedgerRepository {
	return &ledgerRepository{
		db: db,
	}
}

// Create creates a new ledger in the database.
func (r *ledgerRepository) Create(ctx context.Context, ledger *entity.Ledger) error {
	ledgerModel := model.LedgerFromEntity(ledger)
	result := r.db.WithContext(ctx).Create(ledgerModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a ledger by its ID.
func (r *ledgerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Ledger, error) {
	var ledgerModel model.LedgerModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&ledgerModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrLedgerNotFound
		}
		return nil, result.Error
	}
	return ledgerModel.ToEntity(), nil
}

// FindByUser retrieves all personal ledgers owned by a user.
func (r *ledgerRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Ledger, error) {
	var ledgerModels []model.LedgerModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&ledgerModels)
	if result.Error != nil {
		return nil, result.Error
	}

	ledgers := make([]*entity.Ledger, len(ledgerModels))
	for i, lm := range ledgerModels {
		ledgers[i] = lm.ToEntity()
	}
	return ledgers, nil
}

// FindByGroup retrieves all ledgers owned by a group.
func (r *ledgerRepository) FindByGroup(ctx context.Context, groupID uuid.UUID) ([]*entity.Ledger, error) {
	var ledgerModels []model.LedgerModel
	result := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("created_at ASC").
		Find(&ledgerModels)
	if result.Error != nil {
		return nil, result.Error
	}

	ledgers := make([]*entity.Ledger, len(ledgerModels))
	for i, lm := range ledgerModels {
		ledgers[i] = lm.ToEntity()
	}
	return ledgers, nil
}

// Update updates an existing ledger in the database.
func (r *ledgerRepository) Update(ctx context.Context, ledger *entity.Ledger) error {
	ledgerModel := model.LedgerFromEntity(ledger)
	result := r.db.WithContext(ctx).Save(ledgerModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a ledger and its bills from the database.
func (r *ledgerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ledger_id = ?", id).Delete(&model.BillModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("ledger_id = ?", id).Delete(&model.CategoryModel{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.LedgerModel{}).Error
	})
}

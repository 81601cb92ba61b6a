// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerbook/backend/internal/domain/entity"
)

// BillModel represents the bills table in the database.
type BillModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	LedgerID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID uuid.UUID       `gorm:"type:uuid;not null;index"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type       string          `gorm:"type:varchar(10);not null;index"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Note       string          `gorm:"type:text"`
	BillDate   time.Time       `gorm:"type:date;not null;index"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
	User     *UserModel     `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the BillModel.
func (BillModel) TableName() string {
	return "bills"
}

// ToEntity converts a BillModel to a domain Bill entity.
func (m *BillModel) ToEntity() *entity.Bill {
	return &entity.Bill{
		ID:         m.ID,
		LedgerID:   m.LedgerID,
		CategoryID: m.CategoryID,
		UserID:     m.UserID,
		Type:       entity.BillType(m.Type),
		Amount:     m.Amount,
		Note:       m.Note,
		BillDate:   m.BillDate,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// BillFromEntity converts a domain Bill entity to a BillModel.
func BillFromEntity(bill *entity.Bill) *BillModel {
	return &BillModel{
		ID:         bill.ID,
		LedgerID:   bill.LedgerID,
		CategoryID: bill.CategoryID,
		UserID:     bill.UserID,
		Type:       string(bill.Type),
		Amount:     bill.Amount,
		Note:       bill.Note,
		BillDate:   bill.BillDate,
		CreatedAt:  bill.CreatedAt,
		UpdatedAt:  bill.UpdatedAt,
	}
}

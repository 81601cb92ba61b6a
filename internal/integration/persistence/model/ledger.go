// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/ledgerbook/backend/internal/domain/entity"
)

// LedgerModel represents the ledgers table in the database.
type LedgerModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name        string     `gorm:"type:varchar(100);not null"`
	Description *string    `gorm:"type:text"`
	Type        string     `gorm:"type:varchar(10);not null;index"`
	UserID      *uuid.UUID `gorm:"type:uuid;index"`
	GroupID     *uuid.UUID `gorm:"type:uuid;index"`
	Currency    string     `gorm:"type:varchar(3);not null"`
	CreatedAt   time.Time  `gorm:"not null"`
	UpdatedAt   time.Time  `gorm:"not null"`
}

// TableName returns the table name for the LedgerModel.
func (LedgerModel) TableName() string {
	return "ledgers"
}

// ToEntity converts a LedgerModel to a domain Ledger entity.
func (m *LedgerModel) ToEntity() *entity.Ledger {
	return &entity.Ledger{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Type:        entity.LedgerType(m.Type),
		UserID:      m.UserID,
		GroupID:     m.GroupID,
		Currency:    m.Currency,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// LedgerFromEntity converts a domain Ledger entity to a LedgerModel.
func LedgerFromEntity(ledger *entity.Ledger) *LedgerModel {
	return &LedgerModel{
		ID:          ledger.ID,
		Name:        ledger.Name,
		Description: ledger.Description,
		Type:        string(ledger.Type),
		UserID:      ledger.UserID,
		GroupID:     ledger.GroupID,
		Currency:    ledger.Currency,
		CreatedAt:   ledger.CreatedAt,
		UpdatedAt:   ledger.UpdatedAt,
	}
}

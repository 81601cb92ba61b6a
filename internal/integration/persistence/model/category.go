// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ledgerbook/backend/internal/domain/entity"
)

// CategoryModel represents the categories table in the database. Rows with a
// nil LedgerID are system defaults.
type CategoryModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name      string         `gorm:"type:varchar(100);not null"`
	Icon      *string        `gorm:"type:varchar(50)"`
	Type      string         `gorm:"type:varchar(10);not null;index"`
	ParentID  *uuid.UUID     `gorm:"type:uuid;index"`
	LedgerID  *uuid.UUID     `gorm:"type:uuid;index"`
	SortOrder int            `gorm:"not null;default:0"`
	CreatedAt time.Time      `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
	DeletedAt gorm.DeletedAt `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Category{
		ID:        m.ID,
		Name:      m.Name,
		Icon:      m.Icon,
		Type:      entity.BillType(m.Type),
		ParentID:  m.ParentID,
		LedgerID:  m.LedgerID,
		SortOrder: m.SortOrder,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		DeletedAt: deletedAt,
	}
}

// CategoryFromEntity converts a domain Category entity to a CategoryModel.
func CategoryFromEntity(category *entity.Category) *CategoryModel {
	m := &CategoryModel{
		ID:        category.ID,
		Name:      category.Name,
		Icon:      category.Icon,
		Type:      string(category.Type),
		ParentID:  category.ParentID,
		LedgerID:  category.LedgerID,
		SortOrder: category.SortOrder,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
	if category.DeletedAt != nil {
		m.DeletedAt = gorm.DeletedAt{Time: *category.DeletedAt, Valid: true}
	}
	return m
}

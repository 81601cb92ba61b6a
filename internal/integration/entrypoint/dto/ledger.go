// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/ledgerbook/backend/internal/domain/entity"
)

// CreateLedgerRequest represents the request body for ledger creation.
type CreateLedgerRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=100"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=1000"`
	Currency    string  `json:"currency,omitempty" binding:"omitempty,len=3"`
	GroupID     *string `json:"group_id,omitempty"`
}

// UpdateLedgerRequest represents the request body for a ledger update.
type UpdateLedgerRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=1000"`
	Currency    *string `json:"currency,omitempty" binding:"omitempty,len=3"`
}

// LedgerResponse represents a ledger in API responses.
type LedgerResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Type        string    `json:"type"`
	UserID      *string   `json:"user_id,omitempty"`
	GroupID     *string   `json:"group_id,omitempty"`
	Currency    string    `json:"currency"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToLedgerResponse converts a Ledger entity to a LedgerResponse.
func ToLedgerResponse(ledger *entity.Ledger) LedgerResponse {
	resp := LedgerResponse{
		ID:          ledger.ID.String(),
		Name:        ledger.Name,
		Description: ledger.Description,
		Type:        string(ledger.Type),
		Currency:    ledger.Currency,
		CreatedAt:   ledger.CreatedAt,
		UpdatedAt:   ledger.UpdatedAt,
	}
	if ledger.UserID != nil {
		id := ledger.UserID.String()
		resp.UserID = &id
	}
	if ledger.GroupID != nil {
		id := ledger.GroupID.String()
		resp.GroupID = &id
	}
	return resp
}

// LedgerListResponse represents the response for listing ledgers.
type LedgerListResponse struct {
	Ledgers []LedgerResponse `json:"ledgers"`
}

// ToLedgerListResponse converts ledgers to a LedgerListResponse.
func ToLedgerListResponse(ledgers []*entity.Ledger) LedgerListResponse {
	resp := LedgerListResponse{Ledgers: make([]LedgerResponse, len(ledgers))}
	for i, ledger := range ledgers {
		resp.Ledgers[i] = ToLedgerResponse(ledger)
	}
	return resp
}

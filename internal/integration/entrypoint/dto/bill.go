// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/ledgerbook/backend/internal/domain/entity"
)

// CreateBillRequest represents the request body for bill creation. Amount is
// a string so values survive the wire without float rounding.
type CreateBillRequest struct {
	LedgerID   string `json:"ledger_id" binding:"required"`
	CategoryID string `json:"category_id" binding:"required"`
	Type       string `json:"type" binding:"required,oneof=expense income"`
	Amount     string `json:"amount" binding:"required"`
	Note       string `json:"note,omitempty" binding:"omitempty,max=1000"`
	BillDate   string `json:"bill_date" binding:"required"`
}

// UpdateBillRequest represents the request body for a bill update.
type UpdateBillRequest struct {
	CategoryID *string `json:"category_id,omitempty"`
	Type       *string `json:"type,omitempty" binding:"omitempty,oneof=expense income"`
	Amount     *string `json:"amount,omitempty"`
	Note       *string `json:"note,omitempty" binding:"omitempty,max=1000"`
	BillDate   *string `json:"bill_date,omitempty"`
}

// BillResponse represents a single bill in API responses.
type BillResponse struct {
	ID         string    `json:"id"`
	LedgerID   string    `json:"ledger_id"`
	CategoryID string    `json:"category_id"`
	UserID     string    `json:"user_id"`
	Type       string    `json:"type"`
	Amount     string    `json:"amount"`
	Note       string    `json:"note"`
	BillDate   string    `json:"bill_date"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ToBillResponse converts a Bill entity to a BillResponse.
func ToBillResponse(bill *entity.Bill) BillResponse {
	return BillResponse{
		ID:         bill.ID.String(),
		LedgerID:   bill.LedgerID.String(),
		CategoryID: bill.CategoryID.String(),
		UserID:     bill.UserID.String(),
		Type:       string(bill.Type),
		Amount:     bill.Amount.StringFixed(2),
		Note:       bill.Note,
		BillDate:   bill.BillDate.Format("2006-01-02"),
		CreatedAt:  bill.CreatedAt,
		UpdatedAt:  bill.UpdatedAt,
	}
}

// BillPaginationResponse represents pagination information in API responses.
type BillPaginationResponse struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// BillListResponse represents the response for listing bills.
type BillListResponse struct {
	Bills      []BillResponse         `json:"bills"`
	Pagination BillPaginationResponse `json:"pagination"`
}

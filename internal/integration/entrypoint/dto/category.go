// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/ledgerbook/backend/internal/application/usecase/category"
	"github.com/ledgerbook/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	LedgerID  string  `json:"ledger_id" binding:"required"`
	Name      string  `json:"name" binding:"required,min=1,max=100"`
	Icon      *string `json:"icon,omitempty" binding:"omitempty,max=50"`
	Type      string  `json:"type" binding:"required,oneof=expense income"`
	ParentID  *string `json:"parent_id,omitempty"`
	SortOrder int     `json:"sort_order,omitempty"`
}

// UpdateCategoryRequest represents the request body for a category update.
type UpdateCategoryRequest struct {
	Name      *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Icon      *string `json:"icon,omitempty" binding:"omitempty,max=50"`
	SortOrder *int    `json:"sort_order,omitempty"`
}

// CategoryResponse represents a category in API responses.
type CategoryResponse struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Icon      *string            `json:"icon,omitempty"`
	Type      string             `json:"type"`
	ParentID  *string            `json:"parent_id,omitempty"`
	LedgerID  *string            `json:"ledger_id,omitempty"`
	IsSystem  bool               `json:"is_system"`
	SortOrder int                `json:"sort_order"`
	Children  []CategoryResponse `json:"children,omitempty"`
}

// ToCategoryResponse converts a Category entity to a CategoryResponse.
func ToCategoryResponse(c *entity.Category) CategoryResponse {
	resp := CategoryResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		Icon:      c.Icon,
		Type:      string(c.Type),
		IsSystem:  c.LedgerID == nil,
		SortOrder: c.SortOrder,
	}
	if c.ParentID != nil {
		id := c.ParentID.String()
		resp.ParentID = &id
	}
	if c.LedgerID != nil {
		id := c.LedgerID.String()
		resp.LedgerID = &id
	}
	return resp
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryListResponse converts category nodes to a CategoryListResponse.
func ToCategoryListResponse(nodes []*category.CategoryNode) CategoryListResponse {
	resp := CategoryListResponse{Categories: make([]CategoryResponse, len(nodes))}
	for i, node := range nodes {
		root := ToCategoryResponse(node.Category)
		for _, child := range node.Children {
			root.Children = append(root.Children, ToCategoryResponse(child))
		}
		resp.Categories[i] = root
	}
	return resp
}

// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ledgerbook/backend/internal/application/adapter"
	"github.com/ledgerbook/backend/internal/application/usecase/ledger"
	"github.com/ledgerbook/backend/internal/domain/entity"
)

// CategoryNode is a category with its direct children attached. Categories
// nest at most one level, so children never have children.
type CategoryNode struct {
	Category *entity.Category
	Children []*entity.Category
}

// ListCategoriesInput represents the input for listing visible categories.
// LedgerID is optional: when absent only system defaults are returned. Type
// optionally restricts the listing to one bill type.
type ListCategoriesInput struct {
	UserID   uuid.UUID
	LedgerID *uuid.UUID
	Type     *string
}

// ListCategoriesOutput represents the output of listing categories: roots in
// sort order, each with its children in sort order.
type ListCategoriesOutput struct {
	Categories []*CategoryNode
}

// ListCategoriesUseCase handles category listing.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
	access       *ledger.AccessChecker
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository, access *ledger.AccessChecker) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
		access:       access,
	}
}

// Execute lists the system defaults plus the ledger's custom categories,
// arranged as a one-level tree.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	if input.LedgerID != nil {
		if _, err := uc.access.Authorize(ctx, *input.LedgerID, input.UserID); err != nil {
			return nil, err
		}
	}

	var billType *entity.BillType
	if input.Type != nil {
		t := entity.BillType(*input.Type)
		if t == entity.BillTypeIncome || t == entity.BillTypeExpense {
			billType = &t
		}
	}

	categories, err := uc.categoryRepo.FindVisible(ctx, input.LedgerID, billType)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	// FindVisible returns sort order ascending, so roots and children both
	// come out ordered without re-sorting.
	nodes := make([]*CategoryNode, 0, len(categories))
	index := make(map[uuid.UUID]*CategoryNode)
	for _, c := range categories {
		if c.ParentID == nil {
			node := &CategoryNode{Category: c}
			nodes = append(nodes, node)
			index[c.ID] = node
		}
	}
	for _, c := range categories {
		if c.ParentID == nil {
			continue
		}
		if parent, ok := index[*c.ParentID]; ok {
			parent.Children = append(parent.Children, c)
		} else {
			// Orphaned child (its parent is filtered out or deleted): surface
			// it as a root rather than hiding it.
			nodes = append(nodes, &CategoryNode{Category: c})
		}
	}

	return &ListCategoriesOutput{Categories: nodes}, nil
}

// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ledgerbook/backend/internal/application/adapter"
	"github.com/ledgerbook/backend/internal/application/usecase/ledger"
	"github.com/ledgerbook/backend/internal/domain/entity"
	domainerror "github.com/ledgerbook/backend/internal/domain/error"
)

// CreateCategoryInput represents the input for creating a custom category on
// a ledger.
type CreateCategoryInput struct {
	UserID    uuid.UUID
	LedgerID  uuid.UUID
	Name      string
	Icon      *string
	Type      string
	ParentID  *uuid.UUID
	SortOrder int
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles custom category creation. System defaults
// are seeded at startup and never created through this path.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	access       *ledger.AccessChecker
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository, access *ledger.AccessChecker) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
		access:       access,
	}
}

// Execute performs the category creation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	if _, err := uc.access.Authorize(ctx, input.LedgerID, input.UserID); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameRequired,
			"category name is required",
			domainerror.ErrCategoryNameRequired,
		)
	}

	billType := entity.BillType(input.Type)
	if billType != entity.BillTypeIncome && billType != entity.BillTypeExpense {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryType,
			"category type must be income or expense",
			domainerror.ErrInvalidCategoryType,
		)
	}

	// A parent must exist, share the type, and be a root itself
	if input.ParentID != nil {
		parent, err := uc.categoryRepo.FindByID(ctx, *input.ParentID)
		if err != nil {
			if errors.Is(err, domainerror.ErrCategoryNotFound) {
				return nil, domainerror.NewCategoryError(
					domainerror.ErrCodeCategoryNotFound,
					"parent category not found",
					domainerror.ErrCategoryNotFound,
				)
			}
			return nil, fmt.Errorf("failed to load parent category: %w", err)
		}
		if parent.ParentID != nil {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNestingTooDeep,
				"categories nest at most one level deep",
				domainerror.ErrCategoryNestingTooDeep,
			)
		}
		if parent.Type != billType {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeInvalidCategoryType,
				"parent category type does not match",
				domainerror.ErrInvalidCategoryType,
			)
		}
	}

	category := entity.NewCategory(name, input.Icon, billType, input.ParentID, &input.LedgerID, input.SortOrder)
	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &CreateCategoryOutput{Category: category}, nil
}

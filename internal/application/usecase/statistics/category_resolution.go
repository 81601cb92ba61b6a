// Package statistics contains the statistics aggregation use cases.
package statistics

import (
	"context"
	"errors"

	"github.com/ledgerbook/backend/internal/application/adapter"
	"github.com/ledgerbook/backend/internal/domain/entity"
	domainerror "github.com/ledgerbook/backend/internal/domain/error"
)

// fallbackCategoryName is used when a bill references a category that no
// longer exists in any form.
const fallbackCategoryName = "Unknown"

// ResolvedCategoryStat is a CategoryStat with the category's display name and
// icon resolved at read time.
type ResolvedCategoryStat struct {
	CategoryStat
	CategoryName string
	CategoryIcon *string
}

// resolveCategoryStats joins each stat row with the category's current name
// and icon. A category deleted since its bills were written falls back to its
// last-known name with a nil icon; a row missing entirely falls back to a
// placeholder. A dangling reference never fails the request.
func resolveCategoryStats(
	ctx context.Context,
	categoryRepo adapter.CategoryRepository,
	stats []CategoryStat,
) ([]ResolvedCategoryStat, error) {
	resolved := make([]ResolvedCategoryStat, 0, len(stats))
	for _, stat := range stats {
		row := ResolvedCategoryStat{
			CategoryStat: stat,
			CategoryName: fallbackCategoryName,
		}

		category, err := categoryRepo.FindByID(ctx, stat.CategoryID)
		if err != nil && errors.Is(err, domainerror.ErrCategoryNotFound) {
			category, err = categoryRepo.FindAnyByID(ctx, stat.CategoryID)
			if err != nil && !errors.Is(err, domainerror.ErrCategoryNotFound) {
				return nil, err
			}
			if category != nil {
				// Last-known name, but never a stale icon for a dead category.
				row.CategoryName = category.Name
			}
		} else if err != nil {
			return nil, err
		} else {
			row.CategoryName = category.Name
			row.CategoryIcon = category.Icon
		}

		resolved = append(resolved, row)
	}
	return resolved, nil
}

// parseOptionalBillType parses an optional wire type filter for category
// breakdowns. Absent or unrecognized values default to expense; the summary
// path deliberately does not share this default.
func parseOptionalBillType(s *string) entity.BillType {
	if s != nil {
		if t := ParseBillType(*s); t != nil {
			return *t
		}
	}
	return entity.BillTypeExpense
}

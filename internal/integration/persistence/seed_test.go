package persistence

import (
	"context"
	"testing"
)

func TestSeedDefaultCategoriesIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	if err := SeedDefaultCategories(ctx, repo); err != nil {
		t.Fatalf("first seed failed: %v", err)
	}

	count, err := repo.CountSystemDefaults(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != int64(len(defaultCategories)) {
		t.Fatalf("expected %d system categories, got %d", len(defaultCategories), count)
	}

	// Running again must not duplicate anything
	if err := SeedDefaultCategories(ctx, repo); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}

	count, err = repo.CountSystemDefaults(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != int64(len(defaultCategories)) {
		t.Errorf("expected seed to be idempotent, got %d categories", count)
	}
}

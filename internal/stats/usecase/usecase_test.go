package usecase_test

import (
	"context"
	"testing"
	"time"

	"campus-lostfound/internal/model"
	"campus-lostfound/internal/stats/usecase"
	"campus-lostfound/pkg/log"
)

type fakeRepo struct {
	items []model.Item
}

func (f *fakeRepo) ListAllItems(ctx context.Context) ([]model.Item, error) {
	return f.items, nil
}

func seedItems() []model.Item {
	now := time.Now().UTC()
	return []model.Item{
		{Type: model.ItemTypeLost, Category: "Bags", Location: "Main Library", Status: model.ItemStatusActive, CreatedAt: now},
		{Type: model.ItemTypeLost, Category: "Keys", Location: "Gym", Status: model.ItemStatusResolved, CreatedAt: now},
		{Type: model.ItemTypeFound, Category: "Bags", Location: "Library Annex", Status: model.ItemStatusActive, CreatedAt: now},
		{Type: model.ItemTypeFound, Category: "Bags", Location: "Cafeteria", Status: model.ItemStatusMatched, CreatedAt: now},
	}
}

func TestOverall(t *testing.T) {
	ctx := context.Background()

	t.Run("Counts", func(t *testing.T) {
		uc := usecase.New(&fakeRepo{items: seedItems()}, log.Noop())
		out, err := uc.Overall(ctx)
		if err != nil {
			t.Fatalf("overall: %v", err)
		}
		if out.TotalItems != 4 || out.LostItems != 2 || out.FoundItems != 2 || out.ResolvedItems != 1 {
			t.Errorf("unexpected counts %+v", out)
		}
		if c := out.CategoryData["Bags"]; c.Lost != 1 || c.Found != 2 {
			t.Errorf("unexpected Bags counts %+v", c)
		}
		if c := out.CategoryData["Keys"]; c.Lost != 1 || c.Found != 0 {
			t.Errorf("unexpected Keys counts %+v", c)
		}
	})

	t.Run("Buckets Are Zero Filled", func(t *testing.T) {
		uc := usecase.New(&fakeRepo{}, log.Noop())
		out, err := uc.Overall(ctx)
		if err != nil {
			t.Fatalf("overall: %v", err)
		}
		if len(out.MonthlyData) != 12 {
			t.Errorf("expected 12 monthly buckets, got %d", len(out.MonthlyData))
		}
		if len(out.RecentDays) != 30 {
			t.Errorf("expected 30 daily buckets, got %d", len(out.RecentDays))
		}
	})

	t.Run("Fresh Items Land In The Newest Buckets", func(t *testing.T) {
		uc := usecase.New(&fakeRepo{items: seedItems()}, log.Noop())
		out, err := uc.Overall(ctx)
		if err != nil {
			t.Fatalf("overall: %v", err)
		}
		current := out.MonthlyData[len(out.MonthlyData)-1]
		if current.Lost != 2 || current.Found != 2 {
			t.Errorf("expected all items in the current month, got %+v", current)
		}
		if out.RecentDays[0].Total != 4 {
			t.Errorf("expected all items today, got %+v", out.RecentDays[0])
		}
	})
}

func TestCategory(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(&fakeRepo{items: seedItems()}, log.Noop())

	out, err := uc.Category(ctx, "Bags")
	if err != nil {
		t.Fatalf("category: %v", err)
	}
	if out.TotalItems != 3 || out.LostItems != 1 || out.FoundItems != 2 {
		t.Errorf("unexpected counts %+v", out)
	}
	if len(out.TopLocations) != 3 {
		t.Fatalf("expected 3 locations, got %d", len(out.TopLocations))
	}
	for _, loc := range out.TopLocations {
		if loc.Total != 1 {
			t.Errorf("unexpected location count %+v", loc)
		}
	}

	empty, err := uc.Category(ctx, "Umbrellas")
	if err != nil {
		t.Fatalf("category: %v", err)
	}
	if empty.TotalItems != 0 || len(empty.TopLocations) != 0 {
		t.Errorf("expected empty aggregate, got %+v", empty)
	}
}

func TestLocation(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(&fakeRepo{items: seedItems()}, log.Noop())

	// Matches "Main Library" and "Library Annex" by containment.
	out, err := uc.Location(ctx, "library")
	if err != nil {
		t.Fatalf("location: %v", err)
	}
	if out.TotalItems != 2 || out.LostItems != 1 || out.FoundItems != 1 {
		t.Errorf("unexpected counts %+v", out)
	}
	if len(out.CategoryBreakdown) != 1 || out.CategoryBreakdown[0].Category != "Bags" {
		t.Errorf("unexpected breakdown %+v", out.CategoryBreakdown)
	}
	if out.CategoryBreakdown[0].Total != 2 {
		t.Errorf("expected 2 Bags, got %d", out.CategoryBreakdown[0].Total)
	}
}

func TestDaily(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(&fakeRepo{items: seedItems()}, log.Noop())

	out, err := uc.Daily(ctx)
	if err != nil {
		t.Fatalf("daily: %v", err)
	}
	if len(out.Days) != 30 {
		t.Fatalf("expected 30 days, got %d", len(out.Days))
	}
	if out.Days[0].Total != 4 {
		t.Errorf("expected all items today, got %+v", out.Days[0])
	}
}


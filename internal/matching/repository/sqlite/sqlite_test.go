package sqlite_test

import (
	"context"
	"testing"
	"time"

	itemRepo "campus-lostfound/internal/item/repository"
	itemSQLite "campus-lostfound/internal/item/repository/sqlite"
	repo "campus-lostfound/internal/matching/repository"
	"campus-lostfound/internal/matching/repository/sqlite"
	"campus-lostfound/internal/model"
	storage "campus-lostfound/internal/storage/sqlite"
	"campus-lostfound/pkg/log"
)

func seedItem(t *testing.T, items itemRepo.Repository, typ model.ItemType, name, category, location string) model.Item {
	t.Helper()
	it, err := items.CreateItem(context.Background(), itemRepo.CreateItemOptions{
		UserID:       "user-1",
		Type:         typ,
		Name:         name,
		Category:     category,
		Location:     location,
		DateOccurred: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seed item: %v", err)
	}
	return it
}

func TestMatchRepository(t *testing.T) {
	ctx := context.Background()
	db := storage.NewTestDB(t)
	items := itemSQLite.New(db, log.Noop())
	r := sqlite.New(db, log.Noop())

	lost := seedItem(t, items, model.ItemTypeLost, "backpack", "Bags", "Library")
	found := seedItem(t, items, model.ItemTypeFound, "backpack", "Bags", "Library")

	t.Run("Create Assigns ID And Pending", func(t *testing.T) {
		m, err := r.CreateMatch(ctx, repo.CreateMatchOptions{
			LostItemID:  lost.ID,
			FoundItemID: found.ID,
			MatchScore:  85,
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if m.ID == "" {
			t.Error("expected assigned ID")
		}
		if m.Status != model.MatchStatusPending {
			t.Errorf("expected pending, got %s", m.Status)
		}
		if m.CreatedAt.IsZero() {
			t.Error("expected createdAt set")
		}
	})

	t.Run("Duplicate Pair Rejected", func(t *testing.T) {
		_, err := r.CreateMatch(ctx, repo.CreateMatchOptions{
			LostItemID:  lost.ID,
			FoundItemID: found.ID,
			MatchScore:  90,
		})
		if err != repo.ErrDuplicatePair {
			t.Errorf("expected ErrDuplicatePair, got %v", err)
		}
	})

	t.Run("Exists", func(t *testing.T) {
		exists, err := r.MatchExists(ctx, lost.ID, found.ID)
		if err != nil {
			t.Fatalf("exists: %v", err)
		}
		if !exists {
			t.Error("expected pair to exist")
		}
		exists, err = r.MatchExists(ctx, found.ID, lost.ID)
		if err != nil {
			t.Fatalf("exists: %v", err)
		}
		if exists {
			t.Error("reversed pair must not count")
		}
	})

	t.Run("Get One", func(t *testing.T) {
		all, err := r.ListMatches(ctx, repo.ListMatchesOptions{})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		got, err := r.GetOneMatch(ctx, repo.GetOneMatchOptions{ID: all[0].ID})
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.ID != all[0].ID {
			t.Errorf("expected %s, got %s", all[0].ID, got.ID)
		}

		missing, err := r.GetOneMatch(ctx, repo.GetOneMatchOptions{ID: "nope"})
		if err != nil {
			t.Fatalf("get missing: %v", err)
		}
		if missing.ID != "" {
			t.Error("expected zero-value match for missing ID")
		}
	})

	t.Run("Update Status And Delete", func(t *testing.T) {
		all, _ := r.ListMatches(ctx, repo.ListMatchesOptions{})
		id := all[0].ID

		if err := r.UpdateMatchStatus(ctx, id, model.MatchStatusConfirmed); err != nil {
			t.Fatalf("update: %v", err)
		}
		got, _ := r.GetOneMatch(ctx, repo.GetOneMatchOptions{ID: id})
		if got.Status != model.MatchStatusConfirmed {
			t.Errorf("expected confirmed, got %s", got.Status)
		}

		if err := r.DeleteMatch(ctx, id); err != nil {
			t.Fatalf("delete: %v", err)
		}
		got, _ = r.GetOneMatch(ctx, repo.GetOneMatchOptions{ID: id})
		if got.ID != "" {
			t.Error("expected match gone")
		}
	})
}

func TestListMatchesOrdering(t *testing.T) {
	ctx := context.Background()
	db := storage.NewTestDB(t)
	items := itemSQLite.New(db, log.Noop())
	r := sqlite.New(db, log.Noop())

	lost1 := seedItem(t, items, model.ItemTypeLost, "backpack", "Bags", "Library")
	lost2 := seedItem(t, items, model.ItemTypeLost, "keys", "Keys", "Gym")
	found1 := seedItem(t, items, model.ItemTypeFound, "backpack", "Bags", "Library")
	found2 := seedItem(t, items, model.ItemTypeFound, "keys", "Keys", "Gym")

	mustCreate := func(lostID, foundID string, score int) model.Match {
		m, err := r.CreateMatch(ctx, repo.CreateMatchOptions{LostItemID: lostID, FoundItemID: foundID, MatchScore: score})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		return m
	}

	first85 := mustCreate(lost1.ID, found1.ID, 85)
	mustCreate(lost2.ID, found2.ID, 92)
	mustCreate(lost1.ID, found2.ID, 85)

	all, err := r.ListMatches(ctx, repo.ListMatchesOptions{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3, got %d", len(all))
	}
	if all[0].MatchScore != 92 {
		t.Errorf("expected best score first, got %d", all[0].MatchScore)
	}
	if all[1].ID != first85.ID {
		t.Errorf("expected older 85 before newer 85")
	}

	forItem, err := r.ListMatches(ctx, repo.ListMatchesOptions{ItemID: found2.ID})
	if err != nil {
		t.Fatalf("list for item: %v", err)
	}
	if len(forItem) != 2 {
		t.Errorf("expected 2 matches touching found2, got %d", len(forItem))
	}
}

func TestListCandidates(t *testing.T) {
	ctx := context.Background()
	db := storage.NewTestDB(t)
	items := itemSQLite.New(db, log.Noop())
	r := sqlite.New(db, log.Noop())

	sameCategory := seedItem(t, items, model.ItemTypeFound, "tote bag", "Bags", "Gym")
	containsLocation := seedItem(t, items, model.ItemTypeFound, "umbrella", "Accessories", "Main Library Floor 2")
	seedItem(t, items, model.ItemTypeFound, "charger", "Electronics", "Cafeteria")
	seedItem(t, items, model.ItemTypeLost, "wallet", "Bags", "Library") // same type, never a candidate

	resolved := seedItem(t, items, model.ItemTypeFound, "duffel", "Bags", "Library")
	if _, err := items.UpdateItem(ctx, itemRepo.UpdateItemOptions{
		ID:       resolved.ID,
		Name:     resolved.Name,
		Category: resolved.Category,
		Location: resolved.Location,
		Status:   model.ItemStatusResolved,
	}); err != nil {
		t.Fatalf("resolve: %v", err)
	}

	got, err := r.ListCandidates(ctx, repo.CandidateOptions{
		Type:     model.ItemTypeFound,
		Category: "Bags",
		Location: "Library",
	})
	if err != nil {
		t.Fatalf("list candidates: %v", err)
	}

	ids := make(map[string]bool, len(got))
	for _, it := range got {
		ids[it.ID] = true
	}
	if len(got) != 2 || !ids[sameCategory.ID] || !ids[containsLocation.ID] {
		t.Errorf("unexpected candidates: %v", ids)
	}
}

func TestGetItemByID(t *testing.T) {
	ctx := context.Background()
	db := storage.NewTestDB(t)
	items := itemSQLite.New(db, log.Noop())
	r := sqlite.New(db, log.Noop())

	it := seedItem(t, items, model.ItemTypeLost, "backpack", "Bags", "Library")

	got, err := r.GetItemByID(ctx, it.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != it.ID || got.Name != "backpack" {
		t.Errorf("unexpected item %+v", got)
	}

	missing, err := r.GetItemByID(ctx, "nope")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing.ID != "" {
		t.Error("expected zero-value item for missing ID")
	}
}

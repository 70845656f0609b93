package usecase_test

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"campus-lostfound/internal/matching"
	repo "campus-lostfound/internal/matching/repository"
	"campus-lostfound/internal/matching/usecase"
	"campus-lostfound/internal/model"
	"campus-lostfound/pkg/log"
)

// fakeRepo is an in-memory Repository mirroring the SQLite ordering and
// pre-filter semantics.
type fakeRepo struct {
	items   map[string]model.Item
	matches []model.Match
	seq     int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: make(map[string]model.Item)}
}

func (f *fakeRepo) addItem(it model.Item) model.Item {
	if it.Status == "" {
		it.Status = model.ItemStatusActive
	}
	f.items[it.ID] = it
	return it
}

func (f *fakeRepo) CreateMatch(ctx context.Context, opt repo.CreateMatchOptions) (model.Match, error) {
	for _, m := range f.matches {
		if m.LostItemID == opt.LostItemID && m.FoundItemID == opt.FoundItemID {
			return model.Match{}, repo.ErrDuplicatePair
		}
	}
	f.seq++
	m := model.Match{
		ID:          fmt.Sprintf("match-%d", f.seq),
		LostItemID:  opt.LostItemID,
		FoundItemID: opt.FoundItemID,
		MatchScore:  opt.MatchScore,
		Status:      model.MatchStatusPending,
		CreatedAt:   time.Unix(int64(f.seq), 0).UTC(),
	}
	f.matches = append(f.matches, m)
	return m, nil
}

func (f *fakeRepo) GetOneMatch(ctx context.Context, opt repo.GetOneMatchOptions) (model.Match, error) {
	for _, m := range f.matches {
		if m.ID == opt.ID {
			return m, nil
		}
	}
	return model.Match{}, nil
}

func (f *fakeRepo) MatchExists(ctx context.Context, lostItemID, foundItemID string) (bool, error) {
	for _, m := range f.matches {
		if m.LostItemID == lostItemID && m.FoundItemID == foundItemID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) ListMatches(ctx context.Context, opt repo.ListMatchesOptions) ([]model.Match, error) {
	out := make([]model.Match, 0, len(f.matches))
	for _, m := range f.matches {
		if opt.ItemID != "" && m.LostItemID != opt.ItemID && m.FoundItemID != opt.ItemID {
			continue
		}
		out = append(out, m)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].MatchScore != out[j].MatchScore {
			return out[i].MatchScore > out[j].MatchScore
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakeRepo) UpdateMatchStatus(ctx context.Context, id string, status model.MatchStatus) error {
	for i, m := range f.matches {
		if m.ID == id {
			f.matches[i].Status = status
			return nil
		}
	}
	return repo.ErrFailedToUpdate
}

func (f *fakeRepo) DeleteMatch(ctx context.Context, id string) error {
	for i, m := range f.matches {
		if m.ID == id {
			f.matches = append(f.matches[:i], f.matches[i+1:]...)
			return nil
		}
	}
	return repo.ErrFailedToDelete
}

func (f *fakeRepo) GetItemByID(ctx context.Context, id string) (model.Item, error) {
	return f.items[id], nil
}

func (f *fakeRepo) ListCandidates(ctx context.Context, opt repo.CandidateOptions) ([]model.Item, error) {
	var out []model.Item
	for _, it := range f.items {
		if it.Type != opt.Type || it.Status != model.ItemStatusActive {
			continue
		}
		if it.Category == opt.Category ||
			strings.Contains(strings.ToLower(it.Location), strings.ToLower(opt.Location)) {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAllItems(ctx context.Context) ([]model.Item, error) {
	out := make([]model.Item, 0, len(f.items))
	for _, it := range f.items {
		out = append(out, it)
	}
	return out, nil
}

func TestDiscover(t *testing.T) {
	ctx := context.Background()

	lostBackpack := model.Item{
		ID:          "lost-1",
		Type:        model.ItemTypeLost,
		Name:        "blue nike backpack",
		Description: "navy blue with white stripes",
		Category:    "Bags",
		Location:    "Student Center",
	}

	t.Run("Creates Pending Matches Above Threshold", func(t *testing.T) {
		f := newFakeRepo()
		f.addItem(lostBackpack)
		// Identical report, scores 100.
		f.addItem(model.Item{
			ID: "found-1", Type: model.ItemTypeFound,
			Name: "blue nike backpack", Description: "navy blue with white stripes",
			Category: "Bags", Location: "Student Center",
		})
		// Passes the pre-filter on location containment but scores only 10.
		f.addItem(model.Item{
			ID: "found-2", Type: model.ItemTypeFound,
			Name: "umbrella", Description: "black",
			Category: "Accessories", Location: "North Student Center Annex",
		})

		uc := usecase.New(f, log.Noop())
		out, err := uc.Discover(ctx, "lost-1")
		if err != nil {
			t.Fatalf("discover: %v", err)
		}
		if len(out.Matches) != 1 {
			t.Fatalf("expected 1 match, got %d", len(out.Matches))
		}
		m := out.Matches[0].Match
		if m.MatchScore != 100 {
			t.Errorf("expected score 100, got %d", m.MatchScore)
		}
		if m.Status != model.MatchStatusPending {
			t.Errorf("expected pending, got %s", m.Status)
		}
		if m.LostItemID != "lost-1" || m.FoundItemID != "found-1" {
			t.Errorf("unexpected pair (%s, %s)", m.LostItemID, m.FoundItemID)
		}
	})

	t.Run("Threshold Boundary At 30", func(t *testing.T) {
		f := newFakeRepo()
		f.addItem(model.Item{
			ID: "lost-1", Type: model.ItemTypeLost,
			Name: "black leather wallet cards cash",
			Category: "Wallets", Location: "Student Union",
		})
		// Exact location +20, name Jaccard 3/8 rounds to 9: scores 29.
		f.addItem(model.Item{
			ID: "found-29", Type: model.ItemTypeFound,
			Name: "black leather wallet phone keys charger",
			Category: "Accessories", Location: "Student Union",
		})
		// Exact location +20, name Jaccard 2/5 gives 10: scores 30.
		f.addItem(model.Item{
			ID: "found-30", Type: model.ItemTypeFound,
			Name: "black wallet",
			Category: "Accessories", Location: "Student Union",
		})

		uc := usecase.New(f, log.Noop())
		out, err := uc.Discover(ctx, "lost-1")
		if err != nil {
			t.Fatalf("discover: %v", err)
		}
		if len(out.Matches) != 1 {
			t.Fatalf("expected exactly 1 match, got %d", len(out.Matches))
		}
		m := out.Matches[0].Match
		if m.FoundItemID != "found-30" || m.MatchScore != 30 {
			t.Errorf("expected found-30 at score 30, got %s at %d", m.FoundItemID, m.MatchScore)
		}
	})

	t.Run("Orients Pair When Discovering From Found Item", func(t *testing.T) {
		f := newFakeRepo()
		f.addItem(lostBackpack)
		found := f.addItem(model.Item{
			ID: "found-1", Type: model.ItemTypeFound,
			Name: "blue nike backpack", Description: "navy blue with white stripes",
			Category: "Bags", Location: "Student Center",
		})

		uc := usecase.New(f, log.Noop())
		out, err := uc.Discover(ctx, found.ID)
		if err != nil {
			t.Fatalf("discover: %v", err)
		}
		if len(out.Matches) != 1 {
			t.Fatalf("expected 1 match, got %d", len(out.Matches))
		}
		m := out.Matches[0].Match
		if m.LostItemID != "lost-1" || m.FoundItemID != "found-1" {
			t.Errorf("pair not oriented lost-first: (%s, %s)", m.LostItemID, m.FoundItemID)
		}
	})

	t.Run("Idempotent On Repeat", func(t *testing.T) {
		f := newFakeRepo()
		f.addItem(lostBackpack)
		f.addItem(model.Item{
			ID: "found-1", Type: model.ItemTypeFound,
			Name: "blue nike backpack", Description: "navy blue with white stripes",
			Category: "Bags", Location: "Student Center",
		})

		uc := usecase.New(f, log.Noop())
		if _, err := uc.Discover(ctx, "lost-1"); err != nil {
			t.Fatalf("first discover: %v", err)
		}
		out, err := uc.Discover(ctx, "lost-1")
		if err != nil {
			t.Fatalf("second discover: %v", err)
		}
		if len(out.Matches) != 0 {
			t.Errorf("expected no new matches, got %d", len(out.Matches))
		}
		if len(f.matches) != 1 {
			t.Errorf("expected 1 stored match, got %d", len(f.matches))
		}
	})

	t.Run("Skips Inactive Candidates", func(t *testing.T) {
		f := newFakeRepo()
		f.addItem(lostBackpack)
		f.addItem(model.Item{
			ID: "found-1", Type: model.ItemTypeFound,
			Name: "blue nike backpack", Description: "navy blue with white stripes",
			Category: "Bags", Location: "Student Center",
			Status: model.ItemStatusResolved,
		})

		uc := usecase.New(f, log.Noop())
		out, err := uc.Discover(ctx, "lost-1")
		if err != nil {
			t.Fatalf("discover: %v", err)
		}
		if len(out.Matches) != 0 {
			t.Errorf("expected no matches against resolved item, got %d", len(out.Matches))
		}
	})

	t.Run("Unknown Item", func(t *testing.T) {
		uc := usecase.New(newFakeRepo(), log.Noop())
		if _, err := uc.Discover(ctx, "nope"); err != matching.ErrItemNotFound {
			t.Errorf("expected ErrItemNotFound, got %v", err)
		}
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()

	seed := func() (*fakeRepo, matching.UseCase) {
		f := newFakeRepo()
		f.addItem(model.Item{ID: "lost-1", Type: model.ItemTypeLost, Category: "Bags"})
		f.addItem(model.Item{ID: "lost-2", Type: model.ItemTypeLost, Category: "Keys"})
		f.addItem(model.Item{ID: "found-1", Type: model.ItemTypeFound, Category: "Bags"})
		f.addItem(model.Item{ID: "found-2", Type: model.ItemTypeFound, Category: "Keys"})
		f.CreateMatch(ctx, repo.CreateMatchOptions{LostItemID: "lost-1", FoundItemID: "found-1", MatchScore: 85})
		f.CreateMatch(ctx, repo.CreateMatchOptions{LostItemID: "lost-2", FoundItemID: "found-2", MatchScore: 92})
		f.CreateMatch(ctx, repo.CreateMatchOptions{LostItemID: "lost-1", FoundItemID: "found-2", MatchScore: 85})
		return f, usecase.New(f, log.Noop())
	}

	t.Run("Ordered By Score Then Age", func(t *testing.T) {
		_, uc := seed()
		out, err := uc.List(ctx, matching.ListMatchesInput{})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(out.Matches) != 3 {
			t.Fatalf("expected 3 matches, got %d", len(out.Matches))
		}
		scores := []int{out.Matches[0].Match.MatchScore, out.Matches[1].Match.MatchScore, out.Matches[2].Match.MatchScore}
		if scores[0] != 92 || scores[1] != 85 || scores[2] != 85 {
			t.Errorf("unexpected score order %v", scores)
		}
		// Equal scores keep creation order: the 85 created first comes first.
		if out.Matches[1].Match.ID != "match-1" {
			t.Errorf("expected older 85 first, got %s", out.Matches[1].Match.ID)
		}
	})

	t.Run("Joins Both Items", func(t *testing.T) {
		_, uc := seed()
		out, err := uc.List(ctx, matching.ListMatchesInput{})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		for _, v := range out.Matches {
			if v.LostItem == nil || v.FoundItem == nil {
				t.Fatalf("expected both items joined on %s", v.Match.ID)
			}
			if v.LostItem.ID != v.Match.LostItemID {
				t.Errorf("joined wrong lost item on %s", v.Match.ID)
			}
		}
	})

	t.Run("Deleted Item Joins As Nil", func(t *testing.T) {
		f, uc := seed()
		delete(f.items, "found-1")
		out, err := uc.List(ctx, matching.ListMatchesInput{})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		var checked bool
		for _, v := range out.Matches {
			if v.Match.FoundItemID == "found-1" {
				checked = true
				if v.FoundItem != nil {
					t.Error("expected nil FoundItem for deleted item")
				}
				if v.LostItem == nil {
					t.Error("expected surviving side to stay joined")
				}
			}
		}
		if !checked {
			t.Fatal("expected a match referencing the deleted item")
		}
	})

	t.Run("Category Filter Matches Either Side", func(t *testing.T) {
		_, uc := seed()
		out, err := uc.List(ctx, matching.ListMatchesInput{Category: "Bags"})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		// lost-1/found-1 (both Bags) and lost-1/found-2 (lost side Bags).
		if len(out.Matches) != 2 {
			t.Errorf("expected 2 matches, got %d", len(out.Matches))
		}
	})

	t.Run("Empty Store Returns Empty Slice", func(t *testing.T) {
		uc := usecase.New(newFakeRepo(), log.Noop())
		out, err := uc.List(ctx, matching.ListMatchesInput{})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if out.Matches == nil || len(out.Matches) != 0 {
			t.Errorf("expected empty non-nil slice, got %#v", out.Matches)
		}
	})
}

func TestGetForItem(t *testing.T) {
	ctx := context.Background()
	f := newFakeRepo()
	f.addItem(model.Item{ID: "lost-1", Type: model.ItemTypeLost})
	f.addItem(model.Item{ID: "found-1", Type: model.ItemTypeFound})
	f.addItem(model.Item{ID: "found-2", Type: model.ItemTypeFound})
	f.CreateMatch(ctx, repo.CreateMatchOptions{LostItemID: "lost-1", FoundItemID: "found-1", MatchScore: 70})
	f.CreateMatch(ctx, repo.CreateMatchOptions{LostItemID: "lost-1", FoundItemID: "found-2", MatchScore: 40})

	uc := usecase.New(f, log.Noop())

	out, err := uc.GetForItem(ctx, "found-2")
	if err != nil {
		t.Fatalf("get for item: %v", err)
	}
	if len(out.Matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(out.Matches))
	}
	if out.Matches[0].Match.FoundItemID != "found-2" {
		t.Errorf("unexpected match %s", out.Matches[0].Match.ID)
	}
}

func TestSetStatus(t *testing.T) {
	ctx := context.Background()

	seed := func() (*fakeRepo, matching.UseCase) {
		f := newFakeRepo()
		f.CreateMatch(ctx, repo.CreateMatchOptions{LostItemID: "lost-1", FoundItemID: "found-1", MatchScore: 70})
		return f, usecase.New(f, log.Noop())
	}

	t.Run("Confirms", func(t *testing.T) {
		f, uc := seed()
		err := uc.SetStatus(ctx, matching.SetStatusInput{ID: "match-1", Status: model.MatchStatusConfirmed})
		if err != nil {
			t.Fatalf("set status: %v", err)
		}
		if f.matches[0].Status != model.MatchStatusConfirmed {
			t.Errorf("expected confirmed, got %s", f.matches[0].Status)
		}
	})

	t.Run("Rejects Invalid Status", func(t *testing.T) {
		_, uc := seed()
		err := uc.SetStatus(ctx, matching.SetStatusInput{ID: "match-1", Status: "maybe"})
		if err != matching.ErrInvalidStatus {
			t.Errorf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("Unknown Match", func(t *testing.T) {
		_, uc := seed()
		err := uc.SetStatus(ctx, matching.SetStatusInput{ID: "nope", Status: model.MatchStatusRejected})
		if err != matching.ErrMatchNotFound {
			t.Errorf("expected ErrMatchNotFound, got %v", err)
		}
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	f := newFakeRepo()
	f.CreateMatch(ctx, repo.CreateMatchOptions{LostItemID: "lost-1", FoundItemID: "found-1", MatchScore: 70})
	uc := usecase.New(f, log.Noop())

	if err := uc.Delete(ctx, "match-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(f.matches) != 0 {
		t.Errorf("expected match removed, %d left", len(f.matches))
	}
	if err := uc.Delete(ctx, "match-1"); err != matching.ErrMatchNotFound {
		t.Errorf("expected ErrMatchNotFound, got %v", err)
	}
}

func TestStats(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty", func(t *testing.T) {
		uc := usecase.New(newFakeRepo(), log.Noop())
		out, err := uc.Stats(ctx)
		if err != nil {
			t.Fatalf("stats: %v", err)
		}
		if out.Total != 0 || out.AvgScore != 0 {
			t.Errorf("expected zeroed stats, got %+v", out)
		}
	})

	t.Run("Counts And Average", func(t *testing.T) {
		f := newFakeRepo()
		f.CreateMatch(ctx, repo.CreateMatchOptions{LostItemID: "l1", FoundItemID: "f1", MatchScore: 90})
		f.CreateMatch(ctx, repo.CreateMatchOptions{LostItemID: "l2", FoundItemID: "f2", MatchScore: 50})
		f.CreateMatch(ctx, repo.CreateMatchOptions{LostItemID: "l3", FoundItemID: "f3", MatchScore: 40})
		f.matches[0].Status = model.MatchStatusConfirmed
		f.matches[1].Status = model.MatchStatusRejected

		uc := usecase.New(f, log.Noop())
		out, err := uc.Stats(ctx)
		if err != nil {
			t.Fatalf("stats: %v", err)
		}
		if out.Total != 3 || out.Confirmed != 1 || out.Rejected != 1 || out.Pending != 1 {
			t.Errorf("unexpected counts %+v", out)
		}
		if out.AvgScore != 60 {
			t.Errorf("expected avg 60, got %v", out.AvgScore)
		}
	})
}

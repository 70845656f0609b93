package usecase

import (
	"context"

	"campus-lostfound/internal/matching"
	repo "campus-lostfound/internal/matching/repository"
	"campus-lostfound/internal/model"
)

// List returns all matches joined with their item records, optionally kept to
// those where either side has the given category. Repository ordering (score
// descending, creation ascending) is preserved.
func (uc *implUseCase) List(ctx context.Context, input matching.ListMatchesInput) (matching.ListMatchesOutput, error) {
	matches, err := uc.repo.ListMatches(ctx, repo.ListMatchesOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListMatches: %v", err)
		return matching.ListMatchesOutput{}, err
	}

	views, err := uc.join(ctx, matches)
	if err != nil {
		return matching.ListMatchesOutput{}, err
	}

	if input.Category != "" {
		views = filterByCategory(views, input.Category)
	}
	return matching.ListMatchesOutput{Matches: views}, nil
}

// GetForItem returns the matches referencing the item on either side.
func (uc *implUseCase) GetForItem(ctx context.Context, itemID string) (matching.ListMatchesOutput, error) {
	matches, err := uc.repo.ListMatches(ctx, repo.ListMatchesOptions{ItemID: itemID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetForItem ListMatches: %v", err)
		return matching.ListMatchesOutput{}, err
	}

	views, err := uc.join(ctx, matches)
	if err != nil {
		return matching.ListMatchesOutput{}, err
	}
	return matching.ListMatchesOutput{Matches: views}, nil
}

// Detail returns one match joined with its items.
func (uc *implUseCase) Detail(ctx context.Context, id string) (matching.DetailMatchOutput, error) {
	m, err := uc.repo.GetOneMatch(ctx, repo.GetOneMatchOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneMatch: %v", err)
		return matching.DetailMatchOutput{}, err
	}
	if m.ID == "" {
		return matching.DetailMatchOutput{}, matching.ErrMatchNotFound
	}

	views, err := uc.join(ctx, []model.Match{m})
	if err != nil {
		return matching.DetailMatchOutput{}, err
	}
	return matching.DetailMatchOutput{Match: views[0]}, nil
}

// join looks both item sides up fresh on every call, so item edits show up
// without rewriting matches. A deleted item joins as nil rather than failing
// the whole read.
func (uc *implUseCase) join(ctx context.Context, matches []model.Match) ([]matching.MatchView, error) {
	if len(matches) == 0 {
		return []matching.MatchView{}, nil
	}

	items, err := uc.repo.ListAllItems(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.join ListAllItems: %v", err)
		return nil, err
	}
	byID := make(map[string]model.Item, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}

	views := make([]matching.MatchView, 0, len(matches))
	for _, m := range matches {
		view := matching.MatchView{Match: m}
		if it, ok := byID[m.LostItemID]; ok {
			itCopy := it
			view.LostItem = &itCopy
		}
		if it, ok := byID[m.FoundItemID]; ok {
			itCopy := it
			view.FoundItem = &itCopy
		}
		views = append(views, view)
	}
	return views, nil
}

func filterByCategory(views []matching.MatchView, category string) []matching.MatchView {
	kept := make([]matching.MatchView, 0, len(views))
	for _, v := range views {
		if (v.LostItem != nil && v.LostItem.Category == category) ||
			(v.FoundItem != nil && v.FoundItem.Category == category) {
			kept = append(kept, v)
		}
	}
	return kept
}

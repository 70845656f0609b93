package usecase

import (
	"context"
	"errors"

	"campus-lostfound/internal/matching"
	repo "campus-lostfound/internal/matching/repository"
	"campus-lostfound/internal/metrics"
	"campus-lostfound/internal/model"
)

// Discover finds and persists candidate matches for a newly reported item.
//
// Candidates are opposite-type active items passing the coarse pre-filter
// (same category, or a location containing the new item's). Each candidate is
// oriented into a (lost, found) pair by type, skipped when the pair is
// already recorded, scored, and persisted as pending when the score reaches
// the qualification threshold. Re-running discovery for the same item is
// idempotent: it creates nothing new.
func (uc *implUseCase) Discover(ctx context.Context, itemID string) (matching.DiscoverOutput, error) {
	newItem, err := uc.repo.GetItemByID(ctx, itemID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Discover GetItemByID: %v", err)
		return matching.DiscoverOutput{}, err
	}
	if newItem.ID == "" {
		return matching.DiscoverOutput{}, matching.ErrItemNotFound
	}

	candidates, err := uc.repo.ListCandidates(ctx, repo.CandidateOptions{
		Type:     newItem.Type.Opposite(),
		Category: newItem.Category,
		Location: newItem.Location,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Discover ListCandidates: %v", err)
		return matching.DiscoverOutput{}, err
	}

	var created []matching.MatchView
	for _, candidate := range candidates {
		lost, found := orient(newItem, candidate)

		exists, err := uc.repo.MatchExists(ctx, lost.ID, found.ID)
		if err != nil {
			uc.l.Errorf(ctx, "uc.Discover MatchExists: %v", err)
			return matching.DiscoverOutput{Matches: created}, err
		}
		if exists {
			continue
		}

		score := matching.Score(lost, found)
		if score < matching.QualificationThreshold {
			continue
		}

		m, err := uc.repo.CreateMatch(ctx, repo.CreateMatchOptions{
			LostItemID:  lost.ID,
			FoundItemID: found.ID,
			MatchScore:  score,
		})
		if err != nil {
			// A concurrent discovery run recorded the pair first; not a failure.
			if errors.Is(err, repo.ErrDuplicatePair) {
				continue
			}
			uc.l.Errorf(ctx, "uc.Discover CreateMatch: %v", err)
			return matching.DiscoverOutput{Matches: created}, err
		}

		metrics.MatchesCreated.Inc()
		metrics.MatchScores.Observe(float64(score))

		lostCopy, foundCopy := lost, found
		created = append(created, matching.MatchView{
			Match:     m,
			LostItem:  &lostCopy,
			FoundItem: &foundCopy,
		})
	}

	uc.l.Infof(ctx, "uc.Discover: %d matches created for item %s", len(created), itemID)
	return matching.DiscoverOutput{Matches: created}, nil
}

// orient splits a (new item, candidate) pair into (lost, found) by type.
// The two are guaranteed opposite types by the candidate query.
func orient(a, b model.Item) (lost, found model.Item) {
	if a.Type == model.ItemTypeLost {
		return a, b
	}
	return b, a
}

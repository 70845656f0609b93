package usecase

import (
	"context"

	"campus-lostfound/internal/matching"
	repo "campus-lostfound/internal/matching/repository"
	"campus-lostfound/internal/model"
)

// Stats recomputes the match-quality summary on demand.
// AvgScore is 0 when no matches exist.
func (uc *implUseCase) Stats(ctx context.Context) (matching.StatsOutput, error) {
	matches, err := uc.repo.ListMatches(ctx, repo.ListMatchesOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Stats ListMatches: %v", err)
		return matching.StatsOutput{}, err
	}

	out := matching.StatsOutput{Total: len(matches)}
	sum := 0
	for _, m := range matches {
		sum += m.MatchScore
		switch m.Status {
		case model.MatchStatusConfirmed:
			out.Confirmed++
		case model.MatchStatusPending:
			out.Pending++
		case model.MatchStatusRejected:
			out.Rejected++
		}
	}
	if out.Total > 0 {
		out.AvgScore = float64(sum) / float64(out.Total)
	}
	return out, nil
}

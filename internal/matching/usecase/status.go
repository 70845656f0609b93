package usecase

import (
	"context"

	"campus-lostfound/internal/matching"
	repo "campus-lostfound/internal/matching/repository"
	"campus-lostfound/internal/metrics"
)

// SetStatus moves a match between pending/confirmed/rejected. The status is
// validated before any read or write happens.
func (uc *implUseCase) SetStatus(ctx context.Context, input matching.SetStatusInput) error {
	if !input.Status.Valid() {
		return matching.ErrInvalidStatus
	}

	existing, err := uc.repo.GetOneMatch(ctx, repo.GetOneMatchOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SetStatus GetOneMatch: %v", err)
		return err
	}
	if existing.ID == "" {
		return matching.ErrMatchNotFound
	}

	if err := uc.repo.UpdateMatchStatus(ctx, input.ID, input.Status); err != nil {
		uc.l.Errorf(ctx, "uc.SetStatus UpdateMatchStatus: %v", err)
		return err
	}

	metrics.MatchStatusUpdates.WithLabelValues(string(input.Status)).Inc()
	return nil
}

// Delete removes a match record. Returns ErrMatchNotFound when absent.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.repo.GetOneMatch(ctx, repo.GetOneMatchOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneMatch: %v", err)
		return err
	}
	if existing.ID == "" {
		return matching.ErrMatchNotFound
	}

	if err := uc.repo.DeleteMatch(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteMatch: %v", err)
		return err
	}
	return nil
}

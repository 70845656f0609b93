package usecase

import (
	"context"

	"campus-lostfound/internal/item"
	repo "campus-lostfound/internal/item/repository"
	"campus-lostfound/internal/metrics"
)

// Create persists a new report, then runs match discovery for it.
// Discovery is best-effort: the item stays created even when matching fails,
// so a discovery error is logged and reported as zero matches.
func (uc *implUseCase) Create(ctx context.Context, input item.CreateItemInput) (item.CreateItemOutput, error) {
	if !input.Type.Valid() {
		return item.CreateItemOutput{}, item.ErrInvalidType
	}
	if input.Name == "" || input.Category == "" || input.Location == "" {
		return item.CreateItemOutput{}, item.ErrInvalidPayload
	}

	created, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		UserID:       input.UserID,
		Type:         input.Type,
		Name:         input.Name,
		Description:  input.Description,
		Category:     input.Category,
		Location:     input.Location,
		Contact:      input.Contact,
		DateOccurred: input.DateOccurred,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateItem: %v", err)
		return item.CreateItemOutput{}, err
	}

	metrics.ItemsReported.WithLabelValues(string(created.Type)).Inc()

	out := item.CreateItemOutput{Item: created}
	if uc.matcher != nil {
		discovered, err := uc.matcher.Discover(ctx, created.ID)
		if err != nil {
			uc.l.Warnf(ctx, "uc.Create Discover for item %s: %v", created.ID, err)
			return out, nil
		}
		out.MatchesFound = len(discovered.Matches)
	}
	return out, nil
}

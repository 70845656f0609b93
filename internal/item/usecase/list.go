package usecase

import (
	"context"

	"campus-lostfound/internal/item"
	repo "campus-lostfound/internal/item/repository"
	"campus-lostfound/internal/model"
)

// List returns reports matching the filters, newest first.
func (uc *implUseCase) List(ctx context.Context, input item.ListItemsInput) (item.ListItemsOutput, error) {
	items, total, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{
		Type:     input.Type,
		Category: input.Category,
		Status:   input.Status,
		UserID:   input.UserID,
		Limit:    input.Limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListItems: %v", err)
		return item.ListItemsOutput{}, err
	}

	return item.ListItemsOutput{Items: items, Total: total}, nil
}

// Recent returns the most recently reported active items.
func (uc *implUseCase) Recent(ctx context.Context, limit int) (item.ListItemsOutput, error) {
	if limit <= 0 {
		limit = 10
	}
	items, total, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{
		Status: model.ItemStatusActive,
		Limit:  limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Recent ListItems: %v", err)
		return item.ListItemsOutput{}, err
	}
	return item.ListItemsOutput{Items: items, Total: total}, nil
}

// Search returns items whose text fields contain the term.
func (uc *implUseCase) Search(ctx context.Context, term string) (item.ListItemsOutput, error) {
	if term == "" {
		return item.ListItemsOutput{}, item.ErrInvalidPayload
	}
	items, err := uc.repo.SearchItems(ctx, term)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Search SearchItems: %v", err)
		return item.ListItemsOutput{}, err
	}
	return item.ListItemsOutput{Items: items, Total: len(items)}, nil
}

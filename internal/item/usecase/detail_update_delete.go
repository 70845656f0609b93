package usecase

import (
	"context"

	"campus-lostfound/internal/item"
	repo "campus-lostfound/internal/item/repository"
)

// Detail retrieves a single report by ID. Returns ErrItemNotFound when absent.
func (uc *implUseCase) Detail(ctx context.Context, id string) (item.DetailItemOutput, error) {
	it, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneItem: %v", err)
		return item.DetailItemOutput{}, err
	}
	if it.ID == "" {
		return item.DetailItemOutput{}, item.ErrItemNotFound
	}
	return item.DetailItemOutput{Item: it}, nil
}

// Update modifies an existing report. Empty fields keep their current value.
func (uc *implUseCase) Update(ctx context.Context, input item.UpdateItemInput) (item.UpdateItemOutput, error) {
	existing, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneItem: %v", err)
		return item.UpdateItemOutput{}, err
	}
	if existing.ID == "" {
		return item.UpdateItemOutput{}, item.ErrItemNotFound
	}
	if input.Status != "" && !input.Status.Valid() {
		return item.UpdateItemOutput{}, item.ErrInvalidStatus
	}

	status := existing.Status
	if input.Status != "" {
		status = input.Status
	}

	updated, err := uc.repo.UpdateItem(ctx, repo.UpdateItemOptions{
		ID:          input.ID,
		Name:        coalesce(input.Name, existing.Name),
		Description: coalesce(input.Description, existing.Description),
		Category:    coalesce(input.Category, existing.Category),
		Location:    coalesce(input.Location, existing.Location),
		Contact:     coalesce(input.Contact, existing.Contact),
		Status:      status,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateItem: %v", err)
		return item.UpdateItemOutput{}, err
	}
	return item.UpdateItemOutput{Item: updated}, nil
}

// Delete removes a report by ID. Matches referencing it are intentionally
// kept; the match view joins the missing side as absent.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneItem: %v", err)
		return err
	}
	if existing.ID == "" {
		return item.ErrItemNotFound
	}
	if err := uc.repo.DeleteItem(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteItem: %v", err)
		return err
	}
	return nil
}

// coalesce returns the first non-empty string — used for partial updates.
func coalesce(newVal, existing string) string {
	if newVal != "" {
		return newVal
	}
	return existing
}

package item

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Create persists a new report and triggers match discovery for it.
	Create(ctx context.Context, input CreateItemInput) (CreateItemOutput, error)
	List(ctx context.Context, input ListItemsInput) (ListItemsOutput, error)
	Recent(ctx context.Context, limit int) (ListItemsOutput, error)
	Search(ctx context.Context, term string) (ListItemsOutput, error)
	Detail(ctx context.Context, id string) (DetailItemOutput, error)
	Update(ctx context.Context, input UpdateItemInput) (UpdateItemOutput, error)
	Delete(ctx context.Context, id string) error
}

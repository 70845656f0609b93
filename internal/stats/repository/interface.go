package repository

import (
	"context"

	"campus-lostfound/internal/model"
)

// Repository is the read surface the stats aggregator needs. The matching
// engine's item reader satisfies it, so no dedicated implementation exists.
type Repository interface {
	ListAllItems(ctx context.Context) ([]model.Item, error)
}

package matching

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Discover scores the new item against opposite-type active candidates
	// and persists every qualifying, not-yet-recorded pairing as a pending
	// match. Candidates below the threshold or already matched are skipped
	// silently.
	Discover(ctx context.Context, itemID string) (DiscoverOutput, error)

	// List returns all matches joined with their items, ordered by score
	// descending, ties broken by creation time ascending.
	List(ctx context.Context, input ListMatchesInput) (ListMatchesOutput, error)

	// GetForItem returns the matches referencing the item on either side.
	GetForItem(ctx context.Context, itemID string) (ListMatchesOutput, error)

	// Detail returns one match by ID.
	Detail(ctx context.Context, id string) (DetailMatchOutput, error)

	// SetStatus moves a match to pending/confirmed/rejected.
	SetStatus(ctx context.Context, input SetStatusInput) error

	// Delete removes a match record.
	Delete(ctx context.Context, id string) error

	// Stats summarizes match counts by status and the mean score.
	Stats(ctx context.Context) (StatsOutput, error)
}

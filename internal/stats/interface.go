package stats

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Overall aggregates counts by type, status and category plus trailing
	// monthly and daily activity buckets.
	Overall(ctx context.Context) (OverallOutput, error)
	// Category aggregates counts for a single category with its most active
	// locations.
	Category(ctx context.Context, category string) (CategoryOutput, error)
	// Location aggregates counts for a single location with its category
	// breakdown. The location matches by case-insensitive containment.
	Location(ctx context.Context, location string) (LocationOutput, error)
	// Daily returns the trailing 30 days of report activity, newest first.
	Daily(ctx context.Context) (DailyOutput, error)
}

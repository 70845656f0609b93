package matching

import (
	"campus-lostfound/internal/model"
)

// MatchView is a match joined with its two item records for presentation.
// Either item pointer is nil when the referenced item has been deleted;
// the match itself survives.
type MatchView struct {
	Match     model.Match
	LostItem  *model.Item
	FoundItem *model.Item
}

// --- UseCase Inputs ---

type ListMatchesInput struct {
	// Category keeps only matches where either joined item has this category.
	Category string
}

type SetStatusInput struct {
	ID     string
	Status model.MatchStatus
}

// --- UseCase Outputs ---

type DiscoverOutput struct {
	Matches []MatchView
}

type ListMatchesOutput struct {
	Matches []MatchView
}

type DetailMatchOutput struct {
	Match MatchView
}

// StatsOutput is the match-quality summary.
type StatsOutput struct {
	Total     int
	Confirmed int
	Pending   int
	Rejected  int
	// AvgScore is the arithmetic mean of all match scores, 0 when no matches
	// exist. Rounding is left to the presentation layer.
	AvgScore float64
}

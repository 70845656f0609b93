package repository

import "campus-lostfound/internal/model"

// CreateMatchOptions holds parameters for inserting a new Match. The
// repository assigns the ID (UUID), createdAt and the initial pending status.
type CreateMatchOptions struct {
	LostItemID  string
	FoundItemID string
	MatchScore  int
}

// GetOneMatchOptions holds filter parameters for fetching a single Match.
type GetOneMatchOptions struct {
	ID string
}

// ListMatchesOptions holds filter parameters for listing Matches.
// ItemID keeps matches referencing the item on either side.
type ListMatchesOptions struct {
	ItemID string
}

// CandidateOptions is the coarse pre-filter for discovery candidates.
// It bounds the candidate set before full scoring; it is not a correctness
// filter on its own.
type CandidateOptions struct {
	Type     model.ItemType
	Category string
	Location string
}

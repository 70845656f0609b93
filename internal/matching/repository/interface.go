package repository

import (
	"context"

	"campus-lostfound/internal/model"
)

// Repository is the composed interface the matching engine works against:
// the match store it owns plus the read-only view of the item collection.
// The engine never learns how either is physically stored.
type Repository interface {
	MatchRepository
	ItemReader
}

// MatchRepository defines all data access methods for the Match entity.
type MatchRepository interface {
	// CreateMatch inserts a pending match, assigning ID and createdAt.
	// Returns ErrDuplicatePair when the (lost, found) pair already exists.
	CreateMatch(ctx context.Context, opt CreateMatchOptions) (model.Match, error)
	// GetOneMatch returns the zero-value Match (ID == "") when not found.
	GetOneMatch(ctx context.Context, opt GetOneMatchOptions) (model.Match, error)
	MatchExists(ctx context.Context, lostItemID, foundItemID string) (bool, error)
	// ListMatches orders by match_score DESC, created_at ASC.
	ListMatches(ctx context.Context, opt ListMatchesOptions) ([]model.Match, error)
	UpdateMatchStatus(ctx context.Context, id string, status model.MatchStatus) error
	DeleteMatch(ctx context.Context, id string) error
}

// ItemReader is the read-side the engine consumes from item storage.
type ItemReader interface {
	// GetItemByID returns the zero-value Item (ID == "") when not found.
	GetItemByID(ctx context.Context, id string) (model.Item, error)
	// ListCandidates returns active items of the given type passing the
	// coarse pre-filter: same category OR the candidate's location contains
	// the given location (case-insensitive).
	ListCandidates(ctx context.Context, opt CandidateOptions) ([]model.Item, error)
	ListAllItems(ctx context.Context) ([]model.Item, error)
}

package model

import "time"

// MatchStatus is the review state of a candidate pairing.
type MatchStatus string

const (
	MatchStatusPending   MatchStatus = "pending"
	MatchStatusConfirmed MatchStatus = "confirmed"
	MatchStatusRejected  MatchStatus = "rejected"
)

// Valid reports whether s is a known match status.
func (s MatchStatus) Valid() bool {
	return s == MatchStatusPending || s == MatchStatusConfirmed || s == MatchStatusRejected
}

// Match is a scored candidate pairing between a lost item and a found item.
// It holds item IDs only; item details are joined at read time so item edits
// show up without touching the match.
type Match struct {
	ID          string
	LostItemID  string
	FoundItemID string
	MatchScore  int // 0-100, never persisted below the qualification threshold
	Status      MatchStatus
	CreatedAt   time.Time
}

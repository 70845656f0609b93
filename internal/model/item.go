package model

import "time"

// ItemType distinguishes lost reports from found reports.
type ItemType string

const (
	ItemTypeLost  ItemType = "lost"
	ItemTypeFound ItemType = "found"
)

// Valid reports whether t is a known item type.
func (t ItemType) Valid() bool {
	return t == ItemTypeLost || t == ItemTypeFound
}

// Opposite returns the other item type. Discovery searches candidates of the
// opposite type to the newly reported item.
func (t ItemType) Opposite() ItemType {
	if t == ItemTypeLost {
		return ItemTypeFound
	}
	return ItemTypeLost
}

// ItemStatus is the lifecycle state of a report.
type ItemStatus string

const (
	ItemStatusActive   ItemStatus = "active"
	ItemStatusMatched  ItemStatus = "matched"
	ItemStatusResolved ItemStatus = "resolved"
)

// Valid reports whether s is a known item status.
func (s ItemStatus) Valid() bool {
	return s == ItemStatusActive || s == ItemStatusMatched || s == ItemStatusResolved
}

// Item is a single lost or found report.
type Item struct {
	ID           string
	UserID       string
	Type         ItemType
	Name         string
	Description  string
	Category     string
	Location     string
	Contact      string
	DateOccurred time.Time
	Status       ItemStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

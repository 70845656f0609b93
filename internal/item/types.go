package item

import (
	"time"

	"campus-lostfound/internal/model"
)

// --- UseCase Inputs ---

type CreateItemInput struct {
	UserID       string
	Type         model.ItemType
	Name         string
	Description  string
	Category     string
	Location     string
	Contact      string
	DateOccurred time.Time
}

type ListItemsInput struct {
	Type     model.ItemType
	Category string
	Status   model.ItemStatus
	UserID   string
	Limit    int
}

type UpdateItemInput struct {
	ID          string
	Name        string
	Description string
	Category    string
	Location    string
	Contact     string
	Status      model.ItemStatus
}

// --- UseCase Outputs ---

type CreateItemOutput struct {
	Item model.Item
	// MatchesFound is how many candidate matches discovery persisted for the
	// new item. Discovery is best-effort: 0 with a created item can mean
	// either no candidates or a logged discovery failure.
	MatchesFound int
}

type ListItemsOutput struct {
	Items []model.Item
	Total int
}

type DetailItemOutput struct {
	Item model.Item
}

type UpdateItemOutput struct {
	Item model.Item
}

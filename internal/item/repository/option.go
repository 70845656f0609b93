package repository

import (
	"time"

	"campus-lostfound/internal/model"
)

// CreateItemOptions holds parameters for inserting a new Item. The repository
// assigns the ID (UUID) and timestamps.
type CreateItemOptions struct {
	UserID       string
	Type         model.ItemType
	Name         string
	Description  string
	Category     string
	Location     string
	Contact      string
	DateOccurred time.Time
}

// GetOneItemOptions holds filter parameters for fetching a single Item.
// All non-empty fields are applied as AND conditions.
type GetOneItemOptions struct {
	ID string
}

// ListItemsOptions holds filter parameters for listing Items.
type ListItemsOptions struct {
	Type     model.ItemType
	Category string
	Status   model.ItemStatus
	UserID   string
	Limit    int
	OrderBy  string
}

// UpdateItemOptions holds parameters for updating an existing Item.
type UpdateItemOptions struct {
	ID          string
	Name        string
	Description string
	Category    string
	Location    string
	Contact     string
	Status      model.ItemStatus
}

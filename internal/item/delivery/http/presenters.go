package http

import (
	"time"

	"campus-lostfound/internal/item"
	"campus-lostfound/internal/model"
)

// --- Request DTOs ---

type createReq struct {
	UserID       string    `json:"-"` // populated from auth context
	Type         string    `json:"type"        binding:"required,oneof=lost found"`
	Name         string    `json:"name"        binding:"required,min=1,max=255"`
	Description  string    `json:"description" binding:"max=2000"`
	Category     string    `json:"category"    binding:"required,min=1,max=100"`
	Location     string    `json:"location"    binding:"required,min=1,max=255"`
	Contact      string    `json:"contact"     binding:"max=255"`
	DateOccurred time.Time `json:"date_occurred" binding:"required"`
}

func (r createReq) toInput() item.CreateItemInput {
	return item.CreateItemInput{
		UserID:       r.UserID,
		Type:         model.ItemType(r.Type),
		Name:         r.Name,
		Description:  r.Description,
		Category:     r.Category,
		Location:     r.Location,
		Contact:      r.Contact,
		DateOccurred: r.DateOccurred,
	}
}

// ---

type listReq struct {
	Type     string `form:"type"   binding:"omitempty,oneof=lost found"`
	Category string `form:"category"`
	Status   string `form:"status" binding:"omitempty,oneof=active matched resolved"`
	UserID   string `form:"user_id"`
	Limit    int    `form:"limit"`
}

func (r listReq) toInput() item.ListItemsInput {
	limit := r.Limit
	if limit < 0 {
		limit = 0
	}
	return item.ListItemsInput{
		Type:     model.ItemType(r.Type),
		Category: r.Category,
		Status:   model.ItemStatus(r.Status),
		UserID:   r.UserID,
		Limit:    limit,
	}
}

// ---

type updateReq struct {
	ID          string `json:"-"` // populated from URI param
	Name        string `json:"name"        binding:"omitempty,min=1,max=255"`
	Description string `json:"description" binding:"omitempty,max=2000"`
	Category    string `json:"category"    binding:"omitempty,min=1,max=100"`
	Location    string `json:"location"    binding:"omitempty,min=1,max=255"`
	Contact     string `json:"contact"     binding:"omitempty,max=255"`
	Status      string `json:"status"      binding:"omitempty,oneof=active matched resolved"`
}

func (r updateReq) toInput() item.UpdateItemInput {
	return item.UpdateItemInput{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Location:    r.Location,
		Contact:     r.Contact,
		Status:      model.ItemStatus(r.Status),
	}
}

// --- Response DTOs ---

type itemResp struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Type         string    `json:"type"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Location     string    `json:"location"`
	Contact      string    `json:"contact"`
	DateOccurred time.Time `json:"date_occurred"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func newItemResp(it model.Item) itemResp {
	return itemResp{
		ID:           it.ID,
		UserID:       it.UserID,
		Type:         string(it.Type),
		Name:         it.Name,
		Description:  it.Description,
		Category:     it.Category,
		Location:     it.Location,
		Contact:      it.Contact,
		DateOccurred: it.DateOccurred,
		Status:       string(it.Status),
		CreatedAt:    it.CreatedAt,
		UpdatedAt:    it.UpdatedAt,
	}
}

type createResp struct {
	Item         itemResp `json:"item"`
	MatchesFound int      `json:"matches_found"`
}

func (h *handler) newCreateResp(out item.CreateItemOutput) createResp {
	return createResp{
		Item:         newItemResp(out.Item),
		MatchesFound: out.MatchesFound,
	}
}

type listResp struct {
	Items []itemResp `json:"items"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(out item.ListItemsOutput) listResp {
	items := make([]itemResp, len(out.Items))
	for i, it := range out.Items {
		items[i] = newItemResp(it)
	}
	return listResp{Items: items, Total: out.Total}
}

type detailResp struct {
	Item itemResp `json:"item"`
}

func (h *handler) newDetailResp(out item.DetailItemOutput) detailResp {
	return detailResp{Item: newItemResp(out.Item)}
}

type updateResp struct {
	Item itemResp `json:"item"`
}

func (h *handler) newUpdateResp(out item.UpdateItemOutput) updateResp {
	return updateResp{Item: newItemResp(out.Item)}
}

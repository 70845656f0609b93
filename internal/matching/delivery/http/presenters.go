package http

import (
	"math"
	"time"

	"campus-lostfound/internal/matching"
	"campus-lostfound/internal/model"
)

// --- Request DTOs ---

type listReq struct {
	Category string `form:"category"`
}

func (r listReq) toInput() matching.ListMatchesInput {
	return matching.ListMatchesInput{Category: r.Category}
}

type setStatusReq struct {
	ID     string `json:"-"` // populated from URI param
	Status string `json:"status" binding:"required"`
}

func (r setStatusReq) toInput() matching.SetStatusInput {
	return matching.SetStatusInput{
		ID:     r.ID,
		Status: model.MatchStatus(r.Status),
	}
}

// --- Response DTOs ---

// itemSummary is the joined item side of a match; nil when the item has been
// deleted since the match was recorded.
type itemSummary struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Location     string    `json:"location"`
	Contact      string    `json:"contact"`
	DateOccurred time.Time `json:"date_occurred"`
}

func newItemSummary(it *model.Item) *itemSummary {
	if it == nil {
		return nil
	}
	return &itemSummary{
		ID:           it.ID,
		Name:         it.Name,
		Description:  it.Description,
		Category:     it.Category,
		Location:     it.Location,
		Contact:      it.Contact,
		DateOccurred: it.DateOccurred,
	}
}

type matchResp struct {
	ID         string       `json:"id"`
	MatchScore int          `json:"match_score"`
	Status     string       `json:"status"`
	CreatedAt  time.Time    `json:"created_at"`
	LostItem   *itemSummary `json:"lost_item"`
	FoundItem  *itemSummary `json:"found_item"`
}

func newMatchResp(v matching.MatchView) matchResp {
	return matchResp{
		ID:         v.Match.ID,
		MatchScore: v.Match.MatchScore,
		Status:     string(v.Match.Status),
		CreatedAt:  v.Match.CreatedAt,
		LostItem:   newItemSummary(v.LostItem),
		FoundItem:  newItemSummary(v.FoundItem),
	}
}

type listResp struct {
	Matches []matchResp `json:"matches"`
	Total   int         `json:"total"`
}

func (h *handler) newListResp(out matching.ListMatchesOutput) listResp {
	matches := make([]matchResp, len(out.Matches))
	for i, v := range out.Matches {
		matches[i] = newMatchResp(v)
	}
	return listResp{Matches: matches, Total: len(matches)}
}

type detailResp struct {
	Match matchResp `json:"match"`
}

func (h *handler) newDetailResp(out matching.DetailMatchOutput) detailResp {
	return detailResp{Match: newMatchResp(out.Match)}
}

type statsResp struct {
	Total     int `json:"total_matches"`
	Confirmed int `json:"confirmed_matches"`
	Pending   int `json:"pending_matches"`
	Rejected  int `json:"rejected_matches"`
	AvgScore  int `json:"avg_match_score"`
}

func (h *handler) newStatsResp(out matching.StatsOutput) statsResp {
	return statsResp{
		Total:     out.Total,
		Confirmed: out.Confirmed,
		Pending:   out.Pending,
		Rejected:  out.Rejected,
		AvgScore:  int(math.Round(out.AvgScore)),
	}
}

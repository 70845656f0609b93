package http

import (
	"campus-lostfound/internal/stats"
)

type typeCounts struct {
	Lost  int `json:"lost"`
	Found int `json:"found"`
}

type monthBucket struct {
	Year  int    `json:"year"`
	Month string `json:"month"`
	Lost  int    `json:"lost"`
	Found int    `json:"found"`
}

type dayBucket struct {
	Date  string `json:"date"`
	Lost  int    `json:"lost"`
	Found int    `json:"found"`
	Total int    `json:"total"`
}

type locationCount struct {
	Location string `json:"location"`
	Lost     int    `json:"lost"`
	Found    int    `json:"found"`
	Total    int    `json:"total"`
}

type categoryCount struct {
	Category string `json:"category"`
	Lost     int    `json:"lost"`
	Found    int    `json:"found"`
	Total    int    `json:"total"`
}

type overallResp struct {
	LostItems     int                   `json:"lost_items"`
	FoundItems    int                   `json:"found_items"`
	ResolvedItems int                   `json:"resolved_items"`
	TotalItems    int                   `json:"total_items"`
	CategoryData  map[string]typeCounts `json:"category_data"`
	MonthlyData   []monthBucket         `json:"monthly_data"`
	RecentDays    []dayBucket           `json:"recent_days"`
}

type dailyResp struct {
	Days []dayBucket `json:"days"`
}

type categoryResp struct {
	Category      string          `json:"category"`
	LostItems     int             `json:"lost_items"`
	FoundItems    int             `json:"found_items"`
	ResolvedItems int             `json:"resolved_items"`
	TotalItems    int             `json:"total_items"`
	TopLocations  []locationCount `json:"top_locations"`
}

type locationResp struct {
	Location          string          `json:"location"`
	LostItems         int             `json:"lost_items"`
	FoundItems        int             `json:"found_items"`
	ResolvedItems     int             `json:"resolved_items"`
	TotalItems        int             `json:"total_items"`
	CategoryBreakdown []categoryCount `json:"category_breakdown"`
}

func (h *handler) newOverallResp(o stats.OverallOutput) overallResp {
	resp := overallResp{
		LostItems:     o.LostItems,
		FoundItems:    o.FoundItems,
		ResolvedItems: o.ResolvedItems,
		TotalItems:    o.TotalItems,
		CategoryData:  make(map[string]typeCounts, len(o.CategoryData)),
		MonthlyData:   make([]monthBucket, 0, len(o.MonthlyData)),
		RecentDays:    newDayBuckets(o.RecentDays),
	}
	for cat, c := range o.CategoryData {
		resp.CategoryData[cat] = typeCounts{Lost: c.Lost, Found: c.Found}
	}
	for _, m := range o.MonthlyData {
		resp.MonthlyData = append(resp.MonthlyData, monthBucket{
			Year:  m.Year,
			Month: m.Month,
			Lost:  m.Lost,
			Found: m.Found,
		})
	}
	return resp
}

func (h *handler) newDailyResp(o stats.DailyOutput) dailyResp {
	return dailyResp{Days: newDayBuckets(o.Days)}
}

func (h *handler) newCategoryResp(o stats.CategoryOutput) categoryResp {
	resp := categoryResp{
		Category:      o.Category,
		LostItems:     o.LostItems,
		FoundItems:    o.FoundItems,
		ResolvedItems: o.ResolvedItems,
		TotalItems:    o.TotalItems,
		TopLocations:  make([]locationCount, 0, len(o.TopLocations)),
	}
	for _, l := range o.TopLocations {
		resp.TopLocations = append(resp.TopLocations, locationCount{
			Location: l.Location,
			Lost:     l.Lost,
			Found:    l.Found,
			Total:    l.Total,
		})
	}
	return resp
}

func (h *handler) newLocationResp(o stats.LocationOutput) locationResp {
	resp := locationResp{
		Location:          o.Location,
		LostItems:         o.LostItems,
		FoundItems:        o.FoundItems,
		ResolvedItems:     o.ResolvedItems,
		TotalItems:        o.TotalItems,
		CategoryBreakdown: make([]categoryCount, 0, len(o.CategoryBreakdown)),
	}
	for _, c := range o.CategoryBreakdown {
		resp.CategoryBreakdown = append(resp.CategoryBreakdown, categoryCount{
			Category: c.Category,
			Lost:     c.Lost,
			Found:    c.Found,
			Total:    c.Total,
		})
	}
	return resp
}

func newDayBuckets(days []stats.DayBucket) []dayBucket {
	out := make([]dayBucket, 0, len(days))
	for _, d := range days {
		out = append(out, dayBucket{
			Date:  d.Date,
			Lost:  d.Lost,
			Found: d.Found,
			Total: d.Total,
		})
	}
	return out
}

package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"campus-lostfound/internal/model"
	"campus-lostfound/internal/stats"
)

func (uc *implUseCase) Overall(ctx context.Context) (stats.OverallOutput, error) {
	items, err := uc.repo.ListAllItems(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "stats.usecase.Overall.ListAllItems: %v", err)
		return stats.OverallOutput{}, err
	}

	out := stats.OverallOutput{
		TotalItems:   len(items),
		CategoryData: make(map[string]stats.TypeCounts),
	}
	for _, it := range items {
		counts := out.CategoryData[it.Category]
		switch it.Type {
		case model.ItemTypeLost:
			out.LostItems++
			counts.Lost++
		case model.ItemTypeFound:
			out.FoundItems++
			counts.Found++
		}
		out.CategoryData[it.Category] = counts
		if it.Status == model.ItemStatusResolved {
			out.ResolvedItems++
		}
	}

	now := time.Now().UTC()
	out.MonthlyData = stats.BucketMonthly(items, now)
	out.RecentDays = stats.BucketDaily(items, now)

	return out, nil
}

func (uc *implUseCase) Category(ctx context.Context, category string) (stats.CategoryOutput, error) {
	items, err := uc.repo.ListAllItems(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "stats.usecase.Category.ListAllItems: %v", err)
		return stats.CategoryOutput{}, err
	}

	out := stats.CategoryOutput{Category: category}
	byLocation := make(map[string]stats.LocationCount)
	for _, it := range items {
		if it.Category != category {
			continue
		}
		out.TotalItems++
		loc := byLocation[it.Location]
		loc.Location = it.Location
		loc.Total++
		switch it.Type {
		case model.ItemTypeLost:
			out.LostItems++
			loc.Lost++
		case model.ItemTypeFound:
			out.FoundItems++
			loc.Found++
		}
		byLocation[it.Location] = loc
		if it.Status == model.ItemStatusResolved {
			out.ResolvedItems++
		}
	}

	out.TopLocations = rankLocations(byLocation, 10)
	return out, nil
}

func (uc *implUseCase) Location(ctx context.Context, location string) (stats.LocationOutput, error) {
	items, err := uc.repo.ListAllItems(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "stats.usecase.Location.ListAllItems: %v", err)
		return stats.LocationOutput{}, err
	}

	out := stats.LocationOutput{Location: location}
	needle := strings.ToLower(location)
	byCategory := make(map[string]stats.CategoryCount)
	for _, it := range items {
		if !strings.Contains(strings.ToLower(it.Location), needle) {
			continue
		}
		out.TotalItems++
		cat := byCategory[it.Category]
		cat.Category = it.Category
		cat.Total++
		switch it.Type {
		case model.ItemTypeLost:
			out.LostItems++
			cat.Lost++
		case model.ItemTypeFound:
			out.FoundItems++
			cat.Found++
		}
		byCategory[it.Category] = cat
		if it.Status == model.ItemStatusResolved {
			out.ResolvedItems++
		}
	}

	out.CategoryBreakdown = rankCategories(byCategory)
	return out, nil
}

func (uc *implUseCase) Daily(ctx context.Context) (stats.DailyOutput, error) {
	items, err := uc.repo.ListAllItems(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "stats.usecase.Daily.ListAllItems: %v", err)
		return stats.DailyOutput{}, err
	}

	return stats.DailyOutput{Days: stats.BucketDaily(items, time.Now().UTC())}, nil
}

func rankLocations(m map[string]stats.LocationCount, limit int) []stats.LocationCount {
	ranked := make([]stats.LocationCount, 0, len(m))
	for _, v := range m {
		ranked = append(ranked, v)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Total != ranked[j].Total {
			return ranked[i].Total > ranked[j].Total
		}
		return ranked[i].Location < ranked[j].Location
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func rankCategories(m map[string]stats.CategoryCount) []stats.CategoryCount {
	ranked := make([]stats.CategoryCount, 0, len(m))
	for _, v := range m {
		ranked = append(ranked, v)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Total != ranked[j].Total {
			return ranked[i].Total > ranked[j].Total
		}
		return ranked[i].Category < ranked[j].Category
	})
	return ranked
}

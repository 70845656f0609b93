package stats

import (
	"time"

	"campus-lostfound/internal/model"
)

const (
	monthlyWindow = 12
	dailyWindow   = 30
)

// BucketMonthly distributes items over the trailing 12 calendar months ending
// at now's month. Every month appears, oldest first, even with zero reports.
func BucketMonthly(items []model.Item, now time.Time) []MonthBucket {
	buckets := make([]MonthBucket, 0, monthlyWindow)
	index := make(map[string]int, monthlyWindow)
	for i := monthlyWindow - 1; i >= 0; i-- {
		m := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)
		index[m.Format("2006-01")] = len(buckets)
		buckets = append(buckets, MonthBucket{Year: m.Year(), Month: m.Format("Jan")})
	}
	for _, it := range items {
		pos, ok := index[it.CreatedAt.UTC().Format("2006-01")]
		if !ok {
			continue
		}
		switch it.Type {
		case model.ItemTypeLost:
			buckets[pos].Lost++
		case model.ItemTypeFound:
			buckets[pos].Found++
		}
	}
	return buckets
}

// BucketDaily distributes items over the trailing 30 calendar days ending at
// now's day, newest first. Every day appears even with zero reports.
func BucketDaily(items []model.Item, now time.Time) []DayBucket {
	buckets := make([]DayBucket, 0, dailyWindow)
	index := make(map[string]int, dailyWindow)
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	for i := 0; i < dailyWindow; i++ {
		d := day.AddDate(0, 0, -i)
		key := d.Format("2006-01-02")
		index[key] = len(buckets)
		buckets = append(buckets, DayBucket{Date: key})
	}
	for _, it := range items {
		pos, ok := index[it.CreatedAt.UTC().Format("2006-01-02")]
		if !ok {
			continue
		}
		switch it.Type {
		case model.ItemTypeLost:
			buckets[pos].Lost++
		case model.ItemTypeFound:
			buckets[pos].Found++
		}
		buckets[pos].Total++
	}
	return buckets
}

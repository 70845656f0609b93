package stats

// TypeCounts splits a count into lost and found reports.
type TypeCounts struct {
	Lost  int
	Found int
}

// MonthBucket is one calendar month in the trailing window. Months with no
// reports are still present so charts never see missing keys.
type MonthBucket struct {
	Year  int
	Month string // short month name, e.g. "Jan"
	Lost  int
	Found int
}

// DayBucket is one calendar day in the trailing window, zero-filled like
// MonthBucket.
type DayBucket struct {
	Date  string // YYYY-MM-DD
	Lost  int
	Found int
	Total int
}

// LocationCount is a per-location breakdown entry.
type LocationCount struct {
	Location string
	Lost     int
	Found    int
	Total    int
}

// CategoryCount is a per-category breakdown entry.
type CategoryCount struct {
	Category string
	Lost     int
	Found    int
	Total    int
}

// --- UseCase Outputs ---

type OverallOutput struct {
	LostItems     int
	FoundItems    int
	ResolvedItems int
	TotalItems    int
	CategoryData  map[string]TypeCounts
	MonthlyData   []MonthBucket // oldest first, trailing 12 months
	RecentDays    []DayBucket   // newest first, trailing 30 days
}

type CategoryOutput struct {
	Category      string
	LostItems     int
	FoundItems    int
	ResolvedItems int
	TotalItems    int
	TopLocations  []LocationCount // by total descending, at most 10
}

type LocationOutput struct {
	Location          string
	LostItems         int
	FoundItems        int
	ResolvedItems     int
	TotalItems        int
	CategoryBreakdown []CategoryCount // by total descending
}

type DailyOutput struct {
	Days []DayBucket // newest first, trailing 30 days
}

package domain

// DailyStats summarizes a driver's collections for one day.
type DailyStats struct {
	TotalCollections     int
	CompletedCollections int
	PendingCollections   int
	TotalDistanceKm      float64
	CompletionRate       float64
	AverageMinutes       float64
}

// WeeklyStats summarizes a driver's collections for one Monday-based week.
type WeeklyStats struct {
	CollectionsByDay map[string]int
	TotalCollections int
	TotalDistanceKm  float64
	CompletionRate   float64
	BusiestDay       string
}

// MonthlyStats summarizes a driver's collections for one calendar month.
type MonthlyStats struct {
	TotalCollections        int
	AverageDailyCollections float64
	TotalDistanceKm         float64
	CompletionRate          float64
	CollectionsByWeek       map[string]int
}

// PerformanceStats bundles all three dashboard windows.
type PerformanceStats struct {
	Daily   DailyStats
	Weekly  WeeklyStats
	Monthly MonthlyStats
}

package dto

type DailyStatsResponse struct {
	TotalCollections     int     `json:"total_collections"`
	CompletedCollections int     `json:"completed_collections"`
	PendingCollections   int     `json:"pending_collections"`
	TotalDistance        float64 `json:"total_distance"`
	CompletionRate       float64 `json:"completion_rate"`
	AverageTime          float64 `json:"average_time_per_collection"`
}

type WeeklyStatsResponse struct {
	CollectionsByDay map[string]int `json:"collections_by_day"`
	TotalCollections int            `json:"total_collections"`
	TotalDistance    float64        `json:"total_distance"`
	CompletionRate   float64        `json:"completion_rate"`
	BusiestDay       string         `json:"busiest_day"`
}

type MonthlyStatsResponse struct {
	TotalCollections        int            `json:"total_collections"`
	AverageDailyCollections float64        `json:"average_daily_collections"`
	TotalDistance           float64        `json:"total_distance"`
	CompletionRate          float64        `json:"completion_rate"`
	CollectionsByWeek       map[string]int `json:"collections_by_week"`
}

type PerformanceStatsResponse struct {
	Daily   DailyStatsResponse   `json:"daily"`
	Weekly  WeeklyStatsResponse  `json:"weekly"`
	Monthly MonthlyStatsResponse `json:"monthly"`
}

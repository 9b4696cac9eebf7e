package dto

import "time"

type LocationUpdateRequest struct {
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	Timestamp *time.Time `json:"timestamp"`
}

type CurrentTaskResponse struct {
	Location      string    `json:"location"`
	Status        string    `json:"status"`
	ScheduledTime time.Time `json:"scheduled_time"`
}

type TrackingResponse struct {
	DriverID        int                  `json:"driver_id"`
	CollectionID    *int                 `json:"collection_id"`
	DriverName      string               `json:"driver_name"`
	CurrentLocation *PointResponse       `json:"current_location"`
	CurrentTask     *CurrentTaskResponse `json:"current_task"`
	LastUpdate      time.Time            `json:"last_update"`
}

type HistoryDriverResponse struct {
	DriverID int    `json:"driver_id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

type HistoryItemResponse struct {
	CollectionID  int        `json:"collection_id"`
	Location      string     `json:"location"`
	Status        string     `json:"status"`
	ScheduledTime time.Time  `json:"scheduled_time"`
	ActualTime    *time.Time `json:"actual_collection_time"`
}

type HistoryResponse struct {
	DriverInfo  HistoryDriverResponse `json:"driver_info"`
	Collections []HistoryItemResponse `json:"collections"`
}

type AnalyticsPeriodResponse struct {
	Start *time.Time `json:"start"`
	End   *time.Time `json:"end"`
}

type AnalyticsMetricsResponse struct {
	TotalCollections      int     `json:"total_collections"`
	CompletedCollections  int     `json:"completed_collections"`
	PendingCollections    int     `json:"pending_collections"`
	InProgressCollections int     `json:"in_progress_collections"`
	SkippedCollections    int     `json:"skipped_collections"`
	CompletionRate        float64 `json:"completion_rate"`
}

type AnalyticsResponse struct {
	Period  AnalyticsPeriodResponse  `json:"period"`
	Metrics AnalyticsMetricsResponse `json:"metrics"`
}

package dto

import "time"

type PointResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type NavigationResponse struct {
	DistanceKm       float64       `json:"distance_km"`
	EstimatedTimeMin int           `json:"estimated_time_min"`
	StartLocation    PointResponse `json:"start_location"`
	EndLocation      PointResponse `json:"end_location"`
}

type CustomerLocationResponse struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	ContactName   string `json:"contact_name"`
	ContactNumber string `json:"contact_number"`
}

type CollectionResponse struct {
	CollectionID     int                       `json:"collection_id"`
	DriverID         int                       `json:"driver_id"`
	LocationName     string                    `json:"location_name"`
	Address          string                    `json:"address"`
	Latitude         float64                   `json:"latitude"`
	Longitude        float64                   `json:"longitude"`
	ScheduledTime    time.Time                 `json:"scheduled_time"`
	ActualTime       *time.Time                `json:"actual_collection_time"`
	Status           string                    `json:"status"`
	Notes            string                    `json:"notes"`
	CreatedAt        time.Time                 `json:"created_at"`
	LastUpdate       time.Time                 `json:"last_update"`
	CustomerLocation *CustomerLocationResponse `json:"customer_location,omitempty"`
	Navigation       *NavigationResponse       `json:"navigation,omitempty"`
}

type CreateCollectionRequest struct {
	DriverID           int       `json:"driver_id"`
	LocationName       string    `json:"location_name"`
	Address            string    `json:"address"`
	Latitude           float64   `json:"latitude"`
	Longitude          float64   `json:"longitude"`
	ScheduledTime      time.Time `json:"scheduled_time"`
	Status             string    `json:"status"`
	Notes              string    `json:"notes"`
	CustomerLocationID *int      `json:"customer_location_id"`
}

type UpdateCollectionRequest struct {
	Status     *string    `json:"status"`
	Notes      *string    `json:"notes"`
	ActualTime *time.Time `json:"actual_collection_time"`
}

type PaginatedCollectionsResponse struct {
	Total    int                  `json:"total"`
	Page     int                  `json:"page"`
	PageSize int                  `json:"page_size"`
	Items    []CollectionResponse `json:"items"`
}

type StatusUpdateRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

type StatusUpdateResponse struct {
	Message      string `json:"message"`
	CollectionID int    `json:"collection_id"`
	NewStatus    string `json:"new_status"`
}

type PhotoUploadResponse struct {
	Message      string `json:"message"`
	PhotoURL     string `json:"photo_url"`
	CollectionID int    `json:"collection_id"`
}

package dto

type RouteOptimizationResponse struct {
	OptimizedCollections []CollectionResponse `json:"optimized_collections"`
	TotalDistance        float64              `json:"total_distance"`
	EstimatedTime        int                  `json:"estimated_time"`
}

package domain

import "time"

// NavigationEstimate describes a single route leg: great-circle distance in
// kilometers (2 decimals), estimated travel minutes at the fleet's fixed
// average speed, and the leg endpoints. It is derived per computation and
// never persisted.
type NavigationEstimate struct {
	DistanceKm       float64
	EstimatedMinutes int
	Start            Coordinate
	End              Coordinate
}

// RouteStop pairs a collection with the navigation estimate for the leg
// arriving at it. The collection itself is left untouched; the wrapper keeps
// transient routing output off the shared domain record.
type RouteStop struct {
	Collection *Collection
	Navigation NavigationEstimate
}

// RouteResult is the ordered visitation plan produced by the route optimizer.
// It describes the stop sequence plus aggregate distance and time metrics,
// is built once per optimization call and holds no cross-request state.
type RouteResult struct {
	Stops            []RouteStop
	TotalDistanceKm  float64
	EstimatedMinutes int
}

// Status of a planned route.
type RouteStatus string

const (
	RoutePending    RouteStatus = "PENDING"
	RouteInProgress RouteStatus = "IN_PROGRESS"
	RouteCompleted  RouteStatus = "COMPLETED"
)

// Route is a persisted record of a planned driver route for a given day.
type Route struct {
	RouteID    int
	DriverID   int
	Date       time.Time
	Status     RouteStatus
	DistanceKm float64
}

package services

import (
	"fmt"
	"math"

	"github.com/Godhold/Waste-Management-App/internal/domain"
)

// Order collections with a greedy nearest-neighbor tour.
//
// The algorithm minimizes immediate travel distance at each step. It does
// not attempt global route optimization (no 2-opt, no exact TSP); the design
// prioritizes determinism and simplicity over optimality. Complexity is
// O(n²), which is fine for per-driver daily stop counts.
//
// The returned total time is travel time at the fixed average speed plus a
// 15-minute handling allowance per stop, applied uniformly. Input
// collections are never mutated; each output stop wraps a collection
// together with the navigation estimate for the leg arriving at it.
func OptimizeRoute(start domain.Coordinate, collections []*domain.Collection) (*domain.RouteResult, error) {
	if !start.Valid() {
		return nil, fmt.Errorf("optimize route: start coordinate out of range: lat=%v lng=%v", start.Lat, start.Lng)
	}

	for _, c := range collections {
		if !c.Coordinate.Valid() {
			return nil, fmt.Errorf(
				"optimize route: collection %d has out-of-range coordinate: lat=%v lng=%v",
				c.CollectionID, c.Coordinate.Lat, c.Coordinate.Lng,
			)
		}
	}

	if len(collections) == 0 {
		return &domain.RouteResult{Stops: []domain.RouteStop{}}, nil
	}

	remaining := make([]*domain.Collection, len(collections))
	copy(remaining, collections)

	current := start
	stops := make([]domain.RouteStop, 0, len(collections))
	totalKm := 0.0

	for len(remaining) > 0 {
		bestIdx := -1
		bestKm := math.MaxFloat64

		// Select the nearest unvisited stop.
		for i, c := range remaining {
			km := Distance(current, c.Coordinate)
			// Tie-breaker ensures deterministic ordering when distances are equal.
			if km < bestKm || (km == bestKm && (bestIdx == -1 || c.CollectionID < remaining[bestIdx].CollectionID)) {
				bestKm = km
				bestIdx = i
			}
		}

		next := remaining[bestIdx]
		totalKm += bestKm

		stops = append(stops, domain.RouteStop{
			Collection: next,
			Navigation: Navigate(current, next.Coordinate),
		})

		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
		current = next.Coordinate
	}

	return &domain.RouteResult{
		Stops:            stops,
		TotalDistanceKm:  round2(totalKm),
		EstimatedMinutes: TravelMinutes(totalKm) + handlingMinutesPerStop*len(stops),
	}, nil
}

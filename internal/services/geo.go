package services

import (
	"math"

	"github.com/Godhold/Waste-Management-App/internal/domain"
)

const (
	// Mean Earth radius in kilometers.
	earthRadiusKm = 6371.0
	// Assumed average city driving speed.
	averageSpeedKmh = 30.0
	// Fixed on-site handling allowance per collection stop.
	handlingMinutesPerStop = 15
)

// Distance returns the great-circle distance in kilometers between two
// coordinates using the haversine formula. It is symmetric, zero for
// identical points, and safe to call concurrently.
//
// Coordinate range validation is the caller's concern; any finite pair is
// accepted here.
func Distance(a, b domain.Coordinate) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	// Floating-point overshoot near antipodal points would feed Sqrt a
	// negative argument; clamp before the inverse step.
	if h < 0 {
		h = 0
	} else if h > 1 {
		h = 1
	}

	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// TravelMinutes estimates travel time for a distance at the fixed average
// speed, rounded down to whole minutes.
func TravelMinutes(km float64) int {
	return int(km / averageSpeedKmh * 60)
}

// Navigate builds the per-leg estimate between two points.
func Navigate(from, to domain.Coordinate) domain.NavigationEstimate {
	km := Distance(from, to)
	return domain.NavigationEstimate{
		DistanceKm:       round2(km),
		EstimatedMinutes: TravelMinutes(km),
		Start:            from,
		End:              to,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

package services

import (
	"math"
	"testing"

	"github.com/Godhold/Waste-Management-App/internal/domain"
)

const distanceTolerance = 1e-9

func TestDistanceSymmetry(t *testing.T) {
	pairs := [][2]domain.Coordinate{
		{{Lat: 5.6037, Lng: -0.1870}, {Lat: 5.6100, Lng: -0.1800}},
		{{Lat: 40.7128, Lng: -74.0060}, {Lat: 51.5074, Lng: -0.1278}},
		{{Lat: -33.8688, Lng: 151.2093}, {Lat: 35.6762, Lng: 139.6503}},
	}

	for _, p := range pairs {
		ab := Distance(p[0], p[1])
		ba := Distance(p[1], p[0])
		if math.Abs(ab-ba) > distanceTolerance {
			t.Errorf("distance not symmetric: %v vs %v for %+v", ab, ba, p)
		}
	}
}

func TestDistanceIdentity(t *testing.T) {
	points := []domain.Coordinate{
		{},
		{Lat: 5.6037, Lng: -0.1870},
		{Lat: -90, Lng: 0},
	}
	for _, p := range points {
		if d := Distance(p, p); d != 0 {
			t.Errorf("distance(%+v, %+v) = %v, want 0", p, p, d)
		}
	}
}

func TestDistanceTriangleInequality(t *testing.T) {
	a := domain.Coordinate{Lat: 5.6037, Lng: -0.1870}
	b := domain.Coordinate{Lat: 6.6885, Lng: -1.6244}
	c := domain.Coordinate{Lat: 5.5500, Lng: -0.2500}

	if Distance(a, b) > Distance(a, c)+Distance(c, b)+distanceTolerance {
		t.Errorf("triangle inequality violated: d(a,b)=%v d(a,c)=%v d(c,b)=%v",
			Distance(a, b), Distance(a, c), Distance(c, b))
	}
}

func TestDistanceAntipodalNoNaN(t *testing.T) {
	a := domain.Coordinate{Lat: 0, Lng: 0}
	b := domain.Coordinate{Lat: 0, Lng: 180}

	d := Distance(a, b)
	if math.IsNaN(d) {
		t.Fatal("antipodal distance must not be NaN")
	}
	// Half the Earth's circumference, pi * R.
	want := math.Pi * 6371.0
	if math.Abs(d-want) > 1 {
		t.Errorf("antipodal distance = %v, want about %v", d, want)
	}
}

func TestDistanceKnownValue(t *testing.T) {
	// Accra city center to a point roughly 1 km northeast.
	a := domain.Coordinate{Lat: 5.6037, Lng: -0.1870}
	b := domain.Coordinate{Lat: 5.6100, Lng: -0.1800}

	d := Distance(a, b)
	if d < 0.9 || d > 1.2 {
		t.Errorf("distance = %v km, want roughly 1 km", d)
	}
}

func TestTravelMinutesFloors(t *testing.T) {
	cases := []struct {
		km   float64
		want int
	}{
		{0, 0},
		{30, 60},
		{15, 30},
		{0.4, 0},   // 0.8 minutes floors to 0
		{10.4, 20}, // 20.8 minutes floors to 20
	}
	for _, tc := range cases {
		if got := TravelMinutes(tc.km); got != tc.want {
			t.Errorf("TravelMinutes(%v) = %d, want %d", tc.km, got, tc.want)
		}
	}
}

func TestNavigate(t *testing.T) {
	a := domain.Coordinate{Lat: 5.6037, Lng: -0.1870}
	b := domain.Coordinate{Lat: 5.6100, Lng: -0.1800}

	leg := Navigate(a, b)
	if leg.Start != a || leg.End != b {
		t.Fatalf("leg endpoints wrong: %+v", leg)
	}
	if leg.DistanceKm != round2(Distance(a, b)) {
		t.Errorf("leg distance = %v, want %v", leg.DistanceKm, round2(Distance(a, b)))
	}
	if leg.EstimatedMinutes != TravelMinutes(Distance(a, b)) {
		t.Errorf("leg minutes = %d, want %d", leg.EstimatedMinutes, TravelMinutes(Distance(a, b)))
	}
}

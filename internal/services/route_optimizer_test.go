package services

import (
	"math"
	"testing"
	"time"

	"github.com/Godhold/Waste-Management-App/internal/domain"
)

func testCollection(id int, lat, lng float64) *domain.Collection {
	return &domain.Collection{
		CollectionID:  id,
		DriverID:      1,
		Coordinate:    domain.Coordinate{Lat: lat, Lng: lng},
		ScheduledTime: time.Date(2025, 7, 16, 8, 0, 0, 0, time.UTC),
		Status:        domain.StatusPending,
	}
}

func TestOptimizeRouteAccraScenario(t *testing.T) {
	start := domain.Coordinate{Lat: 5.6037, Lng: -0.1870}
	near := testCollection(1, 5.6100, -0.1800)
	far := testCollection(2, 5.5500, -0.2500)

	result, err := OptimizeRoute(start, []*domain.Collection{far, near})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Stops) != 2 {
		t.Fatalf("expected 2 stops, got %d", len(result.Stops))
	}
	if result.Stops[0].Collection.CollectionID != 1 {
		t.Fatalf("expected nearest stop first, got collection %d", result.Stops[0].Collection.CollectionID)
	}
	if result.Stops[1].Collection.CollectionID != 2 {
		t.Fatalf("expected farther stop second, got collection %d", result.Stops[1].Collection.CollectionID)
	}

	leg1 := Distance(start, near.Coordinate)
	leg2 := Distance(near.Coordinate, far.Coordinate)
	if math.Abs(result.TotalDistanceKm-round2(leg1+leg2)) > 1e-9 {
		t.Errorf("total distance = %v, want %v", result.TotalDistanceKm, round2(leg1+leg2))
	}

	wantMinutes := TravelMinutes(leg1+leg2) + 2*handlingMinutesPerStop
	if result.EstimatedMinutes != wantMinutes {
		t.Errorf("estimated minutes = %d, want %d", result.EstimatedMinutes, wantMinutes)
	}

	if result.Stops[0].Navigation.Start != start || result.Stops[0].Navigation.End != near.Coordinate {
		t.Errorf("first leg endpoints wrong: %+v", result.Stops[0].Navigation)
	}
	if result.Stops[1].Navigation.Start != near.Coordinate || result.Stops[1].Navigation.End != far.Coordinate {
		t.Errorf("second leg endpoints wrong: %+v", result.Stops[1].Navigation)
	}
}

func TestOptimizeRouteIsPermutation(t *testing.T) {
	start := domain.Coordinate{Lat: 5.6037, Lng: -0.1870}
	input := []*domain.Collection{
		testCollection(1, 5.62, -0.17),
		testCollection(2, 5.55, -0.25),
		testCollection(3, 5.58, -0.20),
		testCollection(4, 5.65, -0.15),
		testCollection(5, 5.60, -0.19),
	}

	result, err := OptimizeRoute(start, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Stops) != len(input) {
		t.Fatalf("expected %d stops, got %d", len(input), len(result.Stops))
	}

	seen := make(map[int]bool, len(input))
	for _, s := range result.Stops {
		if seen[s.Collection.CollectionID] {
			t.Fatalf("collection %d appears more than once", s.Collection.CollectionID)
		}
		seen[s.Collection.CollectionID] = true
	}
	for _, c := range input {
		if !seen[c.CollectionID] {
			t.Fatalf("collection %d missing from result", c.CollectionID)
		}
	}
}

func TestOptimizeRouteDeterministic(t *testing.T) {
	start := domain.Coordinate{Lat: 5.6037, Lng: -0.1870}
	input := []*domain.Collection{
		testCollection(1, 5.62, -0.17),
		testCollection(2, 5.55, -0.25),
		testCollection(3, 5.58, -0.20),
	}

	first, err := OptimizeRoute(start, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := OptimizeRoute(start, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.TotalDistanceKm != second.TotalDistanceKm || first.EstimatedMinutes != second.EstimatedMinutes {
		t.Fatalf("totals differ across runs: %+v vs %+v", first, second)
	}
	for i := range first.Stops {
		if first.Stops[i].Collection.CollectionID != second.Stops[i].Collection.CollectionID {
			t.Fatalf("stop order differs at index %d", i)
		}
	}
}

func TestOptimizeRouteEquidistantTieBreak(t *testing.T) {
	// Both stops sit at identical distance north and south of the start;
	// the lower collection ID must win regardless of input order.
	start := domain.Coordinate{Lat: 0, Lng: 0}
	north := testCollection(7, 1, 0)
	south := testCollection(3, -1, 0)

	result, err := OptimizeRoute(start, []*domain.Collection{north, south})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Stops[0].Collection.CollectionID != 3 {
		t.Fatalf("expected collection 3 first on tie, got %d", result.Stops[0].Collection.CollectionID)
	}

	result, err = OptimizeRoute(start, []*domain.Collection{south, north})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Stops[0].Collection.CollectionID != 3 {
		t.Fatalf("expected collection 3 first on tie (reversed input), got %d", result.Stops[0].Collection.CollectionID)
	}
}

func TestOptimizeRouteEmptyInput(t *testing.T) {
	start := domain.Coordinate{Lat: 5.6037, Lng: -0.1870}

	result, err := OptimizeRoute(start, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Stops) != 0 {
		t.Errorf("expected no stops, got %d", len(result.Stops))
	}
	if result.TotalDistanceKm != 0 || result.EstimatedMinutes != 0 {
		t.Errorf("expected zeroed totals, got %+v", result)
	}
}

func TestOptimizeRouteStopAtStart(t *testing.T) {
	start := domain.Coordinate{Lat: 5.6037, Lng: -0.1870}
	atStart := testCollection(1, 5.6037, -0.1870)

	result, err := OptimizeRoute(start, []*domain.Collection{atStart})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Stops) != 1 {
		t.Fatalf("expected 1 stop, got %d", len(result.Stops))
	}
	if result.Stops[0].Navigation.DistanceKm != 0 {
		t.Errorf("leg distance = %v, want 0", result.Stops[0].Navigation.DistanceKm)
	}
	if result.Stops[0].Navigation.EstimatedMinutes != 0 {
		t.Errorf("leg minutes = %d, want 0", result.Stops[0].Navigation.EstimatedMinutes)
	}
	if result.TotalDistanceKm != 0 {
		t.Errorf("total distance = %v, want 0", result.TotalDistanceKm)
	}
	if result.EstimatedMinutes != handlingMinutesPerStop {
		t.Errorf("estimated minutes = %d, want %d", result.EstimatedMinutes, handlingMinutesPerStop)
	}
}

func TestOptimizeRouteRejectsBadCoordinate(t *testing.T) {
	start := domain.Coordinate{Lat: 5.6037, Lng: -0.1870}
	bad := testCollection(9, 95, 0)

	if _, err := OptimizeRoute(start, []*domain.Collection{bad}); err == nil {
		t.Fatal("expected error for out-of-range stop coordinate")
	}

	badStart := domain.Coordinate{Lat: 0, Lng: -200}
	if _, err := OptimizeRoute(badStart, nil); err == nil {
		t.Fatal("expected error for out-of-range start coordinate")
	}
}

func TestOptimizeRouteDoesNotMutateCollections(t *testing.T) {
	start := domain.Coordinate{Lat: 5.6037, Lng: -0.1870}
	c := testCollection(1, 5.61, -0.18)
	before := *c

	if _, err := OptimizeRoute(start, []*domain.Collection{c}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *c != before {
		t.Errorf("collection mutated by optimizer: %+v vs %+v", *c, before)
	}
}

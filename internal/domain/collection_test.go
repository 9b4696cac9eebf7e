package domain

import "testing"

func TestCanTransition(t *testing.T) {
	allowed := [][2]CollectionStatus{
		{StatusPending, StatusInProgress},
		{StatusInProgress, StatusCompleted},
		{StatusInProgress, StatusSkipped},
	}
	for _, pair := range allowed {
		if !CanTransition(pair[0], pair[1]) {
			t.Errorf("expected %s -> %s to be allowed", pair[0], pair[1])
		}
	}

	denied := [][2]CollectionStatus{
		{StatusPending, StatusCompleted},
		{StatusPending, StatusSkipped},
		{StatusCompleted, StatusInProgress},
		{StatusCompleted, StatusPending},
		{StatusSkipped, StatusInProgress},
		{StatusInProgress, StatusPending},
	}
	for _, pair := range denied {
		if CanTransition(pair[0], pair[1]) {
			t.Errorf("expected %s -> %s to be rejected", pair[0], pair[1])
		}
	}

	if CanTransition("UNKNOWN", StatusCompleted) {
		t.Error("unknown source status must be rejected")
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []CollectionStatus{StatusPending, StatusInProgress, StatusCompleted, StatusSkipped} {
		if !ValidStatus(s) {
			t.Errorf("%s should be a valid status", s)
		}
	}
	if ValidStatus("CANCELLED") {
		t.Error("CANCELLED is not a known status")
	}
}

func TestCoordinateValid(t *testing.T) {
	good := []Coordinate{{Lat: 5.6037, Lng: -0.1870}, {Lat: -90, Lng: 180}, {Lat: 90, Lng: -180}, {}}
	for _, c := range good {
		if !c.Valid() {
			t.Errorf("coordinate %+v should be valid", c)
		}
	}

	bad := []Coordinate{{Lat: 90.01, Lng: 0}, {Lat: -91, Lng: 0}, {Lat: 0, Lng: 180.5}, {Lat: 0, Lng: -181}}
	for _, c := range bad {
		if c.Valid() {
			t.Errorf("coordinate %+v should be invalid", c)
		}
	}
}

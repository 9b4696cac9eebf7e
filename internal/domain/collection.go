package domain

import "time"

// Lifecycle status of a scheduled collection stop.
type CollectionStatus string

const (
	StatusPending    CollectionStatus = "PENDING"
	StatusInProgress CollectionStatus = "IN_PROGRESS"
	StatusCompleted  CollectionStatus = "COMPLETED"
	StatusSkipped    CollectionStatus = "SKIPPED"
)

// validTransitions encodes the allowed status machine.
// COMPLETED and SKIPPED are terminal.
var validTransitions = map[CollectionStatus][]CollectionStatus{
	StatusPending:    {StatusInProgress},
	StatusInProgress: {StatusCompleted, StatusSkipped},
	StatusCompleted:  {},
	StatusSkipped:    {},
}

// ValidStatus reports whether s is one of the known collection statuses.
func ValidStatus(s CollectionStatus) bool {
	_, ok := validTransitions[s]
	return ok
}

// CanTransition reports whether a collection may move from one status to another.
func CanTransition(from, to CollectionStatus) bool {
	next, ok := validTransitions[from]
	if !ok {
		return false
	}
	for _, s := range next {
		if s == to {
			return true
		}
	}
	return false
}

// Collection is a scheduled waste-collection visit at a customer location.
// The routing and stats services read collections but never mutate them;
// status changes go through the repository layer.
type Collection struct {
	CollectionID       int
	DriverID           int
	LocationName       string
	Address            string
	Coordinate         Coordinate
	ScheduledTime      time.Time
	ActualTime         *time.Time
	Status             CollectionStatus
	Notes              string
	CreatedAt          time.Time
	LastUpdate         time.Time
	CustomerLocationID *int
	CustomerLocation   *CustomerLocation
}

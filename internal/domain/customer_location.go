package domain

import "time"

// CustomerLocation is a serviced pickup site with its contact details.
type CustomerLocation struct {
	LocationID          int
	Name                string
	Address             string
	Coordinate          Coordinate
	ContactName         string
	ContactNumber       string
	CollectionFrequency string
	IsActive            bool
	Notes               string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

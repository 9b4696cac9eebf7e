package domain

import "time"

// Driver is a waste-collection driver account.
// Position is the last self-reported location and may be absent for drivers
// that have never checked in from the field.
type Driver struct {
	DriverID     int
	Name         string
	Phone        string
	Email        string
	PasswordHash string
	IsActive     bool
	Position     *Coordinate
	LastUpdate   time.Time
}

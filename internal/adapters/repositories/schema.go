package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// Initialize the Postgres database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createDriversQuery := `
	CREATE TABLE IF NOT EXISTS drivers (
		driver_id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		phone TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		current_lat DOUBLE PRECISION,
		current_lng DOUBLE PRECISION,
		last_update TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`

	createCustomerLocationsQuery := `
	CREATE TABLE IF NOT EXISTS customer_locations (
		location_id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		address TEXT NOT NULL,
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL,
		contact_name TEXT NOT NULL DEFAULT '',
		contact_number TEXT NOT NULL DEFAULT '',
		collection_frequency TEXT NOT NULL DEFAULT '',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`

	createCollectionsQuery := `
	CREATE TABLE IF NOT EXISTS waste_collections (
		collection_id SERIAL PRIMARY KEY,
		driver_id INTEGER NOT NULL REFERENCES drivers(driver_id),
		location_name TEXT NOT NULL,
		address TEXT NOT NULL,
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL,
		scheduled_time TIMESTAMPTZ NOT NULL,
		actual_collection_time TIMESTAMPTZ,
		status TEXT NOT NULL DEFAULT 'PENDING',
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		last_update TIMESTAMPTZ NOT NULL DEFAULT now(),
		customer_location_id INTEGER REFERENCES customer_locations(location_id)
	);
	`

	createPhotosQuery := `
	CREATE TABLE IF NOT EXISTS collection_photos (
		photo_id SERIAL PRIMARY KEY,
		collection_id INTEGER NOT NULL REFERENCES waste_collections(collection_id) ON DELETE CASCADE,
		photo_url TEXT NOT NULL,
		photo_type TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (collection_id, photo_type)
	);
	`

	createRoutesQuery := `
	CREATE TABLE IF NOT EXISTS routes (
		route_id SERIAL PRIMARY KEY,
		driver_id INTEGER NOT NULL REFERENCES drivers(driver_id),
		route_date DATE NOT NULL,
		status TEXT NOT NULL DEFAULT 'PENDING',
		distance_km DOUBLE PRECISION NOT NULL DEFAULT 0,
		UNIQUE (driver_id, route_date)
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_collections_driver_scheduled
	ON waste_collections(driver_id, scheduled_time);
	`

	statements := []string{
		createDriversQuery,
		createCustomerLocationsQuery,
		createCollectionsQuery,
		createPhotosQuery,
		createRoutesQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type DriverSeed struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
}

type CustomerLocationSeed struct {
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	ContactName   string  `json:"contact_name"`
	ContactNumber string  `json:"contact_number"`
	Frequency     string  `json:"collection_frequency"`
}

type Seed struct {
	Drivers           []DriverSeed           `json:"drivers"`
	CustomerLocations []CustomerLocationSeed `json:"customer_locations"`
}

// Populate the database with demo drivers and customer locations from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed data: read %q: %w", jsonPath, err)
	}

	var data Seed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed data: parse json: %w", err)
	}

	for i, d := range data.Drivers {
		if strings.TrimSpace(d.Phone) == "" || strings.TrimSpace(d.Email) == "" {
			return fmt.Errorf("seed data: driver at index %d: phone and email are required", i+1)
		}
	}
	for i, l := range data.CustomerLocations {
		if strings.TrimSpace(l.Name) == "" {
			return fmt.Errorf("seed data: customer location at index %d: name is required", i+1)
		}
		if l.Latitude < -90 || l.Latitude > 90 || l.Longitude < -180 || l.Longitude > 180 {
			return fmt.Errorf("seed data: customer location at index %d: coordinate out of range", i+1)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed data: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	driverStmt, err := tx.Prepare(`
	INSERT INTO drivers (name, phone, email, password_hash, last_update)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (email) DO NOTHING;
	`)
	if err != nil {
		return fmt.Errorf("seed data: prepare driver insert: %w", err)
	}
	defer driverStmt.Close()

	now := time.Now().UTC()
	for _, d := range data.Drivers {
		if _, err := driverStmt.Exec(d.Name, d.Phone, d.Email, d.PasswordHash, now); err != nil {
			return fmt.Errorf("seed data: insert driver %q: %w", d.Email, err)
		}
	}

	locationStmt, err := tx.Prepare(`
	INSERT INTO customer_locations (
		name, address, latitude, longitude, contact_name, contact_number, collection_frequency
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7);
	`)
	if err != nil {
		return fmt.Errorf("seed data: prepare location insert: %w", err)
	}
	defer locationStmt.Close()

	for _, l := range data.CustomerLocations {
		if _, err := locationStmt.Exec(l.Name, l.Address, l.Latitude, l.Longitude, l.ContactName, l.ContactNumber, l.Frequency); err != nil {
			return fmt.Errorf("seed data: insert customer location %q: %w", l.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed data: commit tx: %w", err)
	}

	return nil
}

package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Godhold/Waste-Management-App/internal/domain"
)

// Postgres-backed implementation of the RouteRepository port.
type PostgresRouteRepository struct{ DB *sql.DB }

func NewPostgresRouteRepository(db *sql.DB) *PostgresRouteRepository {
	return &PostgresRouteRepository{DB: db}
}

// Save upserts the route record for the driver's day; re-optimizing the same
// day replaces the previous plan's metrics.
func (r *PostgresRouteRepository) Save(ctx context.Context, route *domain.Route) error {
	query := `
	INSERT INTO routes (driver_id, route_date, status, distance_km)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (driver_id, route_date) DO UPDATE
	SET status = EXCLUDED.status,
		distance_km = EXCLUDED.distance_km
	RETURNING route_id;
	`
	err := r.DB.QueryRowContext(ctx, query,
		route.DriverID, route.Date, route.Status, route.DistanceKm,
	).Scan(&route.RouteID)
	if err != nil {
		return fmt.Errorf("save route: upsert: %w", err)
	}
	return nil
}

func (r *PostgresRouteRepository) GetForDriverDay(ctx context.Context, driverID int, day time.Time) (*domain.Route, error) {
	query := `
	SELECT route_id, driver_id, route_date, status, distance_km
	FROM routes
	WHERE driver_id = $1 AND route_date = $2;
	`
	var route domain.Route
	err := r.DB.QueryRowContext(ctx, query, driverID, day).Scan(
		&route.RouteID, &route.DriverID, &route.Date, &route.Status, &route.DistanceKm,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get route for driver %d: %w", driverID, err)
	}
	return &route, nil
}

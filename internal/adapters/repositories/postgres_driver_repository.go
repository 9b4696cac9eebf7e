package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Godhold/Waste-Management-App/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// Postgres-backed implementation of the DriverRepository port.
type PostgresDriverRepository struct{ DB *sql.DB }

func NewPostgresDriverRepository(db *sql.DB) *PostgresDriverRepository {
	return &PostgresDriverRepository{DB: db}
}

const driverColumns = `
	driver_id, name, phone, email, password_hash, is_active,
	current_lat, current_lng, last_update
`

func scanDriver(row interface{ Scan(...any) error }) (*domain.Driver, error) {
	var d domain.Driver
	var lat, lng sql.NullFloat64

	err := row.Scan(
		&d.DriverID, &d.Name, &d.Phone, &d.Email, &d.PasswordHash, &d.IsActive,
		&lat, &lng, &d.LastUpdate,
	)
	if err != nil {
		return nil, err
	}

	if lat.Valid && lng.Valid {
		d.Position = &domain.Coordinate{Lat: lat.Float64, Lng: lng.Float64}
	}
	return &d, nil
}

// Insert a new driver and populate its generated ID.
func (r *PostgresDriverRepository) Create(ctx context.Context, d *domain.Driver) error {
	query := `
	INSERT INTO drivers (name, phone, email, password_hash, is_active, last_update)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING driver_id;
	`
	err := r.DB.QueryRowContext(ctx, query,
		d.Name, d.Phone, d.Email, d.PasswordHash, d.IsActive, d.LastUpdate,
	).Scan(&d.DriverID)
	if err != nil {
		return fmt.Errorf("create driver: insert: %w", err)
	}
	return nil
}

func (r *PostgresDriverRepository) GetByID(ctx context.Context, id int) (*domain.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers WHERE driver_id = $1;`

	d, err := scanDriver(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get driver %d: %w", id, err)
	}
	return d, nil
}

func (r *PostgresDriverRepository) GetByEmail(ctx context.Context, email string) (*domain.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers WHERE email = $1;`

	d, err := scanDriver(r.DB.QueryRowContext(ctx, query, email))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get driver by email: %w", err)
	}
	return d, nil
}

func (r *PostgresDriverRepository) ExistsByPhoneOrEmail(ctx context.Context, phone, email string, excludeID int) (bool, error) {
	query := `
	SELECT EXISTS (
		SELECT 1 FROM drivers
		WHERE (phone = $1 OR email = $2) AND driver_id <> $3
	);
	`
	var exists bool
	if err := r.DB.QueryRowContext(ctx, query, phone, email, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("driver exists check: %w", err)
	}
	return exists, nil
}

func (r *PostgresDriverRepository) Update(ctx context.Context, d *domain.Driver) error {
	var lat, lng sql.NullFloat64
	if d.Position != nil {
		lat = sql.NullFloat64{Float64: d.Position.Lat, Valid: true}
		lng = sql.NullFloat64{Float64: d.Position.Lng, Valid: true}
	}

	query := `
	UPDATE drivers
	SET name = $1, phone = $2, email = $3, is_active = $4,
		current_lat = $5, current_lng = $6, last_update = $7
	WHERE driver_id = $8;
	`
	res, err := r.DB.ExecContext(ctx, query,
		d.Name, d.Phone, d.Email, d.IsActive, lat, lng, d.LastUpdate, d.DriverID,
	)
	if err != nil {
		return fmt.Errorf("update driver %d: %w", d.DriverID, err)
	}
	return requireRow(res, "update driver")
}

func (r *PostgresDriverRepository) UpdatePassword(ctx context.Context, id int, passwordHash string, at time.Time) error {
	query := `UPDATE drivers SET password_hash = $1, last_update = $2 WHERE driver_id = $3;`

	res, err := r.DB.ExecContext(ctx, query, passwordHash, at, id)
	if err != nil {
		return fmt.Errorf("update driver password: %w", err)
	}
	return requireRow(res, "update driver password")
}

func (r *PostgresDriverRepository) UpdatePosition(ctx context.Context, id int, pos domain.Coordinate, at time.Time) error {
	query := `
	UPDATE drivers
	SET current_lat = $1, current_lng = $2, last_update = $3
	WHERE driver_id = $4;
	`
	res, err := r.DB.ExecContext(ctx, query, pos.Lat, pos.Lng, at, id)
	if err != nil {
		return fmt.Errorf("update driver position: %w", err)
	}
	return requireRow(res, "update driver position")
}

func (r *PostgresDriverRepository) List(ctx context.Context) ([]*domain.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers ORDER BY driver_id;`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list drivers: query: %w", err)
	}
	defer rows.Close()

	drivers := make([]*domain.Driver, 0, 16)
	for rows.Next() {
		d, err := scanDriver(rows)
		if err != nil {
			return nil, fmt.Errorf("list drivers: scan row: %w", err)
		}
		drivers = append(drivers, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list drivers: row iteration: %w", err)
	}

	return drivers, nil
}

func requireRow(res sql.Result, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Godhold/Waste-Management-App/internal/domain"
	"github.com/Godhold/Waste-Management-App/internal/ports"
)

// Postgres-backed implementation of the CollectionRepository port.
type PostgresCollectionRepository struct{ DB *sql.DB }

func NewPostgresCollectionRepository(db *sql.DB) *PostgresCollectionRepository {
	return &PostgresCollectionRepository{DB: db}
}

// Every read goes through the same LEFT JOIN so customer-location contact
// details are available wherever a collection is loaded.
const collectionSelect = `
	SELECT
		c.collection_id, c.driver_id, c.location_name, c.address,
		c.latitude, c.longitude, c.scheduled_time, c.actual_collection_time,
		c.status, c.notes, c.created_at, c.last_update, c.customer_location_id,
		l.name, l.address, l.latitude, l.longitude, l.contact_name, l.contact_number
	FROM waste_collections c
	LEFT JOIN customer_locations l ON l.location_id = c.customer_location_id
`

func scanCollection(row interface{ Scan(...any) error }) (*domain.Collection, error) {
	var c domain.Collection
	var actual sql.NullTime
	var locationID sql.NullInt64
	var locName, locAddress, contactName, contactNumber sql.NullString
	var locLat, locLng sql.NullFloat64

	err := row.Scan(
		&c.CollectionID, &c.DriverID, &c.LocationName, &c.Address,
		&c.Coordinate.Lat, &c.Coordinate.Lng, &c.ScheduledTime, &actual,
		&c.Status, &c.Notes, &c.CreatedAt, &c.LastUpdate, &locationID,
		&locName, &locAddress, &locLat, &locLng, &contactName, &contactNumber,
	)
	if err != nil {
		return nil, err
	}

	if actual.Valid {
		t := actual.Time
		c.ActualTime = &t
	}
	if locationID.Valid {
		id := int(locationID.Int64)
		c.CustomerLocationID = &id
		c.CustomerLocation = &domain.CustomerLocation{
			LocationID:    id,
			Name:          locName.String,
			Address:       locAddress.String,
			Coordinate:    domain.Coordinate{Lat: locLat.Float64, Lng: locLng.Float64},
			ContactName:   contactName.String,
			ContactNumber: contactNumber.String,
		}
	}

	return &c, nil
}

// Insert a new collection and populate its generated ID.
func (r *PostgresCollectionRepository) Create(ctx context.Context, c *domain.Collection) error {
	query := `
	INSERT INTO waste_collections (
		driver_id, location_name, address, latitude, longitude,
		scheduled_time, status, notes, created_at, last_update, customer_location_id
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	RETURNING collection_id;
	`
	var locationID sql.NullInt64
	if c.CustomerLocationID != nil {
		locationID = sql.NullInt64{Int64: int64(*c.CustomerLocationID), Valid: true}
	}

	err := r.DB.QueryRowContext(ctx, query,
		c.DriverID, c.LocationName, c.Address, c.Coordinate.Lat, c.Coordinate.Lng,
		c.ScheduledTime, c.Status, c.Notes, c.CreatedAt, c.LastUpdate, locationID,
	).Scan(&c.CollectionID)
	if err != nil {
		return fmt.Errorf("create collection: insert: %w", err)
	}
	return nil
}

func (r *PostgresCollectionRepository) GetByID(ctx context.Context, id int) (*domain.Collection, error) {
	query := collectionSelect + ` WHERE c.collection_id = $1;`

	c, err := scanCollection(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get collection %d: %w", id, err)
	}
	return c, nil
}

func (r *PostgresCollectionRepository) Update(ctx context.Context, c *domain.Collection) error {
	var actual sql.NullTime
	if c.ActualTime != nil {
		actual = sql.NullTime{Time: *c.ActualTime, Valid: true}
	}

	query := `
	UPDATE waste_collections
	SET location_name = $1, address = $2, latitude = $3, longitude = $4,
		scheduled_time = $5, actual_collection_time = $6, status = $7,
		notes = $8, last_update = $9
	WHERE collection_id = $10;
	`
	res, err := r.DB.ExecContext(ctx, query,
		c.LocationName, c.Address, c.Coordinate.Lat, c.Coordinate.Lng,
		c.ScheduledTime, actual, c.Status, c.Notes, c.LastUpdate, c.CollectionID,
	)
	if err != nil {
		return fmt.Errorf("update collection %d: %w", c.CollectionID, err)
	}
	return requireRow(res, "update collection")
}

func (r *PostgresCollectionRepository) UpdateStatus(
	ctx context.Context,
	id int,
	status domain.CollectionStatus,
	notes string,
	at time.Time,
	actualTime *time.Time,
) error {
	var actual sql.NullTime
	if actualTime != nil {
		actual = sql.NullTime{Time: *actualTime, Valid: true}
	}

	query := `
	UPDATE waste_collections
	SET status = $1,
		notes = CASE WHEN $2 <> '' THEN $2 ELSE notes END,
		actual_collection_time = COALESCE($3, actual_collection_time),
		last_update = $4
	WHERE collection_id = $5;
	`
	res, err := r.DB.ExecContext(ctx, query, status, notes, actual, at, id)
	if err != nil {
		return fmt.Errorf("update collection status: %w", err)
	}
	return requireRow(res, "update collection status")
}

func (r *PostgresCollectionRepository) Delete(ctx context.Context, id int) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM waste_collections WHERE collection_id = $1;`, id)
	if err != nil {
		return fmt.Errorf("delete collection %d: %w", id, err)
	}
	return requireRow(res, "delete collection")
}

// buildFilter translates a CollectionFilter into a WHERE clause with
// positional args. Only the placeholder structure is assembled; all values
// remain parameterized.
func buildFilter(f ports.CollectionFilter) (string, []any) {
	where := make([]string, 0, 5)
	args := make([]any, 0, 5)

	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		where = append(where, fmt.Sprintf("(c.location_name ILIKE $%d OR c.address ILIKE $%d)", n, n))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		where = append(where, fmt.Sprintf("c.status = $%d", len(args)))
	}
	if f.DriverID != 0 {
		args = append(args, f.DriverID)
		where = append(where, fmt.Sprintf("c.driver_id = $%d", len(args)))
	}
	if f.StartDate != nil {
		args = append(args, *f.StartDate)
		where = append(where, fmt.Sprintf("c.scheduled_time >= $%d", len(args)))
	}
	if f.EndDate != nil {
		args = append(args, *f.EndDate)
		where = append(where, fmt.Sprintf("c.scheduled_time <= $%d", len(args)))
	}

	if len(where) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(where, " AND "), args
}

func (r *PostgresCollectionRepository) ListPage(ctx context.Context, f ports.CollectionFilter) (ports.CollectionPage, error) {
	clause, args := buildFilter(f)

	var total int
	countQuery := `SELECT COUNT(*) FROM waste_collections c` + clause + `;`
	if err := r.DB.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return ports.CollectionPage{}, fmt.Errorf("list collections: count: %w", err)
	}

	args = append(args, f.PageSize, (f.Page-1)*f.PageSize)
	query := collectionSelect + clause +
		fmt.Sprintf(" ORDER BY c.scheduled_time, c.collection_id LIMIT $%d OFFSET $%d;", len(args)-1, len(args))

	items, err := r.queryCollections(ctx, query, args...)
	if err != nil {
		return ports.CollectionPage{}, fmt.Errorf("list collections: %w", err)
	}

	return ports.CollectionPage{Total: total, Items: items}, nil
}

func (r *PostgresCollectionRepository) ListFiltered(ctx context.Context, f ports.CollectionFilter) ([]*domain.Collection, error) {
	clause, args := buildFilter(f)
	query := collectionSelect + clause + ` ORDER BY c.scheduled_time, c.collection_id;`

	items, err := r.queryCollections(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list filtered collections: %w", err)
	}
	return items, nil
}

func (r *PostgresCollectionRepository) ListForDriverBetween(
	ctx context.Context,
	driverID int,
	start, end time.Time,
	status domain.CollectionStatus,
) ([]*domain.Collection, error) {
	query := collectionSelect + `
	WHERE c.driver_id = $1
		AND c.scheduled_time >= $2
		AND c.scheduled_time < $3
		AND ($4 = '' OR c.status = $4)
	ORDER BY c.scheduled_time, c.collection_id;
	`
	items, err := r.queryCollections(ctx, query, driverID, start, end, string(status))
	if err != nil {
		return nil, fmt.Errorf("list driver %d collections: %w", driverID, err)
	}
	return items, nil
}

func (r *PostgresCollectionRepository) GetActiveForDriver(ctx context.Context, driverID int) (*domain.Collection, error) {
	query := collectionSelect + `
	WHERE c.driver_id = $1 AND c.status = $2
	ORDER BY c.scheduled_time
	LIMIT 1;
	`
	c, err := scanCollection(r.DB.QueryRowContext(ctx, query, driverID, domain.StatusInProgress))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get active collection for driver %d: %w", driverID, err)
	}
	return c, nil
}

func (r *PostgresCollectionRepository) queryCollections(ctx context.Context, query string, args ...any) ([]*domain.Collection, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	out := make([]*domain.Collection, 0, 32)
	for rows.Next() {
		c, err := scanCollection(rows)
		if err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration: %w", err)
	}

	return out, nil
}

package ports

import (
	"context"
	"time"

	"github.com/Godhold/Waste-Management-App/internal/domain"
)

// Filter and pagination options for management collection listings.
// Zero values mean "no constraint"; Page/PageSize are validated by the caller.
type CollectionFilter struct {
	Search    string
	Status    domain.CollectionStatus
	DriverID  int
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	PageSize  int
}

// One page of collections plus the unpaginated match count.
type CollectionPage struct {
	Total int
	Items []*domain.Collection
}

// Port: boundary for Driver persistence.
type DriverRepository interface {
	Create(ctx context.Context, d *domain.Driver) error
	GetByID(ctx context.Context, id int) (*domain.Driver, error)
	GetByEmail(ctx context.Context, email string) (*domain.Driver, error)
	// ExistsByPhoneOrEmail supports uniqueness checks on signup and profile updates.
	ExistsByPhoneOrEmail(ctx context.Context, phone, email string, excludeID int) (bool, error)
	Update(ctx context.Context, d *domain.Driver) error
	UpdatePassword(ctx context.Context, id int, passwordHash string, at time.Time) error
	UpdatePosition(ctx context.Context, id int, pos domain.Coordinate, at time.Time) error
	List(ctx context.Context) ([]*domain.Driver, error)
}

// Port: boundary for Collection persistence.
type CollectionRepository interface {
	Create(ctx context.Context, c *domain.Collection) error
	GetByID(ctx context.Context, id int) (*domain.Collection, error)
	Update(ctx context.Context, c *domain.Collection) error
	// UpdateStatus records a status change together with its update timestamp.
	// actualTime is set only for COMPLETED transitions.
	UpdateStatus(ctx context.Context, id int, status domain.CollectionStatus, notes string, at time.Time, actualTime *time.Time) error
	Delete(ctx context.Context, id int) error
	// ListPage applies the management filter with pagination.
	ListPage(ctx context.Context, f CollectionFilter) (CollectionPage, error)
	// ListFiltered applies the filter without pagination, in scheduled order.
	ListFiltered(ctx context.Context, f CollectionFilter) ([]*domain.Collection, error)
	// ListForDriverBetween returns a driver's collections scheduled in
	// [start, end), in scheduled order. An empty status matches all statuses.
	ListForDriverBetween(ctx context.Context, driverID int, start, end time.Time, status domain.CollectionStatus) ([]*domain.Collection, error)
	// GetActiveForDriver returns the driver's IN_PROGRESS collection, or nil.
	GetActiveForDriver(ctx context.Context, driverID int) (*domain.Collection, error)
}

// Port: boundary for proof-of-collection photo records.
type PhotoRepository interface {
	Create(ctx context.Context, p *domain.CollectionPhoto) error
	// GetByCollectionAndType returns nil without error when no photo exists.
	GetByCollectionAndType(ctx context.Context, collectionID int, photoType domain.PhotoType) (*domain.CollectionPhoto, error)
}

// Port: boundary for persisted route plans.
type RouteRepository interface {
	// Save upserts the driver's route record for the given day.
	Save(ctx context.Context, r *domain.Route) error
	GetForDriverDay(ctx context.Context, driverID int, day time.Time) (*domain.Route, error)
}

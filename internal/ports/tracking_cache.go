package ports

import (
	"context"
	"time"

	"github.com/Godhold/Waste-Management-App/internal/domain"
)

// Last self-reported position of a driver.
type DriverPosition struct {
	Coordinate domain.Coordinate `json:"coordinate"`
	RecordedAt time.Time         `json:"recorded_at"`
}

// Port: short-lived cache of live driver positions. The repository remains
// the durable record; the cache only shortcuts the live tracking read path.
type TrackingCache interface {
	PutPosition(ctx context.Context, driverID int, pos DriverPosition) error
	// GetPosition returns ok=false when no fresh position is cached.
	GetPosition(ctx context.Context, driverID int) (DriverPosition, bool, error)
}

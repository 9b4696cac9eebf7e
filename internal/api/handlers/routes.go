package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/Godhold/Waste-Management-App/internal/adapters/repositories"
	"github.com/Godhold/Waste-Management-App/internal/api/dto"
	"github.com/Godhold/Waste-Management-App/internal/domain"
	"github.com/Godhold/Waste-Management-App/internal/platform/obs"
	"github.com/Godhold/Waste-Management-App/internal/ports"
	"github.com/Godhold/Waste-Management-App/internal/services"
)

// RouteHandler computes an optimized visiting order over a driver's pending
// collections and records the planned route for the day.
type RouteHandler struct {
	Collections ports.CollectionRepository
	Drivers     ports.DriverRepository
	Routes      ports.RouteRepository
	// Depot is the route start when the driver has no reported position.
	Depot domain.Coordinate
}

func (h *RouteHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	driverID, err := requireQueryID(r, "driver_id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.optimize(r.Context(), driverID, time.Now().UTC())
	if err != nil {
		if errors.Is(err, errNoPendingCollections) {
			writeError(w, r, http.StatusNotFound, "no pending collections found")
			return
		}
		log.Printf("optimize route failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.RouteOptimizationResponse{
		OptimizedCollections: make([]dto.CollectionResponse, 0, len(result.Stops)),
		TotalDistance:        result.TotalDistanceKm,
		EstimatedTime:        result.EstimatedMinutes,
	}
	for _, stop := range result.Stops {
		cr := toCollectionResponse(stop.Collection)
		cr.Navigation = toNavigationResponse(stop.Navigation)
		res.OptimizedCollections = append(res.OptimizedCollections, cr)
	}

	writeJSON(w, r, http.StatusOK, res)
}

var errNoPendingCollections = errors.New("no pending collections")

func (h *RouteHandler) optimize(ctx context.Context, driverID int, now time.Time) (_ *domain.RouteResult, err error) {
	defer obs.Time(ctx, "route.optimize")(&err)

	dayStart, dayEnd := services.DayWindow(now)
	pending, err := h.Collections.ListForDriverBetween(ctx, driverID, dayStart, dayEnd, domain.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("optimize: list pending collections: %w", err)
	}
	if len(pending) == 0 {
		return nil, errNoPendingCollections
	}

	start := h.Depot
	driver, err := h.Drivers.GetByID(ctx, driverID)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("optimize: get driver: %w", err)
	}
	if driver != nil && driver.Position != nil {
		start = *driver.Position
	}

	result, err := services.OptimizeRoute(start, pending)
	if err != nil {
		return nil, fmt.Errorf("optimize: %w", err)
	}

	route := &domain.Route{
		DriverID:   driverID,
		Date:       dayStart,
		Status:     domain.RoutePending,
		DistanceKm: result.TotalDistanceKm,
	}
	if err := h.Routes.Save(ctx, route); err != nil {
		return nil, fmt.Errorf("optimize: save route: %w", err)
	}

	return result, nil
}

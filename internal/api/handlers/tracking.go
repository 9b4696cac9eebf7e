package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/Godhold/Waste-Management-App/internal/adapters/repositories"
	"github.com/Godhold/Waste-Management-App/internal/api/dto"
	"github.com/Godhold/Waste-Management-App/internal/domain"
	"github.com/Godhold/Waste-Management-App/internal/ports"
	"github.com/Godhold/Waste-Management-App/internal/services"
)

// TrackingHandler exposes live fleet positions, per-driver collection history
// and aggregate operational metrics.
type TrackingHandler struct {
	Drivers     ports.DriverRepository
	Collections ports.CollectionRepository
	Cache       ports.TrackingCache
}

// Live returns the current position and active task for one driver, or for
// the whole active fleet when driver_id is absent.
func (h *TrackingHandler) Live(w http.ResponseWriter, r *http.Request) {
	driverID, err := queryID(r, "driver_id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var drivers []*domain.Driver
	if driverID != 0 {
		driver, err := h.Drivers.GetByID(r.Context(), driverID)
		if errors.Is(err, repositories.ErrNotFound) {
			writeError(w, r, http.StatusNotFound, "driver not found")
			return
		}
		if err != nil {
			log.Printf("live tracking lookup failed: %v", err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return
		}
		drivers = []*domain.Driver{driver}
	} else {
		all, err := h.Drivers.List(r.Context())
		if err != nil {
			log.Printf("live tracking list failed: %v", err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return
		}
		for _, d := range all {
			if d.IsActive {
				drivers = append(drivers, d)
			}
		}
	}

	out := make([]dto.TrackingResponse, 0, len(drivers))
	for _, d := range drivers {
		entry, err := h.trackingEntry(r.Context(), d)
		if err != nil {
			log.Printf("live tracking entry failed: %v", err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return
		}
		out = append(out, entry)
	}

	writeJSON(w, r, http.StatusOK, out)
}

func (h *TrackingHandler) trackingEntry(ctx context.Context, d *domain.Driver) (dto.TrackingResponse, error) {
	res := dto.TrackingResponse{
		DriverID:   d.DriverID,
		DriverName: d.Name,
		LastUpdate: d.LastUpdate,
	}

	// Cache first; the driver row is the fallback when the cache has expired.
	pos, ok, err := h.Cache.GetPosition(ctx, d.DriverID)
	if err != nil {
		log.Printf("tracking cache read failed: driver=%d err=%v", d.DriverID, err)
	}
	switch {
	case err == nil && ok:
		res.CurrentLocation = &dto.PointResponse{Lat: pos.Coordinate.Lat, Lng: pos.Coordinate.Lng}
		res.LastUpdate = pos.RecordedAt
	case d.Position != nil:
		res.CurrentLocation = &dto.PointResponse{Lat: d.Position.Lat, Lng: d.Position.Lng}
	}

	active, err := h.Collections.GetActiveForDriver(ctx, d.DriverID)
	if err != nil {
		return res, err
	}
	if active != nil {
		res.CollectionID = &active.CollectionID
		res.CurrentTask = &dto.CurrentTaskResponse{
			Location:      active.LocationName,
			Status:        string(active.Status),
			ScheduledTime: active.ScheduledTime,
		}
	}
	return res, nil
}

// UpdateLocation records a driver's self-reported position in both the
// durable store and the live cache.
func (h *TrackingHandler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	driverID, err := pathID(r, "driver_id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var req dto.LocationUpdateRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	pos := domain.Coordinate{Lat: req.Latitude, Lng: req.Longitude}
	if !pos.Valid() {
		writeError(w, r, http.StatusBadRequest, "coordinate out of range")
		return
	}

	if _, err := h.Drivers.GetByID(r.Context(), driverID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			writeError(w, r, http.StatusNotFound, "driver not found")
			return
		}
		log.Printf("update location lookup failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	at := time.Now().UTC()
	if req.Timestamp != nil {
		at = req.Timestamp.UTC()
	}

	if err := h.Drivers.UpdatePosition(r.Context(), driverID, pos, at); err != nil {
		log.Printf("update position failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	// A cache miss only costs a database read on the next live lookup.
	if err := h.Cache.PutPosition(r.Context(), driverID, ports.DriverPosition{
		Coordinate: pos,
		RecordedAt: at,
	}); err != nil {
		log.Printf("cache write failed: driver=%d err=%v", driverID, err)
	}

	writeJSON(w, r, http.StatusOK, dto.MessageResponse{Message: "Location updated successfully"})
}

// History returns a driver's collections over an optional date range.
func (h *TrackingHandler) History(w http.ResponseWriter, r *http.Request) {
	driverID, err := pathID(r, "driver_id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	driver, err := h.Drivers.GetByID(r.Context(), driverID)
	if errors.Is(err, repositories.ErrNotFound) {
		writeError(w, r, http.StatusNotFound, "driver not found")
		return
	}
	if err != nil {
		log.Printf("history lookup failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	f := ports.CollectionFilter{DriverID: driverID}
	if f.StartDate, err = queryTime(r, "start_date"); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if f.EndDate, err = queryTime(r, "end_date"); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	collections, err := h.Collections.ListFiltered(r.Context(), f)
	if err != nil {
		log.Printf("history list failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.HistoryResponse{
		DriverInfo: dto.HistoryDriverResponse{
			DriverID: driver.DriverID,
			Name:     driver.Name,
			IsActive: driver.IsActive,
		},
		Collections: make([]dto.HistoryItemResponse, 0, len(collections)),
	}
	for _, c := range collections {
		res.Collections = append(res.Collections, dto.HistoryItemResponse{
			CollectionID:  c.CollectionID,
			Location:      c.LocationName,
			Status:        string(c.Status),
			ScheduledTime: c.ScheduledTime,
			ActualTime:    c.ActualTime,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Analytics returns fleet-wide status counts over an optional date range.
func (h *TrackingHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	f := ports.CollectionFilter{}

	driverID, err := queryID(r, "driver_id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	f.DriverID = driverID

	if f.StartDate, err = queryTime(r, "start_date"); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if f.EndDate, err = queryTime(r, "end_date"); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	collections, err := h.Collections.ListFiltered(r.Context(), f)
	if err != nil {
		log.Printf("analytics list failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	var metrics dto.AnalyticsMetricsResponse
	metrics.TotalCollections = len(collections)
	for _, c := range collections {
		switch c.Status {
		case domain.StatusCompleted:
			metrics.CompletedCollections++
		case domain.StatusPending:
			metrics.PendingCollections++
		case domain.StatusInProgress:
			metrics.InProgressCollections++
		case domain.StatusSkipped:
			metrics.SkippedCollections++
		}
	}
	metrics.CompletionRate = services.CompletionRate(metrics.CompletedCollections, metrics.TotalCollections)

	writeJSON(w, r, http.StatusOK, dto.AnalyticsResponse{
		Period:  dto.AnalyticsPeriodResponse{Start: f.StartDate, End: f.EndDate},
		Metrics: metrics,
	})
}

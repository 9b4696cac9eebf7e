package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/Godhold/Waste-Management-App/internal/adapters/repositories"
	"github.com/Godhold/Waste-Management-App/internal/api/dto"
	"github.com/Godhold/Waste-Management-App/internal/domain"
	"github.com/Godhold/Waste-Management-App/internal/ports"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// ManagementHandler exposes the back-office CRUD surface over collections.
type ManagementHandler struct {
	Collections ports.CollectionRepository
	Drivers     ports.DriverRepository
}

func (h *ManagementHandler) List(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilter(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	page, err := h.Collections.ListPage(r.Context(), f)
	if err != nil {
		log.Printf("list collections failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.PaginatedCollectionsResponse{
		Total:    page.Total,
		Page:     f.Page,
		PageSize: f.PageSize,
		Items:    toCollectionResponses(page.Items),
	})
}

func (h *ManagementHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCollectionRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if req.LocationName == "" {
		writeError(w, r, http.StatusBadRequest, "location_name is required")
		return
	}
	coord := domain.Coordinate{Lat: req.Latitude, Lng: req.Longitude}
	if !coord.Valid() {
		writeError(w, r, http.StatusBadRequest, "coordinate out of range")
		return
	}
	if req.ScheduledTime.IsZero() {
		writeError(w, r, http.StatusBadRequest, "scheduled_time is required")
		return
	}

	status := domain.StatusPending
	if req.Status != "" {
		status = domain.CollectionStatus(req.Status)
		if !domain.ValidStatus(status) {
			writeError(w, r, http.StatusBadRequest, "unknown status")
			return
		}
	}

	driver, err := h.Drivers.GetByID(r.Context(), req.DriverID)
	if errors.Is(err, repositories.ErrNotFound) {
		writeError(w, r, http.StatusNotFound, "driver not found")
		return
	}
	if err != nil {
		log.Printf("create collection driver lookup failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	if !driver.IsActive {
		writeError(w, r, http.StatusBadRequest, "driver is not active")
		return
	}

	now := time.Now().UTC()
	collection := &domain.Collection{
		DriverID:           req.DriverID,
		LocationName:       req.LocationName,
		Address:            req.Address,
		Coordinate:         coord,
		ScheduledTime:      req.ScheduledTime,
		Status:             status,
		Notes:              req.Notes,
		CreatedAt:          now,
		LastUpdate:         now,
		CustomerLocationID: req.CustomerLocationID,
	}
	if err := h.Collections.Create(r.Context(), collection); err != nil {
		log.Printf("create collection failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusCreated, toCollectionResponse(collection))
}

func (h *ManagementHandler) Get(w http.ResponseWriter, r *http.Request) {
	collectionID, err := pathID(r, "collection_id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	collection, err := h.Collections.GetByID(r.Context(), collectionID)
	if errors.Is(err, repositories.ErrNotFound) {
		writeError(w, r, http.StatusNotFound, "collection not found")
		return
	}
	if err != nil {
		log.Printf("get collection failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, toCollectionResponse(collection))
}

func (h *ManagementHandler) Update(w http.ResponseWriter, r *http.Request) {
	collectionID, err := pathID(r, "collection_id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var req dto.UpdateCollectionRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	collection, err := h.Collections.GetByID(r.Context(), collectionID)
	if errors.Is(err, repositories.ErrNotFound) {
		writeError(w, r, http.StatusNotFound, "collection not found")
		return
	}
	if err != nil {
		log.Printf("update collection lookup failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	if req.Status != nil {
		status := domain.CollectionStatus(*req.Status)
		if !domain.ValidStatus(status) {
			writeError(w, r, http.StatusBadRequest, "unknown status")
			return
		}
		collection.Status = status
	}
	if req.Notes != nil {
		collection.Notes = *req.Notes
	}
	if req.ActualTime != nil {
		collection.ActualTime = req.ActualTime
	}
	collection.LastUpdate = time.Now().UTC()

	if err := h.Collections.Update(r.Context(), collection); err != nil {
		log.Printf("update collection failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, toCollectionResponse(collection))
}

func (h *ManagementHandler) Delete(w http.ResponseWriter, r *http.Request) {
	collectionID, err := pathID(r, "collection_id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Collections.Delete(r.Context(), collectionID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			writeError(w, r, http.StatusNotFound, "collection not found")
			return
		}
		log.Printf("delete collection failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseFilter(r *http.Request) (ports.CollectionFilter, error) {
	q := r.URL.Query()
	f := ports.CollectionFilter{
		Search:   q.Get("search"),
		Page:     1,
		PageSize: defaultPageSize,
	}

	if raw := q.Get("status"); raw != "" {
		status := domain.CollectionStatus(raw)
		if !domain.ValidStatus(status) {
			return f, errors.New("unknown status")
		}
		f.Status = status
	}

	driverID, err := queryID(r, "driver_id")
	if err != nil {
		return f, err
	}
	f.DriverID = driverID

	if f.StartDate, err = queryTime(r, "start_date"); err != nil {
		return f, err
	}
	if f.EndDate, err = queryTime(r, "end_date"); err != nil {
		return f, err
	}

	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return f, errors.New("page must be a positive integer")
		}
		f.Page = page
	}
	if raw := q.Get("page_size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size < 1 || size > maxPageSize {
			return f, errors.New("page_size must be between 1 and 100")
		}
		f.PageSize = size
	}

	return f, nil
}

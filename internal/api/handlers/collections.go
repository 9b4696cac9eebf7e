package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/Godhold/Waste-Management-App/internal/adapters/repositories"
	"github.com/Godhold/Waste-Management-App/internal/api/dto"
	"github.com/Godhold/Waste-Management-App/internal/domain"
	"github.com/Godhold/Waste-Management-App/internal/ports"
	"github.com/Godhold/Waste-Management-App/internal/services"
)

// CollectionHandler exposes the driver-facing collection endpoints:
// today's assignments, per-stop details with navigation, status updates
// and proof-of-collection photo uploads.
type CollectionHandler struct {
	Collections ports.CollectionRepository
	Drivers     ports.DriverRepository
	Photos      ports.PhotoRepository
	Store       ports.PhotoStore
}

// ListToday returns the driver's collections scheduled for the current day.
func (h *CollectionHandler) ListToday(w http.ResponseWriter, r *http.Request) {
	driverID, err := requireQueryID(r, "driver_id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	start, end := services.DayWindow(time.Now().UTC())
	collections, err := h.Collections.ListForDriverBetween(r.Context(), driverID, start, end, "")
	if err != nil {
		log.Printf("list today collections failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, toCollectionResponses(collections))
}

// Details returns one collection with navigation from the driver's last
// reported position, when one is known.
func (h *CollectionHandler) Details(w http.ResponseWriter, r *http.Request) {
	collectionID, err := pathID(r, "collection_id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	driverID, err := requireQueryID(r, "driver_id")
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
	if collection.DriverID != driverID {
		writeError(w, r, http.StatusNotFound, "collection not found")
		return
	}

	res := toCollectionResponse(collection)

	driver, err := h.Drivers.GetByID(r.Context(), driverID)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		log.Printf("get driver for navigation failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	if driver != nil && driver.Position != nil {
		res.Navigation = toNavigationResponse(services.Navigate(*driver.Position, collection.Coordinate))
	}

	writeJSON(w, r, http.StatusOK, res)
}

// UpdateStatus moves a collection through its status machine.
func (h *CollectionHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	collectionID, err := pathID(r, "collection_id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	driverID, err := requireQueryID(r, "driver_id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var req dto.StatusUpdateRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	newStatus := domain.CollectionStatus(req.Status)
	if !domain.ValidStatus(newStatus) {
		writeError(w, r, http.StatusBadRequest, "unknown status")
		return
	}

	collection, err := h.Collections.GetByID(r.Context(), collectionID)
	if errors.Is(err, repositories.ErrNotFound) {
		writeError(w, r, http.StatusNotFound, "collection not found")
		return
	}
	if err != nil {
		log.Printf("update status lookup failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	if collection.DriverID != driverID {
		writeError(w, r, http.StatusNotFound, "collection not found")
		return
	}

	if !domain.CanTransition(collection.Status, newStatus) {
		writeError(w, r, http.StatusBadRequest,
			fmt.Sprintf("invalid status transition from %s to %s", collection.Status, newStatus))
		return
	}

	now := time.Now().UTC()
	var actualTime *time.Time
	if newStatus == domain.StatusCompleted {
		actualTime = &now
	}

	if err := h.Collections.UpdateStatus(r.Context(), collectionID, newStatus, req.Notes, now, actualTime); err != nil {
		log.Printf("update status failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.StatusUpdateResponse{
		Message:      "Status updated successfully",
		CollectionID: collectionID,
		NewStatus:    string(newStatus),
	})
}

// UploadPhoto stores a before/after proof image for a collection.
func (h *CollectionHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	collectionID, err := pathID(r, "collection_id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	photoType := domain.PhotoType(r.URL.Query().Get("photo_type"))
	if !domain.ValidPhotoType(photoType) {
		writeError(w, r, http.StatusBadRequest, "photo_type must be before or after")
		return
	}

	if _, err := h.Collections.GetByID(r.Context(), collectionID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			writeError(w, r, http.StatusNotFound, "collection not found")
			return
		}
		log.Printf("upload photo lookup failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	existing, err := h.Photos.GetByCollectionAndType(r.Context(), collectionID, photoType)
	if err != nil {
		log.Printf("upload photo duplicate check failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	if existing != nil {
		writeError(w, r, http.StatusBadRequest,
			fmt.Sprintf("%s photo already exists for this collection", photoType))
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "photo file is required")
		return
	}
	defer file.Close()

	folder := fmt.Sprintf("collection_%d_%s", collectionID, photoType)
	relPath, err := h.Store.Save(folder, header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		log.Printf("upload photo save failed: %v", err)
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	photo := &domain.CollectionPhoto{
		CollectionID: collectionID,
		PhotoURL:     relPath,
		PhotoType:    photoType,
		CreatedAt:    time.Now().UTC(),
	}
	if err := h.Photos.Create(r.Context(), photo); err != nil {
		log.Printf("upload photo record failed: %v", err)
		// Do not leave an orphaned file behind a failed insert.
		if derr := h.Store.Delete(relPath); derr != nil {
			log.Printf("orphan photo cleanup failed: %v", derr)
		}
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.PhotoUploadResponse{
		Message:      "Photo uploaded successfully",
		PhotoURL:     relPath,
		CollectionID: collectionID,
	})
}

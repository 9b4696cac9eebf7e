package handlers

import (
	"errors"
	"log"
	"net/http"
	"regexp"
	"time"

	"github.com/Godhold/Waste-Management-App/internal/adapters/repositories"
	"github.com/Godhold/Waste-Management-App/internal/api/dto"
	"github.com/Godhold/Waste-Management-App/internal/auth"
	"github.com/Godhold/Waste-Management-App/internal/domain"
	"github.com/Godhold/Waste-Management-App/internal/ports"
)

// Ghanaian mobile numbers as the fleet operates out of Accra.
var (
	phonePattern = regexp.MustCompile(`^\+233\d{9}$`)
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

const minPasswordLength = 8

// DriverHandler exposes driver account endpoints: signup, login, profile
// management and password changes.
type DriverHandler struct {
	Drivers ports.DriverRepository
}

func (h *DriverHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if req.Name == "" {
		writeError(w, r, http.StatusBadRequest, "name is required")
		return
	}
	if !phonePattern.MatchString(req.Phone) {
		writeError(w, r, http.StatusBadRequest, "phone must match +233XXXXXXXXX")
		return
	}
	if !emailPattern.MatchString(req.Email) {
		writeError(w, r, http.StatusBadRequest, "email is invalid")
		return
	}
	if len(req.Password) < minPasswordLength {
		writeError(w, r, http.StatusBadRequest, "password must be at least 8 characters")
		return
	}

	exists, err := h.Drivers.ExistsByPhoneOrEmail(r.Context(), req.Phone, req.Email, 0)
	if err != nil {
		log.Printf("signup exists check failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	if exists {
		writeError(w, r, http.StatusBadRequest, "driver with this phone number or email already exists")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Printf("signup hash failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	driver := &domain.Driver{
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		PasswordHash: hash,
		IsActive:     true,
		LastUpdate:   time.Now().UTC(),
	}
	if err := h.Drivers.Create(r.Context(), driver); err != nil {
		log.Printf("signup create failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusCreated, toDriverResponse(driver))
}

func (h *DriverHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	driver, err := h.Drivers.GetByEmail(r.Context(), req.Email)
	if errors.Is(err, repositories.ErrNotFound) {
		writeError(w, r, http.StatusUnauthorized, "invalid email or password")
		return
	}
	if err != nil {
		log.Printf("login lookup failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	if !auth.CheckPassword(driver.PasswordHash, req.Password) {
		writeError(w, r, http.StatusUnauthorized, "invalid email or password")
		return
	}

	writeJSON(w, r, http.StatusOK, toDriverResponse(driver))
}

func (h *DriverHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
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
		log.Printf("get profile failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, toDriverResponse(driver))
}

func (h *DriverHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	driverID, err := pathID(r, "driver_id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var req dto.ProfileUpdateRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	driver, err := h.Drivers.GetByID(r.Context(), driverID)
	if errors.Is(err, repositories.ErrNotFound) {
		writeError(w, r, http.StatusNotFound, "driver not found")
		return
	}
	if err != nil {
		log.Printf("update profile lookup failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	if req.Phone != nil && !phonePattern.MatchString(*req.Phone) {
		writeError(w, r, http.StatusBadRequest, "phone must match +233XXXXXXXXX")
		return
	}
	if req.Email != nil && !emailPattern.MatchString(*req.Email) {
		writeError(w, r, http.StatusBadRequest, "email is invalid")
		return
	}

	phone := driver.Phone
	if req.Phone != nil {
		phone = *req.Phone
	}
	email := driver.Email
	if req.Email != nil {
		email = *req.Email
	}
	if phone != driver.Phone || email != driver.Email {
		exists, err := h.Drivers.ExistsByPhoneOrEmail(r.Context(), phone, email, driver.DriverID)
		if err != nil {
			log.Printf("update profile exists check failed: %v", err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return
		}
		if exists {
			writeError(w, r, http.StatusBadRequest, "phone number or email already registered")
			return
		}
	}

	if req.Name != nil {
		driver.Name = *req.Name
	}
	driver.Phone = phone
	driver.Email = email

	if req.CurrentLat != nil && req.CurrentLng != nil {
		pos := domain.Coordinate{Lat: *req.CurrentLat, Lng: *req.CurrentLng}
		if !pos.Valid() {
			writeError(w, r, http.StatusBadRequest, "coordinate out of range")
			return
		}
		driver.Position = &pos
	}
	driver.LastUpdate = time.Now().UTC()

	if err := h.Drivers.Update(r.Context(), driver); err != nil {
		log.Printf("update profile failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, toDriverResponse(driver))
}

func (h *DriverHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	driverID, err := pathID(r, "driver_id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var req dto.PasswordChangeRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if len(req.NewPassword) < minPasswordLength {
		writeError(w, r, http.StatusBadRequest, "password must be at least 8 characters")
		return
	}

	driver, err := h.Drivers.GetByID(r.Context(), driverID)
	if errors.Is(err, repositories.ErrNotFound) {
		writeError(w, r, http.StatusNotFound, "driver not found")
		return
	}
	if err != nil {
		log.Printf("change password lookup failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	if !auth.CheckPassword(driver.PasswordHash, req.OldPassword) {
		writeError(w, r, http.StatusBadRequest, "incorrect password")
		return
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		log.Printf("change password hash failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	if err := h.Drivers.UpdatePassword(r.Context(), driverID, hash, time.Now().UTC()); err != nil {
		log.Printf("change password update failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.MessageResponse{Message: "Password updated successfully"})
}

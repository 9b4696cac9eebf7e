package api

import (
	"database/sql"
	"net/http"

	"github.com/Godhold/Waste-Management-App/internal/api/handlers"
	"github.com/Godhold/Waste-Management-App/internal/domain"
	"github.com/Godhold/Waste-Management-App/internal/ports"
)

// Deps are the wired adapters the API composition root needs.
// Handlers stay unaware of concrete adapters.
type Deps struct {
	DB          *sql.DB
	Drivers     ports.DriverRepository
	Collections ports.CollectionRepository
	Photos      ports.PhotoRepository
	Routes      ports.RouteRepository
	Cache       ports.TrackingCache
	Store       ports.PhotoStore
	Depot       domain.Coordinate
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
func NewRouter(d Deps) http.Handler {
	mux := http.NewServeMux()

	health := &handlers.HealthHandler{DB: d.DB}
	drivers := &handlers.DriverHandler{Drivers: d.Drivers}
	collections := &handlers.CollectionHandler{
		Collections: d.Collections,
		Drivers:     d.Drivers,
		Photos:      d.Photos,
		Store:       d.Store,
	}
	routes := &handlers.RouteHandler{
		Collections: d.Collections,
		Drivers:     d.Drivers,
		Routes:      d.Routes,
		Depot:       d.Depot,
	}
	dashboard := &handlers.DashboardHandler{Collections: d.Collections, Depot: d.Depot}
	management := &handlers.ManagementHandler{Collections: d.Collections, Drivers: d.Drivers}
	tracking := &handlers.TrackingHandler{
		Drivers:     d.Drivers,
		Collections: d.Collections,
		Cache:       d.Cache,
	}

	mux.HandleFunc("GET /health", health.Health)

	mux.HandleFunc("POST /api/driver/signup", drivers.Signup)
	mux.HandleFunc("POST /api/driver/login", drivers.Login)
	mux.HandleFunc("GET /api/driver/profile/{driver_id}", drivers.GetProfile)
	mux.HandleFunc("PUT /api/driver/profile/{driver_id}", drivers.UpdateProfile)
	mux.HandleFunc("PUT /api/driver/profile/{driver_id}/password", drivers.ChangePassword)

	mux.HandleFunc("GET /api/driver/collections", collections.ListToday)
	mux.HandleFunc("GET /api/driver/collections/{collection_id}", collections.Details)
	mux.HandleFunc("PUT /api/driver/collections/{collection_id}/status", collections.UpdateStatus)
	mux.HandleFunc("POST /api/driver/collections/{collection_id}/photos", collections.UploadPhoto)

	mux.HandleFunc("GET /api/driver/route/optimize", routes.Optimize)

	mux.HandleFunc("GET /api/driver/dashboard/today", dashboard.Today)
	mux.HandleFunc("GET /api/driver/dashboard/weekly", dashboard.Weekly)
	mux.HandleFunc("GET /api/driver/dashboard/monthly", dashboard.Monthly)
	mux.HandleFunc("GET /api/driver/dashboard", dashboard.Combined)

	mux.HandleFunc("GET /api/management/collections", management.List)
	mux.HandleFunc("POST /api/management/collections", management.Create)
	mux.HandleFunc("GET /api/management/collections/{collection_id}", management.Get)
	mux.HandleFunc("PUT /api/management/collections/{collection_id}", management.Update)
	mux.HandleFunc("DELETE /api/management/collections/{collection_id}", management.Delete)

	mux.HandleFunc("GET /api/tracking/live", tracking.Live)
	mux.HandleFunc("POST /api/tracking/location/{driver_id}", tracking.UpdateLocation)
	mux.HandleFunc("GET /api/tracking/history/{driver_id}", tracking.History)
	mux.HandleFunc("GET /api/tracking/analytics", tracking.Analytics)

	return requestIDMiddleware(loggingMiddleware(mux))
}

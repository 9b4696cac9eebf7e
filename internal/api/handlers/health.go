package handlers

import (
	"database/sql"
	"net/http"
)

// HealthHandler reports service liveness and database connectivity.
type HealthHandler struct {
	DB *sql.DB
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	res := map[string]string{"status": "healthy", "database": "connected"}

	if h.DB == nil {
		res["status"] = "unhealthy"
		res["database"] = "not configured"
	} else if err := h.DB.PingContext(r.Context()); err != nil {
		res["status"] = "unhealthy"
		res["database"] = err.Error()
	}

	writeJSON(w, r, http.StatusOK, res)
}

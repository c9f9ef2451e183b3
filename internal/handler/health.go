package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/chemtai/portfolio/internal/repository"
)

// HealthHandler reports service and storage liveness.
type HealthHandler struct {
	db repository.DB
}

// NewHealthHandler creates a HealthHandler pinging the given database.
func NewHealthHandler(db repository.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Database  string `json:"database"`
}

// Health handles GET /api/health: 200 when storage is reachable, 500
// otherwise.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC().Format(time.RFC3339)

	if err := h.db.Ping(r.Context()); err != nil {
		slog.ErrorContext(r.Context(), "health check failed", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(healthResponse{
			Status:    "unhealthy",
			Timestamp: now,
			Database:  "disconnected",
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(healthResponse{
		Status:    "healthy",
		Timestamp: now,
		Database:  "connected",
	})
}

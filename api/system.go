package api

import (
	"fmt"
	"net/http"
	"time"

	"log/slog"

	"github.com/masaslabs/customer-console/pkg/repository"
)

type SystemHandler struct {
	healthRepo repository.HealthRepo
}

func NewSystemHandler(hr repository.HealthRepo) *SystemHandler {
	return &SystemHandler{healthRepo: hr}
}

func (h *SystemHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, `{"status":"ok","service":"customer-console"}`)
}

func (h *SystemHandler) VersionHandler(version, buildTime string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"version":"%s","buildTime":"%s"}`, version, buildTime)
	}
}

// DatabaseTestHandler handles GET /v1/database/test, the explicit store
// liveness probe used by the dashboard before loading data.
func (h *SystemHandler) DatabaseTestHandler(w http.ResponseWriter, r *http.Request) {
	ts := time.Now().UTC().Format(time.RFC3339)
	if err := h.healthRepo.Ping(r.Context()); err != nil {
		logger.Error("database test failed", slog.Any("err", err))
		writeJSON(w, map[string]any{
			"status":    "error",
			"message":   "database connection failed",
			"timestamp": ts,
		}, http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]any{
		"status":    "success",
		"message":   "database connection successful",
		"timestamp": ts,
	}, http.StatusOK)
}

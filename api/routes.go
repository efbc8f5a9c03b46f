package api

import (
	"fmt"

	"github.com/gorilla/mux"
	"github.com/masaslabs/customer-console/internal/db"
	"github.com/masaslabs/customer-console/internal/repository/sqlite"
)

func SetupRoutes(version, buildTime string, db *db.DB) (*mux.Router, error) {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)

	// Repository
	repo := sqlite.New(db, logger)

	// Create handlers
	systemHandler := NewSystemHandler(repo)
	customersHandler := NewCustomersHandler(repo, repo, repo)
	statusHandler, err := NewStatusHandler(repo)
	if err != nil {
		return nil, fmt.Errorf("setup status handler: %w", err)
	}

	// System endpoints
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")

	// API v1 routes
	apiV1 := r.PathPrefix("/v1").Subrouter()
	apiV1.HandleFunc("/database/test", systemHandler.DatabaseTestHandler).Methods("GET")
	apiV1.HandleFunc("/customers/details", customersHandler.ListDetails).Methods("GET")
	apiV1.HandleFunc("/customers/status", statusHandler.UpdateStatus).Methods("POST")

	return r, nil
}

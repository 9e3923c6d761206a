package api

import (
	"net/http"

	"pickup-coordination-service/internal/api/handlers"
	"pickup-coordination-service/internal/ports"
	"pickup-coordination-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	guests ports.GuestRepository,
	cars ports.CarRepository,
	reconciler *services.Reconciler,
) http.Handler {
	mux := http.NewServeMux()

	guestHandler := &handlers.GuestHandler{Repo: guests}
	carHandler := &handlers.CarHandler{Repo: cars}
	assignHandler := &handlers.AssignmentHandler{Guests: guests, Cars: cars}
	reconcileHandler := &handlers.ReconcileHandler{Reconciler: reconciler}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/guests", guestHandler.Collection)
	mux.HandleFunc("/guests/import", guestHandler.Import)
	mux.HandleFunc("/guests/", guestHandler.Item)
	mux.HandleFunc("/cars", carHandler.List)
	mux.HandleFunc("/cars/", carHandler.Item)
	mux.HandleFunc("/assignments", assignHandler.Run)
	mux.HandleFunc("/reconciliations", reconcileHandler.Run)

	return loggingMiddleware(mux)
}

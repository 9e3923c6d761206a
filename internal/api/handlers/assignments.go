package handlers

import (
	"net/http"

	"pickup-coordination-service/internal/api/dto"
	"pickup-coordination-service/internal/domain"
	"pickup-coordination-service/internal/ports"
	"pickup-coordination-service/internal/services"
)

// AssignmentHandler runs the car assignment engine over all guests and
// persists the result as a full replacement of the previous run.
type AssignmentHandler struct {
	Guests ports.GuestRepository
	Cars   ports.CarRepository
}

func (h *AssignmentHandler) Run(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	capacity := domain.DefaultCarCapacity
	if r.ContentLength != 0 {
		var req dto.AssignRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		if req.Capacity != 0 {
			capacity = req.Capacity
		}
	}
	if capacity < 1 || capacity > 100 {
		writeError(w, r, http.StatusBadRequest, "capacity must be between 1 and 100")
		return
	}

	guests, err := h.Guests.ListGuests(r.Context())
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	cars, err := services.AssignCars(guests, capacity)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	if err := h.Cars.ReplaceAll(r.Context(), cars); err != nil {
		writeFailure(w, r, err)
		return
	}

	res := dto.ListCarsResponse{Cars: make([]dto.CarResponse, 0, len(cars))}
	for _, c := range cars {
		res.Cars = append(res.Cars, carToResponse(c))
	}

	writeJSON(w, r, http.StatusCreated, res)
}

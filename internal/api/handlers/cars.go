package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"pickup-coordination-service/internal/api/dto"
	"pickup-coordination-service/internal/ports"
)

// CarHandler exposes car listing and driver/capacity edits. Car
// creation itself happens through assignment runs.
type CarHandler struct {
	Repo ports.CarRepository
}

func (h *CarHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	cars, err := h.Repo.ListCars(r.Context())
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	res := dto.ListCarsResponse{Cars: make([]dto.CarResponse, 0, len(cars))}
	for _, c := range cars {
		res.Cars = append(res.Cars, carToResponse(c))
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Item serves PUT /cars/{id}.
func (h *CarHandler) Item(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		w.Header().Set("Allow", http.MethodPut)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	idPart := strings.TrimPrefix(r.URL.Path, "/cars/")
	carID, err := strconv.Atoi(idPart)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid car id")
		return
	}

	var req dto.UpdateCarRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if req.Capacity != nil && *req.Capacity < 1 {
		writeError(w, r, http.StatusBadRequest, "capacity must be positive")
		return
	}

	car, err := h.Repo.UpdateCar(r.Context(), carID, ports.CarUpdate{
		Capacity:    req.Capacity,
		DriverName:  req.DriverName,
		DriverPhone: req.DriverPhone,
	})
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, carToResponse(car))
}

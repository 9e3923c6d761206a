package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"pickup-coordination-service/internal/api/dto"
	"pickup-coordination-service/internal/domain"
	"pickup-coordination-service/internal/ports"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// writeFailure maps the domain error kinds onto status codes. Anything
// unrecognized is an internal failure and is logged, not echoed.
func writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrValidation):
		writeError(w, r, http.StatusBadRequest, err.Error())
	default:
		log.Printf("request failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSON parses a single-object request body strictly.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return errors.New("invalid json body")
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("body must contain only one JSON object")
	}
	return nil
}

func legsFromPayload(payload []dto.LegPayload) ([]ports.NewLeg, error) {
	legs := make([]ports.NewLeg, 0, len(payload))
	for _, p := range payload {
		status := domain.StatusOnTime
		if p.Status != "" {
			parsed, err := domain.ParseFlightStatus(p.Status)
			if err != nil {
				return nil, err
			}
			status = parsed
		}
		legs = append(legs, ports.NewLeg{
			FlightNumber: p.Flight,
			Airline:      p.Airline,
			Origin:       p.Origin,
			Destination:  p.Destination,
			ETA:          p.ETA,
			Status:       status,
		})
	}
	return legs, nil
}

func guestToResponse(g *domain.Guest) dto.GuestResponse {
	legs := make([]dto.LegResponse, 0, len(g.Legs))
	for _, l := range g.Legs {
		legs = append(legs, dto.LegResponse{
			LegID:       l.LegID,
			LegOrder:    l.LegOrder,
			Flight:      l.FlightNumber,
			Airline:     l.Airline,
			Origin:      l.Origin,
			Destination: l.Destination,
			ETA:         l.ETA,
			Status:      string(l.Status),
		})
	}

	return dto.GuestResponse{
		GuestID:          g.GuestID,
		Name:             g.Name,
		Phone:            g.Phone,
		FinalDestination: g.FinalDestination(),
		FinalETA:         g.FinalETA(),
		CarID:            g.CarID,
		Legs:             legs,
	}
}

func carToResponse(c *domain.Car) dto.CarResponse {
	return dto.CarResponse{
		CarID:       c.CarID,
		Capacity:    c.Capacity,
		Flight:      c.FlightNumber,
		Airline:     c.Airline,
		Destination: c.Destination,
		ETA:         c.ETA,
		DriverName:  c.DriverName,
		DriverPhone: c.DriverPhone,
		Passengers:  c.PassengerIDs(),
	}
}

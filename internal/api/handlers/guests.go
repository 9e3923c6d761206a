package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"pickup-coordination-service/internal/api/dto"
	"pickup-coordination-service/internal/ports"
	"pickup-coordination-service/internal/services"
)

// GuestHandler exposes guest CRUD over the store port.
type GuestHandler struct {
	Repo ports.GuestRepository
}

// Collection serves /guests: list and create.
func (h *GuestHandler) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// Item serves /guests/{id} and /guests/{id}/legs.
func (h *GuestHandler) Item(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/guests/")
	idPart, sub, _ := strings.Cut(rest, "/")

	guestID, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid guest id")
		return
	}

	switch {
	case sub == "" && r.Method == http.MethodGet:
		h.get(w, r, guestID)
	case sub == "" && r.Method == http.MethodDelete:
		h.delete(w, r, guestID)
	case sub == "legs" && r.Method == http.MethodPut:
		h.replaceLegs(w, r, guestID)
	default:
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *GuestHandler) list(w http.ResponseWriter, r *http.Request) {
	guests, err := h.Repo.ListGuests(r.Context())
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	res := dto.ListGuestsResponse{Guests: make([]dto.GuestResponse, 0, len(guests))}
	for _, g := range guests {
		res.Guests = append(res.Guests, guestToResponse(g))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *GuestHandler) create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateGuestRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	legs, err := legsFromPayload(req.Legs)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	guest, err := h.Repo.CreateGuest(r.Context(), req.Name, req.Phone, legs)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, guestToResponse(guest))
}

func (h *GuestHandler) get(w http.ResponseWriter, r *http.Request, guestID int64) {
	guest, err := h.Repo.GetGuest(r.Context(), guestID)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, guestToResponse(guest))
}

func (h *GuestHandler) replaceLegs(w http.ResponseWriter, r *http.Request, guestID int64) {
	var req dto.ReplaceLegsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	legs, err := legsFromPayload(req.Legs)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	guest, err := h.Repo.ReplaceGuestLegs(r.Context(), guestID, legs)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, guestToResponse(guest))
}

func (h *GuestHandler) delete(w http.ResponseWriter, r *http.Request, guestID int64) {
	if err := h.Repo.DeleteGuest(r.Context(), guestID); err != nil {
		writeFailure(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Import serves POST /guests/import: bulk rows, one guest per row.
// Rows are validated before any guest is written, so a malformed row
// rejects the whole batch.
func (h *GuestHandler) Import(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.ImportGuestsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	rows := make([]services.ImportRow, 0, len(req.Rows))
	for _, p := range req.Rows {
		rows = append(rows, services.ImportRow{
			Name:        p.Name,
			Phone:       p.Phone,
			Flight:      p.Flight,
			Airline:     p.Airline,
			Origin:      p.Origin,
			Destination: p.Destination,
			Date:        p.Date,
			Time:        p.Time,
		})
	}

	imported, err := services.ImportGuests(r.Context(), h.Repo, rows)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ImportGuestsResponse{Imported: imported})
}

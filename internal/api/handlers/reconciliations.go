package handlers

import (
	"net/http"
	"time"

	"pickup-coordination-service/internal/api/dto"
	"pickup-coordination-service/internal/services"
)

// ReconcileHandler triggers a reconciliation pass on demand, outside
// the periodic timer.
type ReconcileHandler struct {
	Reconciler *services.Reconciler
}

func (h *ReconcileHandler) Run(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	updated, err := h.Reconciler.RunPass(r.Context(), time.Now())
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ReconcileResponse{Updated: updated})
}

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/chatman-insurance/funnel-api/internal/usecase"
)

type GateHandler struct {
	gate *usecase.LeadGateUseCase
}

func NewGateHandler(gate *usecase.LeadGateUseCase) *GateHandler {
	return &GateHandler{gate: gate}
}

type GateResponse struct {
	Success   bool `json:"success"`
	Submitted bool `json:"submitted"`
}

func (h *GateHandler) HandleGetStatus(w http.ResponseWriter, r *http.Request) {
	visitorID := chi.URLParam(r, "visitorID")

	writeJSON(w, http.StatusOK, GateResponse{
		Success:   true,
		Submitted: h.gate.HasSubmitted(r.Context(), visitorID),
	})
}

// HandleMarkSubmitted flags the visitor after the gate form went through.
// The contact fields themselves arrive via the leads route.
func (h *GateHandler) HandleMarkSubmitted(w http.ResponseWriter, r *http.Request) {
	visitorID := chi.URLParam(r, "visitorID")

	h.gate.MarkSubmitted(r.Context(), visitorID)

	writeJSON(w, http.StatusOK, GateResponse{
		Success:   true,
		Submitted: true,
	})
}

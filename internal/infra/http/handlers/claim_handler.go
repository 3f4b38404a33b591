package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/chatman-insurance/funnel-api/internal/entity"
)

type ClaimHandler struct {
	claimRepo entity.ClaimRepositoryInterface
}

func NewClaimHandler(claimRepo entity.ClaimRepositoryInterface) *ClaimHandler {
	return &ClaimHandler{claimRepo: claimRepo}
}

type ClaimStatusResponse struct {
	Success bool           `json:"success"`
	Data    *ClaimTimeline `json:"data,omitempty"`
	Message string         `json:"message,omitempty"`
}

// ClaimTimeline pairs the claim with the full pipeline so the tracker can
// render every step, reached or not.
type ClaimTimeline struct {
	Claim       *entity.Claim            `json:"claim"`
	Steps       []entity.ClaimStatusStep `json:"steps"`
	CurrentStep int                      `json:"currentStep"`
}

func (h *ClaimHandler) HandleGetStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claimNumber := chi.URLParam(r, "claimNumber")

	claim, err := h.claimRepo.FindByClaimNumber(ctx, claimNumber)
	if err != nil {
		if err == entity.ErrClaimNotFound {
			writeJSON(w, http.StatusNotFound, ClaimStatusResponse{
				Success: false,
				Message: "Claim not found",
			})
			return
		}
		writeJSON(w, http.StatusInternalServerError, ClaimStatusResponse{
			Success: false,
			Message: "Failed to load claim",
		})
		return
	}

	writeJSON(w, http.StatusOK, ClaimStatusResponse{
		Success: true,
		Data: &ClaimTimeline{
			Claim:       claim,
			Steps:       entity.ClaimStatusSteps,
			CurrentStep: claim.StatusIndex(),
		},
	})
}

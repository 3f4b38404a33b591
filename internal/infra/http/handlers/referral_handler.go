package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/chatman-insurance/funnel-api/internal/usecase"
)

type ReferralHandler struct {
	referral *usecase.ReferralUseCase
}

func NewReferralHandler(referral *usecase.ReferralUseCase) *ReferralHandler {
	return &ReferralHandler{referral: referral}
}

type ReferralResponse struct {
	Success bool                     `json:"success"`
	Data    *usecase.ReferralToolkit `json:"data,omitempty"`
	Message string                   `json:"message,omitempty"`
}

func (h *ReferralHandler) HandleGetToolkit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	code := chi.URLParam(r, "code")

	toolkit, err := h.referral.Toolkit(ctx, code)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ReferralResponse{
			Success: false,
			Message: "Failed to load referral tools",
		})
		return
	}

	writeJSON(w, http.StatusOK, ReferralResponse{
		Success: true,
		Data:    toolkit,
	})
}

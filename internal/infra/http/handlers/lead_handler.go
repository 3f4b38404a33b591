package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/chatman-insurance/funnel-api/internal/entity"
	"github.com/chatman-insurance/funnel-api/internal/infra/http/middleware"
	"github.com/chatman-insurance/funnel-api/internal/usecase"
)

type LeadHandler struct {
	submitLead  *usecase.SubmitLeadUseCase
	rateLimiter *RateLimiter
}

func NewLeadHandler(submitLead *usecase.SubmitLeadUseCase) *LeadHandler {
	return &LeadHandler{
		submitLead:  submitLead,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 req/min per IP
	}
}

type CaptureLeadResponse struct {
	Success bool         `json:"success"`
	Data    *entity.Lead `json:"data,omitempty"`
	Message string       `json:"message,omitempty"`
}

func (h *LeadHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		writeJSON(w, http.StatusTooManyRequests, CaptureLeadResponse{
			Success: false,
			Message: "Too many requests. Please try again later.",
		})
		return
	}

	var input usecase.SubmitLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, CaptureLeadResponse{
			Success: false,
			Message: "Invalid JSON",
		})
		return
	}

	lead, err := h.submitLead.Execute(ctx, input)
	if err != nil {
		if usecase.IsDomainError(err) {
			writeJSON(w, http.StatusBadRequest, CaptureLeadResponse{
				Success: false,
				Message: err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusInternalServerError, CaptureLeadResponse{
			Success: false,
			Message: "Failed to capture lead",
		})
		return
	}

	middleware.RecordLeadCaptured(lead.Source)

	writeJSON(w, http.StatusCreated, CaptureLeadResponse{
		Success: true,
		Data:    lead,
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

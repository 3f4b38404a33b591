package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/chatman-insurance/funnel-api/internal/entity"
	"github.com/chatman-insurance/funnel-api/internal/infra/http/middleware"
	"github.com/chatman-insurance/funnel-api/internal/usecase"
)

type QuoteHandler struct {
	pricing   *usecase.PricingService
	quoteRepo entity.QuoteRepositoryInterface
}

func NewQuoteHandler(pricing *usecase.PricingService, quoteRepo entity.QuoteRepositoryInterface) *QuoteHandler {
	return &QuoteHandler{
		pricing:   pricing,
		quoteRepo: quoteRepo,
	}
}

type QuoteResponse struct {
	Success bool                `json:"success"`
	Data    *entity.QuoteResult `json:"data,omitempty"`
	Message string              `json:"message,omitempty"`
}

// Handle computes and returns the estimate no matter what: the calculator
// cannot fail, and a broken quotes table must not dead-end the funnel.
func (h *QuoteHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req entity.CoverageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, QuoteResponse{
			Success: false,
			Message: "Invalid JSON",
		})
		return
	}

	quote := h.pricing.Calculate(req)

	if h.quoteRepo != nil {
		if err := h.quoteRepo.Create(ctx, &quote); err != nil {
			log.Printf("⚠️ [QUOTE] not persisted, returning estimate anyway: %s", err)
		}
	}

	middleware.RecordQuoteGenerated(quote.QuoteType)

	writeJSON(w, http.StatusCreated, QuoteResponse{
		Success: true,
		Data:    &quote,
	})
}

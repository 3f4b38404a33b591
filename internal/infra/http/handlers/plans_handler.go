package handlers

import (
	"net/http"

	"github.com/chatman-insurance/funnel-api/internal/entity"
)

type PlansHandler struct{}

func NewPlansHandler() *PlansHandler {
	return &PlansHandler{}
}

type PlansResponse struct {
	Success bool          `json:"success"`
	Data    []entity.Plan `json:"data"`
}

func (h *PlansHandler) Handle(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, PlansResponse{
		Success: true,
		Data:    entity.PlanCatalog(),
	})
}

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/chatman-insurance/funnel-api/internal/infra/http/middleware"
	"github.com/chatman-insurance/funnel-api/internal/usecase"
)

type QuizHandler struct {
	submitQuiz *usecase.SubmitQuizUseCase
}

func NewQuizHandler(submitQuiz *usecase.SubmitQuizUseCase) *QuizHandler {
	return &QuizHandler{submitQuiz: submitQuiz}
}

type QuizResponse struct {
	Success bool                      `json:"success"`
	Data    *usecase.SubmitQuizOutput `json:"data,omitempty"`
	Message string                    `json:"message,omitempty"`
}

func (h *QuizHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var input usecase.SubmitQuizInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, QuizResponse{
			Success: false,
			Message: "Invalid JSON",
		})
		return
	}

	output, err := h.submitQuiz.Execute(ctx, input)
	if err != nil {
		if usecase.IsDomainError(err) {
			writeJSON(w, http.StatusBadRequest, QuizResponse{
				Success: false,
				Message: err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusInternalServerError, QuizResponse{
			Success: false,
			Message: "Failed to save quiz results",
		})
		return
	}

	middleware.RecordQuizCompletion()

	writeJSON(w, http.StatusCreated, QuizResponse{
		Success: true,
		Data:    output,
	})
}

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/chatman-insurance/funnel-api/internal/infra/http/middleware"
	"github.com/chatman-insurance/funnel-api/internal/infra/integration/retell"
	"github.com/chatman-insurance/funnel-api/internal/usecase"
)

type ChatHandler struct {
	chat   *usecase.ChatUseCase
	vendor usecase.ChatVendor
}

func NewChatHandler(chat *usecase.ChatUseCase, vendor usecase.ChatVendor) *ChatHandler {
	return &ChatHandler{
		chat:   chat,
		vendor: vendor,
	}
}

type ChatRequest struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
}

type ChatResponse struct {
	Success bool               `json:"success"`
	Data    *usecase.ChatReply `json:"data,omitempty"`
	Message string             `json:"message,omitempty"`
}

func (h *ChatHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ChatResponse{
			Success: false,
			Message: "Invalid JSON",
		})
		return
	}

	if req.SessionID == "" {
		req.SessionID = uuid.New().String()
	}

	reply := h.chat.Respond(ctx, req.SessionID, req.Message)
	if reply.Scripted {
		middleware.RecordIntegrationError("retell")
	}

	writeJSON(w, http.StatusOK, ChatResponse{
		Success: true,
		Data:    &reply,
	})
}

type VoiceSessionResponse struct {
	Success bool                   `json:"success"`
	Data    *retell.WebCallSession `json:"data,omitempty"`
	Message string                 `json:"message,omitempty"`
}

// HandleVoiceSession mints a short-lived web-call token. Unlike chat there
// is no scripted substitute for live voice, so vendor failure surfaces as
// 502 and the widget falls back to its canned option set client-side.
func (h *ChatHandler) HandleVoiceSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, err := h.vendor.CreateWebCall(ctx)
	if err != nil {
		middleware.RecordIntegrationError("retell")
		writeJSON(w, http.StatusBadGateway, VoiceSessionResponse{
			Success: false,
			Message: "Voice service unavailable",
		})
		return
	}

	writeJSON(w, http.StatusOK, VoiceSessionResponse{
		Success: true,
		Data:    session,
	})
}

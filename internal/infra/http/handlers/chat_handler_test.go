package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/chatman-insurance/funnel-api/internal/infra/integration/retell"
	"github.com/chatman-insurance/funnel-api/internal/infra/kv"
	"github.com/chatman-insurance/funnel-api/internal/usecase"
)

// MockChatVendor
type MockChatVendor struct {
	mock.Mock
}

func (m *MockChatVendor) SendChatMessage(ctx context.Context, message string, history []retell.Message) (string, error) {
	args := m.Called(ctx, message, history)
	return args.String(0), args.Error(1)
}

func (m *MockChatVendor) CreateWebCall(ctx context.Context) (*retell.WebCallSession, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*retell.WebCallSession), args.Error(1)
}

func TestChatHandlerScriptedFallback(t *testing.T) {
	vendor := new(MockChatVendor)
	vendor.On("SendChatMessage", mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("retell down"))

	handler := NewChatHandler(usecase.NewChatUseCase(vendor, kv.NewMemoryStore()), vendor)

	body := `{"message":"how much does a quote cost?"}`
	req := httptest.NewRequest("POST", "/api/chat", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler.HandleChat(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp ChatResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.True(t, resp.Data.Scripted)
	assert.NotEmpty(t, resp.Data.SessionID, "a session id is minted when the client sends none")
	assert.Contains(t, resp.Data.Response, "competitive rates")
}

func TestChatHandlerKeepsClientSessionID(t *testing.T) {
	vendor := new(MockChatVendor)
	vendor.On("SendChatMessage", mock.Anything, mock.Anything, mock.Anything).Return("Sure!", nil)

	handler := NewChatHandler(usecase.NewChatUseCase(vendor, kv.NewMemoryStore()), vendor)

	body := `{"sessionId":"abc-123","message":"hi"}`
	req := httptest.NewRequest("POST", "/api/chat", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler.HandleChat(rec, req)

	var resp ChatResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "abc-123", resp.Data.SessionID)
	assert.False(t, resp.Data.Scripted)
}

func TestVoiceSessionHandlerSuccess(t *testing.T) {
	vendor := new(MockChatVendor)
	vendor.On("CreateWebCall", mock.Anything).Return(&retell.WebCallSession{
		CallID:      "call-1",
		AccessToken: "tok-xyz",
		AgentID:     "agent-1",
	}, nil)

	handler := NewChatHandler(usecase.NewChatUseCase(vendor, nil), vendor)

	req := httptest.NewRequest("POST", "/api/voice/session", nil)
	rec := httptest.NewRecorder()
	handler.HandleVoiceSession(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp VoiceSessionResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "tok-xyz", resp.Data.AccessToken)
}

func TestVoiceSessionHandlerVendorFailure(t *testing.T) {
	vendor := new(MockChatVendor)
	vendor.On("CreateWebCall", mock.Anything).Return(nil, errors.New("not configured"))

	handler := NewChatHandler(usecase.NewChatUseCase(vendor, nil), vendor)

	req := httptest.NewRequest("POST", "/api/voice/session", nil)
	rec := httptest.NewRecorder()
	handler.HandleVoiceSession(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

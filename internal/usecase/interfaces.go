package usecase

import (
	"context"

	"github.com/chatman-insurance/funnel-api/internal/infra/integration/retell"
	"github.com/chatman-insurance/funnel-api/internal/infra/queue"
)

type QueueProducerInterface interface {
	PublishLeadCaptured(ctx context.Context, payload queue.LeadCapturedPayload) error
}

// ChatVendor is the conversational-AI boundary. Both calls may fail; the
// chat usecase degrades to the scripted responses when they do.
type ChatVendor interface {
	SendChatMessage(ctx context.Context, message string, history []retell.Message) (string, error)
	CreateWebCall(ctx context.Context) (*retell.WebCallSession, error)
}

// KVStore is the injected key-value capability for per-browser flags and
// chat session history. Redis in production, in-memory in tests.
type KVStore interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string) error
}

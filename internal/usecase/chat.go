package usecase

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/chatman-insurance/funnel-api/internal/infra/integration/retell"
)

type ChatMessage struct {
	Sender    string    `json:"sender"` // user, ai
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// scriptedResponse is one entry of the canned dialogue table.
type scriptedResponse struct {
	keywords []string
	reply    string
}

// Scripted replies, tried in order; first keyword hit wins.
var scriptedResponses = []scriptedResponse{
	{
		keywords: []string{"quote", "price", "cost"},
		reply:    "I can help you get a quote! Based on your profile, we offer competitive rates starting at $89/month for auto, $125/month for home, and $45/month for life insurance. Would you like me to calculate a personalized quote?",
	},
	{
		keywords: []string{"coverage", "plan"},
		reply:    "We offer comprehensive coverage options including Auto, Home, Life, Health, and Business insurance. Our bundle packages can save you up to 25%. What type of coverage interests you most?",
	},
	{
		keywords: []string{"claim"},
		reply:    "Filing a claim is easy with us! You can file online 24/7 or speak with a claims specialist. Most claims are processed within 48 hours. How can I assist with your claim?",
	},
}

const scriptedDefault = "I'm ARIA, your AI insurance assistant. I can help you with quotes, coverage information, claims, and consultations. What would you like to know?"

type ChatReply struct {
	SessionID string `json:"session_id"`
	Response  string `json:"response"`
	Scripted  bool   `json:"scripted"` // true when the vendor was unavailable
}

type ChatUseCase struct {
	Vendor   ChatVendor
	Sessions KVStore
}

func NewChatUseCase(vendor ChatVendor, sessions KVStore) *ChatUseCase {
	return &ChatUseCase{
		Vendor:   vendor,
		Sessions: sessions,
	}
}

// Respond answers one chat message. The vendor is tried first; any failure
// degrades to the scripted table so the widget never goes silent.
func (uc *ChatUseCase) Respond(ctx context.Context, sessionID, message string) ChatReply {
	history := uc.loadHistory(ctx, sessionID)

	reply := ChatReply{SessionID: sessionID}

	if uc.Vendor != nil {
		text, err := uc.Vendor.SendChatMessage(ctx, message, vendorTranscript(history))
		if err == nil && text != "" {
			reply.Response = text
		} else if err != nil {
			log.Printf("⚠️ [CHAT] vendor unavailable, using scripted reply: %s", err)
		}
	}

	if reply.Response == "" {
		reply.Response = ScriptedReply(message)
		reply.Scripted = true
	}

	now := time.Now()
	history = append(history,
		ChatMessage{Sender: "user", Text: message, Timestamp: now},
		ChatMessage{Sender: "ai", Text: reply.Response, Timestamp: now},
	)
	uc.saveHistory(ctx, sessionID, history)

	return reply
}

// vendorTranscript converts stored session history into the vendor's
// transcript format. The "ai" sender becomes the "agent" role.
func vendorTranscript(history []ChatMessage) []retell.Message {
	transcript := make([]retell.Message, 0, len(history))
	for _, m := range history {
		role := "user"
		if m.Sender == "ai" {
			role = "agent"
		}
		transcript = append(transcript, retell.Message{Role: role, Content: m.Text})
	}
	return transcript
}

// ScriptedReply resolves a message against the canned dialogue table.
func ScriptedReply(message string) string {
	lower := strings.ToLower(message)
	for _, entry := range scriptedResponses {
		for _, keyword := range entry.keywords {
			if strings.Contains(lower, keyword) {
				return entry.reply
			}
		}
	}
	return scriptedDefault
}

func (uc *ChatUseCase) loadHistory(ctx context.Context, sessionID string) []ChatMessage {
	if uc.Sessions == nil {
		return nil
	}
	raw, ok := uc.Sessions.Get(ctx, sessionKey(sessionID))
	if !ok {
		return nil
	}

	var history []ChatMessage
	if err := json.Unmarshal([]byte(raw), &history); err != nil {
		return nil
	}
	return history
}

func (uc *ChatUseCase) saveHistory(ctx context.Context, sessionID string, history []ChatMessage) {
	if uc.Sessions == nil {
		return
	}
	raw, err := json.Marshal(history)
	if err != nil {
		return
	}
	if err := uc.Sessions.Set(ctx, sessionKey(sessionID), string(raw)); err != nil {
		log.Printf("⚠️ [CHAT] session %s not saved: %s", sessionID, err)
	}
}

func sessionKey(sessionID string) string {
	return "chat:session:" + sessionID
}

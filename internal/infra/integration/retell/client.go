package retell

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.retellai.com"

// Client talks to the Retell conversational-AI API: text chat completions
// plus short-lived web-call credentials for the voice widget.
type Client struct {
	baseURL string
	apiKey  string
	agentID string
	http    *http.Client
}

func NewClient(apiKey, agentID, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		agentID: agentID,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Configured reports whether the vendor credentials are present. The chat
// usecase skips the vendor entirely when they are not.
func (c *Client) Configured() bool {
	return c.apiKey != "" && c.agentID != ""
}

func (c *Client) SendChatMessage(ctx context.Context, message string, history []Message) (string, error) {
	if !c.Configured() {
		return "", fmt.Errorf("retell API not configured")
	}

	payload := createChatCompletionRequest{
		AgentID: c.agentID,
		Message: message,
		History: history,
	}

	var response createChatCompletionResponse
	if err := c.post(ctx, "/create-chat-completion", payload, &response); err != nil {
		return "", err
	}

	return response.Response, nil
}

func (c *Client) CreateWebCall(ctx context.Context) (*WebCallSession, error) {
	if !c.Configured() {
		return nil, fmt.Errorf("retell API not configured")
	}

	var session WebCallSession
	err := c.post(ctx, "/v2/create-web-call", createWebCallRequest{AgentID: c.agentID}, &session)
	if err != nil {
		return nil, err
	}

	return &session, nil
}

func (c *Client) post(ctx context.Context, path string, payload, out interface{}) error {
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal retell payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+path, bytes.NewBuffer(jsonBody))
	if err != nil {
		return err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("retell request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		fmt.Printf("❌ RETELL API ERROR (status %d): %s\n", resp.StatusCode, string(body))
		return fmt.Errorf("retell API rejected request (status %d)", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode retell response: %w", err)
	}

	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "ChatmanFunnel/1.0")
}

package retell

// Message is one turn of vendor transcript. Role is "user" or "agent".
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type createChatCompletionRequest struct {
	AgentID string    `json:"agent_id"`
	Message string    `json:"message"`
	History []Message `json:"transcript,omitempty"`
}

type createChatCompletionResponse struct {
	Response string `json:"response"`
}

type createWebCallRequest struct {
	AgentID string `json:"agent_id"`
}

// WebCallSession is the short-lived voice credential minted by the vendor.
type WebCallSession struct {
	CallID      string `json:"call_id"`
	AccessToken string `json:"access_token"`
	AgentID     string `json:"agent_id"`
}

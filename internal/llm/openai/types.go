package openai

import "encoding/json"

// Message roles used on outbound requests.
const (
	RoleAssistant = "assistant"
	RoleUser      = "user"
)

// ChatRequest matches the OpenAI-compatible chat/completions request. Field
// order is fixed so encoded payloads keep a stable key order.
type ChatRequest struct {
	// Messages is the ordered conversation to complete.
	Messages []Message `json:"messages"`
	// Model is the provider model identifier.
	Model string `json:"model"`
	// MaxTokens caps completion length for standard models.
	MaxTokens *int `json:"max_tokens,omitempty"`
	// MaxCompletionTokens caps completion length for reasoning models.
	MaxCompletionTokens *int `json:"max_completion_tokens,omitempty"`
	// ResponseFormat requests schema-constrained output.
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
}

// NewChatRequest builds the fixed two-message payload: the prompt speaks as
// the assistant, the input as the user.
func NewChatRequest(prompt string, input string, model string, limit TokenLimit) *ChatRequest {
	req := &ChatRequest{
		Messages: []Message{
			{Role: RoleAssistant, Content: prompt},
			{Role: RoleUser, Content: input},
		},
		Model: model,
	}
	limit.apply(req)
	return req
}

// Message represents a chat message. Refusal and annotations only appear on
// responses; omitempty keeps request messages down to role and content.
type Message struct {
	// Role is one of assistant or user on requests.
	Role string `json:"role"`
	// Content carries the message text.
	Content string `json:"content"`
	// Refusal carries a refusal payload returned by the backend.
	Refusal json.RawMessage `json:"refusal,omitempty"`
	// Annotations carries backend annotations, passed through unparsed so an
	// empty list survives re-encoding.
	Annotations json.RawMessage `json:"annotations,omitempty"`
}

// TokenLimit caps completion length through exactly one of the two wire
// fields accepted by OpenAI-compatible backends.
type TokenLimit struct {
	count     int
	reasoning bool
}

// StandardLimit budgets completion tokens through the max_tokens field.
func StandardLimit(count int) TokenLimit {
	return TokenLimit{count: count}
}

// ReasoningLimit budgets completion tokens through max_completion_tokens,
// which reasoning models require in place of max_tokens.
func ReasoningLimit(count int) TokenLimit {
	return TokenLimit{count: count, reasoning: true}
}

// apply sets the single wire field selected by the limit.
func (l TokenLimit) apply(req *ChatRequest) {
	count := l.count
	if l.reasoning {
		req.MaxCompletionTokens = &count
		return
	}
	req.MaxTokens = &count
}

// ResponseFormat asks the backend to constrain output to a JSON schema.
type ResponseFormat struct {
	// Type is always "json_schema" for schema-constrained output.
	Type string `json:"type"`
	// JSONSchema is the schema document, passed through verbatim.
	JSONSchema json.RawMessage `json:"json_schema"`
}

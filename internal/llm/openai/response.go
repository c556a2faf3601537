package openai

import "encoding/json"

// ChatResponse matches the OpenAI-compatible chat/completions response.
// Optional fields stay nil when absent so a decoded response re-encodes
// without invented keys.
type ChatResponse struct {
	// ID is the provider-assigned completion id.
	ID string `json:"id"`
	// Object is the response object type, typically "chat.completion".
	Object string `json:"object"`
	// Created is the creation time in unix seconds.
	Created int64 `json:"created"`
	// Model is the model that produced the completion.
	Model string `json:"model"`
	// Choices contains the generated completions.
	Choices []Choice `json:"choices"`
	// Usage reports token accounting for the exchange.
	Usage Usage `json:"usage"`
	// ServiceTier is the processing tier, when reported.
	ServiceTier *string `json:"service_tier,omitempty"`
	// SystemFingerprint identifies the backend configuration, when reported.
	SystemFingerprint *string `json:"system_fingerprint,omitempty"`
}

// FirstChoiceContent returns the content of the first choice. The second
// return is false when the response carried no choices at all.
func (r *ChatResponse) FirstChoiceContent() (string, bool) {
	if len(r.Choices) == 0 {
		return "", false
	}
	return r.Choices[0].Message.Content, true
}

// Choice represents a single completion choice.
type Choice struct {
	// Index is the choice index.
	Index int `json:"index"`
	// Message is the generated message.
	Message Message `json:"message"`
	// FinishReason indicates why generation stopped.
	FinishReason string `json:"finish_reason"`
	// Logprobs passes token log-probabilities through unparsed.
	Logprobs json.RawMessage `json:"logprobs,omitempty"`
	// ContentFilterResults reports moderation verdicts, when present.
	ContentFilterResults *ContentFilterResults `json:"content_filter_results,omitempty"`
}

// ContentFilterResults is the per-category moderation verdict some
// deployments attach to each choice.
type ContentFilterResults struct {
	Hate      FilterResult    `json:"hate"`
	SelfHarm  FilterResult    `json:"self_harm"`
	Sexual    FilterResult    `json:"sexual"`
	Violence  FilterResult    `json:"violence"`
	Jailbreak DetectionResult `json:"jailbreak"`
	Profanity DetectionResult `json:"profanity"`
}

// FilterResult is the verdict for a moderated content category.
type FilterResult struct {
	Filtered bool `json:"filtered"`
}

// DetectionResult is the verdict for categories that report detection
// separately from filtering.
type DetectionResult struct {
	Filtered bool `json:"filtered"`
	Detected bool `json:"detected"`
}

// Usage represents token usage info.
type Usage struct {
	// PromptTokens counts input tokens.
	PromptTokens int `json:"prompt_tokens"`
	// CompletionTokens counts output tokens.
	CompletionTokens int `json:"completion_tokens"`
	// TotalTokens is the sum of prompt and completion tokens.
	TotalTokens int `json:"total_tokens"`
	// PromptTokensDetails breaks down prompt tokens, when reported.
	PromptTokensDetails *PromptTokensDetails `json:"prompt_tokens_details,omitempty"`
	// CompletionTokensDetails breaks down completion tokens, when reported.
	CompletionTokensDetails *CompletionTokensDetails `json:"completion_tokens_details,omitempty"`
}

// PromptTokensDetails breaks down prompt token usage.
type PromptTokensDetails struct {
	CachedTokens *int `json:"cached_tokens,omitempty"`
	AudioTokens  *int `json:"audio_tokens,omitempty"`
}

// CompletionTokensDetails breaks down completion token usage.
type CompletionTokensDetails struct {
	ReasoningTokens          *int `json:"reasoning_tokens,omitempty"`
	AudioTokens              *int `json:"audio_tokens,omitempty"`
	AcceptedPredictionTokens *int `json:"accepted_prediction_tokens,omitempty"`
	RejectedPredictionTokens *int `json:"rejected_prediction_tokens,omitempty"`
}

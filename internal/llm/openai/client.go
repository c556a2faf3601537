package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds the whole exchange: connect, send, and read.
const DefaultTimeout = 120 * time.Second

// APIError represents a non-2xx HTTP response from the backend.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api request failed with status %d: %s", e.StatusCode, e.Body)
}

// Client talks to a single OpenAI-compatible chat/completions URL.
type Client struct {
	// url is used exactly as resolved; custom endpoints are never rewritten.
	url string
	// apiKey is sent as a bearer token.
	apiKey string
	// requestID is forwarded for request correlation, when set.
	requestID string
	// httpClient executes requests with timeouts.
	httpClient *http.Client
}

// NewClient constructs a client for a fully resolved chat-completions URL.
func NewClient(url string, apiKey string, timeout time.Duration) *Client {
	return &Client{
		url:    url,
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// SetRequestID attaches a correlation id sent as X-Client-Request-Id.
func (c *Client) SetRequestID(id string) {
	c.requestID = id
}

// ChatCompletions executes a single chat/completions request. A 2xx response
// with no choices is still returned without error; the caller decides how to
// treat it.
func (c *Client) ChatCompletions(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal chat request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create chat request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	// OpenAI rejects non-ASCII or oversized correlation ids with a 400.
	if c.requestID != "" && isValidClientRequestID(c.requestID) {
		httpReq.Header.Set("X-Client-Request-Id", c.requestID)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("send chat request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read chat response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var parsed ChatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("parse chat response: %w", err)
	}
	return &parsed, nil
}

// isValidClientRequestID reports whether id fits the X-Client-Request-Id
// limits: ASCII only, at most 512 bytes.
func isValidClientRequestID(id string) bool {
	if len(id) > 512 {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] > 127 {
			return false
		}
	}
	return true
}

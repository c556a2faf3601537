package openai

import (
	"encoding/json"
	"testing"

	"github.com/promptshot/promptshot/internal/testutil"
)

// TestMessageSerialization locks the minimal wire shape of a request message.
func TestMessageSerialization(testingHandle *testing.T) {
	message := Message{Role: RoleAssistant, Content: "Hello, world!"}

	encoded, err := json.Marshal(message)
	testutil.RequireNoError(testingHandle, err, "marshal message")
	testutil.RequireEqual(
		testingHandle,
		string(encoded),
		`{"role":"assistant","content":"Hello, world!"}`,
		"message encoding mismatch",
	)
}

// TestNewChatRequestMessageOrder verifies the prompt speaks first, as the
// assistant, and the input second, as the user.
func TestNewChatRequestMessageOrder(testingHandle *testing.T) {
	request := NewChatRequest("be brief", "what is Go?", "gpt-4o", StandardLimit(64))

	testutil.RequireEqual(testingHandle, len(request.Messages), 2, "message count mismatch")
	testutil.RequireEqual(testingHandle, request.Messages[0].Role, RoleAssistant, "first role mismatch")
	testutil.RequireEqual(testingHandle, request.Messages[0].Content, "be brief", "prompt content mismatch")
	testutil.RequireEqual(testingHandle, request.Messages[1].Role, RoleUser, "second role mismatch")
	testutil.RequireEqual(testingHandle, request.Messages[1].Content, "what is Go?", "input content mismatch")
}

// TestChatRequestSerialization locks the exact encoding of a standard-limit
// payload, including key order.
func TestChatRequestSerialization(testingHandle *testing.T) {
	request := NewChatRequest("Hello, world!", "Hi!", "test_model", StandardLimit(100))

	encoded, err := json.Marshal(request)
	testutil.RequireNoError(testingHandle, err, "marshal request")
	testutil.RequireEqual(
		testingHandle,
		string(encoded),
		`{"messages":[{"role":"assistant","content":"Hello, world!"},{"role":"user","content":"Hi!"}],"model":"test_model","max_tokens":100}`,
		"payload encoding mismatch",
	)
}

// TestChatRequestSerializationReasoning verifies the reasoning limit swaps
// max_tokens for max_completion_tokens.
func TestChatRequestSerializationReasoning(testingHandle *testing.T) {
	request := NewChatRequest("Hello, world!", "Hi!", "test_model", ReasoningLimit(100))

	encoded, err := json.Marshal(request)
	testutil.RequireNoError(testingHandle, err, "marshal request")
	testutil.RequireEqual(
		testingHandle,
		string(encoded),
		`{"messages":[{"role":"assistant","content":"Hello, world!"},{"role":"user","content":"Hi!"}],"model":"test_model","max_completion_tokens":100}`,
		"payload encoding mismatch",
	)
}

// TestChatRequestSerializationBothLimits documents that a hand-built request
// with both limit fields set encodes both; the constructors never do this.
func TestChatRequestSerializationBothLimits(testingHandle *testing.T) {
	maxTokens := 100
	maxCompletionTokens := 100
	request := &ChatRequest{
		Messages: []Message{
			{Role: RoleAssistant, Content: "Hello, world!"},
			{Role: RoleUser, Content: "Hi!"},
		},
		Model:               "test_model",
		MaxTokens:           &maxTokens,
		MaxCompletionTokens: &maxCompletionTokens,
	}

	encoded, err := json.Marshal(request)
	testutil.RequireNoError(testingHandle, err, "marshal request")
	testutil.RequireEqual(
		testingHandle,
		string(encoded),
		`{"messages":[{"role":"assistant","content":"Hello, world!"},{"role":"user","content":"Hi!"}],"model":"test_model","max_tokens":100,"max_completion_tokens":100}`,
		"payload encoding mismatch",
	)
}

// TestChatRequestSerializationEmptyMessages verifies an empty message list
// encodes as [] rather than null.
func TestChatRequestSerializationEmptyMessages(testingHandle *testing.T) {
	maxTokens := 100
	request := &ChatRequest{
		Messages:  []Message{},
		Model:     "test_model",
		MaxTokens: &maxTokens,
	}

	encoded, err := json.Marshal(request)
	testutil.RequireNoError(testingHandle, err, "marshal request")
	testutil.RequireEqual(
		testingHandle,
		string(encoded),
		`{"messages":[],"model":"test_model","max_tokens":100}`,
		"payload encoding mismatch",
	)
}

// TestChatRequestSerializationWithResponseFormat verifies the response format
// rides along and the schema document survives verbatim.
func TestChatRequestSerializationWithResponseFormat(testingHandle *testing.T) {
	request := NewChatRequest("Hello, world!", "Hi!", "test_model", StandardLimit(100))
	request.ResponseFormat = &ResponseFormat{
		Type:       "json_schema",
		JSONSchema: json.RawMessage(`{"name":"test_schema","strict":true}`),
	}

	encoded, err := json.Marshal(request)
	testutil.RequireNoError(testingHandle, err, "marshal request")

	testutil.RequireStringContains(testingHandle, string(encoded), `"max_tokens":100`, "expected token limit")
	testutil.RequireStringContains(
		testingHandle,
		string(encoded),
		`"response_format":{"type":"json_schema","json_schema":{"name":"test_schema","strict":true}}`,
		"expected response format",
	)
}

// TestTokenLimitSelectsSingleField verifies each constructor populates
// exactly one wire field.
func TestTokenLimitSelectsSingleField(testingHandle *testing.T) {
	cases := []struct {
		name          string
		limit         TokenLimit
		wantStandard  bool
		wantReasoning bool
	}{
		{name: "standard", limit: StandardLimit(42), wantStandard: true},
		{name: "reasoning", limit: ReasoningLimit(42), wantReasoning: true},
	}

	for _, testCase := range cases {
		testingHandle.Run(testCase.name, func(testingHandle *testing.T) {
			request := &ChatRequest{}
			testCase.limit.apply(request)

			testutil.RequireEqual(testingHandle, request.MaxTokens != nil, testCase.wantStandard, "max_tokens presence")
			testutil.RequireEqual(testingHandle, request.MaxCompletionTokens != nil, testCase.wantReasoning, "max_completion_tokens presence")
			if request.MaxTokens != nil {
				testutil.RequireEqual(testingHandle, *request.MaxTokens, 42, "max_tokens value")
			}
			if request.MaxCompletionTokens != nil {
				testutil.RequireEqual(testingHandle, *request.MaxCompletionTokens, 42, "max_completion_tokens value")
			}
		})
	}
}

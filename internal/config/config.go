package config

import (
	"errors"
	"fmt"
	"os"
)

// Endpoint identifiers with built-in URL and credential mappings. Any other
// value on the command line is treated as a literal chat-completions URL.
const (
	EndpointOpenAI      = "openai"
	EndpointGoogle      = "google"
	EndpointHuggingFace = "hf"
)

// Chat-completions URLs for the built-in endpoints.
const (
	openAIURL      = "https://api.openai.com/v1/chat/completions"
	googleURL      = "https://generativelanguage.googleapis.com/v1beta/chat/completions"
	huggingFaceURL = "https://router.huggingface.co/v1/chat/completions"
)

// defaultCredentialVar supplies the API key for endpoints without a
// dedicated variable.
const defaultCredentialVar = "API_TOKEN"

var (
	// ErrTokenCount is returned when the token budget is not positive.
	ErrTokenCount = errors.New("token count must be greater than 0")
	// ErrCredentialMissing is returned when the credential variable is unset.
	ErrCredentialMissing = errors.New("credential environment variable not set")
	// ErrEmptyPrompt is returned when the prompt file has no content.
	ErrEmptyPrompt = errors.New("prompt file is empty")
	// ErrEmptyInput is returned when the input file has no content.
	ErrEmptyInput = errors.New("input file is empty")
)

// Options carries raw CLI flag values before validation.
type Options struct {
	// Endpoint is a built-in identifier or a literal URL.
	Endpoint string
	// Model is the provider model identifier.
	Model string
	// Reasoning selects the reasoning-model token budget field.
	Reasoning bool
	// Tokens is the requested completion token budget.
	Tokens int
	// PromptPath locates the assistant prompt file.
	PromptPath string
	// InputPath locates the user input file.
	InputPath string
	// OutputPath locates the response file; empty means stdout.
	OutputPath string
	// SchemaPath locates an optional response-format schema file.
	SchemaPath string
	// Verbose enables debug logging.
	Verbose bool
}

// Config is the validated, fully resolved run configuration.
type Config struct {
	// Endpoint is the identifier exactly as given on the command line.
	Endpoint string
	// URL is the resolved chat-completions URL.
	URL string
	// CredentialVar names the environment variable the key came from.
	CredentialVar string
	// APIKey is sent as a bearer token. It may be empty when the variable is
	// set but blank.
	APIKey string
	// Model is the provider model identifier.
	Model string
	// Reasoning selects the reasoning-model token budget field.
	Reasoning bool
	// Tokens is the completion token budget.
	Tokens int
	// PromptText is the prompt file content.
	PromptText string
	// InputText is the input file content.
	InputText string
	// OutputPath is the response destination; empty means stdout.
	OutputPath string
	// SchemaPath is the optional response-format schema file.
	SchemaPath string
}

// EndpointURL maps a built-in endpoint identifier to its chat-completions
// URL. Every other value is returned verbatim, padded or miscased
// identifiers included.
func EndpointURL(name string) string {
	switch name {
	case EndpointOpenAI:
		return openAIURL
	case EndpointGoogle:
		return googleURL
	case EndpointHuggingFace:
		return huggingFaceURL
	default:
		return name
	}
}

// CredentialVar returns the environment variable holding the API key for an
// endpoint identifier. Unrecognized identifiers share the generic variable.
func CredentialVar(name string) string {
	switch name {
	case EndpointOpenAI:
		return "API_TOKEN_OAI"
	case EndpointGoogle:
		return "API_TOKEN_GOOGLE"
	case EndpointHuggingFace:
		return "API_TOKEN_HF"
	default:
		return defaultCredentialVar
	}
}

// Load validates options, resolves the endpoint and credential, and reads
// the prompt and input files. Validation order: token budget, credential,
// prompt file, input file.
func Load(opts Options) (*Config, error) {
	if opts.Tokens <= 0 {
		return nil, ErrTokenCount
	}

	variable := CredentialVar(opts.Endpoint)
	apiKey, ok := os.LookupEnv(variable)
	if !ok {
		return nil, fmt.Errorf("%s: %w", variable, ErrCredentialMissing)
	}

	promptText, err := readNonEmpty(opts.PromptPath, ErrEmptyPrompt)
	if err != nil {
		return nil, err
	}

	inputText, err := readNonEmpty(opts.InputPath, ErrEmptyInput)
	if err != nil {
		return nil, err
	}

	return &Config{
		Endpoint:      opts.Endpoint,
		URL:           EndpointURL(opts.Endpoint),
		CredentialVar: variable,
		APIKey:        apiKey,
		Model:         opts.Model,
		Reasoning:     opts.Reasoning,
		Tokens:        opts.Tokens,
		PromptText:    promptText,
		InputText:     inputText,
		OutputPath:    opts.OutputPath,
		SchemaPath:    opts.SchemaPath,
	}, nil
}

// readNonEmpty reads a whole file and rejects empty content with emptyErr.
func readNonEmpty(path string, emptyErr error) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	if len(raw) == 0 {
		return "", fmt.Errorf("%s: %w", path, emptyErr)
	}
	return string(raw), nil
}

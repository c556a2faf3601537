package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/promptshot/promptshot/internal/config"
	"github.com/promptshot/promptshot/internal/llm/openai"
	"github.com/promptshot/promptshot/internal/logging"
)

// version is the CLI build version.
const version = "0.1.0"

// main wires Cobra and executes the CLI.
func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCommand builds the root command with its flag surface.
func newRootCommand() *cobra.Command {
	opts := &config.Options{}
	rootCmd := &cobra.Command{
		Use:     "promptshot",
		Short:   "Send one prompt to an OpenAI-compatible chat completions endpoint",
		Version: version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, opts)
		},
		SilenceUsage: true,
	}

	applyFlags(rootCmd.Flags(), opts)
	markRequiredFlags(rootCmd)

	rootCmd.AddCommand(doctorCommand())

	return rootCmd
}

// applyFlags defines the request flags on the root command.
func applyFlags(flags *pflag.FlagSet, opts *config.Options) {
	flags.StringVarP(&opts.Endpoint, "endpoint", "e", "", "Endpoint identifier (openai|google|hf) or a chat-completions URL")
	flags.StringVarP(&opts.Model, "model", "m", "", "Model identifier to query")
	flags.BoolVarP(&opts.Reasoning, "reasoning", "r", false, "Budget tokens via max_completion_tokens for reasoning models")
	flags.IntVarP(&opts.Tokens, "tokens", "t", 0, "Maximum number of completion tokens")
	flags.StringVarP(&opts.PromptPath, "prompt", "p", "", "File containing the assistant prompt")
	flags.StringVarP(&opts.InputPath, "input", "i", "", "File containing the user input")
	flags.StringVarP(&opts.OutputPath, "output", "o", "", "File to write the response to (default stdout)")
	flags.StringVarP(&opts.SchemaPath, "schema", "s", "", "File containing a JSON schema for structured output")
	flags.BoolVar(&opts.Verbose, "verbose", false, "Enable debug logging")
}

// markRequiredFlags enforces the flags without a usable default.
func markRequiredFlags(cmd *cobra.Command) {
	for _, name := range []string{"endpoint", "model", "tokens", "prompt", "input"} {
		_ = cobra.MarkFlagRequired(cmd.Flags(), name)
	}
}

// doctorCommand reports how an endpoint would resolve without sending
// anything over the network.
func doctorCommand() *cobra.Command {
	var endpoint string
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check endpoint and credential configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			out := cmd.OutOrStdout()
			variable := config.CredentialVar(endpoint)
			fmt.Fprintf(out, "endpoint: %s\n", endpoint)
			fmt.Fprintf(out, "url: %s\n", config.EndpointURL(endpoint))
			if _, ok := os.LookupEnv(variable); !ok {
				return fmt.Errorf("credential %s is not set", variable)
			}
			fmt.Fprintf(out, "credential: %s is set\n", variable)
			return nil
		},
		SilenceUsage: true,
	}
	cmd.Flags().StringVarP(&endpoint, "endpoint", "e", "", "Endpoint identifier (openai|google|hf) or a chat-completions URL")
	_ = cobra.MarkFlagRequired(cmd.Flags(), "endpoint")
	return cmd
}

// runRoot executes the single request/response cycle.
func runRoot(cmd *cobra.Command, opts *config.Options) error {
	start := time.Now()

	// A .env in the working directory may supply credentials.
	_ = godotenv.Load()
	slog.SetDefault(logging.New(opts.Verbose))

	cfg, err := config.Load(*opts)
	if err != nil {
		return err
	}

	req, err := buildRequest(cfg)
	if err != nil {
		return err
	}

	requestID := uuid.New().String()
	client := openai.NewClient(cfg.URL, cfg.APIKey, openai.DefaultTimeout)
	client.SetRequestID(requestID)

	slog.Info("querying model", "model", cfg.Model, "endpoint", cfg.Endpoint, "url", cfg.URL, "request_id", requestID)

	resp, err := client.ChatCompletions(cmd.Context(), req)
	if err != nil {
		return err
	}

	if content, ok := resp.FirstChoiceContent(); ok {
		if err := writeResponse(cmd.OutOrStdout(), cfg.OutputPath, content); err != nil {
			return err
		}
	} else {
		slog.Warn("response contained no choices")
	}

	slog.Info("done", "elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}

// buildRequest assembles the chat payload from the validated config.
func buildRequest(cfg *config.Config) (*openai.ChatRequest, error) {
	limit := openai.StandardLimit(cfg.Tokens)
	if cfg.Reasoning {
		limit = openai.ReasoningLimit(cfg.Tokens)
	}
	req := openai.NewChatRequest(cfg.PromptText, cfg.InputText, cfg.Model, limit)

	if cfg.SchemaPath != "" {
		format, err := openai.LoadResponseFormat(cfg.SchemaPath)
		if err != nil {
			return nil, err
		}
		req.ResponseFormat = format
		slog.Debug("using response format", "schema", format.SchemaName())
	}

	return req, nil
}

// writeResponse delivers the completion content to the output file, or
// prints it to out when no path was given.
func writeResponse(out io.Writer, path string, content string) error {
	if path == "" {
		fmt.Fprintln(out, content)
		return nil
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}
	slog.Info("response saved", "path", path)
	return nil
}

// Package assistant talks to the remote text-generation service that answers
// travel questions in the chat screen.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/pkordes/travel-tracker/internal/domain"
	"github.com/pkordes/travel-tracker/internal/metrics"
)

// DefaultBaseURL is Gemini's OpenAI-compatible endpoint.
const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-1.5-flash"

const promptSuffix = "Everything before this is the input. Please respond with a concise answer, " +
	"preferably 4-5 bullet points or a few sentences, focused on the following interest: %s.\n" +
	"You are a bot for study abroad experiences, so tailor your response to an age group of " +
	"18-25 years old in Europe"

// Gateway sends one prompt and returns the reply text.
// Failures wrap domain.ErrGateway.
type Gateway interface {
	Ask(ctx context.Context, prompt, interest string) (string, error)
}

// BuildPrompt returns the literal user text followed by the instruction suffix.
func BuildPrompt(prompt, interest string) string {
	return prompt + "\n\n" + fmt.Sprintf(promptSuffix, interest)
}

// Config configures an OpenAIGateway.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// OpenAIGateway is a Gateway backed by any OpenAI-compatible chat completion API.
type OpenAIGateway struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	metrics *metrics.Metrics
}

// NewOpenAIGateway builds a gateway. Empty BaseURL and Model fall back to the
// Gemini defaults; a zero Timeout means the caller's context is the only bound.
func NewOpenAIGateway(cfg Config) *OpenAIGateway {
	config := openai.DefaultConfig(cfg.APIKey)
	config.BaseURL = DefaultBaseURL
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	return &OpenAIGateway{
		client:  openai.NewClientWithConfig(config),
		model:   model,
		timeout: cfg.Timeout,
		metrics: metrics.Global(),
	}
}

// Ask sends one user message. It is never retried.
func (g *OpenAIGateway) Ask(ctx context.Context, prompt, interest string) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	g.metrics.AssistantRequests.Inc()
	start := time.Now()
	defer func() { g.metrics.AssistantDuration.Observe(time.Since(start).Seconds()) }()

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: BuildPrompt(prompt, interest)},
		},
	})
	if err != nil {
		g.metrics.AssistantFailures.Inc()
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("assistant.OpenAIGateway.Ask: %w: status %d: %s", domain.ErrGateway, apiErr.HTTPStatusCode, apiErr.Message)
		}
		return "", fmt.Errorf("assistant.OpenAIGateway.Ask: %w: %v", domain.ErrGateway, err)
	}
	if len(resp.Choices) == 0 {
		g.metrics.AssistantFailures.Inc()
		return "", fmt.Errorf("assistant.OpenAIGateway.Ask: %w: no choices in response", domain.ErrGateway)
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

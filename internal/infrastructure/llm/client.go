// Package llm provides the client for the text-generation backend.
package llm

import (
	"context"
	"errors"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/evausesgit/les-histoires-de-rebecca/internal/config"
	apperrors "github.com/evausesgit/les-histoires-de-rebecca/pkg/errors"
	"github.com/evausesgit/les-histoires-de-rebecca/pkg/metrics"
)

var tracer = otel.Tracer("llm")

// Client calls an OpenAI-compatible chat-completion endpoint. The base URL is
// configurable so any compatible backend works; local development defaults to
// an Ollama server.
type Client struct {
	api         *openai.Client
	model       string
	maxTokens   int
	temperature float32
	timeout     time.Duration
}

// NewClient creates a generation client from configuration.
func NewClient(cfg *config.LLMConfig) *Client {
	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	}

	return &Client{
		api:         openai.NewClientWithConfig(apiCfg),
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: float32(cfg.Temperature),
		timeout:     cfg.Timeout,
	}
}

// Complete sends a single-turn completion request and returns the raw text.
// Any backend failure comes back as GenerationUnavailable; a context
// cancellation propagates as-is so callers can tell abandonment apart from
// backend trouble.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, span := tracer.Start(ctx, "llm.Complete",
		trace.WithAttributes(
			attribute.String("llm.model", c.model),
			attribute.Int("llm.prompt_chars", len(prompt)),
		))
	defer span.End()

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	metrics.LLMCallDuration.WithLabelValues(c.model).Observe(time.Since(start).Seconds())

	if err != nil {
		span.RecordError(err)
		metrics.LLMCallTotal.WithLabelValues(c.model, "error").Inc()
		if errors.Is(err, context.Canceled) {
			return "", context.Canceled
		}
		return "", apperrors.ErrGenerationUnavailable.WithError(err)
	}

	if len(resp.Choices) == 0 {
		metrics.LLMCallTotal.WithLabelValues(c.model, "empty").Inc()
		return "", apperrors.ErrGenerationUnavailable.WithDetail("backend returned no choices")
	}

	metrics.LLMCallTotal.WithLabelValues(c.model, "ok").Inc()
	return resp.Choices[0].Message.Content, nil
}

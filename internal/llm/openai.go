package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Veraticus/kesi-ledger/internal/common"
	"github.com/sashabaranov/go-openai"
)

// openAIClient implements Client on top of the go-openai chat API.
type openAIClient struct {
	api         *openai.Client
	model       string
	temperature float32
	maxTokens   int
}

func newOpenAIClient(cfg Config) *openAIClient {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	clientCfg.HTTPClient = &http.Client{Timeout: timeout}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.2
	}

	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 50
	}

	return &openAIClient{
		api:         openai.NewClientWithConfig(clientCfg),
		model:       cfg.Model,
		temperature: temperature,
		maxTokens:   maxTokens,
	}
}

// Complete sends a single system+user exchange and returns the reply text.
func (c *openAIClient) Complete(ctx context.Context, system, prompt string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		return "", classifyAPIError(err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from model")
	}

	return resp.Choices[0].Message.Content, nil
}

// classifyAPIError marks throttling and server-side failures as retryable.
func classifyAPIError(err error) error {
	status := 0

	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatusCode
	case errors.As(err, &reqErr):
		status = reqErr.HTTPStatusCode
	}

	switch {
	case status == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %w", common.ErrRateLimit, err)
	case status >= http.StatusInternalServerError:
		return &common.RetryableError{Err: fmt.Errorf("API error (status %d): %w", status, err), Retryable: true}
	case status != 0:
		return &common.RetryableError{Err: fmt.Errorf("API error (status %d): %w", status, err), Retryable: false}
	default:
		return fmt.Errorf("request failed: %w", err)
	}
}

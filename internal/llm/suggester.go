package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Veraticus/kesi-ledger/internal/common"
	"github.com/Veraticus/kesi-ledger/internal/service"
)

// ErrEmptyDescription is returned when there is nothing to categorize.
var ErrEmptyDescription = errors.New("description is required to suggest a category")

const systemPrompt = `You categorize personal finance transactions recorded in a mobile-money ledger.
Reply with ONLY a JSON object of the form {"category": "<category>"}.
Use a short, general category name of one to three words, such as "Food", "Transport", "Salary" or "Utilities".`

// Suggester implements service.CategorySuggester using an LLM.
type Suggester struct {
	client    Client
	cache     *suggestionCache
	logger    *slog.Logger
	retryOpts service.RetryOptions
}

var _ service.CategorySuggester = (*Suggester)(nil)

// NewSuggester creates a suggester for the configured provider.
func NewSuggester(cfg Config, logger *slog.Logger) (*Suggester, error) {
	client, err := NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return NewSuggesterWithClient(client, cfg, logger), nil
}

// NewSuggesterWithClient creates a suggester around an existing client.
func NewSuggesterWithClient(client Client, cfg Config, logger *slog.Logger) *Suggester {
	if logger == nil {
		logger = slog.Default()
	}

	retryOpts := service.RetryOptions{
		MaxAttempts:  cfg.MaxRetries,
		InitialDelay: cfg.RetryDelay,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
	}
	if retryOpts.MaxAttempts <= 0 {
		retryOpts.MaxAttempts = 1
	}
	if retryOpts.InitialDelay == 0 {
		retryOpts.InitialDelay = time.Second
	}

	return &Suggester{
		client:    client,
		cache:     newSuggestionCache(cfg.CacheTTL),
		logger:    logger,
		retryOpts: retryOpts,
	}
}

// Suggest proposes a category for description. Failures are returned as a
// UserError wrapping common.ErrSuggestionFailed.
func (s *Suggester) Suggest(ctx context.Context, description string) (string, error) {
	key := normalizeDescription(description)
	if key == "" {
		return "", common.NewUserError("Enter a description to get a category suggestion.", ErrEmptyDescription)
	}

	if category, found := s.cache.get(key); found {
		s.logger.Debug("cache hit for description", "description", key)
		return category, nil
	}

	prompt := fmt.Sprintf("Transaction description: %s", strings.TrimSpace(description))

	var category string
	err := common.WithRetry(ctx, func() error {
		reply, err := s.client.Complete(ctx, systemPrompt, prompt)
		if err != nil {
			return err
		}

		parsed, err := parseCategory(reply)
		if err != nil {
			return &common.RetryableError{Err: err, Retryable: true}
		}
		category = parsed
		return nil
	}, s.retryOpts)
	if err != nil {
		s.logger.Warn("category suggestion failed", "description", key, "error", err)
		return "", common.NewUserError("Could not suggest a category.", fmt.Errorf("%w: %w", common.ErrSuggestionFailed, err))
	}

	s.cache.set(key, category)
	s.logger.Info("category suggested", "description", key, "category", category)

	return category, nil
}

// normalizeDescription lowercases and collapses whitespace so equivalent
// descriptions share a cache entry.
func normalizeDescription(description string) string {
	return strings.ToLower(strings.Join(strings.Fields(description), " "))
}

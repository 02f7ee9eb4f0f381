// Package service defines the interfaces shared between application components.
package service

import (
	"context"
	"time"
)

// KeyValueStore is the string-keyed record store backing the ledger.
// Get returns common.ErrNotFound when the key has never been written.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// CategorySuggester proposes a category for a transaction description.
type CategorySuggester interface {
	Suggest(ctx context.Context, description string) (string, error)
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}

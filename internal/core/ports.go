package core

import (
	"context"
)

// Classifier defines the interface for classifying parsed messages
type Classifier interface {
	// Classify evaluates a message against a configuration and returns
	// the verdict with a per-rule breakdown. It fails only when the
	// configuration is invalid.
	Classify(msg *ParsedMessage, cfg *RuleConfig) (*ClassificationOutcome, error)
}

// CacheRepository defines the interface for caching classification verdicts
type CacheRepository interface {
	// Get retrieves a cached entry for a message digest
	Get(ctx context.Context, digest string) (*CacheEntry, error)

	// Set stores a cache entry
	Set(ctx context.Context, entry *CacheEntry) error

	// Delete removes a cache entry
	Delete(ctx context.Context, digest string) error

	// Cleanup removes expired entries
	Cleanup(ctx context.Context) error
}

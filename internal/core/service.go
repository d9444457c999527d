package core

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"go.uber.org/zap"
)

// FilterService is the application-facing service for phishing detection.
// It wraps the pure classifier with verdict caching and logging.
type FilterService struct {
	classifier   Classifier
	cache        CacheRepository
	logger       *zap.Logger
	rules        *RuleConfig
	cacheEnabled bool
	cacheTTL     time.Duration
}

// NewFilterService creates a new phishing filter service
func NewFilterService(
	classifier Classifier,
	cache CacheRepository,
	logger *zap.Logger,
	rules *RuleConfig,
	cacheEnabled bool,
	cacheTTL time.Duration,
) *FilterService {
	return &FilterService{
		classifier:   classifier,
		cache:        cache,
		logger:       logger,
		rules:        rules,
		cacheEnabled: cacheEnabled,
		cacheTTL:     cacheTTL,
	}
}

// MessageDigest returns the cache key for a message. Two messages with the
// same sender, subject and body always map to the same digest.
func MessageDigest(msg *ParsedMessage) string {
	h := sha256.New()
	h.Write([]byte(msg.Sender))
	h.Write([]byte{0})
	h.Write([]byte(msg.Subject))
	h.Write([]byte{0})
	h.Write([]byte(msg.Body))
	return hex.EncodeToString(h.Sum(nil))
}

// ClassifyMessage classifies a parsed message, consulting the verdict cache
// when enabled
func (s *FilterService) ClassifyMessage(ctx context.Context, msg *ParsedMessage) (*ClassificationOutcome, error) {
	digest := MessageDigest(msg)

	// Check cache if enabled
	if s.cacheEnabled {
		if entry, err := s.cache.Get(ctx, digest); err == nil {
			s.logger.Debug("Cache hit for message",
				zap.String("digest", digest),
				zap.String("sender", msg.Sender))
			return &ClassificationOutcome{
				TotalScore: entry.Score,
				Label:      entry.Label,
				Breakdown: []RuleResult{{
					RuleName: "cache",
					Score:    entry.Score,
					Details:  []string{"verdict served from cache"},
				}},
			}, nil
		}
	}

	outcome, err := s.classifier.Classify(msg, s.rules)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Classified message",
		zap.String("sender", msg.Sender),
		zap.String("sender_domain", msg.SenderDomain),
		zap.Float64("score", outcome.TotalScore),
		zap.String("label", string(outcome.Label)))

	// Update cache with the verdict if enabled
	if s.cacheEnabled {
		now := time.Now()
		entry := &CacheEntry{
			MessageDigest: digest,
			Label:         outcome.Label,
			Score:         outcome.TotalScore,
			ClassifiedAt:  now,
			ExpiresAt:     now.Add(s.cacheTTL),
		}
		if err := s.cache.Set(ctx, entry); err != nil {
			s.logger.Error("Failed to update verdict cache", zap.Error(err))
		}
	}

	return outcome, nil
}

// Rules returns the rule configuration the service classifies against
func (s *FilterService) Rules() *RuleConfig {
	return s.rules
}

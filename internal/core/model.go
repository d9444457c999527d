package core

import (
	"time"
)

// Label is the final verdict assigned to a message
type Label string

const (
	LabelSafe     Label = "Safe"
	LabelPhishing Label = "Phishing"
)

// Named weight keys recognized in RuleConfig.Weights
const (
	WeightSubjectKeyword  = "subject_keyword"
	WeightBodyKeyword     = "body_keyword"
	WeightEarlyBodyBonus  = "early_body_bonus"
	WeightLookalikeDomain = "lookalike_domain"
	WeightWhitelistMiss   = "whitelist_miss"
	WeightIPURL           = "ip_url"
	WeightUserinfoURL     = "userinfo_url"
	WeightDomainMismatch  = "domain_mismatch"
)

// ParsedMessage is the structured form of a raw email message.
// It is built once by the parser and treated as immutable afterwards.
type ParsedMessage struct {
	Sender       string
	SenderDomain string
	Subject      string
	Body         string
	URLs         []string
}

// RuleConfig holds the configuration the rule engine evaluates against.
// The engine never mutates it; loading, editing and persisting the
// configuration belong to the caller.
type RuleConfig struct {
	LegitDomains            []string
	Keywords                []string
	Weights                 map[string]float64
	LookalikeThreshold      int
	EarlyBodyWindow         int
	ClassificationThreshold float64
}

// Weight returns the configured weight for a named contribution,
// or 0 if the key is absent.
func (c *RuleConfig) Weight(key string) float64 {
	return c.Weights[key]
}

// RuleResult is the contribution of a single rule to a classification
type RuleResult struct {
	RuleName string
	Score    float64
	Details  []string
}

// ClassificationOutcome represents the combined verdict for a message
type ClassificationOutcome struct {
	TotalScore float64
	Label      Label
	Breakdown  []RuleResult
}

// IsPhishing reports whether the message was labeled as phishing
func (o *ClassificationOutcome) IsPhishing() bool {
	return o.Label == LabelPhishing
}

// CacheEntry is a cached classification verdict keyed by message digest
type CacheEntry struct {
	MessageDigest string
	Label         Label
	Score         float64
	ClassifiedAt  time.Time
	ExpiresAt     time.Time
}

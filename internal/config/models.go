package config

import (
	"strings"

	"github.com/xile1310/phish-filter/internal/core"
)

// ServerConfig represents the configuration for the SMTP filter server
type ServerConfig struct {
	FilterType      string
	ListenAddress   string
	BlockPhishing   bool
	StatusHeader    string
	ScoreHeader     string
	BreakdownHeader string
	SubjectPrefix   string
	ModifySubject   bool
	RelayEnabled    bool
	RelayAddress    string
	RelayPort       int
}

// GetServer returns the server configuration
func (c *Config) GetServer() ServerConfig {
	return ServerConfig{
		FilterType:      c.GetString("server.filter_type"),
		ListenAddress:   c.GetString("server.listen_address"),
		BlockPhishing:   c.GetBool("server.block_phishing"),
		StatusHeader:    c.GetString("server.headers.status"),
		ScoreHeader:     c.GetString("server.headers.score"),
		BreakdownHeader: c.GetString("server.headers.breakdown"),
		SubjectPrefix:   c.GetString("server.subject_prefix"),
		ModifySubject:   c.GetBool("server.modify_subject"),
		RelayEnabled:    c.GetBool("server.relay.enabled"),
		RelayAddress:    c.GetString("server.relay.address"),
		RelayPort:       c.GetInt("server.relay.port"),
	}
}

// GetRules returns the rule configuration consumed by the engine.
// Domains and keywords are trimmed and lower-cased here so the rules
// can compare without re-normalizing.
func (c *Config) GetRules() *core.RuleConfig {
	return &core.RuleConfig{
		LegitDomains:            normalize(c.GetStringSlice("rules.legit_domains")),
		Keywords:                normalize(c.GetStringSlice("rules.keywords")),
		LookalikeThreshold:      c.GetInt("rules.lookalike_threshold"),
		EarlyBodyWindow:         c.GetInt("rules.early_body_window"),
		ClassificationThreshold: c.GetFloat64("rules.classification_threshold"),
		Weights: map[string]float64{
			core.WeightSubjectKeyword:  c.GetFloat64("rules.weights.subject_keyword"),
			core.WeightBodyKeyword:     c.GetFloat64("rules.weights.body_keyword"),
			core.WeightEarlyBodyBonus:  c.GetFloat64("rules.weights.early_body_bonus"),
			core.WeightLookalikeDomain: c.GetFloat64("rules.weights.lookalike_domain"),
			core.WeightWhitelistMiss:   c.GetFloat64("rules.weights.whitelist_miss"),
			core.WeightIPURL:           c.GetFloat64("rules.weights.ip_url"),
			core.WeightUserinfoURL:     c.GetFloat64("rules.weights.userinfo_url"),
			core.WeightDomainMismatch:  c.GetFloat64("rules.weights.domain_mismatch"),
		},
	}
}

// normalize trims and lower-cases entries, dropping blanks
func normalize(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

package core

import (
	"fmt"
	"strings"
)

// ConfigError reports an invalid RuleConfig. It is returned from the
// classification boundary before any rule runs, so a broken configuration
// can never produce a partially scored result.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}

// ValidateConfig checks that a RuleConfig is internally consistent.
// Data-level anomalies in messages are never errors; configuration-level
// anomalies always are.
func ValidateConfig(cfg *RuleConfig) error {
	if cfg == nil {
		return &ConfigError{Field: "config", Reason: "must not be nil"}
	}
	if cfg.LookalikeThreshold < 0 {
		return &ConfigError{Field: "lookalike_threshold", Reason: "must not be negative"}
	}
	if cfg.EarlyBodyWindow < 0 {
		return &ConfigError{Field: "early_body_window", Reason: "must not be negative"}
	}
	for key, w := range cfg.Weights {
		if w < 0 {
			return &ConfigError{Field: "weights." + key, Reason: "must not be negative"}
		}
	}
	for _, d := range cfg.LegitDomains {
		if strings.TrimSpace(d) == "" {
			return &ConfigError{Field: "legit_domains", Reason: "contains a blank entry"}
		}
		if strings.ContainsAny(d, " \t@") || strings.Contains(d, "://") || strings.Contains(d, "/") {
			return &ConfigError{
				Field:  "legit_domains",
				Reason: fmt.Sprintf("%q is not a bare domain", d),
			}
		}
	}
	for _, k := range cfg.Keywords {
		if strings.TrimSpace(k) == "" {
			return &ConfigError{Field: "keywords", Reason: "contains a blank entry"}
		}
	}
	return nil
}

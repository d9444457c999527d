// Package rules contains the detection rules and the engine that combines
// their scores into a Safe/Phishing verdict.
//
// Each rule is a pure function of the parsed message and the rule
// configuration. Rules never accumulate into shared state: every rule
// returns its own RuleResult and the engine performs the reduction.
package rules

import (
	"github.com/xile1310/phish-filter/internal/core"
)

// Rule is a single detection heuristic
type Rule interface {
	// Name returns the rule name used in the breakdown
	Name() string

	// Evaluate scores a message against the configuration. A rule never
	// fails: malformed message fields yield a zero-score result.
	Evaluate(msg *core.ParsedMessage, cfg *core.RuleConfig) core.RuleResult
}

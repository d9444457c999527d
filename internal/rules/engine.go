package rules

import (
	"github.com/xile1310/phish-filter/internal/core"
)

// Engine runs all detection rules against a message and combines their
// scores into a verdict. It implements core.Classifier.
//
// Classify is a pure function of its two arguments: no I/O, no shared
// mutable state, byte-identical output for identical input. Callers may
// run classifications in parallel without coordination as long as they do
// not mutate a shared RuleConfig mid-call.
type Engine struct {
	rules []Rule
}

// NewEngine creates an engine with the standard rule set
func NewEngine() *Engine {
	return &Engine{
		rules: []Rule{
			NewWhitelistRule(),
			NewKeywordRule(),
			NewURLRule(),
		},
	}
}

// Classify evaluates every rule against the message and sums the weighted
// contributions. The configuration is validated first; an invalid
// configuration fails before any rule runs so partial scores are never
// reported. Scores are summed, so rule order cannot affect the verdict;
// the fixed order only keeps the breakdown stable.
func (e *Engine) Classify(msg *core.ParsedMessage, cfg *core.RuleConfig) (*core.ClassificationOutcome, error) {
	if err := core.ValidateConfig(cfg); err != nil {
		return nil, err
	}

	outcome := &core.ClassificationOutcome{
		Breakdown: make([]core.RuleResult, 0, len(e.rules)),
	}
	for _, rule := range e.rules {
		result := rule.Evaluate(msg, cfg)
		outcome.TotalScore += result.Score
		outcome.Breakdown = append(outcome.Breakdown, result)
	}

	// Strictly greater than: a score exactly at the threshold stays Safe
	if outcome.TotalScore > cfg.ClassificationThreshold {
		outcome.Label = core.LabelPhishing
	} else {
		outcome.Label = core.LabelSafe
	}

	return outcome, nil
}

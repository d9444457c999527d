package rules

import (
	"fmt"
	"strings"

	"github.com/xile1310/phish-filter/internal/core"
	"github.com/xile1310/phish-filter/internal/textdist"
)

// WhitelistRule penalizes senders whose domain is not in the trusted set,
// and separately flags domains that are lookalikes of a trusted entry.
type WhitelistRule struct{}

// NewWhitelistRule creates a new sender-domain whitelist rule
func NewWhitelistRule() *WhitelistRule {
	return &WhitelistRule{}
}

// Name returns the rule name
func (r *WhitelistRule) Name() string {
	return "whitelist"
}

// Evaluate scores the sender domain against the trusted domain list.
// An unparseable sender (empty domain) is treated as a plain miss,
// never as an error.
func (r *WhitelistRule) Evaluate(msg *core.ParsedMessage, cfg *core.RuleConfig) core.RuleResult {
	result := core.RuleResult{RuleName: r.Name()}

	domain := strings.ToLower(msg.SenderDomain)
	for _, legit := range cfg.LegitDomains {
		if strings.EqualFold(domain, legit) {
			// Trusted sender, no findings
			return result
		}
	}

	result.Score += cfg.Weight(core.WeightWhitelistMiss)
	if domain == "" {
		result.Details = append(result.Details,
			"sender address has no parseable domain")
	} else {
		result.Details = append(result.Details,
			fmt.Sprintf("sender domain %q is not in the trusted domain list", domain))
	}

	// A near-miss of a trusted domain is a separate, stronger signal
	// than an ordinary miss, so it gets its own finding.
	if domain != "" {
		for _, legit := range cfg.LegitDomains {
			if textdist.IsLookalike(domain, legit, cfg.LookalikeThreshold) {
				result.Score += cfg.Weight(core.WeightLookalikeDomain)
				result.Details = append(result.Details,
					fmt.Sprintf("sender domain %q looks like trusted domain %q (edit distance %d)",
						domain, strings.ToLower(legit), textdist.Distance(domain, legit)))
				break
			}
		}
	}

	return result
}

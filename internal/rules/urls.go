package rules

import (
	"fmt"
	"strings"

	"github.com/xile1310/phish-filter/internal/core"
)

// URLRule scores structural red flags in the URLs a message carries:
// IP-literal hosts, userinfo components crafted to resemble a trusted
// domain, and links whose actual host differs from the domain the text
// claims to be from.
type URLRule struct{}

// NewURLRule creates a new suspicious-URL rule
func NewURLRule() *URLRule {
	return &URLRule{}
}

// Name returns the rule name
func (r *URLRule) Name() string {
	return "url"
}

// Evaluate scores every URL independently. A single URL can trigger more
// than one category; each triggered category contributes its own weighted
// finding. URLs whose host matches a trusted domain are exempt entirely.
func (r *URLRule) Evaluate(msg *core.ParsedMessage, cfg *core.RuleConfig) core.RuleResult {
	result := core.RuleResult{RuleName: r.Name()}
	if len(msg.URLs) == 0 {
		return result
	}

	// Trusted domains the message text claims to be about. A link that
	// resolves elsewhere while the text name-drops a trusted brand is the
	// classic claimed-vs-actual mismatch.
	text := strings.ToLower(msg.Subject + "\n" + msg.Body)
	var claimed []string
	for _, legit := range cfg.LegitDomains {
		if strings.Contains(text, strings.ToLower(legit)) {
			claimed = append(claimed, strings.ToLower(legit))
		}
	}

	for _, rawURL := range msg.URLs {
		host := urlHost(rawURL)

		exempt := false
		for _, legit := range cfg.LegitDomains {
			if domainMatches(host, legit) {
				exempt = true
				break
			}
		}
		if exempt {
			continue
		}

		if isIPLiteral(host) {
			result.Score += cfg.Weight(core.WeightIPURL)
			result.Details = append(result.Details,
				fmt.Sprintf("link %q uses a raw IP address as host", rawURL))
		}

		if user := urlUserinfo(rawURL); user != "" && looksLikeDomain(user) {
			result.Score += cfg.Weight(core.WeightUserinfoURL)
			result.Details = append(result.Details,
				fmt.Sprintf("link %q hides its real host behind %q@", rawURL, user))
		}

		mismatch := false
		for _, d := range claimed {
			if !domainMatches(host, d) {
				mismatch = true
				break
			}
		}
		if mismatch {
			result.Score += cfg.Weight(core.WeightDomainMismatch)
			result.Details = append(result.Details,
				fmt.Sprintf("message mentions a trusted domain but link %q points to %q", rawURL, host))
		}
	}

	return result
}

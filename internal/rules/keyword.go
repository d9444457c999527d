package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/xile1310/phish-filter/internal/core"
)

// KeywordRule scores weighted occurrences of configured suspicious terms.
// Subject occurrences weigh more than body occurrences, and occurrences in
// the opening of the body earn an extra bonus.
type KeywordRule struct{}

// NewKeywordRule creates a new suspicious-keyword rule
func NewKeywordRule() *KeywordRule {
	return &KeywordRule{}
}

// Name returns the rule name
func (r *KeywordRule) Name() string {
	return "keyword"
}

// Evaluate scores keyword occurrences in subject and body. Matching is
// case-insensitive and whole-word: "verification" does not match "verify".
func (r *KeywordRule) Evaluate(msg *core.ParsedMessage, cfg *core.RuleConfig) core.RuleResult {
	result := core.RuleResult{RuleName: r.Name()}

	subject := strings.ToLower(msg.Subject)
	body := strings.ToLower(msg.Body)

	for _, kw := range cfg.Keywords {
		re, err := wordPattern(kw)
		if err != nil {
			// Unmatchable keyword, skip rather than fail
			continue
		}

		if n := len(re.FindAllStringIndex(subject, -1)); n > 0 {
			result.Score += float64(n) * cfg.Weight(core.WeightSubjectKeyword)
			result.Details = append(result.Details,
				fmt.Sprintf("keyword %q in subject (%d occurrence(s))", kw, n))
		}

		positions := re.FindAllStringIndex(body, -1)
		if len(positions) == 0 {
			continue
		}
		result.Score += float64(len(positions)) * cfg.Weight(core.WeightBodyKeyword)

		early := 0
		for _, pos := range positions {
			if pos[0] < cfg.EarlyBodyWindow {
				early++
			}
		}
		result.Score += float64(early) * cfg.Weight(core.WeightEarlyBodyBonus)

		if early > 0 {
			result.Details = append(result.Details,
				fmt.Sprintf("keyword %q in body (%d occurrence(s), %d early)", kw, len(positions), early))
		} else {
			result.Details = append(result.Details,
				fmt.Sprintf("keyword %q in body (%d occurrence(s))", kw, len(positions)))
		}
	}

	return result
}

// wordPattern compiles a whole-word, case-insensitive pattern for a
// configured keyword or phrase
func wordPattern(keyword string) (*regexp.Regexp, error) {
	return regexp.Compile(`(?i)\b` + regexp.QuoteMeta(strings.TrimSpace(keyword)) + `\b`)
}

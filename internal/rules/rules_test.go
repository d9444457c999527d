package rules

import (
	"github.com/xile1310/phish-filter/internal/core"
)

// testConfig returns a fully populated configuration with the default
// tuning used across the rule tests.
func testConfig() *core.RuleConfig {
	return &core.RuleConfig{
		LegitDomains:            []string{"paypal.com", "google.com"},
		Keywords:                []string{"urgent", "verify", "account", "password", "click"},
		LookalikeThreshold:      2,
		EarlyBodyWindow:         200,
		ClassificationThreshold: 4.0,
		Weights: map[string]float64{
			core.WeightSubjectKeyword:  3,
			core.WeightBodyKeyword:     1,
			core.WeightEarlyBodyBonus:  2,
			core.WeightLookalikeDomain: 5,
			core.WeightWhitelistMiss:   2,
			core.WeightIPURL:           5,
			core.WeightUserinfoURL:     3,
			core.WeightDomainMismatch:  4,
		},
	}
}

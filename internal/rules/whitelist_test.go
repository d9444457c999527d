package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xile1310/phish-filter/internal/core"
)

func TestWhitelistRule_Evaluate(t *testing.T) {
	cfg := testConfig()
	rule := NewWhitelistRule()

	tests := []struct {
		name          string
		senderDomain  string
		expectedScore float64
		detailCount   int
	}{
		{
			name:          "Exact match - no findings",
			senderDomain:  "paypal.com",
			expectedScore: 0,
			detailCount:   0,
		},
		{
			name:          "Case-insensitive match",
			senderDomain:  "PayPal.com",
			expectedScore: 0,
			detailCount:   0,
		},
		{
			name:          "Miss without lookalike",
			senderDomain:  "example.org",
			expectedScore: 2,
			detailCount:   1,
		},
		{
			name:          "Lookalike adds a second finding",
			senderDomain:  "paypa1.com",
			expectedScore: 7, // miss (2) + lookalike (5)
			detailCount:   2,
		},
		{
			name:          "Empty domain is a plain miss",
			senderDomain:  "",
			expectedScore: 2,
			detailCount:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := &core.ParsedMessage{SenderDomain: tt.senderDomain}
			result := rule.Evaluate(msg, cfg)

			assert.Equal(t, "whitelist", result.RuleName)
			assert.InDelta(t, tt.expectedScore, result.Score, 0.001)
			assert.Len(t, result.Details, tt.detailCount)
		})
	}
}

func TestWhitelistRule_LookalikeDetail(t *testing.T) {
	cfg := testConfig()
	msg := &core.ParsedMessage{SenderDomain: "paypa1.com"}

	result := NewWhitelistRule().Evaluate(msg, cfg)

	// The miss and the lookalike must be distinguishable findings
	assert.Contains(t, result.Details[0], "not in the trusted domain list")
	assert.Contains(t, result.Details[1], `looks like trusted domain "paypal.com"`)
	assert.Contains(t, result.Details[1], "edit distance 1")
}

package rules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xile1310/phish-filter/internal/core"
)

func TestKeywordRule_Evaluate(t *testing.T) {
	cfg := testConfig()
	rule := NewKeywordRule()

	tests := []struct {
		name          string
		subject       string
		body          string
		expectedScore float64
	}{
		{
			name:          "Three keywords in subject",
			subject:       "URGENT: verify your account",
			body:          "",
			expectedScore: 9, // 3 keywords x subject weight 3
		},
		{
			name:          "Single early body keyword",
			subject:       "",
			body:          "please verify this request",
			expectedScore: 3, // body (1) + early bonus (2)
		},
		{
			name:          "Late body keyword gets no bonus",
			subject:       "",
			body:          strings.Repeat("x", 250) + " verify now",
			expectedScore: 1,
		},
		{
			name:          "Repeated subject keyword counts per occurrence",
			subject:       "urgent urgent urgent",
			body:          "",
			expectedScore: 9,
		},
		{
			name:          "Whole-word only - no partial matches",
			subject:       "verification accounting",
			body:          "password123 reset",
			expectedScore: 0,
		},
		{
			name:          "Case insensitive",
			subject:       "VeRiFy",
			body:          "",
			expectedScore: 3,
		},
		{
			name:          "Empty everything",
			subject:       "",
			body:          "",
			expectedScore: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := &core.ParsedMessage{Subject: tt.subject, Body: tt.body}
			result := rule.Evaluate(msg, cfg)

			assert.Equal(t, "keyword", result.RuleName)
			assert.InDelta(t, tt.expectedScore, result.Score, 0.001)
			if tt.expectedScore == 0 {
				assert.Empty(t, result.Details)
			}
		})
	}
}

func TestKeywordRule_EmptyKeywordList(t *testing.T) {
	cfg := testConfig()
	cfg.Keywords = nil
	msg := &core.ParsedMessage{Subject: "urgent", Body: "verify"}

	result := NewKeywordRule().Evaluate(msg, cfg)

	assert.Zero(t, result.Score)
	assert.Empty(t, result.Details)
}

// Adding one more keyword occurrence to the body never lowers the score
func TestKeywordRule_Monotonic(t *testing.T) {
	cfg := testConfig()
	rule := NewKeywordRule()

	body := "hello there"
	msg := &core.ParsedMessage{Body: body}
	base := rule.Evaluate(msg, cfg).Score

	for i := 0; i < 5; i++ {
		body += " verify"
		next := rule.Evaluate(&core.ParsedMessage{Body: body}, cfg).Score
		assert.GreaterOrEqual(t, next, base)
		base = next
	}
}

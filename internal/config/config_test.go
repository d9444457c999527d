package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xile1310/phish-filter/internal/core"
)

func TestGetRules_Defaults(t *testing.T) {
	cfg := NewFromViper(NewEmptyViper())

	rules := cfg.GetRules()

	require.NoError(t, core.ValidateConfig(rules))
	assert.Contains(t, rules.LegitDomains, "paypal.com")
	assert.Contains(t, rules.Keywords, "urgent")
	assert.Equal(t, 2, rules.LookalikeThreshold)
	assert.Equal(t, 200, rules.EarlyBodyWindow)
	assert.InDelta(t, 4.0, rules.ClassificationThreshold, 0.001)
	assert.InDelta(t, 3.0, rules.Weights[core.WeightSubjectKeyword], 0.001)
	assert.InDelta(t, 5.0, rules.Weights[core.WeightIPURL], 0.001)
}

func TestGetRules_Normalization(t *testing.T) {
	v := NewEmptyViper()
	v.Set("rules.legit_domains", []string{" PayPal.com ", "", "Google.COM"})
	v.Set("rules.keywords", []string{" Urgent ", ""})

	rules := NewFromViper(v).GetRules()

	assert.Equal(t, []string{"paypal.com", "google.com"}, rules.LegitDomains)
	assert.Equal(t, []string{"urgent"}, rules.Keywords)
}

func TestGetServer_Defaults(t *testing.T) {
	cfg := NewFromViper(NewEmptyViper())

	srv := cfg.GetServer()

	assert.Equal(t, "smtp", srv.FilterType)
	assert.Equal(t, "X-Phish-Status", srv.StatusHeader)
	assert.False(t, srv.BlockPhishing)
}

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateConfig(t *testing.T) {
	valid := func() *RuleConfig {
		return &RuleConfig{
			LegitDomains:            []string{"paypal.com"},
			Keywords:                []string{"urgent"},
			Weights:                 map[string]float64{WeightWhitelistMiss: 2},
			LookalikeThreshold:      2,
			EarlyBodyWindow:         200,
			ClassificationThreshold: 4,
		}
	}

	tests := []struct {
		name    string
		mutate  func(cfg *RuleConfig)
		wantErr string
	}{
		{
			name:   "Valid config",
			mutate: func(cfg *RuleConfig) {},
		},
		{
			name:   "Empty lists are valid",
			mutate: func(cfg *RuleConfig) { cfg.LegitDomains = nil; cfg.Keywords = nil },
		},
		{
			name:    "Negative weight",
			mutate:  func(cfg *RuleConfig) { cfg.Weights["x"] = -0.5 },
			wantErr: "weights.x",
		},
		{
			name:    "Negative lookalike threshold",
			mutate:  func(cfg *RuleConfig) { cfg.LookalikeThreshold = -1 },
			wantErr: "lookalike_threshold",
		},
		{
			name:    "Domain with embedded at sign",
			mutate:  func(cfg *RuleConfig) { cfg.LegitDomains = []string{"user@paypal.com"} },
			wantErr: "legit_domains",
		},
		{
			name:    "Blank domain",
			mutate:  func(cfg *RuleConfig) { cfg.LegitDomains = []string{"   "} },
			wantErr: "legit_domains",
		},
		{
			name:    "Blank keyword",
			mutate:  func(cfg *RuleConfig) { cfg.Keywords = []string{""} },
			wantErr: "keywords",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := ValidateConfig(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}

	t.Run("Nil config", func(t *testing.T) {
		assert.Error(t, ValidateConfig(nil))
	})
}

package evaluate

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xile1310/phish-filter/internal/core"
	"go.uber.org/zap"
)

func testConfig() *core.RuleConfig {
	return &core.RuleConfig{
		LegitDomains:            []string{"paypal.com"},
		Keywords:                []string{"urgent", "verify", "account"},
		LookalikeThreshold:      2,
		EarlyBodyWindow:         200,
		ClassificationThreshold: 4,
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

func writeSample(t *testing.T, root, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, dir, name), []byte(content), 0644))
}

func TestRun_ConfusionMatrix(t *testing.T) {
	root := t.TempDir()

	writeSample(t, root, "phishing", "lookalike.txt",
		"From: alice@paypa1.com\nSubject: urgent verify\n\nclick http://192.168.1.1/login")
	writeSample(t, root, "phishing", "subtle.txt",
		"From: bob@unknown.example\nSubject: lunch\n\nsee you at noon") // will be missed
	writeSample(t, root, "safe", "statement.txt",
		"From: alice@paypal.com\nSubject: statement\n\nyour statement is attached")
	writeSample(t, root, "safe", "ignored.bin", "not an email sample")

	samples, err := LoadDataset(root)
	require.NoError(t, err)
	require.Len(t, samples, 3, "non-txt files are skipped")

	report, err := Run(samples, testConfig(), 4, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, 3, report.Total())
	assert.Equal(t, 1, report.TruePositives)
	assert.Equal(t, 1, report.TrueNegatives)
	assert.Equal(t, 1, report.FalseNegatives)
	assert.Equal(t, 0, report.FalsePositives)
	assert.InDelta(t, 2.0/3.0, report.Accuracy(), 0.001)
}

func TestRun_InvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.LookalikeThreshold = -1

	_, err := Run([]Sample{}, cfg, 1, zap.NewNop())
	assert.Error(t, err)
}

func TestLoadDataset_Empty(t *testing.T) {
	_, err := LoadDataset(t.TempDir())
	assert.Error(t, err)
}

func TestReport_WriteCSV(t *testing.T) {
	report := &Report{
		Results: []Result{
			{
				Sample:    Sample{Path: "a.txt", Expected: core.LabelPhishing},
				Predicted: core.LabelPhishing,
				Score:     7,
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, report.WriteCSV(&buf))

	assert.Contains(t, buf.String(), "path,expected,predicted,score")
	assert.Contains(t, buf.String(), "a.txt,Phishing,Phishing,7.00")
}

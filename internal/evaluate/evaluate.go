// Package evaluate runs the classifier over a labeled dataset and
// aggregates accuracy and confusion-matrix statistics. Classification is
// deterministic and free of shared mutable state, so samples are scored
// concurrently.
package evaluate

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/xile1310/phish-filter/internal/core"
	"github.com/xile1310/phish-filter/internal/parser"
	"github.com/xile1310/phish-filter/internal/rules"
	"go.uber.org/zap"
)

// Sample is one labeled email file in a dataset
type Sample struct {
	Path     string
	Expected core.Label
}

// Result is the scored outcome for one sample
type Result struct {
	Sample
	Predicted core.Label
	Score     float64
}

// Report aggregates per-sample results into a confusion matrix
type Report struct {
	Results        []Result
	TruePositives  int
	TrueNegatives  int
	FalsePositives int
	FalseNegatives int
}

// Total returns the number of evaluated samples
func (r *Report) Total() int {
	return r.TruePositives + r.TrueNegatives + r.FalsePositives + r.FalseNegatives
}

// Accuracy returns the fraction of correctly classified samples
func (r *Report) Accuracy() float64 {
	if r.Total() == 0 {
		return 0
	}
	return float64(r.TruePositives+r.TrueNegatives) / float64(r.Total())
}

// LoadDataset walks a dataset root expecting phishing/ and safe/
// subdirectories of plain-text email files
func LoadDataset(root string) ([]Sample, error) {
	labels := map[string]core.Label{
		"phishing": core.LabelPhishing,
		"safe":     core.LabelSafe,
	}

	var samples []Sample
	for dir, label := range labels {
		entries, err := os.ReadDir(filepath.Join(root, dir))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("failed to read dataset directory: %w", err)
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			name := strings.ToLower(e.Name())
			if !strings.HasSuffix(name, ".txt") && !strings.HasSuffix(name, ".eml") {
				continue
			}
			samples = append(samples, Sample{
				Path:     filepath.Join(root, dir, e.Name()),
				Expected: label,
			})
		}
	}

	if len(samples) == 0 {
		return nil, fmt.Errorf("no samples found under %s (expected phishing/ and safe/ subdirectories)", root)
	}

	// Stable ordering keeps reports reproducible
	sort.Slice(samples, func(i, j int) bool { return samples[i].Path < samples[j].Path })
	return samples, nil
}

// Run classifies every sample with the given configuration using the
// requested number of worker goroutines
func Run(samples []Sample, cfg *core.RuleConfig, workers int, logger *zap.Logger) (*Report, error) {
	if err := core.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	if workers < 1 {
		workers = 1
	}

	engine := rules.NewEngine()
	results := make([]Result, len(samples))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				sample := samples[i]
				raw, err := os.ReadFile(sample.Path)
				if err != nil {
					logger.Warn("Failed to read sample, counting as safe",
						zap.String("path", sample.Path), zap.Error(err))
					results[i] = Result{Sample: sample, Predicted: core.LabelSafe}
					continue
				}

				outcome, err := engine.Classify(parser.Parse(string(raw)), cfg)
				if err != nil {
					// Config was validated above; a failure here is a defect
					logger.Fatal("Classification failed", zap.Error(err))
				}
				results[i] = Result{
					Sample:    sample,
					Predicted: outcome.Label,
					Score:     outcome.TotalScore,
				}
			}
		}()
	}

	for i := range samples {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	report := &Report{Results: results}
	for _, res := range results {
		switch {
		case res.Expected == core.LabelPhishing && res.Predicted == core.LabelPhishing:
			report.TruePositives++
		case res.Expected == core.LabelSafe && res.Predicted == core.LabelSafe:
			report.TrueNegatives++
		case res.Expected == core.LabelSafe && res.Predicted == core.LabelPhishing:
			report.FalsePositives++
		default:
			report.FalseNegatives++
		}
	}

	return report, nil
}

// WriteCSV exports per-sample results for spreadsheet analysis
func (r *Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"path", "expected", "predicted", "score"}); err != nil {
		return err
	}
	for _, res := range r.Results {
		record := []string{
			res.Path,
			string(res.Expected),
			string(res.Predicted),
			fmt.Sprintf("%.2f", res.Score),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

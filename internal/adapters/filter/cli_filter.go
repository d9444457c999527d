package filter

import (
	"context"
	"fmt"
	"time"

	"github.com/xile1310/phish-filter/internal/core"
	"go.uber.org/zap"
)

// CliFilter implements a command-line interface for phishing detection
type CliFilter struct {
	service *core.FilterService
	logger  *zap.Logger
	verbose bool
}

// NewCliFilter creates a new CLI filter
func NewCliFilter(service *core.FilterService, logger *zap.Logger, verbose bool) (*CliFilter, error) {
	return &CliFilter{
		service: service,
		logger:  logger,
		verbose: verbose,
	}, nil
}

// ProcessMessage classifies a message and displays the results
func (f *CliFilter) ProcessMessage(ctx context.Context, msg *core.ParsedMessage) (*core.ClassificationOutcome, error) {
	f.logger.Debug("Processing message", zap.String("sender", msg.Sender))

	// Print message summary
	fmt.Printf("\n=== Message Summary ===\n")
	fmt.Printf("From: %s\n", msg.Sender)
	fmt.Printf("Sender domain: %s\n", msg.SenderDomain)
	fmt.Printf("Subject: %s\n", msg.Subject)
	fmt.Printf("Body length: %d bytes\n", len(msg.Body))
	fmt.Printf("URLs found: %d\n", len(msg.URLs))

	if f.verbose {
		preview := msg.Body
		if len(preview) > 500 {
			preview = preview[:500] + "..."
		}
		fmt.Printf("\nBody preview:\n%s\n", preview)
	}

	fmt.Printf("\n=== Analysis ===\n")
	startTime := time.Now()
	outcome, err := f.service.ClassifyMessage(ctx, msg)
	if err != nil {
		f.logger.Error("Failed to classify message", zap.Error(err))
		fmt.Printf("Error: %v\n", err)
		return nil, err
	}
	duration := time.Since(startTime)

	// Print results
	fmt.Printf("\n=== Results ===\n")
	fmt.Printf("Label: %s\n", outcome.Label)
	fmt.Printf("Total score: %.2f\n", outcome.TotalScore)
	for _, r := range outcome.Breakdown {
		fmt.Printf("  %s: %.2f\n", r.RuleName, r.Score)
		for _, d := range r.Details {
			fmt.Printf("    - %s\n", d)
		}
	}
	fmt.Printf("Processing time: %v\n", duration)

	return outcome, nil
}

// Start is a no-op for the CLI filter
func (f *CliFilter) Start() error {
	return nil
}

// Stop is a no-op for the CLI filter
func (f *CliFilter) Stop() error {
	return nil
}

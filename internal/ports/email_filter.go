package ports

import (
	"context"

	"github.com/xile1310/phish-filter/internal/core"
)

// EmailFilter defines the interface for email filtering front ends
type EmailFilter interface {
	// ProcessMessage classifies a parsed message and returns the verdict
	ProcessMessage(ctx context.Context, msg *core.ParsedMessage) (*core.ClassificationOutcome, error)

	// Start starts the email filter service
	Start() error

	// Stop stops the email filter service
	Stop() error
}

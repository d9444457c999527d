package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xile1310/phish-filter/internal/config"
	"github.com/xile1310/phish-filter/internal/logging"
	"github.com/xile1310/phish-filter/internal/parser"
	"github.com/xile1310/phish-filter/internal/rules"
	"go.uber.org/zap"
)

var (
	// Rule flags
	legitDomains = flag.String("legit-domains", "", "Comma-separated list of trusted domains (overrides config)")
	keywords     = flag.String("keywords", "", "Comma-separated list of suspicious keywords (overrides config)")
	threshold    = flag.Float64("threshold", 4.0, "Classification threshold (score above it is phishing)")

	// Input flags
	inputFile  = flag.String("file", "", "Input email file (use stdin if not specified)")
	verbose    = flag.Bool("verbose", false, "Enable verbose logging")
	jsonLog    = flag.Bool("json-log", false, "Output logs in JSON format")
	configFile = flag.String("config", "", "Path to config file (overrides command line flags)")
)

// useThreshold tracks whether -threshold was set explicitly
var useThreshold bool

func main() {
	flag.Parse()
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "threshold" {
			useThreshold = true
		}
	})

	// Initialize logger
	logger, err := logging.InitConsoleLogger(*verbose, *jsonLog)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	var cfg *config.Config
	if *configFile != "" {
		cfg, err = config.New()
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}
		logger.Info("Loaded configuration from file", zap.String("file", cfg.GetViper().ConfigFileUsed()))
	} else {
		cfg = createConfigFromFlags()
	}

	// Read email from file or stdin
	var emailReader io.Reader
	if *inputFile != "" {
		file, err := os.Open(*inputFile)
		if err != nil {
			logger.Fatal("Failed to open input file", zap.Error(err), zap.String("file", *inputFile))
		}
		defer file.Close()
		emailReader = file
		logger.Info("Reading email from file", zap.String("file", *inputFile))
	} else {
		emailReader = os.Stdin
		logger.Info("Reading email from stdin")
	}

	rawBytes, err := io.ReadAll(emailReader)
	if err != nil {
		logger.Fatal("Failed to read email", zap.Error(err))
	}

	msg := parser.Parse(string(rawBytes))
	ruleCfg := cfg.GetRules()

	// Print message summary
	fmt.Printf("\n=== Message Summary ===\n")
	fmt.Printf("From: %s\n", msg.Sender)
	fmt.Printf("Sender domain: %s\n", msg.SenderDomain)
	fmt.Printf("Subject: %s\n", msg.Subject)
	fmt.Printf("Body length: %d bytes\n", len(msg.Body))
	fmt.Printf("URLs found: %d\n", len(msg.URLs))
	fmt.Printf("\n")

	fmt.Printf("=== Analysis ===\n")
	fmt.Printf("Trusted domains: %s\n", strings.Join(ruleCfg.LegitDomains, ", "))
	fmt.Printf("Classification threshold: %.2f\n", ruleCfg.ClassificationThreshold)

	engine := rules.NewEngine()
	outcome, err := engine.Classify(msg, ruleCfg)
	if err != nil {
		logger.Fatal("Failed to classify email", zap.Error(err))
	}

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

	if outcome.IsPhishing() {
		os.Exit(2)
	}
}

// createConfigFromFlags creates a configuration from command line flags
func createConfigFromFlags() *config.Config {
	v := config.NewEmptyViper()

	if *legitDomains != "" {
		v.Set("rules.legit_domains", splitList(*legitDomains))
	}
	if *keywords != "" {
		v.Set("rules.keywords", splitList(*keywords))
	}
	if useThreshold {
		v.Set("rules.classification_threshold", *threshold)
	}

	return config.NewFromViper(v)
}

// splitList splits a comma-separated flag value into trimmed entries
func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

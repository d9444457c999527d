package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/xile1310/phish-filter/internal/config"
	"github.com/xile1310/phish-filter/internal/evaluate"
	"github.com/xile1310/phish-filter/internal/logging"
	"go.uber.org/zap"
)

var (
	datasetDir = flag.String("dataset", "", "Dataset root with phishing/ and safe/ subdirectories")
	workers    = flag.Int("workers", runtime.NumCPU(), "Number of concurrent classification workers")
	csvPath    = flag.String("csv", "", "Optional path for a per-sample CSV export")
	verbose    = flag.Bool("verbose", false, "Enable verbose logging")
	jsonLog    = flag.Bool("json-log", false, "Output logs in JSON format")
)

func main() {
	flag.Parse()

	logger, err := logging.InitConsoleLogger(*verbose, *jsonLog)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *datasetDir == "" {
		fmt.Println("Usage: phish-eval -dataset <dir> [-workers N] [-csv out.csv]")
		os.Exit(1)
	}

	cfg, err := config.New()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	samples, err := evaluate.LoadDataset(*datasetDir)
	if err != nil {
		logger.Fatal("Failed to load dataset", zap.Error(err))
	}
	logger.Info("Loaded dataset", zap.Int("samples", len(samples)), zap.Int("workers", *workers))

	report, err := evaluate.Run(samples, cfg.GetRules(), *workers, logger)
	if err != nil {
		logger.Fatal("Evaluation failed", zap.Error(err))
	}

	fmt.Printf("\n=== Evaluation Report ===\n")
	fmt.Printf("Samples:          %d\n", report.Total())
	fmt.Printf("Accuracy:         %.2f%%\n", report.Accuracy()*100)
	fmt.Printf("\nConfusion matrix:\n")
	fmt.Printf("  True positives:  %d\n", report.TruePositives)
	fmt.Printf("  True negatives:  %d\n", report.TrueNegatives)
	fmt.Printf("  False positives: %d\n", report.FalsePositives)
	fmt.Printf("  False negatives: %d\n", report.FalseNegatives)

	if *csvPath != "" {
		f, err := os.Create(*csvPath)
		if err != nil {
			logger.Fatal("Failed to create CSV file", zap.Error(err))
		}
		defer f.Close()
		if err := report.WriteCSV(f); err != nil {
			logger.Fatal("Failed to write CSV", zap.Error(err))
		}
		logger.Info("Wrote per-sample results", zap.String("path", *csvPath))
	}
}

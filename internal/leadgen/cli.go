package leadgen

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/pkg/logger"
)

// SetupLogging configures logging to both console and file.
// If logFile is empty, a timestamped filename is generated.
func SetupLogging(logFile string, verbose bool) error {
	if logFile == "" {
		logFile = "leadgen_log_" + time.Now().Format("20060102_150405") + ".log"
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	if err := logger.Init(logger.WithOutput(io.MultiWriter(os.Stdout, file)), logger.WithSource(false)); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if verbose {
		if err := logger.SetLevelString("debug"); err != nil {
			return fmt.Errorf("failed to set log level: %w", err)
		}
	}
	logger.Get().Info(context.Background(), "logging to file", logger.String("logFile", logFile))
	return nil
}

// ShowHelp prints usage information for the lead generator.
func ShowHelp() {
	_, _ = os.Stdout.WriteString(`Lead Scoring Smoke Tool
=======================

Generates synthetic leads, pushes them through a running lead scoring service
and checks the results.

Usage:
  go run ./cmd/leadgen [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:8000")
  -leads int
        Number of leads to generate and upload (default 50)
  -timeout duration
        HTTP request timeout (default 2m)
  -output string
        CSV file for generated leads (default: generated_leads_TIMESTAMP.csv)
  -export string
        File to save the results export to (default: not saved)
  -log string
        Log file for run output (default: leadgen_log_TIMESTAMP.log)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Run with default settings
  go run ./cmd/leadgen

  # Larger batch against another host, keep the export
  go run ./cmd/leadgen -leads 500 -url http://scoring:8000 -export results.csv
`)
}

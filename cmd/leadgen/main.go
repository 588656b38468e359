// Command leadgen runs a synthetic batch of leads through a live scoring
// service and verifies the results.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/internal/leadgen"
)

// Default configuration constants.
const (
	defaultNumLeads   = 50
	defaultRunTimeout = 15 * time.Minute
)

func main() {
	var (
		baseURL    = flag.String("url", "http://localhost:8000", "Base URL of the service")
		numLeads   = flag.Int("leads", defaultNumLeads, "Number of leads to generate and upload")
		timeout    = flag.Duration("timeout", leadgen.DefaultTimeout, "HTTP request timeout")
		outputFile = flag.String("output", "", "CSV file for generated leads (default: generated_leads_TIMESTAMP.csv)")
		exportFile = flag.String("export", "", "File to save the results export to")
		logFile    = flag.String("log", "", "Log file for run output (default: leadgen_log_TIMESTAMP.log)")
		verbose    = flag.Bool("verbose", false, "Enable verbose logging")
		help       = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		leadgen.ShowHelp()
		return
	}

	if err := leadgen.SetupLogging(*logFile, *verbose); err != nil {
		_, _ = os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	config := &leadgen.Config{
		BaseURL:    *baseURL,
		NumLeads:   *numLeads,
		Timeout:    *timeout,
		OutputFile: *outputFile,
		ExportFile: *exportFile,
		Verbose:    *verbose,
	}

	if _, err := leadgen.Run(ctx, config); err != nil {
		_, _ = os.Stderr.WriteString("Run failed: " + err.Error() + "\n")
		cancel()
		os.Exit(1) //nolint:gocritic // cancel called above
	}
}

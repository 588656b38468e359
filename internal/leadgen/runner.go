package leadgen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/pkg/logger"
)

// ErrNoLeads is returned when a run is configured with fewer than one lead.
var ErrNoLeads = errors.New("number of leads must be positive")

// DefaultOffer is posted before uploading the generated leads.
var DefaultOffer = Offer{ //nolint:gochecknoglobals // fixed fixture
	Name:          "AI Outreach Automation",
	ValueProps:    "24/7 outreach, 6x more meetings",
	IdealUseCases: "B2B SaaS mid-market",
}

// Run executes the full smoke run against a live service and returns the
// collected statistics.
func Run(ctx context.Context, config *Config) (*Stats, error) {
	if config.NumLeads < 1 {
		return nil, ErrNoLeads
	}
	log := logger.Get().Named("leadgen")
	stats := &Stats{StartTime: time.Now(), ByIntent: map[string]int{}}

	log.Info(ctx, "starting lead scoring smoke run",
		logger.String("baseURL", config.BaseURL),
		logger.Int("numLeads", config.NumLeads),
		logger.Duration("timeout", config.Timeout))

	client := newHTTPClient(config.BaseURL, config.Timeout)

	// Step 1: health
	if err := client.Health(ctx); err != nil {
		return stats, fmt.Errorf("health check failed: %w", err)
	}

	// Step 2: generate and keep the sheet on disk
	leads := GenerateLeads(ctx, config.NumLeads)
	stats.LeadsGenerated = len(leads)
	var sheet bytes.Buffer
	if err := WriteCSV(&sheet, leads); err != nil {
		return stats, fmt.Errorf("failed to encode leads: %w", err)
	}
	outputFile := config.OutputFile
	if outputFile == "" {
		outputFile = "generated_leads_" + time.Now().Format("20060102_150405") + ".csv"
	}
	if err := os.WriteFile(outputFile, sheet.Bytes(), csvFilePermission); err != nil {
		return stats, fmt.Errorf("failed to save leads: %w", err)
	}
	log.Info(ctx, "leads saved to file", logger.String("filename", outputFile))

	// Step 3: offer
	if err := client.CreateOffer(ctx, DefaultOffer); err != nil {
		return stats, fmt.Errorf("failed to create offer: %w", err)
	}

	// Step 4: upload
	inserted, err := client.UploadLeads(ctx, filepath.Base(outputFile), sheet.Bytes())
	if err != nil {
		return stats, fmt.Errorf("failed to upload leads: %w", err)
	}
	stats.LeadsInserted = inserted

	// Step 5: score
	scored, err := client.Score(ctx)
	if err != nil {
		return stats, fmt.Errorf("failed to score leads: %w", err)
	}
	stats.LeadsProcessed = scored.Processed
	log.Info(ctx, "scoring run finished",
		logger.String("runID", scored.RunID),
		logger.Int("processed", scored.Processed))

	// Step 6: results
	results, err := client.Results(ctx)
	if err != nil {
		return stats, fmt.Errorf("failed to retrieve results: %w", err)
	}
	stats.ResultsReturned = len(results)

	// Step 7: export
	export, err := client.Export(ctx)
	if err != nil {
		return stats, fmt.Errorf("failed to export results: %w", err)
	}
	if config.ExportFile != "" {
		if err := os.WriteFile(config.ExportFile, export, csvFilePermission); err != nil {
			return stats, fmt.Errorf("failed to save export: %w", err)
		}
	}

	// Step 8: verify
	if err := verifyResults(ctx, config, leads, scored, results, export, stats); err != nil {
		return stats, fmt.Errorf("verification failed: %w", err)
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(ctx, log, stats)
	return stats, nil
}

// displayFinalStats logs the final run statistics.
func displayFinalStats(ctx context.Context, log logger.Logger, stats *Stats) {
	var insertRate float64
	if stats.LeadsGenerated > 0 {
		insertRate = float64(stats.LeadsInserted) / float64(stats.LeadsGenerated) * PercentageMultiplier
	}

	log.Info(ctx, "final statistics",
		logger.Int("leadsGenerated", stats.LeadsGenerated),
		logger.Int("leadsInserted", stats.LeadsInserted),
		logger.Int("leadsProcessed", stats.LeadsProcessed),
		logger.Int("resultsReturned", stats.ResultsReturned),
		logger.Int("exportRows", stats.ExportRows),
		logger.Int("high", stats.ByIntent["High"]),
		logger.Int("medium", stats.ByIntent["Medium"]),
		logger.Int("low", stats.ByIntent["Low"]),
		logger.String("duration", stats.Duration.String()),
		logger.Float64("insertRate", insertRate))
}

package leadgen

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"

	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/internal/domain/model"
	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/pkg/logger"
)

// ErrVerification marks a response that breaks a service guarantee.
var ErrVerification = errors.New("verification")

// verifyResults checks the service responses against the generated leads.
// The service may already hold leads from earlier runs, so counts are
// compared as lower bounds where needed.
func verifyResults(ctx context.Context, config *Config, leads []model.Lead, scored ScoreResponse,
	results []Result, export []byte, stats *Stats,
) error {
	log := logger.Get().Named("leadgen")

	if stats.LeadsInserted != len(leads) {
		return fmt.Errorf("%w: inserted %d of %d leads", ErrVerification, stats.LeadsInserted, len(leads))
	}
	if scored.Processed < len(leads) {
		return fmt.Errorf("%w: processed %d, want at least %d", ErrVerification, scored.Processed, len(leads))
	}
	if len(results) != scored.Processed {
		return fmt.Errorf("%w: %d results for %d processed leads", ErrVerification, len(results), scored.Processed)
	}

	seen := make(map[int64]bool, len(results))
	companies := make(map[string]bool, len(results))
	for i, r := range results {
		if r.Score < MinScore || r.Score > MaxScore {
			return fmt.Errorf("%w: lead %d score %d out of range", ErrVerification, r.LeadID, r.Score)
		}
		if !model.Intent(r.Intent).Valid() {
			return fmt.Errorf("%w: lead %d has intent %q", ErrVerification, r.LeadID, r.Intent)
		}
		if seen[r.LeadID] {
			return fmt.Errorf("%w: lead %d appears twice", ErrVerification, r.LeadID)
		}
		if i > 0 && r.Score > results[i-1].Score {
			return fmt.Errorf("%w: results not sorted at position %d", ErrVerification, i)
		}
		seen[r.LeadID] = true
		companies[r.Company] = true
		stats.ByIntent[r.Intent]++
	}
	for _, l := range leads {
		if !companies[l.Company] {
			return fmt.Errorf("%w: no result for company %q", ErrVerification, l.Company)
		}
	}

	rows, err := csv.NewReader(bytes.NewReader(export)).ReadAll()
	if err != nil {
		return fmt.Errorf("%w: export is not valid csv: %w", ErrVerification, err)
	}
	if len(rows) != len(results)+1 {
		return fmt.Errorf("%w: export has %d rows for %d results", ErrVerification, len(rows)-1, len(results))
	}
	stats.ExportRows = len(rows) - 1

	if config.Verbose {
		displayTopLeads(ctx, log, results)
	}
	log.Info(ctx, "result verification completed", logger.Int("results", len(results)))
	return nil
}

// displayTopLeads logs the best scored leads.
func displayTopLeads(ctx context.Context, log logger.Logger, results []Result) {
	topN := min(10, len(results))
	for i := range topN {
		r := results[i]
		log.Info(ctx, "top lead",
			logger.Int("position", i+1),
			logger.String("name", r.Name),
			logger.String("company", r.Company),
			logger.Int("score", r.Score),
			logger.String("intent", r.Intent))
	}
}

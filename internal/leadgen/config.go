// Package leadgen drives a running scoring service end to end with
// synthetic leads and checks what comes back.
package leadgen

import "time"

// Config holds configuration for a smoke run.
type Config struct {
	BaseURL    string        // Base URL of the service
	NumLeads   int           // Number of leads to generate
	Timeout    time.Duration // HTTP request timeout
	OutputFile string        // Where the generated CSV is kept
	ExportFile string        // Where the results export is saved, empty to skip
	Verbose    bool          // Enable verbose logging
}

// Offer is the body posted to /offer.
type Offer struct {
	Name          string `json:"name"`
	ValueProps    string `json:"value_props"`
	IdealUseCases string `json:"ideal_use_cases"`
}

// Result is one row of GET /results.
type Result struct {
	LeadID    int64  `json:"lead_id"`
	Name      string `json:"name"`
	Company   string `json:"company"`
	Role      string `json:"role"`
	Industry  string `json:"industry"`
	Score     int    `json:"score"`
	Intent    string `json:"intent"`
	Reasoning string `json:"reasoning"`
}

// ScoreResponse is the body returned by POST /score.
type ScoreResponse struct {
	Processed int    `json:"processed"`
	RunID     string `json:"run_id"`
}

// Stats holds run statistics.
type Stats struct {
	LeadsGenerated  int
	LeadsInserted   int
	LeadsProcessed  int
	ResultsReturned int
	ExportRows      int
	ByIntent        map[string]int
	StartTime       time.Time
	EndTime         time.Time
	Duration        time.Duration
}

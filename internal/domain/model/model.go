// Package model contains domain models passed between layers.
package model

import "time"

// Intent is the coarse buying-readiness label of a lead.
type Intent string

// Intent labels, most to least ready.
const (
	IntentHigh   Intent = "High"
	IntentMedium Intent = "Medium"
	IntentLow    Intent = "Low"
)

// Intents lists every label in priority order.
var Intents = []Intent{IntentHigh, IntentMedium, IntentLow} //nolint:gochecknoglobals // fixed label order

// Valid reports whether i is one of the known labels.
func (i Intent) Valid() bool {
	switch i {
	case IntentHigh, IntentMedium, IntentLow:
		return true
	}
	return false
}

// Offer describes what is being sold; leads are scored against the latest one.
type Offer struct {
	ID            int64
	Name          string
	ValueProps    string
	IdealUseCases string
	CreatedAt     time.Time
}

// Lead is an uploaded prospect. Every field is untrusted and may be empty.
type Lead struct {
	ID          int64
	Name        string
	Role        string
	Company     string
	Industry    string
	Location    string
	LinkedInBio string
	CreatedAt   time.Time
}

// Result is the persisted outcome of scoring one lead. There is at most one
// Result per LeadID.
type Result struct {
	LeadID    int64
	Score     int
	Intent    Intent
	Reasoning string
	CreatedAt time.Time
}

// ResultView joins a Result with the lead fields shown in listings and exports.
type ResultView struct {
	Result
	Name     string
	Company  string
	Role     string
	Industry string
}

package scoring

import "errors"

// Scoring run errors.
var (
	// ErrListLeads is returned when leads could not be fetched.
	ErrListLeads = errors.New("list leads")
	// ErrPersist is returned when a result could not be stored. Results
	// written before the failure are kept.
	ErrPersist = errors.New("persist result")
)

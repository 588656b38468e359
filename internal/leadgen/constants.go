package leadgen

import "time"

// Score bounds accepted from the service.
const (
	MinScore = 0
	MaxScore = 100
)

// PercentageMultiplier turns a ratio into a percentage.
const PercentageMultiplier = 100

const (
	csvFilePermission = 0o600
	logFilePermission = 0o600
)

// DefaultTimeout bounds each HTTP call. Scoring a large batch with remote
// classification can take minutes.
const DefaultTimeout = 2 * time.Minute

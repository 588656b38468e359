package leadcsv

import "errors"

// Parse and write errors.
var (
	ErrMissingColumns = errors.New("missing columns")
	ErrMalformed      = errors.New("malformed csv")
)

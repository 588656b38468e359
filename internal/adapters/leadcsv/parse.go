// Package leadcsv reads uploaded lead sheets and writes scoring exports.
package leadcsv

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/internal/domain/model"
)

// Columns every upload must carry, in canonical order.
var Columns = []string{"name", "role", "company", "industry", "location", "linkedin_bio"} //nolint:gochecknoglobals // fixed header

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Parse reads a header row and one lead per following row. Invalid UTF-8 is
// dropped, extra columns are ignored and short rows leave fields empty.
// Empty and whitespace-only lines are skipped; a row of empty cells becomes
// a lead with every field empty.
func Parse(r io.Reader) ([]model.Lead, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	raw = bytes.TrimPrefix(raw, utf8BOM)
	text := strings.ToValidUTF8(string(raw), "")

	cr := csv.NewReader(strings.NewReader(text))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, missingColumns(Columns)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		if _, dup := index[h]; !dup {
			index[h] = i
		}
	}
	var missing []string
	for _, c := range Columns {
		if _, ok := index[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, missingColumns(missing)
	}

	var leads []model.Lead
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		if whitespaceLine(rec) {
			continue
		}
		cell := func(col string) string {
			if i := index[col]; i < len(rec) {
				return rec[i]
			}
			return ""
		}
		leads = append(leads, model.Lead{
			Name:        cell("name"),
			Role:        cell("role"),
			Company:     cell("company"),
			Industry:    cell("industry"),
			Location:    cell("location"),
			LinkedInBio: cell("linkedin_bio"),
		})
	}
	return leads, nil
}

// missingColumns formats names like a Python list: ['a', 'b'].
func missingColumns(names []string) error {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "'" + n + "'"
	}
	return fmt.Errorf("%w: [%s]", ErrMissingColumns, strings.Join(quoted, ", "))
}

// whitespaceLine reports a line holding nothing but spaces or tabs. Lines
// with separators, such as ",,,,,", are rows of empty cells and are kept.
func whitespaceLine(rec []string) bool {
	return len(rec) == 1 && strings.TrimSpace(rec[0]) == ""
}

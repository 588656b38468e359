package leadcsv

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/internal/domain/model"
)

// MaxExportReasoning bounds the reasoning column, in characters.
const MaxExportReasoning = 1000

// ExportHeader is the first row of every export.
var ExportHeader = []string{"lead_id", "name", "company", "role", "industry", "score", "intent", "reasoning"} //nolint:gochecknoglobals // fixed header

// WriteResults writes one row per result with CRLF line endings. Fields are
// quoted only when they hold a comma, a quote, CR or LF.
func WriteResults(w io.Writer, results []model.ResultView) error {
	bw := bufio.NewWriter(w)
	if err := writeRow(bw, ExportHeader); err != nil {
		return err
	}
	for _, r := range results {
		row := []string{
			strconv.FormatInt(r.LeadID, 10),
			r.Name,
			r.Company,
			r.Role,
			r.Industry,
			strconv.Itoa(r.Score),
			string(r.Intent),
			exportReasoning(r.Reasoning),
		}
		if err := writeRow(bw, row); err != nil {
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush export: %w", err)
	}
	return nil
}

func exportReasoning(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if r := []rune(s); len(r) > MaxExportReasoning {
		return string(r[:MaxExportReasoning])
	}
	return s
}

// writeRow differs from encoding/csv, which also quotes fields with a
// leading space and rewrites bare CR.
func writeRow(w *bufio.Writer, fields []string) error {
	for i, f := range fields {
		if i > 0 {
			if err := w.WriteByte(','); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
		}
		if strings.ContainsAny(f, ",\"\r\n") {
			f = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
		}
		if _, err := w.WriteString(f); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
	}
	if _, err := w.WriteString("\r\n"); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

package api

import (
	"bytes"
	"net/http"

	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/internal/adapters/leadcsv"
	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/internal/domain/model"
	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/pkg/logger"
)

// ExportFilename is the attachment name of GET /results/export.
const ExportFilename = "lead_scoring_results.csv"

// resultResponse is one row of GET /results.
type resultResponse struct {
	LeadID    int64        `json:"lead_id"`
	Name      string       `json:"name"`
	Company   string       `json:"company"`
	Role      string       `json:"role"`
	Industry  string       `json:"industry"`
	Score     int          `json:"score"`
	Intent    model.Intent `json:"intent"`
	Reasoning string       `json:"reasoning"`
}

// ResultsHandler serves stored scoring results.
type ResultsHandler struct {
	deps   Dependencies
	logger logger.Logger
}

// NewResultsHandler creates a new results handler.
func NewResultsHandler(deps Dependencies, log logger.Logger) *ResultsHandler {
	return &ResultsHandler{deps: deps, logger: log}
}

// HandleList handles GET /results requests.
func (h *ResultsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	const op = "api.list_results"
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	ctx := r.Context()

	views, err := h.deps.Results(ctx)
	if err != nil {
		writeError(ctx, h.logger, w, http.StatusInternalServerError, "Failed to retrieve results: "+err.Error(), WrapKind(op, ErrInternal, err))
		return
	}

	out := make([]resultResponse, 0, len(views))
	for _, v := range views {
		out = append(out, resultResponse{
			LeadID:    v.LeadID,
			Name:      v.Name,
			Company:   v.Company,
			Role:      v.Role,
			Industry:  v.Industry,
			Score:     v.Score,
			Intent:    v.Intent,
			Reasoning: v.Reasoning,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// HandleExport handles GET /results/export requests.
func (h *ResultsHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	const op = "api.export_results"
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	ctx := r.Context()

	views, err := h.deps.Results(ctx)
	if err != nil {
		writeError(ctx, h.logger, w, http.StatusInternalServerError, "Export failed: "+err.Error(), WrapKind(op, ErrInternal, err))
		return
	}
	if len(views) == 0 {
		writeError(ctx, h.logger, w, http.StatusNotFound, "No results to export", NewKind(op, ErrNotFound))
		return
	}

	var buf bytes.Buffer
	if err := leadcsv.WriteResults(&buf, views); err != nil {
		writeError(ctx, h.logger, w, http.StatusInternalServerError, "Export failed: "+err.Error(), WrapKind(op, ErrInternal, err))
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename=`+ExportFilename)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

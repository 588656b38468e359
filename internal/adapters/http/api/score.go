package api

import (
	"errors"
	"net/http"

	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/internal/adapters/repository"
	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/pkg/logger"
)

type scoreResponse struct {
	Processed int    `json:"processed"`
	RunID     string `json:"run_id"`
}

// ScoreHandler triggers scoring runs.
type ScoreHandler struct {
	deps   Dependencies
	logger logger.Logger
}

// NewScoreHandler creates a new score handler.
func NewScoreHandler(deps Dependencies, log logger.Logger) *ScoreHandler {
	return &ScoreHandler{deps: deps, logger: log}
}

// HandleScore handles POST /score requests. The run is synchronous.
func (h *ScoreHandler) HandleScore(w http.ResponseWriter, r *http.Request) {
	const op = "api.score"
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	ctx := r.Context()

	summary, err := h.deps.Score(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(ctx, h.logger, w, http.StatusBadRequest, "No offer found. Create an offer first.", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err != nil {
		writeError(ctx, h.logger, w, http.StatusInternalServerError, "Scoring failed: "+err.Error(), WrapKind(op, ErrInternal, err))
		return
	}

	writeJSON(w, http.StatusOK, scoreResponse{Processed: summary.Processed, RunID: summary.RunID})
}

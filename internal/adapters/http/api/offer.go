package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/internal/domain/model"
	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/pkg/logger"
	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/pkg/metrics"
)

const msgMissingOfferFields = "Missing required fields: name, value_props, ideal_use_cases"

// offerRequest is the body of POST /offer.
type offerRequest struct {
	Name          string `json:"name" validate:"required"`
	ValueProps    string `json:"value_props" validate:"required"`
	IdealUseCases string `json:"ideal_use_cases" validate:"required"`
}

type idResponse struct {
	ID int64 `json:"id"`
}

// OfferHandler handles offer creation.
type OfferHandler struct {
	deps     Dependencies
	validate *validator.Validate
	logger   logger.Logger
}

// NewOfferHandler creates a new offer handler.
func NewOfferHandler(deps Dependencies, log logger.Logger) *OfferHandler {
	return &OfferHandler{deps: deps, validate: validator.New(), logger: log}
}

// HandlePostOffer handles POST /offer requests.
func (h *OfferHandler) HandlePostOffer(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_offer"
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	ctx := r.Context()

	var req offerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, h.logger, w, http.StatusBadRequest, msgMissingOfferFields, WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(ctx, h.logger, w, http.StatusBadRequest, msgMissingOfferFields, WrapKind(op, ErrBadRequest, err))
		return
	}

	offer, err := h.deps.CreateOffer(ctx, model.Offer{
		Name:          req.Name,
		ValueProps:    req.ValueProps,
		IdealUseCases: req.IdealUseCases,
	})
	if err != nil {
		writeError(ctx, h.logger, w, http.StatusInternalServerError, "Failed to save offer", Wrap(op, err))
		return
	}

	metrics.RecordOfferCreated()
	writeJSON(w, http.StatusCreated, idResponse{ID: offer.ID})
}

// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/internal/domain/model"
	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/internal/domain/scoring"
	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/pkg/logger"
)

// DefaultMaxUploadBytes bounds lead uploads when no limit is configured.
const DefaultMaxUploadBytes int64 = 10 << 20

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// CreateOffer stores an offer and returns it with its ID.
	CreateOffer(ctx context.Context, offer model.Offer) (model.Offer, error)
	// ImportLeads stores parsed leads and returns how many were inserted.
	ImportLeads(ctx context.Context, leads []model.Lead) (int, error)
	// Score runs the pipeline against the latest offer. It returns an error
	// matching repository.ErrNotFound when no offer exists.
	Score(ctx context.Context) (scoring.Summary, error)
	// Results returns every stored result joined with its lead.
	Results(ctx context.Context) ([]model.ResultView, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler  *HealthHandler
	offerHandler   *OfferHandler
	leadsHandler   *LeadsHandler
	scoreHandler   *ScoreHandler
	resultsHandler *ResultsHandler
}

// Option configures the Server.
type Option func(*serverOptions)

type serverOptions struct {
	logger         logger.Logger
	maxUploadBytes int64
}

// WithLogger sets the logger used for failed requests.
func WithLogger(l logger.Logger) Option {
	return func(o *serverOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMaxUploadBytes bounds the size of lead uploads.
func WithMaxUploadBytes(n int64) Option {
	return func(o *serverOptions) {
		if n > 0 {
			o.maxUploadBytes = n
		}
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, opts ...Option) *Server {
	o := serverOptions{logger: logger.NewNop(), maxUploadBytes: DefaultMaxUploadBytes}
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger.Named("api")

	return &Server{
		healthHandler:  NewHealthHandler(),
		offerHandler:   NewOfferHandler(deps, log),
		leadsHandler:   NewLeadsHandler(deps, log, o.maxUploadBytes),
		scoreHandler:   NewScoreHandler(deps, log),
		resultsHandler: NewResultsHandler(deps, log),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/health", MetricsMiddleware(s.healthHandler.HandleHealth, "health"))
	mux.HandleFunc("/metrics", s.healthHandler.HandleMetrics)
	mux.HandleFunc("/offer", MetricsMiddleware(s.offerHandler.HandlePostOffer, "offer"))
	mux.HandleFunc("/leads/upload", MetricsMiddleware(s.leadsHandler.HandleUpload, "leads_upload"))
	mux.HandleFunc("/score", MetricsMiddleware(s.scoreHandler.HandleScore, "score"))
	mux.HandleFunc("/results", MetricsMiddleware(s.resultsHandler.HandleList, "results"))
	mux.HandleFunc("/results/export", MetricsMiddleware(s.resultsHandler.HandleExport, "results_export"))
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError sends msg to the client; the detailed err is only logged.
func writeError(ctx context.Context, log logger.Logger, w http.ResponseWriter, status int, msg string, err error) {
	if err != nil {
		fields := []logger.Field{logger.Int("status", status), logger.Error(err)}
		if status >= http.StatusInternalServerError {
			log.Error(ctx, "request failed", fields...)
		} else {
			log.Debug(ctx, "request rejected", fields...)
		}
	}
	writeJSON(w, status, errorResponse{Error: msg})
}

// allowMethod answers 405 unless r uses method.
func allowMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: ErrMethodNotAllowed.Error()})
	return false
}

package api

import (
	"errors"
	"net/http"
	"unicode"
	"unicode/utf8"

	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/internal/adapters/leadcsv"
	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/pkg/logger"
	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/pkg/metrics"
)

// Multipart parts above this size spill to temporary files.
const multipartMemory = 8 << 20

type insertedResponse struct {
	Inserted int `json:"inserted"`
}

// LeadsHandler handles CSV lead uploads.
type LeadsHandler struct {
	deps     Dependencies
	logger   logger.Logger
	maxBytes int64
}

// NewLeadsHandler creates a new leads handler.
func NewLeadsHandler(deps Dependencies, log logger.Logger, maxBytes int64) *LeadsHandler {
	return &LeadsHandler{deps: deps, logger: log, maxBytes: maxBytes}
}

// HandleUpload handles POST /leads/upload with a multipart "file" field.
func (h *LeadsHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	const op = "api.upload_leads"
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	ctx := r.Context()

	if r.ContentLength > h.maxBytes {
		writeError(ctx, h.logger, w, http.StatusRequestEntityTooLarge, "File too large", NewKind(op, ErrBadRequest))
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(ctx, h.logger, w, http.StatusRequestEntityTooLarge, "File too large", WrapKind(op, ErrBadRequest, err))
			return
		}
		writeError(ctx, h.logger, w, http.StatusBadRequest, "No file uploaded", WrapKind(op, ErrBadRequest, err))
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, _, err := r.FormFile("file")
	if err != nil {
		// A part without a filename is kept as a plain form value.
		if _, ok := r.MultipartForm.Value["file"]; ok {
			writeError(ctx, h.logger, w, http.StatusBadRequest, "No file selected", NewKind(op, ErrBadRequest))
			return
		}
		writeError(ctx, h.logger, w, http.StatusBadRequest, "No file uploaded", WrapKind(op, ErrBadRequest, err))
		return
	}
	defer file.Close()

	leads, err := leadcsv.Parse(file)
	if err != nil {
		writeError(ctx, h.logger, w, http.StatusBadRequest, capitalize(err.Error()), WrapKind(op, ErrBadRequest, err))
		return
	}

	n, err := h.deps.ImportLeads(ctx, leads)
	if err != nil {
		writeError(ctx, h.logger, w, http.StatusBadRequest, capitalize(err.Error()), Wrap(op, err))
		return
	}

	metrics.RecordLeadsUploaded(n)
	h.logger.Info(ctx, "leads uploaded", logger.Int("inserted", n))
	writeJSON(w, http.StatusCreated, insertedResponse{Inserted: n})
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

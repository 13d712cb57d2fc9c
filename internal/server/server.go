package server

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"paipuScope/internal/model"
)

// Server serves the summary API over HTTP.
type Server struct {
	pipeline *Pipeline
	logger   *zap.Logger
}

func New(pipeline *Pipeline, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{pipeline: pipeline, logger: logger}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /uuid/{uuid}", s.handleSummary)
	mux.HandleFunc("GET /uuid-raw/{uuid}", s.handleRaw)
	mux.HandleFunc("GET /uuid-csv/{uuid}", s.handleCSV)
	return s.logRequests(mux)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("elapsed", time.Since(start)))
	})
}

// handleSummary serves the validated, derived view of one match.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	matchID := r.PathValue("uuid")

	blob, err := s.pipeline.Resolve(r.Context(), matchID)
	if err != nil {
		s.writeFault(w, err, nil)
		return
	}

	summary, errs, err := Summarize(blob)
	if err != nil {
		s.writeFault(w, err, blob)
		return
	}
	if len(errs) > 0 {
		writeJSON(w, http.StatusInternalServerError, model.ErrorResponse{
			Result:  "ERROR",
			Message: "Invalid game log.",
			Errors:  errs,
			Data:    blob,
		})
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// handleRaw serves the decoded blob as-is, without validation.
func (s *Server) handleRaw(w http.ResponseWriter, r *http.Request) {
	matchID := r.PathValue("uuid")

	blob, err := s.pipeline.Resolve(r.Context(), matchID)
	if err != nil {
		s.writeFault(w, err, nil)
		return
	}
	writeJSON(w, http.StatusOK, blob)
}

// handleCSV serves the summary as a single CSV row.
func (s *Server) handleCSV(w http.ResponseWriter, r *http.Request) {
	matchID := r.PathValue("uuid")

	blob, err := s.pipeline.Resolve(r.Context(), matchID)
	if err != nil {
		s.writeFault(w, err, nil)
		return
	}

	summary, errs, err := Summarize(blob)
	if err != nil {
		s.writeFault(w, err, blob)
		return
	}
	if len(errs) > 0 {
		s.writeCSV(w, http.StatusInternalServerError, ErrorRow(errs))
		return
	}
	s.writeCSV(w, http.StatusOK, SummaryRow(summary))
}

func (s *Server) writeCSV(w http.ResponseWriter, status int, row []string) {
	body, err := WriteCSVRow(row)
	if err != nil {
		s.writeFault(w, err, nil)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=export.csv")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// writeFault reports an unexpected processing failure: a defect or data
// inconsistency, not a rule deviation.
func (s *Server) writeFault(w http.ResponseWriter, err error, blob *model.MatchBlob) {
	s.logger.Error("unexpected processing failure", zap.Error(err))
	writeJSON(w, http.StatusInternalServerError, model.ErrorResponse{
		Result:  "ERROR",
		Message: err.Error(),
		Errors: []model.ValidationError{{
			Code:    model.CodeUnexpected,
			Message: "Unexpected exception.",
		}},
		Data: blob,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/ragline/ragline/internal/pipeline"
)

type processRequest struct {
	Query string `json:"query"`
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"service": "ragline",
		"status":  "running",
		"version": s.version,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	var req processRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	outcome, err := s.pipe.Process(r.Context(), req.Query)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, outcome)
}

// writeError maps the pipeline error taxonomy onto status codes:
// validation failures are the caller's to fix (400), processing
// failures are upstream trouble (502), anything else is a 500.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var vErr *pipeline.ValidationError
	if errors.As(err, &vErr) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: vErr.Message, Kind: string(vErr.Kind)})
		return
	}

	var pErr *pipeline.ProcessingError
	if errors.As(err, &pErr) {
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: pErr.Message, Kind: string(pErr.Kind)})
		return
	}

	s.logger.Error("unexpected pipeline error", zap.Error(err))
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// Package server exposes the design engine over a small JSON API. It is
// a thin I/O layer: every handler decodes inputs, calls the pure engine
// and encodes the result records.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/satyajit2online/Load-Distribution/internal/beam"
	"github.com/satyajit2online/Load-Distribution/internal/report"
	"github.com/satyajit2online/Load-Distribution/internal/schedule"
)

// reportTimeout bounds the natural-language generator call so a slow
// collaborator can never hold a request open indefinitely.
const reportTimeout = 30 * time.Second

// Server wires the engine, the saved-design store and the report
// generator behind HTTP handlers.
type Server struct {
	Store     *schedule.Store
	Generator report.Generator
}

func New(store *schedule.Store, gen report.Generator) *Server {
	return &Server{Store: store, Generator: gen}
}

// DesignResponse bundles the three result records of one design run.
type DesignResponse struct {
	Loads    beam.LoadResult     `json:"loads"`
	Analysis beam.AnalysisResult `json:"analysis"`
	Design   beam.DesignResult   `json:"design"`
}

// SaveRequest names a design to be computed and stored.
type SaveRequest struct {
	Name   string            `json:"name"`
	Inputs beam.DesignInputs `json:"inputs"`
}

// Routes builds the API router with per-IP rate limiting.
func (s *Server) Routes() *mux.Router {
	r := mux.NewRouter()

	limiter := NewIPRateLimiter(rate.Limit(5), 10)
	api := r.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/design", s.handleDesign).Methods("POST")
	api.HandleFunc("/design/batch", s.handleBatch).Methods("POST")

	api.HandleFunc("/schedule", s.handleSave).Methods("POST")
	api.HandleFunc("/schedule", s.handleList).Methods("GET")
	api.HandleFunc("/schedule/export", s.handleExport).Methods("GET")
	api.HandleFunc("/schedule/{id}", s.handleGet).Methods("GET")
	api.HandleFunc("/schedule/{id}", s.handleDelete).Methods("DELETE")

	api.HandleFunc("/report", s.handleReport).Methods("POST")
	api.HandleFunc("/report/pdf", s.handleReportPDF).Methods("POST")

	return r
}

func (s *Server) handleDesign(w http.ResponseWriter, r *http.Request) {
	var inputs beam.DesignInputs
	if err := json.NewDecoder(r.Body).Decode(&inputs); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	loads, analysis, design, err := beam.Design(inputs)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, DesignResponse{Loads: loads, Analysis: analysis, Design: design})
}

func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	var inputs []beam.DesignInputs
	if err := json.NewDecoder(r.Body).Decode(&inputs); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if len(inputs) == 0 {
		http.Error(w, "No items", http.StatusBadRequest)
		return
	}
	out := make([]DesignResponse, 0, len(inputs))
	for _, in := range inputs {
		loads, analysis, design, err := beam.Design(in)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		out = append(out, DesignResponse{Loads: loads, Analysis: analysis, Design: design})
	}
	writeJSON(w, out)
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	loads, analysis, design, err := beam.Design(req.Inputs)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	entry := s.Store.Save(req.Name, req.Inputs, loads, analysis, design)
	writeJSON(w, entry)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Store.List())
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	entry, ok := s.Store.Get(mux.Vars(r)["id"])
	if !ok {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	writeJSON(w, entry)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if !s.Store.Delete(mux.Vars(r)["id"]) {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"schedule.xlsx\"")
	if err := s.Store.WriteXLSX(w); err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
	}
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.decodeSnapshot(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), reportTimeout)
	defer cancel()

	// Narrative never fails; generator errors become a fallback string
	// and the numeric records are returned regardless.
	text := report.Narrative(ctx, s.Generator, snap)
	writeJSON(w, map[string]string{"report": text})
}

func (s *Server) handleReportPDF(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.decodeSnapshot(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"design.pdf\"")
	if err := report.WritePDF(w, snap); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
	}
}

// decodeSnapshot computes a fresh snapshot from posted inputs.
func (s *Server) decodeSnapshot(w http.ResponseWriter, r *http.Request) (report.Snapshot, bool) {
	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return report.Snapshot{}, false
	}
	loads, analysis, design, err := beam.Design(req.Inputs)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return report.Snapshot{}, false
	}
	return report.Snapshot{
		Name:     req.Name,
		Inputs:   req.Inputs,
		Loads:    loads,
		Analysis: analysis,
		Design:   design,
	}, true
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// Package api provides the HTTP REST API server for newsense.
//
// It is the caller-facing entry point of the analysis pipeline: any UI is
// an external collaborator that posts a company name and renders whatever
// structured report comes back.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/shrishail07/newsense/internal/analysis/topics"
	"github.com/shrishail07/newsense/internal/config"
	"github.com/shrishail07/newsense/internal/feed"
	"github.com/shrishail07/newsense/internal/report"
	"github.com/shrishail07/newsense/internal/speech"
	"github.com/shrishail07/newsense/pkg/models"
)

// Server is the HTTP API server.
type Server struct {
	router    chi.Router
	cfg       *config.Config
	generator *report.Generator
	narrator  *speech.Narrator
}

// NewServer creates a configured API server with all routes and middleware.
func NewServer(cfg *config.Config) *Server {
	fetcher := feed.NewFetcherWithOptions(
		cfg.Feed.URLTemplate,
		time.Duration(cfg.Feed.TimeoutSec)*time.Second,
		cfg.Feed.MaxArticles,
	)

	srv := &Server{
		cfg:       cfg,
		generator: report.NewGenerator(fetcher),
		narrator:  speech.NewNarrator(cfg.Speech.Language),
	}
	srv.router = srv.buildRouter()
	return srv
}

// Router returns the chi router for testing.
func (s *Server) Router() chi.Router {
	return s.router
}

// ListenAndServe starts the HTTP server with graceful shutdown.
func (s *Server) ListenAndServe(addr string) error {
	httpSrv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-done:
	}
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	return httpSrv.Shutdown(ctx)
}

// buildRouter configures all routes and middleware.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(120 * time.Second))

	origins := []string{"*"}
	if len(s.cfg.API.CORSOrigins) > 0 {
		origins = s.cfg.API.CORSOrigins
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID", "Content-Disposition"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Post("/analyze", s.handleAnalyze)
		r.Post("/narrate", s.handleNarrate)
		r.Get("/topics", s.handleTopics)
	})

	return r
}

// ============================================================
// Request / Response types
// ============================================================

// APIResponse is the standard JSON envelope.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Stage   string      `json:"stage,omitempty"` // failed pipeline stage: "fetch", "aggregate", "narrate"
}

// AnalyzeRequest is the body for POST /api/v1/analyze and /api/v1/narrate.
type AnalyzeRequest struct {
	Company string `json:"company"`
}

// AnalyzeResult pairs the structured report with its localized summary.
type AnalyzeResult struct {
	Report        *models.Report `json:"report"`
	Summary       string         `json:"summary"`
	AudioFileName string         `json:"audio_filename"`
}

// ============================================================
// Handlers
// ============================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: map[string]string{
			"status":  "ok",
			"service": "newsense",
		},
	})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	company, ok := decodeCompany(w, r)
	if !ok {
		return
	}

	rep, err := s.generator.Generate(r.Context(), company)
	if err != nil {
		writeGenerateError(w, company, err)
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: AnalyzeResult{
			Report:        rep,
			Summary:       report.Summarize(rep),
			AudioFileName: speech.AudioFileName(company),
		},
	})
}

// handleNarrate re-runs the pipeline for the company and streams the
// synthesized MP3. Runs are independent; nothing is cached between calls.
func (s *Server) handleNarrate(w http.ResponseWriter, r *http.Request) {
	company, ok := decodeCompany(w, r)
	if !ok {
		return
	}

	rep, err := s.generator.Generate(r.Context(), company)
	if err != nil {
		writeGenerateError(w, company, err)
		return
	}

	summary := report.Summarize(rep)
	audio, err := s.narrator.Synthesize(summary)
	if err != nil {
		// The report itself was fine; only narration failed.
		slog.Error("narration failed", "company", company, "error", err)
		writeStageError(w, http.StatusInternalServerError, "narrate", err.Error())
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", speech.AudioFileName(company)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(audio); err != nil {
		slog.Error("failed to write audio response", "error", err)
	}
}

func (s *Server) handleTopics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    topics.Table(),
	})
}

// ============================================================
// Helpers
// ============================================================

// decodeCompany parses the request body and extracts a non-empty company
// name, writing the error response itself when validation fails.
func decodeCompany(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return "", false
	}
	company := strings.TrimSpace(req.Company)
	if company == "" {
		writeError(w, http.StatusBadRequest, "company is required")
		return "", false
	}
	return company, true
}

// writeGenerateError maps pipeline errors to responses: the empty-result
// sentinel is a user-visible "no data" outcome, everything else is a fetch
// failure.
func writeGenerateError(w http.ResponseWriter, company string, err error) {
	if errors.Is(err, report.ErrNoArticles) {
		writeStageError(w, http.StatusNotFound, "aggregate",
			fmt.Sprintf("no news found for %q", company))
		return
	}
	slog.Error("fetch failed", "company", company, "error", err)
	writeStageError(w, http.StatusBadGateway, "fetch", err.Error())
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write JSON response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, APIResponse{
		Success: false,
		Error:   msg,
	})
}

func writeStageError(w http.ResponseWriter, status int, stage, msg string) {
	writeJSON(w, status, APIResponse{
		Success: false,
		Error:   msg,
		Stage:   stage,
	})
}

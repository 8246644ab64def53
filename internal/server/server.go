// Package server provides the HTTP REST API for the CareerPilot backend.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/careerpilot/backend/internal/pipeline"
	"github.com/careerpilot/backend/internal/score"
	"github.com/careerpilot/backend/internal/tutor"
)

// PipelineRunner runs the resume-to-jobs aggregation pipeline.
type PipelineRunner interface {
	Run(ctx context.Context, document []byte, f pipeline.Filters) (*pipeline.Result, error)
}

// TextExtractor converts an uploaded document into plain text.
type TextExtractor interface {
	ExtractText(data []byte) (string, error)
}

// ResumeScorer evaluates a resume against a job description.
type ResumeScorer interface {
	Score(ctx context.Context, resumeText, jobDescription string) (*score.Evaluation, error)
}

// VideoSearcher searches YouTube for tutorial videos.
type VideoSearcher interface {
	SearchVideos(ctx context.Context, query string) ([]tutor.Video, error)
}

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	runner     PipelineRunner
	extractor  TextExtractor
	scorer     ResumeScorer
	tutor      VideoSearcher
}

// Config holds server configuration.
type Config struct {
	Port int
}

// Deps holds the long-lived collaborators, constructed once at process
// start and injected here so every handler is mockable.
type Deps struct {
	Runner    PipelineRunner
	Extractor TextExtractor
	Scorer    ResumeScorer
	Tutor     VideoSearcher
}

// New creates a new server instance.
func New(cfg Config, deps Deps) *Server {
	s := &Server{
		runner:    deps.Runner,
		extractor: deps.Extractor,
		scorer:    deps.Scorer,
		tutor:     deps.Tutor,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /upload_resume/{$}", s.handleUploadResume)
	mux.HandleFunc("POST /resume_score", s.handleResumeScore)
	mux.HandleFunc("GET /youtube_videos", s.handleYouTubeVideos)
	mux.HandleFunc("GET /recommended_videos", s.handleRecommendedVideos)
	mux.HandleFunc("GET /recommended_courses", s.handleRecommendedCourses)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // LLM and provider calls can be slow
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler exposes the configured handler chain. Used by tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

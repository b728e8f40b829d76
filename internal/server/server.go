// Package server provides the HTTP REST API for the resume builder.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/ai"
	"github.com/jonathan/resume-builder/internal/generator"
	"github.com/jonathan/resume-builder/internal/server/ratelimit"
	"github.com/jonathan/resume-builder/internal/types"
)

// DocumentGenerator produces a PDF document for a template and resume.
type DocumentGenerator interface {
	Generate(ctx context.Context, templateID string, raw *types.ResumeData) (*generator.Document, error)
}

// Server represents the HTTP server.
type Server struct {
	httpServer  *http.Server
	generator   DocumentGenerator
	optimizer   ai.Optimizer // nil disables the optimize route's AI pass
	rateLimiter *ratelimit.Limiter
	corsOrigin  string
}

// Config holds server configuration.
type Config struct {
	Port               int
	CORSOrigin         string
	RateLimitPerMinute int
}

// New creates a new server instance. optimizer may be nil, in which
// case the optimize-and-download route serves un-optimized documents.
func New(cfg Config, gen DocumentGenerator, optimizer ai.Optimizer) *Server {
	s := &Server{
		generator:   gen,
		optimizer:   optimizer,
		rateLimiter: ratelimit.NewLimiter(cfg.RateLimitPerMinute),
		corsOrigin:  cfg.CORSOrigin,
	}
	if s.corsOrigin == "" {
		s.corsOrigin = "*"
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // compile + fallback can take a while
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler builds the routed handler with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/resume/download", s.handleDownload)
	mux.HandleFunc("POST /api/resume/optimize-and-download", s.handleOptimizeAndDownload)

	mux.HandleFunc("POST /api/ats/score", s.handleATSScore)

	mux.HandleFunc("GET /api/templates", s.handleListTemplates)
	mux.HandleFunc("GET /api/templates/{id}", s.handleGetTemplate)
	// "GET /api/templates/{id}/content" and
	// "GET /api/templates/category/{category}" are conflicting ServeMux
	// patterns (both match /api/templates/category/content, neither is
	// more specific), so registering them separately panics. A single
	// registration dispatches between the two handlers instead.
	mux.HandleFunc("GET /api/templates/{first}/{second}", func(w http.ResponseWriter, r *http.Request) {
		first, second := r.PathValue("first"), r.PathValue("second")
		switch {
		case first == "category":
			r.SetPathValue("category", second)
			s.handleTemplatesByCategory(w, r)
		case second == "content":
			r.SetPathValue("id", first)
			s.handleTemplateContent(w, r)
		default:
			http.NotFound(w, r)
		}
	})

	mux.HandleFunc("GET /health", s.handleHealth)

	// CORS is outermost so even rejected requests (429s included)
	// carry the headers browsers need to read the error body.
	return s.withCORS(s.withLogging(s.withRateLimit(mux)))
}

// Start begins listening and blocks until SIGINT/SIGTERM, then drains.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("[SERVER] listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[SERVER] error: %v", err)
		}
	}()

	<-stop
	log.Println("[SERVER] shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if s.optimizer != nil {
		if err := s.optimizer.Close(); err != nil {
			log.Printf("[SERVER] optimizer close: %v", err)
		}
	}

	log.Println("[SERVER] stopped")
	return nil
}

// withCORS adds CORS headers and short-circuits preflight requests.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.corsOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit rejects clients exceeding the per-minute budget.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID)
		setRateLimitHeaders(w, info)
		if !allowed {
			w.Header().Set("Retry-After", fmt.Sprintf("%.0f", info.RetryAfter.Seconds()))
			s.jsonResponse(w, http.StatusTooManyRequests, map[string]any{
				"error":       "rate_limit_exceeded",
				"retry_after": info.RetryAfter.Seconds(),
			})
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging tags each request with an id and logs its duration.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()[:8]
		start := time.Now()
		log.Printf("[SERVER] %s %s %s from %s", requestID, r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[SERVER] %s %s %s completed in %v", requestID, r.Method, r.URL.Path, time.Since(start))
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
		log.Printf("[SERVER] error encoding JSON response: %v", err)
	}
}

// errorResponse writes the typed error as a JSON body with the mapped
// status code.
func (s *Server) errorResponse(w http.ResponseWriter, err error) {
	body := map[string]any{"error": err.Error()}
	if details := errorDetails(err); details != "" {
		body["details"] = details
	}
	s.jsonResponse(w, HTTPStatus(err), body)
}

// extractClientID derives the client identifier from the request.
// RemoteAddr is "IP:port"; the IP alone identifies the client.
func extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

func setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// Package server provides the HTTP API server for threadsplit
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/shivavenkatesh/threadsplit/internal/logger"
	"github.com/shivavenkatesh/threadsplit/internal/thread"
	"github.com/shivavenkatesh/threadsplit/pkg/types"
)

// Version is reported by the health endpoint
const Version = "0.1.0"

// maxBodyBytes caps request bodies
const maxBodyBytes = 4 << 20

// Server is the HTTP API server
type Server struct {
	svc    thread.Service
	config Config
	log    logger.Logger
	server *http.Server
}

// Config configures the server
type Config struct {
	Host    string
	Port    int
	Timeout time.Duration
}

// New creates a new server
func New(svc thread.Service, cfg Config, log logger.Logger) *Server {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if log == nil {
		log = logger.GetDefault()
	}
	return &Server{
		svc:    svc,
		config: cfg,
		log:    log,
	}
}

// Handler returns the routed API handler
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)
	r.Use(corsMiddleware)

	r.Post("/split", s.handleSplit)
	r.Post("/stats", s.handleStats)
	r.Post("/export", s.handleExport)
	r.Post("/validate", s.handleValidate)
	r.Get("/health", s.handleHealth)

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
	})

	return r
}

// Start starts the HTTP server and blocks until it stops
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", s.config.Host, s.config.Port),
		Handler:      s.Handler(),
		ReadTimeout:  s.config.Timeout,
		WriteTimeout: s.config.Timeout,
		IdleTimeout:  2 * s.config.Timeout,
	}

	s.log.Info("server listening", "addr", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown() error {
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// requestLogger logs each request and hands a request-scoped logger down the context
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		log := s.log.With("request_id", middleware.GetReqID(r.Context()))

		next.ServeHTTP(ww, r.WithContext(logger.ContextWithLogger(r.Context(), log)))

		log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Microsecond),
		)
	})
}

// corsMiddleware adds CORS headers for browser clients
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// handleSplit handles POST /split
func (s *Server) handleSplit(w http.ResponseWriter, r *http.Request) {
	var req types.SplitRequest
	if !decode(w, r, &req) {
		return
	}

	resp, err := s.svc.Split(r.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, thread.ErrEmptyText) {
			status = http.StatusBadRequest
		}
		writeError(w, err.Error(), status)
		return
	}

	if resp.Warnings == nil {
		resp.Warnings = []string{}
	}
	writeJSON(w, resp, http.StatusOK)
}

// handleStats handles POST /stats
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	var req types.ThreadRequest
	if !decode(w, r, &req) {
		return
	}

	stats := s.svc.Stats(req.Tweets)
	if stats == nil {
		writeJSON(w, map[string]any{}, http.StatusOK)
		return
	}
	writeJSON(w, stats, http.StatusOK)
}

// handleExport handles POST /export
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var req types.ExportRequest
	if !decode(w, r, &req) {
		return
	}

	writeJSON(w, types.ExportResponse{Text: s.svc.Export(req)}, http.StatusOK)
}

// handleValidate handles POST /validate
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req types.ThreadRequest
	if !decode(w, r, &req) {
		return
	}

	writeJSON(w, s.svc.Validate(req.Tweets), http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok", "version": Version}, http.StatusOK)
}

// decode reads a JSON body into v, writing a 400 on failure
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, data any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes an error response
func writeError(w http.ResponseWriter, message string, status int) {
	writeJSON(w, map[string]string{"error": message}, status)
}

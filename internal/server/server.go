package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jonathan/writing-highlighter/internal/annotation"
	"github.com/jonathan/writing-highlighter/internal/config"
	"github.com/jonathan/writing-highlighter/internal/highlights"
	"github.com/jonathan/writing-highlighter/internal/logging"
	"github.com/jonathan/writing-highlighter/internal/observability"
	"github.com/jonathan/writing-highlighter/internal/server/middleware"
	"github.com/jonathan/writing-highlighter/internal/server/ratelimit"
	"github.com/jonathan/writing-highlighter/internal/types"
)

// maxBodyBytes caps request bodies
const maxBodyBytes = 4 << 20

// AnnotationArchive keeps rendered annotations per writing sample. *db.DB implements it.
type AnnotationArchive interface {
	SaveAnnotation(ctx context.Context, ann *types.AnnotateResponse) error
	GetAnnotation(ctx context.Context, writingID string) (*types.AnnotateResponse, error)
}

// Config holds server dependencies. Only Annotator is required.
type Config struct {
	Port       int
	Annotator  *annotation.Annotator
	Highlights highlights.Store  // nil selects an in-memory store
	Archive    AnnotationArchive // nil disables saving annotations
	Metrics    *observability.Metrics
	Gatherer   prometheus.Gatherer // source for GET /metrics; nil disables the route
	Logger     logging.Logger
	RateLimit  *ratelimit.Config // nil reads RATE_LIMIT_* from the environment
	JWT        *config.JWTConfig // nil disables authentication
	// Closers run after shutdown, e.g. database pools.
	Closers []func()
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	annotator   *annotation.Annotator
	highlights  highlights.Store
	archive     AnnotationArchive
	metrics     *observability.Metrics
	logger      logging.Logger
	rateLimiter *ratelimit.Limiter
	closers     []func()
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	if cfg.Annotator == nil {
		return nil, fmt.Errorf("server requires an annotator")
	}

	s := &Server{
		annotator:  cfg.Annotator,
		highlights: cfg.Highlights,
		archive:    cfg.Archive,
		metrics:    cfg.Metrics,
		logger:     cfg.Logger,
		closers:    cfg.Closers,
	}
	if s.highlights == nil {
		s.highlights = highlights.NewMemoryStore()
	}
	if s.logger == nil {
		s.logger = logging.NewNop()
	}
	s.logger = s.logger.Named("server")

	rlConfig := cfg.RateLimit
	if rlConfig == nil {
		rlConfig = ratelimit.LoadConfig()
	}
	s.rateLimiter = ratelimit.NewLimiter(rlConfig)

	// protect wraps routes that require a bearer token when auth is enabled
	protect := func(h http.HandlerFunc) http.Handler { return h }
	if cfg.JWT != nil {
		auth := middleware.AuthMiddleware(NewJWTService(cfg.JWT).AsTokenValidator())
		protect = func(h http.HandlerFunc) http.Handler { return auth(h) }
	}

	mux := http.NewServeMux()
	mux.Handle("POST /annotate", protect(s.handleAnnotate))
	mux.Handle("GET /writings/{id}/highlights", protect(s.handleGetHighlights))
	mux.Handle("PUT /writings/{id}/highlights", protect(s.handlePutHighlights))
	mux.Handle("GET /writings/{id}/annotation", protect(s.handleGetAnnotation))
	mux.HandleFunc("GET /health", s.handleHealth)
	if cfg.Gatherer != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler returns the root handler with all middleware applied.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start listens until SIGINT or SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", logging.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-stop:
	case err := <-errCh:
		s.close()
		return fmt.Errorf("server error: %w", err)
	}
	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.close()
	s.logger.Info("server stopped")
	return nil
}

func (s *Server) close() {
	s.rateLimiter.Stop()
	for _, c := range s.closers {
		c()
	}
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit rejects clients over their limit with 429
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.rateLimiter.Allow(s.extractClientID(r), r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, r, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the status code written by a handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withLogging logs each request and records HTTP metrics
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		elapsed := time.Since(start)
		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		s.metrics.ObserveHTTP(r.Method, route, rec.status, elapsed)
		s.logger.Info("request",
			logging.String("method", r.Method),
			logging.String("path", r.URL.Path),
			logging.Int("status", rec.status),
			logging.String("remote", r.RemoteAddr),
			logging.Duration("elapsed", elapsed),
		)
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("failed to encode JSON response", logging.Err(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// failure maps err to a status and writes it. Server errors are logged, not echoed.
func (s *Server) failure(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable {
		s.logger.Error("request failed", logging.String("path", r.URL.Path), logging.Err(err))
		s.errorResponse(w, status, "internal server error")
		return
	}
	s.errorResponse(w, status, err.Error())
}

// extractClientID uses the IP address from RemoteAddr.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, r *http.Request, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
	}
	if !info.ResetTime.IsZero() {
		response["reset_at"] = info.ResetTime.Format(time.RFC3339)
	}
	if info.RetryAfter > 0 {
		seconds := max(int(info.RetryAfter.Seconds()), 1)
		response["retry_after"] = seconds
		w.Header().Set("Retry-After", strconv.Itoa(seconds))
	}

	s.logger.Warn("rate limit exceeded",
		logging.String("client", s.extractClientID(r)),
		logging.String("path", r.URL.Path),
		logging.Int("limit", info.Limit),
	)
	s.jsonResponse(w, http.StatusTooManyRequests, response)
}

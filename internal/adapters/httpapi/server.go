package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/kamal-hamza/gallery/internal/core/ports"
)

// Options configures the HTTP server
type Options struct {
	Addr      string
	AssetRoot string  // Served as static files at "/"
	RateLimit float64 // Requests per second per client IP on /api/, 0 disables
	RateBurst int

	// TrustProxy keys the rate limiter on the first X-Forwarded-For hop
	// instead of the connection address
	TrustProxy bool
}

// Server exposes the catalog over HTTP and serves the asset files themselves
type Server struct {
	opts    Options
	catalog ports.CatalogSource
	logger  *slog.Logger
	limiter *ipRateLimiter
	mux     *http.ServeMux
}

func New(catalog ports.CatalogSource, opts Options, logger *slog.Logger) *Server {
	s := &Server{
		opts:    opts,
		catalog: catalog,
		logger:  logger.With("component", "http"),
		mux:     http.NewServeMux(),
	}
	if opts.RateLimit > 0 {
		s.limiter = newIPRateLimiter(opts.RateLimit, opts.RateBurst)
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.Handle("/api/images", s.api(s.imagesHandler))
	s.mux.Handle("/api/categories", s.api(s.categoriesHandler))
	s.mux.HandleFunc("/healthz", s.healthHandler)
	if s.opts.AssetRoot != "" {
		s.mux.Handle("/", staticHandler(s.opts.AssetRoot))
	}
}

// api wraps a catalog endpoint in the per-client limiter. Asset files
// and /healthz are never limited.
func (s *Server) api(h http.HandlerFunc) http.Handler {
	if s.limiter == nil {
		return h
	}
	return s.rateLimitMiddleware(h)
}

// Handler returns the fully wrapped handler tree
func (s *Server) Handler() http.Handler {
	h := s.loggingMiddleware(s.mux)
	h = requestIDMiddleware(h)
	return h
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if s.limiter != nil {
		go s.limiter.start()
		defer s.limiter.stop()
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.opts.Addr, "root", s.opts.AssetRoot)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}

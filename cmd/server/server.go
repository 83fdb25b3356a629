package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"codeberg.org/wepoker/server/internal/config"
	"codeberg.org/wepoker/server/internal/logger"
	"codeberg.org/wepoker/server/internal/middleware"
	"codeberg.org/wepoker/server/internal/static"
	"github.com/gin-gonic/gin"
)

const (
	readTimeout     = 15 * time.Second
	writeTimeout    = 15 * time.Second
	idleTimeout     = 60 * time.Second
	shutdownTimeout = 10 * time.Second
)

// creates and configures a new server instance from cfg alone
func NewServer(cfg *config.Config) (*Server, error) {
	assets, err := static.New(cfg.StaticDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open static assets: %w", err)
	}

	if !assets.Exists() {
		logger.Warn("static directory does not exist yet", "static_dir", cfg.StaticDir)
	}

	var limiter *middleware.RateLimiter
	if cfg.RateLimit != "" {
		limiter, err = middleware.NewRateLimiter(middleware.RateLimitConfig{
			Rate:        cfg.RateLimit,
			RedisURL:    cfg.RedisURL,
			ExemptPaths: []string{healthPath},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize rate limiter: %w", err)
		}

		logger.Info("rate limiter initialized",
			"rate", cfg.RateLimit,
			"redis", cfg.RedisURL != "",
		)
	}

	router := gin.New()

	// unmatched paths and methods both fall through to the static handler
	router.RedirectTrailingSlash = false
	router.HandleMethodNotAllowed = false

	// nil trusts nobody, so ClientIP is the socket peer unless proxies are configured
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}

	server := &Server{
		config:  cfg,
		assets:  assets,
		limiter: limiter,
		router:  router,
	}

	RegisterRoutes(router, server)

	return server, nil
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// binds the configured address, serves until ctx is cancelled, then drains.
// bind failures are returned before anything is served.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Addr())
	if err != nil {
		return fmt.Errorf("failed to bind %s: %w", s.config.Addr(), err)
	}

	return s.Serve(ctx, ln)
}

func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	httpServer := &http.Server{
		Handler:      s.router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	serveErr := make(chan error, 1)

	go func() {
		logger.Info("server listening",
			"addr", ln.Addr().String(),
			"static_dir", s.assets.Dir(),
		)

		serveErr <- httpServer.Serve(ln)
	}()

	select {
	case err := <-serveErr:
		s.close()
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := httpServer.Shutdown(shutdownCtx)

	if serr := <-serveErr; serr != nil && !errors.Is(serr, http.ErrServerClosed) {
		logger.ErrorErr(serr, "server stopped with error")
	}

	s.close()

	if err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Info("server stopped")

	return nil
}

func (s *Server) close() {
	if s.limiter != nil {
		s.limiter.Close() //nolint:errcheck,gosec // best-effort cleanup on shutdown
	}
}

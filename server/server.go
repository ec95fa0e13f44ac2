package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/kwfeed/pkg/domain"
	"github.com/umputun/kwfeed/pkg/feed"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/feeds.go -pkg mocks -skip-ensure -fmt goimports . FeedService

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	feeds     FeedService
	generator *feed.Generator
	version   string
	debug     bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// FeedService builds feeds for the routes
type FeedService interface {
	Comments(ctx context.Context, keyword string) (domain.Feed, error)
	CachedComments(ctx context.Context, ttl time.Duration, keyword string) (domain.Feed, error)
	Videos(ctx context.Context, ttl time.Duration, keyword string) (domain.Feed, error)
	Study(ctx context.Context, ttl time.Duration, keyword string) (domain.Feed, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetBaseURL() string
	TTLBounds() (defaultTTL, minTTL time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, feeds FeedService, version string, debug bool) *Server {
	s := &Server{
		config:    cfg,
		feeds:     feeds,
		generator: feed.NewGenerator(),
		version:   version,
		debug:     debug,
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("kwfeed", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(64 * 1024)) // feeds are GET only
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
	})

	// feed routes, ttl is in seconds
	s.router.HandleFunc("GET /comments/{keyword}", s.feedHandler(false, func(ctx context.Context, _ time.Duration, kw string) (domain.Feed, error) {
		return s.feeds.Comments(ctx, kw)
	}))
	s.router.HandleFunc("GET /comments/{ttl}/{keyword}", s.feedHandler(true, func(ctx context.Context, ttl time.Duration, kw string) (domain.Feed, error) {
		return s.feeds.CachedComments(ctx, ttl, kw)
	}))
	s.router.HandleFunc("GET /videos/{ttl}/{keyword}", s.feedHandler(true, func(ctx context.Context, ttl time.Duration, kw string) (domain.Feed, error) {
		return s.feeds.Videos(ctx, ttl, kw)
	}))
	s.router.HandleFunc("GET /study/{ttl}/{keyword}", s.feedHandler(true, func(ctx context.Context, ttl time.Duration, kw string) (domain.Feed, error) {
		return s.feeds.Study(ctx, ttl, kw)
	}))
}

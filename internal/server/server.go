package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"citylaw/internal/logger"
	"citylaw/internal/metrics"
	"citylaw/internal/services/pages"
	"citylaw/internal/services/sitemap"
)

const shutdownTimeout = 5 * time.Second

// Deps are the collaborators of a Server.
type Deps struct {
	Pages   *pages.Service
	Sitemap *sitemap.Generator
	BaseURL string
	Logger  *logger.Logger
	Metrics *metrics.Metrics
}

// Server serves the site over HTTP.
type Server struct {
	deps   Deps
	engine *gin.Engine
	now    func() time.Time
}

// New builds the router.
func New(deps Deps) *Server {
	if deps.Logger == nil {
		deps.Logger = logger.NewNop()
	}
	s := &Server{deps: deps, engine: gin.New(), now: time.Now}
	s.routes()
	return s
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler { return s.engine }

func (s *Server) routes() {
	r := s.engine
	r.Use(gin.Recovery())
	r.Use(RequestLogger(s.deps.Logger))
	r.Use(Metrics(s.deps.Metrics))

	r.GET("/healthcheck", s.healthCheck)
	r.GET("/metrics", gin.WrapH(s.deps.Metrics.Handler()))
	r.GET("/sitemap.xml", s.sitemap)
	r.GET("/robots.txt", s.robots)

	r.GET("/", s.home)
	r.GET("/dui-lawyer", s.hub)
	r.GET("/dui-lawyer/:city", s.city)
	r.GET("/clusters/:cluster", s.cluster)
	r.GET("/contact", s.static)
	r.GET("/editorial-policy", s.static)
	r.GET("/sponsorship-disclosure", s.static)

	r.NoRoute(s.notFound)
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.deps.Logger.Info("preview server listening", "addr", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

package app

import (
	"context"
	"fmt"
	"path/filepath"

	"citylaw/internal/domain"
	"citylaw/internal/logger"
	"citylaw/internal/metrics"
	"citylaw/internal/render"
	"citylaw/internal/server"
	buildsvc "citylaw/internal/services/build"
	checksvc "citylaw/internal/services/check"
	pagesvc "citylaw/internal/services/pages"
	routesvc "citylaw/internal/services/routes"
	sitemapsvc "citylaw/internal/services/sitemap"
	"citylaw/internal/store"
	"citylaw/internal/watch"
)

// Wire bundles all stores, services and servers for the CLI.
type Wire struct {
	Config  *Config
	Log     *logger.Logger
	Metrics *metrics.Metrics

	Cities   domain.CityStore
	Clusters domain.ClusterStore
	Output   domain.OutputStore

	Routes  *routesvc.Enumerator
	Pages   *pagesvc.Service
	Sitemap *sitemapsvc.Generator
	Checker *checksvc.Checker
	Builder *buildsvc.Builder
	Server  *server.Server

	dataDirs []string
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg *Config) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Log.Mode, cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	m := metrics.New()

	// File-based stores
	cityStore := store.NewCityFileStore(cfg.Data.Dir)
	clusterStore := store.NewClusterFileStore(cfg.Data.Dir)
	outputStore := store.NewOutputFileStore(cfg.Build.OutDir)

	renderer, err := render.New(render.Site{
		Name:         cfg.Site.Name,
		BaseURL:      cfg.Site.BaseURL,
		ContactEmail: cfg.Site.ContactEmail,
	})
	if err != nil {
		return nil, err
	}

	// High-level services
	routes := routesvc.New(cityStore, clusterStore)
	pages := pagesvc.New(cityStore, clusterStore, renderer,
		pagesvc.WithLogger(log), pagesvc.WithMetrics(m))
	sitemap := sitemapsvc.New(cfg.Site.BaseURL, cityStore)
	checker := checksvc.New(cityStore, clusterStore, log, m)
	builder := buildsvc.New(buildsvc.Deps{
		Checker: checker,
		Routes:  routes,
		Pages:   pages,
		Sitemap: sitemap,
		Output:  outputStore,
		Logger:  log,
		Metrics: m,
	}, cfg.Site.BaseURL, buildsvc.WithWorkers(cfg.Build.Workers))

	srv := server.New(server.Deps{
		Pages:   pages,
		Sitemap: sitemap,
		BaseURL: cfg.Site.BaseURL,
		Logger:  log,
		Metrics: m,
	})

	return &Wire{
		Config:   cfg,
		Log:      log,
		Metrics:  m,
		Cities:   cityStore,
		Clusters: clusterStore,
		Output:   outputStore,
		Routes:   routes,
		Pages:    pages,
		Sitemap:  sitemap,
		Checker:  checker,
		Builder:  builder,
		Server:   srv,
		dataDirs: []string{cityStore.Dir(), clusterStore.Dir()},
	}, nil
}

// NewWatcher returns a watcher over the data pack directories calling
// onChange after every burst of edits.
func (w *Wire) NewWatcher(onChange func(context.Context) error) *watch.Watcher {
	return watch.New(w.dataDirs, onChange, watch.WithLogger(w.Log))
}

// DataDir returns the absolute data directory, for messages.
func (w *Wire) DataDir() string {
	if abs, err := filepath.Abs(w.Config.Data.Dir); err == nil {
		return abs
	}
	return w.Config.Data.Dir
}

// Close flushes the logger.
func (w *Wire) Close() {
	w.Log.Sync()
}

package build

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"citylaw/internal/digest"
	"citylaw/internal/domain"
	"citylaw/internal/logger"
	"citylaw/internal/metrics"
	"citylaw/internal/services/check"
	"citylaw/internal/services/pages"
	"citylaw/internal/services/routes"
	"citylaw/internal/services/sitemap"
)

// ManifestFile is the name of the manifest written at the output root.
const ManifestFile = "build-manifest.json"

// Manifest describes one finished build.
type Manifest struct {
	BuildID     string       `json:"build_id"`
	GeneratedAt time.Time    `json:"generated_at"`
	Pages       []PageRecord `json:"pages"`
}

// PageRecord is one file written by a build.
type PageRecord struct {
	Route       string `json:"route,omitempty"`
	Path        string `json:"path"`
	Fingerprint string `json:"fingerprint"`
	Bytes       int    `json:"bytes"`
}

// Deps are the collaborators of a Builder.
type Deps struct {
	Checker *check.Checker
	Routes  *routes.Enumerator
	Pages   *pages.Service
	Sitemap *sitemap.Generator
	Output  domain.OutputStore
	Logger  *logger.Logger
	Metrics *metrics.Metrics
}

// Builder renders the site into its output store.
type Builder struct {
	deps    Deps
	baseURL string
	workers int
	now     func() time.Time
	newID   func() string
}

// Option configures a Builder.
type Option func(*Builder)

// WithWorkers bounds the number of pages rendered at once.
func WithWorkers(n int) Option {
	return func(b *Builder) {
		if n > 0 {
			b.workers = n
		}
	}
}

// WithClock overrides the build timestamp source.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) { b.now = now }
}

// New returns a Builder publishing under baseURL.
func New(deps Deps, baseURL string, opts ...Option) *Builder {
	if deps.Logger == nil {
		deps.Logger = logger.NewNop()
	}
	b := &Builder{
		deps:    deps,
		baseURL: baseURL,
		workers: runtime.GOMAXPROCS(0),
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build runs one complete build.
func (b *Builder) Build(ctx context.Context) (m Manifest, err error) {
	started := b.now()
	m = Manifest{BuildID: b.newID(), GeneratedAt: started.UTC()}
	log := b.deps.Logger.With("build_id", m.BuildID)
	defer func() {
		elapsed := b.now().Sub(started)
		b.deps.Metrics.ObserveBuild(elapsed, err)
		if err != nil {
			log.Error("build failed", "error", err)
			return
		}
		log.Info("build finished", "pages", len(m.Pages), "out", b.deps.Output.Root(), "elapsed", elapsed.String())
	}()

	report, err := b.deps.Checker.Run(ctx)
	if err != nil {
		return m, err
	}
	if !report.OK() {
		return m, fmt.Errorf("inventory check failed: %w", report.Err())
	}

	rts, err := b.deps.Routes.Enumerate()
	if err != nil {
		return m, err
	}
	if err := b.deps.Output.Stage(); err != nil {
		return m, fmt.Errorf("stage output: %w", err)
	}
	defer func() {
		if err != nil {
			if derr := b.deps.Output.Discard(); derr != nil {
				log.Warn("discard staged output", "error", derr)
			}
		}
	}()
	log.Debug("rendering routes", "routes", len(rts), "workers", b.workers)

	records := make([]PageRecord, len(rts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)
	for i, r := range rts {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			page, err := b.deps.Pages.Render(r)
			if err != nil {
				return fmt.Errorf("build %s: %w", r.Path, err)
			}
			rec, err := b.write(r.File(), page)
			if err != nil {
				return err
			}
			rec.Route = r.Path
			records[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return m, err
	}
	m.Pages = records

	notFound, err := b.deps.Pages.NotFound()
	if err != nil {
		return m, fmt.Errorf("build 404: %w", err)
	}
	entries, err := b.deps.Sitemap.Generate(started)
	if err != nil {
		return m, fmt.Errorf("build sitemap: %w", err)
	}
	sm, err := sitemap.Marshal(entries)
	if err != nil {
		return m, err
	}

	for _, f := range []struct {
		path string
		body []byte
	}{
		{"404.html", notFound},
		{"sitemap.xml", sm},
		{"robots.txt", []byte(sitemap.Robots(b.baseURL))},
	} {
		rec, err := b.write(f.path, f.body)
		if err != nil {
			return m, err
		}
		m.Pages = append(m.Pages, rec)
	}

	if err := b.deps.Output.WriteJSON(ManifestFile, m); err != nil {
		return m, fmt.Errorf("write manifest: %w", err)
	}
	if err := b.deps.Output.Commit(); err != nil {
		return m, err
	}
	return m, nil
}

func (b *Builder) write(rel string, body []byte) (PageRecord, error) {
	if err := b.deps.Output.WriteFile(rel, body); err != nil {
		return PageRecord{}, fmt.Errorf("write %s: %w", rel, err)
	}
	return PageRecord{Path: rel, Fingerprint: digest.Fingerprint(body), Bytes: len(body)}, nil
}

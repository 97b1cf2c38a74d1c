package watch

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"citylaw/internal/logger"
)

const (
	defaultDebounce = 300 * time.Millisecond
	tick            = 50 * time.Millisecond
)

// Stats counts watcher activity.
type Stats struct {
	Events    int
	Runs      int
	Failures  int
	LastError string
}

// Watcher calls OnChange after data pack files change.
type Watcher struct {
	dirs     []string
	onChange func(context.Context) error
	debounce time.Duration
	log      *logger.Logger

	mu      sync.Mutex
	pending bool
	last    time.Time
	stats   Stats
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period before OnChange runs.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the logger for watch events.
func WithLogger(l *logger.Logger) Option {
	return func(w *Watcher) { w.log = l }
}

// New returns a Watcher over dirs calling onChange.
func New(dirs []string, onChange func(context.Context) error, opts ...Option) *Watcher {
	w := &Watcher{
		dirs:     dirs,
		onChange: onChange,
		debounce: defaultDebounce,
		log:      logger.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Stats returns a snapshot of the watcher counters.
func (w *Watcher) Stats() Stats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stats
}

// Run watches until ctx is cancelled. Callback failures are logged and
// counted; they do not stop the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	watched := 0
	for _, dir := range w.dirs {
		if _, err := os.Stat(dir); err != nil {
			w.log.Warn("watch: skipping directory", "dir", dir, "error", err)
			continue
		}
		if err := fw.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		watched++
		w.log.Info("watching directory", "dir", dir)
	}
	if watched == 0 {
		return fmt.Errorf("watch: none of %s exist", strings.Join(w.dirs, ", "))
	}

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			w.handle(ev)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Error("watch error", "error", err)

		case <-ticker.C:
			if w.due() {
				w.fire(ctx)
			}
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	if !strings.HasSuffix(ev.Name, ".json") {
		return
	}
	if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
		return
	}
	w.log.Debug("pack changed", "path", ev.Name, "op", ev.Op.String())

	w.mu.Lock()
	w.pending = true
	w.last = time.Now()
	w.stats.Events++
	w.mu.Unlock()
}

func (w *Watcher) due() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.pending || time.Since(w.last) < w.debounce {
		return false
	}
	w.pending = false
	return true
}

func (w *Watcher) fire(ctx context.Context) {
	err := w.onChange(ctx)

	w.mu.Lock()
	w.stats.Runs++
	if err != nil {
		w.stats.Failures++
		w.stats.LastError = err.Error()
	}
	w.mu.Unlock()

	if err != nil {
		w.log.Error("rebuild failed", "error", err)
		return
	}
	w.log.Info("rebuilt after change")
}

package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long a granule must stay quiet before it is handled.
const DefaultDebounce = 500 * time.Millisecond

// Handler processes one settled granule file.
type Handler func(path string) error

// Watcher watches a directory for incoming granule CSVs.
type Watcher struct {
	dir      string
	debounce time.Duration
	handler  Handler
	logger   *slog.Logger

	watcher *fsnotify.Watcher

	pendingMu sync.Mutex
	pending   map[string]*time.Timer
}

// New builds a watcher over dir. A zero debounce falls back to
// DefaultDebounce; a nil logger falls back to slog.Default.
func New(dir string, debounce time.Duration, logger *slog.Logger, handler Handler) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Watcher{
		dir:      dir,
		debounce: debounce,
		handler:  handler,
		logger:   logger,
		watcher:  fsw,
		pending:  make(map[string]*time.Timer),
	}, nil
}

// Run processes events until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()
	defer w.stopPending()

	w.logger.Info("watching for granules", "dir", w.dir)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			// Renames carry the old name; the arriving granule shows up
			// as a Create for the new one.
			if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
				continue
			}
			if !HandlesPath(event.Name) {
				continue
			}
			w.schedule(event.Name)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watch error", "err", err)
		}
	}
}

// schedule (re)arms the debounce timer for a path.
func (w *Watcher) schedule(path string) {
	w.pendingMu.Lock()
	defer w.pendingMu.Unlock()

	if timer, ok := w.pending[path]; ok {
		timer.Reset(w.debounce)
		return
	}
	w.pending[path] = time.AfterFunc(w.debounce, func() {
		w.pendingMu.Lock()
		delete(w.pending, path)
		w.pendingMu.Unlock()

		w.logger.Info("processing granule", "path", path)
		if err := w.handler(path); err != nil {
			w.logger.Error("granule failed", "path", path, "err", err)
			return
		}
		w.logger.Info("granule done", "path", path)
	})
}

func (w *Watcher) stopPending() {
	w.pendingMu.Lock()
	defer w.pendingMu.Unlock()
	for path, timer := range w.pending {
		timer.Stop()
		delete(w.pending, path)
	}
}

// HandlesPath reports whether a path looks like a dataset granule: a CSV
// that is neither hidden nor a half-written temp file.
func HandlesPath(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") {
		return false
	}
	if strings.HasSuffix(base, ".tmp") {
		return false
	}
	return strings.EqualFold(filepath.Ext(base), ".csv")
}

package watcher

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/MKhiriev/case-sync/internal/logger"
	"github.com/MKhiriev/case-sync/internal/service"
	"github.com/MKhiriev/case-sync/internal/store"
	"github.com/fsnotify/fsnotify"
)

// DefaultSettle is how long the file must stay quiet before it is read.
const DefaultSettle = 250 * time.Millisecond

// MirrorWatcher watches the directory holding the mirror file. Editors
// usually save by writing a temp file and renaming it, so watching the file
// itself would lose track of it after the first save.
type MirrorWatcher struct {
	mirror  store.RecordMirror
	records service.CaseRecordService
	settle  time.Duration
	logger  *logger.Logger

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	timer   *time.Timer
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	running bool
}

func NewMirrorWatcher(mirror store.RecordMirror, records service.CaseRecordService, settle time.Duration, log *logger.Logger) *MirrorWatcher {
	if settle <= 0 {
		settle = DefaultSettle
	}
	return &MirrorWatcher{
		mirror:  mirror,
		records: records,
		settle:  settle,
		logger:  log,
	}
}

// Start begins watching. It returns an error if the directory cannot be
// watched or the watcher is already running.
func (w *MirrorWatcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return errors.New("mirror watcher already running")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	dir := filepath.Dir(w.mirror.Path())
	if err = fsw.Add(dir); err != nil {
		fsw.Close()
		return fmt.Errorf("failed to watch mirror directory %s: %w", dir, err)
	}

	loopCtx, cancel := context.WithCancel(ctx)
	w.watcher = fsw
	w.cancel = cancel
	w.running = true

	w.wg.Add(1)
	go w.processEvents(loopCtx, fsw)

	w.logger.Info().Str("func", "MirrorWatcher.Start").Str("path", w.mirror.Path()).Msg("watching mirror file")
	return nil
}

// Stop closes the watcher and waits for a pending import to finish.
func (w *MirrorWatcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.cancel()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	fsw := w.watcher
	w.mu.Unlock()

	if err := fsw.Close(); err != nil {
		w.logger.Warn().Err(err).Str("func", "MirrorWatcher.Stop").Msg("failed to close watcher")
	}
	w.wg.Wait()
}

func (w *MirrorWatcher) processEvents(ctx context.Context, fsw *fsnotify.Watcher) {
	defer w.wg.Done()

	target := filepath.Clean(w.mirror.Path())
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				w.schedule(ctx)
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn().Err(err).Str("func", "MirrorWatcher.processEvents").Msg("watch error")
		}
	}
}

// schedule coalesces a burst of events into one import.
func (w *MirrorWatcher) schedule(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return
	}
	if w.timer != nil {
		w.timer.Reset(w.settle)
		return
	}
	w.timer = time.AfterFunc(w.settle, func() {
		w.mu.Lock()
		if !w.running {
			w.mu.Unlock()
			return
		}
		w.wg.Add(1)
		w.mu.Unlock()
		defer w.wg.Done()

		if err := w.Import(ctx); err != nil {
			w.logger.Warn().Err(err).Str("func", "MirrorWatcher.schedule").Msg("mirror import failed")
		}
	})
}

// Import reads the mirror file and replaces the record with it when the
// content differs. The record's own lastModified is ignored for the
// comparison because the service stamps it on every write.
func (w *MirrorWatcher) Import(ctx context.Context) error {
	fromFile, err := w.mirror.ReadRecord(ctx)
	if errors.Is(err, store.ErrMirrorNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read mirror: %w", err)
	}

	current, err := w.records.Get(ctx)
	if err != nil {
		return fmt.Errorf("read record: %w", err)
	}

	fromFile.LastModified = current.LastModified
	if fromFile.Equal(current) {
		return nil
	}

	if _, err = w.records.Replace(ctx, fromFile); err != nil {
		return fmt.Errorf("import mirror: %w", err)
	}
	w.logger.Info().Str("func", "MirrorWatcher.Import").Int("items", fromFile.Size()).Msg("imported external mirror edit")
	return nil
}

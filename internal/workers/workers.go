package workers

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/case-sync/internal/logger"
)

type namedWorker struct {
	name   string
	worker Worker
}

// Workers starts its members in registration order and stops them in
// reverse.
type Workers struct {
	mu      sync.Mutex
	workers []namedWorker
	started []namedWorker

	logger *logger.Logger
}

func NewWorkers(logger *logger.Logger) *Workers {
	return &Workers{logger: logger}
}

// Add registers worker under name. A nil worker is ignored so optional
// components can be passed unconditionally.
func (w *Workers) Add(name string, worker Worker) *Workers {
	if worker == nil {
		return w
	}
	w.mu.Lock()
	w.workers = append(w.workers, namedWorker{name: name, worker: worker})
	w.mu.Unlock()
	return w
}

// Start launches every worker. If one fails, the ones already started are
// stopped again and the error is returned.
func (w *Workers) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, nw := range w.workers {
		if err := nw.worker.Start(ctx); err != nil {
			w.stopLocked()
			return fmt.Errorf("start worker %s: %w", nw.name, err)
		}
		w.logger.Info().Str("func", "Workers.Start").Str("worker", nw.name).Msg("worker started")
		w.started = append(w.started, nw)
	}
	return nil
}

// Stop stops the started workers in reverse order. It is safe to call more
// than once.
func (w *Workers) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.stopLocked()
}

func (w *Workers) stopLocked() {
	for i := len(w.started) - 1; i >= 0; i-- {
		nw := w.started[i]
		nw.worker.Stop()
		w.logger.Info().Str("func", "Workers.Stop").Str("worker", nw.name).Msg("worker stopped")
	}
	w.started = nil
}

// Run starts the workers, waits for ctx to be cancelled and stops them.
func (w *Workers) Run(ctx context.Context) error {
	if err := w.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	w.Stop()
	return nil
}

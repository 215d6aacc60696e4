// Package workers runs the long-lived background loops of the sync process
// (scheduler, backup rotation, mirror watcher) as one unit.
package workers

import "context"

// Worker is a background loop with an explicit lifecycle.
//
// Start must not block: implementations spawn their own goroutines and
// return. Stop blocks until those goroutines have exited.
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Start(ctx context.Context) error { go w.loop(ctx); return nil }
//	func (w *MyWorker) Stop()                           { ... }
type Worker interface {
	Start(ctx context.Context) error
	Stop()
}

package service

import (
	"sync"
	"time"

	"github.com/MKhiriev/case-sync/models"
)

type changeTracker struct {
	mu        sync.Mutex
	lastSync  time.Time
	pending   time.Time
	listeners []func(time.Time)

	now func() time.Time
}

// NewChangeTracker returns an empty tracker using the wall clock.
func NewChangeTracker() ChangeTracker {
	return newChangeTracker(time.Now)
}

func newChangeTracker(now func() time.Time) *changeTracker {
	return &changeTracker{now: now}
}

func (t *changeTracker) MarkDirty() time.Time {
	t.mu.Lock()
	ts := t.now().UTC()
	floor := t.pending
	if t.lastSync.After(floor) {
		floor = t.lastSync
	}
	if !ts.After(floor) {
		ts = floor.Add(time.Nanosecond)
	}
	t.pending = ts
	listeners := append([]func(time.Time){}, t.listeners...)
	t.mu.Unlock()

	for _, fn := range listeners {
		fn(ts)
	}
	return ts
}

func (t *changeTracker) HasUnsyncedChanges() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pending.After(t.lastSync)
}

func (t *changeTracker) Watermark() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pending
}

func (t *changeTracker) MarkSynced(watermark time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if watermark.After(t.lastSync) {
		t.lastSync = watermark
	}
	if !t.pending.After(watermark) {
		t.pending = time.Time{}
	}
}

func (t *changeTracker) State() models.SyncState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return models.SyncState{
		LastSyncTimestamp:           t.lastSync,
		PendingLocalChangeTimestamp: t.pending,
	}
}

func (t *changeTracker) Restore(state models.SyncState) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lastSync = state.LastSyncTimestamp
	t.pending = state.PendingLocalChangeTimestamp
}

func (t *changeTracker) OnMarkDirty(fn func(at time.Time)) {
	if fn == nil {
		return
	}
	t.mu.Lock()
	t.listeners = append(t.listeners, fn)
	t.mu.Unlock()
}

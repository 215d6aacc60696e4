package service

//go:generate mockgen -source=client_interfaces.go -destination=../mock/servicemock/client_service_mock.go -package=servicemock

import (
	"context"
	"time"

	"github.com/MKhiriev/case-sync/models"
)

// ChangeTracker records local mutations and answers whether the local record
// holds edits that have not reached the remote yet. It knows nothing about
// how or when a sync runs.
type ChangeTracker interface {
	// MarkDirty records the current time as the pending local change
	// timestamp and notifies every listener registered with OnMarkDirty.
	// Two marks within the same clock tick still produce strictly increasing
	// timestamps.
	MarkDirty() time.Time

	// HasUnsyncedChanges reports whether the pending timestamp is newer than
	// the last sync timestamp.
	HasUnsyncedChanges() bool

	// Watermark returns the pending timestamp a snapshot taken now would
	// cover. It is passed back to MarkSynced once that snapshot was pushed.
	Watermark() time.Time

	// MarkSynced advances the last sync timestamp to watermark (never
	// backwards) and clears the pending timestamp only if no newer edit was
	// recorded after the watermark was taken.
	MarkSynced(watermark time.Time)

	// State returns the persisted part of the tracker.
	State() models.SyncState

	// Restore replaces the tracker timestamps with a previously persisted
	// state.
	Restore(state models.SyncState)

	// OnMarkDirty registers fn to be called after every MarkDirty.
	OnMarkDirty(fn func(at time.Time))
}

// ConflictResolver merges divergent local and remote records. It is a pure
// function of its inputs: no I/O and no mutation of the arguments.
type ConflictResolver interface {
	// Resolve reconciles local and remote under policy. An item without a
	// usable id, or two items sharing an id, yields ErrMergeAmbiguous.
	Resolve(local, remote models.CaseRecord, policy models.ConflictPolicy) (models.CaseRecord, error)

	// Rebase re-applies the edits that turned base into current on top of
	// onto.
	Rebase(base, current, onto models.CaseRecord) (models.CaseRecord, error)
}

// RecordSnapshot is a consistent view of the local record taken at the
// start of a sync cycle.
type RecordSnapshot struct {
	Record    models.CaseRecord
	Revision  int64
	Watermark time.Time
}

// CaseRecordService owns the authoritative local record. Every read and
// write of the record goes through it.
type CaseRecordService interface {
	// Load reads the persisted record into memory. A missing record starts
	// empty.
	Load(ctx context.Context) error

	// Get returns a deep copy of the current record.
	Get(ctx context.Context) (models.CaseRecord, error)

	// Snapshot returns the record, its revision and the change watermark
	// taken under the same read lock.
	Snapshot(ctx context.Context) (RecordSnapshot, error)

	// Mutate applies fn to a copy of the record, validates and persists the
	// result, then marks the tracker dirty. If fn or validation fails the
	// record is left unchanged.
	Mutate(ctx context.Context, fn func(record *models.CaseRecord) error) (models.CaseRecord, error)

	// Replace overwrites the whole record.
	Replace(ctx context.Context, record models.CaseRecord) (models.CaseRecord, error)

	// AddItem appends item to collection c, assigning a fresh id when the
	// item has none. An existing item with the same id is replaced.
	AddItem(ctx context.Context, c models.Collection, item models.Item) (models.Item, error)

	// RemoveItem deletes the item with id from collection c.
	RemoveItem(ctx context.Context, c models.Collection, id string) error

	// SetStrategy replaces the strategy document and stamps its
	// lastModified.
	SetStrategy(ctx context.Context, strategy models.Strategy) (models.Strategy, error)

	// Adopt installs a sync result. When the record changed since snap was
	// taken the intervening edits are rebased onto candidate.
	Adopt(ctx context.Context, snap RecordSnapshot, candidate models.CaseRecord) (models.CaseRecord, error)
}

// Notifier fans status events out to subscribers. Sending never blocks.
type Notifier interface {
	Notify(kind models.NotificationKind, reason string)
	Subscribe(buffer int) (<-chan models.Notification, func())
}

// BackupRotator keeps a bounded history of record snapshots.
type BackupRotator interface {
	// Snapshot stores a copy of the current record and moves the latest
	// pointer to it.
	Snapshot(ctx context.Context) (models.Backup, error)

	// Rotate deletes all but the retain most recent snapshots and returns
	// how many were deleted.
	Rotate(ctx context.Context, retain int) (int, error)

	// List returns the stored snapshots, oldest first.
	List(ctx context.Context) ([]models.BackupInfo, error)

	// Restore replaces the local record with the snapshot stored under key.
	Restore(ctx context.Context, key string) (models.CaseRecord, error)

	// Start snapshots and rotates every interval until Stop is called.
	Start(ctx context.Context, interval time.Duration, retain int)
	Stop()
}

// SyncService runs a single reconciliation cycle against the remote.
type SyncService interface {
	// Init restores the persisted sync state.
	Init(ctx context.Context) error

	// RunCycle pulls, resolves, pushes and adopts. On any error the local
	// record is left as it was.
	RunCycle(ctx context.Context, trigger models.Trigger) (models.CycleResult, error)

	// RemoteStatus reports whether the remote is ahead or behind.
	RemoteStatus(ctx context.Context) (models.RemoteStatus, error)

	// Policy returns the active conflict policy.
	Policy() models.ConflictPolicy

	// SetPolicy changes and persists the conflict policy.
	SetPolicy(ctx context.Context, policy models.ConflictPolicy) error

	// State returns the sync bookkeeping as it would be persisted.
	State() models.SyncState
}

// SyncScheduler decides when cycles run. At most one cycle is in flight.
type SyncScheduler interface {
	// Start launches the timer, debounce and initial-sync loops.
	Start(ctx context.Context) error

	// Stop cancels the loops and waits for an in-flight cycle to finish.
	Stop()

	// Trigger requests a cycle. It reports whether the trigger was accepted.
	Trigger(trigger models.Trigger) bool

	// SyncNow runs one cycle synchronously.
	SyncNow(ctx context.Context) (models.CycleResult, error)

	// State returns the current state of the state machine.
	State() models.SchedulerState

	// Status assembles the status view served to the UI and CLI.
	Status(ctx context.Context) models.SyncStatus
}

// ConnectivityMonitor probes the remote and reports reconnects.
type ConnectivityMonitor interface {
	Start(ctx context.Context)
	Stop()
	Online() bool
	OnReconnect(fn func())
}

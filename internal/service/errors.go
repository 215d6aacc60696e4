package service

import "errors"

// Sync error taxonomy. Every failure that reaches the scheduler wraps exactly
// one of these.
var (
	// ErrRemoteUnavailable covers network and remote failures. The cycle is
	// retried on the next trigger and no data is mutated.
	ErrRemoteUnavailable = errors.New("remote unavailable")
	// ErrPushConflict means the remote advanced concurrently more often than
	// the retry budget allows.
	ErrPushConflict = errors.New("push conflict")
	// ErrMergeAmbiguous means a record violates the id-keyed union
	// preconditions, e.g. an item without an id or a duplicate id.
	ErrMergeAmbiguous = errors.New("merge ambiguous")
	// ErrBackupFailure is logged and notified, never propagated to a sync
	// outcome.
	ErrBackupFailure = errors.New("backup failure")
)

var (
	ErrInvalidRecord  = errors.New("invalid case record")
	ErrItemNotFound   = errors.New("item not found")
	ErrLocalStore     = errors.New("local store failure")
	ErrSyncInProgress = errors.New("sync already in progress")
)

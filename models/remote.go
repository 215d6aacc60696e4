package models

import "time"

// RemoteStatus compares local and remote head state.
type RemoteStatus struct {
	Ahead  bool `json:"ahead"`
	Behind bool `json:"behind"`
}

// CommitRef identifies a staged candidate produced by a gateway.
type CommitRef struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// PushResult is the outcome of publishing a candidate.
type PushResult int

const (
	PushSucceeded PushResult = iota
	PushConflict
)

func (p PushResult) String() string {
	if p == PushConflict {
		return "conflict"
	}
	return "success"
}

// SyncInfo is published next to the record on the remote. SyncVersion is
// the publish time in Unix milliseconds, DataSize the encoded record length.
type SyncInfo struct {
	LastBackup  time.Time `json:"lastBackup"`
	SyncVersion int64     `json:"syncVersion"`
	DataSize    int       `json:"dataSize"`
}

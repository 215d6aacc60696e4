// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// ConflictPolicy selects how divergent local and remote records are reconciled.
type ConflictPolicy string

const (
	PolicyLocalWins  ConflictPolicy = "local-wins"
	PolicyRemoteWins ConflictPolicy = "remote-wins"
	PolicyMerge      ConflictPolicy = "merge"
)

// ParseConflictPolicy accepts exactly one of the three policy literals.
func ParseConflictPolicy(s string) (ConflictPolicy, error) {
	p := ConflictPolicy(s)
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownConflictPolicy, s)
	}
	return p, nil
}

// Valid reports whether p is one of the known policies.
func (p ConflictPolicy) Valid() bool {
	switch p {
	case PolicyLocalWins, PolicyRemoteWins, PolicyMerge:
		return true
	default:
		return false
	}
}

// SyncState is the bookkeeping persisted between cycles.
type SyncState struct {
	// LastSyncTimestamp is the newest local change watermark known to be on
	// the remote. It never moves backwards.
	LastSyncTimestamp time.Time `json:"lastSyncTimestamp"`
	// PendingLocalChangeTimestamp is set on every local mutation and cleared
	// once a push that included it has succeeded.
	PendingLocalChangeTimestamp time.Time `json:"pendingLocalChangeTimestamp"`
	// ConflictPolicy is the active reconciliation policy.
	ConflictPolicy ConflictPolicy `json:"conflictPolicy"`
	// RemotePending is set when a remote record was pulled by a cycle that
	// did not complete, so the next cycle pulls even if not behind.
	RemotePending bool `json:"remotePending"`
	// LastCycleAt is the wall clock time of the last successful cycle.
	LastCycleAt time.Time `json:"lastCycleAt"`
}

// SchedulerState is the state of the sync state machine.
type SchedulerState int

const (
	StateIdle SchedulerState = iota
	StateSyncing
	StateBackoff
)

func (s SchedulerState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSyncing:
		return "syncing"
	case StateBackoff:
		return "backoff"
	default:
		return "unknown"
	}
}

// Trigger is the reason a sync cycle was requested.
type Trigger int

const (
	TriggerTimer Trigger = iota
	TriggerReconnect
	TriggerDebounce
	TriggerManual
)

func (t Trigger) String() string {
	switch t {
	case TriggerTimer:
		return "timer"
	case TriggerReconnect:
		return "reconnect"
	case TriggerDebounce:
		return "debounce"
	case TriggerManual:
		return "manual"
	default:
		return "unknown"
	}
}

func (t Trigger) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Trigger) UnmarshalText(text []byte) error {
	for _, candidate := range []Trigger{TriggerTimer, TriggerReconnect, TriggerDebounce, TriggerManual} {
		if candidate.String() == string(text) {
			*t = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown sync trigger %q", text)
}

// SyncStatus is the read-only view served to the UI and the CLI.
type SyncStatus struct {
	State           string         `json:"state"`
	HasLocalChanges bool           `json:"hasLocalChanges"`
	IsAhead         bool           `json:"isAhead"`
	IsBehind        bool           `json:"isBehind"`
	RemoteReachable bool           `json:"remoteReachable"`
	Policy          ConflictPolicy `json:"policy"`
	LastSync        *time.Time     `json:"lastSync,omitempty"`
	LastCycleAt     *time.Time     `json:"lastCycleAt,omitempty"`
	PendingSince    *time.Time     `json:"pendingSince,omitempty"`
	LastError       string         `json:"lastError,omitempty"`
}

// CycleResult summarizes one sync cycle.
type CycleResult struct {
	Trigger  Trigger       `json:"trigger"`
	Pulled   bool          `json:"pulled"`
	Pushed   bool          `json:"pushed"`
	Rebased  bool          `json:"rebased"`
	Attempts int           `json:"attempts"`
	CommitID string        `json:"commitId,omitempty"`
	Duration time.Duration `json:"duration"`
}

package models

import "time"

// NotificationKind classifies a status event.
type NotificationKind string

const (
	NotificationSyncStarted   NotificationKind = "sync_started"
	NotificationSyncComplete  NotificationKind = "sync_complete"
	NotificationSyncFailed    NotificationKind = "sync_failed"
	NotificationBackupRotated NotificationKind = "backup_rotated"
	NotificationBackupFailed  NotificationKind = "backup_failed"
)

// Notification is a human-readable status event for the UI.
type Notification struct {
	Kind    NotificationKind `json:"kind"`
	Message string           `json:"message"`
	Reason  string           `json:"reason,omitempty"`
	At      time.Time        `json:"at"`
}

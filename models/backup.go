package models

import "time"

// Backup is an immutable snapshot of the case record.
type Backup struct {
	Key       string     `json:"key"`
	CreatedAt time.Time  `json:"createdAt"`
	Record    CaseRecord `json:"record"`
}

// BackupInfo describes a stored snapshot without its body.
type BackupInfo struct {
	Key       string    `json:"key"`
	CreatedAt time.Time `json:"createdAt"`
	Size      int       `json:"size"`
	Latest    bool      `json:"latest"`
}

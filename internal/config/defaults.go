package config

import (
	"time"

	"github.com/MKhiriev/case-sync/models"
)

// Default values applied to every field left unset by env, flags and file.
const (
	DefaultSyncInterval   = 5 * time.Minute
	DefaultDebounce       = 30 * time.Second
	DefaultRetryLimit     = 1
	DefaultCycleTimeout   = time.Minute
	DefaultProbeInterval  = 15 * time.Second
	DefaultInitialDelay   = 5 * time.Second
	DefaultBackupInterval = 5 * time.Minute
	DefaultBackupRetain   = 10
	DefaultRequestTimeout = 30 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Sync: Sync{
			Policy:        string(models.PolicyMerge),
			Interval:      DefaultSyncInterval,
			Debounce:      DefaultDebounce,
			RetryLimit:    DefaultRetryLimit,
			CycleTimeout:  DefaultCycleTimeout,
			ProbeInterval: DefaultProbeInterval,
			InitialDelay:  DefaultInitialDelay,
		},
		Backup: Backup{
			Interval: DefaultBackupInterval,
			Retain:   DefaultBackupRetain,
		},
		Remote: Remote{
			Kind:           RemoteKindGit,
			RepoDir:        ".",
			Name:           "origin",
			Branch:         "main",
			RecordPath:     "case-data.json",
			InfoPath:       "backup-info.json",
			RequestTimeout: DefaultRequestTimeout,
		},
		Storage: Storage{
			DSN:        "casesync.db",
			MirrorFile: "case-data.local.json",
			LockFile:   "casesync.lock",
		},
		Log: Log{Level: "info"},
	}
}

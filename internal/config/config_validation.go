// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Field-level checks live in [ClientConfig.validate]; this hook is kept for
// cross-source rules and currently has none.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if !cfg.Sync.Policy.Valid() {
		return fmt.Errorf("%w: unknown policy %q", ErrInvalidSyncConfigs, cfg.Sync.Policy)
	}
	if cfg.Sync.Interval <= 0 || cfg.Sync.Debounce <= 0 || cfg.Sync.CycleTimeout <= 0 {
		return fmt.Errorf("%w: interval, debounce and cycle timeout must be positive", ErrInvalidSyncConfigs)
	}
	if cfg.Sync.RetryLimit < 0 {
		return fmt.Errorf("%w: negative retry limit", ErrInvalidSyncConfigs)
	}

	if cfg.Backup.Interval <= 0 || cfg.Backup.Retain < 1 {
		return ErrInvalidBackupConfigs
	}

	switch cfg.Remote.Kind {
	case RemoteKindGit:
		if cfg.Remote.RepoDir == "" || cfg.Remote.Name == "" || cfg.Remote.Branch == "" || cfg.Remote.RecordPath == "" {
			return fmt.Errorf("%w: git remote needs repo dir, remote name, branch and record path", ErrInvalidRemoteConfigs)
		}
	case RemoteKindHTTP:
		if cfg.Remote.Address == "" || cfg.Remote.RequestTimeout <= 0 || cfg.Remote.RecordPath == "" {
			return fmt.Errorf("%w: http remote needs address, request timeout and record path", ErrInvalidRemoteConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidRemoteConfigs, cfg.Remote.Kind)
	}

	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/case-sync/models"
)

// Client defines the lifecycle contract of the long-running process.
type Client interface {
	// Run blocks until ctx is cancelled or a component fails.
	Run(ctx context.Context) error
	// Close releases storage and the process lock.
	Close() error
}

// Controller is the command surface used by the CLI.
type Controller interface {
	SyncNow(ctx context.Context) (models.CycleResult, error)
	Status(ctx context.Context) (models.SyncStatus, error)
	SetPolicy(ctx context.Context, policy models.ConflictPolicy) error
	ListBackups(ctx context.Context) ([]models.BackupInfo, error)
	CreateBackup(ctx context.Context) (models.BackupInfo, error)
	RestoreBackup(ctx context.Context, key string) (models.CaseRecord, error)
	Close() error
}

package store

import (
	"context"

	"github.com/MKhiriev/case-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// CaseRecordRepository persists the single local case record.
type CaseRecordRepository interface {
	// LoadRecord returns the stored record or [ErrDocumentNotFound].
	LoadRecord(ctx context.Context) (models.RecordDocument, error)
	// SaveRecord replaces the stored record and returns the new revision.
	SaveRecord(ctx context.Context, record models.CaseRecord) (models.RecordDocument, error)
}

// SyncStateRepository persists the bookkeeping of the sync engine.
type SyncStateRepository interface {
	LoadSyncState(ctx context.Context) (models.SyncState, error)
	SaveSyncState(ctx context.Context, state models.SyncState) error
}

// BackupRepository is the timestamp-keyed snapshot store plus the pointer
// to the newest snapshot.
type BackupRepository interface {
	SaveBackup(ctx context.Context, backup models.Backup) error
	GetBackup(ctx context.Context, key string) (models.Backup, error)
	ListBackups(ctx context.Context) ([]models.BackupInfo, error)
	LatestBackupKey(ctx context.Context) (string, error)
	// PruneBackups deletes keys and re-targets the latest pointer in one
	// transaction. An empty latest clears the pointer.
	PruneBackups(ctx context.Context, keys []string, latest string) (int64, error)
}

// RecordMirror is a human-editable JSON copy of the record on disk.
type RecordMirror interface {
	Path() string
	WriteRecord(ctx context.Context, record models.CaseRecord) error
	ReadRecord(ctx context.Context) (models.CaseRecord, error)
}

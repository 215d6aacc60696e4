package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/case-sync/internal/config"
	"github.com/MKhiriev/case-sync/internal/logger"
)

// ClientStorages groups all local storage repositories into a single value
// that can be passed around the service layer.
type ClientStorages struct {
	// CaseRecordRepository holds the authoritative local record.
	CaseRecordRepository CaseRecordRepository
	// SyncStateRepository holds the sync bookkeeping.
	SyncStateRepository SyncStateRepository
	// BackupRepository holds the rotated snapshots.
	BackupRepository BackupRepository
	// RecordMirror is nil when no mirror file is configured.
	RecordMirror RecordMirror

	db *DB
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [ClientStorages] value wired to fresh
//     repositories over that connection.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	storages := &ClientStorages{
		CaseRecordRepository: NewCaseRecordRepository(db, logger),
		SyncStateRepository:  NewSyncStateRepository(db, logger),
		BackupRepository:     NewBackupRepository(db, logger),
		db:                   db,
	}
	if cfg.MirrorFile != "" {
		storages.RecordMirror = NewRecordMirror(cfg.MirrorFile)
	}

	return storages, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

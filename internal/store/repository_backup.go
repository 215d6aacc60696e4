package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/case-sync/internal/logger"
	"github.com/MKhiriev/case-sync/models"
)

// backupRepository is the SQLite-backed implementation of
// [BackupRepository]. Snapshots live in the "backups" table; the latest
// pointer is the latestBackup row of the "documents" table.
type backupRepository struct {
	*DB
	logger *logger.Logger
}

// NewBackupRepository constructs a [BackupRepository] backed by the provided
// database connection and logger.
func NewBackupRepository(db *DB, logger *logger.Logger) BackupRepository {
	return &backupRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveBackup inserts the snapshot and moves the latest pointer to it inside
// one transaction.
func (b *backupRepository) SaveBackup(ctx context.Context, backup models.Backup) error {
	log := logger.FromContext(ctx)

	body, err := backup.Record.Encode()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	query, args, err := buildInsertBackupQuery(backup, body)
	if err != nil {
		log.Err(err).
			Str("func", "backupRepository.SaveBackup").
			Str("backup_key", backup.Key).
			Msg("failed to create query")
		return err
	}

	return b.withRetry(ctx, func(ctx context.Context) error {
		tx, err := b.DB.BeginTx(ctx, nil)
		if err != nil {
			log.Err(err).
				Str("func", "backupRepository.SaveBackup").
				Msg("failed to begin transaction")
			return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
		}
		defer tx.Rollback()

		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			log.Err(err).
				Str("func", "backupRepository.SaveBackup").
				Str("backup_key", backup.Key).
				Msg("failed to insert backup")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if affected, err := result.RowsAffected(); err == nil && affected == 0 {
			return ErrBackupNotSaved
		}

		if _, err = tx.ExecContext(ctx, upsertPointer, documentLatestBackup, backup.Key, time.Now().UTC().UnixNano()); err != nil {
			log.Err(err).
				Str("func", "backupRepository.SaveBackup").
				Str("backup_key", backup.Key).
				Msg("failed to update latest backup pointer")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		if err = tx.Commit(); err != nil {
			return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
		}
		return nil
	})
}

func (b *backupRepository) GetBackup(ctx context.Context, key string) (models.Backup, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetBackupQuery(key)
	if err != nil {
		return models.Backup{}, err
	}

	var (
		backup    models.Backup
		createdAt int64
		body      string
	)
	err = b.withRetry(ctx, func(ctx context.Context) error {
		return b.DB.QueryRowContext(ctx, query, args...).Scan(&backup.Key, &createdAt, &body)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Backup{}, fmt.Errorf("%w: %s", ErrBackupNotFound, key)
	}
	if err != nil {
		log.Err(err).
			Str("func", "backupRepository.GetBackup").
			Str("backup_key", key).
			Msg("failed to read backup")
		return models.Backup{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	backup.CreatedAt = time.Unix(0, createdAt).UTC()
	if backup.Record, err = models.DecodeCaseRecord([]byte(body)); err != nil {
		return models.Backup{}, fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	return backup, nil
}

// ListBackups returns every snapshot, oldest first. The entry the latest
// pointer references is flagged.
func (b *backupRepository) ListBackups(ctx context.Context) ([]models.BackupInfo, error) {
	log := logger.FromContext(ctx)

	latest, err := b.LatestBackupKey(ctx)
	if err != nil {
		return nil, err
	}

	query, args, err := buildListBackupsQuery()
	if err != nil {
		return nil, err
	}

	rows, err := b.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "backupRepository.ListBackups").
			Msg("failed to execute query for listing backups")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.BackupInfo, 0, 16)
	for rows.Next() {
		var (
			info      models.BackupInfo
			createdAt int64
		)
		if scanErr := rows.Scan(&info.Key, &createdAt, &info.Size); scanErr != nil {
			log.Err(scanErr).
				Str("func", "backupRepository.ListBackups").
				Msg("failed to scan backup row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		info.CreatedAt = time.Unix(0, createdAt).UTC()
		info.Latest = info.Key == latest
		results = append(results, info)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "backupRepository.ListBackups").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// LatestBackupKey returns the key the pointer references, or "" when no
// backup exists.
func (b *backupRepository) LatestBackupKey(ctx context.Context) (string, error) {
	var (
		key                 string
		revision, updatedAt int64
	)
	err := b.withRetry(ctx, func(ctx context.Context) error {
		return b.DB.QueryRowContext(ctx, getDocument, documentLatestBackup).Scan(&key, &revision, &updatedAt)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "backupRepository.LatestBackupKey").
			Msg("failed to read latest backup pointer")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return key, nil
}

func (b *backupRepository) PruneBackups(ctx context.Context, keys []string, latest string) (int64, error) {
	log := logger.FromContext(ctx)

	if len(keys) == 0 {
		return 0, nil
	}

	query, args, err := buildDeleteBackupsQuery(keys)
	if err != nil {
		return 0, err
	}

	var deleted int64
	err = b.withRetry(ctx, func(ctx context.Context) error {
		tx, err := b.DB.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
		}
		defer tx.Rollback()

		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			log.Err(err).
				Str("func", "backupRepository.PruneBackups").
				Int("keys", len(keys)).
				Msg("failed to delete backups")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		deleted, _ = result.RowsAffected()

		if latest == "" {
			_, err = tx.ExecContext(ctx, deleteDocument, documentLatestBackup)
		} else {
			_, err = tx.ExecContext(ctx, upsertPointer, documentLatestBackup, latest, time.Now().UTC().UnixNano())
		}
		if err != nil {
			log.Err(err).
				Str("func", "backupRepository.PruneBackups").
				Str("latest", latest).
				Msg("failed to re-target latest backup pointer")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		if err = tx.Commit(); err != nil {
			return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return deleted, nil
}

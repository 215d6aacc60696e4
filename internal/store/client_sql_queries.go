// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/case-sync/models"
)

// Names of the rows in the documents table.
const (
	documentCaseData     = "caseData"
	documentLatestBackup = "latestBackup"
)

const (
	getDocument = `
		SELECT body, revision, updated_at
		FROM documents
		WHERE name = ?;`

	upsertDocument = `
		INSERT INTO documents (name, body, revision, updated_at)
		VALUES (?, ?, 1, ?)
		ON CONFLICT(name) DO UPDATE SET
			body = excluded.body,
			revision = documents.revision + 1,
			updated_at = excluded.updated_at
		RETURNING revision;`

	upsertPointer = `
		INSERT INTO documents (name, body, revision, updated_at)
		VALUES (?, ?, 1, ?)
		ON CONFLICT(name) DO UPDATE SET
			body = excluded.body,
			revision = documents.revision + 1,
			updated_at = excluded.updated_at;`

	deleteDocument = `
		DELETE FROM documents
		WHERE name = ?;`

	getSyncState = `
		SELECT
			last_sync_at,
			pending_change_at,
			conflict_policy,
			remote_pending,
			last_cycle_at
		FROM sync_state
		WHERE id = 1;`

	saveSyncState = `
		INSERT INTO sync_state (
			id,
			last_sync_at,
			pending_change_at,
			conflict_policy,
			remote_pending,
			last_cycle_at
		) VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			last_sync_at = excluded.last_sync_at,
			pending_change_at = excluded.pending_change_at,
			conflict_policy = excluded.conflict_policy,
			remote_pending = excluded.remote_pending,
			last_cycle_at = excluded.last_cycle_at;`
)

var sqlBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildInsertBackupQuery(backup models.Backup, body []byte) (string, []any, error) {
	query, args, err := sqlBuilder.
		Insert("backups").
		Columns("backup_key", "created_at", "body", "size").
		Values(backup.Key, backup.CreatedAt.UnixNano(), string(body), len(body)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildListBackupsQuery() (string, []any, error) {
	query, args, err := sqlBuilder.
		Select("backup_key", "created_at", "size").
		From("backups").
		OrderBy("created_at ASC", "backup_key ASC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildGetBackupQuery(key string) (string, []any, error) {
	query, args, err := sqlBuilder.
		Select("backup_key", "created_at", "body").
		From("backups").
		Where(sq.Eq{"backup_key": key}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteBackupsQuery(keys []string) (string, []any, error) {
	if len(keys) == 0 {
		return "", nil, fmt.Errorf("%w: no backup keys", ErrBuildingSQLQuery)
	}

	query, args, err := sqlBuilder.
		Delete("backups").
		Where(sq.Eq{"backup_key": keys}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

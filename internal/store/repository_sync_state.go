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

type syncStateRepository struct {
	*DB
	logger *logger.Logger
}

// NewSyncStateRepository constructs a [SyncStateRepository] backed by the
// single-row sync_state table.
func NewSyncStateRepository(db *DB, logger *logger.Logger) SyncStateRepository {
	return &syncStateRepository{
		DB:     db,
		logger: logger,
	}
}

// LoadSyncState returns the persisted state. A store that has never synced
// yields a zero state with the merge policy.
func (s *syncStateRepository) LoadSyncState(ctx context.Context) (models.SyncState, error) {
	log := logger.FromContext(ctx)

	var (
		lastSync, pending, lastCycle int64
		policy                       string
		remotePending                bool
	)
	err := s.withRetry(ctx, func(ctx context.Context) error {
		return s.DB.QueryRowContext(ctx, getSyncState).Scan(&lastSync, &pending, &policy, &remotePending, &lastCycle)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.SyncState{ConflictPolicy: models.PolicyMerge}, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "syncStateRepository.LoadSyncState").
			Msg("failed to read sync state")
		return models.SyncState{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return models.SyncState{
		LastSyncTimestamp:           fromUnixNanos(lastSync),
		PendingLocalChangeTimestamp: fromUnixNanos(pending),
		ConflictPolicy:              models.ConflictPolicy(policy),
		RemotePending:               remotePending,
		LastCycleAt:                 fromUnixNanos(lastCycle),
	}, nil
}

func (s *syncStateRepository) SaveSyncState(ctx context.Context, state models.SyncState) error {
	log := logger.FromContext(ctx)

	err := s.withRetry(ctx, func(ctx context.Context) error {
		_, err := s.DB.ExecContext(ctx, saveSyncState,
			unixNanos(state.LastSyncTimestamp),
			unixNanos(state.PendingLocalChangeTimestamp),
			string(state.ConflictPolicy),
			state.RemotePending,
			unixNanos(state.LastCycleAt),
		)
		return err
	})
	if err != nil {
		log.Err(err).
			Str("func", "syncStateRepository.SaveSyncState").
			Bool("remote_pending", state.RemotePending).
			Msg("failed to save sync state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// unixNanos stores the zero time as 0 so that "never" survives a round trip.
func unixNanos(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixNano()
}

func fromUnixNanos(n int64) time.Time {
	if n == 0 {
		return time.Time{}
	}
	return time.Unix(0, n).UTC()
}

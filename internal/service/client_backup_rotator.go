package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/case-sync/internal/logger"
	"github.com/MKhiriev/case-sync/internal/store"
	"github.com/MKhiriev/case-sync/models"
)

// DefaultBackupRetain is the number of snapshots kept when no retention is
// configured.
const DefaultBackupRetain = 10

const backupKeyPrefix = "backup-"

type backupRotator struct {
	repo     store.BackupRepository
	records  CaseRecordService
	notifier Notifier
	logger   *logger.Logger
	now      func() time.Time

	keyMu     sync.Mutex
	lastNanos int64

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewBackupRotator returns a rotator snapshotting records into repo.
func NewBackupRotator(repo store.BackupRepository, records CaseRecordService, notifier Notifier, log *logger.Logger) BackupRotator {
	return &backupRotator{
		repo:     repo,
		records:  records,
		notifier: notifier,
		logger:   log,
		now:      time.Now,
	}
}

func (b *backupRotator) Snapshot(ctx context.Context) (models.Backup, error) {
	snap, err := b.records.Snapshot(ctx)
	if err != nil {
		return models.Backup{}, fmt.Errorf("%w: %w", ErrBackupFailure, err)
	}

	key, createdAt, err := b.nextKey(ctx)
	if err != nil {
		return models.Backup{}, fmt.Errorf("%w: %w", ErrBackupFailure, err)
	}
	backup := models.Backup{Key: key, CreatedAt: createdAt, Record: snap.Record}

	if err = b.repo.SaveBackup(ctx, backup); err != nil {
		b.logger.Err(err).Str("func", "backupRotator.Snapshot").Str("key", key).Msg("error saving backup")
		return models.Backup{}, fmt.Errorf("%w: %w", ErrBackupFailure, err)
	}

	b.logger.Debug().Str("func", "backupRotator.Snapshot").Str("key", key).Int("items", snap.Record.Size()).Msg("backup created")
	return backup, nil
}

func (b *backupRotator) Rotate(ctx context.Context, retain int) (int, error) {
	if retain <= 0 {
		retain = DefaultBackupRetain
	}

	backups, err := b.repo.ListBackups(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBackupFailure, err)
	}
	if len(backups) <= retain {
		return 0, nil
	}

	cut := len(backups) - retain
	keys := make([]string, 0, cut)
	for _, info := range backups[:cut] {
		keys = append(keys, info.Key)
	}
	latest := backups[len(backups)-1].Key

	deleted, err := b.repo.PruneBackups(ctx, keys, latest)
	if err != nil {
		b.logger.Err(err).Str("func", "backupRotator.Rotate").Int("count", len(keys)).Msg("error pruning backups")
		return 0, fmt.Errorf("%w: %w", ErrBackupFailure, err)
	}

	b.logger.Debug().Str("func", "backupRotator.Rotate").Int64("deleted", deleted).Str("latest", latest).Msg("backups rotated")
	return int(deleted), nil
}

func (b *backupRotator) List(ctx context.Context) ([]models.BackupInfo, error) {
	backups, err := b.repo.ListBackups(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBackupFailure, err)
	}
	return backups, nil
}

func (b *backupRotator) Restore(ctx context.Context, key string) (models.CaseRecord, error) {
	backup, err := b.repo.GetBackup(ctx, key)
	if err != nil {
		return models.CaseRecord{}, err
	}

	record, err := b.records.Replace(ctx, backup.Record)
	if err != nil {
		return models.CaseRecord{}, err
	}

	b.logger.Info().Str("func", "backupRotator.Restore").Str("key", key).Msg("case record restored from backup")
	return record, nil
}

// Start launches a goroutine that snapshots and rotates every interval. It
// stops any previously running loop first. Failures never stop the loop.
func (b *backupRotator) Start(ctx context.Context, interval time.Duration, retain int) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	b.Stop()

	b.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	b.cancel = cancel
	b.wg.Add(1)
	b.mu.Unlock()

	go func() {
		defer b.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				b.runOnce(jobCtx, retain)
			}
		}
	}()
}

func (b *backupRotator) Stop() {
	b.mu.Lock()
	cancel := b.cancel
	b.cancel = nil
	b.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	b.wg.Wait()
}

func (b *backupRotator) runOnce(ctx context.Context, retain int) {
	_, err := b.Snapshot(ctx)
	if err == nil {
		_, err = b.Rotate(ctx, retain)
	}
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		b.logger.Err(err).Str("func", "backupRotator.runOnce").Msg("backup failed")
		b.notifier.Notify(models.NotificationBackupFailed, err.Error())
		return
	}
	b.notifier.Notify(models.NotificationBackupRotated, "")
}

// nextKey returns a key strictly greater than every key handed out before,
// even if the clock did not advance or went backwards.
func (b *backupRotator) nextKey(ctx context.Context) (string, time.Time, error) {
	b.keyMu.Lock()
	defer b.keyMu.Unlock()

	if b.lastNanos == 0 {
		latest, err := b.repo.LatestBackupKey(ctx)
		if err != nil {
			return "", time.Time{}, err
		}
		b.lastNanos = parseBackupKey(latest)
	}

	nanos := b.now().UnixNano()
	if nanos <= b.lastNanos {
		nanos = b.lastNanos + 1
	}
	b.lastNanos = nanos

	return fmt.Sprintf("%s%019d", backupKeyPrefix, nanos), time.Unix(0, nanos).UTC(), nil
}

func parseBackupKey(key string) int64 {
	n, err := strconv.ParseInt(strings.TrimPrefix(key, backupKeyPrefix), 10, 64)
	if err != nil || !strings.HasPrefix(key, backupKeyPrefix) {
		return 0
	}
	return n
}

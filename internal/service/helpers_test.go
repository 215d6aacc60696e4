package service

import (
	"context"
	"encoding/json"
	"slices"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/case-sync/internal/logger"
	"github.com/MKhiriev/case-sync/internal/store"
	"github.com/MKhiriev/case-sync/models"
	"github.com/stretchr/testify/require"
)

// memRecordRepo хранит запись в памяти и считает ревизии.
type memRecordRepo struct {
	mu       sync.Mutex
	doc      models.RecordDocument
	exists   bool
	saveErr  error
	saveCall int
}

func (r *memRecordRepo) LoadRecord(_ context.Context) (models.RecordDocument, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.exists {
		return models.RecordDocument{}, store.ErrDocumentNotFound
	}
	return models.RecordDocument{Record: r.doc.Record.Clone(), Revision: r.doc.Revision, UpdatedAt: r.doc.UpdatedAt}, nil
}

func (r *memRecordRepo) SaveRecord(_ context.Context, record models.CaseRecord) (models.RecordDocument, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saveCall++
	if r.saveErr != nil {
		return models.RecordDocument{}, r.saveErr
	}
	r.exists = true
	r.doc = models.RecordDocument{Record: record.Clone(), Revision: r.doc.Revision + 1, UpdatedAt: time.Now()}
	return r.doc, nil
}

// memStateRepo хранит последнее сохранённое состояние синхронизации.
type memStateRepo struct {
	mu    sync.Mutex
	state models.SyncState
	saves int
	err   error
}

func (r *memStateRepo) LoadSyncState(_ context.Context) (models.SyncState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state.ConflictPolicy == "" {
		return models.SyncState{ConflictPolicy: models.PolicyMerge}, nil
	}
	return r.state, nil
}

func (r *memStateRepo) SaveSyncState(_ context.Context, state models.SyncState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.saves++
	r.state = state
	return nil
}

func (r *memStateRepo) saved() models.SyncState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// memBackupRepo повторяет семантику sqlite-хранилища снапшотов.
type memBackupRepo struct {
	mu      sync.Mutex
	backups map[string]models.Backup
	latest  string
	saveErr error
}

func newMemBackupRepo() *memBackupRepo {
	return &memBackupRepo{backups: make(map[string]models.Backup)}
}

func (r *memBackupRepo) SaveBackup(_ context.Context, backup models.Backup) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	if _, ok := r.backups[backup.Key]; ok {
		return store.ErrBackupNotSaved
	}
	r.backups[backup.Key] = models.Backup{Key: backup.Key, CreatedAt: backup.CreatedAt, Record: backup.Record.Clone()}
	r.latest = backup.Key
	return nil
}

func (r *memBackupRepo) GetBackup(_ context.Context, key string) (models.Backup, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.backups[key]
	if !ok {
		return models.Backup{}, store.ErrBackupNotFound
	}
	return b, nil
}

func (r *memBackupRepo) ListBackups(_ context.Context) ([]models.BackupInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.BackupInfo, 0, len(r.backups))
	for _, b := range r.backups {
		data, _ := b.Record.Encode()
		out = append(out, models.BackupInfo{Key: b.Key, CreatedAt: b.CreatedAt, Size: len(data), Latest: b.Key == r.latest})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].Key < out[j].Key
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *memBackupRepo) LatestBackupKey(_ context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.latest, nil
}

func (r *memBackupRepo) PruneBackups(_ context.Context, keys []string, latest string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, k := range keys {
		if _, ok := r.backups[k]; ok {
			delete(r.backups, k)
			n++
		}
	}
	r.latest = latest
	return n, nil
}

func (r *memBackupRepo) keys() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.backups))
	for k := range r.backups {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// recordJSON строит запись из JSON-литерала так же, как она читается из хранилища.
func recordJSON(t *testing.T, raw string) models.CaseRecord {
	t.Helper()
	record, err := models.DecodeCaseRecord([]byte(raw))
	require.NoError(t, err)
	return record
}

func encoded(t *testing.T, record models.CaseRecord) string {
	t.Helper()
	data, err := record.Encode()
	require.NoError(t, err)
	return string(data)
}

func itemIDs(t *testing.T, items []models.Item) []string {
	t.Helper()
	ids := make([]string, 0, len(items))
	for _, it := range items {
		id, err := it.ID()
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return ids
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

// newTestRecords собирает сервис записи поверх in-memory репозитория.
func newTestRecords(t *testing.T, initial *models.CaseRecord) (*caseRecordService, *memRecordRepo, *changeTracker) {
	t.Helper()
	repo := &memRecordRepo{}
	if initial != nil {
		repo.exists = true
		repo.doc = models.RecordDocument{Record: initial.Clone(), Revision: 1}
	}
	tracker := newChangeTracker(time.Now)
	svc := NewCaseRecordService(repo, nil, tracker, NewConflictResolver(), logger.Nop()).(*caseRecordService)
	require.NoError(t, svc.Load(context.Background()))
	return svc, repo, tracker
}

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/case-sync/internal/logger"
	"github.com/MKhiriev/case-sync/internal/store"
	"github.com/MKhiriev/case-sync/internal/utils"
	"github.com/MKhiriev/case-sync/internal/validators"
	"github.com/MKhiriev/case-sync/models"
)

type idGenerator interface {
	Generate() string
}

type caseRecordService struct {
	repo     store.CaseRecordRepository
	mirror   store.RecordMirror
	tracker  ChangeTracker
	resolver ConflictResolver
	ids      idGenerator
	logger   *logger.Logger
	now      func() time.Time

	mu       sync.RWMutex
	record   models.CaseRecord
	revision int64
}

// NewCaseRecordService returns the owner of the local record. mirror may be
// nil.
func NewCaseRecordService(
	repo store.CaseRecordRepository,
	mirror store.RecordMirror,
	tracker ChangeTracker,
	resolver ConflictResolver,
	log *logger.Logger,
) CaseRecordService {
	return &caseRecordService{
		repo:     repo,
		mirror:   mirror,
		tracker:  tracker,
		resolver: resolver,
		ids:      utils.NewUUIDGenerator(),
		logger:   log,
		now:      time.Now,
		record:   models.NewCaseRecord(),
	}
}

func (s *caseRecordService) Load(ctx context.Context) error {
	doc, err := s.repo.LoadRecord(ctx)
	if errors.Is(err, store.ErrDocumentNotFound) {
		s.mu.Lock()
		s.record = models.NewCaseRecord()
		s.revision = 0
		s.mu.Unlock()
		s.logger.Info().Str("func", "caseRecordService.Load").Msg("no stored case record, starting empty")
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLocalStore, err)
	}

	s.mu.Lock()
	s.record = doc.Record
	s.revision = doc.Revision
	s.mu.Unlock()

	s.logger.Debug().Str("func", "caseRecordService.Load").
		Int64("revision", doc.Revision).
		Int("items", doc.Record.Size()).
		Msg("case record loaded")
	return nil
}

func (s *caseRecordService) Get(ctx context.Context) (models.CaseRecord, error) {
	if err := ctx.Err(); err != nil {
		return models.CaseRecord{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.record.Clone(), nil
}

func (s *caseRecordService) Snapshot(ctx context.Context) (RecordSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return RecordSnapshot{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return RecordSnapshot{
		Record:    s.record.Clone(),
		Revision:  s.revision,
		Watermark: s.tracker.Watermark(),
	}, nil
}

func (s *caseRecordService) Mutate(ctx context.Context, fn func(record *models.CaseRecord) error) (models.CaseRecord, error) {
	s.mu.Lock()
	next := s.record.Clone()
	if err := fn(&next); err != nil {
		s.mu.Unlock()
		return models.CaseRecord{}, err
	}
	if err := ValidateRecord(next); err != nil {
		s.mu.Unlock()
		return models.CaseRecord{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	if next.Equal(s.record) {
		out := s.record.Clone()
		s.mu.Unlock()
		return out, nil
	}

	ts := s.now().UTC()
	next.LastModified = &ts
	if err := s.persistLocked(ctx, next); err != nil {
		s.mu.Unlock()
		return models.CaseRecord{}, err
	}
	out := s.record.Clone()
	s.mu.Unlock()

	// listeners run outside the record lock
	s.tracker.MarkDirty()
	s.writeMirror(ctx, out)

	return out, nil
}

func (s *caseRecordService) Replace(ctx context.Context, record models.CaseRecord) (models.CaseRecord, error) {
	return s.Mutate(ctx, func(r *models.CaseRecord) error {
		*r = record.Clone()
		return nil
	})
}

func (s *caseRecordService) AddItem(ctx context.Context, c models.Collection, item models.Item) (models.Item, error) {
	if _, err := models.ParseCollection(string(c)); err != nil {
		return nil, err
	}
	added := item.Clone()
	if added == nil {
		added = models.Item{}
	}
	if _, err := added.ID(); errors.Is(err, models.ErrItemWithoutID) {
		added["id"] = s.ids.Generate()
	}
	if err := recordValidator.Validate(ctx, added, validators.FieldID); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	id, _ := added.ID()

	_, err := s.Mutate(ctx, func(r *models.CaseRecord) error {
		items := r.Items(c)
		if i := findItem(items, id); i >= 0 {
			items[i] = added.Clone()
		} else {
			items = append(items, added.Clone())
		}
		r.SetItems(c, items)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return added, nil
}

func (s *caseRecordService) RemoveItem(ctx context.Context, c models.Collection, id string) error {
	if _, err := models.ParseCollection(string(c)); err != nil {
		return err
	}
	_, err := s.Mutate(ctx, func(r *models.CaseRecord) error {
		items := r.Items(c)
		i := findItem(items, id)
		if i < 0 {
			return fmt.Errorf("%w: %s/%s", ErrItemNotFound, c, id)
		}
		r.SetItems(c, slices.Delete(items, i, i+1))
		return nil
	})
	return err
}

func (s *caseRecordService) SetStrategy(ctx context.Context, strategy models.Strategy) (models.Strategy, error) {
	next := strategy.Clone()
	if next == nil {
		next = models.Strategy{}
	}
	next["lastModified"] = s.now().UTC().Format(time.RFC3339Nano)

	_, err := s.Mutate(ctx, func(r *models.CaseRecord) error {
		r.Strategy = next.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return next, nil
}

func (s *caseRecordService) Adopt(ctx context.Context, snap RecordSnapshot, candidate models.CaseRecord) (models.CaseRecord, error) {
	if err := ValidateRecord(candidate); err != nil {
		return models.CaseRecord{}, err
	}

	s.mu.Lock()
	next := candidate.Clone()
	rebased := s.revision != snap.Revision
	if rebased {
		var err error
		next, err = s.resolver.Rebase(snap.Record, s.record, candidate)
		if err != nil {
			s.mu.Unlock()
			return models.CaseRecord{}, err
		}
	}
	if next.Equal(s.record) {
		out := s.record.Clone()
		s.mu.Unlock()
		return out, nil
	}
	if err := s.persistLocked(ctx, next); err != nil {
		s.mu.Unlock()
		return models.CaseRecord{}, err
	}
	out := s.record.Clone()
	s.mu.Unlock()

	s.logger.Debug().Str("func", "caseRecordService.Adopt").
		Bool("rebased", rebased).
		Int("items", out.Size()).
		Msg("sync result adopted")
	s.writeMirror(ctx, out)

	return out, nil
}

// persistLocked saves next and installs it as the current record. The
// caller holds the write lock.
func (s *caseRecordService) persistLocked(ctx context.Context, next models.CaseRecord) error {
	doc, err := s.repo.SaveRecord(ctx, next)
	if err != nil {
		s.logger.Err(err).Str("func", "caseRecordService.persistLocked").Msg("error saving case record")
		return fmt.Errorf("%w: %w", ErrLocalStore, err)
	}
	s.record = next
	s.revision = doc.Revision
	return nil
}

func (s *caseRecordService) writeMirror(ctx context.Context, record models.CaseRecord) {
	if s.mirror == nil {
		return
	}
	if err := s.mirror.WriteRecord(ctx, record); err != nil {
		s.logger.Err(err).Str("func", "caseRecordService.writeMirror").
			Str("path", s.mirror.Path()).
			Msg("error mirroring case record")
	}
}

func findItem(items []models.Item, id string) int {
	for i, it := range items {
		if itemID, err := it.ID(); err == nil && itemID == id {
			return i
		}
	}
	return -1
}

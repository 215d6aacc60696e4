package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/case-sync/internal/adapter"
	"github.com/MKhiriev/case-sync/internal/config"
	"github.com/MKhiriev/case-sync/internal/logger"
	"github.com/MKhiriev/case-sync/internal/store"
	"github.com/MKhiriev/case-sync/models"
)

const commitMessagePrefix = "Auto-sync: "

type clientSyncService struct {
	gateway  adapter.RemoteGateway
	records  CaseRecordService
	tracker  ChangeTracker
	resolver ConflictResolver
	states   store.SyncStateRepository
	logger   *logger.Logger
	now      func() time.Time

	retryLimit int
	infoPath   string

	mu            sync.Mutex
	policy        models.ConflictPolicy
	remotePending bool
	lastCycleAt   time.Time

	// saveMu orders writes of the sync state
	saveMu sync.Mutex
	once   sync.Once
}

// NewClientSyncService wires a sync cycle over gateway. cfg.Policy is the
// initial conflict policy; an empty policy keeps the persisted one.
func NewClientSyncService(
	gateway adapter.RemoteGateway,
	records CaseRecordService,
	tracker ChangeTracker,
	resolver ConflictResolver,
	states store.SyncStateRepository,
	cfg config.ClientSync,
	infoPath string,
	log *logger.Logger,
) SyncService {
	retryLimit := cfg.RetryLimit
	if retryLimit < 0 {
		retryLimit = 0
	}
	return &clientSyncService{
		gateway:    gateway,
		records:    records,
		tracker:    tracker,
		resolver:   resolver,
		states:     states,
		logger:     log,
		now:        time.Now,
		retryLimit: retryLimit,
		infoPath:   infoPath,
		policy:     cfg.Policy,
	}
}

func (s *clientSyncService) Init(ctx context.Context) error {
	state, err := s.states.LoadSyncState(ctx)
	if err != nil {
		return fmt.Errorf("%w: load sync state: %w", ErrLocalStore, err)
	}
	s.tracker.Restore(state)

	s.mu.Lock()
	if !s.policy.Valid() {
		s.policy = state.ConflictPolicy
	}
	if !s.policy.Valid() {
		s.policy = models.PolicyMerge
	}
	s.remotePending = state.RemotePending
	s.lastCycleAt = state.LastCycleAt
	s.mu.Unlock()

	s.once.Do(func() {
		s.tracker.OnMarkDirty(func(time.Time) {
			if err := s.persist(context.Background()); err != nil {
				s.logger.Err(err).Str("func", "clientSyncService.OnMarkDirty").Msg("error persisting pending change")
			}
		})
	})

	s.logger.Debug().Str("func", "clientSyncService.Init").
		Str("policy", string(s.Policy())).
		Bool("has_local_changes", s.tracker.HasUnsyncedChanges()).
		Bool("remote_pending", state.RemotePending).
		Msg("sync state restored")
	return nil
}

func (s *clientSyncService) RunCycle(ctx context.Context, trigger models.Trigger) (models.CycleResult, error) {
	start := s.now()
	result := models.CycleResult{Trigger: trigger}
	log := s.logger.With().Str("func", "clientSyncService.RunCycle").Stringer("trigger", trigger).Logger()

	snap, err := s.records.Snapshot(ctx)
	if err != nil {
		return result, err
	}

	status, err := s.gateway.FetchStatus(ctx)
	if err != nil {
		return result, fmt.Errorf("fetch status: %w", mapGatewayError(err))
	}

	policy := s.Policy()
	candidate := snap.Record
	var remote models.CaseRecord

	if status.Behind || s.isRemotePending() {
		remote, candidate, err = s.pullAndResolve(ctx, snap.Record, policy)
		if err != nil {
			return result, err
		}
		result.Pulled = true
	}

	needPush := s.tracker.HasUnsyncedChanges() || status.Ahead || (result.Pulled && !candidate.Equal(remote))
	if needPush {
		for {
			result.Attempts++

			ref, err := s.publish(ctx, candidate)
			if err != nil {
				return result, err
			}
			pushResult, err := s.gateway.Push(ctx, ref)
			if err != nil {
				return result, fmt.Errorf("push: %w", mapGatewayError(err))
			}
			if pushResult == models.PushSucceeded {
				result.Pushed = true
				result.CommitID = ref.ID
				break
			}

			if result.Attempts > s.retryLimit {
				return result, fmt.Errorf("%w: remote advanced %d times", ErrPushConflict, result.Attempts)
			}
			log.Info().Int("attempt", result.Attempts).Msg("push rejected, pulling again")

			if _, err = s.gateway.FetchStatus(ctx); err != nil {
				return result, fmt.Errorf("fetch status: %w", mapGatewayError(err))
			}
			_, candidate, err = s.pullAndResolve(ctx, snap.Record, policy)
			if err != nil {
				return result, err
			}
			result.Pulled = true
		}
	} else if result.Pulled {
		// the remote record was adopted as is; move the local head onto it
		if err = s.gateway.FastForward(ctx); err != nil {
			return result, fmt.Errorf("fast-forward: %w", mapGatewayError(err))
		}
	}

	current, err := s.records.Adopt(ctx, snap, candidate)
	if err != nil {
		return result, fmt.Errorf("adopt sync result: %w", err)
	}
	result.Rebased = !current.Equal(candidate)

	s.tracker.MarkSynced(snap.Watermark)
	s.mu.Lock()
	s.remotePending = false
	s.lastCycleAt = s.now().UTC()
	s.mu.Unlock()

	if err = s.persist(ctx); err != nil {
		return result, err
	}

	result.Duration = s.now().Sub(start)
	log.Info().
		Bool("pulled", result.Pulled).
		Bool("pushed", result.Pushed).
		Int("attempts", result.Attempts).
		Dur("duration", result.Duration).
		Msg("sync cycle finished")

	return result, nil
}

// pullAndResolve pulls the remote record and resolves it against local. The
// pending flag is persisted before resolving so a crash before adoption
// still forces a pull on the next cycle.
func (s *clientSyncService) pullAndResolve(ctx context.Context, local models.CaseRecord, policy models.ConflictPolicy) (models.CaseRecord, models.CaseRecord, error) {
	remote, err := s.gateway.PullRecord(ctx)
	if err != nil {
		return models.CaseRecord{}, models.CaseRecord{}, fmt.Errorf("pull record: %w", mapGatewayError(err))
	}

	s.mu.Lock()
	s.remotePending = true
	s.mu.Unlock()
	if err = s.persist(ctx); err != nil {
		return models.CaseRecord{}, models.CaseRecord{}, err
	}

	merged, err := s.resolver.Resolve(local, remote, policy)
	if err != nil {
		return models.CaseRecord{}, models.CaseRecord{}, fmt.Errorf("resolve: %w", err)
	}
	return remote, merged, nil
}

// publish writes the sync info next to the record and stages the candidate.
func (s *clientSyncService) publish(ctx context.Context, candidate models.CaseRecord) (models.CommitRef, error) {
	now := s.now().UTC()

	if s.infoPath != "" {
		encoded, err := candidate.Encode()
		if err != nil {
			return models.CommitRef{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
		}
		info := models.SyncInfo{LastBackup: now, SyncVersion: now.UnixMilli(), DataSize: len(encoded)}
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return models.CommitRef{}, fmt.Errorf("encode sync info: %w", err)
		}
		if err = s.gateway.WriteFile(ctx, s.infoPath, data); err != nil {
			return models.CommitRef{}, fmt.Errorf("write sync info: %w", mapGatewayError(err))
		}
	}

	ref, err := s.gateway.StageAndCommit(ctx, candidate, commitMessagePrefix+now.Format(time.RFC3339))
	if err != nil {
		return models.CommitRef{}, fmt.Errorf("stage and commit: %w", mapGatewayError(err))
	}
	return ref, nil
}

func (s *clientSyncService) RemoteStatus(ctx context.Context) (models.RemoteStatus, error) {
	status, err := s.gateway.FetchStatus(ctx)
	if err != nil {
		return models.RemoteStatus{}, mapGatewayError(err)
	}
	return status, nil
}

func (s *clientSyncService) Policy() models.ConflictPolicy {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.policy
}

func (s *clientSyncService) SetPolicy(ctx context.Context, policy models.ConflictPolicy) error {
	if !policy.Valid() {
		return fmt.Errorf("%w: %q", models.ErrUnknownConflictPolicy, policy)
	}
	s.mu.Lock()
	s.policy = policy
	s.mu.Unlock()
	return s.persist(ctx)
}

func (s *clientSyncService) State() models.SyncState {
	state := s.tracker.State()
	s.mu.Lock()
	defer s.mu.Unlock()
	state.ConflictPolicy = s.policy
	state.RemotePending = s.remotePending
	state.LastCycleAt = s.lastCycleAt
	return state
}

func (s *clientSyncService) isRemotePending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remotePending
}

func (s *clientSyncService) persist(ctx context.Context) error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	if err := s.states.SaveSyncState(ctx, s.State()); err != nil {
		if !errors.Is(err, context.Canceled) {
			s.logger.Err(err).Str("func", "clientSyncService.persist").Msg("error saving sync state")
		}
		return fmt.Errorf("%w: save sync state: %w", ErrLocalStore, err)
	}
	return nil
}

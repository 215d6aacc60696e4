// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/case-sync/internal/config"
	"github.com/MKhiriev/case-sync/internal/logger"
	"github.com/MKhiriev/case-sync/models"
)

type syncScheduler struct {
	syncService SyncService
	tracker     ChangeTracker
	notifier    Notifier
	monitor     ConnectivityMonitor
	cfg         config.ClientSync
	logger      *logger.Logger

	mu       sync.Mutex
	state    models.SchedulerState
	jobCtx   context.Context
	cancel   context.CancelFunc
	debounce *time.Timer
	lastErr  error
	wg       sync.WaitGroup

	hooks sync.Once
}

// NewSyncScheduler creates the scheduler state machine. It is idle until
// Start is called; SyncNow works without Start. monitor may be nil.
func NewSyncScheduler(
	syncService SyncService,
	tracker ChangeTracker,
	notifier Notifier,
	monitor ConnectivityMonitor,
	cfg config.ClientSync,
	log *logger.Logger,
) SyncScheduler {
	if cfg.Interval <= 0 {
		cfg.Interval = 5 * time.Minute
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = 30 * time.Second
	}
	if cfg.CycleTimeout <= 0 {
		cfg.CycleTimeout = time.Minute
	}
	return &syncScheduler{
		syncService: syncService,
		tracker:     tracker,
		notifier:    notifier,
		monitor:     monitor,
		cfg:         cfg,
		logger:      log,
	}
}

// Start implements SyncScheduler. It stops any previously running loop, then
// launches a goroutine that triggers a cycle every interval and once after
// the initial delay. Local edits re-arm the debounce timer. All loops exit
// when ctx is cancelled or Stop is called.
func (s *syncScheduler) Start(ctx context.Context) error {
	s.Stop()

	s.hooks.Do(func() {
		s.tracker.OnMarkDirty(s.onMarkDirty)
		if s.monitor != nil {
			s.monitor.OnReconnect(func() { s.Trigger(models.TriggerReconnect) })
		}
	})

	s.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	s.jobCtx = jobCtx
	s.cancel = cancel
	if s.state == models.StateBackoff {
		s.state = models.StateIdle
	}
	s.wg.Add(1)
	s.mu.Unlock()

	if s.monitor != nil {
		s.monitor.Start(jobCtx)
	}

	go func() {
		defer s.wg.Done()

		initial := time.NewTimer(s.cfg.InitialDelay)
		defer initial.Stop()
		t := time.NewTicker(s.cfg.Interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-initial.C:
				s.Trigger(models.TriggerTimer)
			case <-t.C:
				s.Trigger(models.TriggerTimer)
			}
		}
	}()

	s.logger.Info().Str("func", "syncScheduler.Start").
		Dur("interval", s.cfg.Interval).
		Dur("debounce", s.cfg.Debounce).
		Msg("sync scheduler started")
	return nil
}

// Stop implements SyncScheduler. It cancels the loops and blocks until they
// and any in-flight cycle have exited. Safe to call when not running.
func (s *syncScheduler) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.jobCtx = nil
	if s.debounce != nil {
		s.debounce.Stop()
		s.debounce = nil
	}
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	if s.monitor != nil {
		s.monitor.Stop()
	}
	s.wg.Wait()
}

func (s *syncScheduler) Trigger(trigger models.Trigger) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.jobCtx == nil {
		return false
	}
	if !s.enterSyncingLocked(trigger) {
		return false
	}

	ctx := s.jobCtx
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		_, _ = s.cycle(ctx, trigger)
	}()
	return true
}

func (s *syncScheduler) SyncNow(ctx context.Context) (models.CycleResult, error) {
	s.mu.Lock()
	if !s.enterSyncingLocked(models.TriggerManual) {
		s.mu.Unlock()
		return models.CycleResult{Trigger: models.TriggerManual}, ErrSyncInProgress
	}
	// Only cycles started while the loops run join wg. Stop clears jobCtx
	// under mu before it waits, so this Add always precedes that Wait.
	jobCtx := s.jobCtx
	if jobCtx != nil {
		s.wg.Add(1)
	}
	s.mu.Unlock()

	if jobCtx == nil {
		return s.cycle(ctx, models.TriggerManual)
	}
	defer s.wg.Done()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(jobCtx, cancel)
	defer stop()

	return s.cycle(ctx, models.TriggerManual)
}

func (s *syncScheduler) State() models.SchedulerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *syncScheduler) Status(ctx context.Context) models.SyncStatus {
	state := s.syncService.State()
	status := models.SyncStatus{
		State:           s.State().String(),
		HasLocalChanges: s.tracker.HasUnsyncedChanges(),
		Policy:          state.ConflictPolicy,
		LastSync:        timePtr(state.LastSyncTimestamp),
		LastCycleAt:     timePtr(state.LastCycleAt),
		PendingSince:    timePtr(state.PendingLocalChangeTimestamp),
	}
	s.mu.Lock()
	if s.lastErr != nil {
		status.LastError = s.lastErr.Error()
	}
	s.mu.Unlock()

	remote, err := s.syncService.RemoteStatus(ctx)
	if err != nil {
		s.logger.Debug().Err(err).Str("func", "syncScheduler.Status").Msg("remote status unavailable")
		return status
	}
	status.RemoteReachable = true
	status.IsAhead = remote.Ahead
	status.IsBehind = remote.Behind
	return status
}

// enterSyncingLocked applies a trigger to the state machine and reports
// whether a cycle may start. Only Idle moves to Syncing. In Backoff a timer
// tick returns to Idle; reconnect and manual triggers start a cycle.
func (s *syncScheduler) enterSyncingLocked(trigger models.Trigger) bool {
	switch s.state {
	case models.StateSyncing:
		s.logTrigger(trigger, "sync already in flight, trigger dropped")
		return false
	case models.StateBackoff:
		switch trigger {
		case models.TriggerTimer:
			s.state = models.StateIdle
			s.logTrigger(trigger, "leaving backoff")
			return false
		case models.TriggerDebounce:
			s.logTrigger(trigger, "backing off, trigger dropped")
			return false
		}
	}

	s.state = models.StateSyncing
	return true
}

func (s *syncScheduler) logTrigger(trigger models.Trigger, msg string) {
	s.logger.Debug().Str("func", "syncScheduler.enterSyncingLocked").Stringer("trigger", trigger).Msg(msg)
}

func (s *syncScheduler) cycle(ctx context.Context, trigger models.Trigger) (models.CycleResult, error) {
	s.notifier.Notify(models.NotificationSyncStarted, "")

	cycleCtx, cancel := context.WithTimeout(ctx, s.cfg.CycleTimeout)
	defer cancel()

	result, err := s.syncService.RunCycle(cycleCtx, trigger)

	s.mu.Lock()
	if err != nil {
		s.state = models.StateBackoff
	} else {
		s.state = models.StateIdle
	}
	s.lastErr = err
	s.mu.Unlock()

	if err != nil {
		s.logger.Err(err).Str("func", "syncScheduler.cycle").Stringer("trigger", trigger).Msg("sync failed")
		s.notifier.Notify(models.NotificationSyncFailed, err.Error())
		return result, err
	}

	s.notifier.Notify(models.NotificationSyncComplete, "")
	return result, nil
}

// onMarkDirty re-arms the debounce timer so that a burst of edits produces
// one trigger, one window after the latest edit.
func (s *syncScheduler) onMarkDirty(time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.jobCtx == nil {
		return
	}
	if s.debounce == nil {
		s.debounce = time.AfterFunc(s.cfg.Debounce, func() { s.Trigger(models.TriggerDebounce) })
		return
	}
	s.debounce.Reset(s.cfg.Debounce)
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

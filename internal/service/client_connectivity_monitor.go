package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/case-sync/internal/logger"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type connectivityMonitor struct {
	remote   pinger
	interval time.Duration
	timeout  time.Duration
	logger   *logger.Logger

	online atomic.Bool

	mu        sync.Mutex
	listeners []func()
	cancel    context.CancelFunc
	wg        sync.WaitGroup
}

// NewConnectivityMonitor probes remote every interval. The remote is assumed
// reachable until the first failed probe.
func NewConnectivityMonitor(remote pinger, interval, timeout time.Duration, log *logger.Logger) ConnectivityMonitor {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	if timeout <= 0 || timeout > interval {
		timeout = interval
	}
	m := &connectivityMonitor{
		remote:   remote,
		interval: interval,
		timeout:  timeout,
		logger:   log,
	}
	m.online.Store(true)
	return m
}

func (m *connectivityMonitor) Start(ctx context.Context) {
	m.Stop()

	m.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.wg.Add(1)
	m.mu.Unlock()

	go func() {
		defer m.wg.Done()
		t := time.NewTicker(m.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				m.probe(jobCtx)
			}
		}
	}()
}

func (m *connectivityMonitor) Stop() {
	m.mu.Lock()
	cancel := m.cancel
	m.cancel = nil
	m.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	m.wg.Wait()
}

func (m *connectivityMonitor) Online() bool {
	return m.online.Load()
}

func (m *connectivityMonitor) OnReconnect(fn func()) {
	if fn == nil {
		return
	}
	m.mu.Lock()
	m.listeners = append(m.listeners, fn)
	m.mu.Unlock()
}

// probe pings the remote once and fires the reconnect listeners on an
// offline to online transition.
func (m *connectivityMonitor) probe(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, m.timeout)
	err := m.remote.Ping(pingCtx)
	cancel()

	if ctx.Err() != nil {
		return
	}

	wasOnline := m.online.Swap(err == nil)
	switch {
	case err != nil && wasOnline:
		m.logger.Warn().Err(err).Str("func", "connectivityMonitor.probe").Msg("remote went offline")
	case err == nil && !wasOnline:
		m.logger.Info().Str("func", "connectivityMonitor.probe").Msg("remote reachable again")
		m.mu.Lock()
		listeners := append([]func(){}, m.listeners...)
		m.mu.Unlock()
		for _, fn := range listeners {
			fn()
		}
	}
}

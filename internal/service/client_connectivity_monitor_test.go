package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/case-sync/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedPinger отвечает ошибкой, пока down == true.
type scriptedPinger struct {
	down  atomic.Bool
	pings atomic.Int32
}

func (p *scriptedPinger) Ping(ctx context.Context) error {
	p.pings.Add(1)
	if p.down.Load() {
		return errors.New("connection refused")
	}
	return ctx.Err()
}

func TestConnectivityMonitor_ReconnectFiresOnce(t *testing.T) {
	p := &scriptedPinger{}
	m := NewConnectivityMonitor(p, time.Hour, time.Second, logger.Nop()).(*connectivityMonitor)
	var reconnects atomic.Int32
	m.OnReconnect(func() { reconnects.Add(1) })
	m.OnReconnect(nil)
	ctx := context.Background()

	m.probe(ctx)
	assert.True(t, m.Online())
	assert.Zero(t, reconnects.Load(), "online at start is not a reconnect")

	p.down.Store(true)
	m.probe(ctx)
	m.probe(ctx)
	assert.False(t, m.Online())

	p.down.Store(false)
	m.probe(ctx)
	m.probe(ctx)
	assert.True(t, m.Online())
	assert.Equal(t, int32(1), reconnects.Load())
}

func TestConnectivityMonitor_StartStop(t *testing.T) {
	p := &scriptedPinger{}
	m := NewConnectivityMonitor(p, 5*time.Millisecond, 0, logger.Nop())

	m.Start(context.Background())
	require.Eventually(t, func() bool { return p.pings.Load() >= 3 }, time.Second, time.Millisecond)
	m.Stop()

	pings := p.pings.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, pings, p.pings.Load())
	assert.NotPanics(t, m.Stop)
}

func TestConnectivityMonitor_Defaults(t *testing.T) {
	m := NewConnectivityMonitor(&scriptedPinger{}, 0, time.Hour, logger.Nop()).(*connectivityMonitor)
	assert.Equal(t, 15*time.Second, m.interval)
	assert.Equal(t, 15*time.Second, m.timeout)
}

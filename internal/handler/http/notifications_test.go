package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/case-sync/models"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamNotifications(t *testing.T) {
	f := newHandlerFixture(t)
	srv := httptest.NewServer(f.router)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/notifications"
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	require.NoError(t, err)
	defer conn.Close(websocket.StatusNormalClosure, "")

	// the handler subscribes after the upgrade, so keep publishing until the
	// first event makes it through
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		ticker := time.NewTicker(10 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				f.notifier.Notify(models.NotificationSyncFailed, "remote unavailable")
			}
		}
	}()

	var got models.Notification
	require.NoError(t, wsjson.Read(ctx, conn, &got))

	assert.Equal(t, models.NotificationSyncFailed, got.Kind)
	assert.Equal(t, "sync failed: remote unavailable", got.Message)
	assert.Equal(t, "remote unavailable", got.Reason)
}

func TestStreamNotifications_RequiresUpgrade(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.do(t, http.MethodGet, "/api/notifications", nil)

	assert.Equal(t, http.StatusUpgradeRequired, rec.Code)
}

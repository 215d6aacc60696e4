package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/case-sync/internal/logger"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

const (
	notificationBuffer       = 32
	notificationWriteTimeout = 5 * time.Second
)

// streamNotifications upgrades the request to a websocket and forwards every
// notification as a JSON text message until either side goes away. Client
// messages are ignored.
func (h *Handler) streamNotifications(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"localhost:*", "127.0.0.1:*"},
	})
	if err != nil {
		log.Err(err).Str("func", "*Handler.streamNotifications").Msg(ErrWebsocketUpgrade.Error())
		return
	}
	defer conn.CloseNow()

	events, unsubscribe := h.services.Notifier.Subscribe(notificationBuffer)
	defer unsubscribe()

	log.Debug().Str("func", "*Handler.streamNotifications").Msg("notification subscriber connected")

	ctx := conn.CloseRead(r.Context())
	for {
		select {
		case <-ctx.Done():
			conn.Close(websocket.StatusGoingAway, "")
			return
		case event, ok := <-events:
			if !ok {
				conn.Close(websocket.StatusNormalClosure, "notifier closed")
				return
			}

			writeCtx, cancel := context.WithTimeout(ctx, notificationWriteTimeout)
			err := wsjson.Write(writeCtx, conn, event)
			cancel()
			if err != nil {
				if !errors.Is(err, context.Canceled) {
					log.Warn().Err(err).Str("func", "*Handler.streamNotifications").Msg("error writing notification")
				}
				return
			}
		}
	}
}

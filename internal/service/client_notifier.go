package service

import (
	"sync"
	"time"

	"github.com/MKhiriev/case-sync/internal/logger"
	"github.com/MKhiriev/case-sync/models"
)

var notificationMessages = map[models.NotificationKind]string{
	models.NotificationSyncStarted:   "sync started",
	models.NotificationSyncComplete:  "sync complete",
	models.NotificationSyncFailed:    "sync failed",
	models.NotificationBackupRotated: "backup rotated",
	models.NotificationBackupFailed:  "backup failed",
}

type notifier struct {
	logger *logger.Logger
	now    func() time.Time

	mu     sync.Mutex
	nextID int
	subs   map[int]chan models.Notification
}

// NewNotifier returns a Notifier that drops events for subscribers whose
// buffer is full.
func NewNotifier(log *logger.Logger) Notifier {
	return &notifier{
		logger: log,
		now:    time.Now,
		subs:   make(map[int]chan models.Notification),
	}
}

func (n *notifier) Notify(kind models.NotificationKind, reason string) {
	msg := notificationMessages[kind]
	if msg == "" {
		msg = string(kind)
	}
	if reason != "" {
		msg += ": " + reason
	}
	event := models.Notification{Kind: kind, Message: msg, Reason: reason, At: n.now().UTC()}

	n.logger.Info().Str("func", "notifier.Notify").Str("kind", string(kind)).Msg(msg)

	n.mu.Lock()
	defer n.mu.Unlock()
	for id, ch := range n.subs {
		select {
		case ch <- event:
		default:
			n.logger.Warn().Str("func", "notifier.Notify").Int("subscriber", id).Msg("subscriber is slow, notification dropped")
		}
	}
}

// Subscribe registers a new subscriber. The returned func unsubscribes and
// closes the channel; it is safe to call more than once.
func (n *notifier) Subscribe(buffer int) (<-chan models.Notification, func()) {
	if buffer <= 0 {
		buffer = 16
	}
	ch := make(chan models.Notification, buffer)

	n.mu.Lock()
	id := n.nextID
	n.nextID++
	n.subs[id] = ch
	n.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			n.mu.Lock()
			delete(n.subs, id)
			n.mu.Unlock()
			close(ch)
		})
	}
}

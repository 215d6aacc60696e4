package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/case-sync/internal/logger"
	"github.com/MKhiriev/case-sync/internal/mock/servicemock"
	"github.com/MKhiriev/case-sync/internal/service"
	"github.com/MKhiriev/case-sync/internal/utils"
	"github.com/MKhiriev/case-sync/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// handlerFixture wires a Handler over gomock service doubles.
type handlerFixture struct {
	records   *servicemock.MockCaseRecordService
	sync      *servicemock.MockSyncService
	scheduler *servicemock.MockSyncScheduler
	backups   *servicemock.MockBackupRotator
	notifier  service.Notifier

	handler *Handler
	router  http.Handler
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &handlerFixture{
		records:   servicemock.NewMockCaseRecordService(ctrl),
		sync:      servicemock.NewMockSyncService(ctrl),
		scheduler: servicemock.NewMockSyncScheduler(ctrl),
		backups:   servicemock.NewMockBackupRotator(ctrl),
		notifier:  service.NewNotifier(logger.Nop()),
	}
	services := &service.ClientServices{
		Records:       f.records,
		SyncService:   f.sync,
		Scheduler:     f.scheduler,
		BackupRotator: f.backups,
		Notifier:      f.notifier,
	}
	f.handler = NewHandler(services, models.NewAppBuildInfo("1.2.3", "2026-10-01", "abc123"), 3, logger.Nop())
	f.router = f.handler.Init()
	return f
}

func (f *handlerFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch v := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(v))
	default:
		data, err := json.Marshal(v)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, utils.DecodeJSON(rec.Body, &v))
	return v
}

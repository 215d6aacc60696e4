package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/case-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAPITestController(t *testing.T, handler http.HandlerFunc) Controller {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	ctrl, err := NewAPIController(srv.URL, time.Second)
	require.NoError(t, err)
	return ctrl
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	io.WriteString(w, body)
}

func TestNewAPIController_AddsScheme(t *testing.T) {
	ctrl, err := NewAPIController("127.0.0.1:8089", time.Second)
	require.NoError(t, err)

	api := ctrl.(*apiController)
	assert.Equal(t, "http://127.0.0.1:8089", api.client.BaseURL)
}

func TestAPIController_SyncNow(t *testing.T) {
	ctrl := newAPITestController(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/sync", r.URL.Path)
		writeJSON(w, http.StatusOK, `{"trigger":"manual","pulled":true,"pushed":true,"attempts":1,"commitId":"c0ffee"}`)
	})

	result, err := ctrl.SyncNow(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.TriggerManual, result.Trigger)
	assert.True(t, result.Pulled)
	assert.True(t, result.Pushed)
	assert.Equal(t, "c0ffee", result.CommitID)
}

func TestAPIController_SyncNowConflict(t *testing.T) {
	ctrl := newAPITestController(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusConflict, `{"error":"sync already in progress","traceId":"t-1"}`)
	})

	_, err := ctrl.SyncNow(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "sync already in progress", apiErr.Message)
}

func TestAPIController_ErrorWithoutBody(t *testing.T) {
	ctrl := newAPITestController(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := ctrl.Status(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusText(http.StatusBadGateway), apiErr.Message)
}

func TestAPIController_Status(t *testing.T) {
	ctrl := newAPITestController(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/sync/status", r.URL.Path)
		writeJSON(w, http.StatusOK, `{"state":"backoff","hasLocalChanges":true,"isAhead":true,"policy":"merge","lastError":"remote unavailable"}`)
	})

	status, err := ctrl.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "backoff", status.State)
	assert.True(t, status.HasLocalChanges)
	assert.Equal(t, models.PolicyMerge, status.Policy)
	assert.Equal(t, "remote unavailable", status.LastError)
}

func TestAPIController_SetPolicy(t *testing.T) {
	ctrl := newAPITestController(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/sync/policy", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "remote-wins", body["policy"])

		writeJSON(w, http.StatusOK, `{"policy":"remote-wins"}`)
	})

	assert.NoError(t, ctrl.SetPolicy(context.Background(), models.PolicyRemoteWins))
}

func TestAPIController_Backups(t *testing.T) {
	ctrl := newAPITestController(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/backups":
			writeJSON(w, http.StatusOK, `[{"key":"backup-1","size":2},{"key":"backup-2","size":3,"latest":true}]`)
		case r.Method == http.MethodPost && r.URL.Path == "/api/backups":
			writeJSON(w, http.StatusCreated, `{"key":"backup-3","size":4,"latest":true}`)
		case r.Method == http.MethodPost && r.URL.Path == "/api/backups/backup-2/restore":
			writeJSON(w, http.StatusOK, `{"timeline":[{"id":9007199254740993,"title":"hearing"}],"evidence":[],"correspondence":[]}`)
		case r.Method == http.MethodPost && r.URL.Path == "/api/backups/missing/restore":
			writeJSON(w, http.StatusNotFound, `{"error":"backup not found"}`)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusTeapot)
		}
	})
	ctx := context.Background()

	backups, err := ctrl.ListBackups(ctx)
	require.NoError(t, err)
	require.Len(t, backups, 2)
	assert.True(t, backups[1].Latest)

	info, err := ctrl.CreateBackup(ctx)
	require.NoError(t, err)
	assert.Equal(t, "backup-3", info.Key)
	assert.Equal(t, 4, info.Size)

	record, err := ctrl.RestoreBackup(ctx, "backup-2")
	require.NoError(t, err)
	require.Len(t, record.Timeline, 1)
	id, err := record.Timeline[0].ID()
	require.NoError(t, err)
	assert.Equal(t, "9007199254740993", id)

	_, err = ctrl.RestoreBackup(ctx, "missing")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
}

func TestAPIController_Unreachable(t *testing.T) {
	ctrl, err := NewAPIController("http://127.0.0.1:1", 200*time.Millisecond)
	require.NoError(t, err)

	_, err = ctrl.Status(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	assert.NotErrorAs(t, err, &apiErr)
}

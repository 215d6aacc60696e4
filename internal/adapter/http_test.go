// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/case-sync/internal/config"
	"github.com/MKhiriev/case-sync/internal/logger"
	"github.com/MKhiriev/case-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fileStore is an in-memory HTTP file store honouring If-Match and
// If-None-Match the way a real object store does.
type fileStore struct {
	mu       sync.Mutex
	files    map[string][]byte
	etags    map[string]string
	version  int
	messages []string
}

func newFileStore() *fileStore {
	return &fileStore{files: map[string][]byte{}, etags: map[string]string{}}
}

func (s *fileStore) put(path string, body []byte) string {
	s.version++
	etag := fmt.Sprintf("\"v%d\"", s.version)
	s.files[path] = body
	s.etags[path] = etag
	return etag
}

func (s *fileStore) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := strings.TrimPrefix(r.URL.Path, "/files/")
	body, exists := s.files[path]

	switch r.Method {
	case http.MethodHead, http.MethodGet:
		if !exists {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("ETag", s.etags[path])
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodGet {
			_, _ = w.Write(body)
		}
	case http.MethodPut:
		if match := r.Header.Get("If-Match"); match != "" && (!exists || match != s.etags[path]) {
			w.WriteHeader(http.StatusPreconditionFailed)
			return
		}
		if r.Header.Get("If-None-Match") == "*" && exists {
			w.WriteHeader(http.StatusPreconditionFailed)
			return
		}
		data, _ := io.ReadAll(r.Body)
		if msg := r.Header.Get(commitMessageHeader); msg != "" {
			s.messages = append(s.messages, msg)
		}
		w.Header().Set("ETag", s.put(path, data))
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func newTestHTTPGateway(t *testing.T, serverURL string) *httpFileStoreGateway {
	t.Helper()
	cfg := config.ClientRemote{
		Address:        serverURL,
		RecordPath:     "case-data.json",
		RequestTimeout: 2 * time.Second,
	}
	gw, err := NewHTTPFileStoreGateway(cfg, logger.Nop())
	require.NoError(t, err)
	return gw.(*httpFileStoreGateway)
}

func recordWith(ids ...string) models.CaseRecord {
	record := models.NewCaseRecord()
	for _, id := range ids {
		record.Timeline = append(record.Timeline, models.Item{"id": id})
	}
	return record
}

func TestNewHTTPFileStoreGateway_InvalidAddress(t *testing.T) {
	_, err := NewHTTPFileStoreGateway(config.ClientRemote{Address: "  "}, logger.Nop())
	require.Error(t, err)
}

func TestHTTPGateway_EmptyStore(t *testing.T) {
	srv := httptest.NewServer(newFileStore())
	defer srv.Close()
	gw := newTestHTTPGateway(t, srv.URL)
	ctx := context.Background()

	status, err := gw.FetchStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.RemoteStatus{}, status)

	record, err := gw.PullRecord(ctx)
	require.NoError(t, err)
	assert.Zero(t, record.Size())
}

func TestHTTPGateway_StageAndPush(t *testing.T) {
	store := newFileStore()
	srv := httptest.NewServer(store)
	defer srv.Close()
	gw := newTestHTTPGateway(t, srv.URL)
	ctx := context.Background()

	ref, err := gw.StageAndCommit(ctx, recordWith("t1"), "Auto-sync: now")
	require.NoError(t, err)
	assert.NotEmpty(t, ref.ID)

	status, err := gw.FetchStatus(ctx)
	require.NoError(t, err)
	assert.True(t, status.Ahead)

	result, err := gw.Push(ctx, ref)
	require.NoError(t, err)
	assert.Equal(t, models.PushSucceeded, result)
	assert.Equal(t, []string{"Auto-sync: now"}, store.messages)

	status, err = gw.FetchStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.RemoteStatus{}, status)

	pulled, err := gw.PullRecord(ctx)
	require.NoError(t, err)
	assert.True(t, pulled.Equal(recordWith("t1")))

	require.NoError(t, gw.FastForward(ctx))
	status, err = gw.FetchStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.RemoteStatus{}, status)
}

func TestHTTPGateway_ConcurrentWriterCausesConflict(t *testing.T) {
	srv := httptest.NewServer(newFileStore())
	defer srv.Close()
	ctx := context.Background()

	a := newTestHTTPGateway(t, srv.URL)
	b := newTestHTTPGateway(t, srv.URL)

	// both start from the same remote version
	ref, err := a.StageAndCommit(ctx, recordWith("base"), "seed")
	require.NoError(t, err)
	_, err = a.Push(ctx, ref)
	require.NoError(t, err)
	_, err = b.PullRecord(ctx)
	require.NoError(t, err)

	// a wins the race
	ref, err = a.StageAndCommit(ctx, recordWith("base", "a1"), "a")
	require.NoError(t, err)
	result, err := a.Push(ctx, ref)
	require.NoError(t, err)
	require.Equal(t, models.PushSucceeded, result)

	// b loses it
	refB, err := b.StageAndCommit(ctx, recordWith("base", "b1"), "b")
	require.NoError(t, err)
	result, err = b.Push(ctx, refB)
	require.NoError(t, err)
	assert.Equal(t, models.PushConflict, result)

	status, err := b.FetchStatus(ctx)
	require.NoError(t, err)
	assert.True(t, status.Behind)
	assert.True(t, status.Ahead)

	// re-pull, re-stage and retry succeeds
	remote, err := b.PullRecord(ctx)
	require.NoError(t, err)
	assert.True(t, remote.Equal(recordWith("base", "a1")))

	refB, err = b.StageAndCommit(ctx, recordWith("a1", "b1", "base"), "b retry")
	require.NoError(t, err)
	result, err = b.Push(ctx, refB)
	require.NoError(t, err)
	assert.Equal(t, models.PushSucceeded, result)
}

func TestHTTPGateway_PushWithoutStage(t *testing.T) {
	srv := httptest.NewServer(newFileStore())
	defer srv.Close()
	gw := newTestHTTPGateway(t, srv.URL)

	_, err := gw.Push(context.Background(), models.CommitRef{})
	require.ErrorIs(t, err, ErrNothingStaged)
}

func TestHTTPGateway_ServerErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("maintenance"))
	}))
	defer srv.Close()
	gw := newTestHTTPGateway(t, srv.URL)
	ctx := context.Background()

	_, err := gw.FetchStatus(ctx)
	require.ErrorIs(t, err, ErrRemoteUnreachable)

	_, err = gw.PullRecord(ctx)
	require.ErrorIs(t, err, ErrRemoteUnreachable)

	ref, err := gw.StageAndCommit(ctx, recordWith("x"), "m")
	require.NoError(t, err)
	_, err = gw.Push(ctx, ref)
	require.ErrorIs(t, err, ErrRemoteUnreachable)

	require.ErrorIs(t, gw.Ping(ctx), ErrRemoteUnreachable)
}

func TestHTTPGateway_TransportError(t *testing.T) {
	srv := httptest.NewServer(newFileStore())
	url := srv.URL
	srv.Close()

	gw := newTestHTTPGateway(t, url)
	ctx := context.Background()

	_, err := gw.FetchStatus(ctx)
	require.ErrorIs(t, err, ErrRemoteUnreachable)
	require.ErrorIs(t, gw.Ping(ctx), ErrRemoteUnreachable)
}

func TestHTTPGateway_MalformedRemote(t *testing.T) {
	store := newFileStore()
	store.put("case-data.json", []byte("not json"))
	srv := httptest.NewServer(store)
	defer srv.Close()

	_, err := newTestHTTPGateway(t, srv.URL).PullRecord(context.Background())
	require.ErrorIs(t, err, ErrInvalidDocument)
}

func TestHTTPGateway_AuxiliaryFiles(t *testing.T) {
	srv := httptest.NewServer(newFileStore())
	defer srv.Close()
	gw := newTestHTTPGateway(t, srv.URL)
	ctx := context.Background()

	_, err := gw.ReadFile(ctx, "backup-info.json")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, gw.WriteFile(ctx, "backup-info.json", []byte(`{"dataSize":3}`)))
	require.NoError(t, gw.WriteFile(ctx, "backup-info.json", []byte(`{"dataSize":4}`)))

	data, err := gw.ReadFile(ctx, "backup-info.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"dataSize":4}`, string(data))

	require.NoError(t, gw.Ping(ctx))
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:9000", want: "http://localhost:9000"},
		{raw: "https://files.example.com/", want: "https://files.example.com"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilePath_EscapesSegments(t *testing.T) {
	assert.Equal(t, "/files/cases/a%20b.json", filePath("/cases/a b.json"))
}

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus int
		wantLevel  string
	}{
		{"explicit 200", http.StatusOK, "ok", http.StatusOK, "info"},
		{"created", http.StatusCreated, `{"id":"x"}`, http.StatusCreated, "info"},
		{"no write", 0, "", http.StatusOK, "info"},
		{"bad gateway", http.StatusBadGateway, "remote down", http.StatusBadGateway, "error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{}
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.status != 0 {
					w.WriteHeader(tt.status)
				}
				if tt.body != "" {
					_, _ = w.Write([]byte(tt.body))
				}
			})

			req := httptest.NewRequest(http.MethodPost, "/api/sync", nil)
			req = req.WithContext(zerolog.New(&buf).WithContext(req.Context()))
			rec := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rec, req)

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, "/api/sync", entry["uri"])
			assert.Equal(t, http.MethodPost, entry["method"])
			assert.EqualValues(t, tt.wantStatus, entry["status"])
			assert.EqualValues(t, len(tt.body), entry["size"])
			assert.Contains(t, entry, "duration")
		})
	}
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	h := &Handler{}
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") })

	assert.Panics(t, func() {
		h.withLogging(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

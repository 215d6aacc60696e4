package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	data := map[string]string{"state": "idle"}

	n, err := WriteJSON(w, data, http.StatusOK)

	require.NoError(t, err)
	assert.NotZero(t, n)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"state":"idle"}`, w.Body.String())
}

func TestWriteJSON_CustomStatusCode(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, map[string]string{"error": "not found"}, http.StatusNotFound)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestWriteError_IncludesTraceID(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/record", nil)
	r = r.WithContext(WithTraceID(r.Context(), "trace-1"))
	w := httptest.NewRecorder()

	WriteError(w, r, "boom", http.StatusBadGateway)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, ErrorResponse{Error: "boom", TraceID: "trace-1"}, resp)
}

func TestWriteError_NoTraceID(t *testing.T) {
	w := httptest.NewRecorder()

	WriteError(w, httptest.NewRequest(http.MethodGet, "/", nil), "bad", http.StatusBadRequest)

	assert.JSONEq(t, `{"error":"bad"}`, w.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
		empty   bool
	}{
		{name: "object", body: `{"id": 7, "title": "x"}`},
		{name: "empty", body: "  ", wantErr: true, empty: true},
		{name: "malformed", body: `{"id":`, wantErr: true},
		{name: "trailing", body: `{"id":1} {"id":2}`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v map[string]any
			err := DecodeJSON(strings.NewReader(tt.body), &v)
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, json.Number("7"), v["id"])
				return
			}
			require.Error(t, err)
			if tt.empty {
				assert.ErrorIs(t, err, ErrEmptyBody)
			}
		})
	}
}

func TestDecodeJSON_NilBody(t *testing.T) {
	var v map[string]any
	assert.ErrorIs(t, DecodeJSON(nil, &v), ErrEmptyBody)
}

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func gunzip(t *testing.T, data []byte) string {
	t.Helper()
	zr, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(out)
}

func echoHandler(status int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.WriteHeader(status)
		if status != http.StatusNoContent {
			_, _ = w.Write(body)
		}
	})
}

func TestGZip_CompressesResponse(t *testing.T) {
	payload := strings.Repeat(`{"id":"ev-1","kind":"photo"}`, 50)
	req := httptest.NewRequest(http.MethodPut, "/api/record", strings.NewReader(payload))
	req.Header.Set("Accept-Encoding", "gzip, deflate")
	rec := httptest.NewRecorder()

	withGZip(echoHandler(http.StatusOK)).ServeHTTP(rec, req)

	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	assert.Less(t, rec.Body.Len(), len(payload))
	assert.Equal(t, payload, gunzip(t, rec.Body.Bytes()))
}

func TestGZip_DecompressesRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodPut, "/api/record", bytes.NewReader(gzipBytes(t, `{"timeline":[]}`)))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(echoHandler(http.StatusOK)).ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Equal(t, `{"timeline":[]}`, rec.Body.String())
}

func TestGZip_InvalidRequestBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPut, "/api/record", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(echoHandler(http.StatusOK)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGZip_NoContentStaysEmpty(t *testing.T) {
	req := httptest.NewRequest(http.MethodDelete, "/api/record/timeline/1", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(echoHandler(http.StatusNoContent)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Zero(t, rec.Body.Len())
}

func TestGZip_HeaderOnlyResponseIsValidStream(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/record", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "", gunzip(t, rec.Body.Bytes()))
}

func TestGZip_PoolReuse(t *testing.T) {
	handler := withGZip(echoHandler(http.StatusOK))
	for i := 0; i < 10; i++ {
		payload := strings.Repeat("x", 100+i)
		req := httptest.NewRequest(http.MethodPut, "/api/record", strings.NewReader(payload))
		req.Header.Set("Accept-Encoding", "gzip")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, payload, gunzip(t, rec.Body.Bytes()))
	}
}

func TestWrappedReadCloser_Close(t *testing.T) {
	called := false
	rc := &wrappedReadCloser{Reader: strings.NewReader(""), OnClose: func() { called = true }}

	assert.NoError(t, rc.Close())
	assert.True(t, called)
	assert.NoError(t, (&wrappedReadCloser{Reader: strings.NewReader("")}).Close())
}

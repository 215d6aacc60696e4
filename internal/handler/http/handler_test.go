package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/case-sync/internal/logger"
	"github.com/MKhiriev/case-sync/internal/service"
	"github.com/MKhiriev/case-sync/internal/utils"
	"github.com/MKhiriev/case-sync/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.ClientServices{}
	log := logger.Nop()
	build := models.NewAppBuildInfo("v1", "today", "deadbeef")

	h := NewHandler(svc, build, 4, log)

	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Same(t, log, h.logger)
	assert.Equal(t, build, h.build)
	assert.Equal(t, 4, h.backupRetain)
}

func TestNewHandler_DefaultRetain(t *testing.T) {
	h := NewHandler(&service.ClientServices{}, models.AppBuildInfo{}, 0, logger.Nop())

	assert.Equal(t, service.DefaultBackupRetain, h.backupRetain)
}

func TestInit_RegistersRoutes(t *testing.T) {
	router := NewHandler(&service.ClientServices{}, models.AppBuildInfo{}, 1, logger.Nop()).Init()

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/version"},
		{http.MethodGet, "/api/notifications"},
		{http.MethodGet, "/api/record"},
		{http.MethodPut, "/api/record"},
		{http.MethodPut, "/api/record/strategy"},
		{http.MethodPost, "/api/record/timeline"},
		{http.MethodDelete, "/api/record/evidence/7"},
		{http.MethodPost, "/api/sync"},
		{http.MethodGet, "/api/sync/status"},
		{http.MethodGet, "/api/sync/policy"},
		{http.MethodPut, "/api/sync/policy"},
		{http.MethodGet, "/api/backups"},
		{http.MethodPost, "/api/backups"},
		{http.MethodPost, "/api/backups/backup-1/restore"},
	}
	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			assert.True(t, router.Match(chi.NewRouteContext(), rt.method, rt.path))
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.do(t, http.MethodGet, "/api/unknown", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	f := newHandlerFixture(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodDelete, "/api/record"},
		{http.MethodPost, "/api/sync/status"},
		{http.MethodGet, "/api/backups/backup-1/restore"},
	} {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := f.do(t, tc.method, tc.path, nil)

			require.Equal(t, http.StatusNotFound, rec.Code)
			resp := decodeBody[utils.ErrorResponse](t, rec)
			assert.Equal(t, "Not Found", resp.Error)
			assert.NotEmpty(t, resp.TraceID)
		})
	}
}

func TestInit_TraceIDHeader(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.do(t, http.MethodGet, "/api/version", nil)

	_, err := uuid.Parse(rec.Header().Get(traceIDHeader))
	assert.NoError(t, err)
}

func TestGetVersion(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.do(t, http.MethodGet, "/api/version", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"version":"1.2.3","date":"2026-10-01","commit":"abc123"}`, rec.Body.String())
}

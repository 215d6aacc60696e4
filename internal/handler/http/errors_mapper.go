// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/case-sync/internal/logger"
	"github.com/MKhiriev/case-sync/internal/service"
	"github.com/MKhiriev/case-sync/internal/store"
	"github.com/MKhiriev/case-sync/internal/utils"
	"github.com/MKhiriev/case-sync/models"
)

// errorStatusMap is checked in order; the first matching sentinel wins.
var errorStatusMap = []struct {
	err    error
	status int
}{
	{ErrInvalidJSON, http.StatusBadRequest},
	{utils.ErrEmptyBody, http.StatusBadRequest},
	{models.ErrUnknownCollection, http.StatusBadRequest},
	{models.ErrUnknownConflictPolicy, http.StatusBadRequest},
	{service.ErrInvalidRecord, http.StatusBadRequest},
	{service.ErrMergeAmbiguous, http.StatusUnprocessableEntity},

	{service.ErrItemNotFound, http.StatusNotFound},
	{store.ErrBackupNotFound, http.StatusNotFound},

	{service.ErrSyncInProgress, http.StatusConflict},
	{service.ErrPushConflict, http.StatusConflict},

	{service.ErrRemoteUnavailable, http.StatusBadGateway},

	{service.ErrBackupFailure, http.StatusInternalServerError},
	{service.ErrLocalStore, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, entry := range errorStatusMap {
		if errors.Is(err, entry.err) {
			return entry.status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError logs err on the request logger and answers with the
// mapped status and err's message.
func writeServiceError(w http.ResponseWriter, r *http.Request, funcName, msg string, err error) {
	status := statusFromError(err)
	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Msg(msg)

	utils.WriteError(w, r, err.Error(), status)
}

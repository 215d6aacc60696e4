// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/case-sync/internal/logger"
	"github.com/MKhiriev/case-sync/internal/utils"
	"github.com/MKhiriev/case-sync/models"
)

type policyRequest struct {
	Policy string `json:"policy"`
}

type policyResponse struct {
	Policy models.ConflictPolicy `json:"policy"`
}

// syncNow runs a manual cycle. The cycle is detached from the request so a
// client hanging up cannot abort a push halfway.
func (h *Handler) syncNow(w http.ResponseWriter, r *http.Request) {
	result, err := h.services.Scheduler.SyncNow(context.WithoutCancel(r.Context()))
	if err != nil {
		writeServiceError(w, r, "*Handler.syncNow", "manual sync failed", err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) syncStatus(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.Scheduler.Status(r.Context()), http.StatusOK)
}

func (h *Handler) getPolicy(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, policyResponse{Policy: h.services.SyncService.Policy()}, http.StatusOK)
}

func (h *Handler) setPolicy(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req policyRequest
	if err := utils.DecodeJSON(r.Body, &req); err != nil {
		log.Err(err).Str("func", "*Handler.setPolicy").Msg("Invalid JSON was passed")
		utils.WriteError(w, r, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	policy, err := models.ParseConflictPolicy(req.Policy)
	if err != nil {
		writeServiceError(w, r, "*Handler.setPolicy", "unknown conflict policy", err)
		return
	}

	if err = h.services.SyncService.SetPolicy(r.Context(), policy); err != nil {
		writeServiceError(w, r, "*Handler.setPolicy", "error saving conflict policy", err)
		return
	}

	log.Info().Str("func", "*Handler.setPolicy").Str("policy", string(policy)).Msg("conflict policy changed")
	utils.WriteJSON(w, policyResponse{Policy: policy}, http.StatusOK)
}

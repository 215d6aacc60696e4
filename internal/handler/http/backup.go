package http

import (
	"net/http"

	"github.com/MKhiriev/case-sync/internal/logger"
	"github.com/MKhiriev/case-sync/internal/utils"
	"github.com/MKhiriev/case-sync/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listBackups(w http.ResponseWriter, r *http.Request) {
	backups, err := h.services.BackupRotator.List(r.Context())
	if err != nil {
		writeServiceError(w, r, "*Handler.listBackups", "error listing backups", err)
		return
	}
	if backups == nil {
		backups = []models.BackupInfo{}
	}

	utils.WriteJSON(w, backups, http.StatusOK)
}

// createBackup takes a snapshot outside the rotation schedule and then
// applies the configured retention.
func (h *Handler) createBackup(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	backup, err := h.services.BackupRotator.Snapshot(ctx)
	if err != nil {
		writeServiceError(w, r, "*Handler.createBackup", "error creating backup", err)
		return
	}

	pruned, err := h.services.BackupRotator.Rotate(ctx, h.backupRetain)
	if err != nil {
		writeServiceError(w, r, "*Handler.createBackup", "error rotating backups", err)
		return
	}
	log.Info().Str("func", "*Handler.createBackup").Str("key", backup.Key).Int("pruned", pruned).Msg("backup created")

	utils.WriteJSON(w, models.BackupInfo{
		Key:       backup.Key,
		CreatedAt: backup.CreatedAt,
		Size:      backup.Record.Size(),
		Latest:    true,
	}, http.StatusCreated)
}

func (h *Handler) restoreBackup(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	record, err := h.services.BackupRotator.Restore(r.Context(), key)
	if err != nil {
		writeServiceError(w, r, "*Handler.restoreBackup", "error restoring backup", err)
		return
	}

	logger.FromRequest(r).Info().Str("func", "*Handler.restoreBackup").Str("key", key).Msg("backup restored")
	utils.WriteJSON(w, record, http.StatusOK)
}

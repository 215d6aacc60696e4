package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/case-sync/internal/logger"
	"github.com/MKhiriev/case-sync/internal/utils"
	"github.com/MKhiriev/case-sync/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getRecord(w http.ResponseWriter, r *http.Request) {
	record, err := h.services.Records.Get(r.Context())
	if err != nil {
		writeServiceError(w, r, "*Handler.getRecord", "error reading case record", err)
		return
	}

	utils.WriteJSON(w, record, http.StatusOK)
}

func (h *Handler) replaceRecord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	record := models.NewCaseRecord()
	if err := utils.DecodeJSON(r.Body, &record); err != nil {
		log.Err(err).Str("func", "*Handler.replaceRecord").Msg("Invalid JSON was passed")
		utils.WriteError(w, r, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	saved, err := h.services.Records.Replace(r.Context(), record)
	if err != nil {
		writeServiceError(w, r, "*Handler.replaceRecord", "error replacing case record", err)
		return
	}

	utils.WriteJSON(w, saved, http.StatusOK)
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	collection, err := models.ParseCollection(chi.URLParam(r, "collection"))
	if err != nil {
		writeServiceError(w, r, "*Handler.addItem", "unknown collection", err)
		return
	}

	var item models.Item
	if err = utils.DecodeJSON(r.Body, &item); err != nil || item == nil {
		log.Err(err).Str("func", "*Handler.addItem").Msg("Invalid JSON was passed")
		utils.WriteError(w, r, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	saved, err := h.services.Records.AddItem(r.Context(), collection, item)
	if err != nil {
		writeServiceError(w, r, "*Handler.addItem", fmt.Sprintf("error adding %s item", collection), err)
		return
	}

	utils.WriteJSON(w, saved, http.StatusCreated)
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	collection, err := models.ParseCollection(chi.URLParam(r, "collection"))
	if err != nil {
		writeServiceError(w, r, "*Handler.removeItem", "unknown collection", err)
		return
	}

	id := chi.URLParam(r, "id")
	if err = h.services.Records.RemoveItem(r.Context(), collection, id); err != nil {
		writeServiceError(w, r, "*Handler.removeItem", fmt.Sprintf("error removing %s item %q", collection, id), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setStrategy(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var strategy models.Strategy
	if err := utils.DecodeJSON(r.Body, &strategy); err != nil || strategy == nil {
		log.Err(err).Str("func", "*Handler.setStrategy").Msg("Invalid JSON was passed")
		utils.WriteError(w, r, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	saved, err := h.services.Records.SetStrategy(r.Context(), strategy)
	if err != nil {
		writeServiceError(w, r, "*Handler.setStrategy", "error saving strategy", err)
		return
	}

	utils.WriteJSON(w, saved, http.StatusOK)
}

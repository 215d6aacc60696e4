package http

import (
	"net/http"

	"github.com/MKhiriev/case-sync/internal/utils"
)

type versionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, versionResponse{
		Version: h.build.BuildVersion(),
		Date:    h.build.BuildDate(),
		Commit:  h.build.BuildCommit(),
	}, http.StatusOK)
}

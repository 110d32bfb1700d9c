package http

import (
	"net/http"

	"github.com/MKhiriev/go-review-fetcher/internal/utils"
)

func (h *Handler) version(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.BuildInfo(r.Context()), http.StatusOK)
}

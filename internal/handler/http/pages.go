package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-review-fetcher/internal/app"
	"github.com/MKhiriev/go-review-fetcher/internal/logger"
	"github.com/MKhiriev/go-review-fetcher/internal/service"
	"github.com/MKhiriev/go-review-fetcher/internal/utils"
	"github.com/MKhiriev/go-review-fetcher/models"
)

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	snap := h.session.Snapshot()
	h.mu.Unlock()

	h.renderPage(w, r, http.StatusOK, h.newPageData(r.Context(), snap))
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))

	h.mu.Lock()
	snap := h.session.Search(r.Context(), query)
	h.mu.Unlock()

	data := h.newPageData(r.Context(), snap)
	if query == "" {
		data.Error = app.MsgEmptyQuery
	}
	h.renderPage(w, r, http.StatusOK, data)
}

func (h *Handler) fetch(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		h.rejectFetch(w, r, fmt.Errorf("%w: %v", errInvalidForm, err))
		return
	}

	appID := strings.TrimSpace(r.PostForm.Get("app_id"))
	region, ok := models.ParseRegion(r.PostForm.Get("region"))
	if !ok {
		h.rejectFetch(w, r, errInvalidRegion)
		return
	}
	count, err := strconv.Atoi(r.PostForm.Get("count"))
	if err != nil {
		h.rejectFetch(w, r, errInvalidCount)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	snap, err := h.session.FetchListing(r.Context(), appID, region, count)
	if err != nil {
		if errors.Is(err, service.ErrUnknownListing) {
			log.Warn().Err(err).Str("app_id", appID).Msg("fetch for unknown listing")
		}
		h.renderPage(w, r, statusFromError(err), h.errorPage(r, err))
		return
	}

	h.renderPage(w, r, http.StatusOK, h.newPageData(r.Context(), snap))
}

func (h *Handler) rejectFetch(w http.ResponseWriter, r *http.Request, err error) {
	h.mu.Lock()
	data := h.errorPage(r, err)
	h.mu.Unlock()

	h.renderPage(w, r, http.StatusBadRequest, data)
}

// errorPage renders the current session with err on top. Callers hold mu.
func (h *Handler) errorPage(r *http.Request, err error) pageData {
	data := h.newPageData(r.Context(), h.session.Snapshot())
	data.Error = app.MsgInvalidDataProvided + ": " + err.Error()
	if statusFromError(err) == http.StatusInternalServerError {
		data.Error = app.MsgInternalServerError
	}
	return data
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	file, _, err := h.session.Export()
	h.mu.Unlock()

	if err != nil {
		if errors.Is(err, service.ErrNothingToExport) {
			http.Error(w, app.MsgNothingToExport, http.StatusNotFound)
			return
		}
		logger.FromRequest(r).Err(err).Msg("export failed")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	utils.WriteAttachment(w, file.Name, file.ContentType, file.Data)
}

package http

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"net/http"

	"github.com/MKhiriev/go-review-fetcher/internal/logger"
	"github.com/MKhiriev/go-review-fetcher/internal/service"
	"github.com/MKhiriev/go-review-fetcher/models"
)

//go:embed templates/index.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

type pageData struct {
	Snap       service.Snapshot
	SelectedID string
	Regions    []models.Region
	Counts     []int
	Header     []string
	Error      string
	Version    string
	Percent    int
}

func reviewCounts() []int {
	counts := make([]int, 0, models.MaxReviewCount/models.ReviewCountStep)
	for n := models.MinReviewCount; n <= models.MaxReviewCount; n += models.ReviewCountStep {
		counts = append(counts, n)
	}
	return counts
}

func (h *Handler) newPageData(ctx context.Context, snap service.Snapshot) pageData {
	data := pageData{
		Snap:    snap,
		Regions: models.Regions(),
		Counts:  reviewCounts(),
		Header:  models.PreviewHeader,
		Version: h.services.AppInfoService.BuildInfo(ctx).BuildVersion(),
		Percent: int(snap.Progress * 100),
	}
	if snap.Selected != nil {
		data.SelectedID = snap.Selected.AppID
	}
	return data
}

// renderPage executes the template into a buffer first so a template failure
// still produces a clean 500.
func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, status int, data pageData) {
	var buf bytes.Buffer
	if err := h.page.Execute(&buf, data); err != nil {
		logger.FromRequest(r).Err(err).Msg("render page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

package tui

import (
	"strings"

	"github.com/MKhiriev/go-review-fetcher/internal/app"
	"github.com/MKhiriev/go-review-fetcher/models"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
)

type fetchingModel struct {
	listing  models.AppListing
	spinner  spinner.Model
	progress progress.Model
	percent  float64
}

func newFetchingModel() fetchingModel {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return fetchingModel{
		spinner:  s,
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
	}
}

func (m fetchingModel) View() string {
	var b strings.Builder

	b.WriteString(m.listing.Label())
	b.WriteString("\n\n")
	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(app.MsgFetching)
	b.WriteString("\n\n")
	b.WriteString(m.progress.ViewAs(m.percent))

	return renderPage("FETCHING", b.String(), "")
}

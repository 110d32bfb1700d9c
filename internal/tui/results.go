package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-review-fetcher/internal/service"
	"github.com/MKhiriev/go-review-fetcher/models"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

const (
	dateColumnWidth     = 10
	reviewColumnWidth   = 48
	ratingColumnWidth   = 6
	responseColumnWidth = 36
)

type resultsModel struct {
	listing   models.AppListing
	region    models.Region
	count     int
	total     int
	table     table.Model
	progress  progress.Model
	savedPath string
	status    string
}

func newResultsModel(snap service.Snapshot) resultsModel {
	columns := []table.Column{
		{Title: models.PreviewHeader[0], Width: dateColumnWidth},
		{Title: models.PreviewHeader[1], Width: reviewColumnWidth},
		{Title: models.PreviewHeader[2], Width: ratingColumnWidth},
		{Title: models.PreviewHeader[3], Width: responseColumnWidth},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(previewTableRows(snap.Preview)),
		table.WithFocused(true),
		table.WithHeight(len(snap.Preview)+1),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	t.SetStyles(styles)

	m := resultsModel{
		region:   snap.Region,
		count:    snap.Count,
		total:    len(snap.Rows),
		table:    t,
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
	}
	if snap.Selected != nil {
		m.listing = *snap.Selected
	}
	return m
}

func previewTableRows(preview []models.PreviewRow) []table.Row {
	rows := make([]table.Row, 0, len(preview))
	for _, p := range preview {
		rows = append(rows, table.Row{
			p.Date,
			fitText(p.Review, reviewColumnWidth),
			strconv.Itoa(p.Rating),
			fitText(valueOrDash(p.Response), responseColumnWidth),
		})
	}
	return rows
}

func (m resultsModel) View() string {
	var b strings.Builder

	b.WriteString(m.listing.Label())
	b.WriteString(fmt.Sprintf("\nRegion: %s  Fetched: %d reviews\n\n", strings.ToUpper(string(m.region)), m.total))
	b.WriteString(m.progress.ViewAs(1))
	b.WriteString("\n\n")
	b.WriteString(m.table.View())

	if m.savedPath != "" {
		b.WriteString("\n\nCSV: ")
		b.WriteString(m.savedPath)
	}
	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(noticeStyle.Render(m.status))
	}

	return renderPage("REVIEWS PREVIEW", b.String(), "s: save csv  c: copy path  r: refetch  esc: back  n: new search")
}

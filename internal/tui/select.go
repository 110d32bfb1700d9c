package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-review-fetcher/internal/app"
	"github.com/MKhiriev/go-review-fetcher/models"
)

type selectModel struct {
	listings []models.AppListing
	idx      int
	region   models.Region
	count    int
	notice   string
}

func (m *selectModel) reset(listings []models.AppListing) {
	m.listings = listings
	m.idx = 0
	m.notice = ""
}

func (m *selectModel) move(step int) {
	m.idx = min(max(m.idx+step, 0), len(m.listings)-1)
}

func (m selectModel) View() string {
	var b strings.Builder

	for i, l := range m.listings {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
			b.WriteString(focusStyle.Render(cursor + l.Label()))
		} else {
			b.WriteString(cursor + l.Label())
		}
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("\nRegion: %s  Reviews: %d", strings.ToUpper(string(m.region)), m.count))

	if m.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(noticeStyle.Render(m.notice))
	}

	return renderPage(strings.ToUpper(app.MsgSelectApp), b.String(), "enter: fetch reviews  ↑/↓: move  esc: back")
}

package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-review-fetcher/internal/app"
	"github.com/MKhiriev/go-review-fetcher/models"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
)

type formField int

const (
	fieldName formField = iota
	fieldRegion
	fieldCount
	formFieldCount
)

// formModel collects the app name, the review region and the review count.
type formModel struct {
	name      textinput.Model
	focus     formField
	regions   []models.Region
	regionIdx int
	count     int

	searching bool
	spinner   spinner.Model
	notice    string
}

func newFormModel() formModel {
	name := textinput.New()
	name.Placeholder = "e.g. WhatsApp"
	name.CharLimit = 100
	name.Width = 40
	name.Focus()

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return formModel{
		name:    name,
		regions: models.Regions(),
		count:   models.MinReviewCount,
		spinner: s,
	}
}

func (m formModel) region() models.Region {
	return m.regions[m.regionIdx]
}

func (m *formModel) setRegion(r models.Region) {
	if idx := slices.Index(m.regions, r); idx >= 0 {
		m.regionIdx = idx
	}
}

func (m *formModel) nextRegion(step int) {
	n := len(m.regions)
	m.regionIdx = ((m.regionIdx+step)%n + n) % n
}

// stepCount moves the count by one step, clamped to the allowed range.
func (m *formModel) stepCount(dir int) {
	m.count = min(max(m.count+dir*models.ReviewCountStep, models.MinReviewCount), models.MaxReviewCount)
}

func (m *formModel) cycleFocus(step int) {
	n := int(formFieldCount)
	m.focus = formField(((int(m.focus)+step)%n + n) % n)
	if m.focus == fieldName {
		m.name.Focus()
	} else {
		m.name.Blur()
	}
}

func (m *formModel) focusName() {
	m.focus = fieldName
	m.name.Focus()
}

// adjust changes the value of the focused selector.
func (m *formModel) adjust(dir int) {
	switch m.focus {
	case fieldRegion:
		m.nextRegion(dir)
	case fieldCount:
		m.stepCount(dir)
	}
}

func (m formModel) query() string {
	return strings.TrimSpace(m.name.Value())
}

func (m formModel) View() string {
	var b strings.Builder

	b.WriteString(m.label(fieldName, app.MsgEnterAppName))
	b.WriteString("\n")
	b.WriteString(m.name.View())
	b.WriteString("\n\n")

	b.WriteString(m.label(fieldRegion, "Region"))
	b.WriteString("\n")
	for i, r := range m.regions {
		code := strings.ToUpper(string(r))
		if i == m.regionIdx {
			code = "[" + code + "]"
		} else {
			code = " " + code + " "
		}
		b.WriteString(code)
	}
	b.WriteString("\n\n")

	b.WriteString(m.label(fieldCount, "Number of reviews"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("< %d >  (%d-%d)", m.count, models.MinReviewCount, models.MaxReviewCount))

	if m.searching {
		b.WriteString("\n\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Searching...")
	}
	if m.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(noticeStyle.Render(m.notice))
	}

	return renderPage("GOOGLE PLAY REVIEWS", b.String(), "enter: search  tab: next field  ←/→: change  v: about")
}

func (m formModel) label(f formField, text string) string {
	if m.focus == f {
		return focusStyle.Render("> " + text)
	}
	return "  " + text
}

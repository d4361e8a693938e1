package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/abelbrown/tubeview/internal/catalog"
)

type searchModel struct {
	input   textinput.Model
	query   string // last submitted
	results []catalog.Video
	loading bool
	err     error
	cursor  int
}

func newSearch() searchModel {
	ti := textinput.New()
	ti.Placeholder = "Search"
	ti.Prompt = "/ "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(colorHighlight).Bold(true)
	ti.TextStyle = lipgloss.NewStyle().Foreground(colorText)
	ti.CharLimit = 64
	return searchModel{input: ti}
}

func (m searchModel) focus() (searchModel, tea.Cmd) {
	m.input.Focus()
	return m, textinput.Blink
}

func (m searchModel) blur() searchModel {
	m.input.Blur()
	return m
}

func (m searchModel) focused() bool {
	return m.input.Focused()
}

// submit records the query; the caller issues the search command.
// Blank queries are ignored.
func (m searchModel) submit() (searchModel, string, bool) {
	q := strings.TrimSpace(m.input.Value())
	if q == "" {
		return m, "", false
	}
	m.query = q
	m.loading = true
	m.err = nil
	m.results = nil
	m.cursor = 0
	m.input.Blur()
	return m, q, true
}

// apply takes results for the latest submitted query only.
func (m searchModel) apply(msg SearchResults) (searchModel, bool) {
	if msg.Query != m.query {
		return m, false
	}
	m.loading = false
	m.err = msg.Err
	m.results = msg.Videos
	m.cursor = 0
	return m, true
}

func (m searchModel) move(delta int) searchModel {
	m.cursor = min(max(m.cursor+delta, 0), max(len(m.results)-1, 0))
	return m
}

func (m searchModel) selected() (catalog.Video, bool) {
	if m.cursor >= len(m.results) {
		return catalog.Video{}, false
	}
	return m.results[m.cursor], true
}

func (m searchModel) view(width, visible int, now time.Time, spin string) string {
	var b strings.Builder
	m.input.Width = max(width-6, 10)
	b.WriteString(SearchBar.Width(max(width, 1)).Render(m.input.View()))
	b.WriteString("\n")

	switch {
	case m.query == "":
		b.WriteString(HelpStyle.Render("Type a query and press enter."))
		return b.String()
	case m.loading:
		b.WriteString(FooterStyle.Render(spin + " Searching..."))
		return b.String()
	case m.err != nil:
		b.WriteString(ErrorStyle.Render("Search failed: " + m.err.Error()))
		return b.String()
	}

	b.WriteString(MetaStyle.Render("Search results for: " + m.query))
	b.WriteString("\n")
	if len(m.results) == 0 {
		b.WriteString(HelpStyle.Render("No results found\nTry different keywords or remove search filters"))
		return b.String()
	}

	offset := scrollWindow(m.cursor, 0, visible)
	end := min(offset+visible, len(m.results))
	for i := offset; i < end; i++ {
		b.WriteString(renderVideoRow(m.results[i], i == m.cursor, width, now))
		b.WriteString("\n")
	}
	return b.String()
}

package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/abelbrown/tubeview/internal/catalog"
	"github.com/abelbrown/tubeview/internal/feed"
)

// homeModel is the infinite video grid, flattened to a list.
type homeModel struct {
	feed     feed.Controller
	sentinel Sentinel
	cursor   int
	offset   int
}

func newHome(c feed.Controller, s Sentinel) homeModel {
	return homeModel{feed: c, sentinel: s}
}

// start loads the first page; later calls are no-ops.
func (m homeModel) start() (homeModel, tea.Cmd) {
	if m.feed.State() != feed.Idle {
		return m, nil
	}
	var cmd tea.Cmd
	m.feed, cmd = m.feed.Advance()
	return m, cmd
}

func (m homeModel) videos() []catalog.Video {
	es := m.feed.Entities()
	out := make([]catalog.Video, 0, len(es))
	for _, e := range es {
		if v, ok := e.(catalog.Video); ok {
			out = append(out, v)
		}
	}
	return out
}

func (m homeModel) selected() (catalog.Video, bool) {
	vs := m.videos()
	if m.cursor < 0 || m.cursor >= len(vs) {
		return catalog.Video{}, false
	}
	return vs[m.cursor], true
}

// move shifts the cursor by delta rows and re-observes the sentinel.
func (m homeModel) move(delta, visible int, now time.Time) (homeModel, tea.Cmd) {
	n := m.feed.Len()
	m.cursor = min(max(m.cursor+delta, 0), max(n-1, 0))
	m.offset = scrollWindow(m.cursor, m.offset, visible)
	return m.observe(visible, now)
}

// observe checks the bottom visible row against the sentinel and turns an
// edge into exactly one Advance.
func (m homeModel) observe(visible int, now time.Time) (homeModel, tea.Cmd) {
	bottom := max(m.cursor, m.offset+visible-1)
	var fired bool
	m.sentinel, fired = m.sentinel.Observe(bottom, m.feed.Len(), now)
	if fired {
		var cmd tea.Cmd
		m.feed, cmd = m.feed.Advance()
		return m, cmd
	}
	if m.sentinel.Pending() {
		return m, retryAfter(viewHome, m.sentinel.RetryIn(now))
	}
	return m, nil
}

// retry re-advances a feed left in Failed.
func (m homeModel) retry() (homeModel, tea.Cmd) {
	if m.feed.State() != feed.Failed {
		return m, nil
	}
	var cmd tea.Cmd
	m.feed, cmd = m.feed.Advance()
	return m, cmd
}

// pageLoaded applies msg if it belongs to this feed, then re-observes so a
// sentinel that is still visible keeps loading.
func (m homeModel) pageLoaded(msg feed.PageLoadedMsg, visible int, now time.Time) (homeModel, tea.Cmd, bool) {
	var ok bool
	m.feed, ok = m.feed.Update(msg)
	if !ok {
		return m, nil, false
	}
	var cmd tea.Cmd
	m, cmd = m.observe(visible, now)
	return m, cmd, true
}

func (m homeModel) footer(spin string) string {
	switch m.feed.State() {
	case feed.Loading:
		return FooterStyle.Render(spin + " Loading more videos...")
	case feed.Exhausted:
		return FooterStyle.Render("No more videos to load")
	case feed.Failed:
		return ErrorStyle.Render("Couldn't load videos: " + m.feed.Err().Error() + " (r to retry)")
	}
	return ""
}

func (m homeModel) view(width, visible int, now time.Time, spin string) string {
	vs := m.videos()
	if len(vs) == 0 {
		if m.feed.IsLoading() {
			return FooterStyle.Render(spin + " Loading videos...")
		}
		return m.footer(spin)
	}

	var b strings.Builder
	end := min(m.offset+visible, len(vs))
	for i := m.offset; i < end; i++ {
		b.WriteString(renderVideoRow(vs[i], i == m.cursor, width, now))
		b.WriteString("\n")
	}
	b.WriteString(m.footer(spin))
	return b.String()
}

func retryAfter(v viewID, d time.Duration) tea.Cmd {
	if d <= 0 {
		d = time.Millisecond
	}
	return tea.Tick(d, func(time.Time) tea.Msg { return sentinelRetry{view: v} })
}

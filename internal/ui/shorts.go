package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/abelbrown/tubeview/internal/catalog"
	"github.com/abelbrown/tubeview/internal/feed"
)

// shortsModel shows one short at a time.
type shortsModel struct {
	feed     feed.Controller
	sentinel Sentinel
	index    int
	liked    bool
	disliked bool
}

func newShorts(c feed.Controller, s Sentinel) shortsModel {
	return shortsModel{feed: c, sentinel: s}
}

func (m shortsModel) start() (shortsModel, tea.Cmd) {
	if m.feed.State() != feed.Idle {
		return m, nil
	}
	var cmd tea.Cmd
	m.feed, cmd = m.feed.Advance()
	return m, cmd
}

func (m shortsModel) current() (catalog.Short, bool) {
	es := m.feed.Entities()
	if m.index < 0 || m.index >= len(es) {
		return catalog.Short{}, false
	}
	s, ok := es[m.index].(catalog.Short)
	return s, ok
}

// step moves to the next (+1) or previous (-1) short. Reactions reset
// whenever the visible short changes.
func (m shortsModel) step(delta int, now time.Time) (shortsModel, tea.Cmd) {
	next := min(max(m.index+delta, 0), max(m.feed.Len()-1, 0))
	if next != m.index {
		m.index = next
		m.liked, m.disliked = false, false
	}
	return m.observe(now)
}

func (m shortsModel) observe(now time.Time) (shortsModel, tea.Cmd) {
	var fired bool
	m.sentinel, fired = m.sentinel.Observe(m.index, m.feed.Len(), now)
	if fired {
		var cmd tea.Cmd
		m.feed, cmd = m.feed.Advance()
		return m, cmd
	}
	if m.sentinel.Pending() {
		return m, retryAfter(viewShorts, m.sentinel.RetryIn(now))
	}
	return m, nil
}

// Like and dislike are mutually exclusive toggles.
func (m shortsModel) toggleLike() shortsModel {
	m.liked = !m.liked
	if m.liked {
		m.disliked = false
	}
	return m
}

func (m shortsModel) toggleDislike() shortsModel {
	m.disliked = !m.disliked
	if m.disliked {
		m.liked = false
	}
	return m
}

func (m shortsModel) retry() (shortsModel, tea.Cmd) {
	if m.feed.State() != feed.Failed {
		return m, nil
	}
	var cmd tea.Cmd
	m.feed, cmd = m.feed.Advance()
	return m, cmd
}

func (m shortsModel) pageLoaded(msg feed.PageLoadedMsg, now time.Time) (shortsModel, tea.Cmd, bool) {
	var ok bool
	m.feed, ok = m.feed.Update(msg)
	if !ok {
		return m, nil, false
	}
	var cmd tea.Cmd
	m, cmd = m.observe(now)
	return m, cmd, true
}

func (m shortsModel) view(now time.Time, spin string) string {
	s, ok := m.current()
	if !ok {
		if m.feed.State() == feed.Failed {
			return ErrorStyle.Render("Couldn't load shorts: " + m.feed.Err().Error() + " (r to retry)")
		}
		return FooterStyle.Render(spin + " Loading shorts...")
	}

	like, dislike := "👍 Like", "👎 Dislike"
	if m.liked {
		like = ActiveToggle.Render(like)
	}
	if m.disliked {
		dislike = ActiveToggle.Render(dislike)
	}

	body := TitleStyle.Render(truncate(s.Title, 36)) + "\n\n" +
		channelLabel(s.ChannelName, s.Verified) + "\n" +
		MetaStyle.Render(metaLine(s.Video, now)) + "\n" +
		MetaStyle.Render(durationLabel(s.Duration)) + "\n\n" +
		like + "   " + dislike

	pos := fmt.Sprintf("%d / %d", m.index+1, m.feed.Len())
	if m.feed.IsLoading() {
		pos += " " + spin
	} else if !m.feed.HasMore() && m.index == m.feed.Len()-1 {
		pos += " • end"
	}
	return ShortCard.Render(body) + "\n" + FooterStyle.Render(pos)
}

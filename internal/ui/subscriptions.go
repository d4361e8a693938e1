package ui

import (
	"strings"
	"time"

	"github.com/abelbrown/tubeview/internal/catalog"
)

type subscriptionsModel struct {
	page    catalog.SubscriptionsPage
	loaded  bool
	loading bool
	err     error
	cursor  int // into page.Videos
}

func (m subscriptionsModel) apply(msg SubscriptionsLoaded) subscriptionsModel {
	m.loading = false
	m.err = msg.Err
	if msg.Err == nil {
		m.page = msg.Page
		m.loaded = true
		m.cursor = 0
	}
	return m
}

func (m subscriptionsModel) move(delta int) subscriptionsModel {
	m.cursor = min(max(m.cursor+delta, 0), max(len(m.page.Videos)-1, 0))
	return m
}

func (m subscriptionsModel) selected() (catalog.Video, bool) {
	if !m.loaded || m.cursor >= len(m.page.Videos) {
		return catalog.Video{}, false
	}
	return m.page.Videos[m.cursor], true
}

func (m subscriptionsModel) view(width, height int, now time.Time, spin string) string {
	if m.err != nil {
		return ErrorStyle.Render("Couldn't load subscriptions: " + m.err.Error())
	}
	if !m.loaded {
		return FooterStyle.Render(spin + " Loading subscriptions...")
	}

	var b strings.Builder
	b.WriteString(SectionHeader.Render("Channels"))
	b.WriteString("\n")
	// Four channels per line.
	chip := max(width/4-3, 8)
	for i, ch := range m.page.Channels {
		b.WriteString(renderChannel(ch, chip))
		if i%4 == 3 {
			b.WriteString("\n")
		} else {
			b.WriteString("   ")
		}
	}
	b.WriteString("\n")

	b.WriteString(SectionHeader.Render("Latest"))
	b.WriteString("\n")
	channelLines := (len(m.page.Channels) + 3) / 4
	rows := max((height-channelLines-4)/rowHeight, 1)
	offset := scrollWindow(m.cursor, 0, rows)
	end := min(offset+rows, len(m.page.Videos))
	for i := offset; i < end; i++ {
		b.WriteString(renderVideoRow(m.page.Videos[i], i == m.cursor, width, now))
		b.WriteString("\n")
	}
	return b.String()
}

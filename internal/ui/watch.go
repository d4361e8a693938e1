package ui

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/abelbrown/tubeview/internal/catalog"
)

type watchModel struct {
	videoID string
	page    catalog.WatchPage
	loaded  bool
	err     error
	cursor  int // into Recommendations
	scroll  int // comment offset
}

func newWatch(videoID string) watchModel {
	return watchModel{videoID: videoID}
}

func (m watchModel) loading() bool {
	return !m.loaded && m.err == nil
}

// apply takes a WatchLoaded for the video this view asked for.
func (m watchModel) apply(msg WatchLoaded) (watchModel, bool) {
	if msg.VideoID != m.videoID {
		return m, false
	}
	if msg.Err != nil {
		m.err = msg.Err
		return m, true
	}
	m.page = msg.Page
	m.loaded = true
	m.cursor, m.scroll = 0, 0
	return m, true
}

func (m watchModel) move(delta int) watchModel {
	if !m.loaded {
		return m
	}
	m.cursor = min(max(m.cursor+delta, 0), max(len(m.page.Recommendations)-1, 0))
	return m
}

func (m watchModel) scrollComments(delta int) watchModel {
	m.scroll = min(max(m.scroll+delta, 0), max(len(m.page.Comments)-1, 0))
	return m
}

func (m watchModel) selected() (catalog.Video, bool) {
	if !m.loaded || m.cursor >= len(m.page.Recommendations) {
		return catalog.Video{}, false
	}
	return m.page.Recommendations[m.cursor], true
}

func (m watchModel) view(width, height int, now time.Time, spin string) string {
	if m.err != nil {
		return ErrorStyle.Render("Couldn't load video: " + m.err.Error())
	}
	if !m.loaded {
		return FooterStyle.Render(spin + " Loading video...")
	}

	v := m.page.Video
	var b strings.Builder
	b.WriteString(TitleStyle.Render(truncate(v.Title, width-2)))
	b.WriteString("\n")
	b.WriteString(channelLabel(v.ChannelName, v.Verified))
	b.WriteString("  ")
	b.WriteString(MetaStyle.Render(humanize.Comma(v.Views) + " views • " + ageLabel(v.Uploaded, now)))
	b.WriteString("  ")
	b.WriteString(badge(v))
	b.WriteString("\n")

	// Half the remaining height for recommendations, the rest for comments.
	rest := max(height-4, 4)
	recRows := max(rest/2/rowHeight, 1)
	commentRows := max((rest-recRows*rowHeight)/3, 1)

	b.WriteString(SectionHeader.Render("Up next"))
	b.WriteString("\n")
	offset := scrollWindow(m.cursor, 0, recRows)
	end := min(offset+recRows, len(m.page.Recommendations))
	for i := offset; i < end; i++ {
		b.WriteString(renderVideoRow(m.page.Recommendations[i], i == m.cursor, width, now))
		b.WriteString("\n")
	}

	b.WriteString(SectionHeader.Render(humanize.Comma(int64(len(m.page.Comments))) + " Comments"))
	b.WriteString("\n")
	end = min(m.scroll+commentRows, len(m.page.Comments))
	for i := m.scroll; i < end; i++ {
		b.WriteString(renderComment(m.page.Comments[i], width))
		b.WriteString("\n")
	}
	return b.String()
}

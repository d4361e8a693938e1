package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/abelbrown/tubeview/internal/catalog"
	"github.com/abelbrown/tubeview/internal/format"
)

// rowHeight is the number of lines one video row takes.
const rowHeight = 2

// Formatting failures render as "?" rather than taking the view down.
func viewsLabel(n int64) string {
	s, err := format.ViewCount(n)
	if err != nil {
		return "?"
	}
	return s
}

func durationLabel(seconds int) string {
	s, err := format.Duration(seconds)
	if err != nil {
		return "?"
	}
	return s
}

func ageLabel(past, now time.Time) string {
	s, err := format.RelativeTime(past, now)
	if err != nil {
		return "?"
	}
	return s
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

func channelLabel(name string, verified bool) string {
	if verified {
		return name + " " + VerifiedMark.Render("✓")
	}
	return name
}

// metaLine is "1.2M views • 3 days ago".
func metaLine(v catalog.Video, now time.Time) string {
	return viewsLabel(v.Views) + " views • " + ageLabel(v.Uploaded, now)
}

func badge(v catalog.Video) string {
	if v.Live {
		return LiveBadge.Render("LIVE")
	}
	return DurationBadge.Render(durationLabel(v.Duration))
}

// renderVideoRow renders a video as a title line and a meta line.
func renderVideoRow(v catalog.Video, selected bool, width int, now time.Time) string {
	b := badge(v)
	titleWidth := width - runewidth.StringWidth(stripped(v)) - 4
	title := TitleStyle.Render(truncate(v.Title, titleWidth))
	channel := v.ChannelName
	if v.Verified {
		channel += " ✓"
	}
	meta := MetaStyle.Render(truncate(channel+" • "+metaLine(v, now), width-2))

	style := NormalRow
	if selected {
		style = SelectedRow
	}
	return style.Width(max(width, 1)).Render(title+" "+b) + "\n" +
		style.Width(max(width, 1)).Render(meta)
}

// stripped is the plain text of the row badge, for width math.
func stripped(v catalog.Video) string {
	if v.Live {
		return " LIVE "
	}
	return " " + durationLabel(v.Duration) + " "
}

func renderComment(c catalog.Comment, width int) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(c.Author))
	b.WriteString(" ")
	b.WriteString(MetaStyle.Render(c.TimeAgo))
	b.WriteString("\n")
	b.WriteString(truncate(c.Text, width-2))
	b.WriteString("\n")
	stats := fmt.Sprintf("👍 %s", humanize.Comma(int64(c.Likes)))
	if c.Replies > 0 {
		stats += fmt.Sprintf("  ↳ %d %s", c.Replies, plural(c.Replies, "reply", "replies"))
	}
	b.WriteString(MetaStyle.Render(stats))
	return b.String()
}

// renderChannel fits a channel chip into width cells.
func renderChannel(ch catalog.Channel, width int) string {
	dot := " "
	if ch.HasNewContent {
		dot = NewContentDot.Render("●")
	}
	name := ch.Name
	if ch.Verified {
		name = truncate(name, width-4)
		return dot + " " + name + " " + VerifiedMark.Render("✓")
	}
	return dot + " " + truncate(name, width-2)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// scrollWindow keeps cursor within [offset, offset+visible).
func scrollWindow(cursor, offset, visible int) int {
	if visible < 1 {
		visible = 1
	}
	if cursor < offset {
		return cursor
	}
	if cursor >= offset+visible {
		return cursor - visible + 1
	}
	return offset
}

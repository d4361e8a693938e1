package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/abelbrown/tubeview/internal/otel"
)

// debugPanelChrome is DebugPanel's border plus vertical padding, in lines.
const debugPanelChrome = 4

// debugOverlay renders engine counters and the most recent events.
// Returns "" for a nil ring.
func debugOverlay(ring *otel.RingBuffer, width, height int) string {
	if ring == nil {
		return ""
	}

	stats := ring.Stats()
	lines := []string{
		DebugHeaderStyle.Render("Engine"),
		fmt.Sprintf("  Feeds:    %d advances, %d pages, %d ignored, %d exhausted, %d errors",
			stats[otel.KindFeedAdvance], stats[otel.KindFeedPageLoaded],
			stats[otel.KindFeedAdvanceIgnored], stats[otel.KindFeedExhausted], stats[otel.KindFeedError]),
		fmt.Sprintf("  Search:   %d queries, %d complete, %d errors",
			stats[otel.KindSearchQuery], stats[otel.KindSearchComplete], stats[otel.KindSearchError]),
		fmt.Sprintf("  Catalog:  %d watch pages", stats[otel.KindCatalogWatch]),
		fmt.Sprintf("  UI:       %d view switches, %d sentinel edges",
			stats[otel.KindViewSwitch], stats[otel.KindSentinel]),
		fmt.Sprintf("  Buffer:   %d / %d events", ring.Len(), ring.Cap()),
		"",
		DebugHeaderStyle.Render("Recent Events"),
	}

	for _, e := range ring.Last(20) {
		line := fmt.Sprintf("  %6s  %-22s", formatAge(time.Since(e.Time)), string(e.Kind))
		if e.FeedID != "" {
			line += "  feed:" + shortID(e.FeedID)
		}
		if e.Page > 0 {
			line += fmt.Sprintf(" p%d", e.Page)
		}
		if e.Msg != "" {
			line += "  " + runewidth.Truncate(e.Msg, 40, "…")
		}
		if e.Err != "" {
			line += "  ERR:" + runewidth.Truncate(e.Err, 30, "…")
		}
		lines = append(lines, line)
	}

	maxHeight := max(height-debugPanelChrome, 1)
	if len(lines) > maxHeight {
		lines = lines[:maxHeight]
	}

	panelWidth := min(84, width-4)
	panelWidth = max(panelWidth, 20)
	return DebugPanel.Width(panelWidth).Render(strings.Join(lines, "\n"))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// formatAge is a compact age; clock skew clamps to "0ms".
func formatAge(d time.Duration) string {
	switch {
	case d < 0:
		return "0ms"
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	default:
		return fmt.Sprintf("%.0fm", d.Minutes())
	}
}

func debugStatusBar(width int) string {
	keys := StatusBarKey.Render("D") + StatusBarText.Render(":close")
	return StatusBar.Width(max(width, 1)).Render("  [DEBUG]  " + keys)
}

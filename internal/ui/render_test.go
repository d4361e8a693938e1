package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/abelbrown/tubeview/internal/catalog"
)

func sampleVideo() catalog.Video {
	return catalog.Video{
		ID:          "video-7",
		Title:       "Ultimate Guide to Photography",
		ChannelName: "Photography Tips",
		Views:       1_234_567,
		Uploaded:    genNow.Add(-3 * 24 * time.Hour),
		Duration:    245,
		Verified:    true,
	}
}

func TestMetaLine(t *testing.T) {
	if got, want := metaLine(sampleVideo(), genNow), "1.2M views • 3 days ago"; got != want {
		t.Errorf("metaLine = %q, want %q", got, want)
	}
}

func TestLabelsFallBack(t *testing.T) {
	if got := viewsLabel(-1); got != "?" {
		t.Errorf("viewsLabel(-1) = %q", got)
	}
	if got := durationLabel(-5); got != "?" {
		t.Errorf("durationLabel(-5) = %q", got)
	}
	if got := ageLabel(genNow.Add(time.Hour), genNow); got != "?" {
		t.Errorf("ageLabel(future) = %q", got)
	}
}

func TestBadge(t *testing.T) {
	v := sampleVideo()
	if got := badge(v); !strings.Contains(got, "4:05") {
		t.Errorf("badge = %q, want duration", got)
	}
	v.Live = true
	if got := badge(v); !strings.Contains(got, "LIVE") || strings.Contains(got, "4:05") {
		t.Errorf("live badge = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate kept = %q", got)
	}
	got := truncate("a rather long video title", 10)
	if runewidth.StringWidth(got) > 10 || !strings.HasSuffix(got, "…") {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("anything", 0); got != "" {
		t.Errorf("truncate(0) = %q", got)
	}
}

func TestRenderVideoRowFitsWidth(t *testing.T) {
	v := sampleVideo()
	v.Title = strings.Repeat("Very Long Title ", 20)

	for _, width := range []int{40, 80, 120} {
		row := renderVideoRow(v, false, width, genNow)
		lines := strings.Split(row, "\n")
		if len(lines) != rowHeight {
			t.Fatalf("width %d: %d lines, want %d", width, len(lines), rowHeight)
		}
		for _, l := range lines {
			if w := lipgloss.Width(l); w > width {
				t.Errorf("width %d: line is %d cells: %q", width, w, l)
			}
		}
	}
}

func TestRenderVideoRowContent(t *testing.T) {
	row := renderVideoRow(sampleVideo(), true, 100, genNow)
	for _, want := range []string{"Ultimate Guide to Photography", "Photography Tips ✓", "1.2M views", "4:05"} {
		if !strings.Contains(row, want) {
			t.Errorf("row missing %q:\n%s", want, row)
		}
	}
}

func TestRenderComment(t *testing.T) {
	c := catalog.Comment{Author: "Tech Guru", Text: "This deserves more views!", Likes: 4321, TimeAgo: "2 weeks ago", Replies: 1}
	got := renderComment(c, 80)
	for _, want := range []string{"Tech Guru", "2 weeks ago", "4,321", "1 reply"} {
		if !strings.Contains(got, want) {
			t.Errorf("comment missing %q:\n%s", want, got)
		}
	}

	c.Replies = 0
	if got := renderComment(c, 80); strings.Contains(got, "repl") {
		t.Errorf("comment without replies mentions them:\n%s", got)
	}
}

func TestRenderChannel(t *testing.T) {
	ch := catalog.Channel{Name: "Travel Vlogs Daily", Verified: true, HasNewContent: true}
	got := renderChannel(ch, 10)
	if !strings.Contains(got, "●") || !strings.Contains(got, "✓") {
		t.Errorf("chip = %q", got)
	}
	if strings.Contains(got, "Travel Vlogs Daily") {
		t.Errorf("chip not truncated: %q", got)
	}
}

func TestScrollWindow(t *testing.T) {
	tests := []struct {
		cursor, offset, visible, want int
	}{
		{0, 0, 10, 0},
		{9, 0, 10, 0},
		{10, 0, 10, 1},
		{3, 5, 10, 3},
		{25, 5, 10, 16},
		{4, 2, 0, 4},
	}
	for _, tt := range tests {
		if got := scrollWindow(tt.cursor, tt.offset, tt.visible); got != tt.want {
			t.Errorf("scrollWindow(%d, %d, %d) = %d, want %d", tt.cursor, tt.offset, tt.visible, got, tt.want)
		}
	}
}

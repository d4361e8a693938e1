package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/abelbrown/tubeview/internal/otel"
)

func writeEvents(t *testing.T, evs ...otel.Event) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	l := otel.NewLogger(&buf)
	for _, e := range evs {
		l.Emit(e)
	}
	l.Close()
	buf.WriteString("not json\n\n")
	return &buf
}

func TestReadTailLinesKeepsNewest(t *testing.T) {
	var evs []otel.Event
	for i := 1; i <= 7; i++ {
		evs = append(evs, otel.Event{Kind: otel.KindFeedPageLoaded, Page: i})
	}
	lines := readTailLines(writeEvents(t, evs...), 3, eventFilter{}.match)

	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	for i, want := range []int{5, 6, 7} {
		if lines[i].ev.Page != want {
			t.Errorf("line %d: page %d, want %d", i, lines[i].ev.Page, want)
		}
	}
}

func TestEventFilter(t *testing.T) {
	buf := writeEvents(t,
		otel.Event{Level: otel.LevelDebug, Kind: otel.KindFeedAdvance, Comp: "feed", FeedID: "abc123"},
		otel.Event{Level: otel.LevelError, Kind: otel.KindFeedError, Comp: "feed", FeedID: "abc123", Err: "boom"},
		otel.Event{Level: otel.LevelInfo, Kind: otel.KindSearchQuery, Comp: "coord", Query: "cats"},
	)
	all := readTailLines(buf, 10, eventFilter{}.match)
	if len(all) != 3 {
		t.Fatalf("got %d lines, want 3", len(all))
	}

	tests := []struct {
		name   string
		filter eventFilter
		want   int
	}{
		{"kind prefix", eventFilter{kind: "feed"}, 2},
		{"min level", eventFilter{level: "info"}, 2},
		{"component", eventFilter{comp: "coord"}, 1},
		{"feed prefix", eventFilter{feedID: "abc"}, 2},
		{"session prefix", eventFilter{session: "zzz"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := 0
			for _, l := range all {
				if tt.filter.match(l.ev) {
					n++
				}
			}
			if n != tt.want {
				t.Errorf("matched %d, want %d", n, tt.want)
			}
		})
	}
}

func TestFormatEvent(t *testing.T) {
	ev := eventRecord{
		Time:   time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		Level:  "info",
		Kind:   "feed.page_loaded",
		Comp:   "feed",
		Entity: "video",
		FeedID: "0123456789abcdef",
		Page:   2,
		Count:  20,
		DurMs:  501.2,
	}
	got := formatEvent(ev)
	for _, want := range []string{"03:04:05.000", "INFO", "feed.page_loaded", "feed=01234567 p2", "(501ms)", "n=20"} {
		if !strings.Contains(got, want) {
			t.Errorf("%q missing %q", got, want)
		}
	}
}

package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/abelbrown/tubeview/internal/otel"
)

func TestDebugOverlayNilRing(t *testing.T) {
	if got := debugOverlay(nil, 80, 24); got != "" {
		t.Errorf("debugOverlay(nil) = %q, want empty", got)
	}
}

func TestDebugOverlayStats(t *testing.T) {
	ring := otel.NewRingBuffer(64)
	now := time.Now()
	for _, k := range []otel.EventKind{
		otel.KindFeedAdvance, otel.KindFeedAdvance, otel.KindFeedPageLoaded,
		otel.KindFeedAdvanceIgnored, otel.KindSearchQuery, otel.KindSearchComplete,
	} {
		ring.Push(otel.Event{Kind: k, Time: now})
	}

	got := debugOverlay(ring, 120, 40)
	for _, want := range []string{
		"Engine",
		"2 advances, 1 pages, 1 ignored, 0 exhausted, 0 errors",
		"1 queries, 1 complete, 0 errors",
		"6 / 64 events",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("overlay missing %q:\n%s", want, got)
		}
	}
}

func TestDebugOverlayRecentEvents(t *testing.T) {
	ring := otel.NewRingBuffer(64)
	ring.Push(otel.Event{Kind: otel.KindFeedPageLoaded, Time: time.Now(), FeedID: "0123456789abcdef", Page: 3})
	ring.Push(otel.Event{Kind: otel.KindFeedError, Time: time.Now(), Err: "source down"})
	ring.Push(otel.Event{Kind: otel.KindViewSwitch, Time: time.Now(), Msg: "shorts"})

	got := debugOverlay(ring, 120, 40)
	for _, want := range []string{"Recent Events", "feed:01234567 p3", "ERR:source down", "shorts"} {
		if !strings.Contains(got, want) {
			t.Errorf("overlay missing %q:\n%s", want, got)
		}
	}
}

func TestDebugOverlayFitsHeight(t *testing.T) {
	ring := otel.NewRingBuffer(64)
	for i := 0; i < 30; i++ {
		ring.Push(otel.Event{Kind: otel.KindFeedAdvance, Time: time.Now()})
	}

	got := debugOverlay(ring, 80, 12)
	if n := strings.Count(got, "\n") + 1; n > 12 {
		t.Errorf("overlay is %d lines, want <= 12", n)
	}
}

func TestFormatAge(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{-time.Second, "0ms"},
		{250 * time.Millisecond, "250ms"},
		{1500 * time.Millisecond, "1.5s"},
		{3 * time.Minute, "3m"},
	}
	for _, tt := range tests {
		if got := formatAge(tt.d); got != tt.want {
			t.Errorf("formatAge(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

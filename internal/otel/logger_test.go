package otel

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

func lines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("invalid JSON line %q: %v", line, err)
		}
		out = append(out, m)
	}
	return out
}

func TestEmitWritesJSONL(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf)

	l.Emit(Event{
		Kind:   KindFeedPageLoaded,
		Level:  LevelInfo,
		Comp:   "feed",
		FeedID: "f-1",
		Entity: "video",
		Page:   2,
		Offset: 40,
		Count:  20,
	})
	l.Close()

	got := lines(t, &buf)
	if len(got) != 1 {
		t.Fatalf("expected 1 line, got %d", len(got))
	}
	ev := got[0]
	checks := map[string]any{
		"kind":    "feed.page_loaded",
		"level":   "info",
		"comp":    "feed",
		"feed_id": "f-1",
		"entity":  "video",
		"page":    float64(2),
		"offset":  float64(40),
		"count":   float64(20),
	}
	for k, want := range checks {
		if ev[k] != want {
			t.Errorf("%s = %v, want %v", k, ev[k], want)
		}
	}
}

func TestEmitStampsTimeAndSession(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf)

	before := time.Now()
	l.Emit(Event{Kind: KindStartup})
	l.Emit(Event{Kind: KindShutdown})
	l.Close()
	after := time.Now()

	var evs []Event
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var ev Event
		if err := json.Unmarshal([]byte(line), &ev); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		evs = append(evs, ev)
	}

	if len(evs) != 2 {
		t.Fatalf("expected 2 events, got %d", len(evs))
	}
	if evs[0].Time.Before(before) || evs[0].Time.After(after) {
		t.Errorf("time %v outside [%v, %v]", evs[0].Time, before, after)
	}
	if _, err := uuid.Parse(evs[0].SessionID); err != nil {
		t.Errorf("session_id %q is not a uuid: %v", evs[0].SessionID, err)
	}
	if evs[0].SessionID != evs[1].SessionID || evs[0].SessionID != l.SessionID() {
		t.Errorf("session ids differ: %q %q %q", evs[0].SessionID, evs[1].SessionID, l.SessionID())
	}
}

func TestDurIsMilliseconds(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf)
	l.Emit(Event{Kind: KindFeedPageLoaded, Dur: 500 * time.Millisecond})
	l.Close()

	if got := lines(t, &buf)[0]["dur_ms"]; got != float64(500) {
		t.Errorf("dur_ms = %v, want 500", got)
	}
}

func TestEmptyFieldsOmitted(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf)
	l.Emit(Event{Kind: KindStartup})
	l.Close()

	line := buf.String()
	for _, field := range []string{"dur_ms", "count", "page", "offset", "feed_id", "entity", "query", "err", "msg", "extra"} {
		if strings.Contains(line, `"`+field+`"`) {
			t.Errorf("field %q should be omitted: %s", field, line)
		}
	}
}

func TestConcurrentEmit(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Emit(Event{Kind: KindFeedAdvance, Comp: "feed"})
		}()
	}
	wg.Wait()
	l.Close()

	if got := len(lines(t, &buf)); got != 100 {
		t.Errorf("expected 100 lines, got %d", got)
	}
}

func TestLevelHelpers(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf)

	l.Debug(KindMsgReceived, "ui", "KeyMsg")
	l.Info(KindStartup, "main", "starting")
	l.Warn(KindFeedAdvanceIgnored, "feed", "loading")
	l.Error(KindFeedError, "feed", errors.New("source down"))
	l.Error(KindError, "main", nil)
	l.Close()

	got := lines(t, &buf)
	want := []struct{ level, kind string }{
		{"debug", "trace.msg_received"},
		{"info", "sys.startup"},
		{"warn", "feed.advance_ignored"},
		{"error", "feed.error"},
		{"error", "sys.error"},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(got))
	}
	for i, w := range want {
		if got[i]["level"] != w.level || got[i]["kind"] != w.kind {
			t.Errorf("line %d = %v/%v, want %s/%s", i, got[i]["level"], got[i]["kind"], w.level, w.kind)
		}
	}
	if got[3]["err"] != "source down" {
		t.Errorf("err = %v", got[3]["err"])
	}
}

func TestRingMirrorsEvents(t *testing.T) {
	l := NewNullLogger()
	ring := NewRingBuffer(8)
	l.SetRingBuffer(ring)

	l.Emit(Event{Kind: KindFeedAdvance, Dur: time.Second})
	l.Close()

	got := ring.Snapshot()
	if len(got) != 1 {
		t.Fatalf("ring has %d events, want 1", len(got))
	}
	if got[0].Dur != time.Second {
		t.Errorf("ring copy lost Dur: %v", got[0].Dur)
	}
}

func TestCloseIsIdempotentAndDropsLateEvents(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf)
	l.Emit(Event{Kind: KindStartup})
	l.Close()
	l.Close()

	l.Emit(Event{Kind: KindShutdown})
	if l.Dropped() != 1 {
		t.Errorf("Dropped = %d, want 1", l.Dropped())
	}
	if got := len(lines(t, &buf)); got != 1 {
		t.Errorf("expected 1 line, got %d", got)
	}
}

func TestNilLoggerIsNoop(t *testing.T) {
	var l *Logger
	l.Emit(Event{Kind: KindStartup})
	l.Info(KindStartup, "main", "x")
	l.Close()
	if l.Dropped() != 0 || l.SessionID() != "" {
		t.Error("nil logger should report nothing")
	}
}

func TestDropWhenQueueFull(t *testing.T) {
	bw := &stallWriter{entered: make(chan struct{}), release: make(chan struct{})}
	l := NewLogger(bw)

	l.Emit(Event{Kind: KindFeedAdvance})
	<-bw.entered

	for i := 0; i < queueSize+10; i++ {
		l.Emit(Event{Kind: KindFeedAdvance})
	}
	if l.Dropped() == 0 {
		t.Error("expected drops with a full queue")
	}

	close(bw.release)
	l.Close()
}

type stallWriter struct {
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func (w *stallWriter) Write(p []byte) (int, error) {
	w.once.Do(func() {
		close(w.entered)
		<-w.release
	})
	return len(p), nil
}

func TestOpenAppends(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")

	for i := 0; i < 2; i++ {
		l, err := Open(dir)
		if err != nil {
			t.Fatalf("Open: %v", err)
		}
		l.Info(KindStartup, "main", "run")
		l.Close()
	}

	data, err := os.ReadFile(filepath.Join(dir, EventsFile))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if n := strings.Count(string(data), "\n"); n != 2 {
		t.Errorf("expected 2 lines across runs, got %d", n)
	}
}

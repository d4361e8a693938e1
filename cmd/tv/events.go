package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// eventRecord mirrors otel.Event for JSON decoding.
// Decoding loosely keeps old logs readable after the schema changes.
type eventRecord struct {
	Time      time.Time      `json:"t"`
	Level     string         `json:"level"`
	Kind      string         `json:"kind"`
	Comp      string         `json:"comp"`
	SessionID string         `json:"session_id"`
	FeedID    string         `json:"feed_id"`
	Entity    string         `json:"entity"`
	Page      int            `json:"page"`
	Count     int            `json:"count"`
	DurMs     float64        `json:"dur_ms"`
	Query     string         `json:"query"`
	Err       string         `json:"err"`
	Msg       string         `json:"msg"`
	Extra     map[string]any `json:"extra"`
}

// levelRank returns a numeric rank for filtering (higher = more severe).
func levelRank(level string) int {
	switch level {
	case "info":
		return 1
	case "warn":
		return 2
	case "error":
		return 3
	}
	return 0
}

// eventFilter selects events; empty fields match everything.
type eventFilter struct {
	kind    string // prefix
	level   string // minimum
	comp    string
	feedID  string // prefix
	session string // prefix
}

func (f eventFilter) match(ev eventRecord) bool {
	switch {
	case f.kind != "" && !strings.HasPrefix(ev.Kind, f.kind):
		return false
	case f.level != "" && levelRank(ev.Level) < levelRank(f.level):
		return false
	case f.comp != "" && ev.Comp != f.comp:
		return false
	case f.feedID != "" && !strings.HasPrefix(ev.FeedID, f.feedID):
		return false
	case f.session != "" && !strings.HasPrefix(ev.SessionID, f.session):
		return false
	}
	return true
}

func formatEvent(ev eventRecord) string {
	lvl := strings.ToUpper(ev.Level)
	if lvl == "" {
		lvl = "?"
	}
	parts := []string{fmt.Sprintf("%s %-5s [%-6s] %-22s", ev.Time.Format("15:04:05.000"), lvl, ev.Comp, ev.Kind)}

	if ev.Msg != "" {
		parts = append(parts, "- "+ev.Msg)
	}
	if ev.Entity != "" {
		parts = append(parts, ev.Entity)
	}
	if ev.FeedID != "" {
		parts = append(parts, fmt.Sprintf("feed=%.8s p%d", ev.FeedID, ev.Page))
	}
	if ev.DurMs > 0 {
		parts = append(parts, fmt.Sprintf("(%.*fms)", durPrecision(ev.DurMs), ev.DurMs))
	}
	if ev.Count > 0 {
		parts = append(parts, fmt.Sprintf("n=%d", ev.Count))
	}
	if ev.Query != "" {
		parts = append(parts, fmt.Sprintf("q=%q", ev.Query))
	}
	if ev.Err != "" {
		parts = append(parts, "err="+ev.Err)
	}
	return strings.Join(parts, " ")
}

func runEvents() {
	fs := flag.NewFlagSet("events", flag.ExitOnError)
	tail := fs.Int("tail", 50, "Number of recent lines to show")
	follow := fs.Bool("f", false, "Follow mode (like tail -f)")
	var filter eventFilter
	fs.StringVar(&filter.kind, "kind", "", "Filter by event kind prefix (e.g. 'feed')")
	fs.StringVar(&filter.level, "level", "", "Minimum level: debug, info, warn, error")
	fs.StringVar(&filter.comp, "comp", "", "Filter by component name")
	fs.StringVar(&filter.feedID, "feed", "", "Filter by feed ID prefix")
	fs.StringVar(&filter.session, "session", "", "Filter by session ID prefix")
	rawJSON := fs.Bool("json", false, "Output raw JSON lines")
	fs.Parse(os.Args[1:])

	logPath := eventLogPath(loadConfig())
	f, err := os.Open(logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		fmt.Fprintf(os.Stderr, "  Event log not found at %s\n", logPath)
		fmt.Fprintf(os.Stderr, "  Run tubeview first to generate events.\n")
		os.Exit(1)
	}
	defer f.Close()

	show := func(l parsedLine) {
		if *rawJSON {
			fmt.Println(string(l.raw))
			return
		}
		fmt.Println(formatEvent(l.ev))
	}

	for _, l := range readTailLines(f, *tail, filter.match) {
		show(l)
	}
	if !*follow {
		return
	}

	// Poll from where the scan stopped.
	reader := bufio.NewReader(f)
	for {
		line, err := reader.ReadBytes('\n')
		if err == io.EOF {
			time.Sleep(100 * time.Millisecond)
			continue
		}
		if err != nil {
			return
		}
		if l, ok := parseLine(line); ok && filter.match(l.ev) {
			show(l)
		}
	}
}

type parsedLine struct {
	ev  eventRecord
	raw []byte
}

func parseLine(raw []byte) (parsedLine, bool) {
	raw = trimLine(raw)
	if len(raw) == 0 {
		return parsedLine{}, false
	}
	var ev eventRecord
	if json.Unmarshal(raw, &ev) != nil {
		return parsedLine{}, false
	}
	return parsedLine{ev: ev, raw: append([]byte(nil), raw...)}, true
}

// readTailLines returns the last n lines of r matching the filter, oldest
// first. Lines that are not JSON are skipped.
func readTailLines(r io.Reader, n int, match func(eventRecord) bool) []parsedLine {
	if n <= 0 {
		return nil
	}
	scanner := bufio.NewScanner(r)
	// Extra maps can make lines long.
	scanner.Buffer(make([]byte, 0, 64*1024), 256*1024)

	ring := make([]parsedLine, 0, n)
	next := 0
	for scanner.Scan() {
		l, ok := parseLine(scanner.Bytes())
		if !ok || !match(l.ev) {
			continue
		}
		if len(ring) < n {
			ring = append(ring, l)
			continue
		}
		ring[next] = l
		next = (next + 1) % n
	}
	return append(ring[next:], ring[:next]...)
}

func trimLine(b []byte) []byte {
	for len(b) > 0 && (b[len(b)-1] == '\n' || b[len(b)-1] == '\r') {
		b = b[:len(b)-1]
	}
	return b
}

func durPrecision(ms float64) int {
	if ms >= 100 {
		return 0
	}
	if ms >= 1 {
		return 1
	}
	return 2
}

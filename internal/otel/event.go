// Package otel records what the catalog and feed engine did, as typed events.
//
// Events are written as JSONL lines by an asynchronous Logger. A RingBuffer
// can be attached to keep the most recent events in memory for the debug
// overlay.
package otel

import (
	"encoding/json"
	"time"
)

// Level is an event's severity.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// EventKind is "<subsystem>.<action>".
type EventKind string

const (
	// Feed controller
	KindFeedAdvance        EventKind = "feed.advance"
	KindFeedAdvanceIgnored EventKind = "feed.advance_ignored"
	KindFeedPageLoaded     EventKind = "feed.page_loaded"
	KindFeedExhausted      EventKind = "feed.exhausted"
	KindFeedError          EventKind = "feed.error"
	KindFeedStale          EventKind = "feed.stale_msg"

	// Catalog generator
	KindCatalogGenerate EventKind = "catalog.generate"
	KindCatalogWatch    EventKind = "catalog.watch_page"

	// Search index
	KindSearchIndex    EventKind = "search.index"
	KindSearchQuery    EventKind = "search.query"
	KindSearchComplete EventKind = "search.complete"
	KindSearchError    EventKind = "search.error"

	// UI
	KindKeyPress   EventKind = "ui.key"
	KindViewSwitch EventKind = "ui.view"
	KindSentinel   EventKind = "ui.sentinel"

	// System
	KindStartup  EventKind = "sys.startup"
	KindShutdown EventKind = "sys.shutdown"
	KindError    EventKind = "sys.error"

	// Message tracing, only when TUBEVIEW_TRACE is set
	KindMsgReceived EventKind = "trace.msg_received"
)

// Event is one observability record. Only Kind is required; Time and
// SessionID are filled in by the Logger.
type Event struct {
	Time      time.Time      `json:"t"`
	Level     Level          `json:"level,omitempty"`
	Kind      EventKind      `json:"kind"`
	Comp      string         `json:"comp,omitempty"` // "feed", "catalog", "search", "ui", "main"
	SessionID string         `json:"session_id,omitempty"`
	FeedID    string         `json:"feed_id,omitempty"`
	Entity    string         `json:"entity,omitempty"` // catalog kind: "video", "short", ...
	Page      int            `json:"page,omitempty"`
	Offset    int            `json:"offset,omitempty"`
	Count     int            `json:"count,omitempty"`
	Dur       time.Duration  `json:"-"`
	DurMs     float64        `json:"dur_ms,omitempty"` // derived from Dur when marshaling
	Query     string         `json:"query,omitempty"`
	Err       string         `json:"err,omitempty"`
	Msg       string         `json:"msg,omitempty"`
	Extra     map[string]any `json:"extra,omitempty"`
}

// MarshalJSON writes Dur as fractional milliseconds.
func (e Event) MarshalJSON() ([]byte, error) {
	type alias Event
	a := struct{ alias }{alias(e)}
	if e.Dur > 0 {
		a.DurMs = float64(e.Dur) / float64(time.Millisecond)
	}
	return json.Marshal(a)
}

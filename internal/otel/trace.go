package otel

import (
	"os"
	"sync/atomic"
)

// TraceEnv turns on per-message tracing in the UI loop.
const TraceEnv = "TUBEVIEW_TRACE"

var traceEnabled atomic.Bool

func init() {
	traceEnabled.Store(traceRequested(os.Getenv))
}

// traceRequested reports whether TraceEnv holds any non-empty value.
func traceRequested(getenv func(string) string) bool {
	return getenv(TraceEnv) != ""
}

// TraceEnabled reports whether TUBEVIEW_TRACE was set at startup.
func TraceEnabled() bool {
	return traceEnabled.Load()
}

func setTraceEnabled(v bool) {
	traceEnabled.Store(v)
}

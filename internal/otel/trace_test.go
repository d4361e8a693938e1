package otel

import (
	"os"
	"testing"
)

func TestTraceRequestedReadsTubeviewTrace(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", false},
		{"1", true},
		{"0", true}, // any value enables it
		{"yes", true},
	}
	for _, tt := range tests {
		t.Setenv(TraceEnv, tt.value)
		if got := traceRequested(os.Getenv); got != tt.want {
			t.Errorf("%s=%q: traceRequested = %v, want %v", TraceEnv, tt.value, got, tt.want)
		}
	}

	other := func(key string) string {
		if key == "TUBEVIEW_DEBUG" {
			return "1"
		}
		return ""
	}
	if traceRequested(other) {
		t.Error("traceRequested honoured a variable other than " + TraceEnv)
	}
}

func TestTraceEnabledFollowsOverride(t *testing.T) {
	orig := TraceEnabled()
	t.Cleanup(func() { setTraceEnabled(orig) })

	for _, v := range []bool{true, false, true} {
		setTraceEnabled(v)
		if TraceEnabled() != v {
			t.Fatalf("TraceEnabled() = %v after override to %v", TraceEnabled(), v)
		}
	}
}

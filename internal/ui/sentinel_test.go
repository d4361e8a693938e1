package ui

import (
	"testing"
	"time"
)

var t0 = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestSentinelVisible(t *testing.T) {
	s := NewSentinel(3, 4)
	tests := []struct {
		bottom, length int
		want           bool
	}{
		{0, 0, false},
		{0, 20, false},
		{16, 20, false},
		{17, 20, true},
		{19, 20, true},
		{0, 2, true},
	}
	for _, tt := range tests {
		if got := s.Visible(tt.bottom, tt.length); got != tt.want {
			t.Errorf("Visible(%d, %d) = %v, want %v", tt.bottom, tt.length, got, tt.want)
		}
	}
}

func TestSentinelFiresOncePerEntry(t *testing.T) {
	s := NewSentinel(3, 1000)
	now := t0

	var fired bool
	s, fired = s.Observe(10, 20, now)
	if fired {
		t.Fatal("fired outside the region")
	}

	s, fired = s.Observe(17, 20, now)
	if !fired {
		t.Fatal("did not fire on entering the region")
	}

	for bottom := 17; bottom < 20; bottom++ {
		now = now.Add(10 * time.Millisecond)
		if s, fired = s.Observe(bottom, 20, now); fired {
			t.Fatalf("fired again at bottom=%d while still inside", bottom)
		}
	}

	now = now.Add(10 * time.Millisecond)
	s, _ = s.Observe(5, 20, now)
	now = now.Add(10 * time.Millisecond)
	if _, fired = s.Observe(18, 20, now); !fired {
		t.Error("did not fire after leaving and re-entering")
	}
}

func TestSentinelRefiresWhenListGrows(t *testing.T) {
	s := NewSentinel(3, 1000)

	s, fired := s.Observe(19, 20, t0)
	if !fired {
		t.Fatal("first edge missing")
	}
	// A tall viewport still shows the bottom row after the page lands.
	s, fired = s.Observe(39, 40, t0.Add(time.Second))
	if !fired {
		t.Error("did not fire after the list grew under a visible sentinel")
	}
	if _, fired = s.Observe(39, 40, t0.Add(2*time.Second)); fired {
		t.Error("fired twice for the same length")
	}
}

func TestSentinelRateLimitRetries(t *testing.T) {
	s := NewSentinel(3, 1) // one edge per second, burst 1

	s, fired := s.Observe(19, 20, t0)
	if !fired {
		t.Fatal("first edge missing")
	}
	s, _ = s.Observe(0, 20, t0)

	now := t0.Add(100 * time.Millisecond)
	s, fired = s.Observe(19, 20, now)
	if fired {
		t.Fatal("edge admitted inside the rate window")
	}
	if !s.Pending() {
		t.Fatal("denied edge not marked pending")
	}
	if d := s.RetryIn(now); d <= 0 || d > time.Second {
		t.Errorf("RetryIn = %v, want within (0, 1s]", d)
	}

	s, fired = s.Observe(19, 20, t0.Add(1100*time.Millisecond))
	if !fired || s.Pending() {
		t.Errorf("retry: fired=%v pending=%v, want true/false", fired, s.Pending())
	}
}

func TestSentinelLeavingClearsPending(t *testing.T) {
	s := NewSentinel(3, 1)
	s, _ = s.Observe(19, 20, t0)
	s, _ = s.Observe(0, 20, t0)
	s, _ = s.Observe(19, 20, t0)
	if !s.Pending() {
		t.Fatal("expected pending edge")
	}
	s, _ = s.Observe(0, 20, t0)
	if s.Pending() {
		t.Error("leaving the region should drop the pending edge")
	}
}

func TestSentinelDefaults(t *testing.T) {
	s := NewSentinel(0, 0)
	if !s.Visible(17, 20) || s.Visible(16, 20) {
		t.Error("default region should be the last 3 rows")
	}
}

func TestSentinelReset(t *testing.T) {
	s := NewSentinel(3, 1000)
	s, _ = s.Observe(19, 20, t0)
	s = s.Reset()
	if _, fired := s.Observe(19, 20, t0.Add(time.Second)); !fired {
		t.Error("reset sentinel should fire again")
	}
}

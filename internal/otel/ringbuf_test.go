package otel

import (
	"sync"
	"testing"
)

func pushN(r *RingBuffer, n int) {
	for i := 0; i < n; i++ {
		r.Push(Event{Kind: KindFeedPageLoaded, Page: i})
	}
}

func pages(es []Event) []int {
	out := make([]int, len(es))
	for i, e := range es {
		out[i] = e.Page
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestRingSnapshot(t *testing.T) {
	tests := []struct {
		name   string
		size   int
		pushed int
		want   []int
	}{
		{"empty", 4, 0, []int{}},
		{"partial", 8, 5, []int{0, 1, 2, 3, 4}},
		{"exactly full", 4, 4, []int{0, 1, 2, 3}},
		{"wrapped", 4, 8, []int{4, 5, 6, 7}},
		{"wrapped uneven", 4, 6, []int{2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRingBuffer(tt.size)
			pushN(r, tt.pushed)
			got := pages(r.Snapshot())
			if !equalInts(got, tt.want) {
				t.Errorf("Snapshot pages = %v, want %v", got, tt.want)
			}
			if r.Len() != len(tt.want) {
				t.Errorf("Len = %d, want %d", r.Len(), len(tt.want))
			}
		})
	}
}

func TestRingLast(t *testing.T) {
	r := NewRingBuffer(4)
	pushN(r, 6)

	if got := pages(r.Last(3)); !equalInts(got, []int{3, 4, 5}) {
		t.Errorf("Last(3) = %v, want [3 4 5]", got)
	}
	if got := pages(r.Last(100)); !equalInts(got, []int{2, 3, 4, 5}) {
		t.Errorf("Last(100) = %v, want [2 3 4 5]", got)
	}
	if got := r.Last(0); got != nil {
		t.Errorf("Last(0) = %v, want nil", got)
	}
}

func TestRingDefaultSize(t *testing.T) {
	if got := NewRingBuffer(0).Cap(); got != DefaultRingSize {
		t.Errorf("Cap = %d, want %d", got, DefaultRingSize)
	}
}

func TestRingStatsAndSubsystem(t *testing.T) {
	r := NewRingBuffer(16)
	r.Push(Event{Kind: KindFeedAdvance})
	r.Push(Event{Kind: KindFeedPageLoaded})
	r.Push(Event{Kind: KindFeedPageLoaded})
	r.Push(Event{Kind: KindSearchQuery})

	stats := r.Stats()
	if stats[KindFeedPageLoaded] != 2 || stats[KindFeedAdvance] != 1 || stats[KindSearchQuery] != 1 {
		t.Errorf("Stats = %v", stats)
	}
	if got := len(r.Subsystem("feed")); got != 3 {
		t.Errorf("Subsystem(feed) = %d events, want 3", got)
	}
	if got := len(r.Subsystem("sys")); got != 0 {
		t.Errorf("Subsystem(sys) = %d events, want 0", got)
	}
}

func TestRingExtraIsCopied(t *testing.T) {
	r := NewRingBuffer(2)
	extra := map[string]any{"k": 1}
	r.Push(Event{Kind: KindStartup, Extra: extra})
	extra["k"] = 2

	if got := r.Snapshot()[0].Extra["k"]; got != 1 {
		t.Errorf("Extra[k] = %v, want 1", got)
	}
}

func TestRingConcurrent(t *testing.T) {
	r := NewRingBuffer(64)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			pushN(r, 100)
		}()
		go func() {
			defer wg.Done()
			_ = r.Last(10)
			_ = r.Stats()
		}()
	}
	wg.Wait()

	if r.Len() != 64 {
		t.Errorf("Len = %d, want 64", r.Len())
	}
}

package otel

import (
	"maps"
	"strings"
	"sync"
)

// DefaultRingSize is the debug overlay's history length.
const DefaultRingSize = 512

// RingBuffer keeps the most recent events, oldest evicted first.
// It is safe for concurrent use.
type RingBuffer struct {
	mu    sync.Mutex
	slots []Event
	next  int // slot the next Push writes
	n     int // filled slots
}

// NewRingBuffer returns a buffer holding size events; size <= 0 means
// DefaultRingSize.
func NewRingBuffer(size int) *RingBuffer {
	if size <= 0 {
		size = DefaultRingSize
	}
	return &RingBuffer{slots: make([]Event, size)}
}

// Push stores e, evicting the oldest event when full. Extra is cloned so
// later writes by the caller don't show through.
func (r *RingBuffer) Push(e Event) {
	if e.Extra != nil {
		e.Extra = maps.Clone(e.Extra)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slots[r.next] = e
	r.next = (r.next + 1) % len(r.slots)
	if r.n < len(r.slots) {
		r.n++
	}
}

// Snapshot returns every buffered event, oldest first.
func (r *RingBuffer) Snapshot() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tail(r.n)
}

// Last returns up to n of the newest events, oldest first.
func (r *RingBuffer) Last(n int) []Event {
	if n <= 0 {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tail(min(n, r.n))
}

// tail copies the newest k events. Callers hold r.mu.
func (r *RingBuffer) tail(k int) []Event {
	if k == 0 {
		return nil
	}
	size := len(r.slots)
	out := make([]Event, k)
	start := (r.next - k + size) % size
	for i := range out {
		out[i] = r.slots[(start+i)%size]
	}
	return out
}

func (r *RingBuffer) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.n
}

func (r *RingBuffer) Cap() int {
	return len(r.slots)
}

// Stats counts buffered events per kind.
func (r *RingBuffer) Stats() map[EventKind]int {
	counts := make(map[EventKind]int)
	for _, e := range r.Snapshot() {
		counts[e.Kind]++
	}
	return counts
}

// Subsystem returns the buffered events whose kind starts with prefix,
// e.g. "feed" or "search", oldest first.
func (r *RingBuffer) Subsystem(prefix string) []Event {
	var out []Event
	for _, e := range r.Snapshot() {
		if strings.HasPrefix(string(e.Kind), prefix+".") {
			out = append(out, e)
		}
	}
	return out
}

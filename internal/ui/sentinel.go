package ui

import (
	"time"

	"golang.org/x/time/rate"
)

const (
	DefaultSentinelRows = 3
	DefaultSentinelRate = 4 // edges per second
)

// Sentinel turns scroll position into "load more" edges, the way a
// sentinel element at the bottom of a list becomes visible.
//
// The region is the last rows of the list. An edge fires when the bottom
// visible row enters the region, and again if the list grows while the
// bottom row is still inside it. Edges are rate limited; a denied edge is
// not lost but retried on the next Observe.
type Sentinel struct {
	rows    int
	limiter *rate.Limiter
	firedAt int // list length when the last edge fired; -1 when re-armed
	pending bool
}

// NewSentinel returns a sentinel over the last rows rows admitting at most
// perSecond edges per second. Non-positive values select the defaults.
func NewSentinel(rows int, perSecond float64) Sentinel {
	if rows <= 0 {
		rows = DefaultSentinelRows
	}
	if perSecond <= 0 {
		perSecond = DefaultSentinelRate
	}
	return Sentinel{
		rows:    rows,
		limiter: rate.NewLimiter(rate.Limit(perSecond), 1),
		firedAt: -1,
	}
}

// Visible reports whether row bottom of a list of length rows is inside the
// load-more region.
func (s Sentinel) Visible(bottom, length int) bool {
	return length > 0 && bottom >= length-s.rows
}

// Observe reports whether this observation is a load-more edge.
func (s Sentinel) Observe(bottom, length int, now time.Time) (Sentinel, bool) {
	if !s.Visible(bottom, length) {
		s.firedAt = -1
		s.pending = false
		return s, false
	}
	if s.firedAt == length {
		return s, false
	}
	if !s.limiter.AllowN(now, 1) {
		s.pending = true
		return s, false
	}
	s.firedAt = length
	s.pending = false
	return s, true
}

// Pending reports whether an edge was denied by the rate limit and is
// waiting for another observation.
func (s Sentinel) Pending() bool {
	return s.pending
}

// RetryIn is how long until the limiter would admit the pending edge.
func (s Sentinel) RetryIn(now time.Time) time.Duration {
	r := s.limiter.ReserveN(now, 1)
	defer r.CancelAt(now)
	return r.DelayFrom(now)
}

// Reset re-arms the sentinel, e.g. when its list is replaced.
func (s Sentinel) Reset() Sentinel {
	s.firedAt = -1
	s.pending = false
	return s
}

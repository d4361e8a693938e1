// Package format turns raw catalog fields into display strings.
//
// Every function is pure: the same input always yields the same output.
// Inputs outside the documented domain are rejected with ErrInvalidArgument
// instead of being clamped.
package format

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ErrInvalidArgument is returned for negative counts, negative durations,
// and instants in the future.
var ErrInvalidArgument = errors.New("format: invalid argument")

// ViewCount renders a view count as "1.2M", "45.3K" or "999".
//
// Values are not promoted across units: 999999 renders as "1000.0K".
// Tenths round the float64 quotient, so 1150 renders as "1.1K".
func ViewCount(n int64) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("view count %d: %w", n, ErrInvalidArgument)
	}
	switch {
	case n >= 1_000_000:
		return tenths(n, 1_000_000) + "M", nil
	case n >= 1_000:
		return tenths(n, 1_000) + "K", nil
	default:
		return strconv.FormatInt(n, 10), nil
	}
}

// tenths renders n/unit with one decimal place.
func tenths(n, unit int64) string {
	return strconv.FormatFloat(float64(n)/float64(unit), 'f', 1, 64)
}

// Duration renders whole seconds as "M:SS", or "H:MM:SS" from one hour up.
func Duration(seconds int) (string, error) {
	if seconds < 0 {
		return "", fmt.Errorf("duration %ds: %w", seconds, ErrInvalidArgument)
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s), nil
	}
	return fmt.Sprintf("%d:%02d", m, s), nil
}

// relativeUnits is checked coarsest first.
var relativeUnits = []struct {
	name    string
	seconds int64
}{
	{"years", 31_536_000},
	{"months", 2_592_000},
	{"days", 86_400},
	{"hours", 3_600},
	{"minutes", 60},
}

// RelativeTime renders the time elapsed from past to now, e.g. "3 days ago".
//
// The first unit whose quotient strictly exceeds 1 wins, so exactly one hour
// renders as "60 minutes ago" and 3700 seconds as "1 hours ago".
func RelativeTime(past, now time.Time) (string, error) {
	if past.After(now) {
		return "", fmt.Errorf("instant %s is after %s: %w",
			past.Format(time.RFC3339), now.Format(time.RFC3339), ErrInvalidArgument)
	}
	elapsed := int64(now.Sub(past) / time.Second)
	for _, u := range relativeUnits {
		if elapsed > u.seconds {
			return fmt.Sprintf("%d %s ago", elapsed/u.seconds, u.name), nil
		}
	}
	return fmt.Sprintf("%d seconds ago", elapsed), nil
}

// TimeAgo is RelativeTime measured against the wall clock.
func TimeAgo(past time.Time) (string, error) {
	return RelativeTime(past, time.Now())
}

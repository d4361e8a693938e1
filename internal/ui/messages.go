// Package ui is the Bubble Tea front end: home, shorts, watch, search and
// subscriptions views over the synthetic catalog.
package ui

import "github.com/abelbrown/tubeview/internal/catalog"

// Pages arrive as feed.PageLoadedMsg; the messages below cover the views
// that load in one shot.

// WatchLoaded carries an assembled watch page.
type WatchLoaded struct {
	VideoID string // as requested, before fallback
	Page    catalog.WatchPage
	Err     error
}

// SearchResults answers one submitted query.
type SearchResults struct {
	Query  string
	Videos []catalog.Video
	Err    error
}

// SubscriptionsLoaded carries the subscriptions page.
type SubscriptionsLoaded struct {
	Page catalog.SubscriptionsPage
	Err  error
}

// sentinelRetry re-observes a sentinel whose edge was rate limited.
type sentinelRetry struct {
	view viewID
}

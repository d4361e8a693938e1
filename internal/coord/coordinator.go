// Package coord wires the catalog, the search index and the event log into
// the commands the TUI runs.
package coord

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/abelbrown/tubeview/internal/catalog"
	"github.com/abelbrown/tubeview/internal/feed"
	"github.com/abelbrown/tubeview/internal/logging"
	"github.com/abelbrown/tubeview/internal/metrics"
	"github.com/abelbrown/tubeview/internal/otel"
	"github.com/abelbrown/tubeview/internal/store"
	"github.com/abelbrown/tubeview/internal/ui"
)

// indexedVideos is how much of the catalog search can see.
const indexedVideos = 100

// defaultSearchLimit caps result lists.
const defaultSearchLimit = 20

// Config holds the Coordinator's collaborators. Events and Metrics are
// optional.
type Config struct {
	Generator *catalog.Generator
	Index     *store.Index
	Events    *otel.Logger
	Metrics   *metrics.Metrics

	PageSize    int
	MaxPages    int
	Delay       time.Duration // simulated latency for every load
	SearchLimit int
}

// Coordinator answers the TUI's load requests. Every command sleeps the
// simulated delay off the event loop, then returns a single message.
type Coordinator struct {
	ctx context.Context
	cfg Config
}

// New creates a Coordinator. ctx bounds every command it issues.
func New(ctx context.Context, cfg Config) *Coordinator {
	if cfg.SearchLimit <= 0 {
		cfg.SearchLimit = defaultSearchLimit
	}
	if cfg.Delay < 0 {
		cfg.Delay = 0
	}
	return &Coordinator{ctx: ctx, cfg: cfg}
}

// IndexCatalog loads the first 100 videos into the search index.
func (c *Coordinator) IndexCatalog() error {
	start := time.Now()
	videos, err := c.cfg.Generator.Videos(indexedVideos, 0)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	n, err := c.cfg.Index.Add(c.ctx, videos)
	if err != nil {
		c.cfg.Events.Error(otel.KindSearchError, "coord", err)
		return fmt.Errorf("index: %w", err)
	}
	c.cfg.Events.Emit(otel.Event{
		Level: otel.LevelInfo,
		Kind:  otel.KindSearchIndex,
		Comp:  "coord",
		Count: n,
		Dur:   time.Since(start),
	})
	logging.Info("search index built", "videos", n)
	return nil
}

// NewFeed returns a controller over the generator with the configured page
// shape.
func (c *Coordinator) NewFeed(kind catalog.Kind) feed.Controller {
	return feed.New(c.cfg.Generator, feed.Config{
		Kind:     kind,
		PageSize: c.cfg.PageSize,
		MaxPages: c.cfg.MaxPages,
		Delay:    c.cfg.Delay,
		Events:   c.cfg.Events,
		Metrics:  c.cfg.Metrics,
	})
}

// LoadWatch assembles the watch page for videoID.
func (c *Coordinator) LoadWatch(videoID string) tea.Cmd {
	return c.after(func() tea.Msg {
		start := time.Now()
		page, err := c.cfg.Generator.WatchPage(c.ctx, videoID)
		ev := otel.Event{
			Level:  otel.LevelInfo,
			Kind:   otel.KindCatalogWatch,
			Comp:   "coord",
			Entity: videoID,
			Count:  len(page.Comments),
			Dur:    time.Since(start),
		}
		if err != nil {
			ev.Level = otel.LevelError
			ev.Err = err.Error()
		}
		c.cfg.Events.Emit(ev)
		return ui.WatchLoaded{VideoID: videoID, Page: page, Err: err}
	})
}

// Search queries the index.
func (c *Coordinator) Search(query string) tea.Cmd {
	c.cfg.Events.Emit(otel.Event{Level: otel.LevelInfo, Kind: otel.KindSearchQuery, Comp: "coord", Query: query})
	return c.after(func() tea.Msg {
		start := time.Now()
		videos, err := c.cfg.Index.Search(c.ctx, query, c.cfg.SearchLimit)
		c.cfg.Metrics.ObserveSearch()
		if err != nil {
			c.cfg.Events.Emit(otel.Event{Level: otel.LevelError, Kind: otel.KindSearchError, Comp: "coord", Query: query, Err: err.Error()})
			return ui.SearchResults{Query: query, Err: err}
		}
		c.cfg.Events.Emit(otel.Event{
			Level: otel.LevelInfo,
			Kind:  otel.KindSearchComplete,
			Comp:  "coord",
			Query: query,
			Count: len(videos),
			Dur:   time.Since(start),
		})
		return ui.SearchResults{Query: query, Videos: videos}
	})
}

// LoadSubscriptions builds the subscriptions page.
func (c *Coordinator) LoadSubscriptions() tea.Cmd {
	return c.after(func() tea.Msg {
		if err := c.ctx.Err(); err != nil {
			return ui.SubscriptionsLoaded{Err: err}
		}
		page := c.cfg.Generator.Subscriptions()
		c.cfg.Events.Emit(otel.Event{
			Level: otel.LevelDebug,
			Kind:  otel.KindCatalogGenerate,
			Comp:  "coord",
			Count: len(page.Channels) + len(page.Videos),
			Msg:   "subscriptions",
		})
		return ui.SubscriptionsLoaded{Page: page}
	})
}

// AppConfig binds the coordinator to a ui.AppConfig. The caller fills in
// the debug ring and sentinel tuning.
func (c *Coordinator) AppConfig() ui.AppConfig {
	return ui.AppConfig{
		NewFeed:           c.NewFeed,
		LoadWatch:         c.LoadWatch,
		Search:            c.Search,
		LoadSubscriptions: c.LoadSubscriptions,
		Events:            c.cfg.Events,
	}
}

func (c *Coordinator) after(load func() tea.Msg) tea.Cmd {
	if c.cfg.Delay == 0 {
		return load
	}
	return tea.Tick(c.cfg.Delay, func(time.Time) tea.Msg { return load() })
}

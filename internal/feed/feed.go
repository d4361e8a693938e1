// Package feed implements infinite-scroll pagination over a catalog.Source.
//
// A Controller is a Bubble Tea value: Advance returns the updated controller
// and a command that, after the simulated delay, fetches the next page and
// yields a PageLoadedMsg. Feeding that message back through Update appends
// the page. Controllers never mutate state off the event loop and never
// share their entity list.
package feed

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/abelbrown/tubeview/internal/catalog"
	"github.com/abelbrown/tubeview/internal/metrics"
	"github.com/abelbrown/tubeview/internal/otel"
)

const (
	DefaultPageSize = 20
	DefaultMaxPages = 5
	DefaultDelay    = 500 * time.Millisecond
)

// State is where a Controller is in its page cycle.
type State int

const (
	Idle      State = iota // nothing requested yet
	Loading                // one page in flight
	Loaded                 // at least one page, more available
	Exhausted              // terminal
	Failed                 // last fetch errored; Advance retries it
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Exhausted:
		return "exhausted"
	case Failed:
		return "failed"
	}
	return "unknown"
}

type Config struct {
	Kind     catalog.Kind
	PageSize int
	MaxPages int
	Delay    time.Duration // zero fetches without a timer

	Events  *otel.Logger     // optional
	Metrics *metrics.Metrics // optional
}

// DefaultConfig is five pages of twenty with a half-second delay.
func DefaultConfig(kind catalog.Kind) Config {
	return Config{
		Kind:     kind,
		PageSize: DefaultPageSize,
		MaxPages: DefaultMaxPages,
		Delay:    DefaultDelay,
	}
}

// PageLoadedMsg carries one fetched page back to the controller that asked
// for it.
type PageLoadedMsg struct {
	FeedID   string
	Page     int
	Entities []catalog.Entity
	Err      error
}

// Controller owns one feed's list and pagination state.
type Controller struct {
	id    string
	src   catalog.Source
	cfg   Config
	items []catalog.Entity
	state State
	pages int // completed pages
	err   error

	inflight int // page awaited while Loading
	issued   time.Time
}

// New returns an Idle controller. Non-positive PageSize or MaxPages fall
// back to the defaults.
func New(src catalog.Source, cfg Config) Controller {
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = DefaultMaxPages
	}
	if cfg.Delay < 0 {
		cfg.Delay = 0
	}
	return Controller{id: uuid.NewString(), src: src, cfg: cfg, inflight: -1}
}

func (c Controller) ID() string         { return c.id }
func (c Controller) Kind() catalog.Kind { return c.cfg.Kind }
func (c Controller) State() State       { return c.state }
func (c Controller) IsLoading() bool    { return c.state == Loading }
func (c Controller) HasMore() bool      { return c.state != Exhausted }
func (c Controller) Pages() int         { return c.pages }
func (c Controller) Len() int           { return len(c.items) }

// Err is the source error that put the controller in Failed.
func (c Controller) Err() error { return c.err }

// Entities returns the accumulated list. Appending to it never writes
// into the controller.
func (c Controller) Entities() []catalog.Entity {
	return c.items[:len(c.items):len(c.items)]
}

// Advance requests the next page. While Loading or Exhausted it is a no-op
// and returns a nil command. From Failed it retries the failed page.
func (c Controller) Advance() (Controller, tea.Cmd) {
	if c.state == Loading || c.state == Exhausted {
		c.cfg.Metrics.ObserveIgnored(c.state.String())
		c.cfg.Events.Emit(otel.Event{
			Level:  otel.LevelDebug,
			Kind:   otel.KindFeedAdvanceIgnored,
			Comp:   "feed",
			FeedID: c.id,
			Entity: c.cfg.Kind.String(),
			Msg:    c.state.String(),
		})
		return c, nil
	}

	page := c.pages
	c.state = Loading
	c.inflight = page
	c.err = nil
	c.issued = time.Now()

	c.cfg.Events.Emit(otel.Event{
		Level:  otel.LevelInfo,
		Kind:   otel.KindFeedAdvance,
		Comp:   "feed",
		FeedID: c.id,
		Entity: c.cfg.Kind.String(),
		Page:   page,
		Offset: page * c.cfg.PageSize,
	})
	return c, c.fetch(page)
}

func (c Controller) fetch(page int) tea.Cmd {
	src, id := c.src, c.id
	kind, size := c.cfg.Kind, c.cfg.PageSize

	load := func() tea.Msg {
		entities, err := src.Generate(kind, size, page*size)
		return PageLoadedMsg{FeedID: id, Page: page, Entities: entities, Err: err}
	}
	if c.cfg.Delay == 0 {
		return load
	}
	return tea.Tick(c.cfg.Delay, func(time.Time) tea.Msg { return load() })
}

// Update applies a PageLoadedMsg addressed to this controller for the page
// it is waiting on. It reports whether msg was applied; anything else,
// including stale or foreign pages, leaves the controller unchanged.
func (c Controller) Update(msg tea.Msg) (Controller, bool) {
	m, ok := msg.(PageLoadedMsg)
	if !ok || m.FeedID != c.id {
		return c, false
	}
	if c.state != Loading || m.Page != c.inflight {
		c.cfg.Events.Emit(otel.Event{
			Level:  otel.LevelWarn,
			Kind:   otel.KindFeedStale,
			Comp:   "feed",
			FeedID: c.id,
			Page:   m.Page,
			Msg:    c.state.String(),
		})
		return c, false
	}

	took := time.Since(c.issued)
	kind := c.cfg.Kind.String()
	c.inflight = -1

	if m.Err != nil {
		c.state = Failed
		c.err = m.Err
		c.cfg.Metrics.ObservePageError(kind)
		c.cfg.Events.Emit(otel.Event{
			Level:  otel.LevelError,
			Kind:   otel.KindFeedError,
			Comp:   "feed",
			FeedID: c.id,
			Entity: kind,
			Page:   m.Page,
			Err:    m.Err.Error(),
		})
		return c, true
	}

	c.items = append(c.Entities(), m.Entities...)
	c.pages++
	c.cfg.Metrics.ObservePage(kind, len(m.Entities), took)
	c.cfg.Events.Emit(otel.Event{
		Level:  otel.LevelInfo,
		Kind:   otel.KindFeedPageLoaded,
		Comp:   "feed",
		FeedID: c.id,
		Entity: kind,
		Page:   m.Page,
		Count:  len(m.Entities),
		Dur:    took,
	})

	if c.pages >= c.cfg.MaxPages || len(m.Entities) < c.cfg.PageSize {
		c.state = Exhausted
		c.cfg.Events.Emit(otel.Event{
			Level:  otel.LevelInfo,
			Kind:   otel.KindFeedExhausted,
			Comp:   "feed",
			FeedID: c.id,
			Entity: kind,
			Count:  len(c.items),
		})
	} else {
		c.state = Loaded
	}
	return c, true
}

package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/abelbrown/tubeview/internal/catalog"
	"github.com/abelbrown/tubeview/internal/feed"
	"github.com/abelbrown/tubeview/internal/otel"
)

type viewID int

const (
	viewHome viewID = iota
	viewShorts
	viewSubscriptions
	viewSearch
	viewWatch
)

func (v viewID) String() string {
	switch v {
	case viewHome:
		return "home"
	case viewShorts:
		return "shorts"
	case viewSubscriptions:
		return "subscriptions"
	case viewSearch:
		return "search"
	case viewWatch:
		return "watch"
	}
	return "unknown"
}

// chrome is the tab bar, footer and status bar.
const chrome = 3

// AppConfig wires the App to the catalog. The App never touches a
// Generator or the search index directly; it only runs the commands
// these functions return.
type AppConfig struct {
	NewFeed           func(kind catalog.Kind) feed.Controller
	LoadWatch         func(videoID string) tea.Cmd
	Search            func(query string) tea.Cmd
	LoadSubscriptions func() tea.Cmd

	Ring   *otel.RingBuffer // debug overlay source; nil disables it
	Events *otel.Logger

	SentinelRows int
	SentinelRate float64
	Now          func() time.Time
}

// App is the root Bubble Tea model.
type App struct {
	cfg  AppConfig
	keys keyMap
	now  func() time.Time

	home   homeModel
	shorts shortsModel
	watch  watchModel
	search searchModel
	subs   subscriptionsModel

	view      viewID
	back      viewID // where esc returns from search
	watchFrom viewID // where esc returns from watch
	spinner   spinner.Model
	width     int
	height    int
	ready     bool
	showDebug bool
}

// NewApp creates an App on the home view.
func NewApp(cfg AppConfig) App {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	newFeed := cfg.NewFeed
	if newFeed == nil {
		newFeed = func(kind catalog.Kind) feed.Controller {
			return feed.New(catalog.NewGenerator(catalog.Config{Now: cfg.Now}), feed.DefaultConfig(kind))
		}
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(colorAccent)

	return App{
		cfg:     cfg,
		keys:    defaultKeys(),
		now:     cfg.Now,
		home:    newHome(newFeed(catalog.KindVideo), NewSentinel(cfg.SentinelRows, cfg.SentinelRate)),
		shorts:  newShorts(newFeed(catalog.KindShort), NewSentinel(cfg.SentinelRows, cfg.SentinelRate)),
		search:  newSearch(),
		spinner: s,
		width:   80,
		height:  24,
	}
}

// startHomeMsg asks Update to issue the first home Advance. Init cannot do
// it: the program keeps the model passed to it, not Init's receiver.
type startHomeMsg struct{}

// Init schedules the first home page.
func (a App) Init() tea.Cmd {
	return tea.Batch(func() tea.Msg { return startHomeMsg{} }, a.spinner.Tick)
}

func (a App) visibleRows() int {
	return max((a.height-chrome)/rowHeight, 1)
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if otel.TraceEnabled() {
		a.cfg.Events.Debug(otel.KindMsgReceived, "ui", fmt.Sprintf("%T", msg))
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// A taller window can expose the sentinel without any scrolling.
		var cmd tea.Cmd
		a.home, cmd = a.observeHome(a.home.observe)
		return a, cmd

	case startHomeMsg:
		var cmd tea.Cmd
		a.home, cmd = a.home.start()
		return a, cmd

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case feed.PageLoadedMsg:
		var (
			cmd tea.Cmd
			ok  bool
		)
		a.home, cmd, ok = a.home.pageLoaded(msg, a.visibleRows(), a.now())
		if ok {
			return a, cmd
		}
		a.shorts, cmd, _ = a.shorts.pageLoaded(msg, a.now())
		return a, cmd

	case sentinelRetry:
		var cmd tea.Cmd
		switch msg.view {
		case viewHome:
			a.home, cmd = a.observeHome(a.home.observe)
		case viewShorts:
			a.shorts, cmd = a.shorts.observe(a.now())
		}
		return a, cmd

	case WatchLoaded:
		a.watch, _ = a.watch.apply(msg)
		return a, nil

	case SearchResults:
		a.search, _ = a.search.apply(msg)
		return a, nil

	case SubscriptionsLoaded:
		a.subs = a.subs.apply(msg)
		return a, nil
	}

	// Cursor blink and friends.
	if a.view == viewSearch && a.search.focused() {
		var cmd tea.Cmd
		a.search.input, cmd = a.search.input.Update(msg)
		return a, cmd
	}
	return a, nil
}

// observeHome runs a home sentinel check and records an edge event when it
// started a page load.
func (a App) observeHome(check func(int, time.Time) (homeModel, tea.Cmd)) (homeModel, tea.Cmd) {
	wasLoading := a.home.feed.IsLoading()
	m, cmd := check(a.visibleRows(), a.now())
	if !wasLoading && m.feed.IsLoading() {
		a.cfg.Events.Emit(otel.Event{
			Level:  otel.LevelDebug,
			Kind:   otel.KindSentinel,
			Comp:   "ui",
			FeedID: m.feed.ID(),
			Count:  m.feed.Len(),
		})
	}
	return m, cmd
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.view == viewSearch && a.search.focused() {
		return a.handleSearchInput(msg)
	}

	if a.showDebug {
		switch {
		case key.Matches(msg, a.keys.Debug):
			a.showDebug = false
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		}
		return a, nil
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Debug):
		if a.cfg.Ring != nil {
			a.showDebug = true
		}
		return a, nil
	case key.Matches(msg, a.keys.Home):
		return a.switchTo(viewHome)
	case key.Matches(msg, a.keys.Shorts):
		return a.switchTo(viewShorts)
	case key.Matches(msg, a.keys.Subs):
		return a.switchTo(viewSubscriptions)
	case key.Matches(msg, a.keys.Search):
		a, _ = a.switchTo(viewSearch)
		var cmd tea.Cmd
		a.search, cmd = a.search.focus()
		return a, cmd
	case key.Matches(msg, a.keys.Back):
		switch a.view {
		case viewWatch:
			return a.switchTo(a.watchFrom)
		case viewSearch:
			return a.switchTo(a.back)
		}
		return a, nil
	}

	switch a.view {
	case viewHome:
		return a.handleHomeKey(msg)
	case viewShorts:
		return a.handleShortsKey(msg)
	case viewWatch:
		return a.handleWatchKey(msg)
	case viewSearch:
		return a.handleResultsKey(msg)
	case viewSubscriptions:
		return a.handleSubsKey(msg)
	}
	return a, nil
}

func (a App) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	delta := 0
	switch {
	case key.Matches(msg, a.keys.Down):
		delta = 1
	case key.Matches(msg, a.keys.Up):
		delta = -1
	case key.Matches(msg, a.keys.Top):
		delta = -a.home.cursor
	case key.Matches(msg, a.keys.Bottom):
		delta = a.home.feed.Len() - 1 - a.home.cursor
	case key.Matches(msg, a.keys.Open):
		if v, ok := a.home.selected(); ok {
			return a.openWatch(v.ID)
		}
		return a, nil
	case key.Matches(msg, a.keys.Retry):
		var cmd tea.Cmd
		a.home, cmd = a.home.retry()
		return a, cmd
	default:
		return a, nil
	}

	var cmd tea.Cmd
	a.home, cmd = a.observeHome(func(visible int, now time.Time) (homeModel, tea.Cmd) {
		return a.home.move(delta, visible, now)
	})
	return a, cmd
}

func (a App) handleShortsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case key.Matches(msg, a.keys.Down):
		a.shorts, cmd = a.shorts.step(1, a.now())
	case key.Matches(msg, a.keys.Up):
		a.shorts, cmd = a.shorts.step(-1, a.now())
	case key.Matches(msg, a.keys.Like):
		a.shorts = a.shorts.toggleLike()
	case key.Matches(msg, a.keys.Dislike):
		a.shorts = a.shorts.toggleDislike()
	case key.Matches(msg, a.keys.Retry):
		a.shorts, cmd = a.shorts.retry()
	}
	return a, cmd
}

func (a App) handleWatchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Down):
		a.watch = a.watch.move(1)
	case key.Matches(msg, a.keys.Up):
		a.watch = a.watch.move(-1)
	case key.Matches(msg, a.keys.PgDown):
		a.watch = a.watch.scrollComments(3)
	case key.Matches(msg, a.keys.PgUp):
		a.watch = a.watch.scrollComments(-3)
	case key.Matches(msg, a.keys.Open):
		if v, ok := a.watch.selected(); ok {
			return a.openWatch(v.ID)
		}
	}
	return a, nil
}

func (a App) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Down):
		a.search = a.search.move(1)
	case key.Matches(msg, a.keys.Up):
		a.search = a.search.move(-1)
	case key.Matches(msg, a.keys.Open):
		if v, ok := a.search.selected(); ok {
			return a.openWatch(v.ID)
		}
	}
	return a, nil
}

func (a App) handleSubsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Down):
		a.subs = a.subs.move(1)
	case key.Matches(msg, a.keys.Up):
		a.subs = a.subs.move(-1)
	case key.Matches(msg, a.keys.Open):
		if v, ok := a.subs.selected(); ok {
			return a.openWatch(v.ID)
		}
	}
	return a, nil
}

func (a App) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		a.search = a.search.blur()
		if a.search.query == "" {
			return a.switchTo(a.back)
		}
		return a, nil
	case tea.KeyEnter:
		var (
			q  string
			ok bool
		)
		a.search, q, ok = a.search.submit()
		if !ok || a.cfg.Search == nil {
			return a, nil
		}
		return a, a.cfg.Search(q)
	}

	var cmd tea.Cmd
	a.search.input, cmd = a.search.input.Update(msg)
	return a, cmd
}

func (a App) switchTo(v viewID) (App, tea.Cmd) {
	if v != viewWatch && v != viewSearch {
		a.back = v
	} else if a.view != viewWatch && a.view != viewSearch {
		a.back = a.view
	}
	if a.view != v {
		a.cfg.Events.Emit(otel.Event{Level: otel.LevelInfo, Kind: otel.KindViewSwitch, Comp: "ui", Msg: v.String()})
	}
	a.view = v

	var cmd tea.Cmd
	switch v {
	case viewShorts:
		a.shorts, cmd = a.shorts.start()
	case viewSubscriptions:
		if !a.subs.loaded && !a.subs.loading && a.cfg.LoadSubscriptions != nil {
			a.subs.loading = true
			a.subs.err = nil
			cmd = a.cfg.LoadSubscriptions()
		}
	case viewSearch:
		if a.search.query == "" {
			a.search, cmd = a.search.focus()
		}
	}
	return a, cmd
}

func (a App) openWatch(videoID string) (App, tea.Cmd) {
	if a.view != viewWatch {
		a.watchFrom = a.view
	}
	a, _ = a.switchTo(viewWatch)
	a.watch = newWatch(videoID)
	if a.cfg.LoadWatch == nil {
		return a, nil
	}
	return a, a.cfg.LoadWatch(videoID)
}

func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}
	if a.showDebug {
		return debugOverlay(a.cfg.Ring, a.width, a.height-1) + "\n" + debugStatusBar(a.width)
	}

	spin := a.spinner.View()
	now := a.now()
	contentHeight := a.height - chrome

	var body string
	switch a.view {
	case viewHome:
		body = a.home.view(a.width, a.visibleRows(), now, spin)
	case viewShorts:
		body = a.shorts.view(now, spin)
	case viewWatch:
		body = a.watch.view(a.width, contentHeight, now, spin)
	case viewSearch:
		body = a.search.view(a.width, max((contentHeight-2)/rowHeight, 1), now, spin)
	case viewSubscriptions:
		body = a.subs.view(a.width, contentHeight, now, spin)
	}

	return a.tabBar() + "\n" + body + "\n" + a.statusBar()
}

func (a App) tabBar() string {
	tabs := []struct {
		v     viewID
		label string
	}{
		{viewHome, "1 Home"},
		{viewShorts, "2 Shorts"},
		{viewSubscriptions, "3 Subscriptions"},
	}
	var parts []string
	for _, t := range tabs {
		if t.v == a.view || (t.v == a.back && (a.view == viewWatch || a.view == viewSearch)) {
			parts = append(parts, TabActive.Render(t.label))
		} else {
			parts = append(parts, TabInactive.Render(t.label))
		}
	}
	return strings.Join(parts, " ")
}

func (a App) statusBar() string {
	k := a.keys
	var h string
	switch a.view {
	case viewHome:
		h = hints(k.Down, k.Up, k.Open, k.Search, k.Quit)
		h += StatusBarText.Render(fmt.Sprintf("  %d videos", a.home.feed.Len()))
	case viewShorts:
		h = hints(k.Down, k.Up, k.Like, k.Dislike, k.Quit)
	case viewWatch:
		h = hints(k.Down, k.Up, k.Open, k.PgDown, k.Back)
	case viewSearch:
		h = hints(k.Search, k.Open, k.Back)
	case viewSubscriptions:
		h = hints(k.Down, k.Up, k.Open, k.Quit)
	}
	return StatusBar.Width(max(a.width, 1)).Render(h)
}

// ActiveView names the view on screen (for testing).
func (a App) ActiveView() string {
	return a.view.String()
}

// HomeFeed returns the home controller (for testing).
func (a App) HomeFeed() feed.Controller {
	return a.home.feed
}

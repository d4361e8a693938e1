// Command tubeview is a terminal video-platform browser over a synthetic
// catalog: an infinite home feed, shorts, watch pages, search and
// subscriptions.
package main

import (
	"context"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/abelbrown/tubeview/internal/catalog"
	"github.com/abelbrown/tubeview/internal/config"
	"github.com/abelbrown/tubeview/internal/coord"
	"github.com/abelbrown/tubeview/internal/logging"
	"github.com/abelbrown/tubeview/internal/metrics"
	"github.com/abelbrown/tubeview/internal/otel"
	"github.com/abelbrown/tubeview/internal/store"
	"github.com/abelbrown/tubeview/internal/ui"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logging.Init(cfg.DataDir, cfg.Debug); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logging.Close()

	events, err := otel.Open(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to open event log: %v", err)
	}
	defer events.Close()
	ring := otel.NewRingBuffer(otel.DefaultRingSize)
	events.SetRingBuffer(ring)

	seed := cfg.ResolveSeed()
	events.Emit(otel.Event{
		Level: otel.LevelInfo,
		Kind:  otel.KindStartup,
		Comp:  "main",
		Msg:   logging.Version,
		Extra: map[string]any{"seed": seed, "page_size": cfg.Feed.PageSize, "delay_ms": cfg.Feed.DelayMs},
	})
	logging.Info("session", "id", events.SessionID(), "seed", seed)

	index, err := store.Open()
	if err != nil {
		log.Fatalf("Failed to open search index: %v", err)
	}
	defer index.Close()

	coordinator := coord.New(ctx, coord.Config{
		Generator:   catalog.NewGenerator(catalog.Config{Seed: seed}),
		Index:       index,
		Events:      events,
		Metrics:     metrics.New(),
		PageSize:    cfg.Feed.PageSize,
		MaxPages:    cfg.Feed.MaxPages,
		Delay:       cfg.Feed.Delay(),
		SearchLimit: cfg.UI.SearchLimit,
	})
	if err := coordinator.IndexCatalog(); err != nil {
		log.Fatalf("Failed to build search index: %v", err)
	}

	appCfg := coordinator.AppConfig()
	appCfg.Ring = ring
	appCfg.SentinelRows = cfg.UI.SentinelRows
	appCfg.SentinelRate = cfg.UI.SentinelRate

	start := time.Now()
	program := tea.NewProgram(ui.NewApp(appCfg), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logging.Error("program exited", "error", err)
		events.Error(otel.KindError, "main", err)
	}

	events.Emit(otel.Event{Level: otel.LevelInfo, Kind: otel.KindShutdown, Comp: "main", Dur: time.Since(start)})
	logging.Info("tubeview exiting", "uptime", time.Since(start).Round(time.Second))
}

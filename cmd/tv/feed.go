package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"time"

	"github.com/abelbrown/tubeview/internal/feed"
	"github.com/abelbrown/tubeview/internal/metrics"
	"github.com/abelbrown/tubeview/internal/otel"
)

func runFeed() {
	fs := flag.NewFlagSet("feed", flag.ExitOnError)
	kindName := fs.String("kind", "video", "Feed kind: video or short")
	pageSize := fs.Int("page-size", 0, "Entities per page (default: config)")
	maxPages := fs.Int("pages", 0, "Page cap (default: config)")
	delay := fs.Duration("delay", 0, "Simulated load latency per page")
	seed := fs.Int64("seed", 0, "Catalog seed (default: config)")
	showMetrics := fs.Bool("metrics", true, "Dump Prometheus metrics after the run")
	fs.Parse(os.Args[1:])

	cfg := loadConfig()
	if *pageSize <= 0 {
		*pageSize = cfg.Feed.PageSize
	}
	if *maxPages <= 0 {
		*maxPages = cfg.Feed.MaxPages
	}

	events := otel.NewNullLogger()
	ring := otel.NewRingBuffer(otel.DefaultRingSize)
	events.SetRingBuffer(ring)
	m := metrics.New()

	c := feed.New(newGenerator(cfg, *seed, isSet(fs, "seed")), feed.Config{
		Kind:     parseKind(*kindName),
		PageSize: *pageSize,
		MaxPages: *maxPages,
		Delay:    *delay,
		Events:   events,
		Metrics:  m,
	})

	start := time.Now()
	c, err := feed.Drain(context.Background(), c)
	took := time.Since(start)
	events.Close()

	fmt.Printf("Feed:       %s (%s)\n", c.ID(), c.Kind())
	fmt.Printf("State:      %s\n", c.State())
	fmt.Printf("Pages:      %d\n", c.Pages())
	fmt.Printf("Entities:   %d\n", c.Len())
	fmt.Printf("Elapsed:    %s\n", took.Round(time.Millisecond))
	if err != nil {
		fmt.Printf("Error:      %v\n", err)
	}

	stats := ring.Stats()
	kinds := make([]string, 0, len(stats))
	for k := range stats {
		kinds = append(kinds, string(k))
	}
	sort.Strings(kinds)
	fmt.Printf("\nEvents (%d):\n", ring.Len())
	for _, k := range kinds {
		fmt.Printf("  %-24s %d\n", k, stats[otel.EventKind(k)])
	}

	if *showMetrics {
		fmt.Println()
		if err := m.WriteText(os.Stdout); err != nil {
			log.Fatalf("write metrics: %v", err)
		}
	}
	if err != nil {
		os.Exit(1)
	}
}

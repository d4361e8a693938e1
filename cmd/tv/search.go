package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/abelbrown/tubeview/internal/store"
)

func runSearch() {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	limit := fs.Int("limit", 0, "Maximum results (default: config)")
	seed := fs.Int64("seed", 0, "Catalog seed (default: config)")
	fs.Parse(os.Args[1:])

	queries := fs.Args()
	if len(queries) == 0 {
		fmt.Fprintln(os.Stderr, "usage: tv search [--limit N] [--seed S] <query> [query...]")
		os.Exit(1)
	}

	cfg := loadConfig()
	if *limit <= 0 {
		*limit = cfg.UI.SearchLimit
	}

	ctx := context.Background()
	idx, err := store.Open()
	if err != nil {
		log.Fatalf("open index: %v", err)
	}
	defer idx.Close()

	gen := newGenerator(cfg, *seed, isSet(fs, "seed"))
	videos, err := gen.Videos(100, 0)
	if err != nil {
		log.Fatalf("generate: %v", err)
	}
	if _, err := idx.Add(ctx, videos); err != nil {
		log.Fatalf("index: %v", err)
	}

	for i, q := range queries {
		if i > 0 {
			fmt.Println()
		}
		start := time.Now()
		results, err := idx.Search(ctx, q, *limit)
		if err != nil {
			log.Fatalf("search %q: %v", q, err)
		}
		fmt.Printf("=== %q: %d results (%s) ===\n", q, len(results), time.Since(start).Round(time.Microsecond))
		if len(results) == 0 {
			fmt.Println("No results found")
			continue
		}
		for _, v := range results {
			fmt.Printf("  %-10s %s %s\n", v.ID, fit(v.Title, 56), strings.TrimSpace(v.ChannelName))
		}
	}
}

package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/mattn/go-runewidth"

	"github.com/abelbrown/tubeview/internal/catalog"
	"github.com/abelbrown/tubeview/internal/config"
	"github.com/abelbrown/tubeview/internal/format"
	"github.com/abelbrown/tubeview/internal/otel"
)

// loadConfig loads the user's config or fatals.
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return cfg
}

// newGenerator builds a generator from -seed when given, else from config.
func newGenerator(cfg *config.Config, seed int64, seedSet bool) *catalog.Generator {
	if !seedSet {
		seed = cfg.ResolveSeed()
	}
	return catalog.NewGenerator(catalog.Config{Seed: seed})
}

// isSet reports whether name was given on the command line.
func isSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// eventLogPath returns the path to tubeview.events.jsonl.
func eventLogPath(cfg *config.Config) string {
	return filepath.Join(cfg.DataDir, otel.EventsFile)
}

// parseKind parses -kind or fatals.
func parseKind(s string) catalog.Kind {
	k, err := catalog.ParseKind(s)
	if err != nil {
		log.Fatalf("%v", err)
	}
	return k
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Fatalf("encode: %v", err)
	}
}

// Formatting errors print as "?" like the TUI does.
func views(n int64) string {
	s, err := format.ViewCount(n)
	if err != nil {
		return "?"
	}
	return s
}

func duration(sec int) string {
	s, err := format.Duration(sec)
	if err != nil {
		return "?"
	}
	return s
}

func ago(v catalog.Video) string {
	s, err := format.TimeAgo(v.Uploaded)
	if err != nil {
		return "?"
	}
	return s
}

// fit pads or truncates s to exactly width cells.
func fit(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, "..."), width)
}

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/abelbrown/tubeview/internal/catalog"
)

func runGen() {
	fs := flag.NewFlagSet("gen", flag.ExitOnError)
	kindName := fs.String("kind", "video", "Entity kind: video, short, comment, channel")
	count := fs.Int("n", 20, "Number of entities")
	offset := fs.Int("offset", 0, "Absolute index of the first entity")
	seed := fs.Int64("seed", 0, "Catalog seed (default: config)")
	asJSON := fs.Bool("json", false, "Output JSON instead of a table")
	fs.Parse(os.Args[1:])

	gen := newGenerator(loadConfig(), *seed, isSet(fs, "seed"))
	kind := parseKind(*kindName)
	entities, err := gen.Generate(kind, *count, *offset)
	if err != nil {
		log.Fatalf("generate: %v", err)
	}

	if *asJSON {
		printJSON(entities)
		return
	}
	for _, e := range entities {
		fmt.Println(describe(e))
	}
	fmt.Fprintf(os.Stderr, "\n%d %s entities, seed %d\n", len(entities), kind, gen.Seed())
}

func describe(e catalog.Entity) string {
	switch e := e.(type) {
	case catalog.Short:
		return fmt.Sprintf("%-10s %s %-20s %6s  %s", e.ID, fit(e.Title, 48), fit(e.ChannelName, 20), views(e.Views), duration(e.Duration))
	case catalog.Video:
		badge := duration(e.Duration)
		if e.Live {
			badge = "LIVE"
		}
		return fmt.Sprintf("%-10s %s %-20s %6s views • %-16s %s", e.ID, fit(e.Title, 48), fit(e.ChannelName, 20), views(e.Views), ago(e), badge)
	case catalog.Comment:
		line := fmt.Sprintf("%-12s %-16s %s %s likes, %s", e.ID, e.Author, fit(e.Text, 48), humanize.Comma(int64(e.Likes)), e.TimeAgo)
		if e.Replies > 0 {
			line += fmt.Sprintf(", %d replies", e.Replies)
		}
		return line
	case catalog.Channel:
		mark := ""
		if e.Verified {
			mark += " ✓"
		}
		if e.HasNewContent {
			mark += " ●"
		}
		return fmt.Sprintf("%-12s %s%s", e.ID, e.Name, mark)
	}
	return e.EntityID()
}

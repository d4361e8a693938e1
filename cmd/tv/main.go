// Command tv is the tubeview debug CLI.
//
// Usage:
//
//	tv                      Show help
//	tv gen                  Print a generated page
//	tv feed                 Drive a feed controller to exhaustion
//	tv search <query>       Query the search index
//	tv events               JSONL event log viewer
package main

import (
	"fmt"
	"os"
)

const usage = `tv - tubeview debug CLI

Usage:
  tv <command> [flags]

Commands:
  gen       Print a generated page of videos, shorts, comments or channels
  feed      Drive a feed controller headless and dump its metrics
  search    Query the in-memory search index over the first 100 videos
  events    JSONL event log viewer

Environment:
  TUBEVIEW_SEED      Catalog seed (default: the config file, else the clock)
  TUBEVIEW_HOME      Data directory (default: ~/.tubeview)

Run 'tv <command> -h' for command-specific help.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(0)
	}

	cmd := os.Args[1]
	// Strip the program name + subcommand so flag sets see only their flags
	os.Args = os.Args[1:]

	switch cmd {
	case "gen":
		runGen()
	case "feed":
		runFeed()
	case "search":
		runSearch()
	case "events":
		runEvents()
	case "-h", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "tv: unknown command %q\n\n", cmd)
		fmt.Print(usage)
		os.Exit(1)
	}
}

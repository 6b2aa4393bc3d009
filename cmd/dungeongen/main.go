// Command dungeongen generates a dungeon and prints it as ASCII.
//
// Usage:
//
//	dungeongen [-config file.yaml] [-seed N] [-rooms N] [-width W] [-height H]
//	           [-boxes] [-dump-config] [-log-file path] [-log-level info]
//
// Flags given on the command line override values read from -config.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/dungeon/dungeon"
	"github.com/katalvlaran/dungeon/tiling"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit, returning the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("dungeongen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "YAML configuration file")
	seed := fs.Int64("seed", 0, "random seed")
	rooms := fs.Int("rooms", 0, "number of rooms")
	width := fs.Int("width", 0, "map width in tiles")
	height := fs.Int("height", 0, "map height in tiles")
	showBoxes := fs.Bool("boxes", false, "list rooms and corridor rooms after the map")
	dumpConfig := fs.Bool("dump-config", false, "print the effective configuration and exit")
	logFile := fs.String("log-file", "", "also write JSON debug logs to this file")
	logLevel := fs.String("log-level", "warn", "stderr log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	level, err := parseLevel(*logLevel)
	if err != nil {
		fmt.Fprintln(stderr, "dungeongen:", err)
		return 2
	}
	logger, cleanup, err := initLogger(stderr, level, *logFile)
	if err != nil {
		fmt.Fprintln(stderr, "dungeongen: init logger:", err)
		return 1
	}
	defer cleanup()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Error("Failed to load config", "path", *configPath, "error", err)
		return 1
	}

	// Only flags the user actually set override the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seed
		case "rooms":
			cfg.NumRooms = *rooms
		case "width":
			cfg.MapWidth = *width
		case "height":
			cfg.MapHeight = *height
		}
	})

	if *dumpConfig {
		if err := cfg.Encode(stdout); err != nil {
			logger.Error("Failed to encode config", "error", err)
			return 1
		}
		return 0
	}

	res, err := dungeon.Generate(cfg, dungeon.WithLogger(logger))
	if err != nil {
		logger.Error("Generation failed", "error", err)
		return 1
	}

	fmt.Fprint(stdout, res.Grid)
	fmt.Fprintf(stdout, "seed=%d rooms=%d corridors=%d connections=%d regions=%d\n",
		cfg.Seed, len(res.Rooms), len(res.Corridors), len(res.Connections), res.Regions)
	fmt.Fprintf(stdout, "tiles: room=%d corridor_room=%d path=%d\n",
		res.Grid.Count(tiling.Room), res.Grid.Count(tiling.CorridorRoom), res.Grid.Count(tiling.Path))

	if *showBoxes {
		for i, r := range res.Rooms {
			fmt.Fprintf(stdout, "room %d: %v\n", i, r)
		}
		for i, c := range res.Corridors {
			fmt.Fprintf(stdout, "corridor %d: %v\n", i, c)
		}
	}

	return 0
}

// loadConfig reads path, or returns the defaults when path is empty.
func loadConfig(path string) (dungeon.Config, error) {
	if strings.TrimSpace(path) == "" {
		return dungeon.DefaultConfig(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return dungeon.Config{}, err
	}
	defer f.Close()

	return dungeon.LoadConfig(f)
}

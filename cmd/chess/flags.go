// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Game selection
	newGame  = flag.Bool("new", false, "Start a new game instead of resuming the save file")
	saveFile = flag.String("file", "", "Save file (default: XDG data dir chess-rules/savegame.json)")

	// Front end
	plainMode = flag.Bool("plain", false, "Line mode: read moves from stdin instead of the full-screen board")
	svgFile   = flag.String("svg", "", "Write an SVG diagram of the position to this file and exit")
	letters   = flag.Bool("letters", false, "Draw pieces as letters instead of chess symbols")

	// Saving
	noAutosave = flag.Bool("noautosave", false, "Don't save the game on quit")

	// Logging
	verbosity = flag.Int("v", -1, "Diagnostics level: 0 silent, 1 game events, 2 refused moves (default from config)")
	logFile   = flag.String("log", "", "Append diagnostics to this file")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags over the file configuration.
func applyFlags(cfg *config.Config) (*config.Config, error) {
	b := config.From(cfg)
	if *verbosity >= 0 {
		b.WithVerbosity(*verbosity)
	}
	if *logFile != "" {
		b.WithLogPath(*logFile)
	}
	if *saveFile != "" {
		b.WithSaveFile(*saveFile)
	}
	if *noAutosave {
		b.WithAutosave(false)
	}
	if *letters || *plainMode {
		b.WithGlyphs(config.LetterGlyphs)
	}
	return b.Build()
}

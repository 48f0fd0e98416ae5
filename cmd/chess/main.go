// chess is a two-player chess game for the terminal.
package main

import (
	stderrors "errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/render"
	"github.com/lgbarn/chess-rules-go/internal/snapshot"
	"github.com/lgbarn/chess-rules-go/internal/ui"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess version %s\n", programVersion)
		os.Exit(0)
	}

	os.Exit(run())
}

func run() int {
	fileCfg, err := config.LoadDefault()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading config: %v\n", err)
		return 1
	}
	cfg, err := applyFlags(fileCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	closeLog, err := cfg.OpenLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()

	savePath, err := cfg.SavePath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error locating save file: %v\n", err)
		return 1
	}

	g := engine.NewGame(engine.WithLog(cfg.LogFile), engine.WithVerbosity(cfg.Verbosity))
	if !*newGame {
		loadGame(g, savePath, os.Stderr)
	}

	if *svgFile != "" {
		if err := writeSVG(*svgFile, g); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", *svgFile, err)
			return 1
		}
		return 0
	}

	save := func(g *engine.Game) error {
		return snapshot.Save(savePath, g)
	}

	if *plainMode {
		s := newLineSession(g, cfg, save, os.Stdout)
		if err := s.run(os.Stdin); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	if err := ui.NewApp(g, cfg, save).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// loadGame resumes the saved game if there is one. A save file that cannot
// be loaded is reported and the new game in g is kept.
func loadGame(g *engine.Game, path string, w io.Writer) {
	err := snapshot.Load(path, g)
	switch {
	case err == nil:
		fmt.Fprintf(w, "Resumed %s: %s to move.\n", path, g.ToMove())
	case stderrors.Is(err, fs.ErrNotExist):
		// First run.
	default:
		fmt.Fprintf(w, "Could not resume saved game: %v\nStarting a new game.\n", err)
	}
}

// writeSVG writes a diagram of the game's position, marking the last move.
func writeSVG(path string, g *engine.Game) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	opts := render.DefaultSVGOptions()
	opts.Title = fmt.Sprintf("%s to move", g.ToMove())
	if m, ok := g.LastMove(); ok {
		opts.Marked = append(opts.Marked, m.From, m.To)
	}
	if err := render.WriteSVG(f, g.Board(), opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess [options]\n\n")
	fmt.Fprintf(os.Stderr, "A two-player chess game for the terminal.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nLine mode commands (-plain):\n")
	fmt.Fprintf(os.Stderr, "  e2e4, e2 e4, e7e8q    move (optionally promoting)\n")
	fmt.Fprintf(os.Stderr, "  promote q|r|b|n       finish a pending promotion\n")
	fmt.Fprintf(os.Stderr, "  board                 show the board\n")
	fmt.Fprintf(os.Stderr, "  moves                 list legal moves\n")
	fmt.Fprintf(os.Stderr, "  history               list moves played\n")
	fmt.Fprintf(os.Stderr, "  save | new | quit\n")
}

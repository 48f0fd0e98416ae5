// chess-verify checks that saved chess games can be resumed and reports
// the state of each one.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/worker"
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
		fmt.Printf("chess-verify version %s\n", programVersion)
		os.Exit(0)
	}

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	os.Exit(run(flag.Args()))
}

func run(paths []string) int {
	var out io.Writer = os.Stdout
	if *outputFile != "" {
		f, err := os.Create(*outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
			return 1
		}
		defer f.Close()
		out = f
	}

	var rw output.ReportWriter
	if *jsonOutput {
		rw = output.NewJSONWriter(out)
	} else {
		rw = output.NewTextWriter(out)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var detector *hashing.DuplicateDetector
	if *duplicates {
		detector = hashing.NewDuplicateDetector(false)
	}

	failed, err := verifyFiles(ctx, paths, numWorkers(), detector, rw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		return 1
	}
	if failed > 0 {
		return 1
	}
	return 0
}

// verifyFiles loads every snapshot in paths and writes one report each, in
// input order. With a detector, positions seen in an earlier file are
// reported as duplicates. It returns the number of snapshots that failed to
// load.
func verifyFiles(ctx context.Context, paths []string, n int, detector *hashing.DuplicateDetector, rw output.ReportWriter) (int, error) {
	pool := worker.NewPool(
		worker.VerifySnapshot(engine.WithVerbosity(0)),
		worker.WithWorkers(n),
		worker.WithBufferSize(2*n),
	)

	failed := 0
	for _, res := range pool.Run(ctx, paths) {
		r := &output.Report{
			Source:  res.Path,
			Game:    res.Game,
			Outcome: res.Outcome,
			Err:     res.Error,
		}
		if !r.OK() {
			failed++
		} else if detector != nil {
			if first, dup := detector.CheckAndAdd(res.Path, res.Game); dup {
				r.DuplicateOf = first.Source
			}
		}
		if err := rw.WriteReport(r); err != nil {
			return failed, err
		}
	}
	if err := rw.Close(); err != nil {
		return failed, err
	}
	return failed, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-verify [options] savegame.json...\n\n")
	fmt.Fprintf(os.Stderr, "Loads each saved game and reports whose turn it is and whether the game is over.\n")
	fmt.Fprintf(os.Stderr, "Exits with status 1 if any file cannot be loaded.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}

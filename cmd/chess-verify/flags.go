// flags.go - Command-line flag definitions
package main

import (
	"flag"
	"runtime"
)

var (
	// Output
	jsonOutput = flag.Bool("J", false, "Write the report as JSON")
	outputFile = flag.String("o", "", "Write the report to this file instead of stdout")

	// Processing
	duplicates = flag.Bool("D", false, "Report files whose position matches an earlier file")
	workers = flag.Int("workers", 0, "Number of files verified in parallel (default: number of CPUs)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// numWorkers resolves the -workers flag.
func numWorkers() int {
	if *workers > 0 {
		return *workers
	}
	return runtime.NumCPU()
}

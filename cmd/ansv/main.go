// Command ansv is the test/demonstration harness for the ansv core: it
// reads a byte-sequence file, simulates a P-worker group in-process, runs
// the distributed ANSV protocol across it, and reports the resulting L/R
// arrays. Argument parsing and file I/O live here, deliberately outside the
// ansv and group packages, deliberately kept out of the core.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dedis/ansv/ansv"
	"github.com/dedis/ansv/group"
	"github.com/rs/zerolog"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("ansv", flag.ContinueOnError)
	workers := fs.Int("workers", 4, "number of simulated group members (P)")
	verbose := fs.Bool("v", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: ansv [-workers P] [-v] <file>")
		return 1
	}

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).With().Timestamp().Logger()
	ansv.Logger = logger

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		logger.Error().Err(err).Msg("reading input file")
		return 1
	}
	if len(data) == 0 {
		logger.Error().Msg("input file is empty")
		return 1
	}

	l, r, err := runDistributed(data, *workers, logger)
	if err != nil {
		logger.Error().Err(err).Msg("ansv failed")
		return 2
	}

	for i := range l {
		fmt.Printf("%d\t%d\t%d\n", i, l[i], r[i])
	}
	return 0
}

// runDistributed block-distributes data across workers simulated
// in-process goroutines, runs ansv.Parallel on each, and gathers the
// global L/R arrays back at rank 0.
func runDistributed(data []byte, workers int, logger zerolog.Logger) (l, r []int, err error) {
	ctx := context.Background()

	values := make([]int, len(data))
	for i, b := range data {
		values[i] = int(b)
	}

	runErr := group.RunLocal(ctx, workers, func(ctx context.Context, m *group.Member) error {
		local, lo, err := group.BlockDistribute(ctx, m, 0, values)
		if err != nil {
			return err
		}

		myL, myR, err := ansv.Parallel(ctx, m, local, lo)
		if err != nil {
			return err
		}

		gl, err := group.GatherV(ctx, m, myL, 0)
		if err != nil {
			return err
		}
		gr, err := group.GatherV(ctx, m, myR, 0)
		if err != nil {
			return err
		}
		if m.Rank() == 0 {
			l, r = gl, gr
		}
		return nil
	})
	if runErr != nil {
		return nil, nil, runErr
	}
	return l, r, nil
}

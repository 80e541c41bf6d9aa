// Command ringsolve solves ring-tile puzzles: starting on one tile with a
// running sum, step left or right around the ring (adding each tile you
// land on) until the sum equals the target, in as few moves as possible.
//
//	ringsolve -tiles=-3,7,-9,4,-8,1 -start=0 -sum=10 -target=0
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/vgraph/astar"
	"github.com/katalvlaran/vgraph/log"
	"github.com/katalvlaran/vgraph/ring"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, solves the puzzle and prints the solution to stdout.
// It returns the process exit code: 0 on success, 1 when there is no
// solution or the search failed, 2 for bad flags.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("ringsolve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	tilesFlag := fs.String("tiles", "-3,7,-9,4,-8,1", "comma-separated tile values in ring order")
	startPos := fs.Int("start", 0, "starting tile index")
	startSum := fs.Int("sum", 10, "starting sum")
	target := fs.Int("target", 0, "sum to reach")
	maxExp := fs.Int("max", 100000, "maximum states to expand (0 = unlimited)")
	verbose := fs.Bool("v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	level := log.LogLevelInfo
	if *verbose {
		level = log.LogLevelDebug
	}
	logger := log.NewWriter(stderr, level)

	tiles, err := parseTiles(*tilesFlag)
	if err != nil {
		logger.Error("%v", err)
		return 2
	}
	puzzle, err := ring.New(tiles)
	if err != nil {
		logger.Error("%v", err)
		return 2
	}

	start := ring.State{Position: *startPos, Sum: *startSum}
	logger.Info("solving ring %v from %v toward sum %d", tiles, start, *target)
	res, err := puzzle.Solve(start, *target,
		astar.WithMaxExpansions(*maxExp),
		astar.WithLogger(logger),
	)
	switch {
	case errors.Is(err, astar.ErrBudgetExhausted):
		logger.Warn("gave up after %d states; raise -max to search further", res.Expanded)
		return 1
	case errors.Is(err, ring.ErrBadPosition), errors.Is(err, astar.ErrOptionViolation):
		logger.Error("%v", err)
		return 2
	case err != nil:
		logger.Error("%v", err)
		return 1
	case !res.Found:
		fmt.Fprintln(stdout, "no solution")
		return 1
	}

	fmt.Fprintf(stdout, "solution in %d moves:\n", res.Cost)
	for i, s := range res.Path {
		fmt.Fprintf(stdout, "%3d  tile %d  sum %d\n", i, s.Position, s.Sum)
	}
	logger.Debug("expanded %d states", res.Expanded)

	return 0
}

// parseTiles reads "a,b,c" into integers.
func parseTiles(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, ring.ErrEmptyRing
	}
	parts := strings.Split(s, ",")
	tiles := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("ringsolve: bad tile %q: %w", p, err)
		}
		tiles = append(tiles, v)
	}
	return tiles, nil
}

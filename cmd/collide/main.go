package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/pprof"
	"time"

	eng "github.com/Oliverans/GooseEngineMG/goosemg"

	"chess-zobrist/zobrist"
)

type options struct {
	fen     string
	depth   int
	list    bool
	label   string
	cpuProf string
}

func main() {
	var opts options
	flag.StringVar(&opts.fen, "fen", eng.FENStartPos, "FEN string (defaults to initial position)")
	flag.IntVar(&opts.depth, "depth", 0, "Plies to walk from the root (required)")
	flag.BoolVar(&opts.list, "list", false, "Print every colliding pair")
	flag.StringVar(&opts.label, "label", "", "Optional label prefix for one-line output")
	flag.StringVar(&opts.cpuProf, "cpuprofile", "", "Write CPU profile to file during run")
	flag.Parse()

	// Exit only after run has returned so its deferred profile flush happens.
	os.Exit(run(opts, os.Stdout, os.Stderr))
}

// run performs one sweep and returns the process exit code.
func run(opts options, stdout, stderr io.Writer) int {
	if opts.depth <= 0 {
		fmt.Fprintln(stderr, "-depth must be > 0")
		return 2
	}

	board, err := eng.ParseFEN(opts.fen)
	if err != nil {
		fmt.Fprintf(stderr, "ParseFEN error: %v\n", err)
		return 2
	}

	if opts.cpuProf != "" {
		f, err := os.Create(opts.cpuProf)
		if err != nil {
			fmt.Fprintf(stderr, "creating cpuprofile: %v\n", err)
			return 2
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			fmt.Fprintf(stderr, "start cpu profile: %v\n", err)
			return 2
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	s := newSweep(zobrist.Default())
	start := time.Now()
	if err := s.walk(board, opts.depth); err != nil {
		fmt.Fprintf(stderr, "sweep: %v\n", err)
		return 1
	}
	elapsed := time.Since(start)

	if opts.list {
		for _, c := range s.collisions {
			fmt.Fprintf(stdout, "0x%08x\t%s\t%s\n", uint32(c.key), c.first, c.second)
		}
	}

	// Single line: Label Depth Nodes Distinct Collisions Expected Time
	fmt.Fprintf(stdout, "%s \t%d \t%d \t%d \t%d \t%.2f \t%s\n",
		opts.label, opts.depth, s.nodes, s.distinct(), len(s.collisions), expectedCollisions(s.distinct()), elapsed)
	return 0
}

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// step is one go invocation in the benchmark run.
type step struct {
	title string
	args  []string
}

// steps checks the key table before timing anything; timings of a drifted
// table are meaningless. pattern selects benchmarks as for go test -bench.
func steps(pattern string) []step {
	return []step{
		{"Table self check:", []string{"run", "./cmd/zobrist", "verify"}},
		{"\nColumns: BENCHMARK  N  ns/op  B/op  allocs/op",
			[]string{"test", "./bench", "-run", "^$", "-bench", pattern, "-benchmem", "-benchtime=1s"}},
	}
}

// runGo executes the go tool and copies its combined output to w. Returns exit code.
func runGo(w io.Writer, args ...string) int {
	cmd := exec.Command("go", args...)
	cmd.Env = os.Environ()
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	fmt.Fprint(w, out.String())
	if err == nil {
		return 0
	}
	if ee, ok := err.(*exec.ExitError); ok {
		return ee.ExitCode()
	}
	fmt.Fprintf(os.Stderr, "error running go %v: %v\n", args, err)
	return 1
}

// runSteps stops at the first failing step and returns its exit code.
func runSteps(w io.Writer, ss []step, runner func(io.Writer, ...string) int) int {
	for _, s := range ss {
		fmt.Fprintln(w, s.title)
		if code := runner(w, s.args...); code != 0 {
			return code
		}
	}
	return 0
}

// Usage: go run ./cmd/benchrun [pattern]
func main() {
	pattern := "."
	if len(os.Args) > 1 {
		pattern = os.Args[1]
	}
	os.Exit(runSteps(os.Stdout, steps(pattern), runGo))
}

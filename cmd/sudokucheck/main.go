// Command sudokucheck reports whether a plain PGM graymap encodes a valid
// solved sudoku: 9×9, maximum value 9, one digit per pixel, every row,
// column, and 3×3 box holding 1..9 exactly once.
//
// Usage:
//
//	sudokucheck [input_file]
//
// With no argument the graymap is read from standard input. Exit status is
// 0 for a valid solution and non-zero otherwise; failures print a one-line
// diagnostic to standard error.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/despeck/pnm"
	"github.com/katalvlaran/despeck/sudoku"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stderr))
}

// run executes the load-verify pipeline and returns the process exit code.
func run(args []string, stdin io.Reader, stderr io.Writer) int {
	if len(args) > 1 {
		fmt.Fprintln(stderr, "usage: sudokucheck [input_file]")
		return 1
	}

	in := stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			fmt.Fprintf(stderr, "sudokucheck: could not open %s: %v\n", args[0], err)
			return 1
		}
		defer f.Close()
		in = f
	}

	r, err := pnm.NewReader(in)
	if err != nil {
		fmt.Fprintf(stderr, "sudokucheck: %v\n", err)
		return 1
	}
	g, err := sudoku.Load(r)
	if err != nil {
		fmt.Fprintf(stderr, "sudokucheck: %v\n", err)
		return 1
	}
	if err = sudoku.Verify(g); err != nil {
		fmt.Fprintf(stderr, "sudokucheck: %v\n", err)
		return 1
	}

	return 0
}

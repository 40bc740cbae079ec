// Command despeckle removes black regions connected to the border of a
// plain PBM image — the dark edge artifacts of a scanned page.
//
// Usage:
//
//	despeckle [input_file]
//
// With no argument the image is read from standard input. The cleaned image
// is written to standard output in the same plain PBM format. Any usage,
// I/O, or format error prints a one-line diagnostic to standard error and
// exits non-zero.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/despeck/despeckle"
	"github.com/katalvlaran/despeck/pnm"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the read-despeckle-write pipeline and returns the process
// exit code. Split from main so tests can drive it with fake streams.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) > 1 {
		fmt.Fprintln(stderr, "usage: despeckle [input_file]")
		return 1
	}

	in := stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			fmt.Fprintf(stderr, "despeckle: could not open %s: %v\n", args[0], err)
			return 1
		}
		defer f.Close()
		in = f
	}

	img, err := pnm.ReadBitmap(in)
	if err != nil {
		fmt.Fprintf(stderr, "despeckle: %v\n", err)
		return 1
	}
	if _, err = despeckle.Despeckle(img); err != nil {
		fmt.Fprintf(stderr, "despeckle: %v\n", err)
		return 1
	}
	if err = pnm.WriteBitmap(stdout, img); err != nil {
		fmt.Fprintf(stderr, "despeckle: %v\n", err)
		return 1
	}

	return 0
}

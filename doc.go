// Package despeck is a toolkit for compact 2D raster grids and
// border-connected region removal on binary images.
//
// 🚀 What is despeck?
//
//	A small, focused library plus two command-line tools:
//		• bitgrid/   — packed 2D bit grid (one bit per cell, value-based access)
//		• cellgrid/  — generic 2D grid of fixed-size elements (pointer-based access)
//		• despeckle/ — BFS removal of black regions connected to the image border
//		• pnm/       — plain PBM (P1) and PGM (P2) reading and writing
//		• sudoku/    — solved-grid constraint checker built on cellgrid
//		• cmd/despeckle, cmd/sudokucheck — one-shot read-process-print programs
//
// ✨ Why choose despeck?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – sentinel errors, no panics on user input
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – hooks (OnClear) and functional options for custom logic
//
// Both grid packages share the same row-major index formula (row*width + col),
// demonstrating that 2D addressing is independent of element representation:
// bitgrid packs cells into uint64 words and exposes get/put by value, while
// cellgrid stores addressable elements and hands out live pointers.
//
// Quick ASCII example — despeckling clears border-connected black cells (#)
// and leaves interior islands alone:
//
//	#####          .....
//	#..#.    →     .....
//	.#.#.          .#...
//	..###          .....
//
//	go get github.com/katalvlaran/despeck
package despeck

// Package bitgrid provides a compact two-dimensional grid of single-bit
// cells, packed into uint64 words.
//
// What:
//
//   - Grid stores W×H cells, one bit each, in a single flat backing slice.
//   - Cells are addressed by (col, row); the flat index is row*width + col.
//   - Access is strictly value-based: Get and Put. A packed bit has no
//     independent address, so the API never exposes a reference to one —
//     callers needing addressable elements should use package cellgrid.
//   - EachRowMajor and EachColMajor traverse every cell in a fixed order.
//
// Why:
//
//   - Binary raster images: one bit per pixel instead of one byte (or more).
//   - Visited/marker sets for grid traversals at 1/8th the memory.
//
// Complexity:
//
//   - New: O(W×H) zero-init. Get/Put: O(1). Count: O(W×H / 64).
//   - EachRowMajor / EachColMajor: O(W×H).
//
// Errors:
//
//   - ErrInvalidDimensions: width or height not positive at creation.
//   - ErrOutOfBounds: coordinate outside [0,width) × [0,height).
//   - ErrInvalidBit: value other than 0 or 1 passed to Put.
package bitgrid

// Package cellgrid provides a generic two-dimensional grid of fixed-size
// elements stored in one flat backing slice.
//
// What:
//
//   - Grid[T] stores W×H elements of type T in row-major order; the element
//     at (col, row) occupies flat index row*width + col — the same index
//     formula as package bitgrid, generalized to arbitrary element sizes.
//   - At returns a live pointer into the backing storage, so callers read
//     and write elements in place; the pointer stays valid for the grid's
//     lifetime.
//   - EachRowMajor and EachColMajor traverse all elements in a fixed order,
//     handing the visitor an addressable element.
//
// Why:
//
//   - Board games and puzzles: cells carry records, not single values.
//   - Image processing: per-pixel structs without per-row allocations.
//
// Complexity:
//
//   - New: O(W×H) zero-init. At: O(1). Each*: O(W×H). Clone: O(W×H).
//
// Errors:
//
//   - ErrInvalidDimensions: width or height not positive at creation.
//   - ErrInvalidElementSize: element type has zero size.
//   - ErrOutOfBounds: coordinate outside [0,width) × [0,height).
package cellgrid

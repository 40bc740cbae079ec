// Package pnm reads and writes plain (ASCII) portable anymap images:
// PBM bitmaps (magic "P1") and PGM graymaps (magic "P2").
//
// What:
//
//   - Reader parses the magic tag and header (width, height, and for
//     graymaps the maximum sample value), then yields samples one at a
//     time in row-major order via Next — a pull-based sample source.
//   - '#' comments are skipped anywhere whitespace may appear, through
//     the end of their line.
//   - ReadBitmap decodes a whole P1 image into a bitgrid.Grid;
//     WriteBitmap serializes a bitgrid.Grid back to the same format:
//     tag line, dimension line, then one space-separated line per row.
//
// Round-trip guarantee: WriteBitmap followed by ReadBitmap reproduces the
// identical bit pattern.
//
// Errors:
//
//   - ErrBadMagic: input does not start with a supported magic tag.
//   - ErrBadHeader: non-positive dimensions or invalid maximum value.
//   - ErrTruncated: input ends before width×height samples were read.
//   - ErrBadSample: a sample token is not a decimal integer.
//   - ErrSampleRange: a sample lies outside [0, MaxVal].
//   - ErrExhausted: Next called after all samples were consumed.
//   - ErrKindMismatch: decoded image kind differs from the one required.
//   - ErrNilGrid: WriteBitmap received a nil grid.
package pnm

// Package sudoku validates completed 9×9 sudoku solutions stored in a
// cellgrid.Grid of digits.
//
// A solution is valid when every row, every column, and every aligned 3×3
// box contains the digits 1..9 exactly once. Solutions arrive as plain PGM
// graymaps with width 9, height 9, and maximum value 9 — one digit per
// pixel — loaded via Load.
//
// Errors:
//
//   - ErrBadShape: grid (or graymap header) is not 9×9 with max value 9.
//   - ErrDigitRange: a cell holds a value outside 1..9.
//   - ErrDuplicate: a digit repeats within a row, column, or box.
package sudoku

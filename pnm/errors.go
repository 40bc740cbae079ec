// Package pnm defines sentinel errors for plain anymap decoding and encoding.
package pnm

import "errors"

// Sentinel errors for pnm operations, matched with errors.Is.
var (
	// ErrBadMagic indicates a missing or unsupported magic tag.
	ErrBadMagic = errors.New("pnm: unsupported magic tag")

	// ErrBadHeader indicates invalid header metadata (dimensions or max value).
	ErrBadHeader = errors.New("pnm: invalid header")

	// ErrTruncated indicates the input ended before all declared samples.
	ErrTruncated = errors.New("pnm: truncated input")

	// ErrBadSample indicates a sample token that is not a decimal integer.
	ErrBadSample = errors.New("pnm: malformed sample")

	// ErrSampleRange indicates a sample outside [0, MaxVal].
	ErrSampleRange = errors.New("pnm: sample out of range")

	// ErrExhausted indicates Next was called after the final sample.
	ErrExhausted = errors.New("pnm: all samples already read")

	// ErrKindMismatch indicates an image kind other than the required one.
	ErrKindMismatch = errors.New("pnm: image kind mismatch")

	// ErrNilGrid indicates a nil grid passed to WriteBitmap.
	ErrNilGrid = errors.New("pnm: grid is nil")
)

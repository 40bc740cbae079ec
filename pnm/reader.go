// Package pnm implements the pull-based plain PBM/PGM reader.
package pnm

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Kind identifies the pixel format of a plain anymap.
type Kind int

const (
	// Bit is a plain PBM bitmap (magic "P1"): samples are 0 or 1.
	Bit Kind = iota + 1
	// Gray is a plain PGM graymap (magic "P2"): samples are 0..MaxVal.
	Gray
)

// String implements fmt.Stringer for diagnostics.
func (k Kind) String() string {
	switch k {
	case Bit:
		return "bitmap"
	case Gray:
		return "graymap"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Header holds the declared metadata of a plain anymap.
type Header struct {
	Kind   Kind
	Width  int
	Height int
	// MaxVal is the declared maximum sample value: 1 for Bit, the parsed
	// third header field for Gray.
	MaxVal int
}

// Reader decodes a plain anymap: header first, then exactly
// Width×Height samples pulled one at a time in row-major order.
type Reader struct {
	hdr  Header
	br   *bufio.Reader
	left int // samples not yet returned by Next
}

// NewReader parses the magic tag and header from r and returns a Reader
// positioned at the first sample.
// Returns ErrBadMagic for an unsupported tag and ErrBadHeader for
// non-positive dimensions or an invalid maximum value.
func NewReader(r io.Reader) (*Reader, error) {
	br := bufio.NewReader(r)
	magic, err := nextToken(br)
	if err != nil {
		return nil, fmt.Errorf("pnm: reading magic: %w", ErrBadMagic)
	}

	var kind Kind
	switch magic {
	case "P1":
		kind = Bit
	case "P2":
		kind = Gray
	default:
		return nil, fmt.Errorf("%w: %q", ErrBadMagic, magic)
	}

	width, err := nextInt(br)
	if err != nil {
		return nil, fmt.Errorf("%w: width: %v", ErrBadHeader, err)
	}
	height, err := nextInt(br)
	if err != nil {
		return nil, fmt.Errorf("%w: height: %v", ErrBadHeader, err)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrBadHeader, width, height)
	}

	maxVal := 1
	if kind == Gray {
		maxVal, err = nextInt(br)
		if err != nil {
			return nil, fmt.Errorf("%w: max value: %v", ErrBadHeader, err)
		}
		if maxVal <= 0 {
			return nil, fmt.Errorf("%w: max value %d", ErrBadHeader, maxVal)
		}
	}

	return &Reader{
		hdr:  Header{Kind: kind, Width: width, Height: height, MaxVal: maxVal},
		br:   br,
		left: width * height,
	}, nil
}

// Header returns the declared image metadata.
func (r *Reader) Header() Header {
	return r.hdr
}

// Next returns the next sample in row-major order.
// Returns ErrExhausted once all Width×Height samples were consumed,
// ErrTruncated when the input ends early, ErrBadSample for a non-integer
// token, and ErrSampleRange for a value outside [0, MaxVal].
func (r *Reader) Next() (int, error) {
	if r.left == 0 {
		return 0, ErrExhausted
	}
	tok, err := nextToken(r.br)
	if err != nil {
		return 0, fmt.Errorf("%w: %d samples missing", ErrTruncated, r.left)
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadSample, tok)
	}
	if v < 0 || v > r.hdr.MaxVal {
		return 0, fmt.Errorf("%w: %d not in [0,%d]", ErrSampleRange, v, r.hdr.MaxVal)
	}
	r.left--

	return v, nil
}

// nextToken skips whitespace and '#' comments, then returns the next run of
// non-whitespace bytes. Comments extend through the end of their line.
func nextToken(br *bufio.Reader) (string, error) {
	// skip whitespace and comments
	for {
		b, err := br.ReadByte()
		if err != nil {
			return "", err
		}
		switch {
		case b == '#':
			if _, err = br.ReadString('\n'); err != nil {
				return "", err
			}
		case isSpace(b):
			// keep skipping
		default:
			if err = br.UnreadByte(); err != nil {
				return "", err
			}
			return readWord(br)
		}
	}
}

// readWord collects bytes until the next whitespace or EOF.
func readWord(br *bufio.Reader) (string, error) {
	var word []byte
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if isSpace(b) || b == '#' {
			_ = br.UnreadByte()
			break
		}
		word = append(word, b)
	}

	return string(word), nil
}

// nextInt parses the next token as a decimal integer.
func nextInt(br *bufio.Reader) (int, error) {
	tok, err := nextToken(br)
	if err != nil {
		return 0, err
	}

	return strconv.Atoi(tok)
}

// isSpace reports whether b is anymap whitespace.
func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}

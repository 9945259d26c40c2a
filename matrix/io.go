// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Fill an already-shaped Dense from a raw stream of packed float32 values.
//   - Render a Dense as a thresholded glyph grid for presentation layers.
//
// Binary layout:
//   - rows*cols IEEE-754 float32 values, row-major, no header, no padding.
//   - Byte order defaults to little-endian (WithByteOrder to override).
//
// Failure policy:
//   - Source shorter than required  → ErrDimensionMismatch.
//   - Any other read failure        → ErrIO (the cause is also wrapped).
//   - On failure the destination is left unmodified.

package matrix

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
)

const (
	opRead   = "Read"
	opRender = "Render"
)

// Compile-time assertions: Dense is both an io.ReaderFrom and an io.WriterTo.
var (
	_ io.ReaderFrom = (*Dense)(nil)
	_ io.WriterTo   = (*Dense)(nil)
)

// ReadFrom fills m from r using the default byte order. See ReadInto.
func (m *Dense) ReadFrom(r io.Reader) (int64, error) {
	return ReadInto(r, m)
}

// ReadInto fills m's buffer with Len() float32 values decoded from r.
// MAIN DESCRIPTION:
//   - Binary ingestion for pre-trained parameters and images.
//
// Implementation:
//   - Stage 1: when r is an io.Seeker, compare the remaining byte count with the
//     required one up-front (the stream position is restored afterwards).
//     A failing Seek skips the check.
//   - Stage 2: io.ReadFull exactly Len()*4 bytes into a staging buffer.
//   - Stage 3: decode into m only after the whole read succeeded.
//
// Returns:
//   - number of bytes consumed from r.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (short source), ErrIO (read failure).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) staging bytes.
func ReadInto(r io.Reader, m *Dense, opts ...Option) (int64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opRead, err)
	}
	o := gatherOptions(opts...)
	need := int64(len(m.data) * Float32Size)

	// Stage 1: cheap size check when the source can tell its length.
	// Pipes and FIFOs are *os.File values whose Seek fails; they fall
	// through to the read, which classifies them.
	if s, ok := r.(io.Seeker); ok {
		if remaining, err := remainingBytes(s); err == nil && remaining < need {
			return 0, fmt.Errorf("%s: have %d bytes, need %d: %w", opRead, remaining, need, ErrDimensionMismatch)
		}
	}

	// Stage 2: read everything before touching m.
	buf := make([]byte, need)
	n, err := io.ReadFull(r, buf)
	switch {
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return int64(n), fmt.Errorf("%s: have %d bytes, need %d: %w", opRead, n, need, ErrDimensionMismatch)
	case err != nil:
		return int64(n), fmt.Errorf("%s: %w: %w", opRead, ErrIO, err)
	}

	// Stage 3: decode.
	for i := range m.data {
		bits := o.byteOrder.Uint32(buf[i*Float32Size:])
		m.data[i] = float64(math.Float32frombits(bits))
	}

	return int64(n), nil
}

// remainingBytes reports how many bytes are left after the current offset of s,
// restoring the offset before returning.
func remainingBytes(s io.Seeker) (int64, error) {
	cur, err := s.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}
	end, err := s.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	if _, err = s.Seek(cur, io.SeekStart); err != nil {
		return 0, err
	}

	return end - cur, nil
}

// WriteTo renders m to w as a glyph grid using the default options. See Render.
func (m *Dense) WriteTo(w io.Writer) (int64, error) {
	return Render(w, m)
}

// Render writes m as a thresholded glyph grid: one line per row, each entry
// greater than the threshold as the filled glyph and every other entry as the
// blank glyph. This is a display aid, not an interchange format.
//
// Errors: ErrNilMatrix, or the writer's error wrapped with the Render tag.
// Complexity: O(r*c).
func Render(w io.Writer, m *Dense, opts ...Option) (int64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opRender, err)
	}
	o := gatherOptions(opts...)

	var (
		total int64
		line  strings.Builder
	)
	line.Grow(m.c*len(o.filled) + 1)
	for i := 0; i < m.r; i++ {
		line.Reset()
		for _, v := range m.data[i*m.c : (i+1)*m.c] {
			if v > o.threshold {
				line.WriteString(o.filled)
			} else {
				line.WriteString(o.blank)
			}
		}
		line.WriteByte('\n')

		n, err := io.WriteString(w, line.String())
		total += int64(n)
		if err != nil {
			return total, matrixErrorf(opRender, err)
		}
	}

	return total, nil
}

// Glyphs returns the Render output as a string.
func (m *Dense) Glyphs(opts ...Option) string {
	var b strings.Builder
	_, _ = Render(&b, m, opts...) // strings.Builder never fails

	return b.String()
}

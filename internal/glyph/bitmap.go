// internal/glyph/bitmap.go
package glyph

import (
	"fmt"
	"strings"
)

// Matrix geometry of the badge. These values are fixed by the hardware.
const (
	// Rows is the pixel height of the LED matrix.
	Rows = 11

	// ColumnPixels is the pixel width of one column. The firmware addresses
	// the matrix in byte columns, so every width in this codebase is counted
	// in these units.
	ColumnPixels = 8
)

// Bitmap is a fixed-height strip of byte columns.
//
// Data is column-major: Rows bytes per column, top row first, most
// significant bit is the leftmost pixel. len(Data) == Cols*Rows.
// A Bitmap handed to another component is never mutated again.
type Bitmap struct {
	Cols int
	Data []byte
}

// NewBitmap returns an unlit bitmap of cols columns.
func NewBitmap(cols int) Bitmap {
	if cols < 0 {
		cols = 0
	}
	return Bitmap{Cols: cols, Data: make([]byte, cols*Rows)}
}

// Valid reports whether Data matches the declared column count.
func (b Bitmap) Valid() bool {
	return b.Cols >= 0 && len(b.Data) == b.Cols*Rows
}

// Width is the pixel width.
func (b Bitmap) Width() int { return b.Cols * ColumnPixels }

// Pixel reports whether the pixel at (x, y) is lit. Out of range is unlit.
func (b Bitmap) Pixel(x, y int) bool {
	if x < 0 || y < 0 || y >= Rows || x >= b.Width() {
		return false
	}
	i := (x/ColumnPixels)*Rows + y
	if i >= len(b.Data) {
		return false
	}
	return b.Data[i]&(0x80>>uint(x%ColumnPixels)) != 0
}

// Clone returns a deep copy.
func (b Bitmap) Clone() Bitmap {
	out := Bitmap{Cols: b.Cols, Data: make([]byte, len(b.Data))}
	copy(out.Data, b.Data)
	return out
}

// Concat joins bitmaps left to right without padding.
func Concat(parts ...Bitmap) Bitmap {
	cols := 0
	for _, p := range parts {
		cols += p.Cols
	}
	out := Bitmap{Cols: cols, Data: make([]byte, 0, cols*Rows)}
	for _, p := range parts {
		out.Data = append(out.Data, p.Data...)
	}
	return out
}

// FromRows builds a bitmap from Rows strings of pixel art, '#' meaning lit.
// Rows may differ in length; the width is rounded up to whole columns.
func FromRows(rows []string) (Bitmap, error) {
	if len(rows) != Rows {
		return Bitmap{}, fmt.Errorf("%w: got %d rows", ErrIconSize, len(rows))
	}

	width := 0
	for _, r := range rows {
		if len(r) > width {
			width = len(r)
		}
	}
	if width == 0 {
		return Bitmap{}, fmt.Errorf("%w: empty art", ErrIconSize)
	}

	b := NewBitmap((width + ColumnPixels - 1) / ColumnPixels)
	for y, r := range rows {
		for x := 0; x < len(r); x++ {
			if r[x] == '#' {
				b.set(x, y)
			}
		}
	}
	return b, nil
}

func (b Bitmap) set(x, y int) {
	b.Data[(x/ColumnPixels)*Rows+y] |= 0x80 >> uint(x%ColumnPixels)
}

// String renders the bitmap as pixel art, one line per row.
func (b Bitmap) String() string {
	var sb strings.Builder
	sb.Grow((b.Width() + 1) * Rows)
	for y := 0; y < Rows; y++ {
		for x := 0; x < b.Width(); x++ {
			if b.Pixel(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// internal/message/assemble.go
package message

import (
	"errors"
	"fmt"

	"github.com/tamzrod/led-badge/internal/glyph"
	"github.com/tamzrod/led-badge/internal/header"
)

// MaxSize is the largest message the badge accepts. Larger writes
// overrun device memory and corrupt what is shown.
const MaxSize = 8192

var (
	ErrSlotMismatch = errors.New("message: header does not match bitmaps")
	ErrTooLarge     = errors.New("message: message too large")
)

// Assemble concatenates the header and every bitmap, in slot order.
//
// The header's per-slot column counts must equal the bitmaps' columns;
// any difference means the header was built from other bitmaps and the
// device would misread the payload.
func Assemble(hdr []byte, bitmaps []glyph.Bitmap) ([]byte, error) {
	lengths, err := header.Lengths(hdr)
	if err != nil {
		return nil, err
	}

	if len(bitmaps) == 0 || len(bitmaps) > header.MaxSlots {
		return nil, fmt.Errorf("%w: %d bitmaps", ErrSlotMismatch, len(bitmaps))
	}

	size := len(hdr)
	for i, l := range lengths {
		if i >= len(bitmaps) {
			if l != 0 {
				return nil, fmt.Errorf("%w: header declares slot %d (%d columns) but only %d bitmaps given",
					ErrSlotMismatch, i, l, len(bitmaps))
			}
			continue
		}

		b := bitmaps[i]
		if !b.Valid() {
			return nil, fmt.Errorf("%w: slot %d bitmap has %d bytes for %d columns",
				ErrSlotMismatch, i, len(b.Data), b.Cols)
		}
		if b.Cols != l {
			return nil, fmt.Errorf("%w: slot %d header=%d columns bitmap=%d",
				ErrSlotMismatch, i, l, b.Cols)
		}
		size += len(b.Data)
	}

	if size > MaxSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrTooLarge, size, MaxSize)
	}

	buf := make([]byte, 0, size)
	buf = append(buf, hdr...)
	for _, b := range bitmaps {
		buf = append(buf, b.Data...)
	}
	return buf, nil
}

// internal/header/encode.go
package header

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidSlotCount  = errors.New("header: invalid slot count")
	ErrInvalidSpeed      = errors.New("header: invalid speed")
	ErrInvalidMode       = errors.New("header: invalid mode")
	ErrInvalidLength     = errors.New("header: invalid length")
	ErrInvalidBrightness = errors.New("header: invalid brightness")
	ErrMalformed         = errors.New("header: malformed header")
)

// Params holds one entry per active slot in each slice.
type Params struct {
	Lengths []int // columns per slot
	Speeds  []int // 1..8
	Modes   []Mode
	Blinks  []bool
	Ants    []bool

	// Brightness is 25, 50, 75 or 100 percent; 0 selects DefaultBrightness.
	Brightness int

	// Stamp is written into the header when non-zero.
	Stamp time.Time
}

// Encode builds the 64-byte header. Layout is protocol-locked.
// No IO. No side effects.
func Encode(p Params) ([]byte, error) {
	n := len(p.Lengths)
	if n == 0 || n > MaxSlots {
		return nil, fmt.Errorf("%w: %d slots (want 1..%d)", ErrInvalidSlotCount, n, MaxSlots)
	}
	if len(p.Speeds) != n || len(p.Modes) != n || len(p.Blinks) != n || len(p.Ants) != n {
		return nil, fmt.Errorf(
			"%w: lengths=%d speeds=%d modes=%d blinks=%d ants=%d",
			ErrInvalidSlotCount, n, len(p.Speeds), len(p.Modes), len(p.Blinks), len(p.Ants),
		)
	}

	brightness := p.Brightness
	if brightness == 0 {
		brightness = DefaultBrightness
	}
	code, ok := brightnessCodes[brightness]
	if !ok {
		return nil, fmt.Errorf("%w: %d (want 25, 50, 75 or 100)", ErrInvalidBrightness, p.Brightness)
	}

	h := make([]byte, Size)
	copy(h[OffMagic:], magic[:])
	h[OffBrightness] = code

	for i := 0; i < MaxSlots; i++ {
		h[OffSpeedMode+i] = unusedSpeedMode
	}

	for i := 0; i < n; i++ {
		speed := p.Speeds[i]
		if speed < MinSpeed || speed > MaxSpeed {
			return nil, fmt.Errorf("%w: slot %d speed %d (want %d..%d)", ErrInvalidSpeed, i, speed, MinSpeed, MaxSpeed)
		}
		mode := p.Modes[i]
		if !mode.Valid() {
			return nil, fmt.Errorf("%w: slot %d %s", ErrInvalidMode, i, mode)
		}
		length := p.Lengths[i]
		if length < 0 || length > 0xFFFF {
			return nil, fmt.Errorf("%w: slot %d length %d", ErrInvalidLength, i, length)
		}

		if p.Blinks[i] {
			h[OffBlink] |= 1 << uint(i)
		}
		if p.Ants[i] {
			h[OffAnts] |= 1 << uint(i)
		}

		h[OffSpeedMode+i] = byte(speed-1)<<4 | byte(mode)
		binary.BigEndian.PutUint16(h[OffLengths+2*i:], uint16(length))
	}

	if !p.Stamp.IsZero() {
		s := p.Stamp
		h[OffStamp+0] = byte(s.Year() % 100)
		h[OffStamp+1] = byte(s.Month())
		h[OffStamp+2] = byte(s.Day())
		h[OffStamp+3] = byte(s.Hour())
		h[OffStamp+4] = byte(s.Minute())
		h[OffStamp+5] = byte(s.Second())
	}

	return h, nil
}

// Lengths decodes the MaxSlots column counts from an encoded header.
func Lengths(h []byte) ([]int, error) {
	if len(h) != Size {
		return nil, fmt.Errorf("%w: %d bytes, want %d", ErrMalformed, len(h), Size)
	}
	if [4]byte(h[OffMagic:OffMagic+4]) != magic {
		return nil, fmt.Errorf("%w: bad signature % x", ErrMalformed, h[OffMagic:OffMagic+4])
	}

	out := make([]int, MaxSlots)
	for i := range out {
		out[i] = int(binary.BigEndian.Uint16(h[OffLengths+2*i:]))
	}
	return out, nil
}

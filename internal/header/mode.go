// internal/header/mode.go
package header

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode is the display animation of one slot. Values are wire codes.
type Mode uint8

const (
	ScrollLeft Mode = iota
	ScrollRight
	ScrollUp
	ScrollDown
	Still
	Animation
	DropDown
	Curtain
	Laser
)

var modeNames = [...]string{
	ScrollLeft:  "scroll-left",
	ScrollRight: "scroll-right",
	ScrollUp:    "scroll-up",
	ScrollDown:  "scroll-down",
	Still:       "still",
	Animation:   "animation",
	DropDown:    "drop-down",
	Curtain:     "curtain",
	Laser:       "laser",
}

// Valid reports whether m is a code the firmware knows.
func (m Mode) Valid() bool { return int(m) < len(modeNames) }

func (m Mode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
	return modeNames[m]
}

// ParseMode accepts a mode name ("scroll-left", "Scroll left", "scroll_left")
// or its numeric code.
func ParseMode(s string) (Mode, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer(" ", "-", "_", "-").Replace(key)

	for i, n := range modeNames {
		if n == key {
			return Mode(i), nil
		}
	}

	if code, err := strconv.Atoi(key); err == nil && code >= 0 && code < len(modeNames) {
		return Mode(code), nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

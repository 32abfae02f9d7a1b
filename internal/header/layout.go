// internal/header/layout.go
package header

// Header layout constants.
// These values are the badge firmware's wire contract and MUST NOT be configurable.

// ---- GEOMETRY ----

// Size is the fixed header length in bytes.
const Size = 64

// MaxSlots is the number of message slots the firmware stores.
const MaxSlots = 8

// ---- OFFSETS ----

// OffMagic holds the 4-byte signature "wang".
const OffMagic = 0

// OffBrightness holds the brightness code.
const OffBrightness = 5

// OffBlink holds the blink bitmask, bit i = slot i.
const OffBlink = 6

// OffAnts holds the marquee ("ants") bitmask, bit i = slot i.
const OffAnts = 7

// OffSpeedMode is the first of MaxSlots bytes packing (speed-1)<<4 | mode.
const OffSpeedMode = 8

// OffLengths is the first of MaxSlots big-endian uint16 column counts.
const OffLengths = 16

// OffStamp is the first of 6 timestamp bytes: yy mm dd hh mi ss.
const OffStamp = 38

// ---- VALUES ----

var magic = [4]byte{'w', 'a', 'n', 'g'}

// unusedSpeedMode fills the speed/mode byte of slots that carry no message.
const unusedSpeedMode byte = 0x40

// ---- BRIGHTNESS CODES ----

// DefaultBrightness is used when the caller omits brightness (0).
const DefaultBrightness = 100

var brightnessCodes = map[int]byte{
	25:  0x40,
	50:  0x20,
	75:  0x10,
	100: 0x00,
}

// ---- LIMITS ----

const (
	MinSpeed = 1
	MaxSpeed = 8
)

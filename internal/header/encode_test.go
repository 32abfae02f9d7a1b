// internal/header/encode_test.go
package header

import (
	"bytes"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// readGolden parses a hex dump; lines starting with '#' are comments.
func readGolden(t *testing.T, name string) []byte {
	t.Helper()

	raw, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatal(err)
	}

	var sb strings.Builder
	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		sb.WriteString(strings.Join(strings.Fields(line), ""))
	}

	b, err := hex.DecodeString(sb.String())
	if err != nil {
		t.Fatalf("golden %s: %v", name, err)
	}
	return b
}

func oneSlot() Params {
	return Params{
		Lengths:    []int{4},
		Speeds:     []int{4},
		Modes:      []Mode{ScrollLeft},
		Blinks:     []bool{false},
		Ants:       []bool{false},
		Brightness: 100,
	}
}

func TestEncode_GoldenOneSlot(t *testing.T) {
	got, err := Encode(oneSlot())
	if err != nil {
		t.Fatalf("Encode err=%v", err)
	}

	want := readGolden(t, "one_slot.golden")
	if !bytes.Equal(got, want) {
		t.Fatalf("header mismatch\n got % x\nwant % x", got, want)
	}
}

func TestEncode_GoldenThreeSlots(t *testing.T) {
	got, err := Encode(Params{
		Lengths:    []int{4, 300, 0},
		Speeds:     []int{1, 8, 5},
		Modes:      []Mode{ScrollLeft, Laser, Still},
		Blinks:     []bool{false, true, false},
		Ants:       []bool{true, false, true},
		Brightness: 25,
		Stamp:      time.Date(2024, time.March, 9, 14, 5, 59, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Encode err=%v", err)
	}

	want := readGolden(t, "three_slots.golden")
	if !bytes.Equal(got, want) {
		t.Fatalf("header mismatch\n got % x\nwant % x", got, want)
	}
}

func TestEncode_BrightnessCodes(t *testing.T) {
	cases := map[int]byte{0: 0x00, 100: 0x00, 75: 0x10, 50: 0x20, 25: 0x40}

	for pct, code := range cases {
		p := oneSlot()
		p.Brightness = pct

		h, err := Encode(p)
		if err != nil {
			t.Fatalf("brightness %d: err=%v", pct, err)
		}
		if h[OffBrightness] != code {
			t.Fatalf("brightness %d: got 0x%02x want 0x%02x", pct, h[OffBrightness], code)
		}
	}

	p := oneSlot()
	p.Brightness = 60
	if _, err := Encode(p); !errors.Is(err, ErrInvalidBrightness) {
		t.Fatalf("expected ErrInvalidBrightness, got %v", err)
	}
}

func TestEncode_SlotCount(t *testing.T) {
	mismatched := oneSlot()
	mismatched.Speeds = []int{4, 4}

	noAnts := oneSlot()
	noAnts.Ants = nil

	tooMany := Params{
		Lengths: make([]int, 9),
		Speeds:  []int{1, 1, 1, 1, 1, 1, 1, 1, 1},
		Modes:   make([]Mode, 9),
		Blinks:  make([]bool, 9),
		Ants:    make([]bool, 9),
	}

	for name, p := range map[string]Params{
		"mismatched": mismatched,
		"missing":    noAnts,
		"empty":      {},
		"nine":       tooMany,
	} {
		if _, err := Encode(p); !errors.Is(err, ErrInvalidSlotCount) {
			t.Fatalf("%s: expected ErrInvalidSlotCount, got %v", name, err)
		}
	}
}

func TestEncode_InvalidSpeed(t *testing.T) {
	for _, s := range []int{0, 9, -1} {
		p := oneSlot()
		p.Speeds = []int{s}
		if _, err := Encode(p); !errors.Is(err, ErrInvalidSpeed) {
			t.Fatalf("speed %d: expected ErrInvalidSpeed, got %v", s, err)
		}
	}
}

func TestEncode_InvalidModeAndLength(t *testing.T) {
	p := oneSlot()
	p.Modes = []Mode{Mode(9)}
	if _, err := Encode(p); !errors.Is(err, ErrInvalidMode) {
		t.Fatalf("expected ErrInvalidMode, got %v", err)
	}

	p = oneSlot()
	p.Lengths = []int{0x10000}
	if _, err := Encode(p); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("expected ErrInvalidLength, got %v", err)
	}
}

func TestEncode_EightSlots(t *testing.T) {
	p := Params{
		Lengths: []int{1, 2, 3, 4, 5, 6, 7, 8},
		Speeds:  []int{1, 2, 3, 4, 5, 6, 7, 8},
		Modes:   []Mode{ScrollLeft, ScrollRight, ScrollUp, ScrollDown, Still, Animation, DropDown, Curtain},
		Blinks:  []bool{true, true, true, true, true, true, true, true},
		Ants:    []bool{false, false, false, false, false, false, false, true},
	}

	h, err := Encode(p)
	if err != nil {
		t.Fatalf("Encode err=%v", err)
	}
	if h[OffBlink] != 0xFF || h[OffAnts] != 0x80 {
		t.Fatalf("masks blink=0x%02x ants=0x%02x", h[OffBlink], h[OffAnts])
	}
	for i := 0; i < MaxSlots; i++ {
		want := byte(i)<<4 | byte(i)
		if h[OffSpeedMode+i] != want {
			t.Fatalf("slot %d speed/mode 0x%02x want 0x%02x", i, h[OffSpeedMode+i], want)
		}
	}
}

func TestLengths_RoundTrip(t *testing.T) {
	h, err := Encode(Params{
		Lengths: []int{4, 513},
		Speeds:  []int{1, 1},
		Modes:   []Mode{Still, Still},
		Blinks:  []bool{false, false},
		Ants:    []bool{false, false},
	})
	if err != nil {
		t.Fatal(err)
	}

	got, err := Lengths(h)
	if err != nil {
		t.Fatalf("Lengths err=%v", err)
	}
	want := []int{4, 513, 0, 0, 0, 0, 0, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("lengths %v want %v", got, want)
		}
	}
}

func TestLengths_Malformed(t *testing.T) {
	if _, err := Lengths(make([]byte, 10)); !errors.Is(err, ErrMalformed) {
		t.Fatalf("short header: expected ErrMalformed, got %v", err)
	}
	if _, err := Lengths(make([]byte, Size)); !errors.Is(err, ErrMalformed) {
		t.Fatalf("bad magic: expected ErrMalformed, got %v", err)
	}
}

func TestParseMode(t *testing.T) {
	cases := map[string]Mode{
		"scroll-left":  ScrollLeft,
		"Scroll left":  ScrollLeft,
		"scroll_right": ScrollRight,
		"LASER":        Laser,
		"drop-down":    DropDown,
		"7":            Curtain,
		"0":            ScrollLeft,
	}
	for in, want := range cases {
		got, err := ParseMode(in)
		if err != nil || got != want {
			t.Fatalf("ParseMode(%q) = %v, %v; want %v", in, got, err, want)
		}
	}

	for _, in := range []string{"", "sideways", "9", "-1"} {
		if _, err := ParseMode(in); !errors.Is(err, ErrInvalidMode) {
			t.Fatalf("ParseMode(%q): expected ErrInvalidMode, got %v", in, err)
		}
	}
}

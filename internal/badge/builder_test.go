// internal/badge/builder_test.go
package badge

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	cfg "github.com/tamzrod/led-badge/internal/config"
	"github.com/tamzrod/led-badge/internal/glyph"
	"github.com/tamzrod/led-badge/internal/header"
	"github.com/tamzrod/led-badge/internal/render"
)

func intp(v int) *int { return &v }

func TestBuildMessage_Slots(t *testing.T) {
	b := cfg.BadgeConfig{
		Brightness: 75,
		Slots: []cfg.SlotConfig{
			{Text: "one", Speed: intp(2), Mode: "laser", Blink: true},
			{Text: "two", Mode: "3", Ants: true},
		},
	}

	msg, err := BuildMessage(b, time.Now())
	if err != nil {
		t.Fatalf("BuildMessage err=%v", err)
	}
	if msg.Brightness != 75 || !msg.Stamp.IsZero() {
		t.Fatalf("unexpected message attributes: %+v", msg)
	}
	if len(msg.Slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(msg.Slots))
	}

	s0, s1 := msg.Slots[0], msg.Slots[1]
	if s0.Speed != 2 || s0.Mode != header.Laser || !s0.Blink || s0.Ants {
		t.Fatalf("slot 1: %+v", s0)
	}
	if s1.Speed != cfg.DefaultSpeed || s1.Mode != header.Mode(3) || s1.Blink || !s1.Ants {
		t.Fatalf("slot 2: %+v", s1)
	}
}

func TestBuildMessage_StampTime(t *testing.T) {
	now := time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)
	b := cfg.BadgeConfig{
		StampTime: true,
		Slots:     []cfg.SlotConfig{{Text: "x", Mode: "still"}},
	}

	msg, err := BuildMessage(b, now)
	if err != nil {
		t.Fatal(err)
	}
	if !msg.Stamp.Equal(now) {
		t.Fatalf("expected stamp %v, got %v", now, msg.Stamp)
	}
}

func TestBuildMessage_BadMode(t *testing.T) {
	b := cfg.BadgeConfig{Slots: []cfg.SlotConfig{{Text: "x", Mode: "spin"}}}

	if _, err := BuildMessage(b, time.Now()); !errors.Is(err, header.ErrInvalidMode) {
		t.Fatalf("expected ErrInvalidMode, got %v", err)
	}
}

func TestRenderOptions(t *testing.T) {
	opts := RenderOptions(cfg.RenderConfig{
		MaxChars:     20,
		Overflow:     cfg.OverflowReject,
		UnknownGlyph: cfg.UnknownBlank,
		CacheSize:    4,
	}, nil)

	if opts.MaxChars != 20 || opts.CacheSize != 4 {
		t.Fatalf("unexpected options %+v", opts)
	}
	if opts.Overflow != render.Reject || opts.Unknown != render.Blank {
		t.Fatalf("policies not mapped: %+v", opts)
	}

	def := RenderOptions(cfg.RenderConfig{
		Overflow:     cfg.OverflowTruncate,
		UnknownGlyph: cfg.UnknownFail,
	}, nil)
	if def.Overflow != render.Truncate || def.Unknown != render.Fail {
		t.Fatalf("defaults not mapped: %+v", def)
	}
}

func writeIcon(t *testing.T, dir, name string) {
	t.Helper()

	img := image.NewGray(image.Rect(0, 0, 8, glyph.Rows))
	for y := 0; y < glyph.Rows; y++ {
		img.SetGray(0, y, color.Gray{Y: 0xFF})
	}

	f, err := os.Create(filepath.Join(dir, name+".png"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestBuild_WithIconDir(t *testing.T) {
	dir := t.TempDir()
	writeIcon(t, dir, "bar")

	b := cfg.BadgeConfig{
		Render: cfg.RenderConfig{IconsDir: dir},
		Slots:  []cfg.SlotConfig{{Text: ":bar:", Speed: intp(1), Mode: "still"}},
	}

	ct := &captureTransport{}
	p, table, err := Build(b, ct, nil)
	if err != nil {
		t.Fatalf("Build err=%v", err)
	}

	if _, ok := table.Icon("bar"); !ok {
		t.Fatalf("custom icon not registered")
	}
	if _, ok := table.Icon("heart"); !ok {
		t.Fatalf("built-in icons must remain")
	}
	if err := table.AddIcon("late", glyph.NewBitmap(1)); !errors.Is(err, glyph.ErrFrozen) {
		t.Fatalf("table must be frozen, got %v", err)
	}

	msg, err := BuildMessage(b, time.Time{})
	if err != nil {
		t.Fatal(err)
	}
	buf, err := p.Build(msg)
	if err != nil {
		t.Fatalf("Build message err=%v", err)
	}

	want := bytes.Repeat([]byte{0x80}, glyph.Rows)
	if !bytes.Equal(buf[header.Size:], want) {
		t.Fatalf("payload % x, want % x", buf[header.Size:], want)
	}
}

func TestBuild_MissingIconDir(t *testing.T) {
	b := cfg.BadgeConfig{
		Render: cfg.RenderConfig{IconsDir: filepath.Join(t.TempDir(), "missing")},
	}

	if _, _, err := Build(b, &captureTransport{}, nil); err == nil {
		t.Fatalf("expected error for missing icons_dir")
	}
}

func TestBuildHID_Defaults(t *testing.T) {
	if BuildHID(cfg.DeviceConfig{}, nil) == nil {
		t.Fatalf("expected transport")
	}
}

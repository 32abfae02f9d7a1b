// internal/badge/builder.go
package badge

import (
	"fmt"
	"time"

	cfg "github.com/tamzrod/led-badge/internal/config"
	"github.com/tamzrod/led-badge/internal/glyph"
	"github.com/tamzrod/led-badge/internal/header"
	"github.com/tamzrod/led-badge/internal/log"
	"github.com/tamzrod/led-badge/internal/render"
	"github.com/tamzrod/led-badge/internal/transport"
)

// BuildMessage converts the badge config into a Message.
// Assumes config has already passed Validate and Normalize.
// now is stamped into the header only when stamp_time is set.
func BuildMessage(b cfg.BadgeConfig, now time.Time) (Message, error) {
	msg := Message{Brightness: b.Brightness}
	if b.StampTime {
		msg.Stamp = now
	}

	for i, s := range b.Slots {
		name := s.Mode
		if name == "" {
			name = cfg.DefaultMode
		}
		mode, err := header.ParseMode(name)
		if err != nil {
			return Message{}, fmt.Errorf("badge: slot %d: %w", i+1, err)
		}

		speed := cfg.DefaultSpeed
		if s.Speed != nil {
			speed = *s.Speed
		}

		msg.Slots = append(msg.Slots, Slot{
			Text:  s.Text,
			Speed: speed,
			Mode:  mode,
			Blink: s.Blink,
			Ants:  s.Ants,
		})
	}

	return msg, nil
}

// BuildTable returns the frozen glyph table: built-in font and icons plus
// every PNG in icons_dir.
func BuildTable(r cfg.RenderConfig, lg *log.Logger) (*glyph.Registry, error) {
	reg, err := glyph.NewDefault()
	if err != nil {
		return nil, err
	}

	if r.IconsDir != "" {
		names, err := reg.LoadIconDir(r.IconsDir)
		if err != nil {
			return nil, err
		}
		lg.Info("icons loaded", "dir", r.IconsDir, "count", len(names))
	}

	reg.Freeze()
	return reg, nil
}

// RenderOptions maps the render section onto renderer options.
func RenderOptions(r cfg.RenderConfig, lg *log.Logger) render.Options {
	opts := render.Options{
		MaxChars:  r.MaxChars,
		CacheSize: r.CacheSize,
		Logger:    lg,
	}
	if r.Overflow == cfg.OverflowReject {
		opts.Overflow = render.Reject
	}
	if r.UnknownGlyph == cfg.UnknownBlank {
		opts.Unknown = render.Blank
	}
	return opts
}

// BuildHID constructs the USB transport for the configured device.
func BuildHID(d cfg.DeviceConfig, lg *log.Logger) *transport.HID {
	return transport.NewHID(transport.HIDConfig{
		VendorID:  d.VendorID,
		ProductID: d.ProductID,
		Logger:    lg,
	})
}

// Build wires table, renderer and the given transport into a Pipeline.
// The table is returned so callers can list icons.
func Build(b cfg.BadgeConfig, t transport.Transport, lg *log.Logger) (*Pipeline, *glyph.Registry, error) {
	table, err := BuildTable(b.Render, lg)
	if err != nil {
		return nil, nil, err
	}

	r, err := render.New(table, RenderOptions(b.Render, lg))
	if err != nil {
		return nil, nil, err
	}

	p, err := New(r, t, lg)
	if err != nil {
		return nil, nil, err
	}

	return p, table, nil
}

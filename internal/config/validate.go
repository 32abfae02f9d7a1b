// internal/config/validate.go
package config

import (
	"fmt"

	"github.com/tamzrod/led-badge/internal/header"
	"github.com/tamzrod/led-badge/internal/log"
	"github.com/tamzrod/led-badge/internal/render"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	b := cfg.Badge

	// ------------------------------------------------------------
	// SLOTS
	// ------------------------------------------------------------

	if len(b.Slots) == 0 {
		return fmt.Errorf("badge: at least one slot is required")
	}
	if len(b.Slots) > header.MaxSlots {
		return fmt.Errorf("badge: %d slots defined, the badge stores at most %d", len(b.Slots), header.MaxSlots)
	}

	for i, s := range b.Slots {
		if s.Speed != nil && (*s.Speed < header.MinSpeed || *s.Speed > header.MaxSpeed) {
			return fmt.Errorf(
				"slot %d: speed %d out of range %d..%d",
				i+1,
				*s.Speed,
				header.MinSpeed,
				header.MaxSpeed,
			)
		}

		if s.Mode != "" {
			if _, err := header.ParseMode(s.Mode); err != nil {
				return fmt.Errorf("slot %d: %w", i+1, err)
			}
		}
	}

	// ------------------------------------------------------------
	// DISPLAY
	// ------------------------------------------------------------

	switch b.Brightness {
	case 0, 25, 50, 75, 100:
	default:
		return fmt.Errorf("badge: brightness %d must be 25, 50, 75 or 100", b.Brightness)
	}

	// ------------------------------------------------------------
	// RENDER POLICY
	// ------------------------------------------------------------

	r := b.Render
	if r.MaxChars < 0 || r.MaxChars > render.DefaultMaxChars {
		return fmt.Errorf("render: max_chars %d must be within 0..%d", r.MaxChars, render.DefaultMaxChars)
	}
	if r.CacheSize < 0 {
		return fmt.Errorf("render: cache_size must be >= 0")
	}
	switch r.Overflow {
	case "", OverflowTruncate, OverflowReject:
	default:
		return fmt.Errorf("render: overflow %q must be %q or %q", r.Overflow, OverflowTruncate, OverflowReject)
	}
	switch r.UnknownGlyph {
	case "", UnknownFail, UnknownBlank:
	default:
		return fmt.Errorf("render: unknown_glyph %q must be %q or %q", r.UnknownGlyph, UnknownFail, UnknownBlank)
	}

	// ------------------------------------------------------------
	// LOG
	// ------------------------------------------------------------

	if _, err := log.ParseLevel(b.Log.Level); err != nil {
		return err
	}

	return nil
}

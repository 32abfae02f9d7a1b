// internal/config/normalize.go
package config

import "github.com/tamzrod/led-badge/internal/transport"

// Policy values accepted in the render section.
const (
	OverflowTruncate = "truncate"
	OverflowReject   = "reject"

	UnknownFail  = "fail"
	UnknownBlank = "blank"
)

// DefaultSpeed is used for slots that do not set one.
const DefaultSpeed = 4

// DefaultMode is used for slots that do not set one.
const DefaultMode = "scroll-left"

// Normalize applies post-validation defaults.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	b := &cfg.Badge

	if b.Device.VendorID == 0 {
		b.Device.VendorID = transport.DefaultVendorID
	}
	if b.Device.ProductID == 0 {
		b.Device.ProductID = transport.DefaultProductID
	}

	if b.Render.Overflow == "" {
		b.Render.Overflow = OverflowTruncate
	}
	if b.Render.UnknownGlyph == "" {
		b.Render.UnknownGlyph = UnknownFail
	}
	if b.Log.Level == "" {
		b.Log.Level = "info"
	}

	for i := range b.Slots {
		s := &b.Slots[i]

		if s.Speed == nil {
			v := DefaultSpeed
			s.Speed = &v
		}
		if s.Mode == "" {
			s.Mode = DefaultMode
		}

		// Text is left untouched: the renderer owns the length cap.
	}
}

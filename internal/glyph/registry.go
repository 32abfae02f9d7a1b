// internal/glyph/registry.go
package glyph

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	ErrUnknownGlyph = errors.New("glyph: unknown glyph")
	ErrFrozen       = errors.New("glyph: registry is frozen")
	ErrIconSize     = errors.New("glyph: bad icon size")
)

// Table is the read-only lookup contract used by renderers.
type Table interface {
	// Glyph returns the bitmap for one character.
	Glyph(r rune) (Bitmap, error)
	// Icon returns the bitmap registered under name.
	Icon(name string) (Bitmap, bool)
	// IconNames lists all icon names, sorted.
	IconNames() []string
}

// Registry maps runes and icon names to bitmaps.
//
// It is built once (AddGlyph, AddIcon, LoadIconDir), then frozen.
// After Freeze it never changes and is safe for concurrent lookups.
type Registry struct {
	mu     sync.RWMutex
	frozen bool
	glyphs map[rune]Bitmap
	icons  map[string]Bitmap
}

func NewRegistry() *Registry {
	return &Registry{
		glyphs: make(map[rune]Bitmap),
		icons:  make(map[string]Bitmap),
	}
}

// AddGlyph registers the bitmap for r. The bitmap is copied.
func (r *Registry) AddGlyph(ch rune, b Bitmap) error {
	if !b.Valid() || b.Cols == 0 {
		return fmt.Errorf("%w: glyph %q has %d columns / %d bytes", ErrIconSize, ch, b.Cols, len(b.Data))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return ErrFrozen
	}
	r.glyphs[ch] = b.Clone()
	return nil
}

// AddIcon registers (or replaces) the icon called name. The bitmap is copied.
func (r *Registry) AddIcon(name string, b Bitmap) error {
	if name == "" {
		return errors.New("glyph: icon name required")
	}
	for i := 0; i < len(name); i++ {
		if name[i] == ':' {
			return fmt.Errorf("glyph: icon name %q must not contain ':'", name)
		}
	}
	if !b.Valid() || b.Cols == 0 {
		return fmt.Errorf("%w: icon %q has %d columns / %d bytes", ErrIconSize, name, b.Cols, len(b.Data))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return ErrFrozen
	}
	r.icons[name] = b.Clone()
	return nil
}

// Freeze makes the registry read-only.
func (r *Registry) Freeze() {
	r.mu.Lock()
	r.frozen = true
	r.mu.Unlock()
}

func (r *Registry) Glyph(ch rune) (Bitmap, error) {
	r.mu.RLock()
	b, ok := r.glyphs[ch]
	r.mu.RUnlock()

	if !ok {
		return Bitmap{}, fmt.Errorf("%w: %q (U+%04X)", ErrUnknownGlyph, ch, ch)
	}
	return b, nil
}

func (r *Registry) Icon(name string) (Bitmap, bool) {
	r.mu.RLock()
	b, ok := r.icons[name]
	r.mu.RUnlock()
	return b, ok
}

func (r *Registry) IconNames() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.icons))
	for n := range r.icons {
		names = append(names, n)
	}
	r.mu.RUnlock()

	sort.Strings(names)
	return names
}

// ---- built-in set ----

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// NewDefault returns an unfrozen registry holding the built-in font and
// icons, so callers can add their own icons before freezing it.
func NewDefault() (*Registry, error) {
	reg := NewRegistry()

	for ch, rows := range font {
		b := NewBitmap(1)
		copy(b.Data, rows[:])
		if err := reg.AddGlyph(ch, b); err != nil {
			return nil, err
		}
	}

	for name, art := range iconArt {
		b, err := FromRows(art)
		if err != nil {
			return nil, fmt.Errorf("glyph: built-in icon %q: %w", name, err)
		}
		if err := reg.AddIcon(name, b); err != nil {
			return nil, err
		}
	}

	return reg, nil
}

// Default returns the frozen, process-wide built-in registry.
func Default() *Registry {
	defaultOnce.Do(func() {
		reg, err := NewDefault()
		if err != nil {
			panic(err)
		}
		reg.Freeze()
		defaultReg = reg
	})
	return defaultReg
}

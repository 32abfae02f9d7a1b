// internal/render/render.go
package render

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/text/unicode/norm"

	"github.com/tamzrod/led-badge/internal/glyph"
	"github.com/tamzrod/led-badge/internal/log"
)

// DefaultMaxChars bounds the text of one slot, in code points.
const DefaultMaxChars = 750

var ErrTextTooLong = errors.New("render: text exceeds per-slot limit")

// Overflow selects what happens to text longer than MaxChars.
type Overflow int

const (
	Truncate Overflow = iota
	Reject
)

// UnknownPolicy selects what happens to characters missing from the table.
type UnknownPolicy int

const (
	// Fail aborts the render with glyph.ErrUnknownGlyph.
	Fail UnknownPolicy = iota
	// Blank substitutes one unlit column.
	Blank
)

// Renderer turns slot text into a bitmap and its column count.
type Renderer interface {
	Render(text string) (glyph.Bitmap, int, error)
}

type Options struct {
	MaxChars  int // 0 means DefaultMaxChars
	Overflow  Overflow
	Unknown   UnknownPolicy
	CacheSize int // 0 disables memoization
	Logger    *log.Logger
}

// TextRenderer resolves text and :icon: tokens through a glyph table.
// Safe for concurrent use.
type TextRenderer struct {
	table glyph.Table
	opts  Options
	cache *lru.Cache[string, glyph.Bitmap]
}

func New(table glyph.Table, opts Options) (*TextRenderer, error) {
	if table == nil {
		return nil, errors.New("render: glyph table required")
	}
	if opts.MaxChars <= 0 {
		opts.MaxChars = DefaultMaxChars
	}

	r := &TextRenderer{table: table, opts: opts}

	if opts.CacheSize > 0 {
		c, err := lru.New[string, glyph.Bitmap](opts.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("render: cache: %w", err)
		}
		r.cache = c
	}

	return r, nil
}

// Render scans text left to right. A ":name:" whose name is a registered
// icon emits that icon; every other code point, including a ':' that does
// not open a known icon, emits its own glyph.
func (r *TextRenderer) Render(text string) (glyph.Bitmap, int, error) {
	text, err := r.limit(norm.NFC.String(text))
	if err != nil {
		return glyph.Bitmap{}, 0, err
	}

	if r.cache != nil {
		if b, ok := r.cache.Get(text); ok {
			return b.Clone(), b.Cols, nil
		}
	}

	var parts []glyph.Bitmap
	for i := 0; i < len(text); {
		if text[i] == ':' {
			if name, ok := iconToken(text[i:]); ok {
				if icon, ok := r.table.Icon(name); ok {
					parts = append(parts, icon)
					i += len(name) + 2
					continue
				}
			}
		}

		ch, size := utf8.DecodeRuneInString(text[i:])
		b, err := r.glyph(ch)
		if err != nil {
			return glyph.Bitmap{}, 0, err
		}
		parts = append(parts, b)
		i += size
	}

	out := glyph.Concat(parts...)
	if r.cache != nil {
		r.cache.Add(text, out.Clone())
	}
	return out, out.Cols, nil
}

func (r *TextRenderer) limit(text string) (string, error) {
	n := utf8.RuneCountInString(text)
	if n <= r.opts.MaxChars {
		return text, nil
	}

	if r.opts.Overflow == Reject {
		return "", fmt.Errorf("%w: %d > %d characters", ErrTextTooLong, n, r.opts.MaxChars)
	}

	cut, count := 0, 0
	for cut = range text {
		if count == r.opts.MaxChars {
			break
		}
		count++
	}
	r.opts.Logger.Debug("slot text truncated", "chars", n, "max", r.opts.MaxChars)
	return text[:cut], nil
}

func (r *TextRenderer) glyph(ch rune) (glyph.Bitmap, error) {
	// The badge shows a single line.
	switch ch {
	case '\n', '\r', '\t':
		ch = ' '
	}

	b, err := r.table.Glyph(ch)
	if err == nil {
		return b, nil
	}
	if r.opts.Unknown == Blank && errors.Is(err, glyph.ErrUnknownGlyph) {
		r.opts.Logger.Warn("no glyph, substituting blank", "char", string(ch))
		return glyph.NewBitmap(1), nil
	}
	return glyph.Bitmap{}, err
}

// iconToken returns the name enclosed by the leading ':' of s and the
// next ':'. Names are non-empty and colon-free.
func iconToken(s string) (string, bool) {
	end := strings.IndexByte(s[1:], ':')
	if end <= 0 {
		return "", false
	}
	return s[1 : 1+end], true
}

// internal/glyph/png.go
package glyph

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FromImage converts an image Rows pixels high into a bitmap.
// A pixel is lit when it is mostly opaque and brighter than mid grey.
func FromImage(img image.Image) (Bitmap, error) {
	bounds := img.Bounds()
	if bounds.Dy() != Rows {
		return Bitmap{}, fmt.Errorf("%w: image is %d pixels high, want %d", ErrIconSize, bounds.Dy(), Rows)
	}
	if bounds.Dx() == 0 {
		return Bitmap{}, fmt.Errorf("%w: image has no width", ErrIconSize)
	}

	b := NewBitmap((bounds.Dx() + ColumnPixels - 1) / ColumnPixels)
	for y := 0; y < Rows; y++ {
		for x := 0; x < bounds.Dx(); x++ {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			if _, _, _, a := c.RGBA(); a < 0x8000 {
				continue
			}
			if color.GrayModel.Convert(c).(color.Gray).Y >= 0x80 {
				b.set(x, y)
			}
		}
	}
	return b, nil
}

// LoadIconDir registers every *.png in dir as an icon named after the file
// stem, replacing built-in icons of the same name. It returns the names
// loaded, sorted.
func (r *Registry) LoadIconDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("glyph: read icon dir: %w", err)
	}

	var loaded []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".png") {
			continue
		}

		name := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		b, err := loadPNG(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("glyph: icon %q: %w", name, err)
		}
		if err := r.AddIcon(name, b); err != nil {
			return nil, err
		}
		loaded = append(loaded, name)
	}

	sort.Strings(loaded)
	return loaded, nil
}

func loadPNG(path string) (Bitmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return Bitmap{}, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return Bitmap{}, err
	}
	return FromImage(img)
}

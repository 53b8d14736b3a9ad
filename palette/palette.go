// Package palette implements the indexed color space of layered images.
//
// A Palette holds 256 colors stored as 6-bit VGA channel values (0-63), the
// way the game data ships them. Blending operations convert two indices to
// RGB, mix them, and turn the result back into an index with NearestIndex.
package palette

import (
	"image/color"
	"sync"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"badc0de.net/pkg/go-icn/transform"
)

const (
	// Size is the number of colors in a palette.
	Size = 256
	// MaxValue is the largest 6-bit channel value.
	MaxValue = 63

	lookupSide = MaxValue + 1
)

// Palette is a 256 color table. The zero value is an all-black palette.
//
// The nearest color lookup is built on the first NearestIndex call (or by
// Prepare) and is safe for concurrent use afterwards.
type Palette struct {
	rgb [Size * 3]uint8

	once   sync.Once
	lookup []uint8
}

// New creates a palette from 768 bytes of 6-bit red, green and blue values.
func New(vga []byte) (*Palette, error) {
	if len(vga) != Size*3 {
		return nil, errors.Errorf("palette: got %d bytes, want %d", len(vga), Size*3)
	}
	p := &Palette{}
	for i, v := range vga {
		if v > MaxValue {
			return nil, errors.Errorf("palette: value %d at offset %d does not fit in 6 bits", v, i)
		}
		p.rgb[i] = v
	}
	return p, nil
}

// FromRGB creates a palette from 768 bytes of 8-bit red, green and blue
// values. The two lowest bits of every channel are dropped.
func FromRGB(rgb []byte) (*Palette, error) {
	if len(rgb) != Size*3 {
		return nil, errors.Errorf("palette: got %d bytes, want %d", len(rgb), Size*3)
	}
	p := &Palette{}
	for i, v := range rgb {
		p.rgb[i] = v >> 2
	}
	return p, nil
}

// FromColorPalette converts up to 256 colors into a palette. Missing entries
// are black.
func FromColorPalette(cp color.Palette) (*Palette, error) {
	if len(cp) > Size {
		return nil, errors.Errorf("palette: got %d colors, want at most %d", len(cp), Size)
	}
	p := &Palette{}
	for i, c := range cp {
		r, g, b, _ := c.RGBA()
		p.rgb[i*3] = uint8(r >> 10)
		p.rgb[i*3+1] = uint8(g >> 10)
		p.rgb[i*3+2] = uint8(b >> 10)
	}
	return p, nil
}

// RGB returns the 6-bit channel values of a palette entry.
func (p *Palette) RGB(id uint8) (r, g, b uint8) {
	i := int(id) * 3
	return p.rgb[i], p.rgb[i+1], p.rgb[i+2]
}

// Color returns a palette entry expanded to 8 bits per channel.
func (p *Palette) Color(id uint8) color.RGBA {
	r, g, b := p.RGB(id)
	return color.RGBA{R: expand(r), G: expand(g), B: expand(b), A: 0xFF}
}

// ColorPalette returns all entries as an image/color palette.
func (p *Palette) ColorPalette() color.Palette {
	cp := make(color.Palette, Size)
	for i := range cp {
		cp[i] = p.Color(uint8(i))
	}
	return cp
}

func expand(v uint8) uint8 {
	return v<<2 | v>>4
}

// Prepare builds the nearest color lookup now instead of on first use.
func (p *Palette) Prepare() {
	p.once.Do(p.buildLookup)
}

// NearestIndex returns the palette index closest to the given 6-bit color.
// Channels above 63 are masked.
func (p *Palette) NearestIndex(r, g, b uint8) uint8 {
	p.once.Do(p.buildLookup)
	return p.lookup[int(r&MaxValue)+int(g&MaxValue)*lookupSide+int(b&MaxValue)*lookupSide*lookupSide]
}

// ColorID returns the palette index closest to the given 8-bit color.
func (p *Palette) ColorID(r, g, b uint8) uint8 {
	return p.NearestIndex(r>>2, g>>2, b>>2)
}

func (p *Palette) buildLookup() {
	glog.V(1).Infof("palette: building %d entry nearest color lookup", lookupSide*lookupSide*lookupSide)

	p.lookup = make([]uint8, lookupSide*lookupSide*lookupSide)
	noCycle := transform.Row(transform.NoCycle)

	for id := range p.lookup {
		r := int32(id % lookupSide)
		g := int32(id / lookupSide % lookupSide)
		b := int32(id / (lookupSide * lookupSide))

		minDistance := int32(-1)
		var best uint8
		for _, candidate := range noCycle {
			d := distance(p, candidate, r, g, b)
			if minDistance < 0 || d < minDistance {
				minDistance = d
				best = candidate
				if d == 0 {
					break
				}
			}
		}
		p.lookup[id] = best
	}
}

// distance is a redmean weighted squared distance between a palette entry
// and a 6-bit color.
func distance(p *Palette, id uint8, r, g, b int32) int32 {
	i := int(id) * 3
	pr, pg, pb := int32(p.rgb[i]), int32(p.rgb[i+1]), int32(p.rgb[i+2])
	dr, dg, db := pr-r, pg-g, pb-b
	sumRed := pr + r
	return (2*2*256+sumRed)*dr*dr + 4*2*256*dg*dg + (2*(2*256+255)-sumRed)*db*db
}

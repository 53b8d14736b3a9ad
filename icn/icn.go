package icn

// This file contains code directly related to decoding the
// ICN sprite stream.

import (
	"github.com/golang/glog"

	"badc0de.net/pkg/go-icn/layered"
	"badc0de.net/pkg/go-icn/transform"
)

const (
	opEndOfRow     = 0x00 // 00000000
	opEndOfImage   = 0x80 // 10000000
	opTransformRun = 0xC0 // 11000000
	opCountedRun   = 0xC1 // 11000001

	literalMax = 0x7F // 0x01-0x7F: that many literal colors follow
	skipMax    = 0xBF // 0x81-0xBF: skip (op - 0x80) pixels

	transformTypeMask = 0x3C // 00111100
	transformFlag     = 0x40 // 01000000
)

// transformType extracts the transform code of a 0xC0 operand.
func transformType(v byte) uint8 {
	return uint8((uint32(v&transformTypeMask)<<6)/256 + 2)
}

// transformCount extracts the inline pixel count of a 0xC0 operand. Zero
// means the count is stored in the following byte.
func transformCount(v byte) int {
	return int(v % 4)
}

// hasTransform reports whether a 0xC0 operand writes its transform code
// rather than just skipping pixels.
func hasTransform(v byte) bool {
	return v&transformFlag != 0
}

// Stats describes a decoded stream.
type Stats struct {
	Opcodes    int
	Written    int  // pixels written inside the sprite
	Dropped    int  // pixels which fell outside the sprite
	Terminated bool // stream ended with the end-of-image opcode
}

// Decode decodes an ICN sprite stream into a new sprite of the given size,
// anchored at (offsetX, offsetY).
func Decode(data []byte, width, height, offsetX, offsetY int) *layered.Sprite {
	s, _ := DecodeWithStats(data, width, height, offsetX, offsetY)
	return s
}

// DecodeWithStats is Decode, also returning statistics about the stream.
func DecodeWithStats(data []byte, width, height, offsetX, offsetY int) (*layered.Sprite, Stats) {
	d := decoder{
		data:   data,
		sprite: layered.NewSprite(width, height, offsetX, offsetY),
	}
	d.sprite.Reset()
	d.decode()

	glog.V(2).Infof("icn: decoded %dx%d sprite from %d bytes: %+v", width, height, len(data), d.stats)
	return d.sprite, d.stats
}

type decoder struct {
	data   []byte
	pos    int
	sprite *layered.Sprite

	y    int
	posX int

	stats Stats
}

// next returns the next byte of the stream.
func (d *decoder) next() (byte, bool) {
	if d.pos >= len(d.data) {
		return 0, false
	}
	b := d.data[d.pos]
	d.pos++
	return b, true
}

func (d *decoder) inside() bool {
	return d.y < d.sprite.Height() && d.posX < d.sprite.Width()
}

// put writes one opaque pixel at the cursor and advances it.
func (d *decoder) put(colorID byte) {
	if d.inside() {
		i := d.y*d.sprite.Width() + d.posX
		d.sprite.ColorPlane()[i] = colorID
		d.sprite.TransformPlane()[i] = transform.Opaque
		d.stats.Written++
	} else {
		d.stats.Dropped++
	}
	d.posX++
}

// putTransform writes one transform code at the cursor, leaving the color
// alone, and advances it.
func (d *decoder) putTransform(code uint8) {
	if d.inside() {
		d.sprite.TransformPlane()[d.y*d.sprite.Width()+d.posX] = code
		d.stats.Written++
	} else {
		d.stats.Dropped++
	}
	d.posX++
}

func (d *decoder) decode() {
	for {
		op, ok := d.next()
		if !ok {
			return
		}
		d.stats.Opcodes++

		switch {
		case op == opEndOfRow:
			d.y++
			d.posX = 0

		case op <= literalMax:
			for c := int(op); c > 0; c-- {
				colorID, ok := d.next()
				if !ok {
					return
				}
				d.put(colorID)
			}

		case op == opEndOfImage:
			d.stats.Terminated = true
			return

		case op <= skipMax:
			d.posX += int(op - opEndOfImage)

		case op == opTransformRun:
			v, ok := d.next()
			if !ok {
				return
			}
			code := transformType(v)
			count := transformCount(v)
			if count == 0 {
				b, ok := d.next()
				if !ok {
					return
				}
				count = int(b)
			}
			if hasTransform(v) && code < transform.Count {
				for ; count > 0; count-- {
					d.putTransform(code)
				}
			} else {
				d.posX += count
			}

		case op == opCountedRun:
			count, ok := d.next()
			if !ok {
				return
			}
			colorID, ok := d.next()
			if !ok {
				return
			}
			for c := int(count); c > 0; c-- {
				d.put(colorID)
			}

		default: // 0xC2-0xFF
			colorID, ok := d.next()
			if !ok {
				return
			}
			for c := int(op - opTransformRun); c > 0; c-- {
				d.put(colorID)
			}
		}
	}
}

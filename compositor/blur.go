package compositor

import (
	"badc0de.net/pkg/go-icn/layered"
	"badc0de.net/pkg/go-icn/palette"
	"badc0de.net/pkg/go-icn/transform"
)

// CreateBlurredImage returns a box blurred copy of in. Every opaque pixel
// becomes the average of the opaque pixels within radius of it, mapped back
// to the palette. Other pixels are copied as they are.
func CreateBlurredImage(pal *palette.Palette, in *layered.Image, radius int) *layered.Image {
	out := in.Clone()
	if radius <= 0 || in.Empty() {
		return out
	}

	w, h := in.Width(), in.Height()
	c, t := in.ColorPlane(), transformPlane(in)
	outC := out.ColorPlane()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if t != nil && t[y*w+x] != transform.Opaque {
				continue
			}

			var r, g, b, n int
			for sy := max(0, y-radius); sy <= min(h-1, y+radius); sy++ {
				for sx := max(0, x-radius); sx <= min(w-1, x+radius); sx++ {
					i := sy*w + sx
					if t != nil && t[i] != transform.Opaque {
						continue
					}
					cr, cg, cb := pal.RGB(c[i])
					r, g, b, n = r+int(cr), g+int(cg), b+int(cb), n+1
				}
			}
			outC[y*w+x] = pal.NearestIndex(uint8((r+n/2)/n), uint8((g+n/2)/n), uint8((b+n/2)/n))
		}
	}
	return out
}

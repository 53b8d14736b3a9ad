package compositor

import (
	"github.com/golang/glog"

	"badc0de.net/pkg/go-icn/layered"
	"badc0de.net/pkg/go-icn/palette"
	"badc0de.net/pkg/go-icn/transform"
)

// Resize scales in to the current size of out. See ResizeRegion.
func Resize(pal *palette.Palette, in, out *layered.Image, subpixel bool) {
	if out.Empty() {
		glog.Warningf("compositor: Resize: destination has no size")
		return
	}
	ResizeRegion(pal, in, layered.Full(in), out, layered.Full(out), subpixel)
}

// ResizeRegion scales the region inR of in into the region outR of out. The
// regions are clipped against their own images independently.
//
// Pixels are picked with nearest neighbor sampling and drawn the way
// BlitRegion draws them. With subpixel set, pixels surrounded by opaque
// source pixels are interpolated in RGB and mapped back to the palette
// instead, which is a lot slower.
func ResizeRegion(pal *palette.Palette, in *layered.Image, inR layered.Region, out *layered.Image, outR layered.Region, subpixel bool) {
	inR, outR, ok := layered.ClipRegions(in, inR, out, outR)
	if !ok {
		return
	}
	if subpixel && pal == nil {
		glog.Warningf("compositor: ResizeRegion: subpixel resizing needs a palette")
		subpixel = false
	}

	inW, outW := in.Width(), out.Width()
	inC, outC := in.ColorPlane(), out.ColorPlane()
	inT, outT := transformPlane(in), transformPlane(out)

	code := func(i int) uint8 {
		if inT == nil {
			return transform.Opaque
		}
		return inT[i]
	}

	for oy := 0; oy < outR.Height; oy++ {
		o := (outR.Y+oy)*outW + outR.X
		for ox := 0; ox < outR.Width; ox, o = ox+1, o+1 {
			if subpixel {
				if c, ok := interpolate(pal, in, inR, outR, ox, oy); ok {
					compose(outC, outT, o, c, transform.Opaque)
					continue
				}
			}
			sx := inR.X + ox*inR.Width/outR.Width
			sy := inR.Y + oy*inR.Height/outR.Height
			i := sy*inW + sx
			compose(outC, outT, o, inC[i], code(i))
		}
	}
}

// interpolate returns the bilinear interpolation of the four source pixels
// around the center of output pixel (ox, oy). It fails if any of them is not
// opaque.
func interpolate(pal *palette.Palette, in *layered.Image, inR, outR layered.Region, ox, oy int) (uint8, bool) {
	fx, x0, x1 := samplePosition(ox, inR.Width, outR.Width)
	fy, y0, y1 := samplePosition(oy, inR.Height, outR.Height)
	x0, x1 = x0+inR.X, x1+inR.X
	y0, y1 = y0+inR.Y, y1+inR.Y

	w := in.Width()
	corners := [4]int{y0*w + x0, y0*w + x1, y1*w + x0, y1*w + x1}
	if !in.SingleLayer() {
		t := in.TransformPlane()
		for _, i := range corners {
			if t[i] != transform.Opaque {
				return 0, false
			}
		}
	}

	weights := [4]float64{(1 - fx) * (1 - fy), fx * (1 - fy), (1 - fx) * fy, fx * fy}
	var r, g, b float64
	c := in.ColorPlane()
	for n, i := range corners {
		cr, cg, cb := pal.RGB(c[i])
		r += weights[n] * float64(cr)
		g += weights[n] * float64(cg)
		b += weights[n] * float64(cb)
	}
	return pal.NearestIndex(uint8(r+0.5), uint8(g+0.5), uint8(b+0.5)), true
}

// samplePosition maps the center of output pixel o onto the source axis. It
// returns the two source pixels around it and the fraction between them.
func samplePosition(o, inSize, outSize int) (frac float64, p0, p1 int) {
	pos := (float64(o)+0.5)*float64(inSize)/float64(outSize) - 0.5
	if pos < 0 {
		pos = 0
	}
	p0 = int(pos)
	if p0 >= inSize-1 {
		return 0, inSize - 1, inSize - 1
	}
	return pos - float64(p0), p0, p0 + 1
}

package compositor

import (
	"badc0de.net/pkg/go-icn/layered"
	"badc0de.net/pkg/go-icn/palette"
	"badc0de.net/pkg/go-icn/transform"
)

// Blit draws in onto out, with the top left corners lined up.
func Blit(in, out *layered.Image, flip bool) {
	BlitRegion(in, 0, 0, out, 0, 0, in.Width(), in.Height(), flip)
}

// BlitAt draws in onto out with its top left corner at (outX, outY).
func BlitAt(in, out *layered.Image, outX, outY int, flip bool) {
	BlitRegion(in, 0, 0, out, outX, outY, in.Width(), in.Height(), flip)
}

// BlitRegion draws a region of in onto out.
//
// Opaque source pixels replace the destination. Transparent ones leave it
// alone. Any other transform code recolors the destination pixel using the
// matching transform table row, or is stored in the transform plane of out
// if the destination pixel is itself transparent.
//
// With flip set, in is mirrored horizontally before the region is taken
// from it.
func BlitRegion(in *layered.Image, inX, inY int, out *layered.Image, outX, outY, width, height int, flip bool) {
	t, ok := layered.ClipTransfer(in, out, layered.Transfer{InX: inX, InY: inY, OutX: outX, OutY: outY, Width: width, Height: height})
	if !ok {
		return
	}

	inW, outW := in.Width(), out.Width()
	inC, outC := in.ColorPlane(), out.ColorPlane()
	inT, outT := in.TransformPlane(), transformPlane(out)

	for y := 0; y < t.Height; y++ {
		row := (t.InY + y) * inW
		o := (t.OutY+y)*outW + t.OutX
		for x := 0; x < t.Width; x++ {
			i := row + sourceX(inW, t.InX+x, flip)
			code := uint8(transform.Opaque)
			if !in.SingleLayer() {
				code = inT[i]
			}
			compose(outC, outT, o+x, inC[i], code)
		}
	}
}

func sourceX(width, x int, flip bool) int {
	if flip {
		return width - 1 - x
	}
	return x
}

// AlphaBlit draws in onto out, with the top left corners lined up, mixing
// source and destination colors. See AlphaBlitRegion.
func AlphaBlit(pal *palette.Palette, in, out *layered.Image, alpha uint8, flip bool) {
	AlphaBlitRegion(pal, in, 0, 0, out, 0, 0, in.Width(), in.Height(), alpha, flip)
}

// AlphaBlitAt draws in onto out at (outX, outY), mixing source and
// destination colors. See AlphaBlitRegion.
func AlphaBlitAt(pal *palette.Palette, in, out *layered.Image, outX, outY int, alpha uint8, flip bool) {
	AlphaBlitRegion(pal, in, 0, 0, out, outX, outY, in.Width(), in.Height(), alpha, flip)
}

// AlphaBlitRegion is BlitRegion with translucency: the color a pixel would
// get from BlitRegion is mixed with the current destination color, weighted
// by alpha/255, and mapped back to the nearest palette entry.
//
// The destination colors are always mixed in, so pixels of out should not be
// transparent. An alpha of 0 draws nothing, an alpha of 255 is a plain blit.
func AlphaBlitRegion(pal *palette.Palette, in *layered.Image, inX, inY int, out *layered.Image, outX, outY, width, height int, alpha uint8, flip bool) {
	switch alpha {
	case 0:
		return
	case 255:
		BlitRegion(in, inX, inY, out, outX, outY, width, height, flip)
		return
	}

	t, ok := layered.ClipTransfer(in, out, layered.Transfer{InX: inX, InY: inY, OutX: outX, OutY: outY, Width: width, Height: height})
	if !ok {
		return
	}

	inW, outW := in.Width(), out.Width()
	inC, outC := in.ColorPlane(), out.ColorPlane()
	inT, outT := in.TransformPlane(), transformPlane(out)

	for y := 0; y < t.Height; y++ {
		row := (t.InY + y) * inW
		o := (t.OutY+y)*outW + t.OutX
		for x := 0; x < t.Width; x++ {
			i := row + sourceX(inW, t.InX+x, flip)

			var src uint8
			code := uint8(transform.Opaque)
			if !in.SingleLayer() {
				code = inT[i]
			}
			switch {
			case code == transform.Opaque:
				src = inC[i]
			case transform.IsEffect(code):
				src = transform.Apply(code, outC[o+x])
			default:
				continue
			}

			outC[o+x] = mix(pal, src, outC[o+x], alpha)
			if outT != nil && code == transform.Opaque {
				outT[o+x] = transform.Opaque
			}
		}
	}
}

// mix blends two palette entries, giving src a weight of alpha/255.
func mix(pal *palette.Palette, src, dst uint8, alpha uint8) uint8 {
	sr, sg, sb := pal.RGB(src)
	dr, dg, db := pal.RGB(dst)
	a := uint32(alpha)
	blend := func(s, d uint8) uint8 {
		return uint8((uint32(s)*a + uint32(d)*(255-a)) / 255)
	}
	return pal.NearestIndex(blend(sr, dr), blend(sg, dg), blend(sb, db))
}

package compositor

import (
	"image"

	"github.com/golang/glog"

	"badc0de.net/pkg/go-icn/layered"
	"badc0de.net/pkg/go-icn/palette"
	"badc0de.net/pkg/go-icn/transform"
)

// ApplyPalette remaps the colors of img through a 256 entry table. Only
// opaque pixels are touched, unless img is single layer. The transform
// plane is left alone.
//
// Rows of the transform table make good remap tables, see transform.Row.
func ApplyPalette(img *layered.Image, remap []uint8) {
	ApplyPaletteRegion(img, 0, 0, img, 0, 0, img.Width(), img.Height(), remap)
}

// ApplyPaletteTo writes the colors of in, remapped through a 256 entry
// table, to out. Both images must have the same size.
func ApplyPaletteTo(in, out *layered.Image, remap []uint8) {
	if in.Width() != out.Width() || in.Height() != out.Height() {
		glog.Warningf("compositor: ApplyPaletteTo: size mismatch %dx%d vs %dx%d", in.Width(), in.Height(), out.Width(), out.Height())
		return
	}
	ApplyPaletteRegion(in, 0, 0, out, 0, 0, in.Width(), in.Height(), remap)
}

// ApplyPaletteRegion writes the colors of a region of in, remapped through
// a 256 entry table, to out. in and out may be the same image if the regions
// are the same.
func ApplyPaletteRegion(in *layered.Image, inX, inY int, out *layered.Image, outX, outY, width, height int, remap []uint8) {
	if !validRemap("ApplyPaletteRegion", remap) {
		return
	}
	t, ok := layered.ClipTransfer(in, out, layered.Transfer{InX: inX, InY: inY, OutX: outX, OutY: outY, Width: width, Height: height})
	if !ok {
		return
	}

	inW, outW := in.Width(), out.Width()
	inC, outC := in.ColorPlane(), out.ColorPlane()
	inT := transformPlane(in)

	for y := 0; y < t.Height; y++ {
		i := (t.InY+y)*inW + t.InX
		o := (t.OutY+y)*outW + t.OutX
		for x := 0; x < t.Width; x, i, o = x+1, i+1, o+1 {
			if inT == nil || inT[i] == transform.Opaque {
				outC[o] = remap[inC[i]]
			}
		}
	}
}

// ApplyTransform applies a transform table row to a region of img.
//
// Single layer images are recolored. In layered images opaque pixels are
// recolored and transparent pixels receive the transform code, so that the
// effect is applied to whatever img is drawn onto later.
func ApplyTransform(img *layered.Image, x, y, width, height int, code uint8) {
	if !validTransform("ApplyTransform", code) {
		return
	}
	r, ok := layered.ClipRegion(img, layered.Region{X: x, Y: y, Width: width, Height: height})
	if !ok {
		return
	}

	w := img.Width()
	c, t := img.ColorPlane(), transformPlane(img)
	for y := r.Y; y < r.Y+r.Height; y++ {
		for i := y*w + r.X; i < y*w+r.X+r.Width; i++ {
			switch {
			case t == nil || t[i] == transform.Opaque:
				c[i] = transform.Apply(code, c[i])
			case t[i] == transform.Skip:
				t[i] = code
			}
		}
	}
}

// ApplyAlpha darkens in to alpha/255 of its brightness and writes the
// result to out. Both images must have the same size.
func ApplyAlpha(pal *palette.Palette, in, out *layered.Image, alpha uint8) {
	if in.Width() != out.Width() || in.Height() != out.Height() {
		glog.Warningf("compositor: ApplyAlpha: size mismatch %dx%d vs %dx%d", in.Width(), in.Height(), out.Width(), out.Height())
		return
	}
	ApplyAlphaRegion(pal, in, 0, 0, out, 0, 0, in.Width(), in.Height(), alpha)
}

// ApplyAlphaRegion darkens the opaque pixels of a region of in to alpha/255
// of their brightness and writes them to out.
func ApplyAlphaRegion(pal *palette.Palette, in *layered.Image, inX, inY int, out *layered.Image, outX, outY, width, height int, alpha uint8) {
	t, ok := layered.ClipTransfer(in, out, layered.Transfer{InX: inX, InY: inY, OutX: outX, OutY: outY, Width: width, Height: height})
	if !ok {
		return
	}

	inW, outW := in.Width(), out.Width()
	inC, outC := in.ColorPlane(), out.ColorPlane()
	inT, outT := transformPlane(in), transformPlane(out)

	for y := 0; y < t.Height; y++ {
		i := (t.InY+y)*inW + t.InX
		o := (t.OutY+y)*outW + t.OutX
		for x := 0; x < t.Width; x, i, o = x+1, i+1, o+1 {
			if inT != nil && inT[i] != transform.Opaque {
				continue
			}
			r, g, b := pal.RGB(inC[i])
			outC[o] = pal.NearestIndex(scale(r, alpha), scale(g, alpha), scale(b, alpha))
			if outT != nil {
				outT[o] = transform.Opaque
			}
		}
	}
}

func scale(v, alpha uint8) uint8 {
	return uint8(uint32(v) * uint32(alpha) / 255)
}

// AddTransparency makes every opaque pixel of the given color transparent.
func AddTransparency(img *layered.Image, colorID uint8) {
	if img.SingleLayer() {
		glog.Warningf("compositor: AddTransparency: image has no transform layer")
		return
	}
	c, t := img.ColorPlane(), img.TransformPlane()
	for i := range c {
		if t[i] == transform.Opaque && c[i] == colorID {
			t[i] = transform.Skip
		}
	}
}

// ReplaceColorID replaces one color index with another in the whole color
// plane, regardless of the transform plane.
func ReplaceColorID(img *layered.Image, oldID, newID uint8) {
	if img.Empty() {
		return
	}
	c := img.ColorPlane()
	for i := range c {
		if c[i] == oldID {
			c[i] = newID
		}
	}
}

// ReplaceColorIDByTransformID turns every pixel of the given color into a
// pixel with the given transform code. Used for sprites which mark shadows
// with a reserved color instead of transform codes.
func ReplaceColorIDByTransformID(img *layered.Image, colorID, code uint8) {
	if code >= transform.Count {
		glog.Warningf("compositor: ReplaceColorIDByTransformID: transform code %d out of range", code)
		return
	}
	if img.SingleLayer() {
		glog.Warningf("compositor: ReplaceColorIDByTransformID: image has no transform layer")
		return
	}
	c, t := img.ColorPlane(), img.TransformPlane()
	for i := range c {
		if c[i] == colorID {
			t[i] = code
		}
	}
}

// ActiveROI returns the bounding box of the pixels of img which are opaque
// or carry a transform code of at least minTransform. With a minTransform of
// 6 this leaves out transparent pixels and shadows. An image without such
// pixels has an empty box.
func ActiveROI(img *layered.Image, minTransform uint8) image.Rectangle {
	if img.Empty() {
		return image.Rectangle{}
	}
	if img.SingleLayer() {
		return layered.Full(img).Rect()
	}

	w, h := img.Width(), img.Height()
	t := img.TransformPlane()
	roi := image.Rectangle{}
	found := false
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			code := t[y*w+x]
			if code != transform.Opaque && (code == transform.Skip || code < minTransform) {
				continue
			}
			p := image.Rect(x, y, x+1, y+1)
			if !found {
				roi, found = p, true
			} else {
				roi = roi.Union(p)
			}
		}
	}
	return roi
}

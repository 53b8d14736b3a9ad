package compositor

import (
	"github.com/golang/glog"

	"badc0de.net/pkg/go-icn/layered"
	"badc0de.net/pkg/go-icn/transform"
)

// Flip returns a mirrored copy of in. A single layer source gives an opaque
// copy, the way Copy does.
func Flip(in *layered.Image, horizontally, vertically bool) *layered.Image {
	out := layered.NewImage(in.Width(), in.Height())
	if out.Empty() {
		return out
	}

	w, h := in.Width(), in.Height()
	n := w * h
	src, dst := in.Data(), out.Data()
	for y := 0; y < h; y++ {
		sy := y
		if vertically {
			sy = h - 1 - y
		}
		for x := 0; x < w; x++ {
			sx := x
			if horizontally {
				sx = w - 1 - x
			}
			dst[y*w+x] = src[sy*w+sx]
			dst[n+y*w+x] = src[n+sy*w+sx]
		}
	}
	if in.SingleLayer() {
		fill(out.TransformPlane(), transform.Opaque)
	}
	return out
}

// Transpose writes in to out with rows and columns swapped. out is resized
// to the transposed size. As with Copy, single layer destinations only
// receive colors and a single layer source makes out opaque.
func Transpose(in, out *layered.Image) {
	if in == out {
		glog.Warningf("compositor: Transpose: cannot transpose in place")
		return
	}
	if in.Empty() {
		out.Clear()
		return
	}

	w, h := in.Width(), in.Height()
	out.Resize(h, w)
	n := w * h
	src, dst := in.Data(), out.Data()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst[x*h+y] = src[y*w+x]
			if !out.SingleLayer() {
				dst[n+x*h+y] = src[n+y*w+x]
			}
		}
	}
	if in.SingleLayer() && !out.SingleLayer() {
		fill(out.TransformPlane(), transform.Opaque)
	}
}

// Crop returns a copy of a region of img, anchored at the top left corner of
// the region. Regions outside of img give an empty sprite.
func Crop(img *layered.Image, x, y, width, height int) *layered.Sprite {
	r, ok := layered.ClipRegion(img, layered.Region{X: x, Y: y, Width: width, Height: height})
	if !ok {
		return &layered.Sprite{}
	}
	out := layered.NewSprite(r.Width, r.Height, r.X, r.Y)
	CopyRegion(img, r.X, r.Y, &out.Image, 0, 0, r.Width, r.Height)
	return out
}

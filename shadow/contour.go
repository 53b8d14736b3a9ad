package shadow

import (
	"image"

	"github.com/golang/glog"

	"badc0de.net/pkg/go-icn/layered"
	"badc0de.net/pkg/go-icn/transform"
)

// UpdateShadow extends the shadow of a sprite: every transparent pixel
// offset away from an opaque pixel gets the transform code. With
// connectCorners set, the pixel one step back horizontally is filled as well,
// closing the gap a diagonal offset leaves between a sprite and its shadow.
//
// Only the transform plane as it was before the call is considered, so new
// shadow pixels do not cast shadows themselves.
func UpdateShadow(img *layered.Image, offset image.Point, code uint8, connectCorners bool) {
	if img.SingleLayer() {
		glog.Warningf("shadow: UpdateShadow: image has no transform layer")
		return
	}
	if !transform.IsEffect(code) {
		glog.Warningf("shadow: UpdateShadow: transform code %d does not select a table row", code)
		return
	}
	if img.Empty() {
		return
	}

	w, h := img.Width(), img.Height()
	t := img.TransformPlane()
	before := append([]byte(nil), t...)

	set := func(x, y int) {
		if x < 0 || y < 0 || x >= w || y >= h {
			return
		}
		if before[y*w+x] == transform.Skip {
			t[y*w+x] = code
		}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if before[y*w+x] != transform.Opaque {
				continue
			}
			set(x+offset.X, y+offset.Y)
			if connectCorners && offset.X != 0 {
				set(x+offset.X-sign(offset.X), y+offset.Y)
			}
		}
	}
}

// CreateContour returns an outline of img: a sprite of the same size in
// which every transparent or shadow pixel touching an opaque pixel of img
// is painted with the given color. Everything else is transparent.
func CreateContour(img *layered.Image, colorID uint8) *layered.Sprite {
	if img.SingleLayer() {
		glog.Warningf("shadow: CreateContour: image has no transform layer")
		return &layered.Sprite{}
	}
	if img.Empty() {
		return &layered.Sprite{}
	}

	w, h := img.Width(), img.Height()
	out := layered.NewSprite(w, h, 0, 0)
	out.Reset()

	t := img.TransformPlane()
	opaque := func(x, y int) bool {
		return x >= 0 && y >= 0 && x < w && y < h && t[y*w+x] == transform.Opaque
	}

	outC, outT := out.ColorPlane(), out.TransformPlane()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			code := t[y*w+x]
			if code == transform.Opaque || code > transform.ShadowWeakest {
				continue
			}
			if opaque(x-1, y) || opaque(x+1, y) || opaque(x, y-1) || opaque(x, y+1) {
				outC[y*w+x] = colorID
				outT[y*w+x] = transform.Opaque
			}
		}
	}
	return out
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

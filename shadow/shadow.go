// Package shadow builds shadows and outlines from the transform plane of
// layered sprites.
//
// Shadows are not drawn into the color plane. They are stored as transform
// codes (see package transform) and take effect when the sprite is blitted
// onto a background.
package shadow

import (
	"image"

	"github.com/golang/glog"

	"badc0de.net/pkg/go-icn/compositor"
	"badc0de.net/pkg/go-icn/layered"
	"badc0de.net/pkg/go-icn/transform"
)

// MakeShadow returns a sprite holding only the shadow of in, cast towards
// offset. The shadow may only fall to the left and down: offset.X must not
// be positive and offset.Y must not be negative.
//
// The result is large enough to hold both in and its shadow. It is anchored
// offset.X pixels left of in, so that in drawn at (-offset.X, 0) of the
// result lines up with its shadow.
func MakeShadow(in *layered.Sprite, offset image.Point, code uint8) *layered.Sprite {
	if offset.X > 0 || offset.Y < 0 {
		glog.Warningf("shadow: MakeShadow: offset %v must point left and down", offset)
		return &layered.Sprite{}
	}
	if !transform.IsEffect(code) {
		glog.Warningf("shadow: MakeShadow: transform code %d does not select a table row", code)
		return &layered.Sprite{}
	}
	if in.Empty() {
		return &layered.Sprite{}
	}

	w, h := in.Width(), in.Height()
	out := layered.NewSprite(w-offset.X, h+offset.Y, in.X()+offset.X, in.Y())
	out.Reset()

	outW := out.Width()
	inT, outT := in.TransformPlane(), out.TransformPlane()
	for y := 0; y < h; y++ {
		o := (y + offset.Y) * outW
		for x := 0; x < w; x++ {
			if in.SingleLayer() || inT[y*w+x] == transform.Opaque {
				outT[o+x] = code
			}
		}
	}
	return out
}

// AddShadow returns a copy of in with its shadow cast towards offset. See
// MakeShadow.
func AddShadow(in *layered.Sprite, offset image.Point, code uint8) *layered.Sprite {
	out := MakeShadow(in, offset, code)
	if out.Empty() {
		return out
	}
	compositor.BlitAt(&in.Image, &out.Image, -offset.X, 0, false)
	return out
}

package shadow

import (
	"image"

	"github.com/golang/glog"

	"badc0de.net/pkg/go-icn/layered"
	"badc0de.net/pkg/go-icn/transform"
)

// AddGradientShadow draws the shadow in would cast onto out if drawn at
// outPos, fading out along offset.
//
// A pixel which is s steps away from the silhouette of in, walking back
// along offset in max(|offset.X|, |offset.Y|) steps, gets a shadow of
// strength 2 + (s-1)*4/steps: the strongest shadow right next to the
// sprite, the weakest one at the far end.
//
// Single layer images are darkened right away. Layered images get the shadow
// in their transform plane, where overlapping shadows add up.
func AddGradientShadow(in *layered.Sprite, out *layered.Image, outPos, offset image.Point) {
	steps := max(abs(offset.X), abs(offset.Y))
	if steps == 0 || in.Empty() || out.Empty() {
		return
	}

	spriteRect := layered.Full(&in.Image).Rect().Add(outPos)
	area := spriteRect.Union(spriteRect.Add(offset)).Intersect(layered.Full(out).Rect())
	if area.Empty() {
		return
	}

	opaque := func(p image.Point) bool {
		p = p.Sub(outPos)
		if p.X < 0 || p.Y < 0 || p.X >= in.Width() || p.Y >= in.Height() {
			return false
		}
		return in.SingleLayer() || in.TransformAt(p.X, p.Y) == transform.Opaque
	}

	w := out.Width()
	outC := out.ColorPlane()
	var outT []byte
	if !out.SingleLayer() {
		outT = out.TransformPlane()
	}

	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			p := image.Pt(x, y)
			if opaque(p) {
				continue
			}
			for s := 1; s <= steps; s++ {
				back := image.Pt(roundDiv(s*offset.X, steps), roundDiv(s*offset.Y, steps))
				if opaque(p.Sub(back)) {
					applyShadow(outC, outT, y*w+x, uint8(transform.ShadowStrongest+(s-1)*4/steps))
					break
				}
			}
		}
	}
	glog.V(2).Infof("shadow: gradient shadow of %dx%d sprite, offset %v, area %v", in.Width(), in.Height(), offset, area)
}

// applyShadow puts a shadow on the pixel at index i. outT is nil for single
// layer images.
func applyShadow(outC, outT []byte, i int, code uint8) {
	if outT == nil || outT[i] == transform.Opaque {
		outC[i] = transform.Apply(code, outC[i])
		return
	}

	switch current := outT[i]; {
	case current == transform.Skip:
		outT[i] = code
	case transform.IsShadow(current):
		// darkness runs from 1 for the weakest shadow to 4 for the strongest
		d := darkness(current) + darkness(code)
		if d > darkness(transform.ShadowStrongest) {
			d = darkness(transform.ShadowStrongest)
		}
		outT[i] = uint8(transform.ShadowWeakest + 1 - d)
	}
}

func darkness(code uint8) int {
	return transform.ShadowWeakest + 1 - int(code)
}

func roundDiv(a, b int) int {
	if a < 0 {
		return -((-a + b/2) / b)
	}
	return (a + b/2) / b
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

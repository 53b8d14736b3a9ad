package compositor

import (
	"github.com/golang/glog"

	"badc0de.net/pkg/go-icn/layered"
)

// ExtractCommonPattern returns an image holding the pixels which are the
// same, color and transform code alike, in all of the given images. All
// other pixels are transparent.
//
// The images must all have the same size and a transform layer; otherwise
// the result is empty.
func ExtractCommonPattern(images []*layered.Image) *layered.Image {
	if len(images) == 0 || images[0].Empty() {
		return &layered.Image{}
	}

	first := images[0]
	for _, img := range images {
		if img.Width() != first.Width() || img.Height() != first.Height() || img.SingleLayer() {
			glog.Warningf("compositor: ExtractCommonPattern: images must be layered and %dx%d", first.Width(), first.Height())
			return &layered.Image{}
		}
	}

	out := first.Clone()
	c, t := out.ColorPlane(), out.TransformPlane()
	for _, img := range images[1:] {
		ic, it := img.ColorPlane(), img.TransformPlane()
		for i := range c {
			if c[i] != ic[i] || t[i] != it[i] {
				c[i] = 0
				t[i] = 1
			}
		}
	}
	return out
}

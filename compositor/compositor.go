// Package compositor draws layered images onto each other.
//
// Every operation clips its arguments against the images involved first
// (see layered.ClipTransfer and layered.ClipRegion) and does nothing when
// nothing is left to draw. Operations mixing colors take the palette used
// to interpret color indices as their first argument.
//
// Contract violations, such as remap tables of the wrong size or transform
// codes outside of the table, are logged with glog and otherwise ignored.
//
// Source and destination regions passed to the same call must not overlap
// within one image.
package compositor

import (
	"github.com/golang/glog"

	"badc0de.net/pkg/go-icn/layered"
	"badc0de.net/pkg/go-icn/transform"
)

// compose draws one source pixel onto the destination pixel at index i.
//
// outT is nil for single layer destinations. A transform code reaching a
// transparent pixel of a layered destination is stored there, so that it
// still affects whatever the destination is drawn onto later.
func compose(outC, outT []byte, i int, c, code uint8) {
	switch {
	case code == transform.Opaque:
		outC[i] = c
		if outT != nil {
			outT[i] = transform.Opaque
		}
	case code == transform.Skip || code >= transform.Count:
	case outT != nil && outT[i] == transform.Skip:
		outT[i] = code
	default:
		outC[i] = transform.Apply(code, outC[i])
	}
}

// transformPlane returns the transform plane of img, or nil if compositing
// ignores it.
func transformPlane(img *layered.Image) []byte {
	if img.SingleLayer() {
		return nil
	}
	return img.TransformPlane()
}

func fill(b []byte, v byte) {
	for i := range b {
		b[i] = v
	}
}

func validRemap(fn string, remap []uint8) bool {
	if len(remap) != 256 {
		glog.Warningf("compositor: %s: remap table has %d entries, want 256", fn, len(remap))
		return false
	}
	return true
}

func validTransform(fn string, code uint8) bool {
	if !transform.IsEffect(code) {
		glog.Warningf("compositor: %s: transform code %d does not select a table row", fn, code)
		return false
	}
	return true
}

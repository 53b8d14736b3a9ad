package compositor

import (
	"badc0de.net/pkg/go-icn/layered"
	"badc0de.net/pkg/go-icn/transform"
)

// Copy makes out an exact copy of in, resizing out if needed.
func Copy(in, out *layered.Image) {
	if in.Empty() {
		out.Clear()
		return
	}
	out.Resize(in.Width(), in.Height())
	CopyRegion(in, 0, 0, out, 0, 0, in.Width(), in.Height())
}

// CopyRegion copies both planes of a region of in into out, ignoring what
// out contains. Single layer destinations only receive colors. A single
// layer source makes the copied pixels of a layered destination opaque.
func CopyRegion(in *layered.Image, inX, inY int, out *layered.Image, outX, outY, width, height int) {
	t, ok := layered.ClipTransfer(in, out, layered.Transfer{InX: inX, InY: inY, OutX: outX, OutY: outY, Width: width, Height: height})
	if !ok {
		return
	}

	inW, outW := in.Width(), out.Width()
	inC, outC := in.ColorPlane(), out.ColorPlane()
	inT, outT := in.TransformPlane(), transformPlane(out)

	for y := 0; y < t.Height; y++ {
		i := (t.InY+y)*inW + t.InX
		o := (t.OutY+y)*outW + t.OutX

		copy(outC[o:o+t.Width], inC[i:i+t.Width])
		if outT == nil {
			continue
		}
		if in.SingleLayer() {
			fill(outT[o:o+t.Width], transform.Opaque)
		} else {
			copy(outT[o:o+t.Width], inT[i:i+t.Width])
		}
	}
}

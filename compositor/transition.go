package compositor

import (
	"badc0de.net/pkg/go-icn/layered"
	"badc0de.net/pkg/go-icn/transform"
)

const maxDitherShift = 5

// DitheringTransition copies a region of in onto out with a dithered edge,
// for wipe effects.
//
// The region is cut into lines: rows if vertical is set, columns otherwise.
// Lines from the middle of the region onwards are copied fully. Lines before
// the middle copy every step-th pixel, where step is a power of two that
// halves every two lines towards the middle, starting at 32. Odd lines are
// shifted by half a step. With reverse set the middle is approached from the
// bottom or right edge instead.
//
// Calling this with a growing region gives a wipe which starts sparse and
// fills in.
func DitheringTransition(in *layered.Image, inX, inY int, out *layered.Image, outX, outY, width, height int, vertical, reverse bool) {
	t, ok := layered.ClipTransfer(in, out, layered.Transfer{InX: inX, InY: inY, OutX: outX, OutY: outY, Width: width, Height: height})
	if !ok {
		return
	}

	lines, length := t.Width, t.Height
	if vertical {
		lines, length = t.Height, t.Width
	}
	middle := lines / 2

	for l := 0; l < lines; l++ {
		d := l
		if reverse {
			d = lines - 1 - l
		}

		step, offset := 1, 0
		if d < middle {
			shift := (middle - d + 1) / 2
			if shift > maxDitherShift {
				shift = maxDitherShift
			}
			step = 1 << uint(shift)
			if d%2 == 1 {
				offset = step / 2
			}
		}

		for p := offset; p < length; p += step {
			x, y := p, l
			if !vertical {
				x, y = l, p
			}
			copyPixel(in, (t.InY+y)*in.Width()+t.InX+x, out, (t.OutY+y)*out.Width()+t.OutX+x)
		}
	}
}

// copyPixel copies one pixel the way CopyRegion does.
func copyPixel(in *layered.Image, i int, out *layered.Image, o int) {
	out.ColorPlane()[o] = in.ColorPlane()[i]
	if out.SingleLayer() {
		return
	}
	if in.SingleLayer() {
		out.TransformPlane()[o] = transform.Opaque
	} else {
		out.TransformPlane()[o] = in.TransformPlane()[i]
	}
}

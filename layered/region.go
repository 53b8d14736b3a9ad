package layered

import "image"

// Region is a Width x Height rectangle with its top left corner at (X, Y).
type Region struct {
	X, Y          int
	Width, Height int
}

// Full returns the region covering the whole image.
func Full(img *Image) Region {
	return Region{Width: img.width, Height: img.height}
}

// Rect returns the region as an image.Rectangle.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// RegionOf converts an image.Rectangle into a Region.
func RegionOf(r image.Rectangle) Region {
	return Region{X: r.Min.X, Y: r.Min.Y, Width: r.Dx(), Height: r.Dy()}
}

// Transfer describes copying a Width x Height block from (InX, InY) of a
// source image to (OutX, OutY) of a destination image.
type Transfer struct {
	InX, InY      int
	OutX, OutY    int
	Width, Height int
}

// ClipRegion clamps r to the bounds of img. It reports false when nothing
// remains.
func ClipRegion(img *Image, r Region) (Region, bool) {
	if img.Empty() || r.Width <= 0 || r.Height <= 0 {
		return Region{}, false
	}

	if r.X < 0 {
		r.Width += r.X
		r.X = 0
	}
	if r.Y < 0 {
		r.Height += r.Y
		r.Y = 0
	}
	if r.X >= img.width || r.Y >= img.height {
		return Region{}, false
	}
	if r.X+r.Width > img.width {
		r.Width = img.width - r.X
	}
	if r.Y+r.Height > img.height {
		r.Height = img.height - r.Y
	}

	if r.Width <= 0 || r.Height <= 0 {
		return Region{}, false
	}
	return r, true
}

// ClipRegions clamps two independent regions, each against its own image.
// Used where source and destination sizes differ, like resizing.
func ClipRegions(in *Image, inR Region, out *Image, outR Region) (Region, Region, bool) {
	inR, ok := ClipRegion(in, inR)
	if !ok {
		return Region{}, Region{}, false
	}
	outR, ok = ClipRegion(out, outR)
	if !ok {
		return Region{}, Region{}, false
	}
	return inR, outR, true
}

// ClipTransfer clamps a transfer so that it lies inside both images. Moving
// one origin to stay inside its image moves the other origin by the same
// amount, so source and destination pixels stay paired.
func ClipTransfer(in, out *Image, t Transfer) (Transfer, bool) {
	if in.Empty() || out.Empty() || t.Width <= 0 || t.Height <= 0 {
		return Transfer{}, false
	}

	if t.InX < 0 {
		t.Width += t.InX
		t.OutX -= t.InX
		t.InX = 0
	}
	if t.InY < 0 {
		t.Height += t.InY
		t.OutY -= t.InY
		t.InY = 0
	}
	if t.OutX < 0 {
		t.Width += t.OutX
		t.InX -= t.OutX
		t.OutX = 0
	}
	if t.OutY < 0 {
		t.Height += t.OutY
		t.InY -= t.OutY
		t.OutY = 0
	}
	if t.Width <= 0 || t.Height <= 0 {
		return Transfer{}, false
	}

	if t.InX >= in.width || t.InY >= in.height || t.OutX >= out.width || t.OutY >= out.height {
		return Transfer{}, false
	}

	if t.InX+t.Width > in.width {
		t.Width = in.width - t.InX
	}
	if t.InY+t.Height > in.height {
		t.Height = in.height - t.InY
	}
	if t.OutX+t.Width > out.width {
		t.Width = out.width - t.OutX
	}
	if t.OutY+t.Height > out.height {
		t.Height = out.height - t.OutY
	}

	if t.Width <= 0 || t.Height <= 0 {
		return Transfer{}, false
	}
	return t, true
}

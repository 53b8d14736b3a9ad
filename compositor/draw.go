package compositor

import (
	"image"

	"github.com/golang/glog"

	"badc0de.net/pkg/go-icn/layered"
	"badc0de.net/pkg/go-icn/transform"
)

// Fill paints a region of img with an opaque color.
func Fill(img *layered.Image, x, y, width, height int, colorID uint8) {
	r, ok := layered.ClipRegion(img, layered.Region{X: x, Y: y, Width: width, Height: height})
	if !ok {
		return
	}
	w := img.Width()
	c, t := img.ColorPlane(), transformPlane(img)
	for y := r.Y; y < r.Y+r.Height; y++ {
		o := y*w + r.X
		fill(c[o:o+r.Width], colorID)
		if t != nil {
			fill(t[o:o+r.Width], transform.Opaque)
		}
	}
}

// FillTransform sets the transform code of a region of img, leaving colors
// alone.
func FillTransform(img *layered.Image, x, y, width, height int, code uint8) {
	if code >= transform.Count {
		glog.Warningf("compositor: FillTransform: transform code %d out of range", code)
		return
	}
	if img.SingleLayer() {
		glog.Warningf("compositor: FillTransform: image has no transform layer")
		return
	}
	r, ok := layered.ClipRegion(img, layered.Region{X: x, Y: y, Width: width, Height: height})
	if !ok {
		return
	}
	w := img.Width()
	t := img.TransformPlane()
	for y := r.Y; y < r.Y+r.Height; y++ {
		o := y*w + r.X
		fill(t[o:o+r.Width], code)
	}
}

// SetPixel paints one opaque pixel. Coordinates outside of img are ignored.
func SetPixel(img *layered.Image, x, y int, colorID uint8) {
	if x < 0 || y < 0 || x >= img.Width() || y >= img.Height() {
		return
	}
	i := y*img.Width() + x
	img.ColorPlane()[i] = colorID
	if !img.SingleLayer() {
		img.TransformPlane()[i] = transform.Opaque
	}
}

// SetPixels paints a set of opaque pixels.
func SetPixels(img *layered.Image, points []image.Point, colorID uint8) {
	for _, p := range points {
		SetPixel(img, p.X, p.Y, colorID)
	}
}

// SetTransformPixel sets the transform code of one pixel. The color is kept.
func SetTransformPixel(img *layered.Image, x, y int, code uint8) {
	if code >= transform.Count {
		glog.Warningf("compositor: SetTransformPixel: transform code %d out of range", code)
		return
	}
	if x < 0 || y < 0 || x >= img.Width() || y >= img.Height() || img.SingleLayer() {
		return
	}
	img.TransformPlane()[y*img.Width()+x] = code
}

// DrawLine draws a line from start to end, both ends included. A non-empty
// roi limits drawing to that rectangle.
func DrawLine(img *layered.Image, start, end image.Point, colorID uint8, roi image.Rectangle) {
	bounds := layered.Full(img).Rect()
	if !roi.Empty() {
		bounds = bounds.Intersect(roi)
	}
	if bounds.Empty() {
		return
	}

	dx, dy := abs(end.X-start.X), -abs(end.Y-start.Y)
	sx, sy := sign(end.X-start.X), sign(end.Y-start.Y)
	err := dx + dy

	p := start
	for {
		if p.In(bounds) {
			SetPixel(img, p.X, p.Y, colorID)
		}
		if p == end {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			p.X += sx
		}
		if e2 <= dx {
			err += dx
			p.Y += sy
		}
	}
}

// DrawRect draws the outline of roi.
func DrawRect(img *layered.Image, roi image.Rectangle, colorID uint8) {
	if roi.Empty() {
		return
	}
	x0, y0, x1, y1 := roi.Min.X, roi.Min.Y, roi.Max.X-1, roi.Max.Y-1
	DrawLine(img, image.Pt(x0, y0), image.Pt(x1, y0), colorID, image.Rectangle{})
	DrawLine(img, image.Pt(x0, y1), image.Pt(x1, y1), colorID, image.Rectangle{})
	DrawLine(img, image.Pt(x0, y0), image.Pt(x0, y1), colorID, image.Rectangle{})
	DrawLine(img, image.Pt(x1, y0), image.Pt(x1, y1), colorID, image.Rectangle{})
}

// DrawBorder draws a frame along the edges of img. With a skipFactor of 2 or
// more, every skipFactor-th pixel of each edge is left out, giving a dotted
// frame.
func DrawBorder(img *layered.Image, colorID uint8, skipFactor int) {
	if img.Empty() {
		return
	}
	if skipFactor < 2 {
		DrawRect(img, layered.Full(img).Rect(), colorID)
		return
	}

	w, h := img.Width(), img.Height()
	for i := 0; i < w; i++ {
		if (i+1)%skipFactor == 0 {
			continue
		}
		SetPixel(img, i, 0, colorID)
		SetPixel(img, i, h-1, colorID)
	}
	for i := 1; i < h-1; i++ {
		if (i+1)%skipFactor == 0 {
			continue
		}
		SetPixel(img, 0, i, colorID)
		SetPixel(img, w-1, i, colorID)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
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

// Package layered defines the two-plane image used by the decoder and the
// compositor, along with the region arithmetic every compositing call runs
// through.
//
// An Image owns a single buffer of 2*width*height bytes. The first half is the
// color plane, holding palette indices. The second half is the transform
// plane, holding one transform code per pixel (see package transform).
package layered

import (
	"math"

	"github.com/golang/glog"
)

// Image is a layered image. The zero value is an empty image.
type Image struct {
	width  int
	height int
	data   []byte

	// singleLayer marks images whose transform plane is ignored by the
	// compositor. It is not carried over by copies.
	singleLayer bool
}

// NewImage allocates an image. The content of both planes is zero, i.e.
// black and opaque.
func NewImage(width, height int) *Image {
	img := &Image{}
	img.Resize(width, height)
	return img
}

// Resize changes the dimensions of the image. The buffer is reallocated
// only if the dimensions differ from the current ones, in which case the
// content is lost. A non-positive dimension, or dimensions whose buffer
// size does not fit in an int, make the image empty.
func (img *Image) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		img.Clear()
		return
	}
	if width > math.MaxInt/2/height {
		glog.Warningf("layered: %dx%d image is too large", width, height)
		img.Clear()
		return
	}
	if width == img.width && height == img.height {
		return
	}
	img.width = width
	img.height = height
	img.data = make([]byte, 2*width*height)
}

func (img *Image) Width() int {
	return img.width
}

func (img *Image) Height() int {
	return img.height
}

// Empty reports whether the image has no pixels.
func (img *Image) Empty() bool {
	return len(img.data) == 0
}

// Data returns the whole buffer: the color plane followed by the transform
// plane.
func (img *Image) Data() []byte {
	return img.data
}

// ColorPlane returns the palette indices, width*height bytes in row order.
func (img *Image) ColorPlane() []byte {
	return img.data[:img.width*img.height]
}

// TransformPlane returns the transform codes. It starts exactly
// width*height bytes after the start of the color plane.
func (img *Image) TransformPlane() []byte {
	return img.data[img.width*img.height:]
}

// ColorAt returns the color index of the pixel at (x, y). Coordinates must be
// inside the image.
func (img *Image) ColorAt(x, y int) uint8 {
	return img.data[y*img.width+x]
}

// TransformAt returns the transform code of the pixel at (x, y). Coordinates
// must be inside the image.
func (img *Image) TransformAt(x, y int) uint8 {
	return img.data[img.width*img.height+y*img.width+x]
}

// Reset makes the image fully transparent: colors are set to 0 and transform
// codes to 1.
func (img *Image) Reset() {
	if img.Empty() {
		return
	}
	fill(img.ColorPlane(), 0)
	fill(img.TransformPlane(), 1)
}

// Clear releases the buffer and makes the image empty.
func (img *Image) Clear() {
	img.width = 0
	img.height = 0
	img.data = nil
}

// Fill sets every color to value and makes every pixel opaque.
func (img *Image) Fill(value uint8) {
	if img.Empty() {
		return
	}
	fill(img.ColorPlane(), value)
	fill(img.TransformPlane(), 0)
}

// SingleLayer reports whether compositing may ignore the transform plane of
// this image.
func (img *Image) SingleLayer() bool {
	return img.singleLayer
}

// DisableTransformLayer marks the image as single layer. Only use it for
// final render targets: blitting onto such an image applies shadows right
// away instead of keeping them in the transform plane.
func (img *Image) DisableTransformLayer() {
	img.singleLayer = true
}

// Clone returns a deep copy. The copy is never single layer.
func (img *Image) Clone() *Image {
	out := &Image{}
	out.CopyFrom(img)
	return out
}

// CopyFrom replaces the content of img with a copy of src. The single layer
// flag of img is kept.
func (img *Image) CopyFrom(src *Image) {
	if img == src {
		return
	}
	if src.Empty() {
		img.Clear()
		return
	}
	img.Resize(src.width, src.height)
	copy(img.data, src.data)
}

// MoveFrom transfers the buffer of src to img, leaving src empty.
func (img *Image) MoveFrom(src *Image) {
	if img == src {
		return
	}
	img.width, img.height, img.data = src.width, src.height, src.data
	src.Clear()
}

func fill(b []byte, v byte) {
	for i := range b {
		b[i] = v
	}
}

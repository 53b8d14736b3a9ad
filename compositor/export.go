package compositor

// This file contains conversions between layered images and the image
// package of the standard library.

import (
	"image"
	"image/color"
	"image/draw"

	"badc0de.net/pkg/go-icn/layered"
	"badc0de.net/pkg/go-icn/palette"
	"badc0de.net/pkg/go-icn/transform"
)

// View presents a layered image as an image.Image. Transparent pixels are
// fully transparent; pixels with other transform codes are drawn as
// translucent black, darker for stronger shadows.
//
// Pixels are computed on every At call, so a View follows changes of the
// underlying image.
type View struct {
	Palette *palette.Palette
	Image   *layered.Image
}

func (v *View) ColorModel() color.Model {
	return color.NRGBAModel
}

func (v *View) Bounds() image.Rectangle {
	return layered.Full(v.Image).Rect()
}

func (v *View) At(x, y int) color.Color {
	if !image.Pt(x, y).In(v.Bounds()) {
		return color.NRGBA{}
	}
	code := uint8(transform.Opaque)
	if !v.Image.SingleLayer() {
		code = v.Image.TransformAt(x, y)
	}
	switch {
	case code == transform.Opaque:
		c := v.Palette.Color(v.Image.ColorAt(x, y))
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
	case transform.IsShadow(code):
		// strongest shadow is the most opaque
		return color.NRGBA{A: uint8(0xFF * (transform.ShadowWeakest + 1 - int(code)) / 5)}
	}
	return color.NRGBA{}
}

// ToNRGBA renders img into a new image.NRGBA. See View.
func ToNRGBA(pal *palette.Palette, img *layered.Image) *image.NRGBA {
	v := &View{Palette: pal, Image: img}
	out := image.NewNRGBA(v.Bounds())
	draw.Draw(out, out.Bounds(), v, image.Point{}, draw.Src)
	return out
}

// ToPaletted renders img into a new image.Paletted using pal. Pixels which
// are not opaque are painted with the background index bg. Shadows are not
// applied; draw img onto a background with Blit first to get them.
func ToPaletted(pal *palette.Palette, img *layered.Image, bg uint8) *image.Paletted {
	out := image.NewPaletted(layered.Full(img).Rect(), pal.ColorPalette())
	if img.Empty() {
		return out
	}
	copy(out.Pix, img.ColorPlane())
	if img.SingleLayer() {
		return out
	}
	for i, code := range img.TransformPlane() {
		if code != transform.Opaque {
			out.Pix[i] = bg
		}
	}
	return out
}

// FromImage converts m into a layered image. Pixels with an alpha below half
// become transparent, all others take the nearest palette color.
func FromImage(pal *palette.Palette, m image.Image) *layered.Image {
	b := m.Bounds()
	out := layered.NewImage(b.Dx(), b.Dy())
	if out.Empty() {
		return out
	}
	out.Reset()

	w := b.Dx()
	c, t := out.ColorPlane(), out.TransformPlane()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			nc := color.NRGBAModel.Convert(m.At(x, y)).(color.NRGBA)
			if nc.A < 0x80 {
				continue
			}
			i := (y-b.Min.Y)*w + x - b.Min.X
			c[i] = pal.ColorID(nc.R, nc.G, nc.B)
			t[i] = transform.Opaque
		}
	}
	return out
}

package main

import (
	"image"
	"image/color"
	_ "image/png"
	"os"

	"github.com/ericpauley/go-quantize/quantize"
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"badc0de.net/pkg/go-icn/compositor"
	"badc0de.net/pkg/go-icn/layered"
	"badc0de.net/pkg/go-icn/palette"
)

// paletteFromPNG derives a palette of up to numColors colors from a
// truecolor picture, and converts the picture into a layered image with it.
func paletteFromPNG(fn string, numColors int) (*palette.Palette, *layered.Image, error) {
	if numColors < 1 || numColors > palette.Size {
		return nil, nil, errors.Errorf("cannot derive %d colors", numColors)
	}

	f, err := os.Open(fn)
	if err != nil {
		return nil, nil, errors.Wrap(err, "opening")
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	if err != nil {
		return nil, nil, errors.Wrap(err, "decoding")
	}

	q := quantize.MedianCutQuantizer{}
	cp := q.Quantize(make(color.Palette, 0, numColors), m)
	glog.V(1).Infof("%s: derived %d colors", fn, len(cp))

	pal, err := palette.FromColorPalette(cp)
	if err != nil {
		return nil, nil, err
	}
	return pal, compositor.FromImage(pal, m), nil
}

package imageprint

import (
	"image"
	"io"

	"github.com/andybons/gogif"
	"github.com/pkg/errors"
)

func PrintRasTerm(w io.Writer, i image.Image) error {
	return errors.New("imageprint: rasterm not supported on windows")
}

// Quantize reduces i to at most numColor colors.
func Quantize(i image.Image, numColor int) *image.Paletted {
	palettedImage := image.NewPaletted(i.Bounds(), nil)
	quantizer := gogif.MedianCutQuantizer{NumColor: numColor}
	quantizer.Quantize(palettedImage, i.Bounds(), i, i.Bounds().Min)
	return palettedImage
}

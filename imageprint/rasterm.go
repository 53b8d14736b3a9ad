//go:build !windows

package imageprint

import (
	"fmt"
	"image"
	"io"

	"github.com/BourgeoisBear/rasterm"
	"github.com/andybons/gogif"
	"github.com/pkg/errors"
)

// PrintRasTerm draws an image using the RasTerm library, picking the kitty,
// iTerm2 or sixel protocol depending on what the terminal supports.
func PrintRasTerm(w io.Writer, i image.Image) error {
	var err error
	switch {
	case rasterm.IsTermKitty():
		err = rasterm.Settings{}.KittyWriteImage(w, i)
	case rasterm.IsTermItermWez():
		err = rasterm.Settings{}.ItermWriteImage(w, i)
	default:
		capable, cerr := rasterm.IsSixelCapable()
		if cerr != nil || !capable {
			return errors.New("imageprint: terminal cannot display images")
		}
		err = rasterm.Settings{}.SixelWriteImage(w, Quantize(i, 64))
	}
	if err != nil {
		return errors.Wrap(err, "imageprint: rasterm")
	}
	fmt.Fprintf(w, "\n")
	return nil
}

// Quantize reduces i to at most numColor colors.
func Quantize(i image.Image, numColor int) *image.Paletted {
	palettedImage := image.NewPaletted(i.Bounds(), nil)
	quantizer := gogif.MedianCutQuantizer{NumColor: numColor}
	quantizer.Quantize(palettedImage, i.Bounds(), i, i.Bounds().Min)
	return palettedImage
}

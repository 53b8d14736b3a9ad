package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/glog"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	"github.com/vincent-petithory/dataurl"

	"badc0de.net/pkg/go-icn/compositor"
	"badc0de.net/pkg/go-icn/imageprint"
	"badc0de.net/pkg/go-icn/layered"
	"badc0de.net/pkg/go-icn/palette"
)

var (
	col      = flag.Bool("col", true, "whether to use color at all")
	col256   = flag.Bool("col256", false, "whether to use 256 col instead of 24 bit")
	iterm    = flag.Bool("iterm", false, "whether to print with iterm escape code instead of 24 bit")
	rasterm  = flag.Bool("rasterm", false, "whether to print with kitty, iterm or sixel graphics")
	blanks   = flag.Bool("blanks", true, "whether to just use colored blanks instead of some bad ascii art")
	downsize = flag.Bool("downsize", false, "whether to shrink images to fit the terminal")
	quiet    = flag.Bool("quiet", false, "whether to skip printing to the terminal")

	pngOut     = flag.String("png", "", "file to write the rendered image to; numbered when there are several")
	gifOut     = flag.String("gif", "", "file to write all rendered images to, as an animation")
	dataURLOut = flag.Bool("dataurl", false, "whether to print the rendered image as a data URL")
)

func printMode() imageprint.Mode {
	switch {
	case *rasterm:
		return imageprint.ModeRasTerm
	case !*col:
		return imageprint.ModeNoColor
	case *iterm:
		return imageprint.ModeITerm
	case *col256:
		return imageprint.Mode256Color
	}
	return imageprint.Mode24Bit
}

func fitTerminal(img image.Image) image.Image {
	termSize, err := GetTermSize()
	if err != nil {
		glog.Warningf("downsize failed to get terminal size: %v", err)
		return img
	}
	if termSize.WSXPixel != 0 && termSize.WSYPixel != 0 && (*rasterm || *iterm) {
		// Images are drawn by the terminal, so use its pixel size.
		return resize.Thumbnail(termSize.WSXPixel/2, termSize.WSYPixel/2, img, resize.Lanczos3)
	}
	// Every pixel is two columns wide.
	return resize.Thumbnail(termSize.WSCol/2, termSize.WSRow, img, resize.NearestNeighbor)
}

var pngCount int

func out(pal *palette.Palette, rendered *layered.Image, name string) error {
	img := image.Image(compositor.ToNRGBA(pal, rendered))

	if *pngOut != "" {
		fn := *pngOut
		if pngCount > 0 {
			ext := filepath.Ext(fn)
			fn = fmt.Sprintf("%s.%d%s", strings.TrimSuffix(fn, ext), pngCount, ext)
		}
		pngCount++
		if err := writePNG(fn, img); err != nil {
			return err
		}
	}

	if *dataURLOut {
		buf := &bytes.Buffer{}
		if err := png.Encode(buf, img); err != nil {
			return errors.Wrap(err, "encoding png")
		}
		byt, err := dataurl.New(buf.Bytes(), "image/png").MarshalText()
		if err != nil {
			return errors.Wrap(err, "encoding data url")
		}
		fmt.Printf("%s: %s\n", name, byt)
	}

	if *quiet {
		return nil
	}
	if *downsize {
		img = fitTerminal(img)
	}
	fmt.Printf("%s (%dx%d)\n", name, rendered.Width(), rendered.Height())
	return imageprint.Print(os.Stdout, img, printMode(), *blanks)
}

func writePNG(fn string, img image.Image) error {
	f, err := os.Create(fn)
	if err != nil {
		return errors.Wrap(err, "creating png")
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing %s", fn)
	}
	return f.Close()
}

// writeGIF writes the frames as an animation, if -gif is set.
func writeGIF(pal *palette.Palette, frames []*layered.Image) error {
	if *gifOut == "" || len(frames) == 0 {
		return nil
	}

	anim := &gif.GIF{}
	for _, frame := range frames {
		anim.Image = append(anim.Image, compositor.ToPaletted(pal, frame, uint8(*bg)))
		anim.Delay = append(anim.Delay, 50)
		anim.Config.Width = max(anim.Config.Width, frame.Width())
		anim.Config.Height = max(anim.Config.Height, frame.Height())
	}

	f, err := os.Create(*gifOut)
	if err != nil {
		return errors.Wrap(err, "creating gif")
	}
	if err := gif.EncodeAll(f, anim); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing %s", *gifOut)
	}
	return f.Close()
}

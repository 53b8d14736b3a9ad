// Command icnprint decodes raw ICN sprite streams and prints them on the
// terminal, optionally after applying a compositing operation.
//
// Without arguments it prints the embedded demo sprite:
//
//	icnprint -op=gradient -shadow=4,2
//	icnprint -width=32 -height=40 -pal=kb.pal -png=out.png sprite.icn
package main

import (
	"context"
	"flag"
	"os"

	"badc0de.net/pkg/flagutil/v1"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"badc0de.net/pkg/go-icn/datafiles"
	"badc0de.net/pkg/go-icn/icn"
	"badc0de.net/pkg/go-icn/layered"
	"badc0de.net/pkg/go-icn/palette"
	"badc0de.net/pkg/go-icn/paths"
	"badc0de.net/pkg/go-icn/render"
)

var (
	width   = flag.Int("width", 0, "width of the sprites; 0 for the size of the demo sprite")
	height  = flag.Int("height", 0, "height of the sprites; 0 for the size of the demo sprite")
	offsetX = flag.Int("x", 0, "horizontal anchor offset of the sprites")
	offsetY = flag.Int("y", 0, "vertical anchor offset of the sprites")

	op       = flag.String("op", "none", "operation to apply: none, shadow, gradient, contour, flip, resize or transition")
	scale    = flag.Float64("scale", 2, "scale factor for -op=resize")
	subpixel = flag.Bool("subpixel", false, "whether -op=resize interpolates colors")
	shadowAt = flag.String("shadow", "-3,3", "shadow offset as x,y for -op=shadow and -op=gradient")
	progress = flag.Float64("progress", 0.5, "how far -op=transition has gone, 0 to 1")
	bg       = flag.Int("bg", 0, "palette index of the background")
	margin   = flag.Int("margin", 2, "pixels of background around the sprite")

	palPath string
	fromPNG = flag.String("from_png", "", "PNG file to derive the palette from; the PNG itself is printed as well")
	colors  = flag.Int("colors", palette.Size, "number of colors to derive with -from_png")
)

type decoded struct {
	name   string
	sprite *layered.Sprite
}

// readInput reads a sprite stream from disk, or from the datafiles if there
// is no such file.
func readInput(name string) ([]byte, error) {
	if _, err := os.Stat(name); err == nil {
		return os.ReadFile(name)
	}
	return paths.ReadFile(name)
}

func loadPalette() (*palette.Palette, error) {
	vga, err := paths.ReadFile(palPath)
	if err != nil {
		return nil, errors.Wrap(err, "reading palette")
	}
	return palette.New(vga)
}

// decodeAll decodes all the named streams concurrently.
func decodeAll(ctx context.Context, names []string, w, h int) ([]decoded, error) {
	out := make([]decoded, len(names))
	g, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := readInput(name)
			if err != nil {
				return errors.Wrapf(err, "reading %s", name)
			}
			s, stats := icn.DecodeWithStats(data, w, h, *offsetX, *offsetY)
			if !stats.Terminated || stats.Dropped > 0 {
				glog.Warningf("%s: stream does not fit a %dx%d sprite: %+v", name, w, h, stats)
			}
			out[i] = decoded{name: name, sprite: s}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// spriteSize returns the size given by -width and -height, or the size of
// the demo sprite if either is 0.
func spriteSize() (int, int, error) {
	w, h := *width, *height
	if w == 0 || h == 0 {
		w, h = datafiles.DemoSpriteWidth, datafiles.DemoSpriteHeight
	}
	if err := render.CheckSize(w, h); err != nil {
		return 0, 0, err
	}
	return w, h, nil
}

func options() (render.Options, error) {
	o := render.DefaultOptions()
	var err error
	if o.Op, err = render.ParseOp(*op); err != nil {
		return o, err
	}
	if o.Shadow, err = render.ParsePoint(*shadowAt); err != nil {
		return o, err
	}
	o.Scale = *scale
	o.Subpixel = *subpixel
	o.Progress = *progress
	o.Background = uint8(*bg)
	o.Margin = *margin
	return o, nil
}

func main() {
	paths.SetupFilePathFlag(datafiles.DemoPalette, "pal", &palPath)
	flagutil.Parse()
	flag.Set("logtostderr", "true")

	o, err := options()
	if err != nil {
		glog.Exitf("bad flags: %v", err)
	}

	var pal *palette.Palette
	var extra []decoded
	if *fromPNG != "" {
		var img *layered.Image
		pal, img, err = paletteFromPNG(*fromPNG, *colors)
		if err != nil {
			glog.Exitf("-from_png: %v", err)
		}
		extra = append(extra, decoded{name: *fromPNG, sprite: layered.SpriteFromImage(img, 0, 0)})
	} else if pal, err = loadPalette(); err != nil {
		glog.Exitf("%v", err)
	}
	pal.Prepare()

	names := flag.Args()
	if len(names) == 0 && *fromPNG == "" {
		names = []string{datafiles.DemoSprite}
	}
	w, h, err := spriteSize()
	if err != nil {
		glog.Exitf("bad flags: %v", err)
	}

	sprites, err := decodeAll(context.Background(), names, w, h)
	if err != nil {
		glog.Exitf("decoding: %v", err)
	}
	sprites = append(sprites, extra...)

	var frames []*layered.Image
	for _, d := range sprites {
		img, err := render.Render(pal, d.sprite, o)
		if err != nil {
			glog.Errorf("%s: %v", d.name, err)
			continue
		}
		frames = append(frames, img)
		if err := out(pal, img, d.name); err != nil {
			glog.Errorf("%s: %v", d.name, err)
		}
	}

	if err := writeGIF(pal, frames); err != nil {
		glog.Exitf("%v", err)
	}
}

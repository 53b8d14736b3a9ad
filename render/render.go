// Package render turns a decoded sprite into a finished picture: it applies
// one of the compositing operations and draws the result onto a solid
// background, the way the game would draw it onto the screen.
package render

import (
	"image"
	"math"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"badc0de.net/pkg/go-icn/compositor"
	"badc0de.net/pkg/go-icn/layered"
	"badc0de.net/pkg/go-icn/palette"
	"badc0de.net/pkg/go-icn/shadow"
	"badc0de.net/pkg/go-icn/transform"
)

// Op is an operation applied to the sprite before it is drawn.
type Op string

const (
	OpNone       Op = "none"
	OpShadow     Op = "shadow"
	OpGradient   Op = "gradient"
	OpContour    Op = "contour"
	OpFlip       Op = "flip"
	OpResize     Op = "resize"
	OpTransition Op = "transition"
)

// MaxSide is the largest width or height Render works with, for the sprite
// as well as for the operation's result and the background.
const MaxSide = 4096

// CheckSize reports an error if a width x height sprite cannot be rendered.
func CheckSize(width, height int) error {
	if width <= 0 || height <= 0 || width > MaxSide || height > MaxSide {
		return errors.Errorf("render: size %dx%d outside of 1x1 to %dx%d", width, height, MaxSide, MaxSide)
	}
	return nil
}

var ops = []Op{OpNone, OpShadow, OpGradient, OpContour, OpFlip, OpResize, OpTransition}

// ParseOp returns the operation with the given name.
func ParseOp(s string) (Op, error) {
	for _, op := range ops {
		if string(op) == s {
			return op, nil
		}
	}
	return "", errors.Errorf("render: unknown operation %q", s)
}

// ParsePoint parses "x,y".
func ParsePoint(s string) (image.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return image.Point{}, errors.Errorf("render: %q is not of the form x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return image.Point{}, errors.Wrapf(err, "render: bad x in %q", s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return image.Point{}, errors.Wrapf(err, "render: bad y in %q", s)
	}
	return image.Pt(x, y), nil
}

// Options configures Render.
type Options struct {
	Op Op

	// Shadow is the offset of the shadow for OpShadow and OpGradient.
	// OpShadow only supports shadows falling left and down.
	Shadow     image.Point
	ShadowCode uint8

	// Scale and Subpixel are used by OpResize.
	Scale    float64
	Subpixel bool

	// ContourColor is the outline color of OpContour.
	ContourColor uint8

	// Progress, between 0 and 1, is how far OpTransition has gone.
	Progress float64

	Background uint8
	Margin     int
}

// DefaultOptions returns options drawing the sprite as it is.
func DefaultOptions() Options {
	return Options{
		Op:           OpNone,
		Shadow:       image.Pt(-3, 3),
		ShadowCode:   transform.ShadowWeak,
		Scale:        2,
		ContourColor: 10,
		Progress:     0.5,
		Margin:       2,
	}
}

// Render applies the operation to s and draws it onto a background color.
// The result is single layer, so shadows are already applied to it.
func Render(pal *palette.Palette, s *layered.Sprite, o Options) (*layered.Image, error) {
	if s.Empty() {
		return nil, errors.New("render: empty sprite")
	}
	if err := CheckSize(s.Width(), s.Height()); err != nil {
		return nil, err
	}
	if o.Margin < 0 || o.Margin > MaxSide || abs(o.Shadow.X) > MaxSide || abs(o.Shadow.Y) > MaxSide {
		return nil, errors.Errorf("render: margin %d or shadow %v out of range", o.Margin, o.Shadow)
	}

	sprite, err := apply(pal, s, o)
	if err != nil {
		return nil, err
	}

	margin := o.Margin
	if o.Op == OpGradient {
		margin = max(margin, abs(o.Shadow.X), abs(o.Shadow.Y))
	}
	if err := CheckSize(sprite.Width()+2*margin, sprite.Height()+2*margin); err != nil {
		return nil, err
	}
	bg := layered.NewImage(sprite.Width()+2*margin, sprite.Height()+2*margin)
	bg.Fill(o.Background)
	bg.DisableTransformLayer()

	switch o.Op {
	case OpGradient:
		shadow.AddGradientShadow(sprite, bg, image.Pt(margin, margin), o.Shadow)
		compositor.BlitAt(&sprite.Image, bg, margin, margin, false)
	case OpTransition:
		drawn := bg.Clone()
		compositor.BlitAt(&sprite.Image, drawn, margin, margin, false)
		lines := int(math.Round(o.Progress * float64(bg.Height())))
		compositor.DitheringTransition(drawn, 0, 0, bg, 0, 0, bg.Width(), lines, true, false)
	default:
		compositor.BlitAt(&sprite.Image, bg, margin, margin, false)
	}

	glog.V(2).Infof("render: %s of %dx%d sprite onto %dx%d", o.Op, s.Width(), s.Height(), bg.Width(), bg.Height())
	return bg, nil
}

// Image is Render, converted to an image.Image.
func Image(pal *palette.Palette, s *layered.Sprite, o Options) (image.Image, error) {
	img, err := Render(pal, s, o)
	if err != nil {
		return nil, err
	}
	return compositor.ToNRGBA(pal, img), nil
}

func apply(pal *palette.Palette, s *layered.Sprite, o Options) (*layered.Sprite, error) {
	switch o.Op {
	case OpNone, OpGradient, OpTransition, "":
		return s, nil

	case OpShadow:
		if o.Shadow.X > 0 || o.Shadow.Y < 0 {
			return nil, errors.Errorf("render: shadow offset %v must point left and down", o.Shadow)
		}
		if !transform.IsEffect(o.ShadowCode) {
			return nil, errors.Errorf("render: transform code %d cannot be used for shadows", o.ShadowCode)
		}
		return shadow.AddShadow(s, o.Shadow, o.ShadowCode), nil

	case OpContour:
		out := shadow.CreateContour(&s.Image, o.ContourColor)
		out.SetPosition(s.X(), s.Y())
		compositor.Blit(&s.Image, &out.Image, false)
		return out, nil

	case OpFlip:
		return layered.SpriteFromImage(compositor.Flip(&s.Image, true, false), s.X(), s.Y()), nil

	case OpResize:
		fw := math.Round(float64(s.Width()) * o.Scale)
		fh := math.Round(float64(s.Height()) * o.Scale)
		if !(fw >= 1 && fh >= 1) {
			return nil, errors.Errorf("render: scale %g leaves nothing of a %dx%d sprite", o.Scale, s.Width(), s.Height())
		}
		if fw > MaxSide || fh > MaxSide {
			return nil, errors.Errorf("render: scale %g makes a %dx%d sprite larger than %d", o.Scale, s.Width(), s.Height(), MaxSide)
		}
		w, h := int(fw), int(fh)
		out := layered.NewSprite(w, h, s.X(), s.Y())
		out.Reset()
		compositor.Resize(pal, &s.Image, &out.Image, o.Subpixel)
		return out, nil
	}
	return nil, errors.Errorf("render: unknown operation %q", o.Op)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

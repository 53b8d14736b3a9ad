package render

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"badc0de.net/pkg/go-icn/datafiles"
	"badc0de.net/pkg/go-icn/icn"
	"badc0de.net/pkg/go-icn/layered"
	"badc0de.net/pkg/go-icn/palette"
	"badc0de.net/pkg/go-icn/transform"
)

func demo(t *testing.T) (*palette.Palette, *layered.Sprite) {
	t.Helper()
	vga, err := datafiles.ReadFile(datafiles.DemoPalette)
	require.NoError(t, err)
	pal, err := palette.New(vga)
	require.NoError(t, err)
	data, err := datafiles.ReadFile(datafiles.DemoSprite)
	require.NoError(t, err)
	return pal, icn.Decode(data, datafiles.DemoSpriteWidth, datafiles.DemoSpriteHeight, 0, 0)
}

func TestParse(t *testing.T) {
	op, err := ParseOp("gradient")
	require.NoError(t, err)
	assert.Equal(t, OpGradient, op)
	_, err = ParseOp("sharpen")
	assert.Error(t, err)

	p, err := ParsePoint("-3, 4")
	require.NoError(t, err)
	assert.Equal(t, image.Pt(-3, 4), p)
	for _, bad := range []string{"", "1", "a,2", "1,2,3"} {
		_, err := ParsePoint(bad)
		assert.Error(t, err, bad)
	}
}

func TestRenderNone(t *testing.T) {
	pal, s := demo(t)
	o := DefaultOptions()
	o.Background = 5

	img, err := Render(pal, s, o)
	require.NoError(t, err)
	require.Equal(t, 20, img.Width())
	require.Equal(t, 20, img.Height())
	assert.True(t, img.SingleLayer())
	assert.Equal(t, uint8(5), img.ColorAt(0, 0))
	assert.Equal(t, s.ColorAt(7, 7), img.ColorAt(9, 9))

	// the shadow of the demo sprite darkens the background
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.TransformAt(x, y) == transform.ShadowWeak {
				assert.Equal(t, transform.Apply(transform.ShadowWeak, 5), img.ColorAt(x+2, y+2))
			}
		}
	}
}

func TestRenderOps(t *testing.T) {
	pal, s := demo(t)
	for _, op := range ops {
		t.Run(string(op), func(t *testing.T) {
			o := DefaultOptions()
			o.Op = op
			img, err := Image(pal, s, o)
			require.NoError(t, err)
			assert.False(t, img.Bounds().Empty())
		})
	}
}

func TestRenderSizes(t *testing.T) {
	pal, s := demo(t)

	o := DefaultOptions()
	o.Op = OpResize
	o.Scale = 0.5
	img, err := Render(pal, s, o)
	require.NoError(t, err)
	assert.Equal(t, 12, img.Width())

	o.Op = OpShadow
	img, err = Render(pal, s, o)
	require.NoError(t, err)
	assert.Equal(t, 23, img.Width())
	assert.Equal(t, 23, img.Height())

	o.Op = OpGradient
	o.Shadow = image.Pt(5, 1)
	img, err = Render(pal, s, o)
	require.NoError(t, err)
	assert.Equal(t, 26, img.Width())
}

func TestRenderErrors(t *testing.T) {
	pal, s := demo(t)

	o := DefaultOptions()
	o.Op = OpShadow
	o.Shadow = image.Pt(2, 2)
	_, err := Render(pal, s, o)
	assert.Error(t, err)

	o = DefaultOptions()
	o.Op = OpResize
	o.Scale = 0
	_, err = Render(pal, s, o)
	assert.Error(t, err)

	_, err = Render(pal, &layered.Sprite{}, DefaultOptions())
	assert.Error(t, err)
}

func TestRenderSizeLimits(t *testing.T) {
	pal, s := demo(t)

	for _, scale := range []float64{MaxSide, 1e300, math.Inf(1), math.NaN()} {
		o := DefaultOptions()
		o.Op = OpResize
		o.Scale = scale
		_, err := Render(pal, s, o)
		assert.Error(t, err, "scale %g", scale)
	}

	o := DefaultOptions()
	o.Margin = MaxSide
	_, err := Render(pal, s, o)
	assert.Error(t, err, "background larger than MaxSide")

	o = DefaultOptions()
	o.Op = OpGradient
	o.Shadow = image.Pt(MaxSide+1, 0)
	_, err = Render(pal, s, o)
	assert.Error(t, err)

	_, err = Render(pal, layered.NewSprite(MaxSide+1, 1, 0, 0), DefaultOptions())
	assert.Error(t, err)

	assert.NoError(t, CheckSize(MaxSide, 1))
	for _, size := range [][2]int{{0, 1}, {1, -1}, {MaxSide + 1, 1}, {math.MaxInt, math.MaxInt}} {
		assert.Error(t, CheckSize(size[0], size[1]), "%v", size)
	}
}

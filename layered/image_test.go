package layered

import (
	"math"
	"testing"

	"badc0de.net/pkg/go-icn/ttesting"
)

func TestEmptyImage(t *testing.T) {
	var img Image
	if !img.Empty() {
		t.Errorf("zero value image should be empty")
	}
	img.Reset()
	img.Fill(3)
	ttesting.AssertEqualInt(t, "width", img.Width(), 0)
	ttesting.AssertEqualInt(t, "buffer", len(img.Data()), 0)

	for _, size := range [][2]int{{0, 5}, {5, 0}, {-1, 3}} {
		if !NewImage(size[0], size[1]).Empty() {
			t.Errorf("NewImage(%d, %d) should be empty", size[0], size[1])
		}
	}
}

func TestResizeOverflow(t *testing.T) {
	for _, size := range [][2]int{{math.MaxInt / 4, 4}, {math.MaxInt, 2}, {2, math.MaxInt / 2}} {
		img := NewImage(3, 3)
		img.Resize(size[0], size[1])
		if !img.Empty() {
			t.Errorf("Resize(%d, %d) should leave the image empty", size[0], size[1])
		}
		ttesting.AssertEqualInt(t, "width", img.Width(), 0)
		ttesting.AssertEqualInt(t, "height", img.Height(), 0)
		ttesting.AssertEqualInt(t, "color plane", len(img.ColorPlane()), 0)
	}
}

func TestPlaneAdjacency(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {3, 7}, {64, 32}} {
		img := NewImage(size[0], size[1])
		n := size[0] * size[1]
		ttesting.AssertEqualInt(t, "buffer size", len(img.Data()), 2*n)
		ttesting.AssertEqualInt(t, "color plane size", len(img.ColorPlane()), n)
		ttesting.AssertEqualInt(t, "transform plane size", len(img.TransformPlane()), n)
		if &img.TransformPlane()[0] != &img.Data()[n] {
			t.Errorf("%dx%d: transform plane does not start w*h bytes after the color plane", size[0], size[1])
		}
		if &img.ColorPlane()[0] != &img.Data()[0] {
			t.Errorf("%dx%d: color plane does not start the buffer", size[0], size[1])
		}
	}
}

func TestReset(t *testing.T) {
	img := NewImage(4, 3)
	img.Fill(9)
	img.Reset()
	ttesting.AssertAllBytes(t, "colors after reset", img.ColorPlane(), 0)
	ttesting.AssertAllBytes(t, "transform after reset", img.TransformPlane(), 1)

	once := append([]byte(nil), img.Data()...)
	img.Reset()
	ttesting.AssertEqualBytes(t, "reset is idempotent", img.Data(), once)
}

func TestFill(t *testing.T) {
	img := NewImage(2, 2)
	img.Reset()
	img.Fill(42)
	ttesting.AssertAllBytes(t, "colors", img.ColorPlane(), 42)
	ttesting.AssertAllBytes(t, "transform", img.TransformPlane(), 0)
}

func TestResizeKeepsBufferForSameSize(t *testing.T) {
	img := NewImage(5, 5)
	img.Fill(7)
	before := &img.Data()[0]
	img.Resize(5, 5)
	if &img.Data()[0] != before {
		t.Errorf("Resize to the same dimensions reallocated the buffer")
	}
	ttesting.AssertEqualUint8(t, "content kept", img.ColorAt(4, 4), 7)

	img.Resize(6, 5)
	ttesting.AssertEqualInt(t, "new buffer size", len(img.Data()), 60)

	img.Resize(0, 5)
	if !img.Empty() {
		t.Errorf("Resize(0, 5) should empty the image")
	}
}

func TestCloneAndMove(t *testing.T) {
	img := NewImage(3, 2)
	img.Fill(5)
	img.TransformPlane()[1] = 3
	img.DisableTransformLayer()

	c := img.Clone()
	ttesting.AssertEqualBytes(t, "clone content", c.Data(), img.Data())
	if c.SingleLayer() {
		t.Errorf("clone must not inherit the single layer flag")
	}
	c.ColorPlane()[0] = 99
	ttesting.AssertEqualUint8(t, "clone is deep", img.ColorAt(0, 0), 5)

	var moved Image
	moved.MoveFrom(c)
	if !c.Empty() {
		t.Errorf("source of a move should be empty")
	}
	ttesting.AssertEqualUint8(t, "moved content", moved.ColorAt(0, 0), 99)
	ttesting.AssertEqualUint8(t, "moved transform", moved.TransformAt(1, 0), 3)

	var empty Image
	moved.CopyFrom(&empty)
	if !moved.Empty() {
		t.Errorf("copying an empty image should empty the destination")
	}
}

func TestSprite(t *testing.T) {
	s := NewSprite(4, 4, -2, 7)
	ttesting.AssertEqualInt(t, "x", s.X(), -2)
	ttesting.AssertEqualInt(t, "y", s.Y(), 7)
	s.SetPosition(1, 2)
	ttesting.AssertEqualInt(t, "x after SetPosition", s.X(), 1)

	s.Fill(8)
	c := s.Clone()
	ttesting.AssertEqualInt(t, "clone keeps anchor", c.Y(), 2)
	ttesting.AssertEqualBytes(t, "clone keeps pixels", c.Data(), s.Data())

	fromImage := SpriteFromImage(&s.Image, 3, 4)
	ttesting.AssertEqualInt(t, "anchor from argument", fromImage.X(), 3)
	ttesting.AssertEqualInt(t, "size", fromImage.Width(), 4)
}

package layered

// Sprite is an Image with an anchor offset. The offset does not change how
// pixels are stored; callers use it to position the sprite relative to a
// reference point, e.g. to line up a shadow with the object casting it.
type Sprite struct {
	Image

	x int
	y int
}

// NewSprite allocates a sprite of the given size with its anchor at (x, y).
func NewSprite(width, height, x, y int) *Sprite {
	s := &Sprite{x: x, y: y}
	s.Resize(width, height)
	return s
}

// SpriteFromImage copies img into a new sprite anchored at (x, y).
func SpriteFromImage(img *Image, x, y int) *Sprite {
	s := &Sprite{x: x, y: y}
	s.CopyFrom(img)
	return s
}

func (s *Sprite) X() int {
	return s.x
}

func (s *Sprite) Y() int {
	return s.y
}

func (s *Sprite) SetPosition(x, y int) {
	s.x = x
	s.y = y
}

// Clone returns a deep copy of the sprite, anchor included.
func (s *Sprite) Clone() *Sprite {
	return SpriteFromImage(&s.Image, s.x, s.y)
}

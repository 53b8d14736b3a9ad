package compositor

import (
	"badc0de.net/pkg/go-icn/layered"
)

// Restorer remembers the content of a region of an image so that it can be
// put back later, e.g. the background under a dialog.
type Restorer struct {
	img    *layered.Image
	region layered.Region
	saved  layered.Image

	restored bool
}

// NewRestorer saves the given region of img. The region is clipped to img.
func NewRestorer(img *layered.Image, x, y, width, height int) *Restorer {
	r := &Restorer{img: img}
	r.save(x, y, width, height)
	return r
}

// NewFullRestorer saves all of img.
func NewFullRestorer(img *layered.Image) *Restorer {
	return NewRestorer(img, 0, 0, img.Width(), img.Height())
}

func (r *Restorer) save(x, y, width, height int) {
	region, ok := layered.ClipRegion(r.img, layered.Region{X: x, Y: y, Width: width, Height: height})
	if !ok {
		r.region = layered.Region{}
		r.saved.Clear()
		r.restored = true
		return
	}
	r.region = region
	r.saved.Resize(region.Width, region.Height)
	CopyRegion(r.img, region.X, region.Y, &r.saved, 0, 0, region.Width, region.Height)
	r.restored = false
}

// Region returns the saved region.
func (r *Restorer) Region() layered.Region {
	return r.region
}

// Update restores the current region and saves a new one.
func (r *Restorer) Update(x, y, width, height int) {
	r.Restore()
	r.save(x, y, width, height)
}

// Restore puts the saved pixels back. Restoring twice does nothing until the
// next Update.
func (r *Restorer) Restore() {
	if r.restored {
		return
	}
	CopyRegion(&r.saved, 0, 0, r.img, r.region.X, r.region.Y, r.region.Width, r.region.Height)
	r.restored = true
}

// Reset forgets the saved pixels without restoring them.
func (r *Restorer) Reset() {
	r.restored = true
}

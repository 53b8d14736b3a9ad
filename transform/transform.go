// Package transform holds the constant recoloring table used by the
// transform plane of layered images.
//
// Every pixel of a layered image carries a transform code next to its color.
// Code 0 draws the color as-is, code 1 skips the pixel, and codes 2 and up
// select a row of the table which is applied to the color already present
// underneath the pixel. Codes 2 to 5 are shadows, from the darkest to the
// lightest.
package transform

const (
	Opaque = 0
	Skip   = 1

	ShadowStrongest = 2
	ShadowStrong    = 3
	ShadowWeak      = 4
	ShadowWeakest   = 5

	// Mirror swaps light and dark shades inside every color ramp.
	Mirror = 14
	// NoCycle replaces palette slots which are animated by color cycling with
	// static ones.
	NoCycle = 15

	// Count is the number of rows in the table and one past the largest valid
	// transform code.
	Count = 16
)

// Apply returns the color which replaces colorID when the effect of the given
// transform code is applied. Codes 0, 1 and codes outside of the table return
// colorID unchanged.
func Apply(code, colorID uint8) uint8 {
	if code <= Skip || code >= Count {
		return colorID
	}
	return table[code][colorID]
}

// Row returns a copy of one table row, suitable as a 256-entry remap table.
// Invalid codes return nil.
func Row(code uint8) []uint8 {
	if code >= Count {
		return nil
	}
	row := make([]uint8, 256)
	copy(row, table[code][:])
	return row
}

// IsShadow reports whether code is one of the four shadow strengths.
func IsShadow(code uint8) bool {
	return code >= ShadowStrongest && code <= ShadowWeakest
}

// IsEffect reports whether code refers to a table row, i.e. it neither draws
// the pixel directly nor skips it.
func IsEffect(code uint8) bool {
	return code > Skip && code < Count
}

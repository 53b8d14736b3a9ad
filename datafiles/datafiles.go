// Package datafiles embeds small sample assets, so that the tools work
// without any game data around.
package datafiles

import "embed"

const (
	// DemoPalette is a 256 color palette of 6-bit VGA values.
	DemoPalette = "demo.pal"

	// DemoSprite is an encoded 16x16 sprite, a shaded ball with a shadow
	// towards the bottom right, using DemoPalette.
	DemoSprite       = "demo.icn"
	DemoSpriteWidth  = 16
	DemoSpriteHeight = 16
)

//go:embed demo.pal demo.icn
var files embed.FS

// ReadFile returns the content of an embedded file.
func ReadFile(name string) ([]byte, error) {
	return files.ReadFile(name)
}

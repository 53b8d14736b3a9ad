package datafiles_test

import (
	"testing"

	"badc0de.net/pkg/go-icn/datafiles"
	"badc0de.net/pkg/go-icn/icn"
	"badc0de.net/pkg/go-icn/palette"
	"badc0de.net/pkg/go-icn/transform"
)

func TestDemoAssets(t *testing.T) {
	vga, err := datafiles.ReadFile(datafiles.DemoPalette)
	if err != nil {
		t.Fatalf("reading palette: %v", err)
	}
	if _, err := palette.New(vga); err != nil {
		t.Fatalf("demo palette does not load: %v", err)
	}

	data, err := datafiles.ReadFile(datafiles.DemoSprite)
	if err != nil {
		t.Fatalf("reading sprite: %v", err)
	}
	s, stats := icn.DecodeWithStats(data, datafiles.DemoSpriteWidth, datafiles.DemoSpriteHeight, 0, 0)
	if !stats.Terminated || stats.Dropped != 0 {
		t.Errorf("demo sprite does not decode cleanly: %+v", stats)
	}

	var opaque, shadow int
	for _, code := range s.TransformPlane() {
		switch code {
		case transform.Opaque:
			opaque++
		case transform.ShadowWeak:
			shadow++
		}
	}
	if opaque != 113 || shadow != 48 {
		t.Errorf("got %d opaque and %d shadow pixels, want 113 and 48", opaque, shadow)
	}
}

package layered

import (
	"image"
	"testing"
)

func TestClipTransfer(t *testing.T) {
	in := NewImage(10, 10)
	out := NewImage(8, 6)

	tests := []struct {
		name   string
		t      Transfer
		want   Transfer
		wantOK bool
	}{
		{
			name:   "inside",
			t:      Transfer{InX: 1, InY: 1, OutX: 2, OutY: 2, Width: 3, Height: 3},
			want:   Transfer{InX: 1, InY: 1, OutX: 2, OutY: 2, Width: 3, Height: 3},
			wantOK: true,
		},
		{
			name:   "right edge of destination",
			t:      Transfer{OutX: 7, Width: 5, Height: 1},
			want:   Transfer{OutX: 7, Width: 1, Height: 1},
			wantOK: true,
		},
		{
			name:   "negative destination origin",
			t:      Transfer{OutX: -3, Width: 5, Height: 1},
			want:   Transfer{InX: 3, OutX: 0, Width: 2, Height: 1},
			wantOK: true,
		},
		{
			name:   "negative source origin",
			t:      Transfer{InX: -2, InY: -1, OutX: 1, OutY: 1, Width: 4, Height: 4},
			want:   Transfer{InX: 0, InY: 0, OutX: 3, OutY: 2, Width: 2, Height: 3},
			wantOK: true,
		},
		{
			name:   "bottom edge of destination",
			t:      Transfer{OutY: 4, Width: 2, Height: 9},
			want:   Transfer{OutY: 4, Width: 2, Height: 2},
			wantOK: true,
		},
		{
			name:   "source overhang",
			t:      Transfer{InX: 8, InY: 9, Width: 5, Height: 5},
			want:   Transfer{InX: 8, InY: 9, Width: 2, Height: 1},
			wantOK: true,
		},
		{name: "fully left", t: Transfer{OutX: -5, Width: 5, Height: 1}},
		{name: "past destination", t: Transfer{OutX: 8, Width: 5, Height: 1}},
		{name: "past source", t: Transfer{InY: 10, Width: 1, Height: 1}},
		{name: "zero size", t: Transfer{Width: 0, Height: 3}},
		{name: "negative size", t: Transfer{Width: 3, Height: -3}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ClipTransfer(in, out, tc.t)
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v (got %+v)", ok, tc.wantOK, got)
			}
			if ok && got != tc.want {
				t.Errorf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestClipTransferEmptyImages(t *testing.T) {
	if _, ok := ClipTransfer(&Image{}, NewImage(2, 2), Transfer{Width: 1, Height: 1}); ok {
		t.Errorf("empty source should clip to nothing")
	}
	if _, ok := ClipTransfer(NewImage(2, 2), &Image{}, Transfer{Width: 1, Height: 1}); ok {
		t.Errorf("empty destination should clip to nothing")
	}
}

func TestClipRegion(t *testing.T) {
	img := NewImage(5, 4)

	got, ok := ClipRegion(img, Region{X: -2, Y: 3, Width: 10, Height: 10})
	if !ok || got != (Region{X: 0, Y: 3, Width: 5, Height: 1}) {
		t.Errorf("got %+v %v", got, ok)
	}
	if _, ok := ClipRegion(img, Region{X: 5, Width: 1, Height: 1}); ok {
		t.Errorf("region starting at the right edge should be empty")
	}
	if _, ok := ClipRegion(img, Region{X: -3, Width: 3, Height: 1}); ok {
		t.Errorf("region ending at the left edge should be empty")
	}
	if got, _ := ClipRegion(img, Full(img)); got != Full(img) {
		t.Errorf("full region changed: %+v", got)
	}
}

func TestClipRegions(t *testing.T) {
	in := NewImage(4, 4)
	out := NewImage(16, 16)

	inR, outR, ok := ClipRegions(in, Region{X: 2, Y: 2, Width: 4, Height: 4}, out, Region{X: -4, Y: 0, Width: 8, Height: 8})
	if !ok {
		t.Fatalf("expected overlap")
	}
	if inR != (Region{X: 2, Y: 2, Width: 2, Height: 2}) {
		t.Errorf("in: %+v", inR)
	}
	// The regions are independent: clipping the destination does not move
	// the source.
	if outR != (Region{X: 0, Y: 0, Width: 4, Height: 8}) {
		t.Errorf("out: %+v", outR)
	}

	if _, _, ok := ClipRegions(in, Region{Width: 1, Height: 1}, out, Region{X: 16, Width: 1, Height: 1}); ok {
		t.Errorf("destination outside of the image should fail")
	}
}

func TestRegionRect(t *testing.T) {
	r := Region{X: 1, Y: 2, Width: 3, Height: 4}
	if r.Rect() != image.Rect(1, 2, 4, 6) {
		t.Errorf("Rect() = %v", r.Rect())
	}
	if RegionOf(r.Rect()) != r {
		t.Errorf("RegionOf(Rect()) = %+v", RegionOf(r.Rect()))
	}
}

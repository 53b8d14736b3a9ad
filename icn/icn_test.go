package icn

import (
	"fmt"
	"os"
	"testing"

	"badc0de.net/pkg/flagutil/v1"

	"badc0de.net/pkg/go-icn/ttesting"
)

func TestMain(m *testing.M) {
	// make -args -v=2 -logtostderr work.
	flagutil.Parse()
	os.Exit(m.Run())
}

func TestDecodeScenario(t *testing.T) {
	s := Decode([]byte{0x03, 10, 11, 12, 0x00, 0x80}, 3, 1, 0, 0)
	ttesting.AssertEqualBytes(t, "colors", s.ColorPlane(), []byte{10, 11, 12})
	ttesting.AssertEqualBytes(t, "transform", s.TransformPlane(), []byte{0, 0, 0})
}

func TestTransformOperandBits(t *testing.T) {
	tests := []struct {
		v         byte
		wantType  uint8
		wantCount int
		wantFlag  bool
	}{
		{0x40, 2, 0, true},
		{0x41, 2, 1, true},
		{0x43, 2, 3, true},
		{0x45, 3, 1, true},
		{0x4A, 4, 2, true},
		{0x4C, 5, 0, true},
		{0x50, 6, 0, true},
		{0x7C, 17, 0, true},
		{0x02, 2, 2, false},
		{0x3C, 17, 0, false},
		{0xFF, 17, 3, true},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("0x%02X", tc.v), func(t *testing.T) {
			if got := transformType(tc.v); got != tc.wantType {
				t.Errorf("transformType = %d, want %d", got, tc.wantType)
			}
			if got := transformCount(tc.v); got != tc.wantCount {
				t.Errorf("transformCount = %d, want %d", got, tc.wantCount)
			}
			if got := hasTransform(tc.v); got != tc.wantFlag {
				t.Errorf("hasTransform = %v, want %v", got, tc.wantFlag)
			}
		})
	}
}

func TestDecodeOpcodes(t *testing.T) {
	tests := []struct {
		name          string
		data          []byte
		width, height int
		wantColors    []byte
		wantTransform []byte
	}{
		{
			name:          "transparent skip",
			data:          []byte{0x82, 0x01, 5, 0x80},
			width:         3,
			height:        1,
			wantColors:    []byte{0, 0, 5},
			wantTransform: []byte{1, 1, 0},
		},
		{
			name:          "transform run with inline count",
			data:          []byte{0xC0, 0x42, 0x80},
			width:         3,
			height:        1,
			wantColors:    []byte{0, 0, 0},
			wantTransform: []byte{2, 2, 1},
		},
		{
			name:          "transform run with count byte",
			data:          []byte{0xC0, 0x44, 3, 0x80},
			width:         3,
			height:        1,
			wantColors:    []byte{0, 0, 0},
			wantTransform: []byte{3, 3, 3},
		},
		{
			name:          "transform run keeps color",
			data:          []byte{0x01, 9, 0xC0, 0x45, 0x00, 0x80},
			width:         2,
			height:        1,
			wantColors:    []byte{9, 0},
			wantTransform: []byte{0, 3},
		},
		{
			name:          "transform run without flag skips",
			data:          []byte{0xC0, 0x02, 0x01, 9, 0x80},
			width:         3,
			height:        1,
			wantColors:    []byte{0, 0, 9},
			wantTransform: []byte{1, 1, 0},
		},
		{
			name:          "transform type past the table skips",
			data:          []byte{0xC0, 0x7D, 0x01, 9, 0x80},
			width:         3,
			height:        1,
			wantColors:    []byte{0, 9, 0},
			wantTransform: []byte{1, 0, 1},
		},
		{
			name:          "counted run",
			data:          []byte{0xC1, 3, 7, 0x80},
			width:         4,
			height:        1,
			wantColors:    []byte{7, 7, 7, 0},
			wantTransform: []byte{0, 0, 0, 1},
		},
		{
			name:          "short run",
			data:          []byte{0xC3, 4, 0x80},
			width:         3,
			height:        1,
			wantColors:    []byte{4, 4, 4},
			wantTransform: []byte{0, 0, 0},
		},
		{
			name:          "rows",
			data:          []byte{0x02, 1, 2, 0x00, 0x81, 0x01, 3, 0x00, 0x80},
			width:         2,
			height:        2,
			wantColors:    []byte{1, 2, 0, 3},
			wantTransform: []byte{0, 0, 1, 0},
		},
		{
			name:          "nothing after end of image",
			data:          []byte{0x01, 1, 0x80, 0x01, 2},
			width:         2,
			height:        1,
			wantColors:    []byte{1, 0},
			wantTransform: []byte{0, 1},
		},
		{
			name:          "empty stream",
			data:          nil,
			width:         2,
			height:        1,
			wantColors:    []byte{0, 0},
			wantTransform: []byte{1, 1},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := Decode(tc.data, tc.width, tc.height, 0, 0)
			ttesting.AssertEqualBytes(t, "colors", s.ColorPlane(), tc.wantColors)
			ttesting.AssertEqualBytes(t, "transform", s.TransformPlane(), tc.wantTransform)
		})
	}
}

func TestDecodeMalformed(t *testing.T) {
	t.Run("truncated literal run", func(t *testing.T) {
		s, stats := DecodeWithStats([]byte{0x05, 1, 2}, 4, 1, 0, 0)
		ttesting.AssertEqualBytes(t, "colors", s.ColorPlane(), []byte{1, 2, 0, 0})
		ttesting.AssertEqualBytes(t, "transform", s.TransformPlane(), []byte{0, 0, 1, 1})
		if stats.Terminated {
			t.Errorf("stream without end of image reported as terminated")
		}
	})

	t.Run("row overflow is dropped", func(t *testing.T) {
		s, stats := DecodeWithStats([]byte{0x04, 1, 2, 3, 4, 0x00, 0x01, 5, 0x80}, 2, 2, 0, 0)
		ttesting.AssertEqualBytes(t, "colors", s.ColorPlane(), []byte{1, 2, 5, 0})
		ttesting.AssertEqualInt(t, "written", stats.Written, 3)
		ttesting.AssertEqualInt(t, "dropped", stats.Dropped, 2)
		if !stats.Terminated {
			t.Errorf("stream should be terminated")
		}
	})

	t.Run("rows past the bottom are dropped", func(t *testing.T) {
		s, stats := DecodeWithStats([]byte{0x01, 1, 0x00, 0xC2, 6}, 1, 1, 0, 0)
		ttesting.AssertEqualBytes(t, "colors", s.ColorPlane(), []byte{1})
		ttesting.AssertEqualInt(t, "dropped", stats.Dropped, 2)
	})

	t.Run("missing operands", func(t *testing.T) {
		for _, data := range [][]byte{{0xC0}, {0xC0, 0x40}, {0xC1}, {0xC1, 2}, {0xC5}} {
			s := Decode(data, 3, 1, 0, 0)
			ttesting.AssertAllBytes(t, fmt.Sprintf("% X leaves sprite transparent", data), s.TransformPlane(), 1)
		}
	})
}

func TestDecodeAnchor(t *testing.T) {
	s := Decode([]byte{0x80}, 5, 6, -3, 12)
	ttesting.AssertEqualInt(t, "x", s.X(), -3)
	ttesting.AssertEqualInt(t, "y", s.Y(), 12)
	ttesting.AssertEqualInt(t, "width", s.Width(), 5)
	ttesting.AssertEqualInt(t, "height", s.Height(), 6)
}

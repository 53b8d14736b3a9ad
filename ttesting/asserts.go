// Package ttesting contains assertion helpers shared by the package tests.
package ttesting

import (
	"bytes"
	"testing"
)

func AssertEqualInt(t *testing.T, name string, got, want int) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %d; want %d", got, want)
		}
	})
}

func AssertEqualUint8(t *testing.T, name string, got, want uint8) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %d; want %d", got, want)
		}
	})
}

func AssertInRangeInt(t *testing.T, name string, got, wantMin, wantMax int) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if got < wantMin || got > wantMax {
			t.Errorf("got %d; want [%d,%d]", got, wantMin, wantMax)
		}
	})
}

// AssertEqualBytes compares two byte slices and reports the first differing
// offset.
func AssertEqualBytes(t *testing.T, name string, got, want []byte) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if bytes.Equal(got, want) {
			return
		}
		if len(got) != len(want) {
			t.Errorf("got %d bytes; want %d bytes", len(got), len(want))
			return
		}
		for i := range got {
			if got[i] != want[i] {
				t.Errorf("first difference at offset %d: got %d; want %d\ngot:  %v\nwant: %v", i, got[i], want[i], got, want)
				return
			}
		}
	})
}

// AssertAllBytes checks that every byte of got equals want.
func AssertAllBytes(t *testing.T, name string, got []byte, want byte) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		for i, b := range got {
			if b != want {
				t.Errorf("offset %d: got %d; want %d", i, b, want)
				return
			}
		}
	})
}

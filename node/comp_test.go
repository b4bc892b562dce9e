// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package node

import (
	"testing"

	"toucango/opentime"
)

func TestCompOverOpaqueForegroundHidesBackground(t *testing.T) {
	fg := NewFill("fg", 2, 2, [4]float64{1, 0, 0, 1})
	bg := NewFill("bg", 2, 2, [4]float64{0, 0, 1, 1})
	c := NewComp("over", fg, bg, false, false)
	c.SetTime(opentime.NewRationalTime(0, 24))

	buf, err := c.Exec()
	if err != nil {
		t.Fatalf("Exec: %v", err)
	}
	if buf.At(0, 0, 0) != 1 || buf.At(0, 0, 2) != 0 {
		t.Errorf("expected opaque red fg to fully occlude bg, got r=%v b=%v", buf.At(0, 0, 0), buf.At(0, 0, 2))
	}
}

func TestCompOverTransparentForegroundShowsBackground(t *testing.T) {
	fg := NewFill("fg", 2, 2, [4]float64{1, 0, 0, 0})
	bg := NewFill("bg", 2, 2, [4]float64{0, 0, 1, 1})
	c := NewComp("over", fg, bg, false, false)
	c.SetTime(opentime.NewRationalTime(0, 24))

	buf, err := c.Exec()
	if err != nil {
		t.Fatalf("Exec: %v", err)
	}
	if buf.At(0, 0, 2) != 1 {
		t.Errorf("expected fully transparent fg to show bg blue, got %v", buf.At(0, 0, 2))
	}
}

func TestCompHalfAlphaBlendsProportionally(t *testing.T) {
	fg := NewFill("fg", 2, 2, [4]float64{0.5, 0, 0, 0.5})
	bg := NewFill("bg", 2, 2, [4]float64{0, 0, 0, 1})
	c := NewComp("over", fg, bg, false, false)
	c.SetTime(opentime.NewRationalTime(0, 24))

	buf, err := c.Exec()
	if err != nil {
		t.Fatalf("Exec: %v", err)
	}
	// fg is already premultiplied (premult off):
	// out.r = fg.r + bg.r*(1-fa) = 0.5 + 0*0.5 = 0.5 (within u8 rounding).
	if got := buf.At(0, 0, 0); got < 0.45 || got > 0.55 {
		t.Errorf("blended red = %v, want ~0.5", got)
	}
}

func TestCompResizesForegroundWhenDimensionsDiffer(t *testing.T) {
	fg := NewFill("fg", 1, 1, [4]float64{1, 1, 1, 1})
	bg := NewFill("bg", 4, 4, [4]float64{0, 0, 0, 1})
	c := NewComp("over", fg, bg, false, true)
	c.SetTime(opentime.NewRationalTime(0, 24))

	buf, err := c.Exec()
	if err != nil {
		t.Fatalf("Exec: %v", err)
	}
	if buf.Spec.Width != 4 || buf.Spec.Height != 4 {
		t.Fatalf("output size = %dx%d, want 4x4 (bg's size)", buf.Spec.Width, buf.Spec.Height)
	}
}

func TestCompPremultipliesForegroundWhenRequested(t *testing.T) {
	fg := NewFill("fg", 1, 1, [4]float64{1, 1, 1, 0.5})
	bg := NewFill("bg", 1, 1, [4]float64{0, 0, 0, 1})
	c := NewComp("over", fg, bg, true, false)
	c.SetTime(opentime.NewRationalTime(0, 24))

	buf, err := c.Exec()
	if err != nil {
		t.Fatalf("Exec: %v", err)
	}
	// Premultiplied: fg.r*fa = 0.5, plus bg.r*(1-fa) = 0.
	if got := buf.At(0, 0, 0); got < 0.45 || got > 0.55 {
		t.Errorf("premultiplied red = %v, want ~0.5", got)
	}
}

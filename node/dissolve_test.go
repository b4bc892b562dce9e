// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package node

import (
	"math"
	"testing"

	"toucango/opentime"
)

func TestDissolveAtZeroIsFullyFrom(t *testing.T) {
	from := NewFill("from", 1, 1, [4]float64{1, 0, 0, 1})
	to := NewFill("to", 1, 1, [4]float64{0, 1, 0, 1})
	d := NewDissolve("d", from, to, 0)
	d.SetTime(opentime.NewRationalTime(0, 24))

	buf, err := d.Exec()
	if err != nil {
		t.Fatalf("Exec: %v", err)
	}
	if buf.At(0, 0, 0) < 0.95 {
		t.Errorf("value=0 should be all from (red), got r=%v", buf.At(0, 0, 0))
	}
}

func TestDissolveAtOneIsFullyTo(t *testing.T) {
	from := NewFill("from", 1, 1, [4]float64{1, 0, 0, 1})
	to := NewFill("to", 1, 1, [4]float64{0, 1, 0, 1})
	d := NewDissolve("d", from, to, 1)
	d.SetTime(opentime.NewRationalTime(0, 24))

	buf, err := d.Exec()
	if err != nil {
		t.Fatalf("Exec: %v", err)
	}
	if buf.At(0, 0, 1) < 0.95 {
		t.Errorf("value=1 should be all to (green), got g=%v", buf.At(0, 0, 1))
	}
}

func TestDissolveAtHalfBlendsEvenly(t *testing.T) {
	from := NewFill("from", 1, 1, [4]float64{1, 0, 0, 1})
	to := NewFill("to", 1, 1, [4]float64{0, 1, 0, 1})
	d := NewDissolve("d", from, to, 0.5)
	d.SetTime(opentime.NewRationalTime(0, 24))

	buf, err := d.Exec()
	if err != nil {
		t.Fatalf("Exec: %v", err)
	}
	if math.Abs(buf.At(0, 0, 0)-0.5) > 0.05 {
		t.Errorf("red at value=0.5 should be ~0.5, got %v", buf.At(0, 0, 0))
	}
	if math.Abs(buf.At(0, 0, 1)-0.5) > 0.05 {
		t.Errorf("green at value=0.5 should be ~0.5, got %v", buf.At(0, 0, 1))
	}
}

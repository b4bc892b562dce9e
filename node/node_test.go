// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package node

import (
	"testing"

	"toucango/opentime"
)

func TestBaseLabelAndInputs(t *testing.T) {
	leaf := NewFill("leaf", 1, 1, [4]float64{})
	b := NewBase("parent", leaf)
	if b.Label() != "parent" {
		t.Errorf("Label() = %q, want %q", b.Label(), "parent")
	}
	if len(b.Inputs()) != 1 || b.Inputs()[0] != leaf {
		t.Errorf("Inputs() did not return the leaf node")
	}
}

func TestEffectiveTimeWithoutOffset(t *testing.T) {
	f := NewFill("f", 1, 1, [4]float64{})
	f.SetTime(opentime.NewRationalTime(10, 24))
	if got := EffectiveTime(f); got.Value() != 10 {
		t.Errorf("EffectiveTime = %v, want 10", got.Value())
	}
}

func TestEffectiveTimeWithOffset(t *testing.T) {
	f := NewFill("f", 1, 1, [4]float64{})
	f.SetTime(opentime.NewRationalTime(10, 24))
	f.SetTimeOffset(opentime.NewRationalTime(3, 24))
	if got := EffectiveTime(f); got.Value() != 7 {
		t.Errorf("EffectiveTime = %v, want 7", got.Value())
	}
}

func TestTimeOffsetReportsUnsetUntilInstalled(t *testing.T) {
	f := NewFill("f", 1, 1, [4]float64{})
	if _, ok := f.TimeOffset(); ok {
		t.Errorf("expected no time_offset before SetTimeOffset is called")
	}
	f.SetTimeOffset(opentime.NewRationalTime(1, 24))
	if _, ok := f.TimeOffset(); !ok {
		t.Errorf("expected a time_offset after SetTimeOffset")
	}
}

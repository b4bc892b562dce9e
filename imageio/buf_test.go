// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package imageio

import (
	"math"
	"testing"
)

func TestImageBufSetAtU8RoundTrip(t *testing.T) {
	buf := NewImageBuf(NewImageSpec(2, 2, 4, ComponentU8))
	buf.Set(1, 1, 2, 0.5)
	got := buf.At(1, 1, 2)
	if math.Abs(got-0.5) > 1.0/255.0 {
		t.Errorf("At(1,1,2) = %v, want ~0.5", got)
	}
}

func TestImageBufSetAtF32RoundTrip(t *testing.T) {
	buf := NewImageBuf(NewImageSpec(1, 1, 4, ComponentF32))
	buf.Set(0, 0, 0, 0.3333)
	got := buf.At(0, 0, 0)
	if math.Abs(got-0.3333) > 1e-4 {
		t.Errorf("At(0,0,0) = %v, want ~0.3333", got)
	}
}

func TestImageBufAtMissingAlphaDefaultsOpaque(t *testing.T) {
	buf := NewImageBuf(NewImageSpec(1, 1, 3, ComponentU8))
	if got := buf.At(0, 0, 3); got != 1.0 {
		t.Errorf("At with channel beyond count 3 (alpha) = %v, want 1.0", got)
	}
	if got := buf.At(0, 0, 4); got != 0.0 {
		t.Errorf("At with channel beyond count, non-alpha = %v, want 0.0", got)
	}
}

func TestImageBufClone(t *testing.T) {
	buf := NewImageBuf(NewImageSpec(1, 1, 4, ComponentU8))
	buf.Set(0, 0, 0, 1.0)
	clone := buf.Clone()
	clone.Set(0, 0, 0, 0.0)
	if buf.At(0, 0, 0) == clone.At(0, 0, 0) {
		t.Errorf("expected Clone to be an independent copy")
	}
}

func TestEnsureAlphaAddsOpaqueChannel(t *testing.T) {
	buf := NewImageBuf(NewImageSpec(1, 1, 3, ComponentU8))
	buf.Set(0, 0, 0, 1.0)
	withAlpha := buf.EnsureAlpha()
	if withAlpha.Spec.ChannelCount != 4 {
		t.Fatalf("expected 4 channels, got %d", withAlpha.Spec.ChannelCount)
	}
	if withAlpha.At(0, 0, 3) != 1.0 {
		t.Errorf("expected synthesized alpha to be opaque")
	}
	if withAlpha.At(0, 0, 0) != 1.0 {
		t.Errorf("expected existing channel data to be preserved")
	}
}

func TestEnsureAlphaNoopWhenAlreadyPresent(t *testing.T) {
	buf := NewImageBuf(NewImageSpec(1, 1, 4, ComponentU8))
	if buf.EnsureAlpha() != buf {
		t.Errorf("expected EnsureAlpha to return the same buffer when alpha already present")
	}
}

func TestClamp01(t *testing.T) {
	if clamp01(-1) != 0 {
		t.Errorf("clamp01(-1) should be 0")
	}
	if clamp01(2) != 1 {
		t.Errorf("clamp01(2) should be 1")
	}
	if clamp01(0.5) != 0.5 {
		t.Errorf("clamp01(0.5) should be unchanged")
	}
}

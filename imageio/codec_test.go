// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package imageio

import (
	"bytes"
	"testing"

	xdraw "golang.org/x/image/draw"
)

func solidBuf(w, h int, r, g, b, a float64) *ImageBuf {
	buf := NewImageBuf(NewImageSpec(w, h, 4, ComponentU8))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			buf.Set(x, y, 0, r)
			buf.Set(x, y, 1, g)
			buf.Set(x, y, 2, b)
			buf.Set(x, y, 3, a)
		}
	}
	return buf
}

func TestEncodeDecodePNGRoundTrip(t *testing.T) {
	buf := solidBuf(4, 4, 1, 0, 0, 1)
	var out bytes.Buffer
	if err := buf.Encode(&out, ".png"); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := Decode(&out)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded.Spec.Width != 4 || decoded.Spec.Height != 4 {
		t.Fatalf("decoded size = %dx%d, want 4x4", decoded.Spec.Width, decoded.Spec.Height)
	}
	if decoded.At(0, 0, 0) < 0.9 {
		t.Errorf("expected red channel to round-trip near 1.0, got %v", decoded.At(0, 0, 0))
	}
}

func TestEncodePNGDefaultsForUnknownExtension(t *testing.T) {
	buf := solidBuf(2, 2, 0, 1, 0, 1)
	var out bytes.Buffer
	if err := buf.Encode(&out, ".weird"); err != nil {
		t.Fatalf("Encode with unrecognized extension should default to PNG: %v", err)
	}
	if out.Len() == 0 {
		t.Errorf("expected encoded bytes")
	}
}

func TestResizeChangesDimensions(t *testing.T) {
	buf := solidBuf(4, 4, 1, 1, 1, 1)
	resized := buf.Resize(8, 2, xdraw.BiLinear)
	if resized.Spec.Width != 8 || resized.Spec.Height != 2 {
		t.Errorf("Resize size = %dx%d, want 8x2", resized.Spec.Width, resized.Spec.Height)
	}
}

func TestResizeDefaultsToBilinearWhenScalerNil(t *testing.T) {
	buf := solidBuf(4, 4, 1, 1, 1, 1)
	resized := buf.Resize(2, 2, nil)
	if resized.Spec.Width != 2 || resized.Spec.Height != 2 {
		t.Errorf("Resize size = %dx%d, want 2x2", resized.Spec.Width, resized.Spec.Height)
	}
}

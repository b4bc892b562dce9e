// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package node

import "toucango/imageio"

// Fill is a generator node that produces a constant-color frame at a
// given size — used as the graph's initial root and as the
// placeholder for Gap items.
type Fill struct {
	Base
	Width, Height int
	Color         [4]float64
}

// NewFill creates a Fill node of (width, height) filled with color
// (defaulting to opaque black if color is the zero value, whatever the
// width and height).
func NewFill(label string, width, height int, color [4]float64) *Fill {
	if color == ([4]float64{}) {
		color = [4]float64{0, 0, 0, 1}
	}
	return &Fill{
		Base:   NewBase(label),
		Width:  width,
		Height: height,
		Color:  color,
	}
}

// Exec returns a freshly allocated buffer filled with Color.
func (f *Fill) Exec() (*imageio.ImageBuf, error) {
	spec := imageio.NewImageSpec(f.Width, f.Height, 4, imageio.ComponentU8)
	buf := imageio.NewImageBuf(spec)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			for c := 0; c < 4; c++ {
				buf.Set(x, y, c, f.Color[c])
			}
		}
	}
	return buf, nil
}

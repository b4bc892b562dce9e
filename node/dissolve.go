// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package node

import "toucango/imageio"

// Dissolve is the built-in transition fallback node, used when the
// host has no plugin registered under the transition's own name.
// Given value in [0,1], it cross-fades SourceFrom into SourceTo
// pixel-wise.
type Dissolve struct {
	Base
	SourceFrom, SourceTo Node
	Value                float64
}

// NewDissolve creates a Dissolve node blending from into to by value.
func NewDissolve(label string, from, to Node, value float64) *Dissolve {
	return &Dissolve{
		Base:       NewBase(label, from, to),
		SourceFrom: from,
		SourceTo:   to,
		Value:      value,
	}
}

// Exec evaluates both sources at the same effective time and blends
// them.
func (d *Dissolve) Exec() (*imageio.ImageBuf, error) {
	t := EffectiveTime(d)
	d.SourceFrom.SetTime(t)
	d.SourceTo.SetTime(t)

	from, err := d.SourceFrom.Exec()
	if err != nil {
		return nil, err
	}
	to, err := d.SourceTo.Exec()
	if err != nil {
		return nil, err
	}

	out := imageio.NewImageBuf(from.Spec)
	v := d.Value
	for y := 0; y < out.Spec.Height; y++ {
		for x := 0; x < out.Spec.Width; x++ {
			for c := 0; c < out.Spec.ChannelCount; c++ {
				out.Set(x, y, c, from.At(x, y, c)*(1-v)+to.At(x, y, c)*v)
			}
		}
	}
	return out, nil
}

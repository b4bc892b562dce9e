// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package node

import (
	"math"

	"toucango/imageio"
	"toucango/opentime"
)

// LinearTimeWarp evaluates its single input at floor((t-0)*scalar)
// expressed in the time's own rate. A negative scalar reflects time
// around Duration first, matching a reversed-playback time warp.
type LinearTimeWarp struct {
	Base
	Input    Node
	Scalar   float64
	Duration opentime.RationalTime
}

// NewLinearTimeWarp creates a LinearTimeWarp node wrapping input.
func NewLinearTimeWarp(label string, input Node, scalar float64, duration opentime.RationalTime) *LinearTimeWarp {
	return &LinearTimeWarp{
		Base:     NewBase(label, input),
		Input:    input,
		Scalar:   scalar,
		Duration: duration,
	}
}

// Exec computes the warped time and forwards to Input.
func (w *LinearTimeWarp) Exec() (*imageio.ImageBuf, error) {
	t := EffectiveTime(w)
	rate := t.Rate()
	if rate <= 0 {
		rate = 24.0
	}

	value := t.Value()
	if w.Scalar < 0 {
		durValue := w.Duration.ValueRescaledTo(rate)
		value = durValue - 1.0/rate - value
		value *= math.Abs(w.Scalar)
	} else {
		value *= w.Scalar
	}

	warped := opentime.NewRationalTime(math.Floor(value), rate)
	w.Input.SetTime(warped)
	return w.Input.Exec()
}

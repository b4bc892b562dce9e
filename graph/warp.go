// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package graph

import (
	"math"

	"toucango/node"
	"toucango/opentime"
	"toucango/otio"
)

// warpScalar reports the effective linear-time-warp scalar for effect,
// and whether effect is a time warp at all. FreezeFrame always holds
// its time steady, matching node.LinearTimeWarp's scalar-0 case.
func warpScalar(effect otio.Effect) (scalar float64, isWarp bool) {
	switch e := effect.(type) {
	case *otio.LinearTimeWarp:
		return e.TimeScalar(), true
	case *otio.FreezeFrame:
		return e.TimeScalar(), true
	default:
		return 0, false
	}
}

func filterWarpEffects(effects []otio.Effect) []otio.Effect {
	var out []otio.Effect
	for _, e := range effects {
		if _, ok := warpScalar(e); ok {
			out = append(out, e)
		}
	}
	return out
}

func filterNonWarpEffects(effects []otio.Effect) []otio.Effect {
	var out []otio.Effect
	for _, e := range effects {
		if _, ok := warpScalar(e); !ok {
			out = append(out, e)
		}
	}
	return out
}

// applyLinearWarp mirrors node.LinearTimeWarp.Exec's arithmetic exactly,
// so the analytic time used to pick an active item/transition at
// compile time agrees with what the real warp node computes at render
// time. A negative scalar reflects time around the warp's duration.
func applyLinearWarp(t, duration opentime.RationalTime, scalar float64) opentime.RationalTime {
	rate := t.Rate()
	if rate <= 0 {
		rate = 24.0
	}
	value := t.Value()
	if scalar < 0 {
		durValue := duration.ValueRescaledTo(rate)
		value = durValue - 1.0/rate - value
		value *= math.Abs(scalar)
	} else {
		value *= scalar
	}
	return opentime.NewRationalTime(math.Floor(value), rate)
}

// applyWarpChainAnalytic runs t through every warp effect in warps, in
// listed order, producing the derived time used to pick the active
// item or transition. Used purely for structural decisions; the
// runtime-correct transform is realized separately by buildWarpChain.
func applyWarpChainAnalytic(t opentime.RationalTime, warps []otio.Effect, duration opentime.RationalTime) opentime.RationalTime {
	for _, eff := range warps {
		scalar, _ := warpScalar(eff)
		t = applyLinearWarp(t, duration, scalar)
	}
	return t
}

// buildWarpChain wires real node.LinearTimeWarp instances around input,
// one per warp effect, so the compiled graph performs the same time
// transform at Exec() time that applyWarpChainAnalytic computed for
// structural picks. warps[0] must be the first transform applied to
// the time the caller will eventually set on the returned node, so it
// is wrapped last (outermost); the ones after it nest progressively
// closer to input.
func buildWarpChain(label string, input node.Node, warps []otio.Effect, duration opentime.RationalTime) node.Node {
	out := input
	for i := len(warps) - 1; i >= 0; i-- {
		scalar, _ := warpScalar(warps[i])
		out = node.NewLinearTimeWarp(label, out, scalar, duration)
	}
	return out
}

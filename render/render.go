// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

// Package render drives a graph.Compiler and an effect host to
// produce a single frame buffer for an arbitrary query time, clamping
// to the timeline's range and resizing to a caller-requested size.
package render

import (
	"fmt"

	xdraw "golang.org/x/image/draw"

	"toucango/graph"
	"toucango/host"
	"toucango/imageio"
	"toucango/opentime"
	"toucango/wrapper"
)

// Driver evaluates frames from a wrapped timeline through a graph
// compiler and effect host. A fresh graph is compiled for every Frame
// call; the Driver's one Compiler keeps its Read-node cache and its
// probed image size across calls.
type Driver struct {
	wrapper  *wrapper.TimelineWrapper
	compiler *graph.Compiler
	host     *host.Host
	scaler   xdraw.Scaler
}

// NewDriver builds a Driver over an already-opened timeline wrapper
// and host. A nil scaler defaults to bilinear resampling.
func NewDriver(w *wrapper.TimelineWrapper, h *host.Host, scaler xdraw.Scaler) *Driver {
	if scaler == nil {
		scaler = xdraw.BiLinear
	}
	return &Driver{
		wrapper:  w,
		compiler: graph.NewCompiler(w),
		host:     h,
		scaler:   scaler,
	}
}

// Frame clamps t to the timeline's time range, compiles and evaluates
// the image graph at the clamped time, and resizes the result to
// targetSize if it differs from the rendered size. targetSize with a
// zero Width or Height skips the resize step.
func (d *Driver) Frame(t opentime.RationalTime, targetSize imageio.ImageSpec) (*imageio.ImageBuf, error) {
	clamped, err := d.clamp(t)
	if err != nil {
		return nil, err
	}

	root, err := d.compiler.Exec(d.host, clamped)
	if err != nil {
		return nil, fmt.Errorf("render: compile: %w", err)
	}
	root.SetTime(clamped)

	buf, err := root.Exec()
	if err != nil {
		return nil, fmt.Errorf("render: exec: %w", err)
	}

	if targetSize.Width > 0 && targetSize.Height > 0 &&
		(targetSize.Width != buf.Spec.Width || targetSize.Height != buf.Spec.Height) {
		buf = buf.Resize(targetSize.Width, targetSize.Height, d.scaler)
	}
	return buf, nil
}

// clamp restricts t to the timeline's [start, end) range, per spec
// §4.J step 1. A timeline with no computable duration is returned
// unclamped so degenerate wrappers (e.g. empty stacks) still render.
func (d *Driver) clamp(t opentime.RationalTime) (opentime.RationalTime, error) {
	tr, err := d.wrapper.TimeRange()
	if err != nil {
		return t, nil
	}
	return tr.ClampedTime(t), nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

// Package node implements the polymorphic image-node runtime the
// graph compiler wires together, plus the built-in Comp/LinearTimeWarp/
// Dissolve nodes that don't require a loaded plugin.
package node

import (
	"toucango/imageio"
	"toucango/opentime"
)

// Node is a polymorphic entity in the compiled image DAG: a chain of
// nodes evaluated depth-first by the render driver.
type Node interface {
	Label() string
	Inputs() []Node
	Time() opentime.RationalTime
	SetTime(opentime.RationalTime)
	TimeOffset() (opentime.RationalTime, bool)
	Exec() (*imageio.ImageBuf, error)
}

// Base implements the shared bookkeeping every concrete Node embeds:
// label, inputs, time, and an optional time_offset.
type Base struct {
	label        string
	inputs       []Node
	time         opentime.RationalTime
	timeOffset   opentime.RationalTime
	hasOffset    bool
}

// NewBase creates a Base with the given label and inputs.
func NewBase(label string, inputs ...Node) Base {
	return Base{label: label, inputs: inputs}
}

// Label returns the node's debug/UI identifier.
func (b *Base) Label() string { return b.label }

// Inputs returns the node's child nodes, in evaluation order.
func (b *Base) Inputs() []Node { return b.inputs }

// Time returns the time this node is currently targeted at.
func (b *Base) Time() opentime.RationalTime { return b.time }

// SetTime sets the node's target time.
func (b *Base) SetTime(t opentime.RationalTime) { b.time = t }

// SetTimeOffset installs a time_offset, subtracted from Time when this
// node forwards time to its inputs.
func (b *Base) SetTimeOffset(offset opentime.RationalTime) {
	b.timeOffset = offset
	b.hasOffset = true
}

// TimeOffset returns the installed time_offset and whether one is set.
func (b *Base) TimeOffset() (opentime.RationalTime, bool) {
	return b.timeOffset, b.hasOffset
}

// EffectiveTime returns time - time_offset when a time_offset is
// installed and valid, else time unchanged — the translation from
// timeline-absolute time to media-local time every concrete node uses
// before forwarding to its inputs.
func EffectiveTime(n Node) opentime.RationalTime {
	t := n.Time()
	offset, ok := n.TimeOffset()
	if !ok || offset.IsInvalidTime() {
		return t
	}
	return t.Sub(offset)
}

// ExecInput evaluates input at n's effective time and returns its
// result, a convenience for nodes with a single pass-through input.
func ExecInput(n Node, input Node) (*imageio.ImageBuf, error) {
	input.SetTime(EffectiveTime(n))
	return input.Exec()
}

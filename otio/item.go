// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package otio

import "toucango/opentime"

// Item is a Composable that occupies a span of time in its parent
// composition: a Clip, a Gap, or a nested Stack.
type Item interface {
	Composable
	SourceRange() *opentime.TimeRange
	SetSourceRange(*opentime.TimeRange)
	Effects() []Effect
	SetEffects([]Effect)
	Markers() []*Marker
	SetMarkers([]*Marker)
	Enabled() bool
	SetEnabled(bool)
	ItemColor() *Color
	SetItemColor(*Color)
	Duration() (opentime.RationalTime, error)
	AvailableRange() (opentime.TimeRange, error)
	TrimmedRange() (opentime.TimeRange, error)
	VisibleRange() (opentime.TimeRange, error)
}

// ItemBase is embedded by every concrete Item type.
type ItemBase struct {
	ComposableBase
	sourceRange *opentime.TimeRange
	effects     []Effect
	markers     []*Marker
	enabled     bool
	color       *Color
}

// NewItemBase creates a new ItemBase.
func NewItemBase(
	name string,
	sourceRange *opentime.TimeRange,
	metadata AnyDictionary,
	effects []Effect,
	markers []*Marker,
	enabled bool,
	color *Color,
) ItemBase {
	if effects == nil {
		effects = make([]Effect, 0)
	}
	if markers == nil {
		markers = make([]*Marker, 0)
	}
	return ItemBase{
		ComposableBase: NewComposableBase(name, metadata),
		sourceRange:    sourceRange,
		effects:        effects,
		markers:        markers,
		enabled:        enabled,
		color:          color,
	}
}

// SourceRange returns the item's explicit source range, or nil if it
// should be derived from the media's available range.
func (i *ItemBase) SourceRange() *opentime.TimeRange {
	return i.sourceRange
}

// SetSourceRange sets the item's explicit source range.
func (i *ItemBase) SetSourceRange(r *opentime.TimeRange) {
	i.sourceRange = r
}

// Effects returns the item's effects, in application order.
func (i *ItemBase) Effects() []Effect {
	return i.effects
}

// SetEffects replaces the item's effects.
func (i *ItemBase) SetEffects(effects []Effect) {
	if effects == nil {
		effects = make([]Effect, 0)
	}
	i.effects = effects
}

// Markers returns the item's markers.
func (i *ItemBase) Markers() []*Marker {
	return i.markers
}

// SetMarkers replaces the item's markers.
func (i *ItemBase) SetMarkers(markers []*Marker) {
	if markers == nil {
		markers = make([]*Marker, 0)
	}
	i.markers = markers
}

// Enabled reports whether the item participates in compositing.
func (i *ItemBase) Enabled() bool {
	return i.enabled
}

// SetEnabled sets whether the item participates in compositing.
func (i *ItemBase) SetEnabled(enabled bool) {
	i.enabled = enabled
}

// ItemColor returns the item's UI color hint, if any.
func (i *ItemBase) ItemColor() *Color {
	return i.color
}

// SetItemColor sets the item's UI color hint.
func (i *ItemBase) SetItemColor(c *Color) {
	i.color = c
}

// TrimmedRange returns the item's range after applying its source range
// trim to the available range, falling back to the available range
// itself if no source range is set.
func (i *ItemBase) TrimmedRange() (opentime.TimeRange, error) {
	if i.sourceRange != nil {
		return *i.sourceRange, nil
	}
	self := i.self
	if item, ok := self.(Item); ok {
		return item.AvailableRange()
	}
	return opentime.TimeRange{}, ErrCannotComputeAvailableRange
}

// VisibleRange returns the item's trimmed range extended on either side
// to account for any adjacent Transition's offsets, matching the way a
// Transition borrows time from its neighbors without moving them.
func (i *ItemBase) VisibleRange() (opentime.TimeRange, error) {
	trimmed, err := i.selfTrimmedRange()
	if err != nil {
		return opentime.TimeRange{}, err
	}
	parent, ok := i.parent.(*Track)
	if !ok || parent == nil {
		return trimmed, nil
	}
	head, tail := parent.NeighboringTransitions(i.self)
	start := trimmed.StartTime()
	duration := trimmed.Duration()
	if head != nil {
		start = start.Sub(head.InOffset())
		duration = duration.Add(head.InOffset())
	}
	if tail != nil {
		duration = duration.Add(tail.OutOffset())
	}
	return opentime.NewTimeRange(start, duration), nil
}

func (i *ItemBase) selfTrimmedRange() (opentime.TimeRange, error) {
	if item, ok := i.self.(Item); ok {
		return item.TrimmedRange()
	}
	return i.TrimmedRange()
}

// TrimmedRangeInParent returns c's trimmed range expressed in its
// parent composition's coordinate system, or an error if c has no
// parent composition.
func TrimmedRangeInParent(c Composable) (opentime.TimeRange, error) {
	parent, ok := c.Parent().(Composition)
	if !ok || parent == nil {
		return opentime.TimeRange{}, ErrNoCommonAncestor
	}
	return parent.RangeOfChild(c)
}

func cloneSourceRange(r *opentime.TimeRange) *opentime.TimeRange {
	if r == nil {
		return nil
	}
	clone := *r
	return &clone
}

func cloneEffects(effects []Effect) []Effect {
	if effects == nil {
		return nil
	}
	clone := make([]Effect, len(effects))
	for i, e := range effects {
		if e == nil {
			continue
		}
		clone[i] = e.Clone().(Effect)
	}
	return clone
}

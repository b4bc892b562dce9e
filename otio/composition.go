// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package otio

import "toucango/opentime"

// Composition is an ordered sequence of Composable children: a Track or
// a Stack.
type Composition interface {
	Item
	Children() []Composable
	SetChildren([]Composable)
	AppendChild(Composable) error
	InsertChild(int, Composable) error
	RemoveChild(int) error
	IndexOf(Composable) int
	RangeOfChildAtIndex(int) (opentime.TimeRange, error)
	RangeOfChild(Composable) (opentime.TimeRange, error)
	FindClips(searchRange *opentime.TimeRange, shallowSearch bool) []*Clip
	FindChildren(searchRange *opentime.TimeRange, shallowSearch bool, filter func(Composable) bool) []Composable
}

// CompositionBase is embedded by every concrete Composition type.
type CompositionBase struct {
	ItemBase
	children []Composable
}

// NewCompositionBase creates a new CompositionBase.
func NewCompositionBase(
	name string,
	sourceRange *opentime.TimeRange,
	metadata AnyDictionary,
	effects []Effect,
	markers []*Marker,
) CompositionBase {
	return CompositionBase{
		ItemBase: NewItemBase(name, sourceRange, metadata, effects, markers, true, nil),
		children: make([]Composable, 0),
	}
}

// Children returns the composition's direct children.
func (c *CompositionBase) Children() []Composable {
	return c.children
}

// SetChildren replaces the composition's children, reparenting each one.
func (c *CompositionBase) SetChildren(children []Composable) {
	for _, ch := range c.children {
		if ch != nil {
			ch.setParent(nil)
		}
	}
	c.children = children
	self, _ := c.self.(Composable)
	for _, ch := range c.children {
		if ch != nil {
			ch.setParent(self)
		}
	}
}

// AppendChild appends a child, reparenting it.
func (c *CompositionBase) AppendChild(child Composable) error {
	if child.Parent() != nil {
		return ErrChildAlreadyHasParent
	}
	self, _ := c.self.(Composable)
	child.setParent(self)
	c.children = append(c.children, child)
	return nil
}

// InsertChild inserts a child at the given index, reparenting it.
func (c *CompositionBase) InsertChild(index int, child Composable) error {
	if child.Parent() != nil {
		return ErrChildAlreadyHasParent
	}
	if index < 0 || index > len(c.children) {
		return &IndexError{Index: index, Size: len(c.children)}
	}
	self, _ := c.self.(Composable)
	child.setParent(self)
	c.children = append(c.children, nil)
	copy(c.children[index+1:], c.children[index:])
	c.children[index] = child
	return nil
}

// RemoveChild removes the child at the given index, unparenting it.
func (c *CompositionBase) RemoveChild(index int) error {
	if index < 0 || index >= len(c.children) {
		return &IndexError{Index: index, Size: len(c.children)}
	}
	c.children[index].setParent(nil)
	c.children = append(c.children[:index], c.children[index+1:]...)
	return nil
}

// IndexOf returns the index of child among the composition's children,
// or -1 if child is not a direct child.
func (c *CompositionBase) IndexOf(child Composable) int {
	for i, ch := range c.children {
		if ch == child {
			return i
		}
	}
	return -1
}

// RangeOfChild returns the trimmed range of child expressed in this
// composition's coordinate system.
func (c *CompositionBase) RangeOfChild(child Composable) (opentime.TimeRange, error) {
	idx := c.IndexOf(child)
	if idx < 0 {
		return opentime.TimeRange{}, ErrNotAChild
	}
	return c.RangeOfChildAtIndex(idx)
}

// RangeOfChildAtIndex returns the trimmed range, in this composition's
// coordinate system, of the child at index. Transitions are excluded
// from the running offset (Visible()==false) but still occupy zero
// width in the parent's timeline.
func (c *CompositionBase) RangeOfChildAtIndex(index int) (opentime.TimeRange, error) {
	if index < 0 || index >= len(c.children) {
		return opentime.TimeRange{}, &IndexError{Index: index, Size: len(c.children)}
	}

	var offset opentime.RationalTime
	for i := 0; i < index; i++ {
		ch := c.children[i]
		if !ch.Visible() {
			continue
		}
		item, ok := ch.(Item)
		if !ok {
			continue
		}
		d, err := item.TrimmedRange()
		if err != nil {
			return opentime.TimeRange{}, err
		}
		offset = offset.Add(d.Duration())
	}

	target := c.children[index]
	if !target.Visible() {
		return opentime.NewTimeRangeFromStartTime(offset), nil
	}
	item, ok := target.(Item)
	if !ok {
		return opentime.TimeRange{}, &TypeMismatchError{Expected: "Item", Got: target.SchemaName()}
	}
	d, err := item.TrimmedRange()
	if err != nil {
		return opentime.TimeRange{}, err
	}
	return opentime.NewTimeRange(offset, d.Duration()), nil
}

// FindClips walks the composition tree and returns every Clip in it.
// searchRange is passed on to FindChildren, which does not consult it,
// so clips are not filtered by time range.
// When shallowSearch is true, nested compositions are not descended into.
func (c *CompositionBase) FindClips(searchRange *opentime.TimeRange, shallowSearch bool) []*Clip {
	var result []*Clip
	for _, item := range c.FindChildren(searchRange, shallowSearch, func(ch Composable) bool {
		_, ok := ch.(*Clip)
		return ok
	}) {
		result = append(result, item.(*Clip))
	}
	return result
}

// FindChildren walks the composition tree and returns every descendant
// matching filter (a nil filter matches everything).
func (c *CompositionBase) FindChildren(searchRange *opentime.TimeRange, shallowSearch bool, filter func(Composable) bool) []Composable {
	var result []Composable
	for _, child := range c.children {
		if filter == nil || filter(child) {
			result = append(result, child)
		}
		if shallowSearch {
			continue
		}
		if nested, ok := child.(Composition); ok {
			result = append(result, nested.FindChildren(searchRange, shallowSearch, filter)...)
		}
	}
	return result
}

// AvailableImageBounds returns the union of all children's image bounds.
func (c *CompositionBase) AvailableImageBounds() (*Box2d, error) {
	var bounds *Box2d
	for _, item := range c.FindChildren(nil, true, nil) {
		clip, ok := item.(*Clip)
		if !ok {
			continue
		}
		b, err := clip.AvailableImageBounds()
		if err != nil || b == nil {
			continue
		}
		if bounds == nil {
			copy := *b
			bounds = &copy
		} else {
			extended := bounds.Extend(*b)
			bounds = &extended
		}
	}
	return bounds, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package otio

// Composable is anything that can be a direct child of a Composition
// (Track or Stack): an Item (Clip, Gap, nested Stack) or a Transition.
type Composable interface {
	SerializableObject
	Parent() Composable
	setParent(Composable)
	Visible() bool
	Overlapping() bool
}

// ComposableBase is embedded by every concrete Composable type. It tracks
// the object's parent in the composition tree and, via Self/SetSelf,
// the concrete type sitting on top of the embedding chain so that base
// methods can hand back the right dynamic type where Go's lack of
// virtual dispatch would otherwise return the base.
type ComposableBase struct {
	SerializableObjectWithMetadataBase
	parent Composable
	self   Composable
}

// NewComposableBase creates a new ComposableBase with the given name and metadata.
func NewComposableBase(name string, metadata AnyDictionary) ComposableBase {
	return ComposableBase{
		SerializableObjectWithMetadataBase: NewSerializableObjectWithMetadataBase(name, metadata),
	}
}

// Self returns the concrete Composable this base is embedded in.
func (c *ComposableBase) Self() Composable {
	return c.self
}

// SetSelf records the concrete Composable this base is embedded in.
// Every constructor must call this immediately after allocating the
// concrete value.
func (c *ComposableBase) SetSelf(self Composable) {
	c.self = self
}

// Parent returns the Composition this object is a child of, or nil.
func (c *ComposableBase) Parent() Composable {
	return c.parent
}

// setParent records the Composition this object is a child of.
func (c *ComposableBase) setParent(parent Composable) {
	c.parent = parent
}

// Visible reports whether this object occupies visible space in its
// track. Items are visible by default; Transition overrides this to false.
func (c *ComposableBase) Visible() bool {
	return true
}

// Overlapping reports whether this object overlaps its neighbors rather
// than occupying its own span. Items are non-overlapping by default;
// Transition overrides this to true.
func (c *ComposableBase) Overlapping() bool {
	return false
}

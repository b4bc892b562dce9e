// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package otio

import (
	"encoding/json"

	"toucango/opentime"
)

// StackSchema is the schema for Stack.
var StackSchema = Schema{Name: "Stack", Version: 1}

// Stack is a Composition whose children play back simultaneously,
// composited from bottom to top.
type Stack struct {
	CompositionBase
}

// NewStack creates a new Stack.
func NewStack(
	name string,
	sourceRange *opentime.TimeRange,
	metadata AnyDictionary,
	effects []Effect,
	markers []*Marker,
	children []Composable,
) *Stack {
	s := &Stack{
		CompositionBase: NewCompositionBase(name, sourceRange, metadata, effects, markers),
	}
	s.SetSelf(s)
	for _, child := range children {
		_ = s.AppendChild(child)
	}
	return s
}

// Duration returns the duration of the longest visible child.
func (s *Stack) Duration() (opentime.RationalTime, error) {
	r, err := s.AvailableRange()
	if err != nil {
		return opentime.RationalTime{}, err
	}
	return r.Duration(), nil
}

// AvailableRange returns the stack's available range: zero to the
// longest of its visible children's durations.
func (s *Stack) AvailableRange() (opentime.TimeRange, error) {
	var longest opentime.RationalTime
	rate := 24.0
	for _, child := range s.children {
		if !child.Visible() {
			continue
		}
		item, ok := child.(Item)
		if !ok {
			continue
		}
		r, err := item.TrimmedRange()
		if err != nil {
			return opentime.TimeRange{}, err
		}
		if r.Duration().Rate() > 0 {
			rate = r.Duration().Rate()
		}
		if r.Duration().Cmp(longest) > 0 {
			longest = r.Duration()
		}
	}
	return opentime.NewTimeRange(opentime.NewRationalTime(0, rate), longest), nil
}

// SchemaName returns the schema name.
func (s *Stack) SchemaName() string { return StackSchema.Name }

// SchemaVersion returns the schema version.
func (s *Stack) SchemaVersion() int { return StackSchema.Version }

// Clone creates a deep copy.
func (s *Stack) Clone() SerializableObject {
	clone := &Stack{
		CompositionBase: CompositionBase{
			ItemBase: ItemBase{
				ComposableBase: ComposableBase{
					SerializableObjectWithMetadataBase: SerializableObjectWithMetadataBase{
						name:     s.name,
						metadata: CloneAnyDictionary(s.metadata),
					},
				},
				sourceRange: cloneSourceRange(s.sourceRange),
				effects:     cloneEffects(s.effects),
				markers:     cloneMarkers(s.markers),
				enabled:     s.enabled,
				color:       cloneColor(s.color),
			},
			children: make([]Composable, len(s.children)),
		},
	}
	clone.SetSelf(clone)
	for i, ch := range s.children {
		childClone := ch.Clone().(Composable)
		childClone.setParent(clone)
		clone.children[i] = childClone
	}
	return clone
}

// IsEquivalentTo returns true if equivalent.
func (s *Stack) IsEquivalentTo(other SerializableObject) bool {
	otherS, ok := other.(*Stack)
	if !ok {
		return false
	}
	if s.name != otherS.name || len(s.children) != len(otherS.children) {
		return false
	}
	for i, ch := range s.children {
		if !ch.IsEquivalentTo(otherS.children[i]) {
			return false
		}
	}
	return true
}

type stackJSON struct {
	Schema      string              `json:"OTIO_SCHEMA"`
	Name        string              `json:"name"`
	Metadata    AnyDictionary       `json:"metadata"`
	SourceRange *opentime.TimeRange `json:"source_range"`
	Children    []RawMessage        `json:"children"`
}

// MarshalJSON implements json.Marshaler.
func (s *Stack) MarshalJSON() ([]byte, error) {
	children := make([]RawMessage, len(s.children))
	for i, ch := range s.children {
		data, err := json.Marshal(ch)
		if err != nil {
			return nil, err
		}
		children[i] = data
	}
	return json.Marshal(&stackJSON{
		Schema:      StackSchema.String(),
		Name:        s.name,
		Metadata:    s.metadata,
		SourceRange: s.sourceRange,
		Children:    children,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Stack) UnmarshalJSON(data []byte) error {
	var j stackJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	s.name = j.Name
	s.metadata = j.Metadata
	if s.metadata == nil {
		s.metadata = make(AnyDictionary)
	}
	s.sourceRange = j.SourceRange
	s.children = make([]Composable, len(j.Children))
	for i, data := range j.Children {
		obj, err := FromJSONString(string(data))
		if err != nil {
			return err
		}
		child, ok := obj.(Composable)
		if !ok {
			return &TypeMismatchError{Expected: "Composable", Got: obj.SchemaName()}
		}
		child.setParent(s)
		s.children[i] = child
	}
	s.SetSelf(s)
	return nil
}

func init() {
	RegisterSchema(StackSchema, func() SerializableObject {
		return NewStack("", nil, nil, nil, nil, nil)
	})
}

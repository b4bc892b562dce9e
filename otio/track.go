// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package otio

import (
	"encoding/json"

	"toucango/opentime"
)

// TrackKind identifies what a Track carries.
type TrackKind string

const (
	// TrackKindVideo marks a track as carrying video.
	TrackKindVideo TrackKind = "Video"
	// TrackKindAudio marks a track as carrying audio.
	TrackKindAudio TrackKind = "Audio"
)

// TrackSchema is the schema for Track.
var TrackSchema = Schema{Name: "Track", Version: 1}

// Track is a Composition whose children play back sequentially.
type Track struct {
	CompositionBase
	kind TrackKind
}

// NewTrack creates a new Track.
func NewTrack(
	name string,
	sourceRange *opentime.TimeRange,
	kind TrackKind,
	metadata AnyDictionary,
	effects []Effect,
) *Track {
	if kind == "" {
		kind = TrackKindVideo
	}
	t := &Track{
		CompositionBase: NewCompositionBase(name, sourceRange, metadata, effects, nil),
		kind:            kind,
	}
	t.SetSelf(t)
	return t
}

// Kind returns the track's kind (video or audio).
func (t *Track) Kind() TrackKind {
	return t.kind
}

// SetKind sets the track's kind.
func (t *Track) SetKind(kind TrackKind) {
	t.kind = kind
}

// Duration returns the sum of the durations of the track's visible children.
func (t *Track) Duration() (opentime.RationalTime, error) {
	r, err := t.AvailableRange()
	if err != nil {
		return opentime.RationalTime{}, err
	}
	return r.Duration(), nil
}

// AvailableRange returns the track's available range: zero to the sum
// of the durations of all visible children.
func (t *Track) AvailableRange() (opentime.TimeRange, error) {
	var total opentime.RationalTime
	rate := 24.0
	for _, child := range t.children {
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
		total = total.Add(r.Duration())
	}
	return opentime.NewTimeRange(opentime.NewRationalTime(0, rate), total), nil
}

// ItemAt returns the child occupying time at in the track's own
// coordinate system, or nil if none does.
func (t *Track) ItemAt(at opentime.RationalTime) Composable {
	for _, child := range t.children {
		if !child.Visible() {
			continue
		}
		r, err := TrimmedRangeInParent(child)
		if err != nil {
			continue
		}
		if r.Contains(at) {
			return child
		}
	}
	return nil
}

// NeighborItem returns the visible item delta positions away from child
// among the track's visible children (delta -2,-1,1,2 for prev2/prev/
// next/next2), or nil if out of range.
func (t *Track) NeighborItem(child Composable, delta int) Composable {
	visible := make([]Composable, 0, len(t.children))
	target := -1
	idx := t.IndexOf(child)
	for _, ch := range t.children {
		if !ch.Visible() {
			continue
		}
		if t.IndexOf(ch) == idx {
			target = len(visible)
		}
		visible = append(visible, ch)
	}
	if target < 0 {
		return nil
	}
	i := target + delta
	if i < 0 || i >= len(visible) {
		return nil
	}
	return visible[i]
}

// NeighboringTransitions returns the Transition immediately before and
// immediately after child in the raw (unfiltered) child list, if present.
func (t *Track) NeighboringTransitions(child Composable) (before, after *Transition) {
	idx := t.IndexOf(child)
	if idx < 0 {
		return nil, nil
	}
	if idx > 0 {
		if tr, ok := t.children[idx-1].(*Transition); ok {
			before = tr
		}
	}
	if idx < len(t.children)-1 {
		if tr, ok := t.children[idx+1].(*Transition); ok {
			after = tr
		}
	}
	return before, after
}

// SchemaName returns the schema name.
func (t *Track) SchemaName() string { return TrackSchema.Name }

// SchemaVersion returns the schema version.
func (t *Track) SchemaVersion() int { return TrackSchema.Version }

// Clone creates a deep copy.
func (t *Track) Clone() SerializableObject {
	clone := &Track{
		CompositionBase: CompositionBase{
			ItemBase: ItemBase{
				ComposableBase: ComposableBase{
					SerializableObjectWithMetadataBase: SerializableObjectWithMetadataBase{
						name:     t.name,
						metadata: CloneAnyDictionary(t.metadata),
					},
				},
				sourceRange: cloneSourceRange(t.sourceRange),
				effects:     cloneEffects(t.effects),
				markers:     cloneMarkers(t.markers),
				enabled:     t.enabled,
				color:       cloneColor(t.color),
			},
			children: make([]Composable, len(t.children)),
		},
		kind: t.kind,
	}
	clone.SetSelf(clone)
	for i, ch := range t.children {
		childClone := ch.Clone().(Composable)
		childClone.setParent(clone)
		clone.children[i] = childClone
	}
	return clone
}

// IsEquivalentTo returns true if equivalent.
func (t *Track) IsEquivalentTo(other SerializableObject) bool {
	otherT, ok := other.(*Track)
	if !ok {
		return false
	}
	if t.name != otherT.name || t.kind != otherT.kind || len(t.children) != len(otherT.children) {
		return false
	}
	for i, ch := range t.children {
		if !ch.IsEquivalentTo(otherT.children[i]) {
			return false
		}
	}
	return true
}

type trackJSON struct {
	Schema      string              `json:"OTIO_SCHEMA"`
	Name        string              `json:"name"`
	Metadata    AnyDictionary       `json:"metadata"`
	SourceRange *opentime.TimeRange `json:"source_range"`
	Kind        TrackKind           `json:"kind"`
	Children    []RawMessage        `json:"children"`
}

// MarshalJSON implements json.Marshaler.
func (t *Track) MarshalJSON() ([]byte, error) {
	children := make([]RawMessage, len(t.children))
	for i, ch := range t.children {
		data, err := json.Marshal(ch)
		if err != nil {
			return nil, err
		}
		children[i] = data
	}
	return json.Marshal(&trackJSON{
		Schema:      TrackSchema.String(),
		Name:        t.name,
		Metadata:    t.metadata,
		SourceRange: t.sourceRange,
		Kind:        t.kind,
		Children:    children,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Track) UnmarshalJSON(data []byte) error {
	var j trackJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	t.name = j.Name
	t.metadata = j.Metadata
	if t.metadata == nil {
		t.metadata = make(AnyDictionary)
	}
	t.sourceRange = j.SourceRange
	t.kind = j.Kind
	if t.kind == "" {
		t.kind = TrackKindVideo
	}
	t.children = make([]Composable, len(j.Children))
	for i, data := range j.Children {
		obj, err := FromJSONString(string(data))
		if err != nil {
			return err
		}
		child, ok := obj.(Composable)
		if !ok {
			return &TypeMismatchError{Expected: "Composable", Got: obj.SchemaName()}
		}
		child.setParent(t)
		t.children[i] = child
	}
	t.SetSelf(t)
	return nil
}

func init() {
	RegisterSchema(TrackSchema, func() SerializableObject {
		return NewTrack("", nil, TrackKindVideo, nil, nil)
	})
}

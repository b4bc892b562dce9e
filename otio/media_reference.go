// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package otio

import "toucango/opentime"

// MediaReference points at (or describes) the media backing a Clip:
// an ExternalReference, ImageSequenceReference, GeneratorReference, or
// MissingReference.
type MediaReference interface {
	SerializableObject
	AvailableRange() *opentime.TimeRange
	SetAvailableRange(*opentime.TimeRange)
	AvailableImageBounds() *Box2d
	SetAvailableImageBounds(*Box2d)
}

// MediaReferenceBase is embedded by every concrete MediaReference type.
type MediaReferenceBase struct {
	SerializableObjectWithMetadataBase
	availableRange       *opentime.TimeRange
	availableImageBounds *Box2d
}

// NewMediaReferenceBase creates a new MediaReferenceBase.
func NewMediaReferenceBase(name string, availableRange *opentime.TimeRange, metadata AnyDictionary, availableImageBounds *Box2d) MediaReferenceBase {
	return MediaReferenceBase{
		SerializableObjectWithMetadataBase: NewSerializableObjectWithMetadataBase(name, metadata),
		availableRange:                     availableRange,
		availableImageBounds:               availableImageBounds,
	}
}

// AvailableRange returns the available time range of the referenced media, if known.
func (m *MediaReferenceBase) AvailableRange() *opentime.TimeRange {
	return m.availableRange
}

// SetAvailableRange sets the available time range of the referenced media.
func (m *MediaReferenceBase) SetAvailableRange(r *opentime.TimeRange) {
	m.availableRange = r
}

// AvailableImageBounds returns the available pixel bounds of the referenced media, if known.
func (m *MediaReferenceBase) AvailableImageBounds() *Box2d {
	return m.availableImageBounds
}

// SetAvailableImageBounds sets the available pixel bounds of the referenced media.
func (m *MediaReferenceBase) SetAvailableImageBounds(b *Box2d) {
	m.availableImageBounds = b
}

func cloneAvailableRange(r *opentime.TimeRange) *opentime.TimeRange {
	if r == nil {
		return nil
	}
	clone := *r
	return &clone
}

// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package otio

import (
	"encoding/json"

	"toucango/opentime"
)

// MissingReferenceSchema is the schema for MissingReference.
var MissingReferenceSchema = Schema{Name: "MissingReference", Version: 1}

// MissingReference is a placeholder MediaReference for a Clip with no
// known media, used by default when a Clip is created without one.
type MissingReference struct {
	MediaReferenceBase
}

// NewMissingReference creates a new MissingReference.
func NewMissingReference(name string, availableRange *opentime.TimeRange, metadata AnyDictionary) *MissingReference {
	return &MissingReference{
		MediaReferenceBase: NewMediaReferenceBase(name, availableRange, metadata, nil),
	}
}

// SchemaName returns the schema name.
func (m *MissingReference) SchemaName() string { return MissingReferenceSchema.Name }

// SchemaVersion returns the schema version.
func (m *MissingReference) SchemaVersion() int { return MissingReferenceSchema.Version }

// Clone creates a deep copy.
func (m *MissingReference) Clone() SerializableObject {
	return &MissingReference{
		MediaReferenceBase: MediaReferenceBase{
			SerializableObjectWithMetadataBase: SerializableObjectWithMetadataBase{
				name:     m.name,
				metadata: CloneAnyDictionary(m.metadata),
			},
			availableRange:       cloneAvailableRange(m.availableRange),
			availableImageBounds: cloneBox2d(m.availableImageBounds),
		},
	}
}

// IsEquivalentTo returns true if equivalent.
func (m *MissingReference) IsEquivalentTo(other SerializableObject) bool {
	otherM, ok := other.(*MissingReference)
	if !ok {
		return false
	}
	return m.name == otherM.name
}

type missingReferenceJSON struct {
	Schema               string              `json:"OTIO_SCHEMA"`
	Name                 string              `json:"name"`
	Metadata             AnyDictionary       `json:"metadata"`
	AvailableRange       *opentime.TimeRange `json:"available_range"`
	AvailableImageBounds *Box2d              `json:"available_image_bounds"`
}

// MarshalJSON implements json.Marshaler.
func (m *MissingReference) MarshalJSON() ([]byte, error) {
	return json.Marshal(&missingReferenceJSON{
		Schema:               MissingReferenceSchema.String(),
		Name:                 m.name,
		Metadata:             m.metadata,
		AvailableRange:       m.availableRange,
		AvailableImageBounds: m.availableImageBounds,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *MissingReference) UnmarshalJSON(data []byte) error {
	var j missingReferenceJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	m.name = j.Name
	m.metadata = j.Metadata
	if m.metadata == nil {
		m.metadata = make(AnyDictionary)
	}
	m.availableRange = j.AvailableRange
	m.availableImageBounds = j.AvailableImageBounds
	return nil
}

func init() {
	RegisterSchema(MissingReferenceSchema, func() SerializableObject {
		return NewMissingReference("", nil, nil)
	})
}

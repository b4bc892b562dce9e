// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package otio

// SerializableObjectWithMetadataBase is embedded by every concrete schema
// type that carries a name and a free-form metadata dictionary.
type SerializableObjectWithMetadataBase struct {
	name     string
	metadata AnyDictionary
}

// NewSerializableObjectWithMetadataBase creates a new base with the given
// name and metadata, normalizing a nil metadata map to an empty one.
func NewSerializableObjectWithMetadataBase(name string, metadata AnyDictionary) SerializableObjectWithMetadataBase {
	if metadata == nil {
		metadata = make(AnyDictionary)
	}
	return SerializableObjectWithMetadataBase{name: name, metadata: metadata}
}

// Name returns the object's name.
func (b *SerializableObjectWithMetadataBase) Name() string {
	return b.name
}

// SetName sets the object's name.
func (b *SerializableObjectWithMetadataBase) SetName(name string) {
	b.name = name
}

// Metadata returns the object's metadata dictionary.
func (b *SerializableObjectWithMetadataBase) Metadata() AnyDictionary {
	return b.metadata
}

// SetMetadata replaces the object's metadata dictionary.
func (b *SerializableObjectWithMetadataBase) SetMetadata(metadata AnyDictionary) {
	if metadata == nil {
		metadata = make(AnyDictionary)
	}
	b.metadata = metadata
}

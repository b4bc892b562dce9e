// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package otio

import "encoding/json"

// Effect is an operation applied to an Item, identified by an
// implementation-defined effect name (e.g. "LinearTimeWarp", "Blur").
type Effect interface {
	SerializableObject
	EffectName() string
	SetEffectName(string)
}

// EffectBase is embedded by every concrete Effect type.
type EffectBase struct {
	SerializableObjectWithMetadataBase
	effectName string
}

// NewEffectBase creates a new EffectBase.
func NewEffectBase(name, effectName string, metadata AnyDictionary) EffectBase {
	return EffectBase{
		SerializableObjectWithMetadataBase: NewSerializableObjectWithMetadataBase(name, metadata),
		effectName:                         effectName,
	}
}

// EffectName returns the effect's implementation name.
func (e *EffectBase) EffectName() string {
	return e.effectName
}

// SetEffectName sets the effect's implementation name.
func (e *EffectBase) SetEffectName(effectName string) {
	e.effectName = effectName
}

// effectJSON is the shared JSON representation for plain Effect and
// TimeEffect leaves (types that carry nothing beyond name/metadata/effect_name).
type effectJSON struct {
	Schema     string        `json:"OTIO_SCHEMA"`
	Name       string        `json:"name"`
	Metadata   AnyDictionary `json:"metadata"`
	EffectName string        `json:"effect_name"`
}

// EffectSchema is the schema for a plain, generic Effect.
var EffectSchema = Schema{Name: "Effect", Version: 1}

// EffectImpl is the base implementation of a plain Effect.
type EffectImpl struct {
	EffectBase
}

// NewEffect creates a new plain Effect.
func NewEffect(name, effectName string, metadata AnyDictionary) *EffectImpl {
	return &EffectImpl{EffectBase: NewEffectBase(name, effectName, metadata)}
}

// SchemaName returns the schema name.
func (e *EffectImpl) SchemaName() string { return EffectSchema.Name }

// SchemaVersion returns the schema version.
func (e *EffectImpl) SchemaVersion() int { return EffectSchema.Version }

// Clone creates a deep copy.
func (e *EffectImpl) Clone() SerializableObject {
	return &EffectImpl{
		EffectBase: EffectBase{
			SerializableObjectWithMetadataBase: SerializableObjectWithMetadataBase{
				name:     e.name,
				metadata: CloneAnyDictionary(e.metadata),
			},
			effectName: e.effectName,
		},
	}
}

// IsEquivalentTo returns true if equivalent.
func (e *EffectImpl) IsEquivalentTo(other SerializableObject) bool {
	otherE, ok := other.(*EffectImpl)
	if !ok {
		return false
	}
	return e.name == otherE.name && e.effectName == otherE.effectName
}

// MarshalJSON implements json.Marshaler.
func (e *EffectImpl) MarshalJSON() ([]byte, error) {
	return json.Marshal(&effectJSON{
		Schema:     EffectSchema.String(),
		Name:       e.name,
		Metadata:   e.metadata,
		EffectName: e.effectName,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *EffectImpl) UnmarshalJSON(data []byte) error {
	var j effectJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	e.name = j.Name
	e.metadata = j.Metadata
	if e.metadata == nil {
		e.metadata = make(AnyDictionary)
	}
	e.effectName = j.EffectName
	return nil
}

func init() {
	RegisterSchema(EffectSchema, func() SerializableObject {
		return NewEffect("", "", nil)
	})
}

// FreezeFrameSchema is the schema for FreezeFrame.
var FreezeFrameSchema = Schema{Name: "FreezeFrame", Version: 1}

// FreezeFrame is a time effect that holds a single frame for its entire
// duration: a LinearTimeWarp with a fixed time scalar of zero.
type FreezeFrame struct {
	EffectBase
}

// NewFreezeFrame creates a new FreezeFrame.
func NewFreezeFrame(name, effectName string, metadata AnyDictionary) *FreezeFrame {
	return &FreezeFrame{EffectBase: NewEffectBase(name, effectName, metadata)}
}

// TimeScalar returns the time scalar, always zero for a freeze frame.
func (f *FreezeFrame) TimeScalar() float64 { return 0 }

// SchemaName returns the schema name.
func (f *FreezeFrame) SchemaName() string { return FreezeFrameSchema.Name }

// SchemaVersion returns the schema version.
func (f *FreezeFrame) SchemaVersion() int { return FreezeFrameSchema.Version }

// Clone creates a deep copy.
func (f *FreezeFrame) Clone() SerializableObject {
	return &FreezeFrame{
		EffectBase: EffectBase{
			SerializableObjectWithMetadataBase: SerializableObjectWithMetadataBase{
				name:     f.name,
				metadata: CloneAnyDictionary(f.metadata),
			},
			effectName: f.effectName,
		},
	}
}

// IsEquivalentTo returns true if equivalent.
func (f *FreezeFrame) IsEquivalentTo(other SerializableObject) bool {
	otherF, ok := other.(*FreezeFrame)
	if !ok {
		return false
	}
	return f.name == otherF.name && f.effectName == otherF.effectName
}

// MarshalJSON implements json.Marshaler.
func (f *FreezeFrame) MarshalJSON() ([]byte, error) {
	return json.Marshal(&effectJSON{
		Schema:     FreezeFrameSchema.String(),
		Name:       f.name,
		Metadata:   f.metadata,
		EffectName: f.effectName,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *FreezeFrame) UnmarshalJSON(data []byte) error {
	var j effectJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	f.name = j.Name
	f.metadata = j.Metadata
	if f.metadata == nil {
		f.metadata = make(AnyDictionary)
	}
	f.effectName = j.EffectName
	return nil
}

func init() {
	RegisterSchema(FreezeFrameSchema, func() SerializableObject {
		return NewFreezeFrame("", "", nil)
	})
}

// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package otio

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/bytedance/sonic"

	"toucango/internal/jsonenc"
)

// SerializableObject is implemented by every type that can appear as a
// top-level or nested node in an OTIO document.
type SerializableObject interface {
	SchemaName() string
	SchemaVersion() int
	Clone() SerializableObject
	IsEquivalentTo(other SerializableObject) bool
	json.Marshaler
	json.Unmarshaler
}

// schemaEnvelope is used only to peek at the OTIO_SCHEMA field of a
// JSON-encoded object before dispatching to its registered factory.
type schemaEnvelope struct {
	Schema string `json:"OTIO_SCHEMA"`
}

// FromJSONBytes decodes an OTIO JSON document into its concrete
// SerializableObject, dispatching on the OTIO_SCHEMA field. Decoding uses
// sonic for speed; unknown schemas fall back to UnknownSchema so the
// document round-trips without loss.
func FromJSONBytes(data []byte) (SerializableObject, error) {
	var env schemaEnvelope
	if err := sonic.Unmarshal(data, &env); err != nil {
		return nil, &JSONError{Message: fmt.Sprintf("decoding OTIO_SCHEMA: %v", err)}
	}
	if env.Schema == "" {
		return nil, &JSONError{Message: "missing OTIO_SCHEMA field"}
	}

	name, _, _ := ParseSchema(env.Schema)
	if IsSchemaRegistered(name) {
		obj, err := CreateSchema(name)
		if err != nil {
			return nil, err
		}
		if err := sonic.Unmarshal(data, obj); err != nil {
			return nil, &JSONError{Message: fmt.Sprintf("decoding %s: %v", env.Schema, err)}
		}
		return obj, nil
	}

	var raw map[string]any
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return nil, &JSONError{Message: fmt.Sprintf("decoding unknown schema %s: %v", env.Schema, err)}
	}
	return NewUnknownSchema(env.Schema, raw), nil
}

// FromJSONString decodes an OTIO JSON document from a string.
func FromJSONString(s string) (SerializableObject, error) {
	return FromJSONBytes([]byte(s))
}

// ToJSONBytes encodes obj to its OTIO JSON representation using the
// streaming jsonenc encoder when obj has a fast-path encoder registered,
// falling back to obj's own MarshalJSON otherwise.
func ToJSONBytes(obj SerializableObject) ([]byte, error) {
	if _, ok := jsonenc.LookupBySchema(fmt.Sprintf("%s.%d", obj.SchemaName(), obj.SchemaVersion())); !ok {
		return obj.MarshalJSON()
	}
	var buf bytes.Buffer
	enc := jsonenc.NewEncoder(&buf)
	defer enc.Release()

	if err := jsonenc.EncodeValue(enc, obj); err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ToJSONString encodes obj to its OTIO JSON representation as a string.
func ToJSONString(obj SerializableObject) (string, error) {
	b, err := ToJSONBytes(obj)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ToJSONStringIndent encodes obj to an indented, human-readable JSON string.
func ToJSONStringIndent(obj SerializableObject, prefix, indent string) (string, error) {
	b, err := ToJSONBytes(obj)
	if err != nil {
		return "", err
	}
	var out bytes.Buffer
	if err := jsonIndent(&out, b, prefix, indent); err != nil {
		return "", err
	}
	return out.String(), nil
}

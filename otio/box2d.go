// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package otio

import (
	"encoding/json"
	"math"
)

// Box2d is an axis-aligned rectangle, used to describe the available
// pixel bounds of a media reference.
type Box2d struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// NewBox2d creates a new Box2d from its min and max corners.
func NewBox2d(minX, minY, maxX, maxY float64) *Box2d {
	return &Box2d{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// Extend grows b to also contain other, returning the union.
func (b Box2d) Extend(other Box2d) Box2d {
	return Box2d{
		MinX: math.Min(b.MinX, other.MinX),
		MinY: math.Min(b.MinY, other.MinY),
		MaxX: math.Max(b.MaxX, other.MaxX),
		MaxY: math.Max(b.MaxY, other.MaxY),
	}
}

func cloneBox2d(b *Box2d) *Box2d {
	if b == nil {
		return nil
	}
	clone := *b
	return &clone
}

type box2dJSON struct {
	Schema string  `json:"OTIO_SCHEMA"`
	MinX   float64 `json:"min_x"`
	MinY   float64 `json:"min_y"`
	MaxX   float64 `json:"max_x"`
	MaxY   float64 `json:"max_y"`
}

// MarshalJSON implements json.Marshaler.
func (b Box2d) MarshalJSON() ([]byte, error) {
	return json.Marshal(&box2dJSON{
		Schema: "Box2d.1",
		MinX:   b.MinX,
		MinY:   b.MinY,
		MaxX:   b.MaxX,
		MaxY:   b.MaxY,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (b *Box2d) UnmarshalJSON(data []byte) error {
	var j box2dJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	b.MinX, b.MinY, b.MaxX, b.MaxY = j.MinX, j.MinY, j.MaxX, j.MaxY
	return nil
}

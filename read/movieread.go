// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package read

import (
	"fmt"

	"toucango/imageio"
	"toucango/node"
	"toucango/opentime"
)

// Decoder is the external movie-decoder contract a MovieRead wraps.
// A concrete implementation might shell out to ffmpeg, bind a native
// decoder library, or read frames out of a pre-decoded cache; MovieRead
// itself only adapts whatever satisfies this interface onto node.Node.
type Decoder interface {
	Spec() imageio.ImageSpec
	TimeRange() opentime.TimeRange
	GetImage(t opentime.RationalTime) (*imageio.ImageBuf, error)
}

// MovieRead wraps an external Decoder, translating the node's current
// time into a GetImage call on every Exec.
type MovieRead struct {
	node.Base
	Decoder Decoder
}

// NewMovieRead creates a MovieRead over an already-opened decoder.
func NewMovieRead(label string, decoder Decoder) *MovieRead {
	return &MovieRead{
		Base:    node.NewBase(label),
		Decoder: decoder,
	}
}

// Spec returns the decoder's reported image spec.
func (r *MovieRead) Spec() imageio.ImageSpec { return r.Decoder.Spec() }

// TimeRange returns the decoder's reported available range.
func (r *MovieRead) TimeRange() opentime.TimeRange { return r.Decoder.TimeRange() }

// Exec asks the decoder for the frame at this node's effective time.
func (r *MovieRead) Exec() (*imageio.ImageBuf, error) {
	t := node.EffectiveTime(r)
	buf, err := r.Decoder.GetImage(t)
	if err != nil {
		return nil, fmt.Errorf("read: decode frame at %v: %w", t, err)
	}
	return buf.EnsureAlpha(), nil
}

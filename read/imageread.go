// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package read

import (
	"bytes"
	"fmt"
	"os"

	"toucango/imageio"
	"toucango/node"
	"toucango/opentime"
)

// ImageRead opens a single still image, either from a filesystem path
// or from a memory byte-range inside a mapped archive, decoding the
// full image on every Exec.
type ImageRead struct {
	node.Base
	Path       string
	Memory     *ByteRange
	timeRange  opentime.TimeRange
	lastSpec   imageio.ImageSpec
}

// NewImageRead creates an ImageRead over a filesystem path.
func NewImageRead(label, path string, rate float64) *ImageRead {
	return &ImageRead{
		Base:      node.NewBase(label),
		Path:      path,
		timeRange: opentime.NewTimeRange(opentime.NewRationalTime(0, rate), opentime.NewRationalTime(1, rate)),
	}
}

// NewImageReadFromMemory creates an ImageRead over bytes inside a
// mapped archive.
func NewImageReadFromMemory(label string, mem *ByteRange, rate float64) *ImageRead {
	return &ImageRead{
		Base:      node.NewBase(label),
		Memory:    mem,
		timeRange: opentime.NewTimeRange(opentime.NewRationalTime(0, rate), opentime.NewRationalTime(1, rate)),
	}
}

// Spec returns the last decoded spec, or the zero value before the
// first Exec.
func (r *ImageRead) Spec() imageio.ImageSpec { return r.lastSpec }

// TimeRange returns the single-frame time range this read node covers.
func (r *ImageRead) TimeRange() opentime.TimeRange { return r.timeRange }

// Exec decodes the image and synthesizes an opaque alpha channel if
// the source has none.
func (r *ImageRead) Exec() (*imageio.ImageBuf, error) {
	var buf *imageio.ImageBuf
	var err error
	if r.Memory != nil {
		buf, err = imageio.Decode(bytes.NewReader(r.Memory.Data))
	} else {
		f, openErr := os.Open(r.Path)
		if openErr != nil {
			return nil, fmt.Errorf("read: open %s: %w", r.Path, openErr)
		}
		defer f.Close()
		buf, err = imageio.Decode(f)
	}
	if err != nil {
		return nil, err
	}
	buf = buf.EnsureAlpha()
	r.lastSpec = buf.Spec
	return buf, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package read

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"toucango/imageio"
	"toucango/node"
	"toucango/opentime"
)

// SequenceRead reads one frame of a numbered image sequence per Exec,
// computing the frame number from the node's current time.
type SequenceRead struct {
	node.Base
	Dir              string
	NamePrefix       string
	NameSuffix       string
	StartFrame       int
	FrameStep        int
	Rate             float64
	FrameZeroPadding int
	Memory           map[string]*ByteRange

	lastSpec imageio.ImageSpec
}

// NewSequenceRead creates a SequenceRead over the given naming scheme,
// matching toucango/otio's ImageSequenceReference fields exactly.
func NewSequenceRead(
	label string,
	dir, namePrefix, nameSuffix string,
	startFrame, frameStep int,
	rate float64,
	frameZeroPadding int,
	memory map[string]*ByteRange,
) *SequenceRead {
	if frameStep == 0 {
		frameStep = 1
	}
	return &SequenceRead{
		Base:             node.NewBase(label),
		Dir:              dir,
		NamePrefix:       namePrefix,
		NameSuffix:       nameSuffix,
		StartFrame:       startFrame,
		FrameStep:        frameStep,
		Rate:             rate,
		FrameZeroPadding: frameZeroPadding,
		Memory:           memory,
	}
}

// Spec returns the last decoded frame's spec.
func (r *SequenceRead) Spec() imageio.ImageSpec { return r.lastSpec }

// TimeRange returns [StartFrame, StartFrame+1) at Rate, whatever frame
// was last decoded; the compiler scopes this to the owning clip's range.
func (r *SequenceRead) TimeRange() opentime.TimeRange {
	return opentime.NewTimeRange(
		opentime.NewRationalTime(float64(r.StartFrame), r.Rate),
		opentime.NewRationalTime(1, r.Rate),
	)
}

// filenameForFrame formats prefix + zero-padded frame + suffix, the
// same convention as otio.ImageSequenceReference.TargetURLForImageNumber.
func (r *SequenceRead) filenameForFrame(frame int) string {
	return fmt.Sprintf("%s%0*d%s", r.NamePrefix, r.FrameZeroPadding, frame, r.NameSuffix)
}

// Exec computes the frame number from the node's current time,
// formats the filename, and decodes it from memory if a matching
// reference exists, else from disk.
func (r *SequenceRead) Exec() (*imageio.ImageBuf, error) {
	t := node.EffectiveTime(r)
	frame := int(math.Floor(t.Value()))
	name := r.filenameForFrame(frame)

	var buf *imageio.ImageBuf
	var err error
	if mem, ok := r.Memory[name]; ok {
		buf, err = imageio.Decode(bytes.NewReader(mem.Data))
	} else {
		path := filepath.Join(r.Dir, name)
		var f *os.File
		f, err = os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("read: open %s: %w", path, err)
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

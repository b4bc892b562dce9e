// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package wrapper

import (
	"fmt"
	"os"

	"toucango/imageio"
	"toucango/opentime"
)

// probeDecoder satisfies read.Decoder well enough to let the wrapper
// construct a degenerate single-clip timeline for a movie container;
// no movie-decoding library is wired into this pack (the corpus
// carries no video codec dependency), so probing is limited to
// confirming the file exists and reporting a fixed single-frame range.
// A real decoder implementation plugs in at read.NewMovieRead without
// any wrapper change.
type probeDecoder struct {
	spec imageio.ImageSpec
	tr   opentime.TimeRange
}

func newProbeDecoder(path string) (*probeDecoder, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("wrapper: probe %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("wrapper: probe %s: is a directory", path)
	}
	const rate = 24.0
	return &probeDecoder{
		spec: imageio.NewImageSpec(0, 0, 4, imageio.ComponentU8),
		tr:   opentime.NewTimeRange(opentime.NewRationalTime(0, rate), opentime.NewRationalTime(1, rate)),
	}, nil
}

func (d *probeDecoder) Spec() imageio.ImageSpec             { return d.spec }
func (d *probeDecoder) TimeRange() opentime.TimeRange       { return d.tr }
func (d *probeDecoder) GetImage(t opentime.RationalTime) (*imageio.ImageBuf, error) {
	return nil, fmt.Errorf("wrapper: no movie decoder wired for this build")
}

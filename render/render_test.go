// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package render

import (
	"os"
	"path/filepath"
	"testing"

	"toucango/host"
	"toucango/imageio"
	"toucango/opentime"
	"toucango/otio"
	"toucango/wrapper"
)

func rt(value, rate float64) opentime.RationalTime {
	return opentime.NewRationalTime(value, rate)
}

func buildOneGapTimeline(frames float64) *otio.Timeline {
	gap := otio.NewGapWithDuration(rt(frames, 24), "gap", nil)
	track := otio.NewTrack("v1", nil, otio.TrackKindVideo, nil, nil)
	_ = track.AppendChild(gap)
	stack := otio.NewStack("tracks", nil, nil, nil, nil, []otio.Composable{track})
	tl := otio.NewTimeline("tl", nil, nil)
	tl.SetTracks(stack)
	return tl
}

func TestDriverFrameClampsToTimelineRange(t *testing.T) {
	tl := buildOneGapTimeline(24)
	d := NewDriver(wrapper.NewInMemory(tl), host.New(nil), nil)

	// Requesting a time past the end of the one-second timeline must
	// clamp rather than error.
	buf, err := d.Frame(rt(1000, 24), imageio.ImageSpec{})
	if err != nil {
		t.Fatalf("Frame: %v", err)
	}
	// The timeline has no clip to probe a size from, so the background
	// Fill stays sized (0,0); clamping must still happen without error.
	if buf == nil {
		t.Fatal("expected a frame, got nil")
	}
}

// buildSingleClipTimeline writes a small solid image to disk and wraps
// it in a one-track, one-clip timeline, so the compiler's size probe
// finds a real, non-empty source spec to resize from.
func buildSingleClipTimeline(t *testing.T, width, height int) *otio.Timeline {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "frame.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	spec := imageio.NewImageSpec(width, height, 4, imageio.ComponentU8)
	if err := imageio.NewImageBuf(spec).Encode(f, ".png"); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	f.Close()

	availableRange := opentime.NewTimeRange(rt(0, 24), rt(24, 24))
	ref := otio.NewExternalReference("frame", path, &availableRange, nil, nil)
	clip := otio.NewClip("frame", ref, nil, nil, nil, nil, "", nil)
	track := otio.NewTrack("v1", nil, otio.TrackKindVideo, nil, nil)
	_ = track.AppendChild(clip)
	stack := otio.NewStack("tracks", nil, nil, nil, nil, []otio.Composable{track})
	tl := otio.NewTimeline("tl", nil, nil)
	tl.SetTracks(stack)
	return tl
}

func TestDriverFrameResizesToTargetSize(t *testing.T) {
	tl := buildSingleClipTimeline(t, 16, 8)
	d := NewDriver(wrapper.NewInMemory(tl), host.New(nil), nil)

	target := imageio.NewImageSpec(64, 32, 4, imageio.ComponentU8)
	buf, err := d.Frame(rt(0, 24), target)
	if err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if buf.Spec.Width != 64 || buf.Spec.Height != 32 {
		t.Errorf("Frame size = %dx%d, want 64x32", buf.Spec.Width, buf.Spec.Height)
	}
}

func TestDriverFrameNoResizeWhenTargetSizeEmpty(t *testing.T) {
	tl := buildOneGapTimeline(24)
	d := NewDriver(wrapper.NewInMemory(tl), host.New(nil), nil)

	buf, err := d.Frame(rt(0, 24), imageio.ImageSpec{})
	if err != nil {
		t.Fatalf("Frame: %v", err)
	}
	// No clip to probe a size from: the background Fill (and so the
	// rendered frame) stays sized (0,0) rather than an arbitrary default.
	if buf.Spec.Width != 0 || buf.Spec.Height != 0 {
		t.Errorf("expected the empty probe size 0x0, got %dx%d", buf.Spec.Width, buf.Spec.Height)
	}
}

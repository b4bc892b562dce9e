// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package wrapper

import (
	"os"
	"path/filepath"
	"testing"

	"toucango/opentime"
	"toucango/otio"
	"toucango/read"
)

func rt(value, rate float64) opentime.RationalTime {
	return opentime.NewRationalTime(value, rate)
}

func buildGapTimeline(frames float64) *otio.Timeline {
	track := otio.NewTrack("v1", nil, otio.TrackKindVideo, nil, nil)
	gap := otio.NewGapWithDuration(rt(frames, 24), "gap", nil)
	_ = track.AppendChild(gap)
	stack := otio.NewStack("tracks", nil, nil, nil, nil, []otio.Composable{track})
	tl := otio.NewTimeline("test", nil, nil)
	tl.SetTracks(stack)
	return tl
}

func TestNewInMemoryReportsPlainKind(t *testing.T) {
	w := NewInMemory(buildGapTimeline(48))
	if w.Kind() != KindPlain {
		t.Errorf("Kind() = %v, want KindPlain", w.Kind())
	}
	if w.Timeline() == nil {
		t.Fatal("expected Timeline() to return the wrapped timeline")
	}
}

func TestTimeRangeReflectsTimelineDuration(t *testing.T) {
	w := NewInMemory(buildGapTimeline(48))
	tr, err := w.TimeRange()
	if err != nil {
		t.Fatalf("TimeRange: %v", err)
	}
	if tr.Duration().Value() != 48 {
		t.Errorf("duration = %v, want 48", tr.Duration().Value())
	}
}

func TestOpenPlainParsesSerializedTimeline(t *testing.T) {
	tl := buildGapTimeline(24)
	data, err := otio.ToJSONStringIndent(tl, "", "  ")
	if err != nil {
		t.Fatalf("ToJSONStringIndent: %v", err)
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "test.otio")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	w, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if w.Kind() != KindPlain {
		t.Errorf("Kind() = %v, want KindPlain", w.Kind())
	}
}

func TestOpenUnrecognizedExtensionErrors(t *testing.T) {
	if _, err := Open("/some/file.xyz"); err == nil {
		t.Fatal("expected an error for an unrecognized extension")
	} else if _, ok := err.(*OpenFailedError); !ok {
		t.Errorf("expected *OpenFailedError, got %T", err)
	}
}

func TestOpenStillImageBuildsDegenerateTimeline(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "frame.png")
	if err := os.WriteFile(path, []byte("not really a png"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	w, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if w.Kind() != KindStillImage {
		t.Errorf("Kind() = %v, want KindStillImage", w.Kind())
	}
}

func TestOpenSequenceDetectsFrameRange(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"0010", "0011", "0012"} {
		if err := os.WriteFile(filepath.Join(dir, "shot_"+n+".png"), []byte("x"), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}
	w, err := Open(filepath.Join(dir, "shot_0010.png"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if w.Kind() != KindSequence {
		t.Fatalf("Kind() = %v, want KindSequence", w.Kind())
	}
	tr, err := w.TimeRange()
	if err != nil {
		t.Fatalf("TimeRange: %v", err)
	}
	if tr.Duration().Value() != 3 {
		t.Errorf("sequence duration = %v, want 3 frames", tr.Duration().Value())
	}
}

func TestResolveMediaPathJoinsArchiveRoot(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"0000", "0001"} {
		if err := os.WriteFile(filepath.Join(dir, "f_"+n+".png"), []byte("x"), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}
	w, err := Open(filepath.Join(dir, "f_0000.png"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	path, ok := w.ResolveMediaPath("f_0001.png")
	if !ok {
		t.Fatal("expected ResolveMediaPath to resolve within the archive root")
	}
	if path != filepath.Join(dir, "f_0001.png") {
		t.Errorf("ResolveMediaPath = %q, want %q", path, filepath.Join(dir, "f_0001.png"))
	}
}

func TestMakeReadNodeForExternalReference(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "frame.png")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	tr := opentime.NewTimeRange(rt(0, 24), rt(1, 24))
	ref := otio.NewExternalReference("frame", path, &tr, nil, nil)

	w := NewInMemory(buildGapTimeline(1))
	n, err := w.MakeReadNode(ref)
	if err != nil {
		t.Fatalf("MakeReadNode: %v", err)
	}
	if _, ok := n.(*read.ImageRead); !ok {
		t.Errorf("expected *read.ImageRead, got %T", n)
	}
}

func TestMakeReadNodeForImageSequenceReference(t *testing.T) {
	availableRange := opentime.NewTimeRange(rt(0, 24), rt(10, 24))
	ref := otio.NewImageSequenceReference(
		"seq", "/media", "shot_", ".exr", 0, 1, 24, 4,
		otio.MissingFramePolicyError, &availableRange, nil, nil,
	)
	w := NewInMemory(buildGapTimeline(1))
	n, err := w.MakeReadNode(ref)
	if err != nil {
		t.Fatalf("MakeReadNode: %v", err)
	}
	seq, ok := n.(*read.SequenceRead)
	if !ok {
		t.Fatalf("expected *read.SequenceRead, got %T", n)
	}
	if seq.Dir != "/media" || seq.NamePrefix != "shot_" {
		t.Errorf("unexpected sequence fields: dir=%q prefix=%q", seq.Dir, seq.NamePrefix)
	}
}

func TestMakeReadNodeRejectsUnsupportedReference(t *testing.T) {
	w := NewInMemory(buildGapTimeline(1))
	if _, err := w.MakeReadNode(otio.NewMissingReference("", nil, nil)); err == nil {
		t.Fatal("expected an error for an unsupported media reference type")
	}
}

func TestCloseWithoutArchiveIsNoop(t *testing.T) {
	w := NewInMemory(buildGapTimeline(1))
	if err := w.Close(); err != nil {
		t.Errorf("Close without an archive should not error, got %v", err)
	}
}

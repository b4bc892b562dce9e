// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package writer

import (
	"errors"
	"testing"

	"github.com/absfs/memfs"

	"toucango/bundle"
	"toucango/imageio"
	"toucango/opentime"
)

func newMemFS(t *testing.T) bundle.FileSystem {
	t.Helper()
	mfs, err := memfs.NewFS()
	if err != nil {
		t.Fatalf("memfs.NewFS: %v", err)
	}
	return bundle.NewMemFSAdapter(mfs)
}

func TestSequenceWriterFilenames(t *testing.T) {
	fs := newMemFS(t)
	w := NewSequenceWriter(fs, "/out", "shot_", ".png", 100, 1, 4)

	spec := imageio.NewImageSpec(2, 2, 4, imageio.ComponentU8)
	buf := imageio.NewImageBuf(spec)

	if err := w.Write(0, buf); err != nil {
		t.Fatalf("Write(0): %v", err)
	}
	if err := w.Write(1, buf); err != nil {
		t.Fatalf("Write(1): %v", err)
	}

	if _, err := fs.Stat("/out/shot_0100.png"); err != nil {
		t.Errorf("expected /out/shot_0100.png: %v", err)
	}
	if _, err := fs.Stat("/out/shot_0101.png"); err != nil {
		t.Errorf("expected /out/shot_0101.png: %v", err)
	}
}

func TestSequenceWriterFrameStep(t *testing.T) {
	fs := newMemFS(t)
	w := NewSequenceWriter(fs, "/out", "f", ".jpg", 10, 5, 2)

	spec := imageio.NewImageSpec(1, 1, 4, imageio.ComponentU8)
	buf := imageio.NewImageBuf(spec)

	for i := 0; i < 3; i++ {
		if err := w.Write(i, buf); err != nil {
			t.Fatalf("Write(%d): %v", i, err)
		}
	}

	for _, name := range []string{"/out/f10.jpg", "/out/f15.jpg", "/out/f20.jpg"} {
		if _, err := fs.Stat(name); err != nil {
			t.Errorf("expected %s: %v", name, err)
		}
	}
}

type fakeEncoder struct {
	opened   bool
	pushed   []opentime.RationalTime
	closed   bool
	openErr  error
	pushErr  error
	lastNull bool
}

func (f *fakeEncoder) Open(targetSize imageio.ImageSpec, timeRange opentime.TimeRange) error {
	f.opened = true
	return f.openErr
}

func (f *fakeEncoder) PushFrame(buf *imageio.ImageBuf, t opentime.RationalTime) error {
	if f.pushErr != nil {
		return f.pushErr
	}
	f.lastNull = buf == nil
	f.pushed = append(f.pushed, t)
	return nil
}

func (f *fakeEncoder) Close() error {
	f.closed = true
	return nil
}

func TestMovieWriterOpensOnceAndFlushesOnClose(t *testing.T) {
	enc := &fakeEncoder{}
	spec := imageio.NewImageSpec(4, 4, 4, imageio.ComponentU8)
	tr := opentime.NewTimeRange(opentime.NewRationalTime(0, 24), opentime.NewRationalTime(48, 24))
	w := NewMovieWriter(enc, spec, tr)

	buf := imageio.NewImageBuf(spec)
	if err := w.Write(opentime.NewRationalTime(0, 24), buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Write(opentime.NewRationalTime(1, 24), buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !enc.opened {
		t.Fatalf("expected encoder to be opened")
	}
	if len(enc.pushed) != 2 {
		t.Fatalf("expected 2 frames pushed, got %d", len(enc.pushed))
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !enc.closed {
		t.Errorf("expected encoder to be closed")
	}
	if !enc.lastNull {
		t.Errorf("expected Close to flush with a null frame")
	}
}

func TestMovieWriterCloseWithoutFramesIsNoop(t *testing.T) {
	enc := &fakeEncoder{}
	w := NewMovieWriter(enc, imageio.ImageSpec{}, opentime.TimeRange{})
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if enc.closed {
		t.Errorf("expected no Close call on an encoder that never opened")
	}
}

func TestMovieWriterOpenError(t *testing.T) {
	enc := &fakeEncoder{openErr: errors.New("boom")}
	w := NewMovieWriter(enc, imageio.ImageSpec{}, opentime.TimeRange{})
	if err := w.Write(opentime.RationalTime{}, nil); err == nil {
		t.Fatalf("expected error from Write when Open fails")
	}
}

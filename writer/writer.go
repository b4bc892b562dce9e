// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

// Package writer pushes rendered frames out to numbered image-sequence
// files or a movie encoder, per spec §4.K.
package writer

import (
	"fmt"
	"path/filepath"

	"toucango/bundle"
	"toucango/imageio"
	"toucango/opentime"
)

// SequenceWriter writes each submitted frame as a zero-padded,
// numbered still-image file, mirroring the filename convention
// otio.ImageSequenceReference.TargetURLForImageNumber uses to read
// sequences back in.
type SequenceWriter struct {
	fs         bundle.FileSystem
	dir        string
	namePrefix string
	nameSuffix string
	padding    int
	startFrame int
	frameStep  int
}

// NewSequenceWriter builds a writer that places frames under dir,
// named "<namePrefix><zero-padded frame number><nameSuffix>" starting
// at startFrame and incrementing by frameStep per call to Write. A
// nil fs defaults to bundle.DefaultFS (the real filesystem).
func NewSequenceWriter(fs bundle.FileSystem, dir, namePrefix, nameSuffix string, startFrame, frameStep, padding int) *SequenceWriter {
	if fs == nil {
		fs = bundle.DefaultFS
	}
	if frameStep == 0 {
		frameStep = 1
	}
	return &SequenceWriter{
		fs:         fs,
		dir:        dir,
		namePrefix: namePrefix,
		nameSuffix: nameSuffix,
		padding:    padding,
		startFrame: startFrame,
		frameStep:  frameStep,
	}
}

// Write encodes buf and writes it as the frameIndex'th frame (0-based
// from the writer's startFrame) into the sequence directory.
func (w *SequenceWriter) Write(frameIndex int, buf *imageio.ImageBuf) error {
	number := w.startFrame + frameIndex*w.frameStep
	name := fmt.Sprintf("%s%0*d%s", w.namePrefix, w.padding, number, w.nameSuffix)
	path := filepath.Join(w.dir, name)

	if err := w.fs.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("writer: mkdir %s: %w", w.dir, err)
	}

	f, err := w.fs.Create(path)
	if err != nil {
		return fmt.Errorf("writer: create %s: %w", path, err)
	}
	defer f.Close()

	if err := buf.Encode(f, filepath.Ext(name)); err != nil {
		return fmt.Errorf("writer: encode %s: %w", path, err)
	}
	return nil
}

// MovieEncoder is the collaborator interface a movie writer pushes
// frames through. Spec §4.K scopes the concrete encoder (container
// muxing, codec, audio) out of this module as an external
// collaborator; MovieWriter only defines the call sequence it drives.
type MovieEncoder interface {
	Open(targetSize imageio.ImageSpec, timeRange opentime.TimeRange) error
	PushFrame(buf *imageio.ImageBuf, t opentime.RationalTime) error
	Close() error
}

// MovieWriter drives a MovieEncoder through the open/push/close
// sequence spec §4.K describes: open lazily on the first frame, push
// every subsequent frame verbatim, and flush with a null frame before
// closing.
type MovieWriter struct {
	encoder    MovieEncoder
	targetSize imageio.ImageSpec
	timeRange  opentime.TimeRange
	opened     bool
}

// NewMovieWriter builds a writer around encoder, using targetSize and
// timeRange for the encoder's Open call on the first frame pushed.
func NewMovieWriter(encoder MovieEncoder, targetSize imageio.ImageSpec, timeRange opentime.TimeRange) *MovieWriter {
	return &MovieWriter{encoder: encoder, targetSize: targetSize, timeRange: timeRange}
}

// Write pushes buf at time t, opening the encoder first if this is
// the writer's first call.
func (w *MovieWriter) Write(t opentime.RationalTime, buf *imageio.ImageBuf) error {
	if !w.opened {
		if err := w.encoder.Open(w.targetSize, w.timeRange); err != nil {
			return fmt.Errorf("writer: open movie encoder: %w", err)
		}
		w.opened = true
	}
	if err := w.encoder.PushFrame(buf, t); err != nil {
		return fmt.Errorf("writer: push frame at %v: %w", t, err)
	}
	return nil
}

// Close flushes the encoder with a null frame and writes the
// container trailer. Close is a no-op if no frame was ever written.
func (w *MovieWriter) Close() error {
	if !w.opened {
		return nil
	}
	if err := w.encoder.PushFrame(nil, opentime.RationalTime{}); err != nil {
		return fmt.Errorf("writer: flush null frame: %w", err)
	}
	return w.encoder.Close()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

// Package wrapper implements the Timeline Wrapper: opening a timeline
// document from a plain file, a directory archive, a zip archive, or a
// degenerate single-media container, and resolving its clips' media
// references to either a filesystem path or a memory byte range.
package wrapper

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"toucango/bundle"
	"toucango/opentime"
	"toucango/otio"
	"toucango/read"
)

// Kind identifies how a TimelineWrapper's source was opened.
type Kind int

const (
	KindPlain Kind = iota
	KindDirectory
	KindZip
	KindMovie
	KindStillImage
	KindSequence
)

// OpenFailedError reports that a timeline document or archive could
// not be opened.
type OpenFailedError struct {
	Path  string
	Cause error
}

func (e *OpenFailedError) Error() string {
	return fmt.Sprintf("wrapper: open %s: %v", e.Path, e.Cause)
}

func (e *OpenFailedError) Unwrap() error { return e.Cause }

var (
	movieExtensions  = map[string]bool{".mov": true, ".mp4": true, ".mkv": true, ".avi": true}
	imageExtensions  = map[string]bool{".exr": true, ".dpx": true, ".png": true, ".jpg": true, ".jpeg": true, ".tif": true, ".tiff": true}
	directoryExt     = ".otiod"
	zipExt           = ".otioz"
	plainExt         = ".otio"
	sequenceStemDigits = regexp.MustCompile(`^(.*?)(\d+)$`)
)

// TimelineWrapper owns an opened timeline document and, for zip
// archives, the memory-mapped archive and the entry bytes (copied out
// of it at open time) its clips' media references resolve into.
type TimelineWrapper struct {
	path        string
	kind        Kind
	timeline    *otio.Timeline
	archiveRoot string

	archive    *bundle.ZipArchive
	byteRanges map[string]read.ByteRange
}

// Open dispatches on path's extension per the Timeline Wrapper's open
// rules and returns a ready-to-use wrapper.
func Open(path string) (*TimelineWrapper, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch {
	case ext == plainExt:
		return openPlain(path)
	case ext == directoryExt:
		return openDirectory(path)
	case ext == zipExt:
		return openZip(path)
	case movieExtensions[ext]:
		return openMovie(path)
	case imageExtensions[ext]:
		return openImageOrSequence(path)
	default:
		return nil, &OpenFailedError{Path: path, Cause: fmt.Errorf("unrecognized extension %q", ext)}
	}
}

func openPlain(path string) (*TimelineWrapper, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &OpenFailedError{Path: path, Cause: err}
	}
	tl, err := parseTimeline(data)
	if err != nil {
		return nil, &OpenFailedError{Path: path, Cause: err}
	}
	return &TimelineWrapper{path: path, kind: KindPlain, timeline: tl}, nil
}

func openDirectory(path string) (*TimelineWrapper, error) {
	contentPath := filepath.Join(path, "content.otio")
	data, err := bundle.DefaultFS.ReadFile(contentPath)
	if err != nil {
		return nil, &OpenFailedError{Path: path, Cause: err}
	}
	tl, err := parseTimeline(data)
	if err != nil {
		return nil, &OpenFailedError{Path: path, Cause: err}
	}
	return &TimelineWrapper{path: path, kind: KindDirectory, timeline: tl, archiveRoot: path}, nil
}

// openZip delegates the memory-map and byte-range bookkeeping to
// bundle.OpenZipArchive and parses the returned content.otio bytes.
func openZip(path string) (*TimelineWrapper, error) {
	archive, err := bundle.OpenZipArchive(path)
	if err != nil {
		return nil, &OpenFailedError{Path: path, Cause: err}
	}

	tl, err := parseTimeline(archive.Content())
	if err != nil {
		archive.Close()
		return nil, &OpenFailedError{Path: path, Cause: err}
	}

	return &TimelineWrapper{
		path:       path,
		kind:       KindZip,
		timeline:   tl,
		archive:    archive,
		byteRanges: archive.Entries(),
	}, nil
}

func parseTimeline(data []byte) (*otio.Timeline, error) {
	obj, err := otio.FromJSONBytes(data)
	if err != nil {
		return nil, err
	}
	tl, ok := obj.(*otio.Timeline)
	if !ok {
		return nil, fmt.Errorf("content.otio does not contain a Timeline")
	}
	return tl, nil
}

// openMovie constructs a degenerate one-track, one-clip timeline
// referencing path, using the movie decoder to obtain the time range.
func openMovie(path string) (*TimelineWrapper, error) {
	decoder, err := newProbeDecoder(path)
	if err != nil {
		return nil, &OpenFailedError{Path: path, Cause: err}
	}
	tr := decoder.TimeRange()

	ref := otio.NewExternalReference(filepath.Base(path), path, &tr, nil, nil)
	clip := otio.NewClip(filepath.Base(path), ref, nil, nil, nil, nil, "", nil)
	track := otio.NewTrack("", nil, otio.TrackKindVideo, nil, nil)
	_ = track.AppendChild(clip)
	stack := otio.NewStack("tracks", nil, nil, nil, nil, []otio.Composable{track})
	tl := otio.NewTimeline(filepath.Base(path), nil, nil)
	tl.SetTracks(stack)

	return &TimelineWrapper{path: path, kind: KindMovie, timeline: tl}, nil
}

// openImageOrSequence builds a degenerate timeline for a single still
// image, or for a numbered sequence when the filename stem ends with
// digits (scanning the sibling directory to enumerate frames).
func openImageOrSequence(path string) (*TimelineWrapper, error) {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	m := sequenceStemDigits.FindStringSubmatch(stem)
	if m == nil {
		return openStillImage(path)
	}
	prefix, digits := m[1], m[2]
	padding := len(digits)
	startFrame, err := strconv.Atoi(digits)
	if err != nil {
		return openStillImage(path)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &OpenFailedError{Path: path, Cause: err}
	}
	framePattern := regexp.MustCompile("^" + regexp.QuoteMeta(prefix) + `(\d+)` + regexp.QuoteMeta(ext) + "$")
	var frames []int
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		sub := framePattern.FindStringSubmatch(e.Name())
		if sub == nil {
			continue
		}
		n, err := strconv.Atoi(sub[1])
		if err != nil {
			continue
		}
		frames = append(frames, n)
	}
	if len(frames) == 0 {
		return openStillImage(path)
	}
	sort.Ints(frames)
	first, last := frames[0], frames[len(frames)-1]
	if first != startFrame {
		startFrame = first
	}

	const rate = 24.0
	availableRange := opentime.NewTimeRange(
		opentime.NewRationalTime(float64(startFrame), rate),
		opentime.NewRationalTime(float64(last-startFrame+1), rate),
	)

	ref := otio.NewImageSequenceReference(
		stem, dir, prefix, ext, startFrame, 1, rate, padding,
		otio.MissingFramePolicyError, &availableRange, nil, nil,
	)
	clip := otio.NewClip(stem, ref, nil, nil, nil, nil, "", nil)
	track := otio.NewTrack("", nil, otio.TrackKindVideo, nil, nil)
	_ = track.AppendChild(clip)
	stack := otio.NewStack("tracks", nil, nil, nil, nil, []otio.Composable{track})
	tl := otio.NewTimeline(stem, nil, nil)
	tl.SetTracks(stack)

	return &TimelineWrapper{path: path, kind: KindSequence, timeline: tl, archiveRoot: dir}, nil
}

func openStillImage(path string) (*TimelineWrapper, error) {
	const rate = 24.0
	tr := opentime.NewTimeRange(opentime.NewRationalTime(0, rate), opentime.NewRationalTime(1, rate))
	ref := otio.NewExternalReference(filepath.Base(path), path, &tr, nil, nil)
	clip := otio.NewClip(filepath.Base(path), ref, nil, nil, nil, nil, "", nil)
	track := otio.NewTrack("", nil, otio.TrackKindVideo, nil, nil)
	_ = track.AppendChild(clip)
	stack := otio.NewStack("tracks", nil, nil, nil, nil, []otio.Composable{track})
	tl := otio.NewTimeline(filepath.Base(path), nil, nil)
	tl.SetTracks(stack)

	return &TimelineWrapper{path: path, kind: KindStillImage, timeline: tl}, nil
}

// NewInMemory wraps an already-constructed Timeline with no backing
// file, for callers (and tests) that build a timeline programmatically
// rather than opening one from disk.
func NewInMemory(tl *otio.Timeline) *TimelineWrapper {
	return &TimelineWrapper{kind: KindPlain, timeline: tl}
}

// Timeline returns the wrapper's parsed or synthesized timeline.
func (w *TimelineWrapper) Timeline() *otio.Timeline { return w.timeline }

// Kind reports how the wrapper's source was opened.
func (w *TimelineWrapper) Kind() Kind { return w.kind }

// TimeRange returns the timeline's global start time and duration.
func (w *TimelineWrapper) TimeRange() (opentime.TimeRange, error) {
	dur, err := w.timeline.Duration()
	if err != nil {
		return opentime.TimeRange{}, err
	}
	start := opentime.NewRationalTime(0, dur.Rate())
	if gst := w.timeline.GlobalStartTime(); gst != nil {
		start = *gst
	}
	return opentime.NewTimeRange(start, dur), nil
}

// ResolveMediaPath returns an absolute filesystem path for url, or ok
// == false when url instead resolves to a memory byte range (the
// caller must consult MemoryReference).
func (w *TimelineWrapper) ResolveMediaPath(url string) (path string, ok bool) {
	if w.kind == KindZip {
		return url, false
	}
	if filepath.IsAbs(url) {
		return url, true
	}
	if w.archiveRoot != "" {
		return filepath.Join(w.archiveRoot, url), true
	}
	return url, true
}

// MemoryReference returns the byte range backing url inside a
// memory-mapped zip archive, if any.
func (w *TimelineWrapper) MemoryReference(url string) (*read.ByteRange, bool) {
	if w.byteRanges == nil {
		return nil, false
	}
	br, ok := w.byteRanges[url]
	if !ok {
		return nil, false
	}
	return &br, true
}

// Close unmaps the archive, if one was memory-mapped.
func (w *TimelineWrapper) Close() error {
	if w.archive != nil {
		return w.archive.Close()
	}
	return nil
}

// MakeReadNode chooses the concrete Read implementation for ref by its
// concrete type, resolving a filesystem path or memory byte range as
// appropriate.
func (w *TimelineWrapper) MakeReadNode(ref otio.MediaReference) (read.Node, error) {
	switch r := ref.(type) {
	case *otio.ImageSequenceReference:
		rate := r.Rate()
		if rate == 0 {
			rate = 24.0
		}
		return read.NewSequenceRead(
			r.Name(), r.TargetURLBase(), r.NamePrefix(), r.NameSuffix(),
			r.StartFrame(), r.FrameStep(), rate, r.FrameZeroPadding(), w.byteRanges,
		), nil

	case *otio.ExternalReference:
		url := r.TargetURL()
		if path, ok := w.ResolveMediaPath(url); ok {
			return read.NewImageRead(r.Name(), path, 24.0), nil
		}
		mem, ok := w.MemoryReference(url)
		if !ok {
			return nil, fmt.Errorf("wrapper: no memory reference for %q", url)
		}
		return read.NewImageReadFromMemory(r.Name(), mem, 24.0), nil

	default:
		return nil, fmt.Errorf("wrapper: unsupported media reference type %T", ref)
	}
}

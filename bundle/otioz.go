// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package bundle

import (
	"archive/zip"
	"os"
	"strings"

	"golang.org/x/exp/mmap"

	"toucango/read"
)

// ZipArchive is a memory-mapped .otioz archive: at open time every
// stored entry is read out of the mapping into its own byte slice;
// content.otio's bytes are kept apart and every other entry is recorded
// as a read.ByteRange over its copy, so media references resolve to
// copied bytes, not to slices of the mapping. Per the Timeline Wrapper's open rules, only the memory-map
// path is supported — there is no temp-directory extraction fallback.
type ZipArchive struct {
	path    string
	mapping *mmap.ReaderAt
	entries map[string]read.ByteRange
	content []byte
}

// OpenZipArchive memory-maps path, walks its zip central directory,
// and records a byte range for every stored entry. It reports
// ArchiveCompressedError if content.otio or any other entry was
// written with compression.
func OpenZipArchive(path string) (*ZipArchive, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, &BundleError{Operation: "open", Path: path, Message: "failed to open zip", Cause: err}
	}
	defer zr.Close()

	mapping, err := mmap.Open(path)
	if err != nil {
		return nil, &BundleError{Operation: "open", Path: path, Message: "failed to memory-map archive", Cause: err}
	}

	z := &ZipArchive{
		path:    path,
		mapping: mapping,
		entries: make(map[string]read.ByteRange),
	}

	for _, f := range zr.File {
		if f.Method != zip.Store {
			mapping.Close()
			return nil, &BundleError{Operation: "open", Path: path, Message: "compressed entry", Cause: &ArchiveCompressedError{EntryName: f.Name}}
		}

		// DataOffset returns base + local_header_size + file_offset in
		// one call, equivalent to the original's explicit
		// "30 + filename_size + extrafield_size" header-size arithmetic
		// plus the entry's offset within the central directory record.
		offset, err := f.DataOffset()
		if err != nil {
			mapping.Close()
			return nil, &BundleError{Operation: "open", Path: path, Message: "bad local header", Cause: err}
		}

		buf := make([]byte, f.UncompressedSize64)
		if _, err := mapping.ReadAt(buf, offset); err != nil {
			mapping.Close()
			return nil, &BundleError{Operation: "open", Path: path, Message: "short read", Cause: err}
		}

		if f.Name == "content.otio" {
			z.content = buf
			continue
		}
		z.entries[f.Name] = read.ByteRange{Data: buf}
	}

	if z.content == nil {
		mapping.Close()
		return nil, &BundleError{Operation: "open", Path: path, Message: "missing content.otio"}
	}

	return z, nil
}

// Content returns the decoded bytes of content.otio.
func (z *ZipArchive) Content() []byte { return z.content }

// ByteRange returns the bytes (copied out of the mapping at open time) backing a non-content entry
// named name (typically "media/<basename>"), if one was recorded.
func (z *ZipArchive) ByteRange(name string) (*read.ByteRange, bool) {
	br, ok := z.entries[name]
	if !ok {
		return nil, false
	}
	return &br, true
}

// Entries exposes every recorded byte range, keyed by archive entry
// name, for callers that need to resolve media URLs in bulk.
func (z *ZipArchive) Entries() map[string]read.ByteRange { return z.entries }

// Close unmaps the archive.
func (z *ZipArchive) Close() error {
	return z.mapping.Close()
}

// IsOTIOZ reports whether path names an existing .otioz file.
func IsOTIOZ(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return strings.HasSuffix(path, ".otioz")
}

// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package plugin

import (
	"log/slog"
	"os"
	"path/filepath"
)

// LibraryExtension is the file extension Go's plugin package produces
// and expects (".so" on the platforms it supports).
const LibraryExtension = ".so"

const maxSearchDepth = 2

// Search walks each of paths up to two directories deep, opening every
// file with LibraryExtension. A file that fails to open is logged and
// skipped rather than aborting the scan.
func Search(paths []string, logger *slog.Logger) []*Handle {
	if logger == nil {
		logger = slog.Default()
	}
	var handles []*Handle
	for _, root := range paths {
		walkSearchDir(root, 0, logger, &handles)
	}
	return handles
}

func walkSearchDir(dir string, depth int, logger *slog.Logger, handles *[]*Handle) {
	if depth > maxSearchDepth {
		return
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Warn("plugin search: cannot read directory", "dir", dir, "error", err)
		return
	}
	for _, entry := range entries {
		full := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			walkSearchDir(full, depth+1, logger, handles)
			continue
		}
		if filepath.Ext(entry.Name()) != LibraryExtension {
			continue
		}
		h, err := Open(full)
		if err != nil {
			logger.Warn("plugin search: failed to open", "path", full, "error", err)
			continue
		}
		*handles = append(*handles, h)
	}
}

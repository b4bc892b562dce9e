// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package plugin

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSearchSkipsNonLibraryFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("hi"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	handles := Search([]string{dir}, nil)
	if len(handles) != 0 {
		t.Errorf("expected no handles for a directory with no .so files, got %d", len(handles))
	}
}

func TestSearchToleratesUnreadableDirectory(t *testing.T) {
	handles := Search([]string{"/nonexistent/search/root"}, nil)
	if len(handles) != 0 {
		t.Errorf("expected no handles for a missing search root, got %d", len(handles))
	}
}

func TestSearchDescendsNestedDirectories(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	// Not a real loadable plugin, but its presence exercises the walk
	// and the subsequent failed-Open path rather than the toolchain.
	if err := os.WriteFile(filepath.Join(nested, "fake.so"), []byte("not a plugin"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	handles := Search([]string{dir}, nil)
	if len(handles) != 0 {
		t.Errorf("expected a non-library .so file to fail to open and be skipped, got %d handles", len(handles))
	}
}

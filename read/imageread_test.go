// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package read

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"toucango/imageio"
)

func solidBuf(w, h int, color [4]float64) *imageio.ImageBuf {
	buf := imageio.NewImageBuf(imageio.NewImageSpec(w, h, 4, imageio.ComponentU8))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			for c := 0; c < 4; c++ {
				buf.Set(x, y, c, color[c])
			}
		}
	}
	return buf
}

func TestImageReadDecodesFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "frame.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := solidBuf(4, 4, [4]float64{1, 0, 0, 1}).Encode(f, ".png"); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	f.Close()

	r := NewImageRead("still", path, 24)
	buf, err := r.Exec()
	if err != nil {
		t.Fatalf("Exec: %v", err)
	}
	if buf.Spec.Width != 4 || buf.Spec.Height != 4 {
		t.Errorf("decoded spec = %dx%d, want 4x4", buf.Spec.Width, buf.Spec.Height)
	}
	if r.Spec().Width != 4 {
		t.Errorf("Spec() after Exec = %v, want width 4", r.Spec())
	}
}

func TestImageReadDecodesFromMemory(t *testing.T) {
	var b bytes.Buffer
	if err := solidBuf(2, 2, [4]float64{0, 1, 0, 1}).Encode(&b, ".png"); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	r := NewImageReadFromMemory("still", &ByteRange{Data: b.Bytes()}, 24)
	buf, err := r.Exec()
	if err != nil {
		t.Fatalf("Exec: %v", err)
	}
	if buf.Spec.Width != 2 || buf.Spec.Height != 2 {
		t.Errorf("decoded spec = %dx%d, want 2x2", buf.Spec.Width, buf.Spec.Height)
	}
}

func TestImageReadMissingFileErrors(t *testing.T) {
	r := NewImageRead("still", "/nonexistent/frame.png", 24)
	if _, err := r.Exec(); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package host

import (
	"testing"

	"toucango/imageio"
	"toucango/node"
	"toucango/opentime"
	"toucango/plugin"
)

// stubSource is a leaf node.Node producing a fixed-size solid buffer,
// used in place of a real decoded frame.
type stubSource struct {
	node.Base
	spec imageio.ImageSpec
}

func newStubSource(w, h int) *stubSource {
	return &stubSource{Base: node.NewBase("stub"), spec: imageio.NewImageSpec(w, h, 4, imageio.ComponentU8)}
}

func (s *stubSource) Exec() (*imageio.ImageBuf, error) {
	return imageio.NewImageBuf(s.spec), nil
}

func TestHostHasPluginFalseWhenEmpty(t *testing.T) {
	h := New(nil)
	if h.HasPlugin("toucan:comp") {
		t.Error("expected HasPlugin to be false for an empty host")
	}
}

func TestLoadHandleRegistersPluginAndContexts(t *testing.T) {
	h := New(nil)
	d := &Descriptor{
		Identifier: "toucan:test_filter",
		MainEntry: func(action string, handle any, inArgs, outArgs any) plugin.Status {
			if action == "describe_in_context" {
				return plugin.StatusOK
			}
			return plugin.StatusOK
		},
	}
	handle := &plugin.Handle{Path: "test", Descriptors: []*plugin.Descriptor{d}}

	if err := h.loadHandle(handle); err != nil {
		t.Fatalf("loadHandle: %v", err)
	}
	if !h.HasPlugin("toucan:test_filter") {
		t.Fatal("expected plugin to be registered after loadHandle")
	}
	rec := h.plugins["toucan:test_filter"]
	for _, ctx := range []Context{ContextGenerator, ContextFilter, ContextTransition} {
		if !rec.contexts[ctx] {
			t.Errorf("expected context %q to be recorded", ctx)
		}
	}
}

func TestLoadHandleSkipsFailedDescribe(t *testing.T) {
	h := New(nil)
	d := &Descriptor{
		Identifier: "toucan:broken",
		MainEntry: func(action string, handle any, inArgs, outArgs any) plugin.Status {
			if action == "describe" {
				return plugin.StatusFailed
			}
			return plugin.StatusOK
		},
	}
	handle := &plugin.Handle{Path: "test", Descriptors: []*plugin.Descriptor{d}}

	if err := h.loadHandle(handle); err != nil {
		t.Fatalf("loadHandle: %v", err)
	}
	if h.HasPlugin("toucan:broken") {
		t.Error("expected a failed describe to skip registration")
	}
}

func TestLoadHandleFatalErrorAborts(t *testing.T) {
	h := New(nil)
	d := &Descriptor{
		Identifier: "toucan:fatal",
		MainEntry: func(action string, handle any, inArgs, outArgs any) plugin.Status {
			return plugin.StatusFatalError
		},
	}
	handle := &plugin.Handle{Path: "test", Descriptors: []*plugin.Descriptor{d}}

	err := h.loadHandle(handle)
	if err == nil {
		t.Fatal("expected a FatalPluginError")
	}
	if _, ok := err.(*FatalPluginError); !ok {
		t.Errorf("expected *FatalPluginError, got %T", err)
	}
}

func TestCreateNodeUnknownIdentifierErrors(t *testing.T) {
	h := New(nil)
	_, err := h.CreateNode("toucan:nope", ContextFilter, nil, nil)
	if err == nil {
		t.Fatal("expected an error for an unregistered identifier")
	}
}

func TestCreateNodeWithoutPluginFallsBackToSource(t *testing.T) {
	h := New(nil)
	src := newStubSource(8, 4)
	d := &Descriptor{
		Identifier: "toucan:passthrough",
		MainEntry: func(action string, handle any, inArgs, outArgs any) plugin.Status {
			return plugin.StatusOK
		},
	}
	if err := h.loadHandle(&plugin.Handle{Path: "test", Descriptors: []*plugin.Descriptor{d}}); err != nil {
		t.Fatalf("loadHandle: %v", err)
	}

	n, err := h.CreateNode("toucan:passthrough", ContextFilter, []node.Node{src}, nil)
	if err != nil {
		t.Fatalf("CreateNode: %v", err)
	}
	n.SetTime(opentime.NewRationalTime(0, 24))
	buf, err := n.Exec()
	if err != nil {
		t.Fatalf("Exec: %v", err)
	}
	if buf.Spec.Width != 8 || buf.Spec.Height != 4 {
		t.Errorf("expected the fallback to pass the source buffer through, got %dx%d", buf.Spec.Width, buf.Spec.Height)
	}
}

func TestCreateNodeHonorsSizeOverrideParams(t *testing.T) {
	h := New(nil)
	d := &Descriptor{
		Identifier: "toucan:resizer",
		MainEntry: func(action string, handle any, inArgs, outArgs any) plugin.Status {
			return plugin.StatusOK
		},
	}
	if err := h.loadHandle(&plugin.Handle{Path: "test", Descriptors: []*plugin.Descriptor{d}}); err != nil {
		t.Fatalf("loadHandle: %v", err)
	}

	n, err := h.CreateNode("toucan:resizer", ContextGenerator, nil, map[string]any{
		"size_width":  640,
		"size_height": 480,
	})
	if err != nil {
		t.Fatalf("CreateNode: %v", err)
	}
	buf, err := n.Exec()
	if err != nil {
		t.Fatalf("Exec: %v", err)
	}
	if buf.Spec.Width != 640 || buf.Spec.Height != 480 {
		t.Errorf("expected output sized 640x480 from params, got %dx%d", buf.Spec.Width, buf.Spec.Height)
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

// Package plugin loads native dynamic libraries exposing the
// image-effect ABI and resolves their two required entry points.
package plugin

import (
	"fmt"
	gopl "plugin"
)

// Status is a lifecycle action's result, returned by a plugin's
// main_entry dispatch.
type Status int

const (
	// StatusOK indicates the action succeeded.
	StatusOK Status = iota
	// StatusReplyDefault indicates the action succeeded using the
	// host's default behavior; treated identically to StatusOK.
	StatusReplyDefault
	// StatusFailed indicates the action failed; the plugin is skipped
	// at that step but discovery continues.
	StatusFailed
	// StatusFatalError aborts host construction entirely.
	StatusFatalError
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusReplyDefault:
		return "ReplyDefault"
	case StatusFailed:
		return "Failed"
	case StatusFatalError:
		return "FatalError"
	default:
		return "Unknown"
	}
}

// Descriptor is the per-plugin record a loaded library exposes via
// get_plugin(i).
type Descriptor struct {
	APIName      string
	APIVersion   int
	Identifier   string
	VersionMajor int
	VersionMinor int

	// SetHost installs the host pointer the plugin calls back into
	// (fetchSuite) during load/describe/render.
	SetHost func(host any)
	// MainEntry dispatches a lifecycle action. inArgs/outArgs are
	// property sets per spec.md §4.E.
	MainEntry func(action string, handle any, inArgs, outArgs any) Status
}

// LoadFailedError reports that a shared library did not expose the
// required plugin_count/get_plugin symbols.
type LoadFailedError struct {
	Path string
	Err  error
}

func (e *LoadFailedError) Error() string {
	return fmt.Sprintf("plugin: load failed for %s: %v", e.Path, e.Err)
}

func (e *LoadFailedError) Unwrap() error { return e.Err }

// Handle owns a loaded shared library and its resolved descriptors.
// A Handle's lifetime is the lifetime of its descriptors: once marked
// unusable by Close, no further calls should be dispatched through it.
type Handle struct {
	Path        string
	Descriptors []*Descriptor

	lib    *gopl.Plugin
	closed bool
}

// Open loads the shared library at path and resolves plugin_count and
// get_plugin. It reports LoadFailed if either symbol is missing or has
// the wrong signature.
func Open(path string) (*Handle, error) {
	lib, err := gopl.Open(path)
	if err != nil {
		return nil, &LoadFailedError{Path: path, Err: err}
	}

	countSym, err := lib.Lookup("plugin_count")
	if err != nil {
		return nil, &LoadFailedError{Path: path, Err: err}
	}
	countFn, ok := countSym.(func() int)
	if !ok {
		return nil, &LoadFailedError{Path: path, Err: fmt.Errorf("plugin_count has wrong signature")}
	}

	getSym, err := lib.Lookup("get_plugin")
	if err != nil {
		return nil, &LoadFailedError{Path: path, Err: err}
	}
	getFn, ok := getSym.(func(int) *Descriptor)
	if !ok {
		return nil, &LoadFailedError{Path: path, Err: fmt.Errorf("get_plugin has wrong signature")}
	}

	n := countFn()
	descriptors := make([]*Descriptor, 0, n)
	for i := 0; i < n; i++ {
		if d := getFn(i); d != nil {
			descriptors = append(descriptors, d)
		}
	}

	return &Handle{Path: path, Descriptors: descriptors, lib: lib}, nil
}

// Close marks h unusable. Go's plugin package cannot unmap a loaded
// shared library; this only prevents further lifecycle dispatch
// through h, it does not release the OS-level mapping.
func (h *Handle) Close() {
	h.closed = true
}

// Closed reports whether Close has been called.
func (h *Handle) Closed() bool {
	return h.closed
}

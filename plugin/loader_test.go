// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package plugin

import "testing"

func TestStatusString(t *testing.T) {
	cases := []struct {
		status Status
		want   string
	}{
		{StatusOK, "OK"},
		{StatusReplyDefault, "ReplyDefault"},
		{StatusFailed, "Failed"},
		{StatusFatalError, "FatalError"},
		{Status(99), "Unknown"},
	}
	for _, c := range cases {
		if got := c.status.String(); got != c.want {
			t.Errorf("Status(%d).String() = %q, want %q", c.status, got, c.want)
		}
	}
}

func TestOpenMissingFileReturnsLoadFailedError(t *testing.T) {
	_, err := Open("/nonexistent/path/does_not_exist.so")
	if err == nil {
		t.Fatal("expected an error opening a nonexistent shared library")
	}
	if _, ok := err.(*LoadFailedError); !ok {
		t.Errorf("expected *LoadFailedError, got %T", err)
	}
}

func TestHandleCloseMarksClosed(t *testing.T) {
	h := &Handle{Path: "test"}
	if h.Closed() {
		t.Fatal("expected a fresh Handle to be unclosed")
	}
	h.Close()
	if !h.Closed() {
		t.Error("expected Closed() to report true after Close")
	}
}

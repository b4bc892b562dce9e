// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package registry

import "testing"

func TestIdentifierAppliesPrefix(t *testing.T) {
	if got := Identifier("comp"); got != "toucan:comp" {
		t.Errorf("Identifier(%q) = %q, want %q", "comp", got, "toucan:comp")
	}
}

func TestRegistryLookupMiss(t *testing.T) {
	r := New()
	_, err := r.Lookup("missing.schema")
	if err == nil {
		t.Fatal("expected an error for an unregistered schema")
	}
	if _, ok := err.(*EntryNotFoundError); !ok {
		t.Errorf("expected *EntryNotFoundError, got %T", err)
	}
}

func TestRegistryRegisterAndLookup(t *testing.T) {
	r := New()
	entry := &Entry{
		SchemaName: "LinearTimeWarp.1",
		Identifier: "toucan:linear_time_warp",
		Defaults:   map[string]any{"time_scalar": 1.0},
	}
	r.Register(entry)

	got, err := r.Lookup("LinearTimeWarp.1")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if got != entry {
		t.Errorf("Lookup returned a different entry than was registered")
	}
}

func TestResolveIdentifierFallsBackToConvention(t *testing.T) {
	r := New()
	if got := r.ResolveIdentifier("Dissolve.1"); got != "toucan:Dissolve.1" {
		t.Errorf("ResolveIdentifier fallback = %q, want %q", got, "toucan:Dissolve.1")
	}
}

func TestResolveIdentifierUsesRegisteredEntry(t *testing.T) {
	r := New()
	r.Register(&Entry{SchemaName: "Dissolve.1", Identifier: "toucan:custom_dissolve"})
	if got := r.ResolveIdentifier("Dissolve.1"); got != "toucan:custom_dissolve" {
		t.Errorf("ResolveIdentifier = %q, want %q", got, "toucan:custom_dissolve")
	}
}

func TestEntriesListsRegisteredSchemas(t *testing.T) {
	r := New()
	r.Register(&Entry{SchemaName: "A.1", Identifier: "toucan:a"})
	r.Register(&Entry{SchemaName: "B.1", Identifier: "toucan:b"})

	names := r.Entries()
	if len(names) != 2 {
		t.Fatalf("Entries() returned %d names, want 2", len(names))
	}
	seen := map[string]bool{}
	for _, n := range names {
		seen[n] = true
	}
	if !seen["A.1"] || !seen["B.1"] {
		t.Errorf("Entries() = %v, want both A.1 and B.1", names)
	}
}

func TestGlobalRegisterAndLookup(t *testing.T) {
	entry := &Entry{SchemaName: "Fill.test-only.1", Identifier: "toucan:fill_test_only"}
	Register(entry)

	got, err := Lookup("Fill.test-only.1")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if got != entry {
		t.Errorf("global Lookup returned a different entry than registered")
	}
}

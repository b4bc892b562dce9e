// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package property

import "testing"

func TestSetGetRoundTrip(t *testing.T) {
	s := New()
	if err := s.SetString("Name", 0, "blur"); err != nil {
		t.Fatalf("SetString: %v", err)
	}
	got, err := s.GetString("Name", 0)
	if err != nil {
		t.Fatalf("GetString: %v", err)
	}
	if got != "blur" {
		t.Errorf("GetString = %q, want %q", got, "blur")
	}

	if err := s.SetDouble("Time", 0, 1.5); err != nil {
		t.Fatalf("SetDouble: %v", err)
	}
	if got, _ := s.GetDouble("Time", 0); got != 1.5 {
		t.Errorf("GetDouble = %v, want 1.5", got)
	}

	if err := s.SetInt("Count", 0, 7); err != nil {
		t.Fatalf("SetInt: %v", err)
	}
	if got, _ := s.GetInt("Count", 0); got != 7 {
		t.Errorf("GetInt = %v, want 7", got)
	}
}

func TestGetUnsetKeyReturnsZeroAndOutOfBounds(t *testing.T) {
	s := New()
	v, err := s.GetString("missing", 0)
	if err != ErrOutOfBounds {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
	if v != "" {
		t.Errorf("expected zero value, got %q", v)
	}
}

func TestSetTypeMismatchError(t *testing.T) {
	s := New()
	if err := s.SetString("key", 0, "a"); err != nil {
		t.Fatalf("SetString: %v", err)
	}
	err := s.SetInt("key", 0, 1)
	var mismatch *TypeMismatchError
	if err == nil {
		t.Fatalf("expected a type mismatch error")
	}
	if e, ok := err.(*TypeMismatchError); !ok {
		t.Fatalf("expected *TypeMismatchError, got %T", err)
	} else {
		mismatch = e
	}
	if mismatch.Key != "key" {
		t.Errorf("mismatch.Key = %q, want %q", mismatch.Key, "key")
	}
}

func TestSetNVariantsAndDimension(t *testing.T) {
	s := New()
	if err := s.SetIntN("RenderWindow", []int{0, 0, 64, 64}); err != nil {
		t.Fatalf("SetIntN: %v", err)
	}
	if dim := s.GetDimension("RenderWindow"); dim != 4 {
		t.Errorf("GetDimension = %d, want 4", dim)
	}
	v, err := s.GetInt("RenderWindow", 2)
	if err != nil {
		t.Fatalf("GetInt: %v", err)
	}
	if v != 64 {
		t.Errorf("GetInt(2) = %d, want 64", v)
	}
}

func TestResetAllowsRetyping(t *testing.T) {
	s := New()
	if err := s.SetString("key", 0, "a"); err != nil {
		t.Fatalf("SetString: %v", err)
	}
	s.Reset("key")
	if err := s.SetInt("key", 0, 5); err != nil {
		t.Fatalf("expected SetInt to succeed after Reset, got %v", err)
	}
}

func TestKeys(t *testing.T) {
	s := New()
	_ = s.SetString("a", 0, "x")
	_ = s.SetInt("b", 0, 1)
	keys := s.Keys()
	if len(keys) != 2 {
		t.Fatalf("expected 2 keys, got %d", len(keys))
	}
}

func TestSetPointer(t *testing.T) {
	s := New()
	type handle struct{ id int }
	h := &handle{id: 1}
	if err := s.SetPointer("Source", 0, h); err != nil {
		t.Fatalf("SetPointer: %v", err)
	}
	got, err := s.GetPointer("Source", 0)
	if err != nil {
		t.Fatalf("GetPointer: %v", err)
	}
	if got.(*handle) != h {
		t.Errorf("expected the same pointer back")
	}
}

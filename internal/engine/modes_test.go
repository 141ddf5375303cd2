package engine

import (
	"errors"
	"testing"
)

func TestModesToggleIsItsOwnInverse(t *testing.T) {
	m := NewModes("esc", nil)
	if err := m.Bind("q", "quantum"); err != nil {
		t.Fatalf("bind failed: %v", err)
	}

	if m.Get("quantum") {
		t.Fatal("modes should start false")
	}
	m.HandleKey("q")
	if !m.Get("quantum") {
		t.Fatal("expected quantum on after one press")
	}
	m.HandleKey("Q") // case-insensitive
	if m.Get("quantum") {
		t.Fatal("expected quantum back off after two presses")
	}
}

func TestModesUnboundKeyIsNoOp(t *testing.T) {
	m := NewModes("esc", nil)
	if err := m.Bind("q", "quantum"); err != nil {
		t.Fatalf("bind failed: %v", err)
	}
	m.HandleKey("q")
	before := m.All()

	for _, key := range []string{"z", "enter", "", " ", "ctrl+c"} {
		if m.HandleKey(key) {
			t.Errorf("key %q should be ignored", key)
		}
	}

	after := m.All()
	if len(after) != len(before) {
		t.Fatal("unbound keys changed the mode set")
	}
	for k, v := range before {
		if after[k] != v {
			t.Errorf("mode %s changed from %v to %v", k, v, after[k])
		}
	}
}

func TestModesBindConflict(t *testing.T) {
	m := NewModes("esc", nil)
	if err := m.Bind("q", "quantum"); err != nil {
		t.Fatalf("bind failed: %v", err)
	}

	err := m.Bind("Q", "focus")
	if err == nil {
		t.Fatal("expected conflict, got nil")
	}
	var ce *ConflictError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ConflictError, got %T", err)
	}

	// rebinding the identical pair is idempotent, not a conflict
	if err := m.Bind("q", "quantum"); err != nil {
		t.Errorf("identical rebind should succeed, got %v", err)
	}
}

func TestModesResetClearsOnlySubset(t *testing.T) {
	m := NewModes("esc", []string{"focus"})
	if err := m.Bind("q", "quantum"); err != nil {
		t.Fatalf("bind failed: %v", err)
	}
	if err := m.Bind("f", "focus"); err != nil {
		t.Fatalf("bind failed: %v", err)
	}

	m.HandleKey("q")
	m.HandleKey("f")

	if !m.HandleReset("esc") {
		t.Fatal("reset key should be recognized")
	}
	if !m.Get("quantum") {
		t.Error("quantum must survive the reset")
	}
	if m.Get("focus") {
		t.Error("focus must be cleared by the reset")
	}

	if m.HandleReset("x") {
		t.Error("non-reset key must not trigger a reset")
	}
}

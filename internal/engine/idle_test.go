package engine

import (
	"errors"
	"testing"
	"time"
)

func TestIdleActivityDebounce(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	at := func(ms int) time.Time { return base.Add(time.Duration(ms) * time.Millisecond) }

	idle, err := NewIdle(3000*time.Millisecond, base)
	if err != nil {
		t.Fatalf("new idle failed: %v", err)
	}

	// activity at t=0, 1000, 2000 keeps chrome up well past the first
	// deadline; the flip happens 3000ms after the last event, not the first
	idle.Activity(at(0))
	idle.Activity(at(1000))
	idle.Activity(at(2000))

	idle.Check(at(2999))
	if !idle.Visible() {
		t.Fatal("expected visible at t=2999")
	}
	idle.Check(at(3000))
	if !idle.Visible() {
		t.Fatal("flip must track the last activity, not the first")
	}
	idle.Check(at(4999))
	if !idle.Visible() {
		t.Fatal("expected visible at t=4999")
	}
	idle.Check(at(5000))
	if idle.Visible() {
		t.Fatal("expected hidden at t=5000")
	}
}

func TestIdleBurstThenRecover(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	idle, err := NewIdle(time.Second, base)
	if err != nil {
		t.Fatalf("new idle failed: %v", err)
	}

	// a burst of events inside the threshold never hides the chrome
	for i := 0; i < 50; i++ {
		now := base.Add(time.Duration(i) * 10 * time.Millisecond)
		idle.Activity(now)
		idle.Check(now)
		if !idle.Visible() {
			t.Fatalf("hidden during burst at event %d", i)
		}
	}

	quiet := base.Add(500*time.Millisecond + time.Second)
	idle.Check(quiet)
	if idle.Visible() {
		t.Fatal("expected hidden after the quiet period")
	}

	// repeated checks while hidden stay hidden, and one event restores
	idle.Check(quiet.Add(time.Minute))
	if idle.Visible() {
		t.Fatal("hidden state should be stable")
	}
	idle.Activity(quiet.Add(time.Minute))
	if !idle.Visible() {
		t.Fatal("activity should restore visibility")
	}
}

func TestIdleOverride(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	idle, err := NewIdle(time.Second, base)
	if err != nil {
		t.Fatalf("new idle failed: %v", err)
	}

	idle.Check(base.Add(2 * time.Second))
	if idle.Visible() {
		t.Fatal("expected hidden before override")
	}

	idle.ForceVisible(true)
	if !idle.Visible() {
		t.Fatal("override should pin chrome visible")
	}
	idle.Check(base.Add(time.Hour))
	if !idle.Visible() {
		t.Fatal("idle timer must not defeat the override")
	}

	idle.ClearOverride()
	if idle.Visible() {
		t.Fatal("clearing the override resumes the idle-derived value")
	}
}

func TestNewIdleRejectsBadThreshold(t *testing.T) {
	for _, d := range []time.Duration{0, -time.Second} {
		if _, err := NewIdle(d, time.Now()); !errors.Is(err, ErrInvalidInterval) {
			t.Errorf("threshold %v: expected ErrInvalidInterval, got %v", d, err)
		}
	}
}

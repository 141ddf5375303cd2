package engine

import (
	"testing"
	"time"
)

func TestStopwatchFreeze(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s := NewStopwatch()
	s.Arm(base)

	s.Tick(base.Add(1230 * time.Millisecond))
	if s.Seconds() != 1.23 {
		t.Fatalf("expected 1.23, got %v", s.Seconds())
	}

	s.Stop()
	s.Tick(base.Add(10 * time.Second))
	if s.Seconds() != 1.23 {
		t.Errorf("stopped watch must not change, got %v", s.Seconds())
	}

	// stopping twice is a no-op
	s.Stop()
	if s.Seconds() != 1.23 {
		t.Errorf("double stop changed value to %v", s.Seconds())
	}
}

func TestStopwatchRoundingHalfUp(t *testing.T) {
	tests := []struct {
		elapsed time.Duration
		want    float64
	}{
		{0, 0},
		{125 * time.Millisecond, 0.13},
		{375 * time.Millisecond, 0.38},
		{1239 * time.Millisecond, 1.24},
		{2 * time.Second, 2.0},
	}

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for _, tt := range tests {
		s := NewStopwatch()
		s.Arm(base)
		s.Tick(base.Add(tt.elapsed))
		if s.Seconds() != tt.want {
			t.Errorf("elapsed %v: expected %v, got %v", tt.elapsed, tt.want, s.Seconds())
		}
	}
}

func TestStopwatchNeverNegative(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s := NewStopwatch()
	s.Arm(base)
	s.Tick(base.Add(-time.Second))
	if s.Seconds() != 0 {
		t.Errorf("expected 0 for a clock step backwards, got %v", s.Seconds())
	}
}

func TestStopwatchMonotonicWhileRunning(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s := NewStopwatch()
	s.Arm(base)

	prev := 0.0
	for i := 1; i <= 100; i++ {
		s.Tick(base.Add(time.Duration(i) * 50 * time.Millisecond))
		if s.Seconds() < prev {
			t.Fatalf("elapsed decreased from %v to %v", prev, s.Seconds())
		}
		prev = s.Seconds()
	}
}

func TestStopwatchRearm(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s := NewStopwatch()
	s.Arm(base)
	s.Tick(base.Add(5 * time.Second))
	s.Stop()

	s.Arm(base.Add(10 * time.Second))
	if s.Seconds() != 0 {
		t.Errorf("rearm should restart at 0.00, got %v", s.Seconds())
	}
	if !s.Running() {
		t.Error("rearm should leave the watch running")
	}
}

package engine

import (
	"math"
	"time"
)

// Stopwatch measures wall-clock seconds since Arm. Once stopped the value
// is frozen; further ticks cannot change it.
type Stopwatch struct {
	start   time.Time
	seconds float64
	running bool
}

func NewStopwatch() *Stopwatch { return &Stopwatch{} }

// Arm starts timing from now with the counter back at 0.00.
func (s *Stopwatch) Arm(now time.Time) {
	s.start = now
	s.seconds = 0
	s.running = true
}

// Tick recomputes the elapsed value. No-op once stopped.
func (s *Stopwatch) Tick(now time.Time) {
	if !s.running {
		return
	}
	d := now.Sub(s.start)
	if d < 0 {
		d = 0
	}
	s.seconds = round2(d.Seconds())
}

// Stop freezes the counter at its last computed value. Idempotent.
func (s *Stopwatch) Stop() { s.running = false }

func (s *Stopwatch) Seconds() float64 { return s.seconds }
func (s *Stopwatch) Running() bool    { return s.running }

// round2 rounds half-up to two decimal places.
func round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}

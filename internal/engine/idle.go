package engine

import "time"

// Idle drives chrome visibility from pointer-activity recency. Each
// activity event restarts the countdown (a debounce, not a fixed-rate
// poll); the visible flag drops exactly once per quiet period.
type Idle struct {
	threshold  time.Duration
	visible    bool
	deadline   time.Time
	overridden bool
	forced     bool
}

// NewIdle starts visible with a full countdown from now.
func NewIdle(threshold time.Duration, now time.Time) (*Idle, error) {
	if threshold <= 0 {
		return nil, ErrInvalidInterval
	}
	return &Idle{
		threshold: threshold,
		visible:   true,
		deadline:  now.Add(threshold),
	}, nil
}

// Activity records a pointer event: chrome shows and the countdown
// restarts from now.
func (i *Idle) Activity(now time.Time) {
	i.visible = true
	i.deadline = now.Add(i.threshold)
}

// Check flips visible to false once the deadline has passed with no
// intervening activity. Safe to call on every host tick; the transition
// fires at most once until the next activity event.
func (i *Idle) Check(now time.Time) {
	if i.visible && !now.Before(i.deadline) {
		i.visible = false
	}
}

// ForceVisible overrides the idle-derived value while set, bypassing the
// countdown entirely. Focus mode uses this to pin the chrome on.
func (i *Idle) ForceVisible(v bool) {
	i.overridden = true
	i.forced = v
}

// ClearOverride resumes idle-derived visibility from the current activity
// recency.
func (i *Idle) ClearOverride() { i.overridden = false }

// Visible reports the effective chrome visibility.
func (i *Idle) Visible() bool {
	if i.overridden {
		return i.forced
	}
	return i.visible
}

package engine

import "time"

const (
	DefaultTickInterval  = 30 * time.Millisecond
	DefaultIdleThreshold = 3 * time.Second
	DefaultResetKey      = "esc"
	DefaultFocusMode     = "focus"
)

// Options configures an Engine. Zero durations fall back to the defaults;
// negative ones fail construction.
type Options struct {
	TickInterval    time.Duration     // reveal cadence
	IdleThreshold   time.Duration     // chrome idle timeout
	Bindings        map[string]string // key -> mode name
	ResettableModes []string          // modes cleared by the reset key
	ResetKey        string
	FocusMode       string // mode that pins the chrome visible
	Clock           Clock
}

// Snapshot is the read-only frame handed to the rendering layer. Done
// reports the reveal completion exactly once per session so the host can
// retire its caret.
type Snapshot struct {
	RevealedText   string
	Status         Status
	Revealed       int
	Total          int
	ElapsedSeconds float64
	Visible        bool
	Modes          map[string]bool
	HoveredID      string
	Done           bool
}

// Engine is the composition root. It owns the sub-machines for the
// lifetime of one displayed view, wires the reveal done signal to the
// stopwatch, and folds focus mode into the chrome override. All state is
// discarded with the view; nothing persists.
type Engine struct {
	opts   Options
	clock  Clock
	reveal *Reveal
	watch  *Stopwatch
	idle   *Idle
	modes  *Modes
	hover  *Hover

	done     bool // completion latched for the current session
	doneSent bool // one-shot host notification consumed
	closed   bool
}

// New validates the options and builds the engine. Malformed configuration
// fails here, never silently at runtime.
func New(opts Options) (*Engine, error) {
	if opts.TickInterval < 0 || opts.IdleThreshold < 0 {
		return nil, ErrInvalidInterval
	}
	if opts.TickInterval == 0 {
		opts.TickInterval = DefaultTickInterval
	}
	if opts.IdleThreshold == 0 {
		opts.IdleThreshold = DefaultIdleThreshold
	}
	if opts.ResetKey == "" {
		opts.ResetKey = DefaultResetKey
	}
	if opts.FocusMode == "" {
		opts.FocusMode = DefaultFocusMode
	}
	clock := opts.Clock
	if clock == nil {
		clock = SystemClock()
	}

	idle, err := NewIdle(opts.IdleThreshold, clock.Now())
	if err != nil {
		return nil, err
	}

	e := &Engine{
		opts:   opts,
		clock:  clock,
		reveal: NewReveal(),
		watch:  NewStopwatch(),
		idle:   idle,
		modes:  NewModes(opts.ResetKey, opts.ResettableModes),
		hover:  NewHover(),
	}
	for key, mode := range opts.Bindings {
		if err := e.modes.Bind(key, mode); err != nil {
			return nil, err
		}
	}
	e.reveal.OnDone(func() {
		e.watch.Stop()
		e.done = true
	})
	return e, nil
}

// TickInterval is the reveal cadence the host should schedule.
func (e *Engine) TickInterval() time.Duration { return e.opts.TickInterval }

// Status reports the reveal lifecycle state without consuming the one-shot
// done signal.
func (e *Engine) Status() Status { return e.reveal.Status() }

// Bind registers an additional key binding after construction.
func (e *Engine) Bind(key, mode string) error { return e.modes.Bind(key, mode) }

// StartReveal begins a session and arms the elapsed counter. The stopwatch
// is armed before the session starts so the empty-text immediate
// completion still freezes a properly armed counter.
func (e *Engine) StartReveal(text string) error {
	if e.closed {
		return &InvalidStateError{Op: "start", State: "closed"}
	}
	if e.reveal.Status() == StatusRevealing {
		return &InvalidStateError{Op: "start", State: e.reveal.Status().String()}
	}
	e.done = false
	e.doneSent = false
	e.watch.Arm(e.clock.Now())
	return e.reveal.Start(text)
}

// RevealTick advances the reveal by one grapheme cluster. No-op once the
// session is complete or the engine is closed.
func (e *Engine) RevealTick() {
	if e.closed {
		return
	}
	e.reveal.Tick()
}

// UITick drives the elapsed counter and the idle check. Runs at the host's
// frame cadence, independent of the reveal tick.
func (e *Engine) UITick() {
	if e.closed {
		return
	}
	now := e.clock.Now()
	e.watch.Tick(now)
	e.idle.Check(now)
}

// Activity forwards a pointer event to the idle tracker.
func (e *Engine) Activity() {
	if e.closed {
		return
	}
	e.idle.Activity(e.clock.Now())
}

// HandleKey routes a key press: the reset key first, then mode toggles.
// Unbound keys fall through as no-ops.
func (e *Engine) HandleKey(key string) {
	if e.closed {
		return
	}
	if e.modes.HandleReset(key) {
		e.syncFocus()
		return
	}
	if e.modes.HandleKey(key) {
		e.syncFocus()
	}
}

// syncFocus folds the focus mode flag into the chrome override.
func (e *Engine) syncFocus() {
	if e.modes.Get(e.opts.FocusMode) {
		e.idle.ForceVisible(true)
	} else {
		e.idle.ClearOverride()
	}
}

// SetHovered replaces the disclosed item; the empty id clears it. Unknown
// ids are benign, the view simply derives no detail for them.
func (e *Engine) SetHovered(id string) {
	if e.closed {
		return
	}
	e.hover.Set(id)
}

func (e *Engine) IsHovered(id string) bool { return e.hover.Is(id) }

// Reset returns the reveal to idle and freezes the stopwatch. Allowed at
// any time.
func (e *Engine) Reset() {
	if e.closed {
		return
	}
	e.reveal.Reset()
	e.watch.Stop()
	e.done = false
	e.doneSent = false
}

// Snapshot folds the sub-machine state into one frame for the host.
func (e *Engine) Snapshot() Snapshot {
	done := false
	if e.done && !e.doneSent {
		done = true
		e.doneSent = true
	}
	return Snapshot{
		RevealedText:   e.reveal.CurrentText(),
		Status:         e.reveal.Status(),
		Revealed:       e.reveal.Revealed(),
		Total:          e.reveal.Len(),
		ElapsedSeconds: e.watch.Seconds(),
		Visible:        e.idle.Visible(),
		Modes:          e.modes.All(),
		HoveredID:      e.hover.ID(),
		Done:           done,
	}
}

// Close tears down the engine. Every subsequent tick or event is a no-op;
// a dangling timer firing after the view is gone cannot mutate anything.
func (e *Engine) Close() {
	e.closed = true
	e.watch.Stop()
}

func (e *Engine) Closed() bool { return e.closed }

package engine

import "github.com/rivo/uniseg"

// Status describes where a reveal session is in its lifecycle.
type Status int

const (
	StatusIdle Status = iota
	StatusRevealing
	StatusComplete
)

func (s Status) String() string {
	switch s {
	case StatusRevealing:
		return "revealing"
	case StatusComplete:
		return "complete"
	default:
		return "idle"
	}
}

// Reveal discloses a fixed string one grapheme cluster per tick, simulating
// live generation of an already-known response. The unit of advancement is
// a grapheme cluster, never a byte, so multibyte text and emoji reveal
// cleanly.
type Reveal struct {
	source   string
	offsets  []int // byte offset of the end of each grapheme cluster
	revealed int   // grapheme clusters revealed so far
	status   Status
	done     func()
}

func NewReveal() *Reveal { return &Reveal{} }

// OnDone registers the completion signal. Fires exactly once per session,
// including the empty-text case where Start completes immediately.
func (r *Reveal) OnDone(fn func()) { r.done = fn }

// Start begins a session. A session already revealing must be Reset first;
// starting over it is a contract violation, not a restart.
func (r *Reveal) Start(text string) error {
	if r.status == StatusRevealing {
		return &InvalidStateError{Op: "start", State: r.status.String()}
	}
	r.source = text
	r.offsets = graphemeOffsets(text)
	r.revealed = 0
	r.status = StatusRevealing
	if len(r.offsets) == 0 {
		r.complete()
	}
	return nil
}

// Tick reveals one more grapheme cluster. Ticks delivered after completion
// are no-ops, so a stale timer callback cannot over-advance.
func (r *Reveal) Tick() {
	if r.status != StatusRevealing {
		return
	}
	r.revealed++
	if r.revealed >= len(r.offsets) {
		r.revealed = len(r.offsets)
		r.complete()
	}
}

func (r *Reveal) complete() {
	r.status = StatusComplete
	if r.done != nil {
		r.done()
	}
}

// CurrentText returns the revealed prefix of the source text. Offsets are
// precomputed at Start, so this is a slice expression per call.
func (r *Reveal) CurrentText() string {
	if r.revealed == 0 {
		return ""
	}
	return r.source[:r.offsets[r.revealed-1]]
}

// Len reports the total grapheme count of the source text.
func (r *Reveal) Len() int { return len(r.offsets) }

// Revealed reports how many grapheme clusters are currently shown.
func (r *Reveal) Revealed() int { return r.revealed }

func (r *Reveal) Status() Status { return r.status }

// Reset returns to idle from any prior status.
func (r *Reveal) Reset() {
	r.source = ""
	r.offsets = nil
	r.revealed = 0
	r.status = StatusIdle
}

func graphemeOffsets(s string) []int {
	if s == "" {
		return nil
	}
	offsets := make([]int, 0, len(s))
	state := -1
	pos := 0
	for rest := s; len(rest) > 0; {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		pos += len(cluster)
		offsets = append(offsets, pos)
	}
	return offsets
}

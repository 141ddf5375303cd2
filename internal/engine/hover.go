package engine

// Hover tracks the single disclosed item. Purely event-driven,
// last-write-wins, no timers. Disclosure content for the hovered id is
// derived by the view, never stored here.
type Hover struct {
	id string
}

func NewHover() *Hover { return &Hover{} }

// Set replaces the hovered id unconditionally. Setting the same id twice
// is idempotent; the empty id clears the disclosure.
func (h *Hover) Set(id string) { h.id = id }

func (h *Hover) Clear() { h.id = "" }

func (h *Hover) ID() string { return h.id }

// Is reports whether id is the currently hovered one.
func (h *Hover) Is(id string) bool { return id != "" && h.id == id }

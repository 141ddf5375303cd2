package engine

import "strings"

// Modes maps bound keys to named boolean display flags. Matching is
// case-insensitive. A designated reset key clears only the registered
// resettable subset, so persistent modes survive a reset.
type Modes struct {
	bindings   map[string]string
	flags      map[string]bool
	resettable map[string]bool
	resetKey   string
}

func NewModes(resetKey string, resettable []string) *Modes {
	m := &Modes{
		bindings:   make(map[string]string),
		flags:      make(map[string]bool),
		resettable: make(map[string]bool),
		resetKey:   strings.ToLower(resetKey),
	}
	for _, name := range resettable {
		m.resettable[name] = true
	}
	return m
}

// Bind associates a key with a mode. Binding one key to two different
// modes is a setup bug and fails immediately; rebinding the same pair is
// idempotent.
func (m *Modes) Bind(key, mode string) error {
	k := strings.ToLower(key)
	if existing, ok := m.bindings[k]; ok && existing != mode {
		return &ConflictError{Key: key, Existing: existing, Proposed: mode}
	}
	m.bindings[k] = mode
	if _, ok := m.flags[mode]; !ok {
		m.flags[mode] = false
	}
	return nil
}

// HandleKey toggles the mode bound to key and reports whether anything
// changed. Unbound keys are ignored: this sits behind a shared global
// listener and must stay silent on arbitrary input.
func (m *Modes) HandleKey(key string) bool {
	mode, ok := m.bindings[strings.ToLower(key)]
	if !ok {
		return false
	}
	m.flags[mode] = !m.flags[mode]
	return true
}

// HandleReset clears the resettable subset when key matches the reset key.
// Modes outside the subset keep their value.
func (m *Modes) HandleReset(key string) bool {
	if m.resetKey == "" || strings.ToLower(key) != m.resetKey {
		return false
	}
	for name := range m.resettable {
		if _, ok := m.flags[name]; ok {
			m.flags[name] = false
		}
	}
	return true
}

// Get reports the current value of a mode. Unknown modes read false.
func (m *Modes) Get(name string) bool { return m.flags[name] }

// All returns a copy of the current flag values.
func (m *Modes) All() map[string]bool {
	out := make(map[string]bool, len(m.flags))
	for k, v := range m.flags {
		out[k] = v
	}
	return out
}

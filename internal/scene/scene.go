package scene

// Scene is one scripted demo: a prompt, the pre-written response the
// engine reveals, and the auxiliary entries disclosed on hover. Visual
// concerns (theme name, cadence) are data here; the engine never sees
// them beyond the tick interval.
type Scene struct {
	Name           string       `yaml:"name"`
	Title          string       `yaml:"title"`
	Prompt         string       `yaml:"prompt"`
	Response       string       `yaml:"response"`
	TickIntervalMs int          `yaml:"tick_interval_ms"`
	Theme          string       `yaml:"theme"`
	Disclosures    []Disclosure `yaml:"disclosures"`
}

// Disclosure is one hoverable entry with derived detail text.
type Disclosure struct {
	ID     string `yaml:"id"`
	Label  string `yaml:"label"`
	Detail string `yaml:"detail"`
}

// Disclosure returns the entry for id, or false when the id is unknown.
// Unknown ids are benign; the caller simply renders nothing.
func (s *Scene) Disclosure(id string) (Disclosure, bool) {
	for _, d := range s.Disclosures {
		if d.ID == id {
			return d, true
		}
	}
	return Disclosure{}, false
}

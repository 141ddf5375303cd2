package scene

import (
	"fmt"
	"sort"
)

// Registry holds the available scenes by name.
type Registry struct {
	scenes map[string]*Scene
}

// NewRegistry returns a registry preloaded with the built-in scenes. The
// reveal cadences intentionally differ per scene; cadence is content, not
// a constant.
func NewRegistry() *Registry {
	r := &Registry{scenes: make(map[string]*Scene)}
	for _, s := range builtin {
		sc := s
		r.scenes[sc.Name] = &sc
	}
	return r
}

// Register adds a scene. Duplicate names are rejected so a config file
// cannot silently shadow a built-in.
func (r *Registry) Register(s *Scene) error {
	if s.Name == "" {
		return fmt.Errorf("scene: name required")
	}
	if _, ok := r.scenes[s.Name]; ok {
		return fmt.Errorf("scene: %q already registered", s.Name)
	}
	r.scenes[s.Name] = s
	return nil
}

// Get returns a scene by name.
func (r *Registry) Get(name string) (*Scene, error) {
	s, ok := r.scenes[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene: %s", name)
	}
	return s, nil
}

// Names lists the registered scene names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.scenes))
	for name := range r.scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var builtin = []Scene{
	{
		Name:           "quantum",
		Title:          "QUANTUM CORE",
		Prompt:         "What happens to my data at the edge?",
		Response:       "Nothing leaves the device. Every inference runs on the local core, the model weights never phone home, and the only thing that crosses the network is the answer you choose to share.",
		TickIntervalMs: 20,
		Theme:          "cyberpunk",
		Disclosures: []Disclosure{
			{ID: "latency", Label: "Latency", Detail: "11ms median on-device round trip"},
			{ID: "tokens", Label: "Tokens", Detail: "38 tokens rendered in this take"},
			{ID: "privacy", Label: "Privacy", Detail: "zero bytes sent upstream"},
		},
	},
	{
		Name:           "pulse",
		Title:          "PULSE ASSIST",
		Prompt:         "Summarize the incident channel from last night.",
		Response:       "Three alerts, one real: the cache node in eu-west flapped at 02:14 and recovered on its own. The page to on-call was noise from a stale healthcheck. I drafted the postmortem stub for you.",
		TickIntervalMs: 30,
		Theme:          "ocean",
		Disclosures: []Disclosure{
			{ID: "alerts", Label: "Alerts", Detail: "3 raised, 2 auto-resolved"},
			{ID: "window", Label: "Window", Detail: "01:50 – 02:30 UTC"},
			{ID: "draft", Label: "Draft", Detail: "postmortem stub in #incident-412"},
		},
	},
	{
		Name:           "horizon",
		Title:          "HORIZON WRITER",
		Prompt:         "Give me an opening line for the launch post.",
		Response:       "Hej. Ship day is the easy part. The hard part was making the wait feel short, and that is exactly what we built.",
		TickIntervalMs: 35,
		Theme:          "sunset",
		Disclosures: []Disclosure{
			{ID: "tone", Label: "Tone", Detail: "warm, confident, 9th-grade reading level"},
			{ID: "length", Label: "Length", Detail: "2 sentences, 24 words"},
		},
	},
}

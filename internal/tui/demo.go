package tui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/stagecraft/internal/config"
	"github.com/san-kum/stagecraft/internal/engine"
	"github.com/san-kum/stagecraft/internal/scene"
	"github.com/san-kum/stagecraft/internal/take"
)

const panelWidth = 64

type revealTickMsg time.Time
type uiTickMsg time.Time

// Model hosts one engine per displayed scene. It owns the two timer
// cadences, forwards input events, and renders nothing but the engine
// snapshot. Tearing the view down closes the engine in the same motion.
type Model struct {
	eng   *engine.Engine
	sc    *scene.Scene
	cfg   *config.Config
	store *take.Store

	snap   engine.Snapshot
	theme  Theme
	styles styleSet

	timeline   []take.Point
	progress   []float64
	tickCount  int
	revealDone bool
	savedID    string
	saveErr    error
	showHelp   bool
	width      int
	height     int
}

// NewModel wires a scene to a fresh engine. The scene's cadence overrides
// the configured default; everything else comes from cfg.
func NewModel(sc *scene.Scene, cfg *config.Config, store *take.Store) (Model, error) {
	opts := cfg.EngineOptions()
	if sc.TickIntervalMs > 0 {
		opts.TickInterval = time.Duration(sc.TickIntervalMs) * time.Millisecond
	}
	eng, err := engine.New(opts)
	if err != nil {
		return Model{}, err
	}

	themeName := sc.Theme
	if themeName == "" {
		themeName = cfg.Theme
	}
	theme := GetTheme(themeName)

	m := Model{
		eng:      eng,
		sc:       sc,
		cfg:      cfg,
		store:    store,
		theme:    theme,
		styles:   newStyleSet(theme),
		timeline: make([]take.Point, 0, 256),
		progress: make([]float64, 0, 256),
		width:    80,
		height:   24,
	}
	m.snap = eng.Snapshot()
	return m, nil
}

// Run starts the demo program for one scene.
func Run(sc *scene.Scene, cfg *config.Config, store *take.Store) error {
	m, err := NewModel(sc, cfg, store)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}

func (m Model) revealTickCmd() tea.Cmd {
	return tea.Tick(m.eng.TickInterval(), func(t time.Time) tea.Msg { return revealTickMsg(t) })
}

func (m Model) uiTickCmd() tea.Cmd {
	return tea.Tick(m.cfg.UITick(), func(t time.Time) tea.Msg { return uiTickMsg(t) })
}

// Init starts the reveal and only then arms both timers, so a tick can
// never observe a half-initialized session.
func (m Model) Init() tea.Cmd {
	if err := m.eng.StartReveal(m.sc.Response); err != nil {
		return tea.Quit
	}
	return tea.Batch(m.revealTickCmd(), m.uiTickCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		// any pointer observation counts as activity for the chrome
		m.eng.Activity()
		m.refresh()
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case revealTickMsg:
		if m.eng.Status() != engine.StatusRevealing {
			return m, nil // stale timer after completion or reset
		}
		m.eng.RevealTick()
		m.tickCount++
		m.refresh()
		m.record()
		if m.snap.Status == engine.StatusRevealing {
			return m, m.revealTickCmd()
		}
		return m, nil // reveal finished: disarm this cadence

	case uiTickMsg:
		m.eng.UITick()
		m.refresh()
		return m, m.uiTickCmd()
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q", "ctrl+c":
		// teardown: close the engine and cancel both cadences together
		m.eng.Close()
		return *m, tea.Quit
	case "?":
		m.showHelp = !m.showHelp
	case "t":
		m.theme = NextTheme(m.theme.Name)
		m.styles = newStyleSet(m.theme)
	case "r":
		m.eng.Reset()
		m.resetTake()
		m.refresh()
	case "enter":
		if m.snap.Status != engine.StatusRevealing {
			m.eng.Reset()
			m.resetTake()
			if err := m.eng.StartReveal(m.sc.Response); err == nil {
				m.refresh()
				return *m, m.revealTickCmd()
			}
		}
	case "0":
		m.eng.SetHovered("")
		m.refresh()
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(m.sc.Disclosures) {
			m.eng.SetHovered(m.sc.Disclosures[n-1].ID)
		} else {
			// everything else goes to the engine; unbound keys are no-ops
			m.eng.HandleKey(key)
		}
		m.refresh()
	}
	return *m, nil
}

// refresh pulls a fresh snapshot and latches the one-shot done signal.
func (m *Model) refresh() {
	m.snap = m.eng.Snapshot()
	if m.snap.Done {
		m.revealDone = true
		m.saveTake()
	}
}

// record samples the current reveal state into the take timeline.
func (m *Model) record() {
	m.timeline = append(m.timeline, take.Point{
		Tick:     m.tickCount,
		Revealed: m.snap.Revealed,
		Elapsed:  m.snap.ElapsedSeconds,
	})
	if m.snap.Total > 0 {
		m.progress = append(m.progress, float64(m.snap.Revealed)/float64(m.snap.Total))
	}
}

func (m *Model) resetTake() {
	m.timeline = m.timeline[:0]
	m.progress = m.progress[:0]
	m.tickCount = 0
	m.revealDone = false
	m.savedID = ""
	m.saveErr = nil
}

func (m *Model) saveTake() {
	if m.store == nil || m.savedID != "" {
		return
	}
	tickMs := m.sc.TickIntervalMs
	if tickMs <= 0 {
		tickMs = m.cfg.TickIntervalMs
	}
	id, err := m.store.Save(m.sc.Name, tickMs, m.snap.Total, m.snap.ElapsedSeconds, m.timeline)
	if err != nil {
		m.saveErr = err
		return
	}
	m.savedID = id
}

func (m Model) View() string {
	var b strings.Builder

	if m.snap.Visible {
		b.WriteString(m.chromeView())
	}

	b.WriteString(m.styles.prompt.Render("> "+m.sc.Prompt) + "\n")

	text := m.snap.RevealedText
	if m.snap.Status == engine.StatusRevealing {
		text += m.styles.caret.Render("▌")
	}
	b.WriteString(m.styles.response.Width(panelWidth).Render(text) + "\n")

	if len(m.progress) > 1 {
		b.WriteString(m.styles.separator.Render(sparkline(m.progress, 30)) + "\n")
	}

	b.WriteString(m.disclosureView())

	if m.snap.Visible {
		b.WriteString(m.styles.help.Render(
			"ENTER:replay R:reset U:quantum F:focus ESC:exit focus\n" +
				"1-" + strconv.Itoa(len(m.sc.Disclosures)) + ":inspect 0:clear T:theme ?:help Q:quit"))
	}

	main := b.String()
	if m.showHelp {
		return m.helpOverlay() + "\n\n" + main
	}
	return main
}

// chromeView is the ambient overlay whose visibility the idle tracker
// drives.
func (m Model) chromeView() string {
	var s strings.Builder
	s.WriteString(m.styles.header.Render(m.sc.Title) + "\n")

	status := "READY"
	switch m.snap.Status {
	case engine.StatusRevealing:
		status = "GENERATING"
	case engine.StatusComplete:
		status = "DONE"
	}

	s.WriteString(m.styles.label.Render("Status") + m.styles.value.Render(status) + "\n")
	s.WriteString(m.styles.label.Render("Elapsed") + m.styles.value.Render(fmt.Sprintf("%.2fs", m.snap.ElapsedSeconds)) + "\n")

	frac := 0.0
	if m.snap.Total > 0 {
		frac = float64(m.snap.Revealed) / float64(m.snap.Total)
	} else if m.snap.Status == engine.StatusComplete {
		frac = 1.0
	}
	s.WriteString(m.styles.label.Render("Progress") + progressBar(frac, 24) + "\n")

	badges := make([]string, 0, len(m.snap.Modes))
	for _, name := range sortedModes(m.snap.Modes) {
		if m.snap.Modes[name] {
			badges = append(badges, m.styles.badge.Render("["+strings.ToUpper(name)+"]"))
		} else {
			badges = append(badges, m.styles.badgeOff.Render("["+name+"]"))
		}
	}
	if len(badges) > 0 {
		s.WriteString(m.styles.label.Render("Modes") + strings.Join(badges, " ") + "\n")
	}
	if m.savedID != "" {
		s.WriteString(m.styles.label.Render("Take") + m.styles.value.Render(m.savedID) + "\n")
	}

	return m.styles.chrome.Width(panelWidth).Render(s.String()) + "\n"
}

func (m Model) disclosureView() string {
	if len(m.sc.Disclosures) == 0 {
		return ""
	}
	var s strings.Builder
	s.WriteString(m.styles.separator.Render(titledRule("sources", panelWidth)) + "\n")
	for i, d := range m.sc.Disclosures {
		line := fmt.Sprintf("%d %s", i+1, d.Label)
		if m.eng.IsHovered(d.ID) {
			s.WriteString(m.styles.hovered.Render("> "+line) + "\n")
			s.WriteString("  " + m.styles.value.Render(d.Detail) + "\n")
		} else {
			s.WriteString(m.styles.badgeOff.Render("  "+line) + "\n")
		}
	}
	return s.String()
}

func (m Model) helpOverlay() string {
	help := `
KEYBOARD
  Enter  - Replay the reveal
  R      - Reset to idle
  U      - Toggle quantum mode
  F      - Toggle focus mode (pins the chrome)
  Esc    - Clear focus mode
  1-9/0  - Inspect / clear a source
  T      - Cycle themes
  Q      - Quit

Chrome hides after ` + strconv.Itoa(m.cfg.IdleThresholdMs) + `ms without pointer movement.`
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(m.theme.Secondary).
		Padding(0, 2).
		Render(help)
}

func sortedModes(modes map[string]bool) []string {
	names := make([]string, 0, len(modes))
	for name := range modes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

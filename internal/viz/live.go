package viz

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/ncscatter/internal/host"
	"github.com/san-kum/ncscatter/internal/sampling"
)

const (
	barWidth  = 50
	frameRate = 30
)

type TickMsg time.Time

// ProcessMsg swaps the sampled process, e.g. after the material config was
// edited. The histogram restarts from the seed.
type ProcessMsg struct {
	Proc host.Process
}

// ReloadErrMsg reports a failed reload; the current process stays in use.
type ReloadErrMsg struct {
	Err error
}

// Model samples a process a batch per frame and shows the cosine histogram
// as it fills.
type Model struct {
	proc      host.Process
	material  string
	ekin      host.NeutronEnergy
	seed      uint64
	rng       host.RNG
	cache     *host.Cache
	hist      *sampling.Histogram
	sumMu     float64
	batch     int
	maxEvents int
	running   bool
	theme     int
	keys      KeyMap
	help      help.Model
	reloadErr error
}

func NewModel(proc host.Process, material string, ekin float64, seed uint64, bins, batch, maxEvents int) Model {
	return Model{
		proc:      proc,
		material:  material,
		ekin:      host.NeutronEnergy(ekin),
		seed:      seed,
		rng:       host.NewRNG(seed),
		cache:     host.NewCache(),
		hist:      sampling.NewHistogram(bins),
		batch:     max(batch, 1),
		maxEvents: maxEvents,
		running:   true,
		keys:      DefaultKeyMap(),
		help:      help.New(),
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			m.running = !m.running
		case key.Matches(msg, m.keys.Reset):
			m.reset()
		case key.Matches(msg, m.keys.Theme):
			m.theme = (m.theme + 1) % len(Themes)
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
		return m, nil
	case ProcessMsg:
		if msg.Proc != nil {
			m.proc = msg.Proc
			m.reloadErr = nil
			m.reset()
		}
		return m, nil
	case ReloadErrMsg:
		m.reloadErr = msg.Err
		return m, nil
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, tick()
	}
	return m, nil
}

func (m *Model) step() {
	n := m.batch
	if m.maxEvents > 0 {
		n = min(n, m.maxEvents-m.hist.Total)
	}
	for i := 0; i < n; i++ {
		out := m.proc.SampleScatterIsotropic(m.cache, m.rng, m.ekin)
		m.hist.Fill(out.Mu)
		m.sumMu += float64(out.Mu)
	}
	if m.maxEvents > 0 && m.hist.Total >= m.maxEvents {
		m.running = false
	}
}

func (m *Model) reset() {
	m.rng = host.NewRNG(m.seed)
	m.cache = host.NewCache()
	m.hist.Reset()
	m.sumMu = 0
	m.running = true
}

func (m Model) Events() int { return m.hist.Total }

func (m Model) Process() host.Process { return m.proc }

func (m Model) View() string {
	th := Themes[m.theme]
	title := lipgloss.NewStyle().Bold(true).Foreground(th.Primary)
	bar := lipgloss.NewStyle().Foreground(th.Bar)
	accent := lipgloss.NewStyle().Foreground(th.Accent)
	text := lipgloss.NewStyle().Foreground(th.Text)
	muted := lipgloss.NewStyle().Foreground(th.Muted)

	status := accent.Render("running")
	if !m.running {
		status = muted.Render("paused")
	}

	meanMu := 0.0
	if m.hist.Total > 0 {
		meanMu = m.sumMu / float64(m.hist.Total)
	}

	var b strings.Builder
	b.WriteString(title.Render(m.proc.Name()))
	b.WriteString(text.Render(fmt.Sprintf("  %s @ %.4g eV", m.material, float64(m.ekin))))
	b.WriteString("  " + status + "\n\n")
	b.WriteString(RenderHistogram(m.hist, barWidth, bar))
	b.WriteString("\n")
	b.WriteString(RenderMetrics(map[string]float64{
		"events":        float64(m.hist.Total),
		"mean_mu":       meanMu,
		"cross_section": float64(m.proc.CrossSectionIsotropic(nil, m.ekin)),
	}, []string{"events", "mean_mu", "cross_section"}))
	b.WriteString("\n")
	if m.reloadErr != nil {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5555")).Render("reload failed: "+m.reloadErr.Error()) + "\n")
	}
	b.WriteString(m.help.View(m.keys))
	b.WriteString(muted.Render("  theme: " + th.Name))
	return b.String()
}

// NewProgram wraps the live view in a program. Callers may push
// ProcessMsg and ReloadErrMsg through Send while it runs.
func NewProgram(m Model) *tea.Program {
	return tea.NewProgram(m)
}

// Run starts the live view and blocks until the user quits.
func Run(m Model) error {
	_, err := NewProgram(m).Run()
	return err
}

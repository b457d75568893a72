package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/lifesim/internal/life"
	"github.com/san-kum/lifesim/internal/sim"
)

const historyCapacity = 600

var (
	gridStyle   = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(42)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

type TickMsg time.Time

// Options configures a live view.
type Options struct {
	Name        string
	Delay       time.Duration
	Generations int // 0 runs until quit
	Running     bool
	GIFPath     string
}

// Model steps a simulator on a timer and renders the grid.
type Model struct {
	sim        *sim.Simulator
	opts       Options
	running    bool
	braille    bool
	showHelp   bool
	population []float64
	births     int
	deaths     int
	recorder   *Recorder
	status     string
	err        error
}

func NewModel(s *sim.Simulator, opts Options) Model {
	if opts.Delay <= 0 {
		opts.Delay = 75 * time.Millisecond
	}
	if opts.GIFPath == "" {
		opts.GIFPath = "life.gif"
	}
	m := Model{
		sim:        s,
		opts:       opts,
		running:    opts.Running,
		population: make([]float64, 0, historyCapacity),
	}
	m.record()
	return m
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.opts.Delay, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Err reports the engine error that halted the view, if any.
func (m Model) Err() error { return m.err }

func (m Model) Generation() int { return m.sim.Generation() }

func (m Model) Running() bool { return m.running }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.stopRecording()
			return m, tea.Quit
		case " ":
			if m.err == nil && !m.done() {
				m.running = !m.running
			}
		case "n":
			if !m.running && m.err == nil && !m.done() {
				m.step()
			}
		case "r":
			m.reset()
		case "t":
			NextTheme()
		case "b":
			m.braille = !m.braille
		case "g":
			if m.recorder != nil {
				m.stopRecording()
			} else {
				m.recorder = NewRecorder(4)
				m.status = "recording"
			}
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) done() bool {
	return m.opts.Generations > 0 && m.sim.Generation() >= m.opts.Generations
}

// step advances one generation; engine errors halt stepping.
func (m *Model) step() {
	prev := m.sim.Grid()
	if err := m.sim.Step(); err != nil {
		m.err = err
		m.running = false
		return
	}
	m.births, m.deaths = life.Changes(prev, m.sim.Grid())
	m.record()
	if m.done() {
		m.running = false
	}
}

func (m *Model) record() {
	g := m.sim.Grid()
	m.population = append(m.population, float64(g.Population()))
	if len(m.population) > historyCapacity {
		m.population = m.population[1:]
	}
	if m.recorder != nil {
		m.recorder.Capture(g, life.Neighbors(g))
	}
}

func (m *Model) reset() {
	m.sim.Reset()
	m.err = nil
	m.births, m.deaths = 0, 0
	m.population = m.population[:0]
	m.record()
}

func (m *Model) stopRecording() {
	if m.recorder == nil {
		return
	}
	if err := m.recorder.Save(m.opts.GIFPath, int(m.opts.Delay/time.Millisecond)); err != nil {
		m.status = "gif: " + err.Error()
	} else {
		m.status = "saved " + m.opts.GIFPath
	}
	m.recorder = nil
}

// RenderGrid draws g with one coloured block pair per cell.
func RenderGrid(g *life.Grid, neighbours []uint8, theme Theme) string {
	even, odd, dead := cellStyles(theme)
	var b strings.Builder
	cols := g.Cols()
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < cols; c++ {
			i := r*cols + c
			switch {
			case !g.Alive(r, c):
				b.WriteString(dead.Render("··"))
			case neighbours[i]%2 == 1:
				b.WriteString(odd.Render("██"))
			default:
				b.WriteString(even.Render("██"))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (m Model) View() string {
	g := m.sim.Grid()

	var gridView string
	if m.braille {
		canvas := CanvasFor(g)
		canvas.DrawGrid(g)
		gridView = lipgloss.NewStyle().Foreground(CurrentTheme.Even).Render(canvas.String())
	} else {
		gridView = RenderGrid(g, life.Neighbors(g), CurrentTheme)
	}

	var s strings.Builder
	name := m.opts.Name
	if name == "" {
		name = "life"
	}
	s.WriteString(headerStyle.Render(strings.ToUpper(name)) + "\n")

	switch {
	case m.err != nil:
		s.WriteString(StatusError.Render("HALTED") + "\n")
		s.WriteString(valueStyle.Render(m.err.Error()) + "\n\n")
	case m.done():
		s.WriteString(StatusPaused.Render("DONE") + "\n\n")
	case m.running:
		s.WriteString(StatusRunning.Render("RUNNING") + "\n\n")
	default:
		s.WriteString(StatusPaused.Render("STOPPED") + "\n\n")
	}
	if m.recorder != nil {
		s.WriteString(StatusRecording.Render(fmt.Sprintf("REC %d", m.recorder.Frames())) + "\n")
	}

	if len(m.population) > 1 {
		chart := asciigraph.Plot(m.population, asciigraph.Height(5), asciigraph.Width(30), asciigraph.Caption("Population"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Generation") + valueStyle.Render(fmt.Sprintf("%d", m.sim.Generation())) + "\n")
	s.WriteString(labelStyle.Render("Grid") + valueStyle.Render(fmt.Sprintf("%dx%d", g.Rows(), g.Cols())) + "\n")
	s.WriteString(labelStyle.Render("Population") + valueStyle.Render(fmt.Sprintf("%d", g.Population())) + "\n")
	s.WriteString(labelStyle.Render("Births") + valueStyle.Render(fmt.Sprintf("%d", m.births)) + "\n")
	s.WriteString(labelStyle.Render("Deaths") + valueStyle.Render(fmt.Sprintf("%d", m.deaths)) + "\n")
	s.WriteString(labelStyle.Render("Theme") + valueStyle.Render(CurrentTheme.Name) + "\n")
	if m.opts.Generations > 0 {
		pct := float64(m.sim.Generation()) / float64(m.opts.Generations)
		s.WriteString("\n" + ProgressBar(pct, 24) + "\n")
	}
	if m.status != "" {
		s.WriteString("\n" + labelStyle.Render(m.status) + "\n")
	}

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Start/Stop N:Step R:Reset\nT:Theme B:Braille G:Record Q:Quit"))
	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, gridStyle.Render(gridView), statsView)
	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Start/stop stepping      ║
║  N        - Single step              ║
║  R        - Reset to seed grid       ║
║  T        - Cycle themes             ║
║  B        - Toggle Braille view      ║
║  G        - Toggle GIF recording     ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

// Run blocks until the user quits and returns any engine error that halted
// the view.
func Run(s *sim.Simulator, opts Options) error {
	final, err := tea.NewProgram(NewModel(s, opts), tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok {
		return m.Err()
	}
	return nil
}

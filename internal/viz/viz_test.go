package viz

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/lifesim/internal/life"
	"github.com/san-kum/lifesim/internal/sim"
)

func blinkerSim(t *testing.T) *sim.Simulator {
	t.Helper()
	g, err := life.FromAlive(5, 5, []life.Cell{{Row: 2, Col: 1}, {Row: 2, Col: 2}, {Row: 2, Col: 3}})
	if err != nil {
		t.Fatal(err)
	}
	return sim.New(g, life.Step)
}

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModel_StepKeyWhileStopped(t *testing.T) {
	m := NewModel(blinkerSim(t), Options{Delay: time.Millisecond})
	if m.Running() {
		t.Fatal("model should start stopped")
	}

	m = update(m, key("n"))
	if m.Generation() != 1 {
		t.Errorf("expected generation 1, got %d", m.Generation())
	}

	m = update(m, TickMsg(time.Now()))
	if m.Generation() != 1 {
		t.Error("tick should not step while stopped")
	}
}

func TestModel_StartStop(t *testing.T) {
	m := NewModel(blinkerSim(t), Options{})
	m = update(m, key(" "))
	if !m.Running() {
		t.Fatal("space should start the model")
	}

	m = update(m, TickMsg(time.Now()))
	m = update(m, TickMsg(time.Now()))
	if m.Generation() != 2 {
		t.Errorf("expected generation 2, got %d", m.Generation())
	}

	m = update(m, key(" "))
	if m.Running() {
		t.Error("space should stop the model")
	}
}

func TestModel_GenerationLimit(t *testing.T) {
	m := NewModel(blinkerSim(t), Options{Generations: 2, Running: true})
	for i := 0; i < 5; i++ {
		m = update(m, TickMsg(time.Now()))
	}
	if m.Generation() != 2 {
		t.Errorf("expected to stop at 2, got %d", m.Generation())
	}
	if m.Running() {
		t.Error("model should stop at the generation limit")
	}
}

func TestModel_Reset(t *testing.T) {
	s := blinkerSim(t)
	seed := s.Grid().Clone()

	m := NewModel(s, Options{})
	m = update(m, key("n"))
	m = update(m, key("r"))

	if m.Generation() != 0 {
		t.Errorf("expected generation 0 after reset, got %d", m.Generation())
	}
	if !s.Grid().Equal(seed) {
		t.Error("reset should restore the seed grid")
	}
}

func TestModel_EngineErrorHalts(t *testing.T) {
	g := life.MustNew(3, 3)
	broken := func(*life.Grid) *life.Grid { return life.MustNew(1, 1) }

	m := NewModel(sim.New(g, broken), Options{Running: true})
	m = update(m, TickMsg(time.Now()))

	if m.Err() == nil {
		t.Fatal("expected engine error")
	}
	if !errors.Is(m.Err(), sim.ErrKernelContract) {
		t.Errorf("unexpected error: %v", m.Err())
	}
	if m.Running() {
		t.Error("engine error should stop the model")
	}
	if !strings.Contains(m.View(), "HALTED") {
		t.Error("view should show halted status")
	}
}

func TestModel_Quit(t *testing.T) {
	m := NewModel(blinkerSim(t), Options{})
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestModel_ViewModes(t *testing.T) {
	m := NewModel(blinkerSim(t), Options{Name: "blinker"})
	if !strings.Contains(m.View(), "BLINKER") {
		t.Error("view should include the run name")
	}

	m = update(m, key("b"))
	if !strings.ContainsRune(m.View(), 0x2800+0x4) {
		t.Error("braille view should render dots")
	}
}

func TestRenderGrid(t *testing.T) {
	g, _ := life.FromAlive(2, 3, []life.Cell{{Row: 0, Col: 0}})
	out := RenderGrid(g, life.Neighbors(g), ThemeMinimal)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "██") {
		t.Error("alive cell should render as a block")
	}
}

func TestCanvas(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)
	if c.Grid[0][0] != brailleBlank+0x1 {
		t.Errorf("unexpected rune %U", c.Grid[0][0])
	}
	if c.Grid[0][1] != brailleBlank+0x80 {
		t.Errorf("unexpected rune %U", c.Grid[0][1])
	}

	c.Unset(0, 0)
	if c.Grid[0][0] != brailleBlank {
		t.Error("unset should clear the dot")
	}

	c.Set(-1, 0)
	c.Set(100, 100)
}

func TestCanvasFor(t *testing.T) {
	g := life.MustNew(5, 3)
	c := CanvasFor(g)
	if c.Width != 2 || c.Height != 2 {
		t.Errorf("expected 2x2 canvas, got %dx%d", c.Width, c.Height)
	}
}

func TestRecorder(t *testing.T) {
	g, _ := life.FromAlive(4, 4, []life.Cell{{Row: 1, Col: 1}})
	r := NewRecorder(2)
	r.Capture(g, life.Neighbors(g))
	r.Capture(life.Step(g), nil)

	if r.Frames() != 2 {
		t.Fatalf("expected 2 frames, got %d", r.Frames())
	}
	if r.frames[0].ColorIndexAt(2, 2) != 1 {
		t.Error("alive cell should use palette index 1")
	}

	path := filepath.Join(t.TempDir(), "out.gif")
	if err := r.Save(path, 100); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("gif not written: %v", err)
	}
	if err := r.Save(path, 100); err == nil {
		t.Error("expected error when saving with no frames")
	}
}

func TestNextTheme(t *testing.T) {
	SetTheme("ember")
	defer SetTheme("ember")

	seen := map[string]bool{}
	for range Themes {
		seen[NextTheme().Name] = true
	}
	if len(seen) != len(Themes) {
		t.Errorf("expected to cycle through %d themes, saw %d", len(Themes), len(seen))
	}
	if GetTheme("nope").Name != "ember" {
		t.Error("unknown theme should fall back to ember")
	}
}
